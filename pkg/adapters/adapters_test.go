package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Engagic/engagic-sub004/pkg/config"
	"github.com/Engagic/engagic-sub004/pkg/models"
)

func testConfig() *config.Config {
	return &config.Config{
		Vendors: config.VendorSettings{
			"default": {
				RequestTimeout: 5 * time.Second,
				ConnectTimeout: 2 * time.Second,
			},
		},
	}
}

func testCity() config.CityConfig {
	return config.CityConfig{
		Banana:     "paloaltoCA",
		Name:       "Palo Alto",
		State:      "CA",
		Vendor:     "primegov",
		VendorSlug: "paloalto",
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry(testConfig())

	a, err := r.Get("primegov")
	require.NoError(t, err)
	assert.Equal(t, "primegov", a.Vendor())

	_, err = r.Get("nosuchvendor")
	assert.ErrorIs(t, err, ErrUnknownVendor)

	assert.Equal(t, []string{"civicclerk", "civicplus", "granicus", "legistar", "primegov"}, r.Vendors())
}

func TestPrimeGovFetchMeetings(t *testing.T) {
	inWindow := time.Now().AddDate(0, 0, 4).Format("2006-01-02T15:04:05")
	outOfWindow := time.Now().AddDate(0, 0, 90).Format("2006-01-02T15:04:05")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2/PublicPortal/ListUpcomingMeetings":
			fmt.Fprintf(w, `[
				{"id": 12345, "title": "City Council Regular Meeting", "dateTime": %q,
				 "documentList": [
					{"templateName": "Agenda", "templateId": 9, "compileOutputType": 1},
					{"templateName": "Agenda Packet", "templateId": 10, "compileOutputType": 2}
				 ]},
				{"id": 999, "title": "Far Future Meeting", "dateTime": %q, "documentList": []}
			]`, inWindow, outOfWindow)
		case "/api/v2/PublicPortal/ListArchivedMeetings":
			fmt.Fprint(w, `[]`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	a := NewPrimeGov(testConfig())
	a.baseURL = srv.URL

	result, err := a.FetchMeetings(context.Background(), testCity(), 14, 60)
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Len(t, result.Meetings, 1, "out-of-window meeting is dropped")

	m := result.Meetings[0]
	assert.Equal(t, "12345", m.VendorID)
	assert.Equal(t, "City Council Regular Meeting", m.Title)
	assert.Equal(t, inWindow, m.Start)
	assert.Contains(t, m.AgendaURL, "meetingTemplateId=9")
	assert.Contains(t, m.PacketURL, "meetingTemplateId=10")
}

func TestPrimeGovFailureIsNotZeroMeetings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	a := NewPrimeGov(testConfig())
	a.baseURL = srv.URL

	result, err := a.FetchMeetings(context.Background(), testCity(), 14, 60)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVendorRequest)
	assert.False(t, result.Success, "failure must be distinguishable from a quiet window")
}

func TestLegistarFetchMeetings(t *testing.T) {
	eventDate := time.Now().AddDate(0, 0, 7).Format("2006-01-02") + "T00:00:00"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/nashville/events":
			fmt.Fprintf(w, `[{"EventId": 2201, "EventBodyId": 5, "EventBodyName": "Metropolitan Council",
				"EventDate": %q, "EventTime": "6:30 PM",
				"EventAgendaFile": "https://legistar2.example.com/agenda.pdf"}]`, eventDate)
		case "/v1/nashville/events/2201/eventitems":
			fmt.Fprint(w, `[
				{"EventItemId": 1, "EventItemTitle": "An ordinance rezoning 100 Main St",
				 "EventItemAgendaSequence": 3, "EventItemAgendaNumber": "BL2025-1098",
				 "EventItemMatterId": 77, "EventItemMatterFile": "BL2025-1098",
				 "EventItemMatterType": "Bill (Ordinance)", "EventItemPassedFlagName": "Adopted",
				 "EventItemMover": "Smith", "EventItemSeconder": "Jones"}
			]`)
		case "/v1/nashville/matters/77/attachments":
			fmt.Fprint(w, `[
				{"MatterAttachmentName": "Exhibit A Leg Ver 1", "MatterAttachmentHyperlink": "https://x.example.com/a_v1.pdf"},
				{"MatterAttachmentName": "Exhibit A Leg Ver 2", "MatterAttachmentHyperlink": "https://x.example.com/a_v2.pdf"}
			]`)
		case "/v1/nashville/eventitems/1/votes":
			fmt.Fprint(w, `[
				{"VotePersonName": "Smith", "VoteValueName": "Yea", "VoteSort": 1},
				{"VotePersonName": "Jones", "VoteValueName": "Nay", "VoteSort": 2}
			]`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	a := NewLegistar(testConfig())
	a.baseURL = srv.URL

	city := config.CityConfig{Banana: "nashvilleTN", Vendor: "legistar", VendorSlug: "nashville"}
	result, err := a.FetchMeetings(context.Background(), city, 14, 60)
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Len(t, result.Meetings, 1)

	m := result.Meetings[0]
	assert.Equal(t, "2201", m.VendorID)
	assert.Equal(t, "Metropolitan Council", m.Title)
	require.Len(t, m.Items, 1)

	item := m.Items[0]
	assert.Equal(t, "BL2025-1098", item.MatterFile)
	assert.Equal(t, "passed", item.VoteOutcome)
	assert.Equal(t, []string{"Smith", "Jones"}, item.Sponsors)

	require.Len(t, item.Attachments, 1, "only the highest Leg Ver survives")
	assert.Equal(t, "https://x.example.com/a_v2.pdf", item.Attachments[0].URL)

	require.Len(t, item.Votes, 2)
	assert.Equal(t, "yes", item.Votes[0].Value)
	assert.Equal(t, "no", item.Votes[1].Value)
}

func TestGranicusVendorIDFallback(t *testing.T) {
	// Link with a clip id uses the native id.
	assert.Equal(t, "881",
		granicusVendorID("https://city.granicus.com/MediaPlayer.php?clip_id=881", "Council", "2025-11-10"))

	// Link without an id falls back to the 12-hex content hash.
	id := granicusVendorID("https://city.granicus.com/AgendaViewer.php", "Council", "2025-11-10T18:00:00")
	assert.Len(t, id, 12)
	assert.Equal(t, id,
		granicusVendorID("https://city.granicus.com/AgendaViewer.php", "Council", "2025-11-10T18:00:00"),
		"fallback id is deterministic")
}

func TestDedupeAttachmentVersions(t *testing.T) {
	atts := []models.Attachment{
		{Name: "Staff Report Leg Ver 1", URL: "https://x/sr1.pdf"},
		{Name: "Staff Report Leg Ver 3", URL: "https://x/sr3.pdf"},
		{Name: "Staff Report Leg Ver 2", URL: "https://x/sr2.pdf"},
		{Name: "Site Map", URL: "https://x/map.pdf"},
	}

	out := DedupeAttachmentVersions(atts, nil)
	require.Len(t, out, 2)
	assert.Equal(t, "https://x/sr3.pdf", out[0].URL, "highest version wins, first-seen order kept")
	assert.Equal(t, "Site Map", out[1].Name)
}

func TestRateLimiterEnforcesVendorDelay(t *testing.T) {
	cfg := &config.Config{
		Vendors: config.VendorSettings{
			"default":  {RateLimitDelay: 5 * time.Second},
			"primegov": {RateLimitDelay: 50 * time.Millisecond},
		},
	}
	rl := NewRateLimiter(cfg)

	start := time.Now()
	require.NoError(t, rl.Wait(context.Background(), "primegov"))
	assert.Less(t, time.Since(start), 20*time.Millisecond, "first request is immediate")

	require.NoError(t, rl.Wait(context.Background(), "primegov"))
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond, "second request waits out the delay")
}

func TestRateLimiterRespectsContextCancel(t *testing.T) {
	cfg := &config.Config{
		Vendors: config.VendorSettings{"default": {RateLimitDelay: time.Hour}},
	}
	rl := NewRateLimiter(cfg)
	require.NoError(t, rl.Wait(context.Background(), "granicus"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := rl.Wait(ctx, "granicus")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
