package fetcher_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Engagic/engagic-sub004/ent"
	"github.com/Engagic/engagic-sub004/pkg/adapters"
	"github.com/Engagic/engagic-sub004/pkg/config"
	"github.com/Engagic/engagic-sub004/pkg/fetcher"
	"github.com/Engagic/engagic-sub004/pkg/models"
	"github.com/Engagic/engagic-sub004/pkg/queue"
	"github.com/Engagic/engagic-sub004/pkg/services"
	testdb "github.com/Engagic/engagic-sub004/test/database"
)

// stubAdapter scripts one FetchMeetings response.
type stubAdapter struct {
	result *models.FetchResult
	err    error
	calls  int
}

func (s *stubAdapter) Vendor() string { return "stub" }

func (s *stubAdapter) FetchMeetings(context.Context, config.CityConfig, int, int) (*models.FetchResult, error) {
	s.calls++
	return s.result, s.err
}

func fetcherTestConfig() *config.Config {
	return &config.Config{
		HistoricalCutoff: 180 * 24 * time.Hour,
		FutureCutoff:     60 * 24 * time.Hour,
		Vendors: config.VendorSettings{
			"default": {RateLimitDelay: time.Millisecond},
		},
	}
}

func setupFetcher(t *testing.T, stub *stubAdapter) (*fetcher.Fetcher, *services.Services, *ent.Client, config.CityConfig) {
	t.Helper()
	client := testdb.NewTestClient(t)
	svcs := services.New(client.Client, client.DB())
	cfg := fetcherTestConfig()

	registry := adapters.NewRegistry(cfg)
	registry.Register(stub)
	limiter := adapters.NewRateLimiter(cfg)

	cityCfg := config.CityConfig{
		Banana: "paloaltoCA", Name: "Palo Alto", State: "CA",
		Vendor: "stub", VendorSlug: "paloalto", Status: "active",
		Timezone: "America/Los_Angeles",
	}
	require.NoError(t, svcs.City.SyncRegistry(context.Background(), []config.CityConfig{cityCfg}))

	return fetcher.New(client.Client, registry, limiter, svcs, cfg, nil), svcs, client.Client, cityCfg
}

// isoStart formats a time the way vendor adapters emit start timestamps.
func isoStart(t time.Time) string {
	return t.Format("2006-01-02T15:04:05")
}

func TestSyncCityFreshItemLevel(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	// Four days and change in the future so the day count floors to 4.
	meetingDate := time.Now().Add(4*24*time.Hour + 6*time.Hour)
	stub := &stubAdapter{result: &models.FetchResult{
		Success: true,
		Meetings: []models.MeetingRecord{{
			VendorID:  "12345",
			Title:     "City Council Regular Meeting",
			Start:     isoStart(meetingDate),
			AgendaURL: "https://example.gov/agenda/12345",
			Items: []models.ItemRecord{
				{Title: "Rezoning of 100 Main St", Sequence: 1, MatterFile: "ORD-1",
					Attachments: []models.Attachment{{Name: "Staff Report", URL: "https://example.gov/att/1.pdf", Type: models.AttachmentPDF}}},
				{Title: "FY26 Budget Adoption", Sequence: 2, MatterFile: "ORD-2"},
				{Title: "Sidewalk repair contract", Sequence: 3, MatterFile: "RS-3"},
			},
		}},
	}}

	f, svcs, client, cityCfg := setupFetcher(t, stub)

	stats, err := f.SyncCity(ctx, cityCfg)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Meetings)
	assert.Equal(t, 3, stats.Items)
	assert.Equal(t, 3, stats.Matters)
	assert.Equal(t, 1, stats.Enqueued)

	meetingID := models.MeetingID("paloaltoCA", "12345")
	m, err := svcs.Meeting.GetDetail(ctx, meetingID)
	require.NoError(t, err)
	assert.Len(t, m.Edges.Items, 3)
	require.Nil(t, m.Summary, "no summary before processing")

	matters, err := svcs.Matter.ListByCity(ctx, "paloaltoCA", 0)
	require.NoError(t, err)
	require.Len(t, matters, 3)
	for _, mat := range matters {
		assert.Equal(t, 1, mat.AppearanceCount)
	}

	job, err := queue.FindBySourceURL(ctx, client, "https://example.gov/agenda/12345")
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, 104, job.Priority, "four days out")
	assert.Equal(t, queue.JobTypeProcessMeeting, job.JobType)

	c, err := svcs.City.Get(ctx, "paloaltoCA")
	require.NoError(t, err)
	assert.NotNil(t, c.LastSyncedAt)
	assert.Equal(t, 0, c.SyncErrorCount)
}

func TestSyncCityIdempotentRerun(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	stub := &stubAdapter{result: &models.FetchResult{
		Success: true,
		Meetings: []models.MeetingRecord{{
			VendorID:  "777",
			Title:     "Planning Commission",
			Start:     isoStart(time.Now().Add(48 * time.Hour)),
			AgendaURL: "https://example.gov/agenda/777",
			Items: []models.ItemRecord{
				{Title: "Use permit for 42 Elm St", Sequence: 1, MatterFile: "UP-42",
					Sponsors: []string{"Smith"}},
			},
		}},
	}}

	f, svcs, client, cityCfg := setupFetcher(t, stub)

	_, err := f.SyncCity(ctx, cityCfg)
	require.NoError(t, err)
	_, err = f.SyncCity(ctx, cityCfg)
	require.NoError(t, err)
	assert.Equal(t, 2, stub.calls)

	meetings, err := svcs.Meeting.ListByCity(ctx, "paloaltoCA", 0)
	require.NoError(t, err)
	assert.Len(t, meetings, 1)

	matters, err := svcs.Matter.ListByCity(ctx, "paloaltoCA", 0)
	require.NoError(t, err)
	require.Len(t, matters, 1)
	assert.Equal(t, 1, matters[0].AppearanceCount, "re-run must not inflate appearances")

	members, err := svcs.Council.ListByCity(ctx, "paloaltoCA")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, 1, members[0].SponsorshipCount, "re-run must not inflate sponsorships")

	stats, err := queue.GetStats(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Pending, "one job covers both runs")
}

func TestSyncCityProceduralItemsGetNoMatter(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	stub := &stubAdapter{result: &models.FetchResult{
		Success: true,
		Meetings: []models.MeetingRecord{{
			VendorID:  "900",
			Title:     "City Council",
			Start:     isoStart(time.Now().Add(24 * time.Hour)),
			AgendaURL: "https://example.gov/agenda/900",
			Items: []models.ItemRecord{
				{Title: "Call to Order", Sequence: 1},
				{Title: "Roll Call", Sequence: 2},
				{Title: "An ordinance amending the zoning map", Sequence: 3, MatterFile: "ORD-9"},
			},
		}},
	}}

	f, svcs, _, cityCfg := setupFetcher(t, stub)

	stats, err := f.SyncCity(ctx, cityCfg)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Items, "procedural items are still persisted")
	assert.Equal(t, 1, stats.Matters, "but never become matters")

	matters, err := svcs.Matter.ListByCity(ctx, "paloaltoCA", 0)
	require.NoError(t, err)
	assert.Len(t, matters, 1)
}

func TestSyncCityAdapterFailure(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	stub := &stubAdapter{result: &models.FetchResult{
		Success: false,
		Error:   "vendor returned 503",
	}}

	f, svcs, _, cityCfg := setupFetcher(t, stub)

	_, err := f.SyncCity(ctx, cityCfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapters.ErrVendorRequest)

	c, err := svcs.City.Get(ctx, "paloaltoCA")
	require.NoError(t, err)
	assert.Equal(t, 1, c.SyncErrorCount)
	assert.Nil(t, c.LastSyncedAt, "a failed sync is not a sync")
}

func TestSyncCityInvalidRecordSkipped(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	stub := &stubAdapter{result: &models.FetchResult{
		Success: true,
		Meetings: []models.MeetingRecord{
			{VendorID: "", Title: "Broken record", AgendaURL: "https://example.gov/x"},
			{VendorID: "1", Title: "Good record", Start: isoStart(time.Now().Add(24 * time.Hour)),
				AgendaURL: "https://example.gov/agenda/1"},
		},
	}}

	f, svcs, _, cityCfg := setupFetcher(t, stub)

	stats, err := f.SyncCity(ctx, cityCfg)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Meetings)
	assert.Equal(t, 1, stats.Skipped)

	meetings, err := svcs.Meeting.ListByCity(ctx, "paloaltoCA", 0)
	require.NoError(t, err)
	assert.Len(t, meetings, 1)
}

func TestSyncCityDateTBDNotEnqueued(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	stub := &stubAdapter{result: &models.FetchResult{
		Success: true,
		Meetings: []models.MeetingRecord{{
			VendorID:  "tbd",
			Title:     "Special Session",
			AgendaURL: "https://example.gov/agenda/tbd",
			Items:     []models.ItemRecord{{Title: "Charter amendment discussion", Sequence: 1}},
		}},
	}}

	f, _, client, cityCfg := setupFetcher(t, stub)

	stats, err := f.SyncCity(ctx, cityCfg)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Meetings)
	assert.Equal(t, 0, stats.Enqueued)

	queueStats, err := queue.GetStats(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, 0, queueStats.Pending)
}

func TestSyncCityRecordsVotes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	start := time.Now().Add(-72 * time.Hour) // past meeting with published minutes
	stub := &stubAdapter{result: &models.FetchResult{
		Success: true,
		Meetings: []models.MeetingRecord{{
			VendorID:   "v55",
			Title:      "Metro Council",
			Start:      isoStart(start),
			AgendaURL:  "https://example.gov/agenda/v55",
			VendorBody: "Metro Council",
			Items: []models.ItemRecord{{
				Title: "An ordinance rezoning 100 Main St", Sequence: 1,
				MatterFile: "BL2025-1098", VoteOutcome: "passed",
				VoteTally: map[string]int{"yes": 6, "no": 1},
				Votes: []models.VoteRecord{
					{MemberName: "Smith", Value: "yes", Sequence: 1},
					{MemberName: "Jones", Value: "no", Sequence: 2},
				},
			}},
		}},
	}}

	f, svcs, _, cityCfg := setupFetcher(t, stub)

	stats, err := f.SyncCity(ctx, cityCfg)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.VotesNew)

	matters, err := svcs.Matter.ListByCity(ctx, "paloaltoCA", 0)
	require.NoError(t, err)
	require.Len(t, matters, 1)
	assert.Equal(t, "passed", string(matters[0].Status))

	votes, err := svcs.Vote.ListForMatter(ctx, matters[0].ID)
	require.NoError(t, err)
	assert.Len(t, votes, 2)

	committees, err := svcs.Committee.ListByCity(ctx, "paloaltoCA")
	require.NoError(t, err)
	require.Len(t, committees, 1)
	assert.Equal(t, "Metro Council", committees[0].Name)
}
