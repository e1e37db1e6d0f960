package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Engagic/engagic-sub004/ent"
	entmatter "github.com/Engagic/engagic-sub004/ent/matter"
	"github.com/Engagic/engagic-sub004/pkg/config"
	"github.com/Engagic/engagic-sub004/pkg/models"
	"github.com/Engagic/engagic-sub004/pkg/services"
	testdb "github.com/Engagic/engagic-sub004/test/database"
)

func setupServices(t *testing.T) (*services.Services, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return services.New(client.Client, client.DB()), client.Client
}

func seedCity(t *testing.T, svcs *services.Services, banana string) {
	t.Helper()
	err := svcs.City.SyncRegistry(context.Background(), []config.CityConfig{{
		Banana:     banana,
		Name:       "Palo Alto",
		State:      "CA",
		Vendor:     "primegov",
		VendorSlug: "cityofpaloalto",
		Timezone:   "America/Los_Angeles",
		Status:     "active",
	}})
	require.NoError(t, err)
}

func TestCityRegistrySync(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	svcs, _ := setupServices(t)
	ctx := context.Background()

	seedCity(t, svcs, "paloaltoCA")

	c, err := svcs.City.Get(ctx, "paloaltoCA")
	require.NoError(t, err)
	assert.Equal(t, "primegov", c.Vendor)

	// Re-sync with a changed display name updates in place.
	err = svcs.City.SyncRegistry(ctx, []config.CityConfig{{
		Banana: "paloaltoCA", Name: "City of Palo Alto", State: "CA",
		Vendor: "primegov", VendorSlug: "cityofpaloalto",
		Timezone: "America/Los_Angeles", Status: "active",
	}})
	require.NoError(t, err)
	c, err = svcs.City.Get(ctx, "paloaltoCA")
	require.NoError(t, err)
	assert.Equal(t, "City of Palo Alto", c.Name)

	active, err := svcs.City.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestCitySyncResultCounters(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	svcs, _ := setupServices(t)
	ctx := context.Background()
	seedCity(t, svcs, "paloaltoCA")

	require.NoError(t, svcs.City.RecordSyncResult(ctx, "paloaltoCA", false))
	require.NoError(t, svcs.City.RecordSyncResult(ctx, "paloaltoCA", false))
	c, err := svcs.City.Get(ctx, "paloaltoCA")
	require.NoError(t, err)
	assert.Equal(t, 2, c.SyncErrorCount)
	assert.Nil(t, c.LastSyncedAt)

	require.NoError(t, svcs.City.RecordSyncResult(ctx, "paloaltoCA", true))
	c, err = svcs.City.Get(ctx, "paloaltoCA")
	require.NoError(t, err)
	assert.Equal(t, 0, c.SyncErrorCount)
	assert.NotNil(t, c.LastSyncedAt)
}

func TestMeetingUpsertIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	svcs, _ := setupServices(t)
	ctx := context.Background()
	seedCity(t, svcs, "paloaltoCA")

	rec := models.MeetingRecord{
		VendorID:  "12345",
		Title:     "City Council Regular Meeting",
		Start:     "2025-11-10T18:00:00",
		AgendaURL: "https://example.gov/agenda/12345",
	}

	m1, err := svcs.Meeting.Upsert(ctx, "paloaltoCA", rec)
	require.NoError(t, err)
	assert.Equal(t, models.MeetingID("paloaltoCA", "12345"), m1.ID)
	require.NotNil(t, m1.Date)

	rec.PacketURL = "https://example.gov/packet/12345"
	m2, err := svcs.Meeting.Upsert(ctx, "paloaltoCA", rec)
	require.NoError(t, err)
	assert.Equal(t, m1.ID, m2.ID)
	assert.Equal(t, "https://example.gov/packet/12345", m2.PacketURL)

	meetings, err := svcs.Meeting.ListByCity(ctx, "paloaltoCA", 0)
	require.NoError(t, err)
	assert.Len(t, meetings, 1, "re-sync must not create a second row")
}

func TestMeetingUpsertDateTBD(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	svcs, _ := setupServices(t)
	ctx := context.Background()
	seedCity(t, svcs, "paloaltoCA")

	m, err := svcs.Meeting.Upsert(ctx, "paloaltoCA", models.MeetingRecord{
		VendorID:  "tbd-1",
		Title:     "Special Session",
		AgendaURL: "https://example.gov/agenda/tbd",
	})
	require.NoError(t, err)
	assert.Nil(t, m.Date, "empty start means date TBD")
}

func TestItemUpsertAndSummary(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	svcs, _ := setupServices(t)
	ctx := context.Background()
	seedCity(t, svcs, "paloaltoCA")

	m, err := svcs.Meeting.Upsert(ctx, "paloaltoCA", models.MeetingRecord{
		VendorID: "12345", Title: "Council", Start: "2025-11-10T18:00:00",
		AgendaURL: "https://example.gov/a",
	})
	require.NoError(t, err)

	records := []models.ItemRecord{
		{Title: "Rezoning of 100 Main St", Sequence: 1, Attachments: []models.Attachment{
			{Name: "Staff Report", URL: "https://example.gov/att/1.pdf", Type: models.AttachmentPDF},
		}},
		{Title: "FY26 Budget Adoption", Sequence: 2},
	}
	items, err := svcs.Item.UpsertForMeeting(ctx, m.ID, records)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.NotEmpty(t, items[0].AttachmentHash)
	assert.Empty(t, items[1].AttachmentHash)

	// Idempotent re-run.
	again, err := svcs.Item.UpsertForMeeting(ctx, m.ID, records)
	require.NoError(t, err)
	assert.Equal(t, items[0].ID, again[0].ID)

	err = svcs.Item.SetSummary(ctx, items[0].ID, "Rezones the parcel.", []string{"zoning"}, "llm")
	require.NoError(t, err)

	stored, err := svcs.Item.ListForMeeting(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, stored[0].Summary)
	assert.Equal(t, "Rezones the parcel.", *stored[0].Summary)
	assert.Equal(t, []string{"zoning"}, stored[0].Topics)
	assert.NotNil(t, stored[0].SummarizedAt)

	has, err := svcs.Meeting.HasUnsummarizedItems(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, has, "second item still lacks a summary")

	require.NoError(t, svcs.Item.MarkSkipped(ctx, items[1].ID, "no_attachments"))
	has, err = svcs.Meeting.HasUnsummarizedItems(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, has, "skipped items do not count as unsummarized")
}

func TestMatterAppearanceLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	svcs, _ := setupServices(t)
	ctx := context.Background()
	seedCity(t, svcs, "nashvilleTN")

	rec := models.ItemRecord{
		Title:      "An ordinance rezoning 100 Main St",
		Sequence:   3,
		MatterFile: "BL2025-1098",
		MatterType: "Ordinance",
		Sponsors:   []string{"Smith", "Jones"},
	}

	mA, err := svcs.Meeting.Upsert(ctx, "nashvilleTN", models.MeetingRecord{
		VendorID: "a", Title: "Meeting A", Start: "2025-11-04T18:00:00",
		AgendaURL: "https://example.gov/a",
	})
	require.NoError(t, err)
	itemsA, err := svcs.Item.UpsertForMeeting(ctx, mA.ID, []models.ItemRecord{rec})
	require.NoError(t, err)

	matter1, created, err := svcs.Matter.UpsertAppearance(ctx, "nashvilleTN", mA.ID, itemsA[0], rec, mA.Date)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 1, matter1.AppearanceCount)
	assert.Equal(t, entmatter.StatusActive, matter1.Status)

	// Same matter at a second meeting, now with a recorded vote.
	mB, err := svcs.Meeting.Upsert(ctx, "nashvilleTN", models.MeetingRecord{
		VendorID: "b", Title: "Meeting B", Start: "2025-11-18T18:00:00",
		AgendaURL: "https://example.gov/b",
	})
	require.NoError(t, err)
	recB := rec
	recB.Action = "Third Reading"
	recB.VoteOutcome = "passed"
	recB.VoteTally = map[string]int{"yes": 6, "no": 1}
	itemsB, err := svcs.Item.UpsertForMeeting(ctx, mB.ID, []models.ItemRecord{recB})
	require.NoError(t, err)

	matter2, created, err := svcs.Matter.UpsertAppearance(ctx, "nashvilleTN", mB.ID, itemsB[0], recB, mB.Date)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, matter1.ID, matter2.ID, "matter_file keys both appearances to one matter")
	assert.Equal(t, 2, matter2.AppearanceCount)
	assert.Equal(t, entmatter.StatusPassed, matter2.Status)
	require.NotNil(t, matter2.FinalVoteDate)

	// Re-running the same sync does not inflate the count.
	matter3, created, err := svcs.Matter.UpsertAppearance(ctx, "nashvilleTN", mB.ID, itemsB[0], recB, mB.Date)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 2, matter3.AppearanceCount)

	apps, err := svcs.Appearance.ListForMatter(ctx, matter2.ID)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	require.NotNil(t, apps[0].VoteOutcome)
	assert.Equal(t, map[string]int{"yes": 6, "no": 1}, apps[0].VoteTally)
}

func TestMatterCanonicalSummaryAndPrune(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	svcs, _ := setupServices(t)
	ctx := context.Background()
	seedCity(t, svcs, "nashvilleTN")

	rec := models.ItemRecord{Title: "Sidewalk repair contract", Sequence: 1, MatterFile: "RS2025-77"}
	m, err := svcs.Meeting.Upsert(ctx, "nashvilleTN", models.MeetingRecord{
		VendorID: "m1", Title: "Council", Start: "2025-10-01T18:00:00",
		AgendaURL: "https://example.gov/a",
	})
	require.NoError(t, err)
	items, err := svcs.Item.UpsertForMeeting(ctx, m.ID, []models.ItemRecord{rec})
	require.NoError(t, err)
	mat, _, err := svcs.Matter.UpsertAppearance(ctx, "nashvilleTN", m.ID, items[0], rec, m.Date)
	require.NoError(t, err)

	err = svcs.Matter.UpdateCanonical(ctx, mat.ID, "Funds sidewalk repairs.", []string{"transportation"}, "hash-abc")
	require.NoError(t, err)
	mat, err = svcs.Matter.Get(ctx, mat.ID)
	require.NoError(t, err)
	require.NotNil(t, mat.CanonicalSummary)
	assert.Equal(t, "Funds sidewalk repairs.", *mat.CanonicalSummary)
	assert.Equal(t, "hash-abc", mat.AttachmentHash)

	// Deleting the meeting's appearances drops the refcount; the sweep prunes.
	n, err := svcs.Appearance.DeleteForMeeting(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	pruned, err := svcs.Matter.PruneOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pruned)
	_, err = svcs.Matter.Get(ctx, mat.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCouncilAndVotes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	svcs, _ := setupServices(t)
	ctx := context.Background()
	seedCity(t, svcs, "nashvilleTN")

	rec := models.ItemRecord{Title: "Budget amendment", Sequence: 1, MatterFile: "BL2025-2"}
	m, err := svcs.Meeting.Upsert(ctx, "nashvilleTN", models.MeetingRecord{
		VendorID: "v1", Title: "Council", Start: "2025-10-07T18:00:00",
		AgendaURL: "https://example.gov/a",
	})
	require.NoError(t, err)
	items, err := svcs.Item.UpsertForMeeting(ctx, m.ID, []models.ItemRecord{rec})
	require.NoError(t, err)
	mat, _, err := svcs.Matter.UpsertAppearance(ctx, "nashvilleTN", m.ID, items[0], rec, m.Date)
	require.NoError(t, err)

	_, err = svcs.Council.RecordSponsorships(ctx, "nashvilleTN", []string{"Smith", "Jones"})
	require.NoError(t, err)

	votes := []models.VoteRecord{
		{MemberName: "Smith", Value: "yes", Sequence: 1},
		{MemberName: "Jones", Value: "no", Sequence: 2},
		{MemberName: "Garcia", Value: "abstain", Sequence: 3},
	}
	n, err := svcs.Vote.RecordVotes(ctx, "nashvilleTN", mat.ID, m.ID, m.Date, votes)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// Replaying the roll call records nothing new.
	n, err = svcs.Vote.RecordVotes(ctx, "nashvilleTN", mat.ID, m.ID, m.Date, votes)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	members, err := svcs.Council.ListByCity(ctx, "nashvilleTN")
	require.NoError(t, err)
	require.Len(t, members, 3, "voting creates members on first sight")

	for _, member := range members {
		if member.Name == "Smith" {
			assert.Equal(t, 1, member.SponsorshipCount)
			assert.Equal(t, 1, member.VoteCount)
		}
	}

	stored, err := svcs.Vote.ListForMatter(ctx, mat.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestCommitteeMemberships(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	svcs, _ := setupServices(t)
	ctx := context.Background()
	seedCity(t, svcs, "paloaltoCA")

	comm, err := svcs.Committee.Ensure(ctx, "paloaltoCA", "Planning Commission", "body-7")
	require.NoError(t, err)

	// Second Ensure with no body id keeps the existing one.
	again, err := svcs.Committee.Ensure(ctx, "paloaltoCA", "Planning Commission", "")
	require.NoError(t, err)
	assert.Equal(t, comm.ID, again.ID)
	assert.Equal(t, "body-7", again.VendorBodyID)

	member, err := svcs.Council.EnsureMember(ctx, "paloaltoCA", "Smith")
	require.NoError(t, err)
	require.NoError(t, svcs.Committee.EnsureMembership(ctx, comm.ID, member.ID, "Chair"))
	require.NoError(t, svcs.Committee.EnsureMembership(ctx, comm.ID, member.ID, ""))

	require.NoError(t, svcs.Committee.CloseMembership(ctx, comm.ID, member.ID))
	err = svcs.Committee.CloseMembership(ctx, comm.ID, member.ID)
	assert.ErrorIs(t, err, services.ErrNotFound, "already closed")
}

func TestProcessingCache(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	svcs, _ := setupServices(t)
	ctx := context.Background()

	url := "https://example.gov/packet/99.pdf"
	_, err := svcs.Cache.Lookup(ctx, url)
	assert.ErrorIs(t, err, services.ErrNotFound)

	require.NoError(t, svcs.Cache.Store(ctx, url, "hash-1", "monolithic", 4200*time.Millisecond))
	entry, err := svcs.Cache.Lookup(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, "monolithic", entry.Method)
	assert.Equal(t, 4200, entry.ElapsedMs)

	// Re-store refreshes in place; a later lookup sees the hit counter.
	require.NoError(t, svcs.Cache.Store(ctx, url, "hash-2", "monolithic", time.Second))
	entry, err = svcs.Cache.Lookup(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, "hash-2", entry.ContentHash)
	assert.Equal(t, 1, entry.HitCount, "first lookup's bump is visible now")

	evicted, err := svcs.Cache.EvictStale(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, evicted, "recently accessed entries survive")
}

func TestSearch(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	svcs, _ := setupServices(t)
	ctx := context.Background()
	seedCity(t, svcs, "paloaltoCA")

	_, err := svcs.Meeting.Upsert(ctx, "paloaltoCA", models.MeetingRecord{
		VendorID: "s1", Title: "Transportation Committee Special Meeting",
		Start: "2025-11-01T18:00:00", AgendaURL: "https://example.gov/a",
	})
	require.NoError(t, err)

	rec := models.ItemRecord{Title: "Bike lane expansion on Middlefield Road", Sequence: 1, MatterFile: "RS2025-9"}
	m, err := svcs.Meeting.Upsert(ctx, "paloaltoCA", models.MeetingRecord{
		VendorID: "s2", Title: "City Council", Start: "2025-11-02T18:00:00",
		AgendaURL: "https://example.gov/b",
	})
	require.NoError(t, err)
	items, err := svcs.Item.UpsertForMeeting(ctx, m.ID, []models.ItemRecord{rec})
	require.NoError(t, err)
	mat, _, err := svcs.Matter.UpsertAppearance(ctx, "paloaltoCA", m.ID, items[0], rec, m.Date)
	require.NoError(t, err)
	require.NoError(t, svcs.Matter.UpdateCanonical(ctx, mat.ID, "Adds protected bike lanes.", []string{"transportation"}, ""))

	hits, err := svcs.Search.SearchMeetings(ctx, "paloaltoCA", "transportation", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Contains(t, hits[0].Title, "Transportation")

	matterHits, err := svcs.Search.SearchMatters(ctx, "paloaltoCA", "bike lanes", 10)
	require.NoError(t, err)
	require.Len(t, matterHits, 1)
	assert.Equal(t, mat.ID, matterHits[0].MatterID)

	_, err = svcs.Search.SearchMeetings(ctx, "", "   ", 10)
	assert.True(t, services.IsValidationError(err))
}
