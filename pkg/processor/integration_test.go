package processor_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Engagic/engagic-sub004/ent"
	"github.com/Engagic/engagic-sub004/pkg/config"
	"github.com/Engagic/engagic-sub004/pkg/extract"
	"github.com/Engagic/engagic-sub004/pkg/llm"
	"github.com/Engagic/engagic-sub004/pkg/models"
	"github.com/Engagic/engagic-sub004/pkg/processor"
	"github.com/Engagic/engagic-sub004/pkg/queue"
	"github.com/Engagic/engagic-sub004/pkg/services"
	testdb "github.com/Engagic/engagic-sub004/test/database"
)

type stubDownloader struct {
	docs  map[string][]byte
	calls []string
}

func (d *stubDownloader) Fetch(_ context.Context, url string) ([]byte, error) {
	d.calls = append(d.calls, url)
	data, ok := d.docs[url]
	if !ok {
		return nil, fmt.Errorf("no document at %s", url)
	}
	return data, nil
}

// stubExtractor maps document bytes to canned results; unknown bytes fail.
type stubExtractor struct {
	results map[string]*extract.Result
}

func (e *stubExtractor) ExtractFromBytes(_ context.Context, data []byte) (*extract.Result, error) {
	if r, ok := e.results[string(data)]; ok {
		return r, nil
	}
	return &extract.Result{Success: false, Error: "unparseable document"}, nil
}

type stubSummarizer struct {
	itemSummaries   map[string]*llm.ItemSummary // by request key
	itemErr         error
	meetingSummary  string
	meetingErr      error
	itemCalls       []llm.ItemRequest
	batchContexts   []string
	meetingCalls    int
	failHardOnCalls bool
	t               *testing.T
}

func (s *stubSummarizer) SummarizeItem(_ context.Context, req llm.ItemRequest) (*llm.ItemSummary, error) {
	if s.failHardOnCalls {
		s.t.Fatalf("unexpected SummarizeItem call for %s", req.Key)
	}
	s.itemCalls = append(s.itemCalls, req)
	if s.itemErr != nil {
		return nil, s.itemErr
	}
	sum, ok := s.itemSummaries[req.Key]
	if !ok {
		return nil, fmt.Errorf("no scripted summary for %s", req.Key)
	}
	return sum, nil
}

func (s *stubSummarizer) SummarizeItemsBatch(_ context.Context, meetingContext string, items []llm.ItemRequest) <-chan llm.ChunkResult {
	if s.failHardOnCalls {
		s.t.Fatal("unexpected SummarizeItemsBatch call")
	}
	s.batchContexts = append(s.batchContexts, meetingContext)
	s.itemCalls = append(s.itemCalls, items...)

	out := make(chan llm.ChunkResult, 1)
	if s.itemErr != nil {
		out <- llm.ChunkResult{Err: s.itemErr}
	} else {
		summaries := make(map[string]*llm.ItemSummary)
		for _, req := range items {
			if sum, ok := s.itemSummaries[req.Key]; ok {
				summaries[req.Key] = sum
			}
		}
		out <- llm.ChunkResult{Summaries: summaries}
	}
	close(out)
	return out
}

func (s *stubSummarizer) SummarizeMeeting(_ context.Context, _ string, _ int) (string, error) {
	if s.failHardOnCalls {
		s.t.Fatal("unexpected SummarizeMeeting call")
	}
	s.meetingCalls++
	if s.meetingErr != nil {
		return "", s.meetingErr
	}
	return s.meetingSummary, nil
}

type processorEnv struct {
	client     *ent.Client
	svcs       *services.Services
	downloader *stubDownloader
	extractor  *stubExtractor
	summarizer *stubSummarizer
	proc       *processor.Processor
}

func setupProcessor(t *testing.T) *processorEnv {
	t.Helper()
	tc := testdb.NewTestClient(t)
	svcs := services.New(tc.Client, tc.DB())

	err := svcs.City.SyncRegistry(context.Background(), []config.CityConfig{{
		Banana: "paloaltoCA", Name: "Palo Alto", State: "CA",
		Vendor: "primegov", VendorSlug: "cityofpaloalto",
		Timezone: "America/Los_Angeles", Status: "active",
	}})
	require.NoError(t, err)

	env := &processorEnv{
		client:     tc.Client,
		svcs:       svcs,
		downloader: &stubDownloader{docs: map[string][]byte{}},
		extractor:  &stubExtractor{results: map[string]*extract.Result{}},
		summarizer: &stubSummarizer{itemSummaries: map[string]*llm.ItemSummary{}, t: t},
	}
	env.proc = processor.New(svcs, env.downloader, env.extractor, env.summarizer, &config.Config{
		MaxRetries:    3,
		QueueLeaseTTL: 10 * time.Minute,
	})
	return env
}

// seedMeeting persists a meeting with its items and links matters the way a
// sync would, then enqueues and returns the processing job.
func (env *processorEnv) seedMeeting(t *testing.T, rec models.MeetingRecord) (*ent.Meeting, *ent.QueueJob) {
	t.Helper()
	ctx := context.Background()

	meeting, err := env.svcs.Meeting.Upsert(ctx, "paloaltoCA", rec)
	require.NoError(t, err)

	items, err := env.svcs.Item.UpsertForMeeting(ctx, meeting.ID, rec.Items)
	require.NoError(t, err)
	for i, item := range items {
		if models.IsProcedural(rec.Items[i].Title) {
			continue
		}
		matter, _, err := env.svcs.Matter.UpsertAppearance(ctx, "paloaltoCA", meeting.ID, item, rec.Items[i], meeting.Date)
		require.NoError(t, err)
		require.NoError(t, env.svcs.Item.LinkMatter(ctx, item.ID, matter.ID))
	}

	sourceURL := meeting.PacketURL
	if sourceURL == "" {
		sourceURL = meeting.AgendaURL
	}
	job, err := queue.Enqueue(ctx, env.client, queue.EnqueueInput{
		SourceURL: sourceURL,
		MeetingID: meeting.ID,
		Banana:    "paloaltoCA",
		JobType:   queue.JobTypeProcessMeeting,
		Priority:  100,
		Payload:   map[string]interface{}{"meeting_id": meeting.ID, "banana": "paloaltoCA"},
	})
	require.NoError(t, err)

	meeting, err = env.svcs.Meeting.GetDetail(ctx, meeting.ID)
	require.NoError(t, err)
	return meeting, job
}

func pdfAttachment(url string) models.Attachment {
	return models.Attachment{Name: "Staff report", URL: url, Type: models.AttachmentPDF}
}

func TestExecuteItemLevelSingleItem(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	env := setupProcessor(t)
	ctx := context.Background()

	rec := models.MeetingRecord{
		VendorID:  "m-1",
		Title:     "City Council Regular Meeting",
		Start:     "2025-11-10T18:00:00Z",
		AgendaURL: "https://vendor.example/agenda/1",
		Items: []models.ItemRecord{
			{Title: "Call to Order", Sequence: 1},
			{Title: "Rezoning of 100 Main St", Sequence: 2, MatterFile: "ORD-100",
				Attachments: []models.Attachment{pdfAttachment("https://vendor.example/docs/ord-100.pdf")}},
			{Title: "Commendation for retiring librarian", Sequence: 3},
		},
	}

	env.downloader.docs["https://vendor.example/docs/ord-100.pdf"] = []byte("ord-100-bytes")
	env.extractor.results["ord-100-bytes"] = &extract.Result{Success: true, Text: "Ordinance text", PageCount: 12}

	meeting, job := env.seedMeeting(t, rec)
	var itemKey string
	for _, item := range meeting.Edges.Items {
		if item.Sequence == 2 {
			itemKey = item.ID
		}
	}
	env.summarizer.itemSummaries[itemKey] = &llm.ItemSummary{
		Summary:       "Rezones 100 Main St from R-1 to mixed use.",
		CitizenImpact: "Denser housing near downtown.",
		Topics:        []string{"housing", "zoning"},
		Confidence:    "high",
	}

	result := env.proc.Execute(ctx, job)
	require.NoError(t, result.Err)
	require.NotNil(t, result.Metadata)
	assert.NotEmpty(t, result.Metadata["attachment_fingerprint"])

	detail, err := env.svcs.Meeting.GetDetail(ctx, meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", string(detail.ProcessingStatus))
	assert.Equal(t, "item_level_3_items", detail.ProcessingMethod)
	assert.Equal(t, []string{"housing", "zoning"}, detail.Topics)

	for _, item := range detail.Edges.Items {
		switch item.Sequence {
		case 1:
			assert.Nil(t, item.Summary, "procedural item must not be summarized")
		case 2:
			require.NotNil(t, item.Summary)
			assert.Contains(t, *item.Summary, "Rezones 100 Main St")
			assert.Contains(t, *item.Summary, "Citizen impact")
			assert.Equal(t, "llm", item.ProcessingMethod)
			require.NotNil(t, item.MatterID)

			matter, err := env.svcs.Matter.Get(ctx, *item.MatterID)
			require.NoError(t, err)
			require.NotNil(t, matter.CanonicalSummary)
			assert.Equal(t, *item.Summary, *matter.CanonicalSummary)
			assert.Equal(t, item.AttachmentHash, matter.AttachmentHash)
		case 3:
			assert.Equal(t, "no_attachments", item.ProcessingMethod)
			assert.Nil(t, item.Summary)
		}
	}

	// One pending item goes through the direct call, not the batch tier.
	assert.Len(t, env.summarizer.itemCalls, 1)
	assert.Empty(t, env.summarizer.batchContexts)
}

func TestExecuteItemLevelBatch(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	env := setupProcessor(t)
	ctx := context.Background()

	rec := models.MeetingRecord{
		VendorID:  "m-2",
		Title:     "Planning Commission",
		Start:     "2025-11-12T18:00:00Z",
		AgendaURL: "https://vendor.example/agenda/2",
		Items: []models.ItemRecord{
			{Title: "Use permit: 42 Oak Ave", Sequence: 1,
				Attachments: []models.Attachment{pdfAttachment("https://vendor.example/docs/a.pdf")}},
			{Title: "Sidewalk repair contract", Sequence: 2,
				Attachments: []models.Attachment{pdfAttachment("https://vendor.example/docs/b.pdf")}},
		},
	}
	env.downloader.docs["https://vendor.example/docs/a.pdf"] = []byte("doc-a")
	env.downloader.docs["https://vendor.example/docs/b.pdf"] = []byte("doc-b")
	env.extractor.results["doc-a"] = &extract.Result{Success: true, Text: "permit text", PageCount: 4}
	env.extractor.results["doc-b"] = &extract.Result{Success: true, Text: "contract text", PageCount: 9}

	meeting, job := env.seedMeeting(t, rec)
	for _, item := range meeting.Edges.Items {
		env.summarizer.itemSummaries[item.ID] = &llm.ItemSummary{
			Summary: "Summary for " + item.Title,
			Topics:  []string{"infrastructure"},
		}
	}

	result := env.proc.Execute(ctx, job)
	require.NoError(t, result.Err)

	// Two pending items go through the batch tier with the agenda as shared
	// context.
	require.Len(t, env.summarizer.batchContexts, 1)
	assert.Contains(t, env.summarizer.batchContexts[0], "Planning Commission")
	assert.Contains(t, env.summarizer.batchContexts[0], "Use permit: 42 Oak Ave")

	detail, err := env.svcs.Meeting.GetDetail(ctx, meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", string(detail.ProcessingStatus))
	for _, item := range detail.Edges.Items {
		require.NotNil(t, item.Summary)
	}
}

func TestExecuteMatterCacheHit(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	env := setupProcessor(t)
	ctx := context.Background()

	rec := models.MeetingRecord{
		VendorID:  "m-3",
		Title:     "City Council Regular Meeting",
		Start:     "2025-11-17T18:00:00Z",
		AgendaURL: "https://vendor.example/agenda/3",
		Items: []models.ItemRecord{
			{Title: "Second reading: rezoning of 100 Main St", Sequence: 1, MatterFile: "ORD-100",
				Attachments: []models.Attachment{pdfAttachment("https://vendor.example/docs/ord-100.pdf")}},
		},
	}
	meeting, job := env.seedMeeting(t, rec)

	item := meeting.Edges.Items[0]
	require.NotNil(t, item.MatterID)
	err := env.svcs.Matter.UpdateCanonical(ctx, *item.MatterID,
		"Rezones 100 Main St from R-1 to mixed use.", []string{"housing"}, item.AttachmentHash)
	require.NoError(t, err)

	// The attachment set is unchanged, so no download, extraction, or LLM
	// call may happen.
	env.summarizer.failHardOnCalls = true

	result := env.proc.Execute(ctx, job)
	require.NoError(t, result.Err)
	assert.Empty(t, env.downloader.calls)

	detail, err := env.svcs.Meeting.GetDetail(ctx, meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", string(detail.ProcessingStatus))
	got := detail.Edges.Items[0]
	require.NotNil(t, got.Summary)
	assert.Equal(t, "Rezones 100 Main St from R-1 to mixed use.", *got.Summary)
	assert.Equal(t, "matter_cache_hit", got.ProcessingMethod)
	assert.Equal(t, []string{"housing"}, detail.Topics)
}

func TestExecuteExtractionFailureIsContained(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	env := setupProcessor(t)
	ctx := context.Background()

	rec := models.MeetingRecord{
		VendorID:  "m-4",
		Title:     "City Council Regular Meeting",
		Start:     "2025-11-19T18:00:00Z",
		AgendaURL: "https://vendor.example/agenda/4",
		Items: []models.ItemRecord{
			{Title: "Scanned exhibit with no text layer", Sequence: 1,
				Attachments: []models.Attachment{pdfAttachment("https://vendor.example/docs/scan.pdf")}},
			{Title: "Budget amendment", Sequence: 2,
				Attachments: []models.Attachment{pdfAttachment("https://vendor.example/docs/budget.pdf")}},
		},
	}
	env.downloader.docs["https://vendor.example/docs/scan.pdf"] = []byte("scan-bytes")
	env.downloader.docs["https://vendor.example/docs/budget.pdf"] = []byte("budget-bytes")
	// scan-bytes has no extractor result, so it fails as unparseable.
	env.extractor.results["budget-bytes"] = &extract.Result{Success: true, Text: "budget text", PageCount: 30}

	meeting, job := env.seedMeeting(t, rec)
	for _, item := range meeting.Edges.Items {
		if item.Sequence == 2 {
			env.summarizer.itemSummaries[item.ID] = &llm.ItemSummary{
				Summary: "Moves $2M into road maintenance.",
				Topics:  []string{"budget"},
			}
		}
	}

	result := env.proc.Execute(ctx, job)
	require.NoError(t, result.Err, "one good item keeps the meeting out of failed")

	detail, err := env.svcs.Meeting.GetDetail(ctx, meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", string(detail.ProcessingStatus))
	for _, item := range detail.Edges.Items {
		switch item.Sequence {
		case 1:
			assert.Nil(t, item.Summary)
			assert.Contains(t, item.ExtractionError, "unparseable")
		case 2:
			require.NotNil(t, item.Summary)
		}
	}
}

func TestExecuteAllItemsFailedMarksMeetingFailed(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	env := setupProcessor(t)
	ctx := context.Background()

	rec := models.MeetingRecord{
		VendorID:  "m-5",
		Title:     "City Council Regular Meeting",
		Start:     "2025-11-24T18:00:00Z",
		AgendaURL: "https://vendor.example/agenda/5",
		Items: []models.ItemRecord{
			{Title: "Utility rate adjustment", Sequence: 1,
				Attachments: []models.Attachment{pdfAttachment("https://vendor.example/docs/rates.pdf")}},
		},
	}
	env.downloader.docs["https://vendor.example/docs/rates.pdf"] = []byte("rates-bytes")
	env.extractor.results["rates-bytes"] = &extract.Result{Success: true, Text: "rate text", PageCount: 6}
	env.summarizer.itemErr = errors.New("model unavailable")

	meeting, job := env.seedMeeting(t, rec)

	result := env.proc.Execute(ctx, job)
	require.Error(t, result.Err)
	assert.False(t, result.Permanent, "LLM failures retry")

	detail, err := env.svcs.Meeting.Get(ctx, meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, "failed", string(detail.ProcessingStatus))
}

func TestExecuteMonolithic(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	env := setupProcessor(t)
	ctx := context.Background()

	rec := models.MeetingRecord{
		VendorID:  "m-6",
		Title:     "Special Meeting",
		Start:     "2025-12-01T18:00:00Z",
		PacketURL: "https://vendor.example/packets/6.pdf",
	}
	env.downloader.docs["https://vendor.example/packets/6.pdf"] = []byte("packet-bytes")
	env.extractor.results["packet-bytes"] = &extract.Result{Success: true, Text: "full packet text", PageCount: 80}
	env.summarizer.meetingSummary = "The council considers a single emergency item."

	meeting, job := env.seedMeeting(t, rec)

	result := env.proc.Execute(ctx, job)
	require.NoError(t, result.Err)
	assert.Equal(t, 1, env.summarizer.meetingCalls)

	detail, err := env.svcs.Meeting.Get(ctx, meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", string(detail.ProcessingStatus))
	assert.Equal(t, "monolithic", detail.ProcessingMethod)
	require.NotNil(t, detail.Summary)
	assert.Equal(t, "The council considers a single emergency item.", *detail.Summary)

	entry, err := env.svcs.Cache.Lookup(ctx, rec.PacketURL)
	require.NoError(t, err)
	assert.Equal(t, "monolithic", entry.Method)
	assert.NotEmpty(t, entry.ContentHash)
}

func TestExecuteMonolithicCacheShortCircuit(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	env := setupProcessor(t)
	ctx := context.Background()

	rec := models.MeetingRecord{
		VendorID:  "m-7",
		Title:     "Special Meeting",
		Start:     "2025-12-08T18:00:00Z",
		PacketURL: "https://vendor.example/packets/7.pdf",
	}
	env.downloader.docs["https://vendor.example/packets/7.pdf"] = []byte("packet-bytes")
	env.extractor.results["packet-bytes"] = &extract.Result{Success: true, Text: "packet text", PageCount: 20}
	env.summarizer.meetingSummary = "First pass summary."

	meeting, job := env.seedMeeting(t, rec)
	result := env.proc.Execute(ctx, job)
	require.NoError(t, result.Err)

	// Second run for the same packet: the cache plus the stored summary skip
	// every expensive step.
	env.summarizer.failHardOnCalls = true
	env.downloader.calls = nil

	job2, err := queue.Enqueue(ctx, env.client, queue.EnqueueInput{
		SourceURL: rec.PacketURL + "?retry",
		MeetingID: meeting.ID,
		Banana:    "paloaltoCA",
		JobType:   queue.JobTypeProcessMeeting,
		Priority:  100,
	})
	require.NoError(t, err)

	result = env.proc.Execute(ctx, job2)
	require.NoError(t, result.Err)
	assert.Empty(t, env.downloader.calls)

	detail, err := env.svcs.Meeting.Get(ctx, meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", string(detail.ProcessingStatus))
}

func TestExecuteUnknownMeetingIsPermanent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	env := setupProcessor(t)
	ctx := context.Background()

	job, err := queue.Enqueue(ctx, env.client, queue.EnqueueInput{
		SourceURL: "https://vendor.example/agenda/gone",
		MeetingID: "paloaltoCA_ffffffff",
		Banana:    "paloaltoCA",
		JobType:   queue.JobTypeProcessMeeting,
	})
	require.NoError(t, err)

	result := env.proc.Execute(ctx, job)
	require.Error(t, result.Err)
	assert.True(t, result.Permanent)
}

func TestExecuteRejectsUnknownJobType(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	env := setupProcessor(t)

	job := &ent.QueueJob{JobType: "reindex_everything", CreatedAt: time.Now()}
	result := env.proc.Execute(context.Background(), job)
	require.Error(t, result.Err)
	assert.True(t, result.Permanent)
}
