package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Engagic/engagic-sub004/pkg/api"
	"github.com/Engagic/engagic-sub004/pkg/config"
	"github.com/Engagic/engagic-sub004/pkg/database"
	"github.com/Engagic/engagic-sub004/pkg/models"
	"github.com/Engagic/engagic-sub004/pkg/services"
	testdb "github.com/Engagic/engagic-sub004/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type apiEnv struct {
	svcs   *services.Services
	router *gin.Engine
}

func setupAPI(t *testing.T) *apiEnv {
	t.Helper()
	tc := testdb.NewTestClient(t)
	svcs := services.New(tc.Client, tc.DB())
	dbClient := database.NewClientFromEnt(tc.Client, tc.DB())

	server := api.NewServer(dbClient, svcs, nil)
	return &apiEnv{svcs: svcs, router: server.Router()}
}

func (env *apiEnv) get(t *testing.T, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	var body map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func (env *apiEnv) seed(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, env.svcs.City.SyncRegistry(ctx, []config.CityConfig{{
		Banana: "paloaltoCA", Name: "Palo Alto", State: "CA",
		Vendor: "primegov", VendorSlug: "cityofpaloalto",
		Timezone: "America/Los_Angeles", Status: "active",
	}}))

	rec := models.MeetingRecord{
		VendorID:  "m-1",
		Title:     "City Council Regular Meeting",
		Start:     "2025-11-10T18:00:00Z",
		AgendaURL: "https://vendor.example/agenda/1",
		Items: []models.ItemRecord{
			{Title: "Rezoning of 100 Main St", Sequence: 1, MatterFile: "ORD-100"},
			{Title: "FY26 Budget Adoption", Sequence: 2, MatterFile: "ORD-200"},
		},
	}
	meeting, err := env.svcs.Meeting.Upsert(ctx, "paloaltoCA", rec)
	require.NoError(t, err)

	items, err := env.svcs.Item.UpsertForMeeting(ctx, meeting.ID, rec.Items)
	require.NoError(t, err)
	for i, item := range items {
		matter, _, err := env.svcs.Matter.UpsertAppearance(ctx, "paloaltoCA", meeting.ID, item, rec.Items[i], meeting.Date)
		require.NoError(t, err)
		require.NoError(t, env.svcs.Item.LinkMatter(ctx, item.ID, matter.ID))
	}
	require.NoError(t, env.svcs.Item.SetSummary(ctx, items[0].ID,
		"Rezones 100 Main St to mixed use.", []string{"housing"}, "llm"))
	return meeting.ID
}

func TestHealthEndpoint(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	env := setupAPI(t)

	rec, body := env.get(t, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
}

func TestCityEndpoints(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	env := setupAPI(t)
	env.seed(t)

	rec, body := env.get(t, "/api/cities")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, body["count"])

	rec, body = env.get(t, "/api/cities/paloaltoCA")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "primegov", body["vendor"])

	rec, _ = env.get(t, "/api/cities/nowhereZZ")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMeetingEndpoints(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	env := setupAPI(t)
	meetingID := env.seed(t)

	rec, body := env.get(t, "/api/cities/paloaltoCA/meetings")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, body["count"])

	rec, body = env.get(t, "/api/meetings/"+meetingID)
	assert.Equal(t, http.StatusOK, rec.Code)
	items, ok := body["items"].([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 2)

	// No monolithic summary: the display summary is composed from the item
	// summaries, with the unsummarized item omitted.
	summary, _ := body["summary"].(string)
	assert.Contains(t, summary, "## Rezoning of 100 Main St")
	assert.Contains(t, summary, "Rezones 100 Main St to mixed use.")
	assert.NotContains(t, summary, "FY26 Budget Adoption")

	rec, _ = env.get(t, "/api/meetings/paloaltoCA_ffffffff")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMatterEndpoints(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	env := setupAPI(t)
	env.seed(t)

	rec, body := env.get(t, "/api/cities/paloaltoCA/matters")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, body["count"])

	matters := body["matters"].([]interface{})
	first := matters[0].(map[string]interface{})
	matterID := first["id"].(string)

	rec, body = env.get(t, "/api/matters/"+matterID)
	assert.Equal(t, http.StatusOK, rec.Code)
	appearances := body["appearances"].([]interface{})
	assert.Len(t, appearances, 1)
}

func TestSearchEndpoint(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	env := setupAPI(t)
	env.seed(t)

	rec, body := env.get(t, "/api/search?q=rezoning&type=matters")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, body["count"])

	rec, _ = env.get(t, "/api/search?q=&type=matters")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = env.get(t, "/api/search?q=rezoning&type=bogus")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQueueStatsEndpoint(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	env := setupAPI(t)

	rec, body := env.get(t, "/api/queue/stats")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 0, body["pending"])
}
