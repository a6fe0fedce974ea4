package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"harborlight/app/config"
	"harborlight/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	opts := badger.DefaultOptions(t.TempDir()).
		WithLogger(nil).
		WithSyncWrites(false)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Site.Organization = config.OrganizationConfig{
		Name: "Harborlight Foundation",
		URL:  "https://harborlight.org",
	}
	cfg.Site.Events = []config.EventConfig{
		{Name: "Coastal Cleanup", StartDate: "2026-09-12T09:00:00-04:00"},
	}

	return SetupRoutes(db, cfg)
}

func TestPostLifecycleThroughRouter(t *testing.T) {
	router := setupTestRouter(t)

	// Create
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/posts", strings.NewReader(
		`{"title":"Hello, World!","content":"Body text for the post.","category":"News","status":"PUBLISHED"}`))
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "hello-world", created.Slug)

	// Slug collision through the API produces a distinct slug
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/api/posts", strings.NewReader(
		`{"title":"Hello World","content":"Another body.","category":"News","status":"PUBLISHED"}`))
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var collided models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &collided))
	assert.NotEqual(t, created.Slug, collided.Slug)
	assert.True(t, strings.HasPrefix(collided.Slug, "hello-world-"))

	// List
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/posts", nil)
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Posts []*models.Post `json:"posts"`
		Total int            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 2, page.Total)

	// Fetch by slug
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/posts/slug/hello-world", nil)
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Delete
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("DELETE", "/api/posts/1", nil)
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestJobAndApplicationFlowThroughRouter(t *testing.T) {
	router := setupTestRouter(t)

	// Post a job
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/jobs", strings.NewReader(
		`{"title":"Program Coordinator","department":"Programs","location":"Port Haven","type":"FULL_TIME","description":"Coordinate programs.","requirements":"Experience.","deadline":"2026-10-31"}`))
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var job models.JobPosting
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, "program-coordinator", job.Slug)

	// Invalid deadline is a validation failure
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/api/jobs", strings.NewReader(
		`{"title":"Bad Job","department":"X","location":"Y","type":"FULL_TIME","description":"Z","requirements":"W","deadline":"whenever"}`))
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Apply to the job
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/api/applications", strings.NewReader(
		`{"job_id":1,"name":"Jordan Smith","email":"jordan@example.com"}`))
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var app models.JobApplication
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &app))
	assert.Equal(t, models.ApplicationStatusPending, app.Status)

	// Move it through the gate
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("PUT", "/api/applications/1/status", strings.NewReader(`{"status":"UNDER_REVIEW"}`))
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// There is no delete route for applications
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("DELETE", "/api/applications/1", nil)
	router.ServeHTTP(rec, req)
	assert.NotEqual(t, http.StatusNoContent, rec.Code)
}

func TestScholarshipFlowThroughRouter(t *testing.T) {
	router := setupTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/scholarships", strings.NewReader(
		`{"name":"Robin Lee","email":"robin@example.com","school":"Port Haven High","essay":"My essay."}`))
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("PUT", "/api/scholarships/1/status", strings.NewReader(`{"status":"ACCEPTED"}`))
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSEOEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/seo/organization", nil)
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var org map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &org))
	assert.Equal(t, "NGO", org["@type"])
	assert.Equal(t, "Harborlight Foundation", org["name"])

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/seo/events", nil)
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var events []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "Event", events[0]["@type"])
	_, hasOffers := events[0]["offers"]
	assert.False(t, hasOffers)
}

func TestRequestIDHeader(t *testing.T) {
	router := setupTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/posts", nil)
	router.ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
