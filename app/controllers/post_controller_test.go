package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"harborlight/app/models"
	"harborlight/app/repositories/mock"
	"harborlight/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPostRouter() (*mux.Router, *services.PostService) {
	svc := services.NewPostService(mock.NewPostRepository())
	pc := NewPostController(svc)

	router := mux.NewRouter()
	router.HandleFunc("/api/posts", pc.Index).Methods("GET")
	router.HandleFunc("/api/posts/categories", pc.Categories).Methods("GET")
	router.HandleFunc("/api/posts/slug/{slug}", pc.ShowBySlug).Methods("GET")
	router.HandleFunc("/api/posts/{id:[0-9]+}", pc.Show).Methods("GET")
	router.HandleFunc("/api/posts", pc.Create).Methods("POST")
	router.HandleFunc("/api/posts/{id:[0-9]+}", pc.Edit).Methods("PUT")
	router.HandleFunc("/api/posts/{id:[0-9]+}", pc.Delete).Methods("DELETE")
	return router, svc
}

func seedPost(t *testing.T, svc *services.PostService, title, category string) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:    title,
		Content:  "Body of " + title,
		Category: category,
		Status:   models.PostStatusPublished,
	}
	require.NoError(t, svc.CreatePost(post))
	return post
}

func TestPostCreateEndpoint(t *testing.T) {
	router, _ := setupPostRouter()

	body := map[string]interface{}{
		"title":    "Hello, World!",
		"content":  "A body with enough words to read.",
		"category": "News",
		"status":   "PUBLISHED",
	}
	data, _ := json.Marshal(body)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/posts", bytes.NewReader(data))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "hello-world", created.Slug)
	assert.Equal(t, "1 min read", created.ReadTime)
}

func TestPostCreateValidationError(t *testing.T) {
	router, _ := setupPostRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/posts", strings.NewReader(`{"title":"No Body"}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error  string              `json:"error"`
		Fields []models.FieldError `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
	assert.NotEmpty(t, resp.Fields)
}

func TestPostCreateMalformedJSON(t *testing.T) {
	router, _ := setupPostRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/posts", strings.NewReader("{not json"))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestPostIndexFiltering(t *testing.T) {
	router, svc := setupPostRouter()

	for i := 1; i <= 12; i++ {
		seedPost(t, svc, fmt.Sprintf("News item %d", i), "News")
	}
	seedPost(t, svc, "Gala announcement", "Events")

	t.Run("paginated listing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/posts?page=2&page_size=9", nil)
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var page struct {
			Posts      []*models.Post `json:"posts"`
			Total      int            `json:"total"`
			TotalPages int            `json:"total_pages"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		assert.Equal(t, 13, page.Total)
		assert.Equal(t, 2, page.TotalPages)
		assert.Len(t, page.Posts, 4)
	})

	t.Run("category filter", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/posts?category=Events", nil)
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var page struct {
			Total int `json:"total"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		assert.Equal(t, 1, page.Total)
	})

	t.Run("search filter", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/posts?search=gala", nil)
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var page struct {
			Posts []*models.Post `json:"posts"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		require.Len(t, page.Posts, 1)
		assert.Equal(t, "Gala announcement", page.Posts[0].Title)
	})
}

func TestPostShowNotFound(t *testing.T) {
	router, _ := setupPostRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/posts/42", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestPostShowBySlug(t *testing.T) {
	router, svc := setupPostRouter()
	seedPost(t, svc, "Findable Post", "News")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/posts/slug/findable-post", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var post models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, "Findable Post", post.Title)
}

func TestPostDeleteEndpoint(t *testing.T) {
	router, svc := setupPostRouter()
	post := seedPost(t, svc, "Doomed Post", "News")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", fmt.Sprintf("/api/posts/%d", post.ID), nil)
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", fmt.Sprintf("/api/posts/%d", post.ID), nil)
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
