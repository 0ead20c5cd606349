package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/cratestats/cratestats/internal/http"
	handler "github.com/cratestats/cratestats/internal/http/handlers"
	rl "github.com/cratestats/cratestats/internal/http/rate_limiter"
	models "github.com/cratestats/cratestats/internal/models"
	"github.com/cratestats/cratestats/internal/repo"
	"github.com/cratestats/cratestats/internal/view"
)

var downloadRepo *repo.InMemoryDownloadRepository

// setupRouter wires the handlers against in-memory state and returns a fresh
// router. The limiter map is reset so earlier tests can't starve later ones.
func setupRouter(rows []models.CategoryCount) http.Handler {
	rl.CleanupAllVisitors()
	handler.SetCategoryTable(view.NewCategoryTable(rows))

	downloadRepo = repo.NewInMemoryDownloadRepository()
	handler.SetDownloadRepo(downloadRepo)

	return api.NewRouter()
}

func doGet(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doPostJSON(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func sampleCategories() []models.CategoryCount {
	return []models.CategoryCount{
		{Category: "games", CrateCount: 50},
		{Category: "tools", CrateCount: 30},
		{Category: "web", CrateCount: 10},
	}
}
