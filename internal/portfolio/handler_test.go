// aykutspohr | 2026
// handler_test.go

package portfolio

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()

	svc := NewService(testProjects(), WithClock(fixedClock("2026-08-29")))
	handler := NewHandler(svc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func doGet(t *testing.T, r chi.Router, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

type projectListEnvelope struct {
	Success bool                `json:"success"`
	Data    ProjectListResponse `json:"data"`
}

func decodeProjectList(t *testing.T, rr *httptest.ResponseRecorder) ProjectListResponse {
	t.Helper()

	var envelope projectListEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	return envelope.Data
}

func TestListProjects(t *testing.T) {
	r := newTestRouter(t)

	rr := doGet(t, r, "/projects")
	require.Equal(t, http.StatusOK, rr.Code)

	list := decodeProjectList(t, rr)
	assert.Equal(t, 3, list.Total)
}

func TestListProjectsFeatured(t *testing.T) {
	r := newTestRouter(t)

	rr := doGet(t, r, "/projects?featured=true")
	require.Equal(t, http.StatusOK, rr.Code)

	list := decodeProjectList(t, rr)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "baeckerei", list.Projects[0].ID)
	assert.Equal(t, "fitness", list.Projects[1].ID)
}

func TestListProjectsFeaturedAcceptsBoolForms(t *testing.T) {
	r := newTestRouter(t)

	rr := doGet(t, r, "/projects?featured=1")
	require.Equal(t, http.StatusOK, rr.Code)

	list := decodeProjectList(t, rr)
	assert.Equal(t, 2, list.Total)
}

func TestListProjectsMalformedFlagRejected(t *testing.T) {
	r := newTestRouter(t)

	assert.Equal(t, http.StatusBadRequest, doGet(t, r, "/projects?featured=yes").Code)
	assert.Equal(t, http.StatusBadRequest, doGet(t, r, "/projects?recent=maybe").Code)
}

func TestListProjectsByCategory(t *testing.T) {
	r := newTestRouter(t)

	rr := doGet(t, r, "/projects?category=corporate-website")
	require.Equal(t, http.StatusOK, rr.Code)

	list := decodeProjectList(t, rr)
	assert.Equal(t, 2, list.Total)
}

func TestListProjectsUnknownCategoryRejected(t *testing.T) {
	r := newTestRouter(t)

	rr := doGet(t, r, "/projects?category=blog")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListProjectsSearch(t *testing.T) {
	r := newTestRouter(t)

	rr := doGet(t, r, "/projects?q=b%C3%A4ckerei")
	require.Equal(t, http.StatusOK, rr.Code)

	list := decodeProjectList(t, rr)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "baeckerei", list.Projects[0].ID)
}

func TestListProjectsNoMatchIsEmptyNotError(t *testing.T) {
	r := newTestRouter(t)

	rr := doGet(t, r, "/projects?q=zzz-nonexistent")
	require.Equal(t, http.StatusOK, rr.Code)

	list := decodeProjectList(t, rr)
	assert.Zero(t, list.Total)
	assert.Empty(t, list.Projects)
}

func TestGetProject(t *testing.T) {
	r := newTestRouter(t)

	rr := doGet(t, r, "/projects/fitness")
	require.Equal(t, http.StatusOK, rr.Code)

	var envelope struct {
		Success bool    `json:"success"`
		Data    Project `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	assert.Equal(t, "fitness", envelope.Data.ID)
}

func TestGetProjectNotFound(t *testing.T) {
	r := newTestRouter(t)

	rr := doGet(t, r, "/projects/stale-link")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetRelatedProjects(t *testing.T) {
	r := newTestRouter(t)

	rr := doGet(t, r, "/projects/baeckerei/related")
	require.Equal(t, http.StatusOK, rr.Code)

	list := decodeProjectList(t, rr)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "consulting", list.Projects[0].ID)
}

func TestGetRelatedProjectsInvalidLimit(t *testing.T) {
	r := newTestRouter(t)

	rr := doGet(t, r, "/projects/baeckerei/related?limit=abc")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetStats(t *testing.T) {
	r := newTestRouter(t)

	rr := doGet(t, r, "/portfolio/stats")
	require.Equal(t, http.StatusOK, rr.Code)

	var envelope struct {
		Success bool  `json:"success"`
		Data    Stats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	assert.Equal(t, 3, envelope.Data.TotalProjects)
	assert.Equal(t, 2, envelope.Data.FeaturedProjects)
}

func TestListCategoriesIncludesZeroCounts(t *testing.T) {
	r := newTestRouter(t)

	rr := doGet(t, r, "/portfolio/categories")
	require.Equal(t, http.StatusOK, rr.Code)

	var envelope struct {
		Success bool                 `json:"success"`
		Data    CategoryListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))

	require.Len(t, envelope.Data.Categories, len(Categories()))

	counts := make(map[Category]int)
	for _, info := range envelope.Data.Categories {
		assert.NotEmpty(t, info.Label)
		counts[info.Value] = info.Count
	}
	assert.Equal(t, 2, counts[CategoryCorporateWebsite])
	assert.Zero(t, counts[CategoryMobileApp])
}
