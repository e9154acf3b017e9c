package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourdigitalstory0-sys/liferepublic-backend/models"
)

func TestProjectCreateAndFetchRoundTrip(t *testing.T) {
	env := newTestEnv(t, nil)
	token := seedAdmin(t, env.database, "admin@example.com", "sup3r-secret")

	payload := map[string]any{
		"id":           "test-1",
		"title":        "Test Towers",
		"category":     "2 & 3 BHK",
		"location":     "Sector 3",
		"price":        "₹74 Lakhs*",
		"image":        "/images/test.webp",
		"description":  "A test project",
		"masterLayout": "/a.webp",
		"floorPlans":   []string{"/b.webp", "/c.webp"},
		"themeColor":   "#1a3c34",
		"gallery": []any{
			"/g1.webp",
			map[string]string{"url": "/g2.webp", "alt": "clubhouse"},
		},
	}

	created := doJSON(t, env.router, http.MethodPost, "/project", token, payload)
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	fetched := doJSON(t, env.router, http.MethodGet, "/project/test-1", "", nil)
	require.Equal(t, http.StatusOK, fetched.Code, fetched.Body.String())

	var project models.Project
	decodeBody(t, fetched, &project)
	assert.Equal(t, "test-1", project.ID)
	assert.Equal(t, "Test Towers", project.Title)
	require.NotNil(t, project.MasterLayout)
	assert.Equal(t, "/a.webp", *project.MasterLayout)
	assert.Equal(t, []string{"/b.webp", "/c.webp"}, []string(project.FloorPlans))
	require.NotNil(t, project.ThemeColor)
	assert.Equal(t, "#1a3c34", *project.ThemeColor)
	assert.Equal(t, models.ProjectStatusAvailable, project.Status)

	// gallery entries normalize to the object form, bare strings included
	require.Len(t, project.Gallery, 2)
	assert.Equal(t, models.GalleryEntry{URL: "/g1.webp"}, project.Gallery[0])
	assert.Equal(t, models.GalleryEntry{URL: "/g2.webp", Alt: "clubhouse"}, project.Gallery[1])

	// the camelCase wire names survive the round trip
	body := fetched.Body.String()
	assert.Contains(t, body, `"masterLayout"`)
	assert.Contains(t, body, `"floorPlans"`)
	assert.Contains(t, body, `"themeColor"`)
	assert.NotContains(t, body, `"master_layout"`)
}

func TestProjectCreateValidation(t *testing.T) {
	env := newTestEnv(t, nil)
	token := seedAdmin(t, env.database, "admin@example.com", "sup3r-secret")

	missingID := doJSON(t, env.router, http.MethodPost, "/project", token, map[string]any{"title": "No Slug"})
	assert.Equal(t, http.StatusBadRequest, missingID.Code)

	badStatus := doJSON(t, env.router, http.MethodPost, "/project", token, map[string]any{
		"id": "bad-status", "title": "x", "status": "Archived",
	})
	assert.Equal(t, http.StatusBadRequest, badStatus.Code)
}

func TestProjectDuplicateSlugConflicts(t *testing.T) {
	env := newTestEnv(t, nil)
	token := seedAdmin(t, env.database, "admin@example.com", "sup3r-secret")

	payload := map[string]any{"id": "dup", "title": "First"}
	first := doJSON(t, env.router, http.MethodPost, "/project", token, payload)
	require.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(t, env.router, http.MethodPost, "/project", token, payload)
	assert.Equal(t, http.StatusConflict, second.Code, second.Body.String())
}

func TestProjectPartialUpdate(t *testing.T) {
	env := newTestEnv(t, nil)
	token := seedAdmin(t, env.database, "admin@example.com", "sup3r-secret")

	create := doJSON(t, env.router, http.MethodPost, "/project", token, map[string]any{
		"id": "atmos", "title": "Atmos", "location": "Sector 1", "price": "₹90 Lakhs*",
	})
	require.Equal(t, http.StatusCreated, create.Code)

	update := doJSON(t, env.router, http.MethodPut, "/project/atmos", token, map[string]any{
		"price":      "₹95 Lakhs*",
		"themeColor": "#222222",
	})
	require.Equal(t, http.StatusOK, update.Code, update.Body.String())

	var project models.Project
	decodeBody(t, update, &project)
	assert.Equal(t, "₹95 Lakhs*", project.Price)
	require.NotNil(t, project.ThemeColor)
	assert.Equal(t, "#222222", *project.ThemeColor)
	// untouched fields survive
	assert.Equal(t, "Atmos", project.Title)
	assert.Equal(t, "Sector 1", project.Location)

	unknown := doJSON(t, env.router, http.MethodPut, "/project/atmos", token, map[string]any{"bogus": 1})
	assert.Equal(t, http.StatusBadRequest, unknown.Code)

	missing := doJSON(t, env.router, http.MethodPut, "/project/nope", token, map[string]any{"title": "x"})
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestProjectListPaginationAndSearch(t *testing.T) {
	env := newTestEnv(t, nil)
	token := seedAdmin(t, env.database, "admin@example.com", "sup3r-secret")

	for i := 1; i <= 7; i++ {
		resp := doJSON(t, env.router, http.MethodPost, "/project", token, map[string]any{
			"id":       fmt.Sprintf("tower-%d", i),
			"title":    fmt.Sprintf("Tower %d", i),
			"location": "Hinjawadi",
		})
		require.Equal(t, http.StatusCreated, resp.Code)
	}

	var page1 ProjectListResponse
	resp := doJSON(t, env.router, http.MethodGet, "/projects?page=1&limit=3", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	decodeBody(t, resp, &page1)
	assert.EqualValues(t, 7, page1.Total)
	assert.Len(t, page1.Projects, 3)

	var page3 ProjectListResponse
	resp = doJSON(t, env.router, http.MethodGet, "/projects?page=3&limit=3", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	decodeBody(t, resp, &page3)
	assert.Len(t, page3.Projects, 1)

	var search ProjectListResponse
	resp = doJSON(t, env.router, http.MethodGet, "/projects?search=TOWER+3", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	decodeBody(t, resp, &search)
	require.Len(t, search.Projects, 1)
	assert.Equal(t, "tower-3", search.Projects[0].ID)
}

func TestProjectDelete(t *testing.T) {
	env := newTestEnv(t, nil)
	token := seedAdmin(t, env.database, "admin@example.com", "sup3r-secret")

	create := doJSON(t, env.router, http.MethodPost, "/project", token, map[string]any{"id": "gone", "title": "Gone"})
	require.Equal(t, http.StatusCreated, create.Code)

	del := doJSON(t, env.router, http.MethodDelete, "/project/gone", token, nil)
	require.Equal(t, http.StatusOK, del.Code)

	fetched := doJSON(t, env.router, http.MethodGet, "/project/gone", "", nil)
	assert.Equal(t, http.StatusNotFound, fetched.Code)

	again := doJSON(t, env.router, http.MethodDelete, "/project/gone", token, nil)
	assert.Equal(t, http.StatusNotFound, again.Code)
}
