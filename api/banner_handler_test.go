package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBannersFallsBackWhenEmpty(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := doJSON(t, env.router, http.MethodGet, "/banners", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var list BannerListResponse
	decodeBody(t, resp, &list)
	assert.True(t, list.Fallback)
	require.Len(t, list.Banners, 3)
	for _, banner := range list.Banners {
		assert.NotEmpty(t, banner.Title)
		assert.NotEmpty(t, banner.Image)
	}
}

func TestListBannersServesStoredRows(t *testing.T) {
	env := newTestEnv(t, nil)
	token := seedAdmin(t, env.database, "admin@example.com", "sup3r-secret")

	created := doJSON(t, env.router, http.MethodPost, "/banner", token, map[string]any{
		"title":        "Launch Offer",
		"subtitle":     "Limited period pricing",
		"image":        "/images/launch.webp",
		"displayOrder": 1,
	})
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	resp := doJSON(t, env.router, http.MethodGet, "/banners", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var list BannerListResponse
	decodeBody(t, resp, &list)
	assert.False(t, list.Fallback)
	require.Len(t, list.Banners, 1)
	assert.Equal(t, "Launch Offer", list.Banners[0].Title)
}

func TestBannerUpdateAndDelete(t *testing.T) {
	env := newTestEnv(t, nil)
	token := seedAdmin(t, env.database, "admin@example.com", "sup3r-secret")

	created := doJSON(t, env.router, http.MethodPost, "/banner", token, map[string]any{
		"title": "Old Title",
		"image": "/images/a.webp",
	})
	require.Equal(t, http.StatusCreated, created.Code)
	var banner struct {
		ID uint `json:"id"`
	}
	decodeBody(t, created, &banner)

	path := fmt.Sprintf("/banner/%d", banner.ID)
	updated := doJSON(t, env.router, http.MethodPut, path, token, map[string]any{"title": "New Title"})
	require.Equal(t, http.StatusOK, updated.Code, updated.Body.String())
	assert.Contains(t, updated.Body.String(), "New Title")

	del := doJSON(t, env.router, http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, del.Code)

	again := doJSON(t, env.router, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusNotFound, again.Code)
}
