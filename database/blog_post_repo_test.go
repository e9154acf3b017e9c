package database

import (
	"encoding/json"
	"testing"

	"github.com/ourdigitalstory0-sys/liferepublic-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogPostPublishedGate(t *testing.T) {
	repo := NewBlogPostRepo(testDB(t))

	require.NoError(t, repo.Add(&models.BlogPost{
		Slug: "township-living", Title: "Township Living", Content: "<p>...</p>", Published: true,
	}))
	require.NoError(t, repo.Add(&models.BlogPost{
		Slug: "draft-post", Title: "Draft", Content: "<p>...</p>", Published: false,
	}))

	public, err := repo.List(0, 0, "", true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "township-living", public[0].Slug)

	all, err := repo.List(0, 0, "", false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	publicCount, err := repo.Count("", true)
	require.NoError(t, err)
	assert.EqualValues(t, 1, publicCount)
}

func TestBlogPostPartialUpdate(t *testing.T) {
	repo := NewBlogPostRepo(testDB(t))

	require.NoError(t, repo.Add(&models.BlogPost{
		Slug: "township-living", Title: "Before", Content: "<p>old</p>",
	}))

	fields := map[string]json.RawMessage{
		"title":           json.RawMessage(`"After"`),
		"metaDescription": json.RawMessage(`"life republic blog"`),
		"tags":            json.RawMessage(`["township","pune"]`),
		"published":       json.RawMessage(`true`),
	}
	require.NoError(t, repo.Update("township-living", fields))

	got, err := repo.FindBySlug("township-living")
	require.NoError(t, err)
	assert.Equal(t, "After", got.Title)
	assert.Equal(t, "<p>old</p>", got.Content)
	require.NotNil(t, got.MetaDescription)
	assert.Equal(t, "life republic blog", *got.MetaDescription)
	assert.EqualValues(t, []string{"township", "pune"}, []string(got.Tags))
	assert.True(t, got.Published)
}
