package database

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/ourdigitalstory0-sys/liferepublic-backend/errs"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func TestProjectRoundTrip(t *testing.T) {
	repo := NewProjectRepo(testDB(t))

	project := models.Project{
		ID:           "test-1",
		Title:        "Test",
		Category:     "2 BHK",
		Location:     "Sector 3",
		Price:        "₹74 Lakhs*",
		Image:        "/hero.webp",
		Description:  "A test project",
		Overview:     strPtr("Longer overview text"),
		Features:     datatypes.JSONSlice[string]{"Vastu compliant", "River view"},
		Amenities:    datatypes.JSONSlice[string]{"Clubhouse", "Pool"},
		MasterLayout: strPtr("/a.webp"),
		FloorPlans:   datatypes.JSONSlice[string]{"/b.webp", "/c.webp"},
		Gallery: datatypes.JSONSlice[models.GalleryEntry]{
			{URL: "/g1.webp", Alt: ""},
			{URL: "/g2.webp", Alt: "Tower A"},
		},
		Status:     models.ProjectStatusAvailable,
		ThemeColor: strPtr("#0f2e4c"),
		Rera:       strPtr("P52100012345"),
	}
	require.NoError(t, repo.Add(&project))

	got, err := repo.FindByID("test-1")
	require.NoError(t, err)
	assert.Equal(t, &project, got)
}

func TestProjectFindByIDNotFound(t *testing.T) {
	repo := NewProjectRepo(testDB(t))

	_, err := repo.FindByID("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProjectPagination(t *testing.T) {
	repo := NewProjectRepo(testDB(t))

	const total = 7
	const pageSize = 3
	for i := 0; i < total; i++ {
		require.NoError(t, repo.Add(&models.Project{
			ID:       fmt.Sprintf("proj-%d", i),
			Title:    fmt.Sprintf("Project %d", i),
			Category: "2 BHK",
			Location: "Sector 1",
			Price:    "Request Price",
			Image:    "/hero.webp",
			Status:   models.ProjectStatusAvailable,
		}))
	}

	count, err := repo.Count("")
	require.NoError(t, err)
	assert.EqualValues(t, total, count)

	// Pages 1..ceil(N/L) concatenate to exactly N distinct rows
	seen := make(map[string]bool)
	for page := 1; page <= (total+pageSize-1)/pageSize; page++ {
		rows, err := repo.List(page, pageSize, "")
		require.NoError(t, err)
		for _, row := range rows {
			assert.False(t, seen[row.ID], "row %s returned twice", row.ID)
			seen[row.ID] = true
		}
	}
	assert.Len(t, seen, total)
}

func TestProjectSearch(t *testing.T) {
	repo := NewProjectRepo(testDB(t))

	require.NoError(t, repo.Add(&models.Project{
		ID: "kiara", Title: "Kiara Towers", Category: "3 BHK",
		Location: "Hinjawadi", Price: "₹1.2 Cr*", Image: "/a.webp", Status: "Available",
	}))
	require.NoError(t, repo.Add(&models.Project{
		ID: "atmos", Title: "Atmos", Category: "2 BHK",
		Location: "Marunji", Price: "₹74 Lakhs*", Image: "/b.webp", Status: "Available",
	}))

	// case-insensitive match on title
	rows, err := repo.List(0, 0, "KIARA")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "kiara", rows[0].ID)

	// match on location
	rows, err = repo.List(0, 0, "marunji")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "atmos", rows[0].ID)

	count, err := repo.Count("kiara")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestProjectPartialUpdate(t *testing.T) {
	repo := NewProjectRepo(testDB(t))

	require.NoError(t, repo.Add(&models.Project{
		ID: "test-1", Title: "Before", Category: "2 BHK", Location: "Sector 3",
		Price: "₹74 Lakhs*", Image: "/hero.webp", Status: "Available",
		FloorPlans: datatypes.JSONSlice[string]{"/old.webp"},
	}))

	fields := map[string]json.RawMessage{
		"title":        json.RawMessage(`"After"`),
		"masterLayout": json.RawMessage(`"/layout.webp"`),
		"floorPlans":   json.RawMessage(`["/b.webp","/c.webp"]`),
		"themeColor":   json.RawMessage(`"#aabbcc"`),
		"gallery":      json.RawMessage(`["/g1.webp",{"url":"/g2.webp","alt":"tower"}]`),
	}
	require.NoError(t, repo.Update("test-1", fields))

	got, err := repo.FindByID("test-1")
	require.NoError(t, err)

	assert.Equal(t, "After", got.Title)
	require.NotNil(t, got.MasterLayout)
	assert.Equal(t, "/layout.webp", *got.MasterLayout)
	assert.EqualValues(t, []string{"/b.webp", "/c.webp"}, []string(got.FloorPlans))
	require.NotNil(t, got.ThemeColor)
	assert.Equal(t, "#aabbcc", *got.ThemeColor)
	assert.EqualValues(t, []models.GalleryEntry{
		{URL: "/g1.webp", Alt: ""},
		{URL: "/g2.webp", Alt: "tower"},
	}, []models.GalleryEntry(got.Gallery))

	// untouched fields survive
	assert.Equal(t, "Sector 3", got.Location)
	assert.Equal(t, "₹74 Lakhs*", got.Price)
}

func TestProjectUpdateRejectsUnknownField(t *testing.T) {
	repo := NewProjectRepo(testDB(t))

	require.NoError(t, repo.Add(&models.Project{
		ID: "test-1", Title: "T", Category: "c", Location: "l",
		Price: "p", Image: "/i.webp", Status: "Available",
	}))

	err := repo.Update("test-1", map[string]json.RawMessage{
		"nonsense": json.RawMessage(`"x"`),
	})
	require.Error(t, err)

	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestProjectUpdateIgnoresID(t *testing.T) {
	repo := NewProjectRepo(testDB(t))

	require.NoError(t, repo.Add(&models.Project{
		ID: "test-1", Title: "T", Category: "c", Location: "l",
		Price: "p", Image: "/i.webp", Status: "Available",
	}))

	require.NoError(t, repo.Update("test-1", map[string]json.RawMessage{
		"id":    json.RawMessage(`"renamed"`),
		"title": json.RawMessage(`"T2"`),
	}))

	got, err := repo.FindByID("test-1")
	require.NoError(t, err)
	assert.Equal(t, "T2", got.Title)

	_, err = repo.FindByID("renamed")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProjectDelete(t *testing.T) {
	repo := NewProjectRepo(testDB(t))

	require.NoError(t, repo.Add(&models.Project{
		ID: "test-1", Title: "T", Category: "c", Location: "l",
		Price: "p", Image: "/i.webp", Status: "Available",
	}))
	require.NoError(t, repo.Delete("test-1"))

	_, err := repo.FindByID("test-1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
