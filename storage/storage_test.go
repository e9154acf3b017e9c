package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreUploadRoundTrip(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	content := []byte("webp bytes go here")
	url, err := store.Upload(context.Background(), BucketProjects, "tower.webp", "image/webp", bytes.NewReader(content))
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/projects/"), "unexpected url %s", url)

	// the key keeps the original extension
	key := url[strings.LastIndex(url, "/")+1:]
	assert.True(t, strings.HasSuffix(key, ".webp"))
	assert.NotEqual(t, "tower.webp", key)

	// the stored bytes are the uploaded bytes, unchanged
	stored, err := os.ReadFile(filepath.Join(store.Root(), BucketProjects, key))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestDiskStoreRejectsUnknownBucket(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	_, err = store.Upload(context.Background(), "secrets", "x.png", "image/png", bytes.NewReader(nil))
	assert.Error(t, err)

	_, err = store.List(context.Background(), "secrets", 0, 0)
	assert.Error(t, err)

	assert.Error(t, store.Delete(context.Background(), "secrets", "x.png"))
}

func TestDiskStoreListNewestFirstAndPaged(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	var urls []string
	for i := 0; i < 5; i++ {
		url, err := store.Upload(context.Background(), BucketBanners, fmt.Sprintf("b%d.png", i), "image/png", bytes.NewReader([]byte{byte(i)}))
		require.NoError(t, err)
		urls = append(urls, url)
		// distinct mtimes so the sort order is deterministic
		time.Sleep(5 * time.Millisecond)
	}

	objects, err := store.List(context.Background(), BucketBanners, 0, 0)
	require.NoError(t, err)
	require.Len(t, objects, 5)
	assert.Equal(t, urls[4], objects[0].URL)
	assert.Equal(t, urls[0], objects[4].URL)

	page1, err := store.List(context.Background(), BucketBanners, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page1, 2)

	page3, err := store.List(context.Background(), BucketBanners, 3, 2)
	require.NoError(t, err)
	assert.Len(t, page3, 1)

	empty, err := store.List(context.Background(), BucketBanners, 4, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDiskStoreDelete(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	url, err := store.Upload(context.Background(), BucketProjects, "a.png", "image/png", bytes.NewReader([]byte("x")))
	require.NoError(t, err)
	key := url[strings.LastIndex(url, "/")+1:]

	require.NoError(t, store.Delete(context.Background(), BucketProjects, key))

	objects, err := store.List(context.Background(), BucketProjects, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, objects)

	// deleting a missing key is not an error
	assert.NoError(t, store.Delete(context.Background(), BucketProjects, key))
}
