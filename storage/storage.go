package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// The two logical buckets the admin panel can write into. They are prefixes
// inside a single physical store, not separate backends.
const (
	BucketProjects = "projects"
	BucketBanners  = "banners"
)

func ValidBucket(bucket string) bool {
	return bucket == BucketProjects || bucket == BucketBanners
}

// Object describes one stored file as returned by List.
type Object struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Size      int64     `json:"size"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store is the object storage surface consumed by the upload handlers.
// Implementations: S3 for production, local disk for development and tests.
type Store interface {
	// Upload stores the content under a freshly generated key and returns
	// the publicly resolvable URL.
	Upload(ctx context.Context, bucket, filename, contentType string, r io.Reader) (string, error)
	// List returns objects newest first, paginated with the same
	// page/limit contract as the database layer.
	List(ctx context.Context, bucket string, page, limit int) ([]Object, error)
	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, bucket string, keys ...string) error
	// PublicURL resolves a key to its public URL without touching the backend.
	PublicURL(bucket, key string) string
}

// randomKey generates an object key, preserving the original extension.
// No dedup or overwrite protection; the random name makes collisions
// vanishingly unlikely.
func randomKey(filename string) string {
	return uuid.New().String() + strings.ToLower(filepath.Ext(filename))
}

// DiskStore keeps objects under root/<bucket>/ and serves them from
// baseURL/uploads/<bucket>/<key> via the router's file server.
type DiskStore struct {
	root    string
	baseURL string
}

func NewDiskStore(root, baseURL string) (*DiskStore, error) {
	for _, bucket := range []string{BucketProjects, BucketBanners} {
		if err := os.MkdirAll(filepath.Join(root, bucket), 0o755); err != nil {
			return nil, fmt.Errorf("creating upload dir for %s: %w", bucket, err)
		}
	}
	return &DiskStore{root: root, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Root returns the directory the store writes under, for mounting the file server.
func (s *DiskStore) Root() string {
	return s.root
}

func (s *DiskStore) Upload(_ context.Context, bucket, filename, _ string, r io.Reader) (string, error) {
	if !ValidBucket(bucket) {
		return "", fmt.Errorf("unknown bucket %q", bucket)
	}

	key := randomKey(filename)
	dst, err := os.Create(filepath.Join(s.root, bucket, key))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", err
	}
	return s.PublicURL(bucket, key), nil
}

func (s *DiskStore) List(_ context.Context, bucket string, page, limit int) ([]Object, error) {
	if !ValidBucket(bucket) {
		return nil, fmt.Errorf("unknown bucket %q", bucket)
	}

	entries, err := os.ReadDir(filepath.Join(s.root, bucket))
	if err != nil {
		return nil, err
	}

	objects := make([]Object, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		objects = append(objects, Object{
			Key:       entry.Name(),
			URL:       s.PublicURL(bucket, entry.Name()),
			Size:      info.Size(),
			UpdatedAt: info.ModTime(),
		})
	}

	sort.Slice(objects, func(i, j int) bool {
		return objects[i].UpdatedAt.After(objects[j].UpdatedAt)
	})
	return pageSlice(objects, page, limit), nil
}

func (s *DiskStore) Delete(_ context.Context, bucket string, keys ...string) error {
	if !ValidBucket(bucket) {
		return fmt.Errorf("unknown bucket %q", bucket)
	}
	for _, key := range keys {
		// Base strips any path component a hostile key could smuggle in.
		err := os.Remove(filepath.Join(s.root, bucket, filepath.Base(key)))
		if err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func (s *DiskStore) PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/uploads/%s/%s", s.baseURL, bucket, key)
}

// pageSlice applies the [(page-1)*limit, page*limit-1] range in memory.
func pageSlice(objects []Object, page, limit int) []Object {
	if page <= 0 || limit <= 0 {
		return objects
	}
	start := (page - 1) * limit
	if start >= len(objects) {
		return []Object{}
	}
	end := start + limit
	if end > len(objects) {
		end = len(objects)
	}
	return objects[start:end]
}
