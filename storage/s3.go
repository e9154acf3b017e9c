package storage

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Config carries everything needed to reach the bucket. Endpoint is left
// empty for AWS proper and set for S3-compatible hosts.
type S3Config struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	Endpoint  string
	// PublicBaseURL is the CDN or bucket website prefix objects resolve
	// under, e.g. https://cdn.example.com
	PublicBaseURL string
}

// S3Store stores objects under <logical bucket>/<key> inside one S3 bucket.
type S3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, bucket, filename, contentType string, r io.Reader) (string, error) {
	if !ValidBucket(bucket) {
		return "", fmt.Errorf("unknown bucket %q", bucket)
	}

	key := randomKey(filename)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(bucket + "/" + key),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading to %s: %w", bucket, err)
	}
	return s.PublicURL(bucket, key), nil
}

func (s *S3Store) List(ctx context.Context, bucket string, page, limit int) ([]Object, error) {
	if !ValidBucket(bucket) {
		return nil, fmt.Errorf("unknown bucket %q", bucket)
	}

	// ListObjectsV2 has no offset, so collect the whole prefix and page in
	// memory. Both buckets hold at most a few hundred images.
	prefix := bucket + "/"
	var objects []Object
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", bucket, err)
		}
		for _, item := range out.Contents {
			key := strings.TrimPrefix(aws.ToString(item.Key), prefix)
			if key == "" {
				continue
			}
			objects = append(objects, Object{
				Key:       key,
				URL:       s.PublicURL(bucket, key),
				Size:      aws.ToInt64(item.Size),
				UpdatedAt: aws.ToTime(item.LastModified),
			})
		}
	}

	sort.Slice(objects, func(i, j int) bool {
		return objects[i].UpdatedAt.After(objects[j].UpdatedAt)
	})
	return pageSlice(objects, page, limit), nil
}

func (s *S3Store) Delete(ctx context.Context, bucket string, keys ...string) error {
	if !ValidBucket(bucket) {
		return fmt.Errorf("unknown bucket %q", bucket)
	}
	if len(keys) == 0 {
		return nil
	}

	identifiers := make([]s3types.ObjectIdentifier, 0, len(keys))
	for _, key := range keys {
		identifiers = append(identifiers, s3types.ObjectIdentifier{
			Key: aws.String(bucket + "/" + key),
		})
	}

	_, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(s.bucket),
		Delete: &s3types.Delete{Objects: identifiers, Quiet: aws.Bool(true)},
	})
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", bucket, err)
	}
	return nil
}

func (s *S3Store) PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, bucket, key)
}
