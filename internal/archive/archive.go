// Package archive uploads rendered reports to an S3 compatible object store.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const defaultPrefix = "reports"

// Archive stores a rendered document and returns the object key it was stored under.
type Archive interface {
	Put(ctx context.Context, name, contentType string, data []byte) (string, error)
}

type MinioOpts func(c *minioConfig)

type minioConfig struct {
	endpoint        string
	bucket          string
	region          string
	accessKey       string
	secretAccessKey string
	prefix          string
	useSSL          bool
	now             func() time.Time
}

func newConfig(opts ...MinioOpts) *minioConfig {
	cfg := &minioConfig{
		prefix: defaultPrefix,
		now:    time.Now,
	}

	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

type MinioArchive struct {
	cfg    *minioConfig
	client *minio.Client
}

var _ Archive = (*MinioArchive)(nil)

func NewMinioArchive(opts ...MinioOpts) (*MinioArchive, error) {
	cfg := newConfig(opts...)
	if cfg.endpoint == "" {
		return nil, fmt.Errorf("archive endpoint is not set")
	}
	if cfg.bucket == "" {
		return nil, fmt.Errorf("archive bucket is not set")
	}

	client, err := minio.New(cfg.endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.accessKey, cfg.secretAccessKey, ""),
		Secure: cfg.useSSL,
		Region: cfg.region,
	})
	if err != nil {
		return nil, err
	}

	return &MinioArchive{cfg: cfg, client: client}, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (a *MinioArchive) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.cfg.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket %s: %w", a.cfg.bucket, err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.cfg.bucket, minio.MakeBucketOptions{Region: a.cfg.region}); err != nil {
		return fmt.Errorf("creating bucket %s: %w", a.cfg.bucket, err)
	}
	return nil
}

// Put uploads data under <prefix>/<yyyy>/<mm>/<dd>/<uuid>-<name>.
func (a *MinioArchive) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	key := a.key(name)
	_, err := a.client.PutObject(ctx, a.cfg.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}
	return key, nil
}

func (a *MinioArchive) key(name string) string {
	return path.Join(a.cfg.prefix, a.cfg.now().UTC().Format("2006/01/02"), fmt.Sprintf("%s-%s", uuid.NewString(), path.Base(name)))
}

func (a *MinioArchive) Type() string {
	return "minio"
}

func WithEndpoint(endpoint string) MinioOpts {
	return func(c *minioConfig) {
		c.endpoint = endpoint
	}
}

func WithBucket(bucket string) MinioOpts {
	return func(c *minioConfig) {
		c.bucket = bucket
	}
}

func WithRegion(region string) MinioOpts {
	return func(c *minioConfig) {
		c.region = region
	}
}

func WithAccessKey(accessKey string) MinioOpts {
	return func(c *minioConfig) {
		c.accessKey = accessKey
	}
}

func WithSecretKey(secretKey string) MinioOpts {
	return func(c *minioConfig) {
		c.secretAccessKey = secretKey
	}
}

func WithSSL(useSSL bool) MinioOpts {
	return func(c *minioConfig) {
		c.useSSL = useSSL
	}
}

func WithPrefix(prefix string) MinioOpts {
	return func(c *minioConfig) {
		c.prefix = prefix
	}
}

func withClock(now func() time.Time) MinioOpts {
	return func(c *minioConfig) {
		c.now = now
	}
}
