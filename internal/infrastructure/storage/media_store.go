// Package storage keeps uploaded media in an S3-compatible bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const defaultURLExpiry = 15 * time.Minute

// Config holds the bucket settings. Endpoint and UsePathStyle are only
// needed for non-AWS backends such as MinIO.
type Config struct {
	Bucket       string
	Region       string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
	URLExpiry    time.Duration
}

// MediaStore implements ports.MediaStore on S3.
type MediaStore struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	expiry  time.Duration
	now     func() time.Time
}

// NewMediaStore loads AWS configuration (static credentials when given) and
// returns a store bound to cfg.Bucket.
func NewMediaStore(ctx context.Context, cfg Config) (*MediaStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("media store: bucket is required")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("media store: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	expiry := cfg.URLExpiry
	if expiry <= 0 {
		expiry = defaultURLExpiry
	}

	return &MediaStore{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		expiry:  expiry,
		now:     func() time.Time { return time.Now().UTC() },
	}, nil
}

// Key returns a fresh object key for filename under users/YYYY/MM/DD/.
func (m *MediaStore) Key(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("users/%s/%s%s", m.now().Format("2006/01/02"), uuid.NewString(), ext)
}

func (m *MediaStore) Save(ctx context.Context, filename, contentType string, body io.ReadSeeker) (string, error) {
	key := m.Key(filename)

	in := &s3.PutObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	if _, err := m.client.PutObject(ctx, in); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return key, nil
}

func (m *MediaStore) URL(ctx context.Context, key string) (string, error) {
	req, err := m.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(m.expiry))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return req.URL, nil
}

// Ping checks that the bucket is reachable.
func (m *MediaStore) Ping(ctx context.Context) error {
	_, err := m.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(m.bucket)})
	return err
}
