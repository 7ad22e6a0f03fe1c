// Package storage uploads user files to an S3-compatible bucket.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/tenx-mn/catering-service/internal/config"
	"github.com/tenx-mn/catering-service/pkg/util"
)

// Blob describes a stored object.
type Blob struct {
	URL         string `json:"url"`
	Pathname    string `json:"pathname"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// BlobStore stores uploaded files.
type BlobStore interface {
	Put(ctx context.Context, filename, contentType string, body []byte) (*Blob, error)
}

// putObjectAPI is the part of the S3 client used here.
type putObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store writes public objects into one bucket.
type S3Store struct {
	client  putObjectAPI
	bucket  string
	baseURL string
	now     func() time.Time
}

// NewS3Store builds an S3 client from static credentials and an optional
// custom endpoint (MinIO, R2, ...).
func NewS3Store(ctx context.Context, cfg config.StorageConfig) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	return newS3Store(client, cfg), nil
}

func newS3Store(client putObjectAPI, cfg config.StorageConfig) *S3Store {
	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		if cfg.Endpoint != "" {
			baseURL = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
		} else {
			baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
		}
	}
	return &S3Store{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// Put uploads body under a fresh key derived from filename.
func (s *S3Store) Put(ctx context.Context, filename, contentType string, body []byte) (*Blob, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := ObjectKey(filename, s.now())

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return nil, fmt.Errorf("put object %s: %w", key, err)
	}

	return &Blob{
		URL:         s.baseURL + "/" + key,
		Pathname:    key,
		ContentType: contentType,
		Size:        int64(len(body)),
	}, nil
}

// ObjectKey returns uploads/yyyy/mm/dd/<uuid>-<slug>.<ext>.
func ObjectKey(filename string, now time.Time) string {
	base := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	if base == "." || base == "/" {
		base = ""
	}
	ext := strings.ToLower(path.Ext(base))
	name := util.Slugify(strings.TrimSuffix(base, path.Ext(base)))
	if name == "" {
		name = "file"
	}
	return fmt.Sprintf("uploads/%04d/%02d/%02d/%s-%s%s",
		now.Year(), now.Month(), now.Day(), uuid.NewString(), name, ext)
}
