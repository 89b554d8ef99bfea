// Package storage keeps recorded audio in S3-compatible object storage.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/heartmarshall/speakup-backend/internal/config"
	"github.com/heartmarshall/speakup-backend/internal/domain"
)

// defaultRegion lets presigning work without a bucket-location round trip.
const defaultRegion = "us-east-1"

// Store wraps a minio client bound to a single bucket.
type Store struct {
	mc         *minio.Client
	bucket     string
	presignTTL time.Duration
}

// New connects to the object store and ensures the bucket exists.
func New(ctx context.Context, cfg config.StorageConfig) (*Store, error) {
	mc, err := newClient(cfg)
	if err != nil {
		return nil, err
	}

	exists, err := mc.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("storage: check bucket: %w", err)
	}
	if !exists {
		if err := mc.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: defaultRegion}); err != nil {
			return nil, fmt.Errorf("storage: create bucket: %w", err)
		}
	}

	return newStore(mc, cfg.Bucket, cfg.PresignTTL), nil
}

func newClient(cfg config.StorageConfig) (*minio.Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: defaultRegion,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: connect: %w", err)
	}
	return mc, nil
}

func newStore(mc *minio.Client, bucket string, presignTTL time.Duration) *Store {
	return &Store{mc: mc, bucket: bucket, presignTTL: presignTTL}
}

// Put uploads size bytes from r under key.
func (s *Store) Put(ctx context.Context, key, contentType string, r io.Reader, size int64) error {
	_, err := s.mc.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("storage: put %s: %w", key, mapError(err))
	}
	return nil
}

// Get downloads the object stored under key together with its content type.
// A missing object yields domain.ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) ([]byte, string, error) {
	obj, err := s.mc.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("storage: get %s: %w", key, mapError(err))
	}
	defer obj.Close()

	info, err := obj.Stat()
	if err != nil {
		return nil, "", fmt.Errorf("storage: stat %s: %w", key, mapError(err))
	}

	var buf bytes.Buffer
	buf.Grow(int(info.Size))
	if _, err := io.Copy(&buf, obj); err != nil {
		return nil, "", fmt.Errorf("storage: read %s: %w", key, mapError(err))
	}
	return buf.Bytes(), info.ContentType, nil
}

// Delete removes the given keys. Missing objects are not an error.
func (s *Store) Delete(ctx context.Context, keys ...string) error {
	var errs []error
	for _, key := range keys {
		if err := s.mc.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
			if errors.Is(mapError(err), domain.ErrNotFound) {
				continue
			}
			errs = append(errs, fmt.Errorf("storage: delete %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

// PresignedURL returns a time-limited GET URL for key.
func (s *Store) PresignedURL(ctx context.Context, key string) (string, error) {
	u, err := s.mc.PresignedGetObject(ctx, s.bucket, key, s.presignTTL, url.Values{})
	if err != nil {
		return "", fmt.Errorf("storage: presign %s: %w", key, mapError(err))
	}
	return u.String(), nil
}

// Ping checks that the bucket is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := s.mc.BucketExists(ctx, s.bucket); err != nil {
		return fmt.Errorf("storage: ping: %w", mapError(err))
	}
	return nil
}

// mapError translates S3 error responses into domain sentinels.
func mapError(err error) error {
	resp := minio.ToErrorResponse(err)
	switch {
	case resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" || resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	case resp.StatusCode == http.StatusServiceUnavailable || resp.StatusCode == http.StatusBadGateway:
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	default:
		return err
	}
}
