// Package storage is the object-storage collaborator: plans are uploaded by
// the client through presigned URLs and fetched back as bytes for evaluation.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/seojun-park/planscore/constants"
	"github.com/seojun-park/planscore/internal/common"
)

// S3Store implements the pipeline's DocumentStore over one bucket.
type S3Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	expiry  time.Duration
	log     *slog.Logger
}

func NewS3Store(ctx context.Context, cfg common.StorageConfig, logger *slog.Logger) (*S3Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage: bucket is required")
	}
	if cfg.PresignExpiry <= 0 {
		cfg.PresignExpiry = 15 * time.Minute
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg)

	return &S3Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		expiry:  cfg.PresignExpiry,
		log:     logger,
	}, nil
}

// FetchDocument downloads the object's bytes. A missing or expired key is
// reported with common.ErrNotFound so callers can fail fast without spending
// model budget.
func (s *S3Store) FetchDocument(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		if isNoSuchKey(err) {
			s.log.Warn("storage.fetch.not_found", "key", key)
			return nil, fmt.Errorf("object %q: %w", key, common.ErrNotFound)
		}
		s.log.Error("storage.fetch.error", "key", key, "error", err)
		return nil, fmt.Errorf("get object %q: %w", key, err)
	}
	defer func() {
		if cerr := out.Body.Close(); cerr != nil {
			s.log.Warn("storage.fetch.body_close_error", "key", key, "error", cerr)
		}
	}()

	data, err := io.ReadAll(io.LimitReader(out.Body, constants.MaxDocumentBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read object %q: %w", key, err)
	}
	if len(data) > constants.MaxDocumentBytes {
		return nil, fmt.Errorf("object %q exceeds %d bytes: %w", key, constants.MaxDocumentBytes, common.ErrInvalidInput)
	}

	s.log.Info("storage.fetch.ok", "key", key, "bytes", len(data), "elapsed_ms", time.Since(start).Milliseconds())
	return data, nil
}

// PresignUpload returns a URL the client PUTs the plan PDF to.
func (s *S3Store) PresignUpload(ctx context.Context, key, contentType string) (string, error) {
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		ContentType: &contentType,
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return "", fmt.Errorf("presign upload %q: %w", key, err)
	}
	s.log.Info("storage.presign_upload.ok", "key", key, "expiry", s.expiry)
	return req.URL, nil
}

// PresignDownload returns a URL the client GETs the stored object from.
func (s *S3Store) PresignDownload(ctx context.Context, key string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return "", fmt.Errorf("presign download %q: %w", key, err)
	}
	return req.URL, nil
}

// DeleteDocument removes the object. Deleting a missing key is not an error.
func (s *S3Store) DeleteDocument(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		s.log.Error("storage.delete.error", "key", key, "error", err)
		return fmt.Errorf("delete object %q: %w", key, err)
	}
	s.log.Info("storage.delete.ok", "key", key)
	return nil
}

func isNoSuchKey(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var nf *types.NotFound
	return errors.As(err, &nf)
}
