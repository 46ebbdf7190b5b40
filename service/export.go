package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/mkumar84/Insurance-Dashboard/config"
)

// Export is a downloadable plain-text blob.
type Export struct {
	Filename    string
	ContentType string
	Body        string
}

func ClaimSummaryExport(claimID string) Export {
	return Export{
		Filename:    fmt.Sprintf("summary_%s.txt", claimID),
		ContentType: "text/plain; charset=utf-8",
		Body:        fmt.Sprintf("Simulated summary report for claim %s", claimID),
	}
}

func ChecklistExport() Export {
	return Export{
		Filename:    "application_checklist.txt",
		ContentType: "text/plain; charset=utf-8",
		Body:        "Simulated application checklist",
	}
}

// ExportStore keeps a copy of each export in MinIO and hands out presigned
// download links.
type ExportStore struct {
	client *minio.Client
	bucket string
	config *config.MinioConfig
}

func NewExportStore(cfg *config.MinioConfig) (*ExportStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &ExportStore{
		client: client,
		bucket: cfg.Bucket,
		config: cfg,
	}, nil
}

// EnsureBucket creates the export bucket if it doesn't exist
func (s *ExportStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// ObjectName places exports under a per-day prefix with a unique component,
// so repeated downloads of the same file never collide.
func ObjectName(exp Export, now time.Time) string {
	return fmt.Sprintf("exports/%s/%s-%s", now.UTC().Format("2006-01-02"), uuid.NewString(), exp.Filename)
}

// Publish uploads exp and returns a presigned URL valid for the configured
// number of days.
func (s *ExportStore) Publish(ctx context.Context, exp Export) (string, error) {
	objectName := ObjectName(exp, time.Now())

	_, err := s.client.PutObject(ctx, s.bucket, objectName, strings.NewReader(exp.Body), int64(len(exp.Body)), minio.PutObjectOptions{
		ContentType:        exp.ContentType,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", exp.Filename),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload export: %w", err)
	}

	expiry := time.Duration(s.config.ExpireDays) * 24 * time.Hour
	url, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return url.String(), nil
}
