package resources

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"stock-sync/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Allowed upload extensions.
var allowedExtensions = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".xlsm": true,
}

// FileInfo describes one stored spreadsheet.
type FileInfo struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Service handles spreadsheet storage operations.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger

	// now is swappable for deterministic names in tests.
	now func() time.Time
}

// NewService creates a new resources service.
func NewService(client storage.Client, bucket string, log *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: log,
		now:    time.Now,
	}
}

// StoredName builds the object name for an upload: a timestamp prefix plus
// the lower-cased original file name with spaces collapsed.
func (s *Service) StoredName(original string) string {
	name := strings.ToLower(strings.TrimSpace(filepath.Base(original)))
	name = strings.ReplaceAll(name, " ", "_")
	return s.now().Format("20060102-150405") + "_" + name
}

// Upload stores one spreadsheet and returns the name it was stored under.
func (s *Service) Upload(ctx context.Context, original string, reader io.Reader, size int64) (string, error) {
	ext := strings.ToLower(filepath.Ext(original))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("unsupported file type %q, expected .csv or .xlsx", ext)
	}

	stored := s.StoredName(original)

	contentType := "text/csv"
	if ext != ".csv" {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}

	_, err := s.client.PutObject(ctx, s.bucket, stored, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store %q: %w", original, err)
	}

	s.logger.Info("Spreadsheet stored",
		zap.String("file", stored),
		zap.Int64("size", size))

	return stored, nil
}

// List returns the stored spreadsheets.
func (s *Service) List(ctx context.Context) ([]FileInfo, error) {
	var files []FileInfo

	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list files: %w", obj.Err)
		}
		files = append(files, FileInfo{
			Name:         obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}

	return files, nil
}

// Delete removes one stored spreadsheet.
func (s *Service) Delete(ctx context.Context, name string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete %q: %w", name, err)
	}
	s.logger.Info("Spreadsheet deleted", zap.String("file", name))
	return nil
}
