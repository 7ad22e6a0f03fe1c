package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/tenx-mn/catering-service/internal/storage"
	"github.com/tenx-mn/catering-service/pkg/util"
)

// UploadService stores files sent by signed-in users.
type UploadService struct {
	blobs  storage.BlobStore
	logger *zap.Logger
}

// NewUploadService constructs the service.
func NewUploadService(blobs storage.BlobStore, logger *zap.Logger) *UploadService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadService{blobs: blobs, logger: logger}
}

// Upload stores body as filename on behalf of userID.
func (s *UploadService) Upload(ctx context.Context, userID, filename, contentType string, body []byte) (*storage.Blob, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return nil, util.NewValidationError("Filename is required", map[string]any{"filename": "required"})
	}
	if len(body) == 0 {
		return nil, util.NewValidationError("File body is empty", nil)
	}

	blob, err := s.blobs.Put(ctx, filename, contentType, body)
	if err != nil {
		return nil, util.NewInternalError(err)
	}
	s.logger.Info("file uploaded",
		zap.String("user_id", userID),
		zap.String("pathname", blob.Pathname),
		zap.Int64("size", blob.Size))
	return blob, nil
}
