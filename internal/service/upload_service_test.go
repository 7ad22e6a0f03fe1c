package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tenx-mn/catering-service/internal/storage"
	"github.com/tenx-mn/catering-service/pkg/util"
)

type fakeBlobStore struct {
	puts []string
	err  error
}

func (f *fakeBlobStore) Put(_ context.Context, filename, contentType string, body []byte) (*storage.Blob, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.puts = append(f.puts, filename)
	return &storage.Blob{
		URL:         "https://cdn.example.mn/uploads/" + filename,
		Pathname:    "uploads/" + filename,
		ContentType: contentType,
		Size:        int64(len(body)),
	}, nil
}

func TestUploadService_Upload(t *testing.T) {
	blobs := &fakeBlobStore{}
	svc := NewUploadService(blobs, zap.NewNop())

	blob, err := svc.Upload(context.Background(), "user-1", " menu.png ", "image/png", []byte("png"))
	require.NoError(t, err)
	assert.Equal(t, "uploads/menu.png", blob.Pathname)
	assert.Equal(t, int64(3), blob.Size)
	assert.Equal(t, []string{"menu.png"}, blobs.puts)
}

func TestUploadService_Validation(t *testing.T) {
	blobs := &fakeBlobStore{}
	svc := NewUploadService(blobs, nil)

	_, err := svc.Upload(context.Background(), "user-1", "  ", "image/png", []byte("png"))
	assertCode(t, err, util.CodeValidationFailed, http.StatusBadRequest)

	_, err = svc.Upload(context.Background(), "user-1", "a.png", "image/png", nil)
	assertCode(t, err, util.CodeValidationFailed, http.StatusBadRequest)
	assert.Empty(t, blobs.puts)
}

func TestUploadService_StoreFailure(t *testing.T) {
	svc := NewUploadService(&fakeBlobStore{err: errors.New("s3 down")}, nil)

	_, err := svc.Upload(context.Background(), "user-1", "a.png", "image/png", []byte("x"))
	assertCode(t, err, util.CodeInternal, http.StatusInternalServerError)
}
