package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sitekit-io/sitekit/internal/infra/blob"
)

var allowedImageMIME = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

var allowedImageExt = map[string]struct{}{
	".jpeg": {}, ".jpg": {}, ".png": {}, ".gif": {}, ".webp": {},
}

type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	MIME     string `json:"mime"`
}

// UploadService accepts owner images for use in site content.
type UploadService interface {
	UploadImage(ctx context.Context, projectID uuid.UUID, fh *multipart.FileHeader) (*UploadResult, error)
}

type uploadService struct {
	store    blob.Store
	maxBytes int64
}

// NewUploadService takes a nil store when no blob backend is configured.
func NewUploadService(store blob.Store, maxBytes int64) UploadService {
	return &uploadService{store: store, maxBytes: maxBytes}
}

func (s *uploadService) UploadImage(ctx context.Context, projectID uuid.UUID, fh *multipart.FileHeader) (*UploadResult, error) {
	if fh == nil {
		return nil, ErrFileRequired
	}
	if s.maxBytes > 0 && fh.Size > s.maxBytes {
		return nil, ErrFileTooLarge
	}
	if _, ok := allowedImageExt[strings.ToLower(filepath.Ext(fh.Filename))]; !ok {
		return nil, ErrUnsupportedMedia
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	limit := s.maxBytes
	if limit <= 0 {
		limit = fh.Size
	}
	body, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, ErrFileTooLarge
	}

	// the declared content type is not trusted
	mt := mimetype.Detect(body)
	if _, ok := allowedImageMIME[mt.String()]; !ok {
		return nil, ErrUnsupportedMedia
	}

	if s.store == nil {
		return nil, ErrBlobDisabled
	}
	meta, err := s.store.Put(ctx, "uploads/"+projectID.String(), fh.Filename, mt.String(), body)
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	return &UploadResult{
		URL:      meta.URL,
		Filename: filepath.Base(meta.Key),
		Size:     meta.SizeB,
		MIME:     meta.MIME,
	}, nil
}
