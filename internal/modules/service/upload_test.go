package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/sitekit-io/sitekit/internal/infra/blob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

func formFile(t *testing.T, field, filename string, body []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File[field][0]
}

func TestUploadService_StoresSniffedImage(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()
	store := &MockStore{}
	store.On("Put", ctx, "uploads/"+projectID.String(), "logo.png", "image/png", pngHeader).
		Return(&blob.UploadedMeta{Key: "uploads/x/2026/01/01/abc.png", URL: "https://cdn.test/abc.png", SizeB: int64(len(pngHeader)), MIME: "image/png"}, nil)

	res, err := NewUploadService(store, 5<<20).UploadImage(ctx, projectID, formFile(t, "image", "logo.png", pngHeader))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/abc.png", res.URL)
	assert.Equal(t, "abc.png", res.Filename)
	assert.Equal(t, "image/png", res.MIME)
	store.AssertExpectations(t)
}

func TestUploadService_Rejections(t *testing.T) {
	ctx := context.Background()
	store := &MockStore{}
	svc := NewUploadService(store, 5<<20)

	_, err := svc.UploadImage(ctx, uuid.New(), nil)
	assert.ErrorIs(t, err, ErrFileRequired)

	// right extension, wrong bytes
	_, err = svc.UploadImage(ctx, uuid.New(), formFile(t, "image", "fake.png", []byte("just some text")))
	assert.ErrorIs(t, err, ErrUnsupportedMedia)

	_, err = svc.UploadImage(ctx, uuid.New(), formFile(t, "image", "doc.pdf", pngHeader))
	assert.ErrorIs(t, err, ErrUnsupportedMedia)

	tiny := NewUploadService(store, 8)
	_, err = tiny.UploadImage(ctx, uuid.New(), formFile(t, "image", "logo.png", pngHeader))
	assert.ErrorIs(t, err, ErrFileTooLarge)

	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadService_NoBackend(t *testing.T) {
	_, err := NewUploadService(nil, 5<<20).UploadImage(context.Background(), uuid.New(), formFile(t, "image", "logo.png", pngHeader))
	assert.ErrorIs(t, err, ErrBlobDisabled)
}
