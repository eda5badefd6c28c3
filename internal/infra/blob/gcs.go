package blob

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/sitekit-io/sitekit/internal/config"
)

type GCSDeps struct {
	Client    *storage.Client
	Bucket    string
	PublicURL string
}

// NewGCS uses application default credentials.
func NewGCS(ctx context.Context, cfg *config.Config) (*GCSDeps, error) {
	if cfg.GCS.Bucket == "" {
		return nil, errors.New("gcs.bucket is empty")
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &GCSDeps{
		Client:    client,
		Bucket:    cfg.GCS.Bucket,
		PublicURL: strings.TrimRight(cfg.GCS.PublicURL, "/"),
	}, nil
}

func (g *GCSDeps) Put(ctx context.Context, keyPrefix string, filename string, contentType string, body []byte) (*UploadedMeta, error) {
	sumHex := sha256Hex(body)
	key := objectKey(keyPrefix, sumHex, filename)

	w := g.Client.Bucket(g.Bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	w.Metadata = map[string]string{
		"sha256": sumHex,
		"name":   filename,
	}
	if _, err := w.Write(body); err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	base := g.PublicURL
	if base == "" {
		base = fmt.Sprintf("https://storage.googleapis.com/%s", g.Bucket)
	}

	meta := &UploadedMeta{
		Bucket: g.Bucket,
		Key:    key,
		SHA256: sumHex,
		MIME:   contentType,
		SizeB:  int64(len(body)),
		URL:    base + "/" + key,
	}
	if attrs := w.Attrs(); attrs != nil {
		meta.ETag = attrs.Etag
	}
	return meta, nil
}

func (g *GCSDeps) Close() error {
	return g.Client.Close()
}
