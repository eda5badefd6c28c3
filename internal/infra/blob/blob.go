package blob

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Store persists uploaded bytes and hands back a link the site can embed.
type Store interface {
	Put(ctx context.Context, keyPrefix string, filename string, contentType string, body []byte) (*UploadedMeta, error)
}

type UploadedMeta struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
	ETag   string `json:"etag,omitempty"`
	SHA256 string `json:"sha256"`
	MIME   string `json:"mime"`
	SizeB  int64  `json:"size"`
	URL    string `json:"url"`
}

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// objectKey is content addressed: <prefix>/<yyyy/mm/dd>/<sha256><ext>.
func objectKey(keyPrefix, sumHex, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	datePrefix := time.Now().UTC().Format("2006/01/02")
	return fmt.Sprintf("%s/%s/%s%s", strings.Trim(keyPrefix, "/"), datePrefix, sumHex, ext)
}
