package serializer

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/sitekit-io/sitekit/internal/modules/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestFlattenRecord_OwnKeysWin(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	d := &model.DynamicData{
		ID: uuid.MustParse("11111111-2222-3333-4444-555555555555"),
		Data: datatypes.JSONMap{
			"name":      "Mug",
			"id":        "spoofed",
			"createdAt": "yesterday",
		},
		CreatedAt: at,
		UpdatedAt: at,
	}

	out := FlattenRecord(d)
	assert.Equal(t, d.ID, out["id"])
	assert.Equal(t, at, out["createdAt"])
	assert.Equal(t, "Mug", out["name"])

	// the stored payload is left alone
	assert.Equal(t, "spoofed", d.Data["id"])

	b, err := sonic.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "11111111-2222-3333-4444-555555555555",
		"name": "Mug",
		"createdAt": "2026-03-01T10:00:00Z",
		"updatedAt": "2026-03-01T10:00:00Z"
	}`, string(b))
}

func TestListKeepsZeroCount(t *testing.T) {
	b, err := sonic.Marshal(List(0, FlattenRecords(nil)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": true, "count": 0, "data": []}`, string(b))
}
