package serializer

import (
	"github.com/sitekit-io/sitekit/internal/modules/model"
)

// Record is the public shape of a stored document: the payload keys at the
// top level next to id, createdAt and updatedAt. The record's own keys win
// over payload keys of the same name.
type Record map[string]interface{}

func FlattenRecord(d *model.DynamicData) Record {
	out := make(Record, len(d.Data)+3)
	for k, v := range d.Data {
		out[k] = v
	}
	out["id"] = d.ID
	out["createdAt"] = d.CreatedAt
	out["updatedAt"] = d.UpdatedAt
	return out
}

func FlattenRecords(items []model.DynamicData) []Record {
	out := make([]Record, 0, len(items))
	for i := range items {
		out = append(out, FlattenRecord(&items[i]))
	}
	return out
}
