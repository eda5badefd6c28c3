// Package schema holds module field definitions and the rule-driven
// validator that checks arbitrary JSON records against them.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iancoleman/orderedmap"
)

type FieldType string

const (
	TypeString  FieldType = "string"
	TypeText    FieldType = "text"
	TypeNumber  FieldType = "number"
	TypeBoolean FieldType = "boolean"
	TypeEmail   FieldType = "email"
	TypeURL     FieldType = "url"
	TypeDate    FieldType = "date"
	TypeArray   FieldType = "array"
	TypeSelect  FieldType = "select"
)

func (t FieldType) Known() bool {
	switch t {
	case TypeString, TypeText, TypeNumber, TypeBoolean, TypeEmail, TypeURL, TypeDate, TypeArray, TypeSelect:
		return true
	}
	return false
}

// FieldSpec describes one field of a module schema. Default is editor
// metadata and is never applied to stored records.
type FieldSpec struct {
	Name     string    `json:"-"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Label    string    `json:"label,omitempty"`
	Default  any       `json:"default,omitempty"`
	Options  []string  `json:"options,omitempty"`
}

// DisplayName is the label used in validation messages.
func (f FieldSpec) DisplayName() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// Schema is an ordered list of fields. On the wire it is a JSON object keyed
// by field name whose key order is the declaration order.
type Schema []FieldSpec

func (s Schema) Field(name string) (FieldSpec, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

func (s Schema) Names() []string {
	names := make([]string, 0, len(s))
	for _, f := range s {
		names = append(names, f.Name)
	}
	return names
}

// Check rejects schemas that the validator cannot enforce.
func (s Schema) Check() error {
	if len(s) == 0 {
		return fmt.Errorf("schema has no fields")
	}
	seen := make(map[string]struct{}, len(s))
	var problems []string
	for _, f := range s {
		if strings.TrimSpace(f.Name) == "" {
			problems = append(problems, "field with empty name")
			continue
		}
		if _, dup := seen[f.Name]; dup {
			problems = append(problems, fmt.Sprintf("%s: declared twice", f.Name))
		}
		seen[f.Name] = struct{}{}
		if !f.Type.Known() {
			problems = append(problems, fmt.Sprintf("%s: unknown type %q", f.Name, f.Type))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid schema: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (s Schema) MarshalJSON() ([]byte, error) {
	om := orderedmap.New()
	om.SetEscapeHTML(false)
	for _, f := range s {
		om.Set(f.Name, f)
	}
	return json.Marshal(om)
}

func (s *Schema) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*s = nil
		return nil
	}

	// key order comes from the ordered map, values from a typed decode
	om := orderedmap.New()
	if err := json.Unmarshal(b, om); err != nil {
		return err
	}
	var specs map[string]FieldSpec
	if err := json.Unmarshal(b, &specs); err != nil {
		return err
	}

	out := make(Schema, 0, len(specs))
	for _, name := range om.Keys() {
		f := specs[name]
		f.Name = name
		out = append(out, f)
	}
	*s = out
	return nil
}
