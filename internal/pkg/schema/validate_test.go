package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func productsSchema() Schema {
	return Schema{
		{Name: "name", Type: TypeString, Required: true, Label: "Product Name"},
		{Name: "price", Type: TypeNumber, Required: true, Label: "Price"},
		{Name: "inStock", Type: TypeBoolean, Default: true, Label: "In Stock"},
	}
}

func TestValidate_FieldTypes(t *testing.T) {
	tests := []struct {
		name    string
		field   FieldSpec
		value   any
		wantErr string
	}{
		{name: "string ok", field: FieldSpec{Type: TypeString}, value: "hello"},
		{name: "string rejects number", field: FieldSpec{Type: TypeString}, value: 12.0, wantErr: "F must be a string"},
		{name: "text ok", field: FieldSpec{Type: TypeText}, value: "long\ntext"},
		{name: "text rejects bool", field: FieldSpec{Type: TypeText}, value: true, wantErr: "F must be a string"},
		{name: "number float", field: FieldSpec{Type: TypeNumber}, value: 9.99},
		{name: "number int", field: FieldSpec{Type: TypeNumber}, value: 3},
		{name: "number numeric string", field: FieldSpec{Type: TypeNumber}, value: "9.99"},
		{name: "number padded string", field: FieldSpec{Type: TypeNumber}, value: " 42 "},
		{name: "number blank string coerces", field: FieldSpec{Type: TypeNumber}, value: "  "},
		{name: "number rejects word", field: FieldSpec{Type: TypeNumber}, value: "abc", wantErr: "F must be a number"},
		{name: "number rejects infinity", field: FieldSpec{Type: TypeNumber}, value: "Infinity", wantErr: "F must be a number"},
		{name: "number rejects NaN", field: FieldSpec{Type: TypeNumber}, value: "NaN", wantErr: "F must be a number"},
		{name: "number rejects bool", field: FieldSpec{Type: TypeNumber}, value: true, wantErr: "F must be a number"},
		{name: "boolean ok", field: FieldSpec{Type: TypeBoolean}, value: false},
		{name: "boolean rejects string", field: FieldSpec{Type: TypeBoolean}, value: "true", wantErr: "F must be a boolean"},
		{name: "email ok", field: FieldSpec{Type: TypeEmail}, value: "jane@example.com"},
		{name: "email rejects missing dot", field: FieldSpec{Type: TypeEmail}, value: "jane@example", wantErr: "F must be a valid email"},
		{name: "email rejects spaces", field: FieldSpec{Type: TypeEmail}, value: "ja ne@example.com", wantErr: "F must be a valid email"},
		{name: "email rejects non string", field: FieldSpec{Type: TypeEmail}, value: 5.0, wantErr: "F must be a valid email"},
		{name: "url ok", field: FieldSpec{Type: TypeURL}, value: "https://cdn.example.com/a.png"},
		{name: "url opaque scheme ok", field: FieldSpec{Type: TypeURL}, value: "mailto:jane@example.com"},
		{name: "url rejects relative", field: FieldSpec{Type: TypeURL}, value: "/uploads/a.png", wantErr: "F must be a valid URL"},
		{name: "url rejects hostless http", field: FieldSpec{Type: TypeURL}, value: "http://", wantErr: "F must be a valid URL"},
		{name: "date rfc3339", field: FieldSpec{Type: TypeDate}, value: "2024-03-07T10:00:00Z"},
		{name: "date only", field: FieldSpec{Type: TypeDate}, value: "2024-03-07"},
		{name: "date fractional", field: FieldSpec{Type: TypeDate}, value: "2024-03-07T10:00:00.123Z"},
		{name: "date long form", field: FieldSpec{Type: TypeDate}, value: "March 7, 2024"},
		{name: "date rejects garbage", field: FieldSpec{Type: TypeDate}, value: "yesterday", wantErr: "F must be a valid date"},
		{name: "date rejects impossible", field: FieldSpec{Type: TypeDate}, value: "2024-02-30", wantErr: "F must be a valid date"},
		{name: "array ok", field: FieldSpec{Type: TypeArray}, value: []any{"a", 1.0}},
		{name: "array empty ok", field: FieldSpec{Type: TypeArray}, value: []any{}},
		{name: "array rejects string", field: FieldSpec{Type: TypeArray}, value: "a,b", wantErr: "F must be an array"},
		{name: "select ok", field: FieldSpec{Type: TypeSelect, Options: []string{"pending", "done"}}, value: "done"},
		{name: "select rejects other", field: FieldSpec{Type: TypeSelect, Options: []string{"pending", "done"}}, value: "lost", wantErr: "F must be one of: pending, done"},
		{name: "select without options accepts anything", field: FieldSpec{Type: TypeSelect}, value: "lost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.field
			f.Name = "f"
			f.Label = "F"
			res := Validate(map[string]any{"f": tt.value}, Schema{f})

			if tt.wantErr == "" {
				assert.True(t, res.Valid)
				assert.Empty(t, res.Errors)
			} else {
				assert.False(t, res.Valid)
				assert.Equal(t, []string{tt.wantErr}, res.Errors)
			}
		})
	}
}

func TestValidate_Required(t *testing.T) {
	s := Schema{{Name: "title", Type: TypeString, Required: true}}

	for name, payload := range map[string]map[string]any{
		"absent":       {},
		"null":         {"title": nil},
		"empty string": {"title": ""},
	} {
		t.Run(name, func(t *testing.T) {
			res := Validate(payload, s)
			assert.False(t, res.Valid)
			// label falls back to the field name; no type error is stacked on top
			assert.Equal(t, []string{"title is required"}, res.Errors)
		})
	}
}

func TestValidate_OptionalAbsentOrNullSkipsTypeCheck(t *testing.T) {
	s := Schema{{Name: "tags", Type: TypeArray}, {Name: "site", Type: TypeURL}}

	assert.True(t, Validate(map[string]any{}, s).Valid)
	assert.True(t, Validate(map[string]any{"tags": nil, "site": nil}, s).Valid)
}

func TestValidate_OptionalEmptyStringIsTypeChecked(t *testing.T) {
	s := Schema{{Name: "site", Type: TypeURL, Label: "Website"}}

	res := Validate(map[string]any{"site": ""}, s)
	assert.Equal(t, []string{"Website must be a valid URL"}, res.Errors)
}

func TestValidate_ReportsEveryViolationInDeclarationOrder(t *testing.T) {
	s := Schema{
		{Name: "orderNumber", Type: TypeString, Required: true, Label: "Order Number"},
		{Name: "items", Type: TypeArray, Required: true, Label: "Items"},
		{Name: "totalAmount", Type: TypeNumber, Required: true, Label: "Total Amount"},
		{Name: "status", Type: TypeSelect, Required: true, Label: "Status", Options: []string{"pending", "completed"}},
	}

	res := Validate(map[string]any{
		"items":       "not-a-list",
		"totalAmount": "ten",
		"status":      "lost",
	}, s)

	assert.False(t, res.Valid)
	assert.Equal(t, []string{
		"Order Number is required",
		"Items must be an array",
		"Total Amount must be a number",
		"Status must be one of: pending, completed",
	}, res.Errors)
}

func TestValidate_ExtraKeysPassThrough(t *testing.T) {
	res := Validate(map[string]any{
		"name":      "Widget",
		"price":     1.0,
		"unlisted":  []any{"x"},
		"dataType":  "anything",
		"__proto__": nil,
	}, productsSchema())

	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestValidate_IsIdempotent(t *testing.T) {
	payload := map[string]any{"price": "oops", "inStock": "yes"}

	first := Validate(payload, productsSchema())
	second := Validate(payload, productsSchema())

	assert.Equal(t, first, second)
	assert.Len(t, first.Errors, 3)
}

func TestValidate_DoesNotApplyDefaults(t *testing.T) {
	payload := map[string]any{"name": "Widget", "price": "9.99"}

	res := Validate(payload, productsSchema())

	assert.True(t, res.Valid)
	_, has := payload["inStock"]
	assert.False(t, has, "defaults are editor metadata and must not be written into the payload")
	assert.Equal(t, "9.99", payload["price"], "payload is not rewritten")
}

func TestValidate_MissingNameScenario(t *testing.T) {
	res := Validate(map[string]any{"price": 9.99}, productsSchema())

	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "Product Name")
}

func TestValidate_EmptySchemaAcceptsAnything(t *testing.T) {
	res := Validate(map[string]any{"a": 1.0}, nil)
	assert.True(t, res.Valid)
	assert.NotNil(t, res.Errors)
}
