package schema

import (
	"encoding/json"
	"math"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.ANSIC,
	"January 2, 2006",
	"Jan 2, 2006",
}

// hierarchical schemes need a host to be usable
var hostSchemes = map[string]struct{}{
	"http": {}, "https": {}, "ws": {}, "wss": {}, "ftp": {},
}

type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validate checks payload against every field of s and reports all
// violations at once. Payload keys that s does not declare are ignored.
func Validate(payload map[string]any, s Schema) Result {
	errs := make([]string, 0)

	for _, f := range s {
		value, present := payload[f.Name]
		name := f.DisplayName()

		if f.Required && (!present || value == nil || value == "") {
			errs = append(errs, name+" is required")
			continue
		}
		if !present || value == nil {
			continue
		}

		if msg := checkType(f, value); msg != "" {
			errs = append(errs, name+" "+msg)
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

func checkType(f FieldSpec, value any) string {
	switch f.Type {
	case TypeString, TypeText:
		if _, ok := value.(string); !ok {
			return "must be a string"
		}
	case TypeNumber:
		if !isNumber(value) {
			return "must be a number"
		}
	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			return "must be a boolean"
		}
	case TypeEmail:
		s, ok := value.(string)
		if !ok || !emailPattern.MatchString(s) {
			return "must be a valid email"
		}
	case TypeURL:
		s, ok := value.(string)
		if !ok || !isAbsoluteURL(s) {
			return "must be a valid URL"
		}
	case TypeDate:
		s, ok := value.(string)
		if !ok || !isDate(s) {
			return "must be a valid date"
		}
	case TypeArray:
		if !isArray(value) {
			return "must be an array"
		}
	case TypeSelect:
		if len(f.Options) > 0 && !isOption(value, f.Options) {
			return "must be one of: " + strings.Join(f.Options, ", ")
		}
	}
	return ""
}

func isNumber(v any) bool {
	switch n := v.(type) {
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case json.Number:
		f, err := n.Float64()
		return err == nil && finite(f)
	case string:
		t := strings.TrimSpace(n)
		if t == "" {
			// a blank string coerces to zero
			return true
		}
		f, err := strconv.ParseFloat(t, 64)
		return err == nil && finite(f)
	}
	return false
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || u.Scheme == "" {
		return false
	}
	if _, ok := hostSchemes[strings.ToLower(u.Scheme)]; ok {
		return u.Host != ""
	}
	return true
}

func isDate(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func isArray(v any) bool {
	if _, ok := v.([]any); ok {
		return true
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

func isOption(v any, options []string) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	for _, o := range options {
		if o == s {
			return true
		}
	}
	return false
}
