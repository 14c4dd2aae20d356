package model

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/crypto/sha3"
	"gopkg.in/yaml.v3"
)

// Top-level categories of an analysis result.
const (
	CategoryTechnicalSEO = "technical_seo"
	CategoryMetaData     = "meta_data"
	CategoryPerformance  = "performance"
	CategoryMobile       = "mobile"
	KeyURL               = "url"
)

// Results is the raw analysis result produced by an external SEO analyzer.
// It is a nested mapping keyed by category (technical_seo, meta_data,
// performance, mobile) plus a top-level url. No schema is enforced.
//
// Design decision: We keep the result as a generic map instead of decoding
// it into structs because the producer is external and its shape varies
// between versions. Every read goes through Lookup, which never panics and
// lets the caller choose the default for absent or mistyped data.
type Results map[string]any

// ResultsFrom converts an arbitrary decoded value into Results.
// Anything that is not a mapping yields empty Results.
func ResultsFrom(v any) Results {
	m, ok := asMap(normalize(v))
	if !ok {
		return Results{}
	}
	return Results(m)
}

// ParseResults decodes an analysis result document.
// JSON documents are decoded with number preservation; anything else is
// treated as YAML. A document whose root is not a mapping yields empty
// Results rather than an error.
func ParseResults(data []byte) (Results, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Results{}, nil
	}

	var decoded any
	if trimmed[0] == '{' || trimmed[0] == '[' {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		if err := dec.Decode(&decoded); err != nil {
			return nil, fmt.Errorf("failed to parse analysis results as JSON: %w", err)
		}
	} else if err := yaml.Unmarshal(trimmed, &decoded); err != nil {
		return nil, fmt.Errorf("failed to parse analysis results as YAML: %w", err)
	}

	return ResultsFrom(decoded), nil
}

// Lookup walks the nested mapping along path.
// A missing key or a non-mapping intermediate value yields an absent Value.
func (r Results) Lookup(path ...string) Value {
	return Value{raw: map[string]any(r), present: r != nil}.Lookup(path...)
}

// URL returns the analyzed URL, or def when it is missing or blank.
func (r Results) URL(def string) string {
	url := strings.TrimSpace(r.Lookup(KeyURL).StringOr(""))
	if url == "" {
		return def
	}
	return url
}

// IsEmpty reports whether there is no analysis data at all.
func (r Results) IsEmpty() bool {
	return len(r) == 0
}

// Fingerprint returns a short, stable digest of the results.
// encoding/json sorts map keys, so equal results always produce the same
// fingerprint. An empty string is returned when the results cannot be encoded.
func (r Results) Fingerprint() string {
	data, err := json.Marshal(map[string]any(r))
	if err != nil {
		return ""
	}
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:8])
}

// Value is the result of a tolerant lookup.
// All accessors substitute the supplied default when the value is absent,
// null, or of an unusable type.
type Value struct {
	raw     any
	present bool
}

// Lookup continues a lookup from this value.
func (v Value) Lookup(path ...string) Value {
	cur := v
	for _, key := range path {
		m, ok := cur.Map()
		if !ok {
			return Value{}
		}
		next, ok := m[key]
		if !ok {
			return Value{}
		}
		cur = Value{raw: next, present: true}
	}
	return cur
}

// Exists reports whether the key was present (even if its value is null).
func (v Value) Exists() bool {
	return v.present
}

// Map returns the value as a mapping.
func (v Value) Map() (map[string]any, bool) {
	if !v.present {
		return nil, false
	}
	return asMap(v.raw)
}

// HasEntries reports whether the value is a mapping with at least one key.
// Classification rules and detail helpers only inspect a category when it
// has entries.
func (v Value) HasEntries() bool {
	m, ok := v.Map()
	return ok && len(m) > 0
}

// Truthy reports whether the value is present and non-zero.
// Booleans are used as-is, numbers are true when non-zero, and strings,
// mappings and lists are true when non-empty.
func (v Value) Truthy() bool {
	if !v.present || v.raw == nil {
		return false
	}
	switch t := v.raw.(type) {
	case bool:
		return t
	case string:
		return t != ""
	case map[string]any:
		return len(t) > 0
	case []any:
		return len(t) > 0
	}
	if f, ok := toFloat(v.raw); ok {
		return f != 0
	}
	return true
}

// BoolOr returns the truthiness of the value, or def when absent.
func (v Value) BoolOr(def bool) bool {
	if !v.present {
		return def
	}
	return v.Truthy()
}

// FloatOr returns the value as a float64, or def when it is not numeric.
func (v Value) FloatOr(def float64) float64 {
	if !v.present {
		return def
	}
	if f, ok := toFloat(v.raw); ok {
		return f
	}
	return def
}

// IntOr returns the value as an int, or def when it is not numeric.
// Fractional values are truncated.
func (v Value) IntOr(def int) int {
	if !v.present {
		return def
	}
	if f, ok := toFloat(v.raw); ok {
		return int(f)
	}
	return def
}

// StringOr returns the value formatted as text, or def when absent or null.
// Mappings and lists are not considered text and also yield def.
func (v Value) StringOr(def string) string {
	if !v.present || v.raw == nil {
		return def
	}
	switch t := v.raw.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case map[string]any, []any:
		return def
	}
	if f, ok := toFloat(v.raw); ok {
		return FormatNumber(f)
	}
	return fmt.Sprint(v.raw)
}

// Equals reports whether the value is the given string.
func (v Value) Equals(s string) bool {
	str, ok := v.raw.(string)
	return v.present && ok && str == s
}

// FormatNumber formats a number without trailing zeros ("3", "1.25").
func FormatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// asMap returns v as a string-keyed mapping.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Results:
		return map[string]any(m), true
	default:
		return nil, false
	}
}

// toFloat converts the numeric representations produced by encoding/json
// and yaml.v3 into a float64. Numeric strings are accepted as well.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// normalize converts decoder-specific container types into
// map[string]any and []any so lookups see a single shape.
func normalize(v any) any {
	switch t := v.(type) {
	case Results:
		return normalize(map[string]any(t))
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	default:
		return v
	}
}
