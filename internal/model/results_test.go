package model

import (
	"encoding/json"
	"testing"
)

// sampleResults returns a typical analysis result as decoded from JSON.
func sampleResults(t *testing.T) Results {
	t.Helper()

	r, err := ParseResults([]byte(`{
		"url": "https://example.com",
		"technical_seo": {
			"html_structure": {"has_doctype": true, "has_head": true},
			"ssl_check": {"has_ssl": true}
		},
		"meta_data": {
			"title_tag": {"content": "Example", "length": 7, "optimal_length": "bad"},
			"img_alt": {"with_alt": 4, "without_alt": 0}
		},
		"performance": {
			"load_time": {"time_seconds": 1.25, "rating": "good"}
		}
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

// TestResultsLookup tests nested tolerant lookups.
func TestResultsLookup(t *testing.T) {
	t.Parallel()

	r := sampleResults(t)

	t.Run("reads nested booleans", func(t *testing.T) {
		t.Parallel()
		if !r.Lookup(CategoryTechnicalSEO, "ssl_check", "has_ssl").BoolOr(false) {
			t.Error("expected has_ssl to be true")
		}
	})

	t.Run("reads json numbers", func(t *testing.T) {
		t.Parallel()
		if got := r.Lookup(CategoryMetaData, "title_tag", "length").IntOr(0); got != 7 {
			t.Errorf("expected length 7, got %d", got)
		}
		if got := r.Lookup(CategoryPerformance, "load_time", "time_seconds").FloatOr(0); got != 1.25 {
			t.Errorf("expected 1.25, got %v", got)
		}
	})

	t.Run("missing keys use defaults", func(t *testing.T) {
		t.Parallel()
		if got := r.Lookup(CategoryMobile, "viewport", "is_responsive").BoolOr(true); !got {
			t.Error("expected default true for missing key")
		}
		if got := r.Lookup("nope", "deeper").StringOr("fallback"); got != "fallback" {
			t.Errorf("expected fallback, got %q", got)
		}
	})

	t.Run("walking through a scalar yields absent value", func(t *testing.T) {
		t.Parallel()
		v := r.Lookup(KeyURL, "host")
		if v.Exists() {
			t.Error("expected absent value when walking through a string")
		}
	})

	t.Run("url falls back when missing", func(t *testing.T) {
		t.Parallel()
		if got := r.URL("n/a"); got != "https://example.com" {
			t.Errorf("expected url, got %q", got)
		}
		if got := (Results{}).URL("n/a"); got != "n/a" {
			t.Errorf("expected n/a, got %q", got)
		}
	})

	t.Run("nil results never panic", func(t *testing.T) {
		t.Parallel()
		var nilResults Results
		if nilResults.Lookup(CategoryMetaData, "title_tag").Exists() {
			t.Error("expected absent value from nil results")
		}
		if !nilResults.IsEmpty() {
			t.Error("expected nil results to be empty")
		}
	})
}

// TestValueAccessors tests conversions of heterogeneous values.
func TestValueAccessors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		raw       any
		wantBool  bool
		wantInt   int
		wantFloat float64
		wantStr   string
	}{
		{"bool true", true, true, -1, -1, "true"},
		{"bool false", false, false, -1, -1, "false"},
		{"int", 3, true, 3, 3, "3"},
		{"zero", 0, false, 0, 0, "0"},
		{"float", 2.5, true, 2, 2.5, "2.5"},
		{"json number", json.Number("12"), true, 12, 12, "12"},
		{"numeric string", "42", true, 42, 42, "42"},
		{"text", "good", true, -1, -1, "good"},
		{"empty string", "", false, -1, -1, ""},
		{"null", nil, false, -1, -1, "def"},
		{"mapping", map[string]any{"a": 1}, true, -1, -1, "def"},
		{"empty mapping", map[string]any{}, false, -1, -1, "def"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v := Value{raw: tc.raw, present: true}
			if got := v.BoolOr(!tc.wantBool); got != tc.wantBool {
				t.Errorf("BoolOr = %v, expected %v", got, tc.wantBool)
			}
			if got := v.IntOr(-1); got != tc.wantInt {
				t.Errorf("IntOr = %d, expected %d", got, tc.wantInt)
			}
			if got := v.FloatOr(-1); got != tc.wantFloat {
				t.Errorf("FloatOr = %v, expected %v", got, tc.wantFloat)
			}
			if got := v.StringOr("def"); got != tc.wantStr {
				t.Errorf("StringOr = %q, expected %q", got, tc.wantStr)
			}
		})
	}
}

// TestParseResults tests decoding of JSON and YAML inputs.
func TestParseResults(t *testing.T) {
	t.Parallel()

	t.Run("yaml input", func(t *testing.T) {
		t.Parallel()
		r, err := ParseResults([]byte("url: https://example.com\nmeta_data:\n  img_alt:\n    without_alt: 3\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := r.Lookup(CategoryMetaData, "img_alt", "without_alt").IntOr(0); got != 3 {
			t.Errorf("expected 3, got %d", got)
		}
	})

	t.Run("non-mapping root yields empty results", func(t *testing.T) {
		t.Parallel()
		r, err := ParseResults([]byte(`[1, 2, 3]`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.IsEmpty() {
			t.Errorf("expected empty results, got %v", r)
		}
	})

	t.Run("blank input yields empty results", func(t *testing.T) {
		t.Parallel()
		r, err := ParseResults([]byte("  \n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.IsEmpty() {
			t.Error("expected empty results")
		}
	})

	t.Run("invalid json returns error", func(t *testing.T) {
		t.Parallel()
		if _, err := ParseResults([]byte(`{"url":`)); err == nil {
			t.Error("expected error for truncated JSON")
		}
	})
}

// TestResultsFrom tests conversion of arbitrary values.
func TestResultsFrom(t *testing.T) {
	t.Parallel()

	if r := ResultsFrom("not a map"); !r.IsEmpty() {
		t.Error("expected empty results for a string")
	}
	if r := ResultsFrom(nil); !r.IsEmpty() {
		t.Error("expected empty results for nil")
	}

	r := ResultsFrom(map[any]any{"mobile": map[any]any{"viewport": map[string]any{"is_responsive": true}}})
	if !r.Lookup(CategoryMobile, "viewport", "is_responsive").BoolOr(false) {
		t.Error("expected nested map[any]any values to be normalized")
	}
}

// TestResultsFingerprint tests that fingerprints are stable and content-sensitive.
func TestResultsFingerprint(t *testing.T) {
	t.Parallel()

	a := Results{"url": "https://a.example", "mobile": map[string]any{"x": 1}}
	b := Results{"mobile": map[string]any{"x": 1}, "url": "https://a.example"}
	c := Results{"url": "https://b.example"}

	if a.Fingerprint() == "" {
		t.Fatal("expected non-empty fingerprint")
	}
	if len(a.Fingerprint()) != 16 {
		t.Errorf("expected 16 hex characters, got %q", a.Fingerprint())
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("expected key order to be irrelevant")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("expected different results to have different fingerprints")
	}
}
