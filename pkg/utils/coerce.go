package utils

import (
	"math"

	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ParseFloat converts a loosely typed value to float64.
// Missing, non-numeric and NaN values become 0.
func ParseFloat(v any) float64 {
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) {
		return 0
	}
	return f
}

// ParseInt is ParseFloat truncated towards zero.
func ParseInt(v any) int {
	return int(ParseFloat(v))
}

// StringOr returns the pointed-to value, or def when it is nil or empty.
func StringOr(p *string, def string) string {
	if p == nil || *p == "" {
		return def
	}
	return *p
}

func BoolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// DecodeJSON parses a raw JSON column. Empty or invalid input yields nil.
func DecodeJSON(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

// StringList reads a JSON array of scalars. Anything that is not an array
// yields an empty list; elements that cannot be rendered as a string are dropped.
func StringList(raw []byte) []string {
	out := make([]string, 0)
	items, ok := DecodeJSON(raw).([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		if item == nil {
			continue
		}
		s, err := cast.ToStringE(item)
		if err != nil {
			continue
		}
		out = append(out, s)
	}
	return out
}

// StringMap reads a JSON object into a flat string map. A string holding
// encoded JSON is accepted too; any other shape yields an empty map.
func StringMap(raw []byte) map[string]string {
	v := DecodeJSON(raw)
	switch v.(type) {
	case map[string]any, string:
		m, err := cast.ToStringMapStringE(v)
		if err == nil && m != nil {
			return m
		}
	}
	return make(map[string]string)
}

// ObjectList decodes a JSON array of objects into typed values.
// Entries that are not objects, or do not fit T, are skipped.
func ObjectList[T any](raw []byte) []T {
	out := make([]T, 0)
	items, ok := DecodeJSON(raw).([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}
		var dst T
		if err := decodeWeak(fields, &dst); err != nil {
			continue
		}
		out = append(out, dst)
	}
	return out
}

// Object decodes a single JSON object. It returns nil for any other shape.
func Object[T any](raw []byte) *T {
	fields, ok := DecodeJSON(raw).(map[string]any)
	if !ok {
		return nil
	}
	var dst T
	if err := decodeWeak(fields, &dst); err != nil {
		return nil
	}
	return &dst
}

func decodeWeak(input map[string]any, result any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           result,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
