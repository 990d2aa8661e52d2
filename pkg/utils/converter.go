// Package utils provides utility functions for the MFO Shield Risk Service.
// This file contains data conversion, transformation, and formatting utilities.
package utils

import (
	"encoding/json"
	"fmt"
	"time"
)

// ================================================================================
// Loose Value Coercion
// ================================================================================

// CoerceString extracts a string from a loosely-typed value
func CoerceString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// CoerceFloat64 extracts a float64 from a loosely-typed value.
// JSON decoding and manual map construction produce different numeric types,
// so integer widths and json.Number are accepted as well.
func CoerceFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// CoerceMap extracts a string-keyed map from a loosely-typed value
func CoerceMap(v interface{}) (map[string]interface{}, bool) {
	m, ok := v.(map[string]interface{})
	return m, ok
}

// ================================================================================
// Loose Map Accessors
// ================================================================================

// StringFromMap reads a string value from a loose map, falling back to a default
func StringFromMap(m map[string]interface{}, key string, defaultValue string) string {
	if m == nil {
		return defaultValue
	}
	if s, ok := CoerceString(m[key]); ok && s != "" {
		return s
	}
	return defaultValue
}

// Float64FromMap reads a numeric value from a loose map, falling back to a default
func Float64FromMap(m map[string]interface{}, key string, defaultValue float64) float64 {
	if m == nil {
		return defaultValue
	}
	if f, ok := CoerceFloat64(m[key]); ok {
		return f
	}
	return defaultValue
}

// MapFromMap reads a nested map from a loose map, falling back to an empty map
func MapFromMap(m map[string]interface{}, key string) map[string]interface{} {
	if m != nil {
		if nested, ok := CoerceMap(m[key]); ok {
			return nested
		}
	}
	return map[string]interface{}{}
}

// ================================================================================
// JSON Conversion
// ================================================================================

// ToJSON converts an object to JSON string
func ToJSON(v interface{}) (string, error) {
	bytes, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	return string(bytes), nil
}

// ToJSONPretty converts an object to pretty-printed JSON string
func ToJSONPretty(v interface{}) (string, error) {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	return string(bytes), nil
}

// FromJSONBytes parses JSON bytes into an object
func FromJSONBytes(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal JSON bytes: %w", err)
	}
	return nil
}

// ================================================================================
// Time Conversion
// ================================================================================

// TimeToISO8601 converts time.Time to an ISO 8601 UTC string
func TimeToISO8601(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ISO8601ToTime parses an ISO 8601 string to time.Time
func ISO8601ToTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse ISO 8601 time: %w", err)
	}
	return t, nil
}
