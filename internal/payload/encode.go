package payload

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Encode serializes v for the bridge. Nil values (including typed nil
// pointers and maps) encode to the empty string, which the bridge reads as
// an absent argument.
func Encode(what string, v any) (string, error) {
	if isNil(v) {
		return "", nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", what, err)
	}
	return string(data), nil
}

// Decode is the inverse of Encode. An empty input leaves out untouched.
func Decode(what string, data string, out any) error {
	if data == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return fmt.Errorf("decode %s: %w", what, err)
	}
	return nil
}

// Optional flattens an optional string for the bridge.
func Optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
