package storage

import (
	"encoding/json"
	"reflect"
	"time"
)

// toNullTime maps a nil or zero time to NULL.
func toNullTime(t *time.Time) interface{} {
	if t == nil || t.IsZero() {
		return nil
	}
	return *t
}

func toNullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// marshalJSONArray encodes a slice for a JSONB column; nil slices become "[]".
func marshalJSONArray(v interface{}) (string, error) {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice && rv.Len() == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
