//go:build unit || e2e

// Package testutil builds request bodies for handler tests: start from a
// valid DTO, then break one field at a time.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap round-trips v through JSON so mutators can work on the wire shape.
func DtoMap(t *testing.T, v any, mutators ...func(map[string]any)) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))

	for _, mutate := range mutators {
		mutate(body)
	}
	return body
}

// Field sets key to value. A nil value drops the key, which is how a test
// sends a body with a required field missing.
func Field(key string, value any) func(map[string]any) {
	return func(body map[string]any) {
		if value == nil {
			delete(body, key)
			return
		}
		body[key] = value
	}
}
