package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringList_Scan(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected StringList
	}{
		{
			name:     "json array bytes",
			value:    []byte(`["video","film"]`),
			expected: StringList{"video", "film"},
		},
		{
			name:     "json array string",
			value:    `["a"]`,
			expected: StringList{"a"},
		},
		{
			name:     "nil column",
			value:    nil,
			expected: StringList{},
		},
		{
			name:     "empty text",
			value:    "",
			expected: StringList{},
		},
		{
			name:     "malformed text reads as empty",
			value:    "not json at all",
			expected: StringList{},
		},
		{
			name:     "wrong json shape reads as empty",
			value:    `{"k":"v"}`,
			expected: StringList{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s StringList
			err := s.Scan(tt.value)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestStringList_Value(t *testing.T) {
	v, err := StringList{"one", "two"}.Value()
	assert.NoError(t, err)
	assert.Equal(t, `["one","two"]`, v)

	v, err = StringList(nil).Value()
	assert.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func TestStringList_RoundTrip(t *testing.T) {
	original := StringList{"live marketing", "events", "ção"}

	stored, err := original.Value()
	assert.NoError(t, err)

	var loaded StringList
	assert.NoError(t, loaded.Scan(stored))
	assert.Equal(t, original, loaded)
}

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected StringList
	}{
		{
			name:     "plain array",
			payload:  `["video","photo"]`,
			expected: StringList{"video", "photo"},
		},
		{
			name:     "pre-serialized array string",
			payload:  `"[\"video\"]"`,
			expected: StringList{"video"},
		},
		{
			name:     "empty string",
			payload:  `""`,
			expected: StringList{},
		},
		{
			name:     "garbage string",
			payload:  `"oops"`,
			expected: StringList{},
		},
		{
			name:     "null",
			payload:  `null`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s StringList
			err := json.Unmarshal([]byte(tt.payload), &s)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}
}
