package model

import (
	"database/sql/driver"
	"encoding/json"
)

// StringList is a list of strings persisted as a JSON array in a text
// column. Domain code always sees a real slice; encoding and decoding only
// happen at the persistence and request boundaries. Malformed or empty
// stored text decodes to an empty list rather than erroring.
type StringList []string

// Scan implements sql.Scanner.
func (s *StringList) Scan(value interface{}) error {
	*s = StringList{}
	if value == nil {
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return nil
	}
	if len(raw) == 0 {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		// garbage in the column reads as an empty list
		return nil
	}
	*s = list
	return nil
}

// Value implements driver.Valuer.
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		s = StringList{}
	}
	raw, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// UnmarshalJSON accepts either a JSON array of strings or a JSON string
// holding a pre-serialized array, so clients may send the field in either
// form.
func (s *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	*s = StringList{}
	if text == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(text), &list); err != nil {
		return nil
	}
	*s = list
	return nil
}
