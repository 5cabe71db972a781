package strs

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON encodes Empty as null, a single string as a JSON string and multiple
// strings as an array.
func (s Strings) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case none:
		return []byte("null"), nil
	case single:
		return json.Marshal(s.value)
	default:
		return json.Marshal(s.values)
	}
}

// UnmarshalJSON accepts null, a string or an array of strings. The shape is picked by the
// number of decoded strings, so [] becomes Empty and ["a"] becomes a single value.
func (s *Strings) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*s = Empty
		return nil
	case data[0] == '"':
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}

		*s = FromScalar(value)
		return nil
	default:
		var values []string
		if err := json.Unmarshal(data, &values); err != nil {
			return err
		}

		*s = wrap(values)
		return nil
	}
}
