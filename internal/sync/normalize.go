package sync

import (
	"encoding/json"
)

// Normalize turns a raw client payload into a structured value.
// Payloads arrive either as an already decoded value or as JSON text:
// the transport wraps record bodies in a string field, so
// double-encoding is common. A string that fails to decode is passed
// through unchanged rather than rejected; a genuinely malformed record
// then surfaces later as a missing-field error instead of failing the
// whole request. Normalize never returns an error.
func Normalize(raw interface{}) interface{} {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		var decoded interface{}
		if err := json.Unmarshal([]byte(v), &decoded); err != nil {
			return v
		}
		return Normalize(decoded)
	case []byte:
		var decoded interface{}
		if err := json.Unmarshal(v, &decoded); err != nil {
			return string(v)
		}
		return Normalize(decoded)
	case json.RawMessage:
		var decoded interface{}
		if err := json.Unmarshal(v, &decoded); err != nil {
			return string(v)
		}
		return Normalize(decoded)
	default:
		return raw
	}
}

// toRecord coerces a normalized value into a Record, reporting whether
// the value was an object at all.
func toRecord(v interface{}) (Record, bool) {
	switch m := v.(type) {
	case Record:
		return m, true
	case map[string]interface{}:
		return Record(m), true
	}
	return nil, false
}
