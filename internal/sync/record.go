package sync

import (
	"encoding/json"
	"strconv"
	"strings"

	"gorm.io/datatypes"
)

// DefaultMerchantID is the legacy tenant. Terminals that predate
// multi-tenancy never send a mid and land here.
const DefaultMerchantID int64 = 1

// Record is a normalized, loosely typed client payload. Clients are
// JSON producers, so numbers arrive as float64 and any field may be
// missing or null.
type Record map[string]interface{}

// MerchantID returns the tenant the record belongs to. Absent or null
// means the default tenant; an explicit zero is a real tenant id and
// is honored as-is.
func (r Record) MerchantID() int64 {
	v, ok := r["mid"]
	if !ok || v == nil {
		return DefaultMerchantID
	}
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int:
		return int64(n)
	case int64:
		return n
	case string:
		if id, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return id
		}
	}
	return DefaultMerchantID
}

// Has reports whether the field is present and non-null.
func (r Record) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// String returns the field as a string, "" when absent. Numeric values
// are formatted, which keeps bill numbers usable whether the client
// sent "1001" or 1001.
func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// StringOr returns the field as a string, falling back when it is
// absent or empty.
func (r Record) StringOr(key, fallback string) string {
	if s := r.String(key); s != "" {
		return s
	}
	return fallback
}

// Float returns the field as a float64, 0 when absent or not numeric.
func (r Record) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return 0
}

// Int64 returns the field as an int64 and whether it was present and
// usable as one.
func (r Record) Int64(key string) (int64, bool) {
	switch v := r[key].(type) {
	case float64:
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	case string:
		if id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return id, true
		}
	}
	return 0, false
}

// Bool returns the field as a bool and whether it was present. The
// second return distinguishes "field omitted" from an explicit false.
func (r Record) Bool(key string) (bool, bool) {
	switch v := r[key].(type) {
	case bool:
		return v, true
	case float64:
		return v != 0, true
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b, true
		}
	}
	return false, false
}

// JSON marshals one field for storage in a jsonb column, nil when the
// field is absent.
func (r Record) JSON(key string) datatypes.JSON {
	v, ok := r[key]
	if !ok || v == nil {
		return nil
	}
	buf, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(buf)
}

// AsJSON marshals the whole record for storage in a jsonb column.
func (r Record) AsJSON() datatypes.JSON {
	buf, err := json.Marshal(r)
	if err != nil {
		return nil
	}
	return datatypes.JSON(buf)
}
