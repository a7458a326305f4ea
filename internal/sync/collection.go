package sync

import (
	"fmt"
	"time"
)

// Collection describes one syncable record kind: how its natural key is
// resolved, how a fresh row is built, and which fields a re-sync may
// touch. Implementations are stateless; they are looked up by kind and
// handed to the Engine.
type Collection interface {
	Kind() string
	// MerchantScoped reports whether lookups are qualified by merchant id.
	MerchantScoped() bool
	// Key resolves the natural-key conditions for the record. Scoped
	// collections append the mid qualifier themselves.
	Key(rec Record, mid int64) (Key, error)
	// NewRow builds a row for a first-time insert under the resolved key.
	NewRow(rec Record, mid int64, key Key) (interface{}, error)
	// UpdateRow applies the record's mutable fields onto an existing
	// row. Payload fields are a full replace, never a merge.
	UpdateRow(row interface{}, rec Record) error
	// EmptyRow returns a pointer to a zero row for lookups.
	EmptyRow() interface{}
	// EmptyRows returns a pointer to an empty slice for listing.
	EmptyRows() interface{}
	// ListOrder returns the ORDER BY clause for listing, "" for none.
	ListOrder() string
}

var collections = map[string]Collection{
	"merchants":     merchantCollection{},
	"bills":         billCollection{},
	"inventory":     inventoryCollection{},
	"supply":        supplyCollection{},
	"production":    productionCollection{},
	"products":      productCollection{},
	"bom":           bomCollection{},
	"registrations": registrationCollection{},
}

// Lookup returns the collection registered under kind.
func Lookup(kind string) (Collection, bool) {
	col, ok := collections[kind]
	return col, ok
}

// Kinds returns the registered collection names.
func Kinds() []string {
	kinds := make([]string, 0, len(collections))
	for kind := range collections {
		kinds = append(kinds, kind)
	}
	return kinds
}

// fallbackID derives an id for merchant-scoped inserts when the client
// did not supply one. Terminals generate whole-second ids themselves,
// so the same coarse scheme is kept; the natural-key unique index is
// what catches the rare collision.
var fallbackID = func() int64 {
	return time.Now().Unix()
}

// rowID returns the client-supplied id when it is usable, else the
// time-based fallback.
func rowID(rec Record) int64 {
	if id, ok := rec.Int64("id"); ok && id != 0 {
		return id
	}
	return fallbackID()
}

func wrongRowType(kind string, row interface{}) error {
	return fmt.Errorf("%s: unexpected row type %T", kind, row)
}
