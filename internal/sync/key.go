package sync

import (
	"fmt"
	"strings"
)

// Cond is a single natural-key condition.
type Cond struct {
	Column string
	Value  interface{}
}

// Key is the ordered list of conditions identifying a row. Order is
// fixed per collection so generated SQL stays stable.
type Key []Cond

func (k Key) String() string {
	parts := make([]string, 0, len(k))
	for _, c := range k {
		parts = append(parts, fmt.Sprintf("%s=%v", c.Column, c.Value))
	}
	return strings.Join(parts, ",")
}

// Value returns the value bound to column, nil when the column is not
// part of the key.
func (k Key) Value(column string) interface{} {
	for _, c := range k {
		if c.Column == column {
			return c.Value
		}
	}
	return nil
}
