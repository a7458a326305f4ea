package sync

import (
	"fmt"

	"go.uber.org/zap"
)

// BatchError records one failed record within a batch.
type BatchError struct {
	Key   string `json:"key"`
	Error string `json:"error"`
}

// BatchResult aggregates a batch sync. Partial success is a normal
// outcome, not an error state: Success is true only when every record
// applied, but the batch itself always yields a result.
type BatchResult struct {
	Success   bool          `json:"success"`
	Processed int           `json:"processed"`
	Failed    int           `json:"failed"`
	Rows      []interface{} `json:"rows"`
	Errors    []BatchError  `json:"errors"`
}

// UpsertBatch drives Upsert over each record strictly in arrival order.
// Records fail independently: one bad record never aborts or rolls back
// the rest, and two records resolving to the same natural key apply in
// order, the second updating the first's row. A bare object is treated
// as a batch of one.
func (e *Engine) UpsertBatch(col Collection, raw interface{}) *BatchResult {
	items := normalizeBatch(raw)
	result := &BatchResult{
		Rows:   []interface{}{},
		Errors: []BatchError{},
	}

	for i, item := range items {
		row, err := e.Upsert(col, item)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, BatchError{
				Key:   batchKey(col, i, err),
				Error: err.Error(),
			})
			e.log.Warn("batch record failed",
				zap.String("collection", col.Kind()),
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		result.Processed++
		result.Rows = append(result.Rows, row)
	}

	result.Success = result.Failed == 0
	return result
}

// normalizeBatch coerces the raw payload into a list of records,
// wrapping a single object.
func normalizeBatch(raw interface{}) []interface{} {
	switch v := Normalize(raw).(type) {
	case []interface{}:
		return v
	case nil:
		return nil
	default:
		return []interface{}{v}
	}
}

// batchKey labels a failed record by its natural key when it resolved,
// else by its position in the batch.
func batchKey(col Collection, i int, err error) string {
	if key := KeyOf(err); key != "" {
		return key
	}
	return fmt.Sprintf("%s[%d]", col.Kind(), i)
}
