package sync

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Engine applies idempotent create-or-update operations to the
// collection tables. It takes no lock across requests: the natural-key
// unique indexes are the backstop against concurrent inserts, and a
// lost race is retried once as an update.
type Engine struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewEngine creates a sync engine on top of the given database handle.
func NewEngine(db *gorm.DB, log *zap.Logger) *Engine {
	return &Engine{db: db, log: log}
}

// Upsert normalizes raw, resolves its natural key and creates or
// updates the matching row. The returned row is the row as persisted,
// including server-assigned ids and timestamps, so the caller learns
// the final id and merchant id.
func (e *Engine) Upsert(col Collection, raw interface{}) (interface{}, error) {
	rec, ok := toRecord(Normalize(raw))
	if !ok {
		return nil, &Error{Code: CodeInvalidPayload, Err: fmt.Errorf("%s: payload is not an object", col.Kind())}
	}

	mid := rec.MerchantID()
	key, err := col.Key(rec, mid)
	if err != nil {
		return nil, &Error{Code: CodeInvalidPayload, Err: err}
	}

	row := col.EmptyRow()
	err = e.whereKey(key).First(row).Error
	switch {
	case err == nil:
		return e.update(col, row, rec, key)

	case errors.Is(err, gorm.ErrRecordNotFound):
		fresh, err := col.NewRow(rec, mid, key)
		if err != nil {
			return nil, &Error{Code: CodeInvalidPayload, Key: key.String(), Err: err}
		}
		if err := e.db.Create(fresh).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost a race with a concurrent insert on the same
				// natural key: retry once as an update.
				return e.retryAsUpdate(col, rec, key)
			}
			return nil, &Error{Code: CodeStorage, Key: key.String(), Err: err}
		}
		e.log.Debug("record created",
			zap.String("collection", col.Kind()),
			zap.String("key", key.String()))
		return fresh, nil

	default:
		return nil, &Error{Code: CodeStorage, Key: key.String(), Err: err}
	}
}

// List returns every row of the collection, in the collection's
// preferred order.
func (e *Engine) List(col Collection) (interface{}, error) {
	rows := col.EmptyRows()
	tx := e.db
	if order := col.ListOrder(); order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Find(rows).Error; err != nil {
		return nil, &Error{Code: CodeStorage, Key: col.Kind(), Err: err}
	}
	return rows, nil
}

// Find returns the row matching key, CodeNotFound when absent.
func (e *Engine) Find(col Collection, key Key) (interface{}, error) {
	row := col.EmptyRow()
	if err := e.whereKey(key).First(row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &Error{Code: CodeNotFound, Key: key.String(), Err: err}
		}
		return nil, &Error{Code: CodeStorage, Key: key.String(), Err: err}
	}
	return row, nil
}

func (e *Engine) update(col Collection, row interface{}, rec Record, key Key) (interface{}, error) {
	if err := col.UpdateRow(row, rec); err != nil {
		return nil, &Error{Code: CodeInvalidPayload, Key: key.String(), Err: err}
	}
	// Save also refreshes updated_at even when nothing else changed.
	if err := e.db.Save(row).Error; err != nil {
		return nil, &Error{Code: CodeStorage, Key: key.String(), Err: err}
	}
	e.log.Debug("record updated",
		zap.String("collection", col.Kind()),
		zap.String("key", key.String()))
	return row, nil
}

func (e *Engine) retryAsUpdate(col Collection, rec Record, key Key) (interface{}, error) {
	row := col.EmptyRow()
	if err := e.whereKey(key).First(row).Error; err != nil {
		return nil, &Error{Code: CodeConflict, Key: key.String(), Err: err}
	}
	return e.update(col, row, rec, key)
}

// whereKey builds the lookup query condition by condition so column
// order matches the key's declared order.
func (e *Engine) whereKey(key Key) *gorm.DB {
	tx := e.db
	for _, c := range key {
		tx = tx.Where(c.Column+" = ?", c.Value)
	}
	return tx
}
