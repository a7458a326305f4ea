package sync

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertBatch_PartialFailure(t *testing.T) {
	db, mock, engine := setupEngine(t)
	defer db.Close()
	stubFallbackID(t, 1700000000)

	// 1st record inserts.
	mock.ExpectQuery(`SELECT \* FROM "supplies" WHERE name = \$1 AND mid = \$2`).
		WithArgs("Flour", int64(1), 1).
		WillReturnRows(emptySupplyRows())
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "supplies"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	// 2nd record has a null name and never reaches the database.
	// 3rd record inserts regardless of the 2nd's failure.
	mock.ExpectQuery(`SELECT \* FROM "supplies" WHERE name = \$1 AND mid = \$2`).
		WithArgs("Sugar", int64(1), 1).
		WillReturnRows(emptySupplyRows())
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "supplies"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	col, _ := Lookup("supply")
	result := engine.UpsertBatch(col, []interface{}{
		map[string]interface{}{"name": "Flour"},
		map[string]interface{}{"name": nil},
		map[string]interface{}{"name": "Sugar"},
	})

	assert.False(t, result.Success)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	// The failed record is labelled by its position since its key
	// never resolved.
	assert.Equal(t, "supply[1]", result.Errors[0].Key)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertBatch_AutoWrapsSingleObject(t *testing.T) {
	db, mock, engine := setupEngine(t)
	defer db.Close()
	stubFallbackID(t, 1700000000)

	mock.ExpectQuery(`SELECT \* FROM "supplies" WHERE name = \$1 AND mid = \$2`).
		WithArgs("Flour", int64(1), 1).
		WillReturnRows(emptySupplyRows())
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "supplies"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	col, _ := Lookup("supply")
	result := engine.UpsertBatch(col, map[string]interface{}{"name": "Flour"})

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Processed)
	assert.Zero(t, result.Failed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertBatch_JSONStringBody(t *testing.T) {
	db, mock, engine := setupEngine(t)
	defer db.Close()
	stubFallbackID(t, 1700000000)

	mock.ExpectQuery(`SELECT \* FROM "supplies" WHERE name = \$1 AND mid = \$2`).
		WithArgs("Flour", int64(1), 1).
		WillReturnRows(emptySupplyRows())
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "supplies"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	col, _ := Lookup("supply")
	result := engine.UpsertBatch(col, `[{"name":"Flour"}]`)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Processed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertBatch_EmptyAndNil(t *testing.T) {
	db, _, engine := setupEngine(t)
	defer db.Close()

	col, _ := Lookup("supply")

	result := engine.UpsertBatch(col, []interface{}{})
	assert.True(t, result.Success)
	assert.Zero(t, result.Processed)

	result = engine.UpsertBatch(col, nil)
	assert.True(t, result.Success)
	assert.Zero(t, result.Processed)
}

func TestUpsertBatch_SameKeyAppliedInOrder(t *testing.T) {
	db, mock, engine := setupEngine(t)
	defer db.Close()
	stubFallbackID(t, 1700000000)

	// Two records resolving to the same natural key: the first
	// inserts, the second finds the first's row and updates it.
	mock.ExpectQuery(`SELECT \* FROM "supplies" WHERE name = \$1 AND mid = \$2`).
		WithArgs("Flour", int64(1), 1).
		WillReturnRows(emptySupplyRows())
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "supplies"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "supplies" WHERE name = \$1 AND mid = \$2`).
		WithArgs("Flour", int64(1), 1).
		WillReturnRows(emptySupplyRows().AddRow(int64(1700000000), int64(1), "Flour", time.Now(), time.Now()))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "supplies" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	col, _ := Lookup("supply")
	result := engine.UpsertBatch(col, []interface{}{
		map[string]interface{}{"name": "Flour"},
		map[string]interface{}{"name": "Flour"},
	})

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Processed)

	assert.NoError(t, mock.ExpectationsWereMet())
}
