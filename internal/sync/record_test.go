package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerchantID_DefaultsWhenAbsent(t *testing.T) {
	rec := Record{"name": "Acme"}

	assert.Equal(t, int64(1), rec.MerchantID())
}

func TestMerchantID_DefaultsWhenNull(t *testing.T) {
	rec := Record{"mid": nil}

	assert.Equal(t, int64(1), rec.MerchantID())
}

func TestMerchantID_ExplicitZeroHonored(t *testing.T) {
	// Absent and zero are different things: tenant 0 is a real tenant.
	rec := Record{"mid": float64(0)}

	assert.Equal(t, int64(0), rec.MerchantID())
}

func TestMerchantID_Numeric(t *testing.T) {
	rec := Record{"mid": float64(7)}

	assert.Equal(t, int64(7), rec.MerchantID())
}

func TestMerchantID_NumericString(t *testing.T) {
	rec := Record{"mid": "5"}

	assert.Equal(t, int64(5), rec.MerchantID())
}

func TestString_FormatsNumbers(t *testing.T) {
	// Clients send bill numbers both ways.
	rec := Record{"billNumber": float64(1001)}

	assert.Equal(t, "1001", rec.String("billNumber"))
}

func TestStringOr_Fallback(t *testing.T) {
	rec := Record{}

	assert.Equal(t, "unit", rec.StringOr("unit", "unit"))

	rec["unit"] = "kg"
	assert.Equal(t, "kg", rec.StringOr("unit", "unit"))
}

func TestFloat_AbsentIsZero(t *testing.T) {
	rec := Record{}

	assert.Equal(t, float64(0), rec.Float("price"))
}

func TestFloat_StringParsed(t *testing.T) {
	rec := Record{"price": "12.5"}

	assert.Equal(t, 12.5, rec.Float("price"))
}

func TestInt64_FromString(t *testing.T) {
	rec := Record{"id": "42"}

	id, ok := rec.Int64("id")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
}

func TestInt64_AbsentNotOK(t *testing.T) {
	rec := Record{}

	_, ok := rec.Int64("id")
	assert.False(t, ok)
}

func TestBool_DistinguishesAbsentFromFalse(t *testing.T) {
	rec := Record{"enableBom": false}

	v, present := rec.Bool("enableBom")
	assert.True(t, present)
	assert.False(t, v)

	_, present = rec.Bool("enableInventory")
	assert.False(t, present)
}

func TestJSON_MarshalsField(t *testing.T) {
	rec := Record{"rows": []interface{}{map[string]interface{}{"sku": "x"}}}

	assert.JSONEq(t, `[{"sku":"x"}]`, string(rec.JSON("rows")))
	assert.Nil(t, rec.JSON("missing"))
}
