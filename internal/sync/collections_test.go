package sync

import (
	"testing"

	"github.com/displaytree/paybeanlink/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFallbackID pins the time-based id fallback for the duration of a
// test.
func stubFallbackID(t *testing.T, id int64) {
	orig := fallbackID
	fallbackID = func() int64 { return id }
	t.Cleanup(func() { fallbackID = orig })
}

func TestLookup_KnownKinds(t *testing.T) {
	for _, kind := range []string{"merchants", "bills", "inventory", "supply", "production", "products", "bom", "registrations"} {
		_, ok := Lookup(kind)
		assert.True(t, ok, kind)
	}

	_, ok := Lookup("nope")
	assert.False(t, ok)
}

func TestMerchantKey_ScopedByMid(t *testing.T) {
	col, _ := Lookup("merchants")

	key, err := col.Key(Record{"name": "Acme"}, 2)
	require.NoError(t, err)
	assert.Equal(t, Key{{Column: "name", Value: "Acme"}, {Column: "mid", Value: int64(2)}}, key)
}

func TestMerchantKey_MissingName(t *testing.T) {
	col, _ := Lookup("merchants")

	_, err := col.Key(Record{}, 1)
	assert.Error(t, err)
}

func TestBillID_Derivation(t *testing.T) {
	stubFallbackID(t, 1700000000)

	// Explicit id wins.
	assert.Equal(t, int64(9), billID(Record{"id": float64(9), "billNumber": "1001"}))
	// Bill number next, whether string or number.
	assert.Equal(t, int64(1001), billID(Record{"billNumber": "1001"}))
	assert.Equal(t, int64(1001), billID(Record{"billNumber": float64(1001)}))
	// Timestamp fallback last.
	assert.Equal(t, int64(1700000000), billID(Record{}))
}

func TestInventoryKey_CompositeNaturalKey(t *testing.T) {
	col, _ := Lookup("inventory")

	key, err := col.Key(Record{"merchantName": "A", "date": "2024-01-01"}, 1)
	require.NoError(t, err)
	assert.Equal(t, Key{
		{Column: "merchant_name", Value: "A"},
		{Column: "date", Value: "2024-01-01"},
		{Column: "mid", Value: int64(1)},
	}, key)

	_, err = col.Key(Record{"merchantName": "A"}, 1)
	assert.Error(t, err)
}

func TestSupplyKey_NullNameRejected(t *testing.T) {
	col, _ := Lookup("supply")

	_, err := col.Key(Record{"name": nil}, 1)
	assert.Error(t, err)
}

func TestProductNewRow_Defaults(t *testing.T) {
	stubFallbackID(t, 1700000000)
	col, _ := Lookup("products")

	row, err := col.NewRow(Record{"name": "Coffee"}, 1, nil)
	require.NoError(t, err)

	product := row.(*model.Product)
	assert.Equal(t, int64(1700000000), product.ID)
	assert.Equal(t, float64(0), product.Price)
	assert.Equal(t, float64(0), product.TaxRate)
	assert.Equal(t, "unit", product.Unit)
	assert.Equal(t, "", product.EffectiveDate)
}

func TestProductUpdateRow_ReplacesPricing(t *testing.T) {
	col, _ := Lookup("products")
	product := &model.Product{Name: "Coffee", Price: 10, Unit: "kg", Discount: 5}

	err := col.UpdateRow(product, Record{"name": "Coffee", "price": float64(12)})
	require.NoError(t, err)

	// Full replace: omitted fields fall back to their defaults instead
	// of keeping stale values.
	assert.Equal(t, float64(12), product.Price)
	assert.Equal(t, float64(0), product.Discount)
	assert.Equal(t, "unit", product.Unit)
}

func TestRegistrationKey_Unscoped(t *testing.T) {
	col, _ := Lookup("registrations")
	assert.False(t, col.MerchantScoped())

	key, err := col.Key(Record{"hostName": "pos-01"}, 99)
	require.NoError(t, err)
	assert.Equal(t, Key{{Column: "host_name", Value: "pos-01"}}, key)

	// Lowercase spelling is tolerated.
	key, err = col.Key(Record{"hostname": "pos-02"}, 1)
	require.NoError(t, err)
	assert.Equal(t, "pos-02", key.Value("host_name"))
}

func TestRegistrationNewRow_Defaults(t *testing.T) {
	col, _ := Lookup("registrations")

	row, err := col.NewRow(Record{"hostName": "pos-01"}, 1, nil)
	require.NoError(t, err)

	reg := row.(*model.Registration)
	assert.Zero(t, reg.ID)
	assert.True(t, reg.EnableInventory)
	assert.False(t, reg.EnableProduction)
	assert.False(t, reg.EnableBom)
	assert.Equal(t, defaultEditPassword, reg.EditPassword)
}

func TestRegistrationUpdateRow_ImmutableFields(t *testing.T) {
	col, _ := Lookup("registrations")
	reg := &model.Registration{
		ID:           7,
		HostName:     "pos-01",
		EditPassword: "secret",
		EnableBom:    true,
	}

	err := col.UpdateRow(reg, Record{
		"hostName":     "pos-01",
		"id":           float64(99),
		"editPassword": "hacked",
		"contact":      "Jo",
	})
	require.NoError(t, err)

	// Issued merchant id and edit password never move.
	assert.Equal(t, uint(7), reg.ID)
	assert.Equal(t, "secret", reg.EditPassword)
	assert.Equal(t, "Jo", reg.Contact)
	// Omitted flag keeps its stored value.
	assert.True(t, reg.EnableBom)
}

func TestRegistrationUpdateRow_ExplicitFalseFlag(t *testing.T) {
	col, _ := Lookup("registrations")
	reg := &model.Registration{ID: 7, HostName: "pos-01", EnableInventory: true}

	err := col.UpdateRow(reg, Record{"hostName": "pos-01", "enableInventory": false})
	require.NoError(t, err)

	assert.False(t, reg.EnableInventory)
}

func TestBomUpdateRow_ReplacesItems(t *testing.T) {
	col, _ := Lookup("bom")
	bom := &model.BillOfMaterial{Name: "Latte"}

	err := col.UpdateRow(bom, Record{
		"name":          "Latte",
		"items":         []interface{}{map[string]interface{}{"sku": "milk"}},
		"effectiveDate": "2024-02-01",
	})
	require.NoError(t, err)

	assert.JSONEq(t, `[{"sku":"milk"}]`, string(bom.Items))
	assert.Equal(t, "2024-02-01", bom.EffectiveDate)
}

func TestUpdateRow_WrongType(t *testing.T) {
	col, _ := Lookup("merchants")

	err := col.UpdateRow(&model.Supply{}, Record{})
	assert.Error(t, err)
}
