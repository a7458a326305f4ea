package sync

import (
	"errors"

	"github.com/displaytree/paybeanlink/internal/model"
)

// merchantCollection syncs named business units, keyed by (name, mid).
type merchantCollection struct{}

func (merchantCollection) Kind() string { return "merchants" }
func (merchantCollection) MerchantScoped() bool { return true }
func (merchantCollection) ListOrder() string { return "" }
func (merchantCollection) EmptyRow() interface{} { return &model.Merchant{} }
func (merchantCollection) EmptyRows() interface{} { return &[]model.Merchant{} }

func (merchantCollection) Key(rec Record, mid int64) (Key, error) {
	name := rec.String("name")
	if name == "" {
		return nil, errors.New("merchant name is required")
	}
	return Key{{Column: "name", Value: name}, {Column: "mid", Value: mid}}, nil
}

func (merchantCollection) NewRow(rec Record, mid int64, key Key) (interface{}, error) {
	return &model.Merchant{
		ID:   rowID(rec),
		MID:  mid,
		Name: rec.String("name"),
	}, nil
}

func (merchantCollection) UpdateRow(row interface{}, rec Record) error {
	// Name and mid are the identity; a re-sync only refreshes updated_at.
	if _, ok := row.(*model.Merchant); !ok {
		return wrongRowType("merchants", row)
	}
	return nil
}

// billCollection syncs receipts. The derived id doubles as the natural
// key, so two terminals may reuse a bill number without clashing as
// long as their ids differ.
type billCollection struct{}

func (billCollection) Kind() string { return "bills" }
func (billCollection) MerchantScoped() bool { return true }
func (billCollection) ListOrder() string { return "" }
func (billCollection) EmptyRow() interface{} { return &model.Bill{} }
func (billCollection) EmptyRows() interface{} { return &[]model.Bill{} }

func (billCollection) Key(rec Record, mid int64) (Key, error) {
	return Key{{Column: "id", Value: billID(rec)}, {Column: "mid", Value: mid}}, nil
}

// billID derives the bill id: an explicit id wins, else the bill
// number, else the time-based fallback.
func billID(rec Record) int64 {
	if id, ok := rec.Int64("id"); ok && id != 0 {
		return id
	}
	if n, ok := rec.Int64("billNumber"); ok && n != 0 {
		return n
	}
	return fallbackID()
}

func (billCollection) NewRow(rec Record, mid int64, key Key) (interface{}, error) {
	id, _ := key.Value("id").(int64)
	return &model.Bill{
		ID:         id,
		MID:        mid,
		BillNumber: rec.String("billNumber"),
		Payload:    rec.AsJSON(),
	}, nil
}

func (billCollection) UpdateRow(row interface{}, rec Record) error {
	bill, ok := row.(*model.Bill)
	if !ok {
		return wrongRowType("bills", row)
	}
	bill.BillNumber = rec.String("billNumber")
	bill.Payload = rec.AsJSON()
	return nil
}

// inventoryCollection syncs stock snapshots, one per merchant name,
// date and tenant.
type inventoryCollection struct{}

func (inventoryCollection) Kind() string { return "inventory" }
func (inventoryCollection) MerchantScoped() bool { return true }
func (inventoryCollection) ListOrder() string { return "" }
func (inventoryCollection) EmptyRow() interface{} { return &model.Inventory{} }
func (inventoryCollection) EmptyRows() interface{} { return &[]model.Inventory{} }

func (inventoryCollection) Key(rec Record, mid int64) (Key, error) {
	name := rec.String("merchantName")
	date := rec.String("date")
	if name == "" || date == "" {
		return nil, errors.New("inventory requires merchantName and date")
	}
	return Key{
		{Column: "merchant_name", Value: name},
		{Column: "date", Value: date},
		{Column: "mid", Value: mid},
	}, nil
}

func (inventoryCollection) NewRow(rec Record, mid int64, key Key) (interface{}, error) {
	return &model.Inventory{
		ID:           rowID(rec),
		MID:          mid,
		MerchantName: rec.String("merchantName"),
		Date:         rec.String("date"),
		Rows:         rec.JSON("rows"),
	}, nil
}

func (inventoryCollection) UpdateRow(row interface{}, rec Record) error {
	inv, ok := row.(*model.Inventory)
	if !ok {
		return wrongRowType("inventory", row)
	}
	inv.Rows = rec.JSON("rows")
	return nil
}

// supplyCollection syncs named supply entries, keyed by (name, mid).
type supplyCollection struct{}

func (supplyCollection) Kind() string { return "supply" }
func (supplyCollection) MerchantScoped() bool { return true }
func (supplyCollection) ListOrder() string { return "" }
func (supplyCollection) EmptyRow() interface{} { return &model.Supply{} }
func (supplyCollection) EmptyRows() interface{} { return &[]model.Supply{} }

func (supplyCollection) Key(rec Record, mid int64) (Key, error) {
	name := rec.String("name")
	if name == "" {
		return nil, errors.New("supply name is required")
	}
	return Key{{Column: "name", Value: name}, {Column: "mid", Value: mid}}, nil
}

func (supplyCollection) NewRow(rec Record, mid int64, key Key) (interface{}, error) {
	return &model.Supply{
		ID:   rowID(rec),
		MID:  mid,
		Name: rec.String("name"),
	}, nil
}

func (supplyCollection) UpdateRow(row interface{}, rec Record) error {
	// Only updated_at moves on a re-sync.
	if _, ok := row.(*model.Supply); !ok {
		return wrongRowType("supply", row)
	}
	return nil
}

// productionCollection syncs production logs, one per date per tenant.
type productionCollection struct{}

func (productionCollection) Kind() string { return "production" }
func (productionCollection) MerchantScoped() bool { return true }
func (productionCollection) ListOrder() string { return "date desc" }
func (productionCollection) EmptyRow() interface{} { return &model.Production{} }
func (productionCollection) EmptyRows() interface{} { return &[]model.Production{} }

func (productionCollection) Key(rec Record, mid int64) (Key, error) {
	date := rec.String("date")
	if date == "" {
		return nil, errors.New("production date is required")
	}
	return Key{{Column: "date", Value: date}, {Column: "mid", Value: mid}}, nil
}

func (productionCollection) NewRow(rec Record, mid int64, key Key) (interface{}, error) {
	return &model.Production{
		ID:      rowID(rec),
		MID:     mid,
		Date:    rec.String("date"),
		Payload: rec.AsJSON(),
	}, nil
}

func (productionCollection) UpdateRow(row interface{}, rec Record) error {
	prod, ok := row.(*model.Production)
	if !ok {
		return wrongRowType("production", row)
	}
	prod.Payload = rec.AsJSON()
	return nil
}

// productCollection syncs catalog entries with their pricing fields.
type productCollection struct{}

// defaultUnit is the unit of measure applied when the client omits one.
const defaultUnit = "unit"

func (productCollection) Kind() string { return "products" }
func (productCollection) MerchantScoped() bool { return true }
func (productCollection) ListOrder() string { return "" }
func (productCollection) EmptyRow() interface{} { return &model.Product{} }
func (productCollection) EmptyRows() interface{} { return &[]model.Product{} }

func (productCollection) Key(rec Record, mid int64) (Key, error) {
	name := rec.String("name")
	if name == "" {
		return nil, errors.New("product name is required")
	}
	return Key{{Column: "name", Value: name}, {Column: "mid", Value: mid}}, nil
}

func (productCollection) NewRow(rec Record, mid int64, key Key) (interface{}, error) {
	row := &model.Product{
		ID:   rowID(rec),
		MID:  mid,
		Name: rec.String("name"),
	}
	applyPricing(row, rec)
	return row, nil
}

func (productCollection) UpdateRow(row interface{}, rec Record) error {
	product, ok := row.(*model.Product)
	if !ok {
		return wrongRowType("products", row)
	}
	applyPricing(product, rec)
	return nil
}

// applyPricing overwrites every pricing field with the incoming value,
// defaulted per field when absent. Updates replace, they do not merge.
func applyPricing(row *model.Product, rec Record) {
	row.Price = rec.Float("price")
	row.WholesalePrice = rec.Float("wholesalePrice")
	row.SalePrice = rec.Float("salePrice")
	row.Discount = rec.Float("discount")
	row.TaxRate = rec.Float("taxRate")
	row.Unit = rec.StringOr("unit", defaultUnit)
	row.EffectiveDate = rec.String("effectiveDate")
}

// bomCollection syncs bill-of-material recipes, keyed by (name, mid).
type bomCollection struct{}

func (bomCollection) Kind() string { return "bom" }
func (bomCollection) MerchantScoped() bool { return true }
func (bomCollection) ListOrder() string { return "" }
func (bomCollection) EmptyRow() interface{} { return &model.BillOfMaterial{} }
func (bomCollection) EmptyRows() interface{} { return &[]model.BillOfMaterial{} }

func (bomCollection) Key(rec Record, mid int64) (Key, error) {
	name := rec.String("name")
	if name == "" {
		return nil, errors.New("bill of material name is required")
	}
	return Key{{Column: "name", Value: name}, {Column: "mid", Value: mid}}, nil
}

func (bomCollection) NewRow(rec Record, mid int64, key Key) (interface{}, error) {
	return &model.BillOfMaterial{
		ID:            rowID(rec),
		MID:           mid,
		Name:          rec.String("name"),
		Items:         rec.JSON("items"),
		EffectiveDate: rec.String("effectiveDate"),
	}, nil
}

func (bomCollection) UpdateRow(row interface{}, rec Record) error {
	bom, ok := row.(*model.BillOfMaterial)
	if !ok {
		return wrongRowType("bom", row)
	}
	bom.Items = rec.JSON("items")
	bom.EffectiveDate = rec.String("effectiveDate")
	return nil
}
