package sync

import (
	"errors"

	"github.com/displaytree/paybeanlink/internal/model"
)

// defaultEditPassword is issued on first registration when the client
// does not supply one. It is never overwritten by later syncs.
const defaultEditPassword = "123456"

// registrationCollection is the one kind that is not merchant-scoped:
// the hostname is globally unique and the auto-increment row id becomes
// the merchant id every other collection scopes by.
type registrationCollection struct{}

func (registrationCollection) Kind() string { return "registrations" }
func (registrationCollection) MerchantScoped() bool { return false }
func (registrationCollection) ListOrder() string { return "updated_at desc" }
func (registrationCollection) EmptyRow() interface{} { return &model.Registration{} }
func (registrationCollection) EmptyRows() interface{} { return &[]model.Registration{} }

func (registrationCollection) Key(rec Record, mid int64) (Key, error) {
	host := registrationHost(rec)
	if host == "" {
		return nil, errors.New("registration hostName is required")
	}
	return Key{{Column: "host_name", Value: host}}, nil
}

// registrationHost tolerates both spellings the terminals have shipped
// with over the years.
func registrationHost(rec Record) string {
	if host := rec.String("hostName"); host != "" {
		return host
	}
	return rec.String("hostname")
}

func (registrationCollection) NewRow(rec Record, mid int64, key Key) (interface{}, error) {
	row := &model.Registration{
		// ID stays zero: the database issues the merchant id.
		HostName:         registrationHost(rec),
		Name:             rec.String("name"),
		Contact:          rec.String("contact"),
		Phone:            rec.String("phone"),
		Address:          rec.String("address"),
		EnableInventory:  true,
		EnableProduction: false,
		EnableBom:        false,
		EditPassword:     rec.StringOr("editPassword", defaultEditPassword),
	}
	if v, ok := rec.Bool("enableInventory"); ok {
		row.EnableInventory = v
	}
	if v, ok := rec.Bool("enableProduction"); ok {
		row.EnableProduction = v
	}
	if v, ok := rec.Bool("enableBom"); ok {
		row.EnableBom = v
	}
	return row, nil
}

func (registrationCollection) UpdateRow(row interface{}, rec Record) error {
	reg, ok := row.(*model.Registration)
	if !ok {
		return wrongRowType("registrations", row)
	}
	// The hostname→merchant-id binding and the edit password are fixed
	// at registration time; only contact fields and flags refresh.
	reg.Name = rec.String("name")
	reg.Contact = rec.String("contact")
	reg.Phone = rec.String("phone")
	reg.Address = rec.String("address")
	// A flag the client omitted keeps its stored value. Omitted and
	// explicitly false are different things.
	if v, ok := rec.Bool("enableInventory"); ok {
		reg.EnableInventory = v
	}
	if v, ok := rec.Bool("enableProduction"); ok {
		reg.EnableProduction = v
	}
	if v, ok := rec.Bool("enableBom"); ok {
		reg.EnableBom = v
	}
	return nil
}
