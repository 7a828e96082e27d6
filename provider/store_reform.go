package provider

// generated with gopkg.in/reform.v1

import (
	"fmt"
	"strings"

	"gopkg.in/reform.v1"
	"gopkg.in/reform.v1/parse"
)

type deliveryExtOrdersTableType struct {
	s parse.StructInfo
	z []interface{}
}

// Schema returns a schema name in SQL database ("aimeos").
func (v *deliveryExtOrdersTableType) Schema() string {
	return v.s.SQLSchema
}

// Name returns a view or table name in SQL database ("delivery_ext_orders").
func (v *deliveryExtOrdersTableType) Name() string {
	return v.s.SQLName
}

// Columns returns a new slice of column names for that view or table in SQL database.
func (v *deliveryExtOrdersTableType) Columns() []string {
	return []string{"order_number", "provider_name", "invoice_id", "delivery_status", "created_at", "updated_at"}
}

// NewStruct makes a new struct for that view or table.
func (v *deliveryExtOrdersTableType) NewStruct() reform.Struct {
	return new(DeliveryExtOrders)
}

// NewRecord makes a new record for that table.
func (v *deliveryExtOrdersTableType) NewRecord() reform.Record {
	return new(DeliveryExtOrders)
}

// PKColumnIndex returns an index of primary key column for that table in SQL database.
func (v *deliveryExtOrdersTableType) PKColumnIndex() uint {
	return uint(v.s.PKFieldIndex)
}

// DeliveryExtOrdersTable represents delivery_ext_orders view or table in SQL database.
var DeliveryExtOrdersTable = &deliveryExtOrdersTableType{
	s: parse.StructInfo{Type: "DeliveryExtOrders", SQLSchema: "aimeos", SQLName: "delivery_ext_orders", Fields: []parse.FieldInfo{{Name: "OrderNumber", Type: "string", Column: "order_number"}, {Name: "ProviderName", Type: "Provider", Column: "provider_name"}, {Name: "InvoiceID", Type: "string", Column: "invoice_id"}, {Name: "DeliveryStatus", Type: "string", Column: "delivery_status"}, {Name: "CreatedAt", Type: "time.Time", Column: "created_at"}, {Name: "UpdatedAt", Type: "time.Time", Column: "updated_at"}}, PKFieldIndex: 0},
	z: new(DeliveryExtOrders).Values(),
}

// String returns a string representation of this struct or record.
func (s DeliveryExtOrders) String() string {
	res := make([]string, 6)
	res[0] = "OrderNumber: " + reform.Inspect(s.OrderNumber, true)
	res[1] = "ProviderName: " + reform.Inspect(s.ProviderName, true)
	res[2] = "InvoiceID: " + reform.Inspect(s.InvoiceID, true)
	res[3] = "DeliveryStatus: " + reform.Inspect(s.DeliveryStatus, true)
	res[4] = "CreatedAt: " + reform.Inspect(s.CreatedAt, true)
	res[5] = "UpdatedAt: " + reform.Inspect(s.UpdatedAt, true)
	return strings.Join(res, ", ")
}

// Values returns a slice of struct or record field values.
// Returned interface{} values are never untyped nils.
func (s *DeliveryExtOrders) Values() []interface{} {
	return []interface{}{
		s.OrderNumber,
		s.ProviderName,
		s.InvoiceID,
		s.DeliveryStatus,
		s.CreatedAt,
		s.UpdatedAt,
	}
}

// Pointers returns a slice of pointers to struct or record fields.
// Returned interface{} values are never untyped nils.
func (s *DeliveryExtOrders) Pointers() []interface{} {
	return []interface{}{
		&s.OrderNumber,
		&s.ProviderName,
		&s.InvoiceID,
		&s.DeliveryStatus,
		&s.CreatedAt,
		&s.UpdatedAt,
	}
}

// View returns View object for that struct.
func (s *DeliveryExtOrders) View() reform.View {
	return DeliveryExtOrdersTable
}

// Table returns Table object for that record.
func (s *DeliveryExtOrders) Table() reform.Table {
	return DeliveryExtOrdersTable
}

// PKValue returns a value of primary key for that record.
// Returned interface{} value is never untyped nil.
func (s *DeliveryExtOrders) PKValue() interface{} {
	return s.OrderNumber
}

// PKPointer returns a pointer to primary key field for that record.
// Returned interface{} value is never untyped nil.
func (s *DeliveryExtOrders) PKPointer() interface{} {
	return &s.OrderNumber
}

// HasPK returns true if record has non-zero primary key set, false otherwise.
func (s *DeliveryExtOrders) HasPK() bool {
	return s.OrderNumber != DeliveryExtOrdersTable.z[DeliveryExtOrdersTable.s.PKFieldIndex]
}

// SetPK sets record primary key.
func (s *DeliveryExtOrders) SetPK(pk interface{}) {
	if str, ok := pk.(string); ok {
		s.OrderNumber = str
	}
}

// check interfaces
var (
	_ reform.View   = DeliveryExtOrdersTable
	_ reform.Struct = new(DeliveryExtOrders)
	_ reform.Table  = DeliveryExtOrdersTable
	_ reform.Record = new(DeliveryExtOrders)
	_ fmt.Stringer  = new(DeliveryExtOrders)
)

func init() {
	parse.AssertUpToDate(&DeliveryExtOrdersTable.s, new(DeliveryExtOrders))
}
