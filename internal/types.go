package internal

import "github.com/shopspring/decimal"

// RawOrderRow is one line of the shop's order export. The shop emits one row
// per purchased line item; rows belonging to the same order repeat the order
// code in the Name column.
type RawOrderRow struct {
	Name           string `csv:"Name"`
	ShopifyID      string `csv:"Id"`
	Email          string `csv:"Email"`
	PaymentRefs    string `csv:"Payment References"`
	PaymentRef     string `csv:"Payment Reference"`
	ShippingName   string `csv:"Shipping Name"`
	BillingName    string `csv:"Billing Name"`
	ShippingPhone  string `csv:"Shipping Phone"`
	Phone          string `csv:"Phone"`
	ShippingStreet string `csv:"Shipping Street"`
	BillingStreet  string `csv:"Billing Street"`
	ShippingCity   string `csv:"Shipping City"`
	ShippingZip    string `csv:"Shipping Zip"`
	NoteAttributes string `csv:"Note Attributes"`
	LineitemSKU    string `csv:"Lineitem sku"`
	LineitemName   string `csv:"Lineitem name"`
	LineitemQty    string `csv:"Lineitem quantity"`
	LineitemPrice  string `csv:"Lineitem price"`
	Subtotal       string `csv:"Subtotal"`
	Shipping       string `csv:"Shipping"`
	Total          string `csv:"Total"`
}

type Customer struct {
	Name    string
	Phone   string
	Address string
	City    string
	Zip     string
}

type LineItem struct {
	SKU   string
	Name  string
	Qty   int
	Price decimal.Decimal
	// Addon marks lines injected by business rules; never set for source rows.
	Addon bool
}

// Order is the aggregate built from all export rows sharing one order code.
type Order struct {
	ID          string
	ShopifyID   string
	Email       string
	CarrierID   string // e-invoice carrier; the shop repurposes the contact email field for this
	PaymentRef  string
	TaxID       string
	CompanyName string
	Customer    Customer
	Items       []LineItem

	// Subtotal is recomputed from the items at finalize time; the shipping
	// addon is appended afterwards and never folded back in.
	Subtotal       decimal.Decimal
	SourceSubtotal decimal.Decimal
	SourceShipping decimal.Decimal
	SourceTotal    decimal.Decimal

	Finalized bool
}
