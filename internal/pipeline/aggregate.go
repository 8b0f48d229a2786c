package pipeline

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Vincenthsiehisme/Shopify-translate/internal"
	"github.com/Vincenthsiehisme/Shopify-translate/internal/util"
)

// AggregateOrders folds the flat per-line-item rows into Orders keyed by the
// order code in the Name column. Orders come back in first-seen input order;
// items keep their row order. Rows without an order code are skipped.
func AggregateOrders(rows []internal.RawOrderRow) []*internal.Order {
	byID := make(map[string]*internal.Order)
	ordered := make([]*internal.Order, 0)

	for _, row := range rows {
		if row.Name == "" {
			continue
		}

		order, ok := byID[row.Name]
		if !ok {
			order = newOrder(row)
			byID[row.Name] = order
			ordered = append(ordered, order)
		}

		// Order-level-only rows carry no line-item name and add no item.
		if strings.TrimSpace(row.LineitemName) != "" {
			order.Items = append(order.Items, internal.LineItem{
				SKU:   row.LineitemSKU,
				Name:  row.LineitemName,
				Qty:   parseQty(row.LineitemQty),
				Price: parseDecimal(row.LineitemPrice),
			})
		}
	}

	return ordered
}

// newOrder seeds an Order from the first row seen for its code. Order-level
// fields on later rows of the same order are ignored; the export repeats
// them anyway.
func newOrder(row internal.RawOrderRow) *internal.Order {
	name := firstNonEmpty(row.ShippingName, row.BillingName)
	if name == "" {
		name = "Unknown"
	}

	invoice := ExtractInvoiceInfo(row.NoteAttributes)

	return &internal.Order{
		ID:         row.Name,
		ShopifyID:  row.ShopifyID,
		Email:      row.Email,
		CarrierID:  row.Email,
		PaymentRef: firstNonEmpty(row.PaymentRefs, row.PaymentRef),

		TaxID:       invoice.TaxID,
		CompanyName: invoice.CompanyName,

		Customer: internal.Customer{
			Name:    name,
			Phone:   util.NormalizePhone(firstNonEmpty(row.ShippingPhone, row.Phone)),
			Address: util.PickAddress(row.ShippingStreet, row.BillingStreet),
			City:    row.ShippingCity,
			Zip:     row.ShippingZip,
		},

		SourceSubtotal: parseDecimal(row.Subtotal),
		SourceShipping: parseDecimal(row.Shipping),
		SourceTotal:    parseDecimal(row.Total),
	}
}

// Field-level parse failures are not fatal; a bad quantity or price reads as
// zero and the conversion continues.
func parseQty(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

func parseDecimal(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
