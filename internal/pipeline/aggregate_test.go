package pipeline

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Vincenthsiehisme/Shopify-translate/internal"
)

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestAggregateOrdersGroupingAndOrdering(t *testing.T) {
	rows := []internal.RawOrderRow{
		{Name: "MOVA-1116", ShippingName: "王小明", LineitemSKU: "A1", LineitemName: "Tea Set", LineitemQty: "2", LineitemPrice: "250"},
		{Name: "MOVA-1117", ShippingName: "林美麗", LineitemSKU: "B2", LineitemName: "Mug", LineitemQty: "1", LineitemPrice: "150"},
		{Name: "MOVA-1116", LineitemSKU: "C3", LineitemName: "Coaster", LineitemQty: "4", LineitemPrice: "30"},
	}

	orders := AggregateOrders(rows)
	if len(orders) != 2 {
		t.Fatalf("orders=%d", len(orders))
	}
	if orders[0].ID != "MOVA-1116" || orders[1].ID != "MOVA-1117" {
		t.Fatalf("order of orders wrong: %s, %s", orders[0].ID, orders[1].ID)
	}
	if len(orders[0].Items) != 2 || orders[0].Items[0].SKU != "A1" || orders[0].Items[1].SKU != "C3" {
		t.Fatalf("item order wrong: %+v", orders[0].Items)
	}
	if orders[0].Items[0].Qty != 2 || !orders[0].Items[0].Price.Equal(dec(250)) {
		t.Fatalf("item fields wrong: %+v", orders[0].Items[0])
	}
}

func TestAggregateOrdersSkipsRowsWithoutOrderID(t *testing.T) {
	rows := []internal.RawOrderRow{
		{Name: "", LineitemName: "Orphan", LineitemQty: "1", LineitemPrice: "10"},
		{Name: "MOVA-1", LineitemName: "Tea Set", LineitemQty: "1", LineitemPrice: "10"},
	}
	orders := AggregateOrders(rows)
	if len(orders) != 1 || orders[0].ID != "MOVA-1" {
		t.Fatalf("orders=%+v", orders)
	}
}

func TestAggregateOrdersRowWithoutItemName(t *testing.T) {
	rows := []internal.RawOrderRow{
		{Name: "MOVA-1", LineitemName: "Tea Set", LineitemQty: "1", LineitemPrice: "10"},
		{Name: "MOVA-1", LineitemName: "  "},
	}
	orders := AggregateOrders(rows)
	if len(orders[0].Items) != 1 {
		t.Fatalf("items=%d", len(orders[0].Items))
	}
}

func TestAggregateOrdersCustomerFallbacks(t *testing.T) {
	rows := []internal.RawOrderRow{
		{Name: "A", ShippingName: "王小明", BillingName: "別人"},
		{Name: "B", BillingName: "林美麗"},
		{Name: "C"},
	}
	orders := AggregateOrders(rows)
	if orders[0].Customer.Name != "王小明" {
		t.Fatalf("A name=%q", orders[0].Customer.Name)
	}
	if orders[1].Customer.Name != "林美麗" {
		t.Fatalf("B name=%q", orders[1].Customer.Name)
	}
	if orders[2].Customer.Name != "Unknown" {
		t.Fatalf("C name=%q", orders[2].Customer.Name)
	}
}

func TestAggregateOrdersOrderLevelFields(t *testing.T) {
	note := "發票類型(InvoiceType): company\n統一編號(CompanyId): 12345678\n發票抬頭(CompanyName): Acme Co"
	rows := []internal.RawOrderRow{
		{
			Name:           "MOVA-9",
			ShopifyID:      "5501",
			Email:          "buyer@example.com",
			PaymentRefs:    "PAY-111",
			PaymentRef:     "PAY-OLD",
			ShippingPhone:  "+886912345678",
			ShippingStreet: " 台北市信義路一段1號 ",
			BillingStreet:  "高雄市中正路99號",
			ShippingCity:   "台北市",
			ShippingZip:    "110",
			NoteAttributes: note,
			Subtotal:       "650",
			Shipping:       "60",
			Total:          "710",
		},
	}

	order := AggregateOrders(rows)[0]
	if order.PaymentRef != "PAY-111" {
		t.Fatalf("paymentRef=%q", order.PaymentRef)
	}
	if order.CarrierID != "buyer@example.com" || order.Email != "buyer@example.com" {
		t.Fatalf("carrier=%q email=%q", order.CarrierID, order.Email)
	}
	if order.ShopifyID != "5501" {
		t.Fatalf("shopifyId=%q", order.ShopifyID)
	}
	if order.Customer.Phone != "0912345678" {
		t.Fatalf("phone=%q", order.Customer.Phone)
	}
	if order.Customer.Address != "台北市信義路一段1號" {
		t.Fatalf("address=%q", order.Customer.Address)
	}
	if order.TaxID != "12345678" || order.CompanyName != "Acme Co" {
		t.Fatalf("invoice=%q/%q", order.TaxID, order.CompanyName)
	}
	if !order.SourceSubtotal.Equal(dec(650)) || !order.SourceShipping.Equal(dec(60)) || !order.SourceTotal.Equal(dec(710)) {
		t.Fatalf("source amounts wrong: %s %s %s", order.SourceSubtotal, order.SourceShipping, order.SourceTotal)
	}
}

func TestAggregateOrdersPaymentRefSingularFallback(t *testing.T) {
	rows := []internal.RawOrderRow{{Name: "A", PaymentRef: "PAY-OLD"}}
	if got := AggregateOrders(rows)[0].PaymentRef; got != "PAY-OLD" {
		t.Fatalf("paymentRef=%q", got)
	}
}

func TestAggregateOrdersUnparseableNumbersReadAsZero(t *testing.T) {
	rows := []internal.RawOrderRow{
		{Name: "A", LineitemName: "Tea Set", LineitemQty: "two", LineitemPrice: "oops", Subtotal: "-"},
	}
	order := AggregateOrders(rows)[0]
	item := order.Items[0]
	if item.Qty != 0 || !item.Price.IsZero() || !order.SourceSubtotal.IsZero() {
		t.Fatalf("expected zeros, got qty=%d price=%s subtotal=%s", item.Qty, item.Price, order.SourceSubtotal)
	}
}
