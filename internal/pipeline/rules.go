package pipeline

import (
	"github.com/shopspring/decimal"

	"github.com/Vincenthsiehisme/Shopify-translate/internal"
	"github.com/Vincenthsiehisme/Shopify-translate/internal/config"
)

// FinalizeOrder recomputes the order subtotal from its items and applies the
// shipping-fee rule: an order strictly under the free-shipping threshold gets
// one flat shipping line appended as the last item. The recomputed subtotal
// replaces whatever the export reported and does not include the addon's own
// price. Finalizing an already-finalized order is a no-op.
func FinalizeOrder(cfg config.Config, order *internal.Order) {
	if order.Finalized {
		return
	}
	order.Finalized = true

	subtotal := decimal.Zero
	for _, item := range order.Items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Qty))))
	}
	order.Subtotal = subtotal

	if subtotal.LessThan(cfg.FreeShippingThreshold) {
		order.Items = append(order.Items, internal.LineItem{
			SKU:   cfg.ShippingFeeSKU,
			Name:  cfg.ShippingFeeLabel,
			Qty:   1,
			Price: cfg.ShippingFeeAmount,
			Addon: true,
		})
	}
}
