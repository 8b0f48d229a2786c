package util

import "strings"

// PickAddress prefers the shipping street over the billing street. The
// billing fallback is returned verbatim, untrimmed; downstream sheets have
// always carried it that way and the consumer depends on it.
func PickAddress(shippingStreet, billingStreet string) string {
	if s := strings.TrimSpace(shippingStreet); s != "" {
		return s
	}
	return billingStreet
}
