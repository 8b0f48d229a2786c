package pipeline

import (
	"regexp"
	"strings"
)

// Checkout apps write invoice preferences into the order's note attributes as
// bilingual "label(Key): value" lines, e.g.
//
//	發票類型(InvoiceType): company
//	統一編號(CompanyId): 12345678
//	發票抬頭(CompanyName): Acme Co
//
// The blob is scraped as one string rather than parsed per line; well-formed
// input carries each key at most once and the first match wins.
var (
	reInvoiceType = regexp.MustCompile(`\(InvoiceType\): *([^\n]+)`)
	reCompanyID   = regexp.MustCompile(`\(CompanyId\): *(\d+)`)
	reCompanyName = regexp.MustCompile(`\(CompanyName\): *([^\n]+)`)
)

type InvoiceInfo struct {
	TaxID       string
	CompanyName string
}

// ExtractInvoiceInfo pulls company-invoice fields out of the note blob.
// Anything other than a company-type declaration yields empty fields, and a
// malformed blob is never an error; a missing sub-field stays empty.
func ExtractInvoiceInfo(note string) InvoiceInfo {
	m := reInvoiceType.FindStringSubmatch(note)
	if m == nil || !strings.EqualFold(strings.TrimSpace(m[1]), "company") {
		return InvoiceInfo{}
	}

	info := InvoiceInfo{}
	if m := reCompanyID.FindStringSubmatch(note); m != nil {
		info.TaxID = m[1]
	}
	if m := reCompanyName.FindStringSubmatch(note); m != nil {
		info.CompanyName = strings.TrimSpace(m[1])
	}
	return info
}
