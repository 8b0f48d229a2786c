package pipeline

import "testing"

func TestExtractInvoiceInfo(t *testing.T) {
	companyBlob := "發票類型(InvoiceType): company\n統一編號(CompanyId): 12345678\n發票抬頭(CompanyName): Acme Co"

	cases := []struct {
		name        string
		note        string
		wantTaxID   string
		wantCompany string
	}{
		{name: "company invoice", note: companyBlob, wantTaxID: "12345678", wantCompany: "Acme Co"},
		{
			name: "personal invoice ignores other pairs",
			note: "發票類型(InvoiceType): personal\n統一編號(CompanyId): 12345678\n發票抬頭(CompanyName): Acme Co",
		},
		{name: "type is case-insensitive", note: "發票類型(InvoiceType): COMPANY\n統一編號(CompanyId): 87654321", wantTaxID: "87654321"},
		{name: "type value trimmed", note: "發票類型(InvoiceType):  company \n發票抬頭(CompanyName): Acme Co ", wantCompany: "Acme Co"},
		{name: "company without id or name", note: "發票類型(InvoiceType): company"},
		{name: "non-digit company id ignored", note: "發票類型(InvoiceType): company\n統一編號(CompanyId): abc"},
		{name: "missing type", note: "統一編號(CompanyId): 12345678"},
		{name: "empty blob", note: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := ExtractInvoiceInfo(tc.note)
			if info.TaxID != tc.wantTaxID {
				t.Fatalf("taxId got %q want %q", info.TaxID, tc.wantTaxID)
			}
			if info.CompanyName != tc.wantCompany {
				t.Fatalf("companyName got %q want %q", info.CompanyName, tc.wantCompany)
			}
		})
	}
}
