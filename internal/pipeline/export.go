package pipeline

import (
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/Vincenthsiehisme/Shopify-translate/internal"
)

// exportHeader is the ERP upload template header. Column positions are a
// fixed contract with the downstream system; never reorder or rename them.
var exportHeader = []string{
	"通路訂單編號", "收貨人", "聯絡電話", "送貨地址", "備註",
	"品號", "金額合計", "數量", "單價", "出貨倉庫",
	"統一編號", "代收貨款", "業務員", "來回件", "附件",
	"運輸方式", "指定效期", "客戶品號", "ERP客戶代號", "是否指定倉庫",
	"發票號碼", "載具號碼", "發票開立日期", "發票開立時間", "統一編號(發票)",
	"統一編號抬頭", "通路訂單序號", "網站訂單編號", "Email",
}

// Constant cell values required by the upload template.
const (
	warehouseCode   = "XF1400"
	salespersonCode = "6301"
	transportMode   = "2"
	erpCustomerCode = "F91000000"
)

// ProjectRows flattens finalized orders into positional upload rows, one row
// per line item (shipping addon included), prefixed by the template header.
// Several columns are blank for every row: the template reserves them for
// fields the ERP fills in on its side.
func ProjectRows(orders []*internal.Order) [][]any {
	out := make([][]any, 0, len(orders)+1)

	header := make([]any, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	out = append(out, header)

	for _, order := range orders {
		channelID := order.PaymentRef
		if channelID == "" {
			channelID = order.ID
		}

		for _, item := range order.Items {
			amount, _ := item.Price.Mul(decimal.NewFromInt(int64(item.Qty))).Float64()
			unitPrice, _ := item.Price.Float64()

			out = append(out, []any{
				channelID,              // 通路訂單編號
				order.Customer.Name,    // 收貨人
				order.Customer.Phone,   // 聯絡電話
				order.Customer.Address, // 送貨地址
				"",                     // 備註
				item.SKU,               // 品號
				amount,                 // 金額合計
				item.Qty,               // 數量
				unitPrice,              // 單價
				warehouseCode,          // 出貨倉庫
				"",                     // 統一編號
				"",                     // 代收貨款
				salespersonCode,        // 業務員
				"N",                    // 來回件
				"N",                    // 附件
				transportMode,          // 運輸方式
				"",                     // 指定效期
				item.SKU,               // 客戶品號
				erpCustomerCode,        // ERP客戶代號
				"N",                    // 是否指定倉庫
				"",                     // 發票號碼
				order.CarrierID,        // 載具號碼
				"",                     // 發票開立日期
				"",                     // 發票開立時間
				order.TaxID,            // 統一編號(發票)
				order.CompanyName,      // 統一編號抬頭
				order.ID,               // 通路訂單序號
				order.ShopifyID,        // 網站訂單編號
				order.Email,            // Email
			})
		}
	}

	return out
}

// WriteXLSX writes projected rows to a single-sheet workbook.
func WriteXLSX(rows [][]any, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for r, row := range rows {
		for c, value := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
