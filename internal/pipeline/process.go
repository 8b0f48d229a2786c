package pipeline

import (
	"github.com/Vincenthsiehisme/Shopify-translate/internal"
	"github.com/Vincenthsiehisme/Shopify-translate/internal/config"
)

type ConversionService struct {
	cfg config.Config
}

func NewConversionService(cfg config.Config) *ConversionService {
	return &ConversionService{cfg: cfg}
}

type ConversionResult struct {
	Orders     []*internal.Order
	Rows       [][]any
	ItemCount  int
	AddonCount int
}

// Convert runs one full conversion over an in-memory row set: aggregate,
// finalize each order, project into upload rows. Each call builds its own
// aggregation state; concurrent conversions do not share anything.
func (s *ConversionService) Convert(rows []internal.RawOrderRow) ConversionResult {
	orders := AggregateOrders(rows)

	itemCount := 0
	addonCount := 0
	for _, order := range orders {
		FinalizeOrder(s.cfg, order)
		itemCount += len(order.Items)
		for _, item := range order.Items {
			if item.Addon {
				addonCount++
			}
		}
	}

	return ConversionResult{
		Orders:     orders,
		Rows:       ProjectRows(orders),
		ItemCount:  itemCount,
		AddonCount: addonCount,
	}
}

// ConvertFile reads an export from disk, converts it, and writes the upload
// sheet. Only the two ingest pre-flight checks can fail a conversion; after
// them the pipeline always completes.
func (s *ConversionService) ConvertFile(inputPath, outputPath string) (ConversionResult, error) {
	rows, err := ReadOrderRows(inputPath)
	if err != nil {
		return ConversionResult{}, err
	}

	result := s.Convert(rows)
	if err := WriteXLSX(result.Rows, outputPath); err != nil {
		return ConversionResult{}, err
	}
	return result, nil
}
