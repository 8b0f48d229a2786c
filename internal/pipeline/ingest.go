package pipeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/xuri/excelize/v2"

	"github.com/Vincenthsiehisme/Shopify-translate/internal"
)

var (
	ErrEmptyInput         = errors.New("order export contains no rows")
	ErrMissingOrderColumn = errors.New("order export has no Name column")
)

// ReadOrderRows loads an order export from disk. CSV is the normal shop
// export format; .xlsx is accepted for files that went through a spreadsheet
// first.
func ReadOrderRows(path string) ([]internal.RawOrderRow, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return readXLSXRows(path)
	default:
		return readCSVRows(path)
	}
}

func readCSVRows(path string) ([]internal.RawOrderRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return decodeRows(csv.NewReader(file))
}

func readXLSXRows(path string) ([]internal.RawOrderRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	return decodeRows(&sheetReader{rows: rows, width: len(rows[0])})
}

// decodeRows runs the header-keyed decode shared by both formats. The Name
// column check is a pre-flight guard: without it nothing can aggregate, so
// fail before touching any row.
func decodeRows(r csvutil.Reader) ([]internal.RawOrderRow, error) {
	dec, err := csvutil.NewDecoder(r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		return nil, fmt.Errorf("read export header: %w", err)
	}

	header := dec.Header()
	if !hasColumn(header, "Name") {
		return nil, fmt.Errorf("%w (detected columns: %s)", ErrMissingOrderColumn, strings.Join(header, ", "))
	}

	var rows []internal.RawOrderRow
	if err := dec.Decode(&rows); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode export rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	return rows, nil
}

func hasColumn(header []string, name string) bool {
	for _, h := range header {
		if strings.TrimSpace(h) == name {
			return true
		}
	}
	return false
}

// sheetReader adapts excelize row slices to the csvutil reader. Spreadsheet
// rows drop trailing empty cells, so every row is padded (or cut) to the
// header width the decoder expects.
type sheetReader struct {
	rows  [][]string
	width int
	next  int
}

func (r *sheetReader) Read() ([]string, error) {
	if r.next >= len(r.rows) {
		return nil, io.EOF
	}
	row := r.rows[r.next]
	r.next++

	if len(row) > r.width {
		row = row[:r.width]
	}
	for len(row) < r.width {
		row = append(row, "")
	}
	return row, nil
}
