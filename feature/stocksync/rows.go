package stocksync

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"stock-sync/core/reconcile"

	"github.com/xuri/excelize/v2"
)

// Column aliases accepted in uploaded files. Header matching is
// case-insensitive; the first alias found wins.
var (
	quantityColumns = []string{"qta", "quantity", "qty"}
	locationColumns = []string{"id sede", "location_id", "location"}
	channelColumns  = []string{"canali di vendita", "canale di vendita", "sale_channel"}
)

// ColumnBarcode and ColumnSKU are the two reference columns. A barcode
// column always takes precedence over sku when both are present.
const (
	ColumnBarcode = "barcode"
	ColumnSKU     = "sku"
)

// Table is a parsed spreadsheet: lower-cased headers plus one string map
// per data row.
type Table struct {
	Headers []string
	Records []map[string]string
}

// HasColumn reports whether the table carries the given header.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// FirstColumn returns the first of the candidate headers present in the
// table.
func (t *Table) FirstColumn(candidates []string) (string, bool) {
	for _, c := range candidates {
		if t.HasColumn(c) {
			return c, true
		}
	}
	return "", false
}

// ParseTable reads a spreadsheet into a Table, dispatching on the file
// extension. CSV and Excel (xlsx/xlsm) files are supported.
func ParseTable(filename string, r io.Reader) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSV(r)
	case ".xlsx", ".xlsm":
		return parseExcel(r)
	default:
		return nil, fmt.Errorf("unsupported file type %q, expected .csv or .xlsx", filepath.Ext(filename))
	}
}

func parseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Tolerate ragged rows, short rows just leave columns empty.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	return tableFromRows(records), nil
}

func parseExcel(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	return tableFromRows(rows), nil
}

func tableFromRows(rows [][]string) *Table {
	t := &Table{}
	if len(rows) == 0 {
		return t
	}

	for _, h := range rows[0] {
		t.Headers = append(t.Headers, strings.ToLower(strings.TrimSpace(h)))
	}

	for _, row := range rows[1:] {
		record := make(map[string]string, len(t.Headers))
		empty := true
		for i, header := range t.Headers {
			if header == "" {
				continue
			}
			value := ""
			if i < len(row) {
				value = strings.TrimSpace(row[i])
			}
			if value != "" {
				empty = false
			}
			record[header] = value
		}
		if empty {
			continue
		}
		t.Records = append(t.Records, record)
	}

	return t
}

// ExtractRows converts table records into reconcile rows. It returns the
// rows, the reference column that was used, and the lines that had no
// location (those rows are validated but never mutated).
func ExtractRows(t *Table) (rows []reconcile.Row, refColumn string, noLocation []int, err error) {
	refColumn = ColumnSKU
	if t.HasColumn(ColumnBarcode) {
		refColumn = ColumnBarcode
	} else if !t.HasColumn(ColumnSKU) {
		return nil, "", nil, fmt.Errorf("no reference column found, expected %q or %q", ColumnSKU, ColumnBarcode)
	}

	qtyColumn, ok := t.FirstColumn(quantityColumns)
	if !ok {
		return nil, "", nil, fmt.Errorf("no quantity column found, expected one of %v", quantityColumns)
	}
	locColumn, _ := t.FirstColumn(locationColumns)
	chColumn, _ := t.FirstColumn(channelColumns)

	for i, record := range t.Records {
		// Line numbers are 1-based and account for the header row.
		line := i + 2

		qty, err := parseQuantity(record[qtyColumn])
		if err != nil {
			return nil, "", nil, fmt.Errorf("line %d: invalid quantity %q", line, record[qtyColumn])
		}

		row := reconcile.Row{
			Reference: reconcile.Normalize(record[refColumn]),
			Quantity:  qty,
			Line:      line,
		}
		if locColumn != "" {
			row.LocationID = record[locColumn]
		}
		if chColumn != "" {
			row.SaleChannels = splitChannels(record[chColumn])
		}
		if row.LocationID == "" {
			noLocation = append(noLocation, line)
		}

		rows = append(rows, row)
	}

	return rows, refColumn, noLocation, nil
}

// parseQuantity accepts plain integers and float-formatted cells ("5.0")
// the way exported spreadsheets tend to render them.
func parseQuantity(val string) (int, error) {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(val); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("quantity %q is not a whole number", val)
	}
	return int(f), nil
}

// splitChannels parses a cell holding one channel ID or a comma-separated
// list of them.
func splitChannels(val string) []string {
	var channels []string
	for _, part := range strings.Split(val, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		channels = append(channels, part)
	}
	return channels
}
