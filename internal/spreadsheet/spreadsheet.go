// Package spreadsheet reads uploaded CSV and Excel files into header-keyed
// rows.
package spreadsheet

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"wqtc-api/internal/domain"
)

// Format identifies a decoding strategy.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
)

// Table is a decoded upload. Headers are normalized and in file order;
// HeaderMap records how each original header was renamed. RowNumbers runs
// parallel to Rows and holds the 1-based row each one occupies in the file,
// so skipped blank rows do not shift what is reported back.
type Table struct {
	Headers    []string
	HeaderMap  map[string]string
	Rows       []domain.RawRow
	RowNumbers []int
}

// RowNumber returns the file row of Rows[i]. Tables built without
// positions fall back to counting from the header on row 1.
func (t *Table) RowNumber(i int) int {
	if i < len(t.RowNumbers) {
		return t.RowNumbers[i]
	}
	return domain.RowNumberForIndex(i)
}

// record is one decoded row and its 1-based position in the file.
type record struct {
	number int
	cells  []string
}

// numbered positions rows that map one to one onto sheet rows.
func numbered(rows [][]string) []record {
	records := make([]record, len(rows))
	for i, cells := range rows {
		records[i] = record{number: i + 1, cells: cells}
	}
	return records
}

// DetectFormat picks a strategy from the file extension alone.
func DetectFormat(filename string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(strings.TrimSpace(filename)), "."))
	switch Format(ext) {
	case FormatCSV, FormatXLSX, FormatXLS:
		return Format(ext), nil
	}
	return "", fmt.Errorf("%w: %q (expected .csv, .xls or .xlsx)", domain.ErrUnsupportedFormat, filename)
}

// Parse decodes data according to the extension of filename. The first row
// is the header row.
func Parse(filename string, data []byte) (*Table, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		return nil, err
	}

	var records []record
	switch format {
	case FormatCSV:
		records, err = readCSV(data)
	case FormatXLSX:
		records, err = readXLSX(data)
	case FormatXLS:
		records, err = readXLS(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
	}

	return buildTable(records)
}

func buildTable(records []record) (*Table, error) {
	for len(records) > 0 && isBlank(records[0].cells) {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: file has no header row", domain.ErrMalformedInput)
	}

	header := records[0].cells
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	table := &Table{
		Headers:   make([]string, 0, len(header)),
		HeaderMap: make(map[string]string, len(header)),
	}

	// columns[i] is the normalized name of column i, or "" when the column
	// duplicates an earlier one.
	columns := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		name := NormalizeHeader(h)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		columns[i] = name
		table.Headers = append(table.Headers, name)
		table.HeaderMap[h] = name
	}

	for _, rec := range records[1:] {
		if isBlank(rec.cells) {
			continue
		}
		row := make(domain.RawRow, len(table.Headers))
		for i, name := range columns {
			if name == "" {
				continue
			}
			var cell string
			if i < len(rec.cells) {
				cell = strings.TrimSpace(rec.cells[i])
			}
			row[name] = cell
		}
		table.Rows = append(table.Rows, row)
		table.RowNumbers = append(table.RowNumbers, rec.number)
	}

	return table, nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeHeader lowercases and trims a header and joins its words with
// underscores: " Surah No " becomes "surah_no".
func NormalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return whitespaceRun.ReplaceAllString(h, "_")
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
