package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Table is an in-memory CSV dataset: an ordered header and one string map
// per row. Column order is preserved across read/modify/write cycles.
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// Read loads a CSV file into a Table. The first record is the header.
func Read(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s has no header", path)
	}

	columns := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return &Table{Columns: columns, Rows: rows}, nil
}

// Write saves the table as CSV at path, header first.
func (t *Table) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range t.Rows {
		record := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			record[i] = row[col]
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// HasColumn reports whether the table's header contains name.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// MissingColumns returns which of the required column names are absent.
func (t *Table) MissingColumns(required []string) []string {
	var missing []string
	for _, name := range required {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// AddColumns appends any of the given column names not already present,
// preserving the existing header order.
func (t *Table) AddColumns(names []string) {
	for _, name := range names {
		if !t.HasColumn(name) {
			t.Columns = append(t.Columns, name)
		}
	}
}

// ParseURLList splits a comma-separated URL cell into trimmed, non-empty
// URLs, preserving order.
func ParseURLList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	urls := make([]string, 0, len(parts))
	for _, p := range parts {
		if u := strings.TrimSpace(p); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}
