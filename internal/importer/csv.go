// Package importer ingests partial lead records from CSV, either uploaded
// directly or fetched on a timer from a published sheet URL. Records carry
// only caller-supplied fields; the store applies entity defaults on add.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LeadRecord is a partial lead produced by ingestion. Name plus at least
// one of phone or email is required; everything else is optional.
type LeadRecord struct {
	Name         string
	Phone        string
	Email        string
	City         string
	Source       string
	PropertyType string
	Notes        string
	Budget       float64
}

// RowError reports a skipped CSV row.
type RowError struct {
	Row    int
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// ParseCSV reads lead records from CSV data. The first row is a header;
// column names are matched case-insensitively (name, phone, email, city,
// source, property_type/propertyType, notes, budget). Invalid rows are
// skipped and reported, not fatal.
func ParseCSV(r io.Reader) ([]LeadRecord, []RowError, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[normalizeColumn(name)] = i
	}
	if _, ok := columns["name"]; !ok {
		return nil, nil, fmt.Errorf("csv missing required column %q", "name")
	}

	var records []LeadRecord
	var rowErrors []RowError
	row := 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			rowErrors = append(rowErrors, RowError{Row: row, Reason: err.Error()})
			continue
		}

		rec := LeadRecord{
			Name:         field(fields, columns, "name"),
			Phone:        field(fields, columns, "phone"),
			Email:        field(fields, columns, "email"),
			City:         field(fields, columns, "city"),
			Source:       field(fields, columns, "source"),
			PropertyType: field(fields, columns, "propertytype"),
			Notes:        field(fields, columns, "notes"),
		}
		if raw := field(fields, columns, "budget"); raw != "" {
			budget, parseErr := strconv.ParseFloat(raw, 64)
			if parseErr != nil {
				rowErrors = append(rowErrors, RowError{Row: row, Reason: "invalid budget"})
				continue
			}
			rec.Budget = budget
		}

		if rec.Name == "" {
			rowErrors = append(rowErrors, RowError{Row: row, Reason: "name required"})
			continue
		}
		if rec.Phone == "" && rec.Email == "" {
			rowErrors = append(rowErrors, RowError{Row: row, Reason: "phone or email required"})
			continue
		}
		records = append(records, rec)
	}
	return records, rowErrors, nil
}

func normalizeColumn(name string) string {
	return strings.ReplaceAll(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", ""), " ", "")
}

func field(fields []string, columns map[string]int, key string) string {
	idx, ok := columns[key]
	if !ok || idx >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[idx])
}
