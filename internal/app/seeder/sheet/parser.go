// Package sheet parses an enquiry spreadsheet exported as CSV.
// Pure function: file path in, raw records out. No storage dependencies.
package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one spreadsheet row. Values are trimmed; missing columns are "".
type Record struct {
	Line         int
	Title        string
	Category     string
	CustomerName string
	Phone        string
	Channel      string
	Status       string
	Due          string
	Notes        string
	Assignee     string
}

// columnAliases maps accepted header names to Record fields.
var columnAliases = map[string]string{
	"title":        "title",
	"job":          "title",
	"category":     "category",
	"service":      "category",
	"customer":     "customer",
	"customername": "customer",
	"name":         "customer",
	"phone":        "phone",
	"mobile":       "phone",
	"channel":      "channel",
	"source":       "channel",
	"status":       "status",
	"due":          "due",
	"dueat":        "due",
	"duedate":      "due",
	"notes":        "notes",
	"assignee":     "assignee",
	"assignedto":   "assignee",
}

// ErrNoTitleColumn is returned when the header has no title column.
var ErrNoTitleColumn = errors.New("header has no title column")

// Parse reads the CSV file at path.
func Parse(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sheet: %w", err)
	}
	defer f.Close()

	records, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse sheet %s: %w", path, err)
	}
	return records, nil
}

// parse reads a CSV whose first row is a header. Column names are matched
// case-insensitively, ignoring spaces, dashes and underscores; unknown
// columns are skipped. Blank rows are dropped.
func parse(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows may be shorter than the header
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int)
	for i, name := range header {
		if field, ok := columnAliases[headerKey(name)]; ok {
			if _, dup := columns[field]; !dup {
				columns[field] = i
			}
		}
	}
	if _, ok := columns["title"]; !ok {
		return nil, ErrNoTitleColumn
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := reader.FieldPos(0)

		get := func(field string) string {
			i, ok := columns[field]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		rec := Record{
			Line:         line,
			Title:        get("title"),
			Category:     get("category"),
			CustomerName: get("customer"),
			Phone:        get("phone"),
			Channel:      get("channel"),
			Status:       get("status"),
			Due:          get("due"),
			Notes:        get("notes"),
			Assignee:     get("assignee"),
		}
		if rec.isBlank() {
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

func (r Record) isBlank() bool {
	return r.Title == "" && r.Category == "" && r.CustomerName == "" &&
		r.Phone == "" && r.Channel == "" && r.Status == "" &&
		r.Due == "" && r.Notes == "" && r.Assignee == ""
}

func headerKey(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
