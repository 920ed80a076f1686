// Package export renders API rows into the CSV and JSON files the dashboard
// offers for download.
package export

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Column maps a row key to the header label it is exported under. Column
// order is the output order.
type Column struct {
	Key   string
	Label string
}

// ToCSV emits a header line of labels followed by one line per row, joined
// with LF and no trailing newline. Nil fields render empty. A field is
// wrapped in quotes only when it contains a comma, quote or newline, with
// embedded quotes doubled. Empty input yields an empty string.
func ToCSV(rows []map[string]interface{}, columns []Column) string {
	if len(rows) == 0 {
		return ""
	}

	labels := make([]string, len(columns))
	for i, col := range columns {
		labels[i] = col.Label
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(labels, ","))

	for _, row := range rows {
		fields := make([]string, len(columns))
		for i, col := range columns {
			fields[i] = escapeField(row[col.Key])
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	return strings.Join(lines, "\n")
}

func escapeField(value interface{}) string {
	if value == nil {
		return ""
	}

	s := stringify(value)
	s = strings.ReplaceAll(s, `"`, `""`)

	if strings.ContainsAny(s, ",\"\n") {
		s = `"` + s + `"`
	}

	return s
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		// JSON numbers decode as float64; render integral values without
		// a decimal point.
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToJSON pretty-prints any exportable value with two-space indentation.
func ToJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")

	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Rows flattens a typed slice into the generic rows ToCSV consumes, going
// through JSON so the exported keys match the wire field names.
func Rows(v interface{}) ([]map[string]interface{}, error) {
	data, err := json.Marshal(v)

	if err != nil {
		return nil, err
	}

	var rows []map[string]interface{}

	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}
