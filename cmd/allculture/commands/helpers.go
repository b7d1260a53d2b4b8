package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/allculture/internal/constants"
	"github.com/fivetwenty-io/allculture/pkg/culture"
)

// Output format constants.
const (
	OutputFormatAuto  = constants.FormatAuto
	OutputFormatTable = constants.FormatTable
	OutputFormatJSON  = constants.FormatJSON
	OutputFormatYAML  = constants.FormatYAML
)

// isTerminal reports whether stdout is attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) // #nosec G115 -- file descriptors fit in int
}

// resolveOutputFormat maps the configured output to a concrete format. auto
// picks table on a terminal and json otherwise.
func resolveOutputFormat() (string, error) {
	output := strings.ToLower(viper.GetString("output"))

	switch output {
	case "", OutputFormatAuto:
		if isTerminal() {
			return OutputFormatTable, nil
		}

		return OutputFormatJSON, nil
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return output, nil
	default:
		return "", fmt.Errorf("%w: %s (use auto, table, json or yaml)", constants.ErrUnknownOutput, output)
	}
}

// StandardJSONRenderer writes data as indented JSON.
func StandardJSONRenderer[T any](w io.Writer, data T) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data as YAML.
func StandardYAMLRenderer[T any](w io.Writer, data T) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

// renderPropertyTable writes key/value pairs in the given order.
func renderPropertyTable(w io.Writer, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	for _, row := range rows {
		_ = table.Append(row)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderResponse writes an API response in the resolved output format.
func renderResponse(w io.Writer, resp *culture.Response, columns []string) error {
	format, err := resolveOutputFormat()
	if err != nil {
		return err
	}

	switch format {
	case OutputFormatJSON:
		var buf bytes.Buffer

		err := json.Indent(&buf, resp.Body, "", strings.Repeat(" ", constants.JSONIndentSize))
		if err != nil {
			return fmt.Errorf("encoding data to JSON: %w", err)
		}

		buf.WriteByte('\n')

		_, err = buf.WriteTo(w)

		return err
	case OutputFormatYAML:
		var value interface{}

		err := json.Unmarshal(resp.Body, &value)
		if err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}

		return StandardYAMLRenderer(w, value)
	default:
		return renderResponseTable(w, resp.Value, columns)
	}
}

// renderResponseTable renders a list of objects as rows, or a single object as
// a property table.
func renderResponseTable(w io.Writer, value interface{}, columns []string) error {
	rows, total, ok := findRows(value)
	if ok {
		return renderRowsTable(w, rows, total, columns)
	}

	obj, ok := value.(map[string]interface{})
	if !ok {
		return StandardJSONRenderer(w, value)
	}

	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	props := make([][]string, 0, len(keys))
	for _, key := range keys {
		props = append(props, []string{key, cellValue(obj[key])})
	}

	return renderPropertyTable(w, props)
}

func renderRowsTable(w io.Writer, rows []map[string]interface{}, total string, columns []string) error {
	if len(rows) == 0 {
		_, _ = io.WriteString(w, "No results found\n")

		return nil
	}

	headers := make([]any, len(columns))
	for i, column := range columns {
		headers[i] = column
	}

	table := tablewriter.NewWriter(w)
	table.Header(headers...)

	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, column := range columns {
			cells[i] = cellValue(lookup(row, column))
		}

		_ = table.Append(cells)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if total != "" {
		_, _ = fmt.Fprintf(w, "Total: %s\n", total)
	}

	return nil
}

// findRows locates the list of objects in a response. Collection replies are
// either a bare array or an object holding one array next to "total".
func findRows(value interface{}) ([]map[string]interface{}, string, bool) {
	if list, ok := value.([]interface{}); ok {
		rows, ok := objectRows(list)

		return rows, "", ok
	}

	obj, ok := value.(map[string]interface{})
	if !ok {
		return nil, "", false
	}

	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		list, ok := obj[key].([]interface{})
		if !ok {
			continue
		}

		rows, ok := objectRows(list)
		if ok {
			return rows, cellValue(obj["total"]), true
		}
	}

	return nil, "", false
}

func objectRows(list []interface{}) ([]map[string]interface{}, bool) {
	rows := make([]map[string]interface{}, 0, len(list))

	for _, item := range list {
		row, ok := item.(map[string]interface{})
		if !ok {
			return nil, false
		}

		rows = append(rows, row)
	}

	return rows, true
}

// lookup resolves a dotted path such as "place.name" inside row.
func lookup(row map[string]interface{}, path string) interface{} {
	var current interface{} = row

	for _, part := range strings.Split(path, ".") {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}

		current = obj[part]
	}

	return current
}

// cellValue renders a decoded JSON value for a table cell.
func cellValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool, float64:
		return fmt.Sprint(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		return truncate(string(data), constants.CellTruncationLimit)
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit-3]) + "..."
}

// splitColumns parses a comma separated column list.
func splitColumns(columns string) []string {
	var out []string

	for _, column := range strings.Split(columns, ",") {
		column = strings.TrimSpace(column)
		if column != "" {
			out = append(out, column)
		}
	}

	return out
}
