package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/yndnr/dev-go/internal/core/domain"
)

// Tabular is implemented by results that render as a table but also have
// a structured form for json and yaml output.
type Tabular interface {
	Table() *Table
	Records() []map[string]any
}

// TableFormatter formats data as a plain-text table.
type TableFormatter struct {
	NoHeaders bool
}

// Format renders Table, Tabular and plain values. Values are written on
// a single line; anything else falls back to indented JSON.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case nil:
		return nil
	case *Table:
		return v.Render(w, f.NoHeaders)
	case Table:
		return v.Render(w, f.NoHeaders)
	case Tabular:
		return v.Table().Render(w, f.NoHeaders)
	case Value:
		_, err := fmt.Fprintln(w, domain.RenderValue(v.V))
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Value wraps a single setting value so each formatter can render it its
// own way: raw text for table output, the JSON or YAML document otherwise.
type Value struct {
	V any
}

// MarshalJSON encodes the wrapped value.
func (v Value) MarshalJSON() ([]byte, error) {
	return domain.EncodeValue(v.V)
}

// MarshalYAML encodes the wrapped value.
func (v Value) MarshalYAML() (any, error) {
	return normalize(v.V), nil
}

// Settings renders a list of settings as a key/value table.
type Settings []domain.Setting

// Table implements Tabular.
func (s Settings) Table() *Table {
	t := &Table{Headers: []string{"key", "value"}, Rule: true}
	for _, setting := range s {
		t.AddRow(setting.Name, domain.RenderValue(setting.Value))
	}
	return t
}

// Records implements Tabular.
func (s Settings) Records() []map[string]any {
	records := make([]map[string]any, 0, len(s))
	for _, setting := range s {
		records = append(records, map[string]any{
			"key":   setting.Name,
			"value": setting.Value,
		})
	}
	return records
}

// Table represents tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
	// Rule draws a dashed line under the headers.
	Rule bool
}

// Render writes the table to w, leaving out the header lines when
// noHeaders is set.
func (t *Table) Render(w io.Writer, noHeaders bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if !noHeaders && len(t.Headers) > 0 {
		writeRow(tw, t.Headers)
		if t.Rule {
			writeRow(tw, t.rule())
		}
	}

	for _, row := range t.Rows {
		writeRow(tw, row)
	}

	return tw.Flush()
}

// rule returns one run of dashes per column, as wide as the column.
func (t *Table) rule() []string {
	widths := make([]int, len(t.Headers))
	measure := func(row []string) {
		for i, cell := range row {
			if i < len(widths) {
				if n := utf8.RuneCountInString(cleanCell(cell)); n > widths[i] {
					widths[i] = n
				}
			}
		}
	}
	measure(t.Headers)
	for _, row := range t.Rows {
		measure(row)
	}

	rule := make([]string, len(widths))
	for i, n := range widths {
		rule[i] = strings.Repeat("-", n)
	}
	return rule
}

func writeRow(w io.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			io.WriteString(w, "\t")
		}
		io.WriteString(w, cleanCell(cell))
	}
	io.WriteString(w, "\n")
}

// cleanCell escapes characters that would break the column layout.
func cleanCell(s string) string {
	return cellEscaper.Replace(s)
}

var cellEscaper = strings.NewReplacer("\t", `\t`, "\n", `\n`, "\r", `\r`)

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}
