package render

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/trebuchet-org/subnetctl/internal/domain/config"
	"gopkg.in/yaml.v3"
)

// Renderer renders a use case result in the table format
type Renderer[T any] interface {
	Render(result T) error
}

// Structured writes v as JSON or YAML when the output format asks for it and reports whether it
// wrote anything. Table output is left to the caller's renderer.
func Structured(out io.Writer, format config.OutputFormat, v any) (bool, error) {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	default:
		return false, nil
	}
}

// Output renders result with r unless a structured format was requested
func Output[T any](out io.Writer, format config.OutputFormat, r Renderer[T], result T) error {
	done, err := Structured(out, format, result)
	if done || err != nil {
		return err
	}
	return r.Render(result)
}

// newTable creates a borderless table that writes to out
func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}
	return t
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}
