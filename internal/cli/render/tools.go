package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

// ToolsRenderer renders tool detection results
type ToolsRenderer struct {
	out io.Writer
}

// NewToolsRenderer creates a new tools renderer
func NewToolsRenderer(out io.Writer) *ToolsRenderer {
	return &ToolsRenderer{out: out}
}

// Render renders the tool table followed by any discovered commands
func (r *ToolsRenderer) Render(result *usecase.DetectToolsResult) error {
	t := newTable(r.out)
	t.AppendHeader(table.Row{"TOOL", "STATUS", "VERSION", "PATH"})
	for _, tool := range result.Tools {
		status := successColor.Sprint("installed")
		if !tool.Installed {
			status = errorColor.Sprint("missing")
			if tool.Error != "" {
				status += faintColor.Sprintf(" (%s)", tool.Error)
			}
		}
		t.AppendRow(table.Row{string(tool.Name), status, orMissing(tool.Version, "-"), orMissing(tool.Path, "-")})
	}
	t.Render()

	if len(result.Commands) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, labelColor.Sprint("Commands:"))
		for _, top := range result.Commands {
			subs := result.CommandTree.Subcommands(top)
			if len(subs) == 0 {
				fmt.Fprintf(r.out, "  %s\n", top)
				continue
			}
			fmt.Fprintf(r.out, "  %s %s\n", top, faintColor.Sprint(strings.Join(subs, ", ")))
		}
	}
	return nil
}
