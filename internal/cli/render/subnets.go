package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

// SubnetsRenderer renders subnet listings
type SubnetsRenderer struct {
	out io.Writer
}

// NewSubnetsRenderer creates a new subnets renderer
func NewSubnetsRenderer(out io.Writer) *SubnetsRenderer {
	return &SubnetsRenderer{out: out}
}

// Render renders the subnet table
func (r *SubnetsRenderer) Render(result *usecase.ListSubnetsResult) error {
	if len(result.Subnets) == 0 {
		fmt.Fprintln(r.out, "No subnets found")
		return nil
	}

	t := newTable(r.out)
	t.AppendHeader(table.Row{"SUBNET", "STATUS"})
	for _, s := range result.Subnets {
		t.AppendRow(table.Row{s.Name, statusLabel(s.Status)})
	}
	t.Render()
	return nil
}

// RenderSuggestions renders the closest names for a subnet that does not exist
func (r *SubnetsRenderer) RenderSuggestions(query string, suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintf(r.out, "No subnet named %q. Did you mean: %s?\n", query, strings.Join(suggestions, ", "))
}

func statusLabel(status string) string {
	switch status {
	case domain.SubnetStatusRunning:
		return successColor.Sprint(status)
	case domain.SubnetStatusConfigured:
		return warningColor.Sprint(status)
	default:
		return status
	}
}
