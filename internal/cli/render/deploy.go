package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

// maxFailureLines bounds how much toolchain output is echoed for a failed stage
const maxFailureLines = 20

// DeployRenderer renders deploy results
type DeployRenderer struct {
	out io.Writer
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer) *DeployRenderer {
	return &DeployRenderer{out: out}
}

// Render renders the deployed addresses and where each came from
func (r *DeployRenderer) Render(result *usecase.DeployContractsResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Deployed to %s", result.SubnetName)))
	fmt.Fprintln(r.out)

	summary := newTable(r.out)
	summary.AppendRow(table.Row{"RPC URL", result.RPCURL, sourceLabel(result.RPCSource)})
	summary.AppendRow(table.Row{"Deployer", orMissing(result.Deployer, "-"), ""})
	if result.ChainID != 0 {
		summary.AppendRow(table.Row{"Chain ID", result.ChainID, ""})
	}
	if result.BroadcastPath != "" {
		summary.AppendRow(table.Row{"Broadcast", getRelativePath(result.BroadcastPath), ""})
	}
	summary.Render()

	if result.Addresses != nil && result.Addresses.Len() > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, labelColor.Sprint("Contracts"))
		t := newTable(r.out)
		t.AppendHeader(table.Row{"CONTRACT", "ADDRESS", "SOURCE"})
		for _, name := range result.Addresses.Names() {
			addr, _ := result.Addresses.Get(name)
			t.AppendRow(table.Row{name, addr, faintColor.Sprint(string(result.Addresses.Provenance[name]))})
		}
		t.Render()
	}

	if len(result.ABIFiles) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, labelColor.Sprint("ABI files"))
		t := newTable(r.out)
		for _, name := range sortedKeys(result.ABIFiles) {
			t.AppendRow(table.Row{name, getRelativePath(result.ABIFiles[name])})
		}
		t.Render()
	}

	r.renderWarnings(result.Warnings)
	return nil
}

// RenderFailure renders the tail of a failed stage's stdout. Stderr is already part of the error
// message, so stdout is only shown when the toolchain wrote nothing to stderr.
func (r *DeployRenderer) RenderFailure(err *domain.DeployError) {
	if strings.TrimSpace(err.Stderr) != "" {
		return
	}
	output := strings.TrimSpace(err.Stdout)
	if output == "" {
		return
	}
	lines := strings.Split(output, "\n")
	if len(lines) > maxFailureLines {
		fmt.Fprintln(r.out, faintColor.Sprintf("... %d lines omitted", len(lines)-maxFailureLines))
		lines = lines[len(lines)-maxFailureLines:]
	}
	for _, line := range lines {
		fmt.Fprintf(r.out, "  %s\n", line)
	}
}

func (r *DeployRenderer) renderWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintln(r.out)
	for _, w := range warnings {
		fmt.Fprintln(r.out, FormatWarning(w))
	}
}
