package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/subnetctl/internal/domain"
)

// StatusRenderer renders the local network status
type StatusRenderer struct {
	out io.Writer
}

// NewStatusRenderer creates a new status renderer
func NewStatusRenderer(out io.Writer) *StatusRenderer {
	return &StatusRenderer{out: out}
}

// Render renders the network status
func (r *StatusRenderer) Render(status *domain.NetworkStatus) error {
	if !status.IsUp {
		fmt.Fprintln(r.out, errorColor.Sprint("● Network is down"))
		return nil
	}
	fmt.Fprintln(r.out, successColor.Sprint("● Network is up"))
	fmt.Fprintln(r.out)

	t := newTable(r.out)
	t.AppendRow(table.Row{"Nodes", status.Nodes})
	t.AppendRow(table.Row{"Custom VMs", status.CustomVMs})
	t.AppendRow(table.Row{"Network healthy", healthLabel(status.NetworkHealthy)})
	t.AppendRow(table.Row{"Custom VMs healthy", healthLabel(status.CustomVMsHealthy)})
	t.Render()

	if len(status.RPCURLs) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, labelColor.Sprint("RPC endpoints"))
		rpc := newTable(r.out)
		for _, name := range sortedKeys(status.RPCURLs) {
			rpc.AppendRow(table.Row{name, status.RPCURLs[name]})
		}
		rpc.Render()
	}

	if len(status.PrimaryNodes) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, labelColor.Sprint("Primary nodes"))
		renderNodes(r.out, status.PrimaryNodes)
	}
	if len(status.L1Nodes) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, labelColor.Sprint("L1 nodes"))
		renderNodes(r.out, status.L1Nodes)
	}
	return nil
}

func healthLabel(ok bool) string {
	if ok {
		return successColor.Sprint("yes")
	}
	return errorColor.Sprint("no")
}
