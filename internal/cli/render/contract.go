package render

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/subnetctl/internal/domain"
)

// ContractRenderer renders a contract address lookup
type ContractRenderer struct {
	out io.Writer
}

// NewContractRenderer creates a new contract renderer
func NewContractRenderer(out io.Writer) *ContractRenderer {
	return &ContractRenderer{out: out}
}

// Render renders the lookup
func (r *ContractRenderer) Render(lookup *domain.ContractLookup) error {
	t := newTable(r.out)
	t.AppendRow(table.Row{"Contract", lookup.LogicalName})
	t.AppendRow(table.Row{"Subnet", lookup.SubnetName})
	t.AppendRow(table.Row{"Address", lookup.Address})
	t.AppendRow(table.Row{"Source", lookup.Source})
	if lookup.Live != nil {
		live := successColor.Sprint("code deployed")
		if !*lookup.Live {
			live = errorColor.Sprint("no code at address")
		}
		t.AppendRow(table.Row{"Live", live})
	}
	t.Render()
	return nil
}
