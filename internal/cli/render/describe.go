package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DescribeRenderer renders subnet descriptions
type DescribeRenderer struct {
	out   io.Writer
	title cases.Caser
}

// NewDescribeRenderer creates a new describe renderer
func NewDescribeRenderer(out io.Writer) *DescribeRenderer {
	return &DescribeRenderer{out: out, title: cases.Title(language.English)}
}

// Render renders whichever describe record the network CLI produced, then the resolved endpoint
func (r *DescribeRenderer) Render(result *usecase.DescribeSubnetResult) error {
	desc := result.Description

	switch {
	case desc.Blockchain != nil:
		r.renderBlockchain(desc.Blockchain)
	case desc.Subnet != nil:
		r.renderSubnet(desc.Subnet)
	default:
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("no describe data for %s", desc.SubnetName)))
	}

	if result.Endpoint != nil {
		r.section("Endpoint")
		t := newTable(r.out)
		t.AppendRow(table.Row{"RPC URL", orMissing(result.Endpoint.RPCURL, "(not found)"), sourceLabel(result.Endpoint.RPCSource)})
		t.AppendRow(table.Row{"Deployer", orMissing(result.Address, "(no key)"), sourceLabel(result.Endpoint.CredentialSource)})
		t.Render()
	}
	return nil
}

func (r *DescribeRenderer) renderBlockchain(rec *domain.DescribeRecord) {
	fmt.Fprintf(r.out, "%s %s\n", labelColor.Sprint("Blockchain:"), rec.Name)
	r.pairs([][2]string{
		{"VM ID", rec.VMID},
		{"VM Version", rec.VMVersion},
		{"Validation", rec.Validation},
	})

	for _, network := range sortedKeys(rec.Networks) {
		r.section(r.title.String(network) + " network")
		r.mapTable(rec.Networks[network])
	}

	if len(rec.RPCURLs) > 0 {
		r.section("RPC endpoints")
		r.mapTable(rec.RPCURLs)
	}

	r.renderICM(rec.ICM)

	if len(rec.Token) > 0 {
		r.section("Token")
		r.mapTable(rec.Token)
	}

	if len(rec.InitialAllocation) > 0 {
		r.section("Initial allocation")
		t := newTable(r.out)
		t.AppendHeader(table.Row{"DESCRIPTION", "ADDRESS", "AMOUNT"})
		for _, a := range rec.InitialAllocation {
			t.AppendRow(table.Row{a.Description, a.Address, a.Amount})
		}
		t.Render()
	}

	if len(rec.PrecompileConfigs) > 0 {
		r.section("Precompiles")
		t := newTable(r.out)
		t.AppendHeader(table.Row{"PRECOMPILE", "ADMIN", "MANAGER", "ENABLED"})
		for _, name := range sortedKeys(rec.PrecompileConfigs) {
			p := rec.PrecompileConfigs[name]
			t.AppendRow(table.Row{name, orMissing(p.AdminAddresses, "-"), orMissing(p.ManagerAddresses, "-"), orMissing(p.EnabledAddresses, "-")})
		}
		t.Render()
	}

	r.nodes("Primary nodes", rec.PrimaryNodes)
	r.nodes("L1 nodes", rec.L1Nodes)

	if len(rec.WalletConnection) > 0 {
		r.section("Wallet connection")
		r.mapTable(rec.WalletConnection)
	}
}

func (r *DescribeRenderer) renderSubnet(rec *domain.SubnetDescribeRecord) {
	fmt.Fprintf(r.out, "%s %s\n", labelColor.Sprint("Subnet:"), rec.Name)
	r.pairs([][2]string{
		{"VM ID", rec.VMID},
		{"VM Version", rec.VMVersion},
		{"Validation", rec.Validation},
	})
	for _, network := range sortedKeys(rec.Networks) {
		r.section(r.title.String(network) + " network")
		r.mapTable(rec.Networks[network])
	}
	r.renderICM(rec.ICM)
	if len(rec.Token) > 0 {
		r.section("Token")
		r.mapTable(rec.Token)
	}
}

func (r *DescribeRenderer) renderICM(icm domain.ICMInfo) {
	if icm.MessengerAddress == "" && icm.RegistryAddress == "" {
		return
	}
	r.section("ICM")
	r.pairs([][2]string{
		{"Messenger", icm.MessengerAddress},
		{"Registry", icm.RegistryAddress},
	})
}

func (r *DescribeRenderer) section(name string) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, labelColor.Sprint(name))
}

func (r *DescribeRenderer) pairs(rows [][2]string) {
	t := newTable(r.out)
	for _, row := range rows {
		t.AppendRow(table.Row{row[0], orMissing(row[1], "-")})
	}
	t.Render()
}

func (r *DescribeRenderer) mapTable(m map[string]string) {
	t := newTable(r.out)
	for _, k := range sortedKeys(m) {
		t.AppendRow(table.Row{k, m[k]})
	}
	t.Render()
}

func (r *DescribeRenderer) nodes(title string, nodes []domain.NodeInfo) {
	if len(nodes) == 0 {
		return
	}
	r.section(title)
	renderNodes(r.out, nodes)
}

func renderNodes(out io.Writer, nodes []domain.NodeInfo) {
	t := newTable(out)
	t.AppendHeader(table.Row{"NAME", "NODE ID", "ENDPOINT"})
	for _, n := range nodes {
		t.AppendRow(table.Row{n.Name, n.NodeID, n.Endpoint})
	}
	t.Render()
}
