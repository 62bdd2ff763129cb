package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

// EndpointRenderer renders a resolved endpoint. The credential is always shown redacted.
type EndpointRenderer struct {
	out io.Writer
}

// NewEndpointRenderer creates a new endpoint renderer
func NewEndpointRenderer(out io.Writer) *EndpointRenderer {
	return &EndpointRenderer{out: out}
}

// Render renders the endpoint with the source of each field
func (r *EndpointRenderer) Render(result *usecase.ResolveEndpointResult) error {
	ep := result.Endpoint

	fmt.Fprintf(r.out, "%s %s\n\n", labelColor.Sprint("Subnet:"), ep.SubnetName)

	t := newTable(r.out)
	t.AppendHeader(table.Row{"FIELD", "VALUE", "SOURCE"})
	t.AppendRow(table.Row{"RPC URL", orMissing(ep.RPCURL, "(not found)"), sourceLabel(ep.RPCSource)})
	credential := ""
	if ep.Credential != nil {
		credential = ep.Credential.String()
	}
	t.AppendRow(table.Row{"Private key", orMissing(credential, "(not found)"), sourceLabel(ep.CredentialSource)})
	t.AppendRow(table.Row{"Address", orMissing(result.Address, "-"), ""})
	t.Render()

	if !ep.HasRPC() || !ep.HasCredential() {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, FormatWarning("endpoint is incomplete; set AVALANCHE_RPC and PRIVATE_KEY or pass --rpc-url and --private-key"))
	}
	return nil
}

func sourceLabel(source domain.EndpointSource) string {
	if source == domain.SourceNone || source == "" {
		return faintColor.Sprint(string(domain.SourceNone))
	}
	return string(source)
}
