package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/subnetctl/internal/domain"
)

// KeysRenderer renders keystore keys
type KeysRenderer struct {
	out io.Writer
}

// NewKeysRenderer creates a new keys renderer
func NewKeysRenderer(out io.Writer) *KeysRenderer {
	return &KeysRenderer{out: out}
}

// Render renders the key table
func (r *KeysRenderer) Render(keys []domain.KeyInfo) error {
	if len(keys) == 0 {
		fmt.Fprintln(r.out, "No keys found")
		return nil
	}
	t := newTable(r.out)
	t.AppendHeader(table.Row{"NAME", "ADDRESS", "FILE"})
	for _, k := range keys {
		t.AppendRow(table.Row{k.Name, k.Address, faintColor.Sprint(getRelativePath(k.File))})
	}
	t.Render()
	return nil
}
