package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/trebuchet-org/subnetctl/internal/domain"
)

// CommandRenderer echoes the output of a passed-through network CLI command
type CommandRenderer struct {
	out    io.Writer
	errOut io.Writer
}

// NewCommandRenderer creates a new command renderer
func NewCommandRenderer(out, errOut io.Writer) *CommandRenderer {
	return &CommandRenderer{out: out, errOut: errOut}
}

// Render writes stdout and stderr unchanged and reports a non-zero exit on errOut
func (r *CommandRenderer) Render(output *domain.CommandOutput) error {
	fmt.Fprint(r.out, output.Stdout)
	if output.Stderr != "" {
		fmt.Fprint(r.errOut, output.Stderr)
		if !strings.HasSuffix(output.Stderr, "\n") {
			fmt.Fprintln(r.errOut)
		}
	}
	if !output.Success() {
		fmt.Fprintln(r.errOut, FormatWarning(fmt.Sprintf("%s exited with status %d", output.Command, output.ExitCode)))
	}
	return nil
}
