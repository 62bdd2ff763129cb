//go:build !unix

package execx

import "os/exec"

// configureProcessGroup keeps the default cancellation, which kills only the direct child
func configureProcessGroup(c *exec.Cmd) {}
