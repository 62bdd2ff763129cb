//go:build unix

package execx

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/subnetctl/internal/domain"
	"github.com/trebuchet-org/subnetctl/internal/metrics"
)

func newTestRunner() *Runner {
	return NewRunner(slog.New(slog.NewTextHandler(io.Discard, nil)), metrics.NewMetrics())
}

func TestRunner_CapturesOutput(t *testing.T) {
	r := newTestRunner()

	res, err := r.Run(context.Background(), Command{
		Name:    "sh",
		Args:    []string{"-c", "echo out; echo err >&2; exit 3"},
		Timeout: 5 * time.Second,
	})

	require.NoError(t, err)
	assert.Equal(t, "out\n", res.Stdout)
	assert.Equal(t, "err\n", res.Stderr)
	assert.Equal(t, 3, res.ExitCode)
	assert.False(t, res.Success())
}

func TestRunner_DirAndEnv(t *testing.T) {
	r := newTestRunner()
	dir := t.TempDir()

	res, err := r.Run(context.Background(), Command{
		Name:    "sh",
		Args:    []string{"-c", "pwd; echo $SUBNETCTL_TEST_VALUE"},
		Dir:     dir,
		Env:     []string{"SUBNETCTL_TEST_VALUE=hello"},
		Timeout: 5 * time.Second,
	})

	require.NoError(t, err)
	require.True(t, res.Success())
	lines := strings.Split(strings.TrimSpace(res.Stdout), "\n")
	require.Len(t, lines, 2)
	resolved, _ := filepath.EvalSymlinks(dir)
	assert.Contains(t, []string{dir, resolved}, lines[0])
	assert.Equal(t, "hello", lines[1])
}

func TestRunner_MissingBinary(t *testing.T) {
	r := newTestRunner()

	res, err := r.Run(context.Background(), Command{Name: "subnetctl-definitely-missing-binary"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrToolUnavailable)
	assert.Equal(t, -1, res.ExitCode)
}

func TestRunner_TimeoutKillsProcessGroup(t *testing.T) {
	r := newTestRunner()
	pidFile := filepath.Join(t.TempDir(), "child.pid")

	start := time.Now()
	res, err := r.Run(context.Background(), Command{
		Name:    "sh",
		Args:    []string{"-c", "sleep 30 & echo $! > " + pidFile + "; wait"},
		Timeout: 300 * time.Millisecond,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTimeout)
	assert.Less(t, time.Since(start), 10*time.Second)
	assert.Equal(t, -1, res.ExitCode)

	// the backgrounded grandchild must be gone as well
	data, readErr := os.ReadFile(pidFile)
	require.NoError(t, readErr)
	pid := strings.TrimSpace(string(data))
	require.NotEmpty(t, pid)

	assert.Eventually(t, func() bool {
		_, statErr := os.Stat(filepath.Join("/proc", pid))
		if os.IsNotExist(statErr) {
			return true
		}
		// a killed but unreaped child shows up as a zombie
		status, _ := os.ReadFile(filepath.Join("/proc", pid, "status"))
		return strings.Contains(string(status), "zombie") || len(status) == 0
	}, 5*time.Second, 50*time.Millisecond)
}

func TestRunner_ParentCancellation(t *testing.T) {
	r := newTestRunner()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, Command{Name: "sh", Args: []string{"-c", "sleep 5"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
