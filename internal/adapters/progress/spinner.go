package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

// SpinnerProgressReporter renders progress events as a single spinner line listing every stage
// seen so far: "✓ build (1.2s) → ● deploy (3s)"
type SpinnerProgressReporter struct {
	mu      sync.Mutex
	out     io.Writer
	spinner *spinner.Spinner
	stages  []stageInfo
}

type stageInfo struct {
	Stage     string
	StartTime time.Time
	EndTime   time.Time
	Message   string
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter on stderr
func NewSpinnerProgressReporter() *SpinnerProgressReporter {
	return NewSpinnerProgressReporterTo(os.Stderr)
}

// NewSpinnerProgressReporterTo creates a spinner-based progress reporter writing to out
func NewSpinnerProgressReporterTo(out io.Writer) *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		out:     out,
		spinner: s,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(_ context.Context, event usecase.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.Stage != "" && (len(r.stages) == 0 || r.stages[len(r.stages)-1].Stage != event.Stage) {
		r.completeCurrentStage()
		r.stages = append(r.stages, stageInfo{Stage: event.Stage, StartTime: time.Now()})
	}
	if len(r.stages) > 0 {
		r.stages[len(r.stages)-1].Message = event.Message
	}

	if event.Spinner {
		r.spinner.Suffix = " " + r.display()
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		return
	}

	r.completeCurrentStage()
	if r.spinner.Active() {
		r.spinner.Stop()
	}
	if event.Message != "" {
		fmt.Fprintln(r.out, r.display())
	}
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.printAround(color.New(color.FgCyan), message)
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.printAround(color.New(color.FgRed), message)
}

// Stages returns the names of the stages seen so far
func (r *SpinnerProgressReporter) Stages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.stages))
	for i, s := range r.stages {
		names[i] = s.Stage
	}
	return names
}

// printAround pauses the spinner so the message lands on its own line
func (r *SpinnerProgressReporter) printAround(c *color.Color, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	_, _ = c.Fprintln(r.out, message)
	if wasActive {
		r.spinner.Start()
	}
}

// completeCurrentStage marks the current stage as completed
func (r *SpinnerProgressReporter) completeCurrentStage() {
	if len(r.stages) > 0 {
		idx := len(r.stages) - 1
		if r.stages[idx].EndTime.IsZero() {
			r.stages[idx].EndTime = time.Now()
		}
	}
}

func (r *SpinnerProgressReporter) display() string {
	parts := make([]string, 0, len(r.stages))
	for i, stage := range r.stages {
		var icon string
		var stageColor *color.Color
		var duration string

		if stage.EndTime.IsZero() {
			icon = "●"
			stageColor = color.New(color.FgYellow)
			duration = fmt.Sprintf(" (%s)", time.Since(stage.StartTime).Round(time.Second))
		} else {
			icon = "✓"
			stageColor = color.New(color.FgGreen)
			duration = fmt.Sprintf(" (%s)", stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond))
		}

		part := fmt.Sprintf("%s %s%s", icon, stageColor.Sprint(stage.Stage), duration)
		if i == len(r.stages)-1 && stage.Message != "" {
			part += " " + stage.Message
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " → ")
}

var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
