package progress

import (
	"context"

	"github.com/trebuchet-org/subnetctl/internal/usecase"
)

// NopSink discards progress; used for structured output and non-interactive runs
type NopSink struct{}

// NewNopSink creates a new no-op progress sink
func NewNopSink() usecase.ProgressSink {
	return &NopSink{}
}

func (n *NopSink) OnProgress(context.Context, usecase.ProgressEvent) {}
func (n *NopSink) Info(string)                                       {}
func (n *NopSink) Error(string)                                      {}

var _ usecase.ProgressSink = (*NopSink)(nil)
