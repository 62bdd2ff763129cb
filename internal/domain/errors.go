package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrToolUnavailable is returned when an external CLI is missing or cannot be invoked
	ErrToolUnavailable = errors.New("tool unavailable")

	// ErrTimeout is returned when an external command exceeds its deadline
	ErrTimeout = errors.New("command timed out")

	// ErrInvalidPrivateKey is returned when a key is not 64 hex characters or not a valid secp256k1 key
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrMissingEndpoint is returned when a deploy cannot proceed without an RPC URL or credential
	ErrMissingEndpoint = errors.New("endpoint not resolved")

	// ErrNoAddresses is returned when a deploy run yielded no contract addresses
	ErrNoAddresses = errors.New("no contract addresses extracted")
)

// DeployStage names the step of a deploy workflow that failed
type DeployStage string

const (
	StageBuild  DeployStage = "build"
	StageDeploy DeployStage = "deploy"
)

// DeployError carries the captured output of a failed build or deploy
type DeployError struct {
	Stage    DeployStage
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *DeployError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s failed", e.Stage)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	} else {
		fmt.Fprintf(&b, ": exit code %d", e.ExitCode)
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		fmt.Fprintf(&b, "\n%s", stderr)
	}
	return b.String()
}

func (e *DeployError) Unwrap() error {
	return e.Err
}
