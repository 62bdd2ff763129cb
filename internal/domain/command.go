package domain

import "time"

// CommandOutput is the captured result of a passthrough invocation of an external CLI
type CommandOutput struct {
	Command  string        `json:"command" yaml:"command"`
	Stdout   string        `json:"stdout" yaml:"stdout"`
	Stderr   string        `json:"stderr,omitempty" yaml:"stderr,omitempty"`
	ExitCode int           `json:"exitCode" yaml:"exitCode"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Success reports whether the command exited with code 0
func (o *CommandOutput) Success() bool {
	return o != nil && o.ExitCode == 0
}

// ScriptRun describes one broadcast run of the deploy script
type ScriptRun struct {
	Script     string
	RPCURL     string
	Credential *Credential
	ExtraArgs  []string
}
