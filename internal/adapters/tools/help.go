package tools

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxCommandLength excludes prose that happens to start a line in the command list
const maxCommandLength = 20

var (
	commandMarkers = []string{"Available Commands:", "Commands:"}

	// terminators end a command list when they lead a line
	terminators = map[string]bool{"Flags:": true, "Global": true, "Use": true, "Run": true, "Usage:": true}

	stopwords = map[string]bool{"use": true, "run": true, "the": true, "to": true, "but": true, "and": true, "or": true}

	// sentenceIndicators mark tokens that belong to help prose rather than command names
	sentenceIndicators = []string{"available", "usage", "config", "log", "level", "skip", "update", "check"}
)

// ParseHelpCommands extracts the command names listed in CLI help text, in source order.
// Collection starts after a "Commands:" marker and stops at a flags/usage line or at the
// first blank line once at least one command was collected.
func ParseHelpCommands(help string) []string {
	var commands []string
	seen := make(map[string]bool)
	inSection := false

	for _, raw := range strings.Split(help, "\n") {
		line := strings.TrimSpace(raw)

		if !inSection {
			for _, marker := range commandMarkers {
				if strings.Contains(line, marker) {
					inSection = true
					break
				}
			}
			continue
		}

		if line == "" {
			if len(commands) > 0 {
				break
			}
			continue
		}
		if strings.HasPrefix(line, "-") {
			continue
		}

		token := strings.Fields(line)[0]
		if terminators[token] {
			break
		}
		if isCommandToken(token) && !seen[token] {
			seen[token] = true
			commands = append(commands, token)
		}
	}

	return commands
}

func isCommandToken(token string) bool {
	first, _ := utf8.DecodeRuneInString(token)
	if !unicode.IsLower(first) || len(token) >= maxCommandLength || stopwords[token] {
		return false
	}
	lower := strings.ToLower(token)
	for _, word := range sentenceIndicators {
		if strings.Contains(lower, word) {
			return false
		}
	}
	return true
}

// parseVersion takes the version token from the first output line. Leading tool names and
// "version" labels are skipped; a single-token line is returned whole.
func parseVersion(tool, output string) string {
	var line string
	for _, l := range strings.Split(output, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			line = l
			break
		}
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return line
	}
	for _, f := range fields[1:] {
		if strings.EqualFold(strings.TrimSuffix(f, ":"), "version") || strings.EqualFold(f, tool) {
			continue
		}
		return f
	}
	return fields[1]
}
