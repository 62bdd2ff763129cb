package parser

import (
	"slices"
	"strings"
	"unicode"
)

// Section is the table the scanner is currently inside
type Section int

const (
	SectionNone Section = iota
	SectionNetwork
	SectionICM
	SectionToken
	SectionAllocation
	SectionContracts
	SectionRPCURLs
	SectionPrimaryNodes
	SectionL1Nodes
	SectionPrecompiles
	SectionWallet
	SectionOther
)

var sectionNames = map[Section]string{
	SectionNone:         "none",
	SectionNetwork:      "network",
	SectionICM:          "icm",
	SectionToken:        "token",
	SectionAllocation:   "initial-allocation",
	SectionContracts:    "smart-contracts",
	SectionRPCURLs:      "rpc-urls",
	SectionPrimaryNodes: "primary-nodes",
	SectionL1Nodes:      "l1-nodes",
	SectionPrecompiles:  "precompile-configs",
	SectionWallet:       "wallet-connection",
	SectionOther:        "other",
}

func (s Section) String() string {
	if name, ok := sectionNames[s]; ok {
		return name
	}
	return "unknown"
}

// inline sections hold free-form key/value rows and can be interrupted by a network row
func (s Section) inline() bool {
	return s == SectionNone || s == SectionOther || s == SectionNetwork
}

type sectionHeader struct {
	marker  string
	section Section
}

// sectionHeaders are matched as case-insensitive substrings, in order
var sectionHeaders = []sectionHeader{
	{"INITIAL TOKEN ALLOCATION", SectionAllocation},
	{"SMART CONTRACTS", SectionContracts},
	{"RPC URLS", SectionRPCURLs},
	{"PRIMARY NODES", SectionPrimaryNodes},
	{"L1 NODES", SectionL1Nodes},
	{"PRECOMPILE CONFIGS", SectionPrecompiles},
	{"WALLET CONNECTION", SectionWallet},
}

// columnHeaders holds the first cell of each section's own column header row
var columnHeaders = map[Section][]string{
	SectionAllocation:   {"DESCRIPTION"},
	SectionContracts:    {"DESCRIPTION"},
	SectionRPCURLs:      {"LOCATION"},
	SectionPrimaryNodes: {"NAME"},
	SectionL1Nodes:      {"NAME"},
	SectionPrecompiles:  {"PRECOMPILE"},
}

// titleSections are opened by a title row holding exactly this word
var titleSections = map[string]Section{
	"ICM":   SectionICM,
	"TOKEN": SectionToken,
}

// KnownNetworks are the network names that open a per-network block
var KnownNetworks = []string{"Local Network", "Fuji", "Mainnet"}

// Row is one content line of CLI output, tagged with the section it appeared in
type Row struct {
	Section Section
	// Network is set for rows inside a per-network block
	Network string
	// Cells holds the non-empty, trimmed cells of a pipe-delimited line
	Cells []string
	// Line is the trimmed source line
	Line string
}

// Last returns the last cell or ""
func (r Row) Last() string {
	if len(r.Cells) == 0 {
		return ""
	}
	return r.Cells[len(r.Cells)-1]
}

// Cell returns the i-th cell or ""
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r.Cells) {
		return ""
	}
	return r.Cells[i]
}

// scanRows walks text line by line, tracking a single current section, and calls fn for every
// content line. Borders, blank lines, section titles and repeated column headers are consumed here.
func scanRows(text string, fn func(Row)) {
	section := SectionNone
	network := ""

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || isBorder(line) {
			continue
		}

		if s, ok := matchHeader(line); ok {
			section, network = s, ""
			continue
		}

		var cells []string
		if isTableLine(line) {
			cells = SplitRow(line)
			if len(cells) == 0 {
				continue
			}
			if len(cells) == 1 {
				if s, ok := titleSections[strings.ToUpper(cells[0])]; ok {
					section, network = s, ""
					continue
				}
				if isUpperTitle(cells[0]) {
					section, network = SectionOther, ""
					continue
				}
			}
			if isColumnHeader(section, cells) {
				continue
			}
			if section.inline() {
				if name, ok := matchNetwork(cells[0]); ok {
					section, network = SectionNetwork, name
					cells = cells[1:]
				}
			}
		}

		fn(Row{Section: section, Network: network, Cells: cells, Line: line})
	}
}

// SplitRow splits a pipe-delimited table line into its non-empty trimmed cells
func SplitRow(line string) []string {
	line = strings.ReplaceAll(line, "│", "|")
	parts := strings.Split(line, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			cells = append(cells, p)
		}
	}
	return cells
}

func isTableLine(line string) bool {
	return strings.ContainsAny(line, "|│")
}

// isBorder reports whether a line is made only of table drawing characters
func isBorder(line string) bool {
	for _, r := range line {
		if unicode.IsSpace(r) {
			continue
		}
		if !strings.ContainsRune("+-=|:─━│┃┼╋├┤┬┴┌┐└┘╭╮╰╯═║╔╗╚╝╠╣╦╩╬", r) {
			return false
		}
	}
	return true
}

func matchHeader(line string) (Section, bool) {
	upper := strings.ToUpper(line)
	for _, h := range sectionHeaders {
		if strings.Contains(upper, h.marker) {
			return h.section, true
		}
	}
	return SectionNone, false
}

func matchNetwork(cell string) (string, bool) {
	for _, name := range KnownNetworks {
		if strings.EqualFold(cell, name) {
			return name, true
		}
	}
	return "", false
}

// isUpperTitle reports whether s has letters and no lowercase ones
func isUpperTitle(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// isColumnHeader reports whether a row repeats the column header of the current section
func isColumnHeader(section Section, cells []string) bool {
	if len(cells) < 2 || !slices.Contains(columnHeaders[section], cells[0]) {
		return false
	}
	for _, c := range cells {
		if !isUpperTitle(c) {
			return false
		}
	}
	return true
}
