package parser

import (
	"strings"

	"github.com/trebuchet-org/subnetctl/internal/domain"
)

// fieldLabels are the general info rows of a describe table, longest first so that a label is
// never claimed by a shorter one sharing its prefix
var fieldLabels = []string{"VM Version", "Validation", "VM ID", "VMID", "Name"}

// ParseBlockchainDescribe converts "blockchain describe" output into a DescribeRecord.
// It never fails: unrecognized lines are ignored and unseen fields keep their zero values.
func ParseBlockchainDescribe(output string) *domain.DescribeRecord {
	rec := domain.NewDescribeRecord()

	scanRows(output, func(row Row) {
		if row.Section == SectionNetwork {
			ensureNetwork(rec.Networks, row.Network)
		}
		if len(row.Cells) == 0 {
			return
		}
		if applyICMRow(&rec.ICM, row) {
			return
		}

		switch row.Section {
		case SectionNone, SectionOther, SectionNetwork:
			if label, value, ok := matchField(row.Cells); ok {
				setGeneralField(label, value, &rec.Name, &rec.VMID, &rec.VMVersion, &rec.Validation)
				return
			}
			if row.Section == SectionNetwork {
				addNetworkRow(rec.Networks, row)
			}

		case SectionICM:
			// rows without a messenger/registry label carry nothing we keep

		case SectionToken:
			if len(row.Cells) >= 2 {
				rec.Token[snakeKey(row.Cells[0])] = row.Cells[1]
			}

		case SectionAllocation:
			// continuation rows without an address only carry wrapped key material
			for i, cell := range row.Cells {
				if i > 0 && addressPattern.MatchString(cell) {
					rec.InitialAllocation = append(rec.InitialAllocation, domain.AllocationEntry{
						Description: row.Cells[0],
						Address:     addressPattern.FindString(cell),
						Amount:      row.Cell(i + 1),
					})
					break
				}
			}

		case SectionRPCURLs:
			addRPCRow(rec.RPCURLs, row)

		case SectionPrimaryNodes:
			if node, ok := nodeFromRow(row); ok {
				rec.PrimaryNodes = append(rec.PrimaryNodes, node)
			}

		case SectionL1Nodes:
			if node, ok := nodeFromRow(row); ok {
				rec.L1Nodes = append(rec.L1Nodes, node)
			}

		case SectionPrecompiles:
			if len(row.Cells) >= 4 {
				rec.PrecompileConfigs[row.Cells[0]] = domain.PrecompileConfig{
					AdminAddresses:   notApplicable(row.Cells[1]),
					ManagerAddresses: notApplicable(row.Cells[2]),
					EnabledAddresses: notApplicable(row.Cells[3]),
				}
			}

		case SectionWallet:
			if len(row.Cells) >= 2 {
				rec.WalletConnection[snakeKey(row.Cells[0])] = row.Cells[1]
			}
		}
	})

	return rec
}

// matchField finds a general info label anywhere in the row and returns the cell after it
func matchField(cells []string) (label, value string, ok bool) {
	for i, cell := range cells {
		if l, ok := fieldLabel(cell); ok {
			if i+1 < len(cells) {
				return l, cells[i+1], true
			}
			return l, "", true
		}
	}
	return "", "", false
}

// fieldLabel reports which general info label a cell carries. Label text varies between releases
// ("Name", "Name:", "VM ID:"), so the label only has to start the cell, case-insensitively, and
// end at a word boundary.
func fieldLabel(cell string) (string, bool) {
	lower := strings.ToLower(cell)
	for _, l := range fieldLabels {
		rest, ok := strings.CutPrefix(lower, strings.ToLower(l))
		if !ok {
			continue
		}
		if rest == "" || !isWordByte(rest[0]) {
			if l == "VMID" {
				return "VM ID", true
			}
			return l, true
		}
	}
	return "", false
}

func isWordByte(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('0' <= b && b <= '9')
}

func setGeneralField(label, value string, name, vmID, vmVersion, validation *string) {
	switch label {
	case "Name":
		*name = value
	case "VM ID":
		*vmID = value
	case "VM Version":
		*vmVersion = value
	case "Validation":
		*validation = value
	}
}

func ensureNetwork(networks map[string]map[string]string, name string) map[string]string {
	fields, ok := networks[name]
	if !ok {
		fields = make(map[string]string)
		networks[name] = fields
	}
	return fields
}

func addNetworkRow(networks map[string]map[string]string, row Row) {
	if len(row.Cells) >= 2 {
		ensureNetwork(networks, row.Network)[row.Cells[0]] = row.Cells[1]
	}
}

// applyICMRow records messenger/registry rows wherever they appear
func applyICMRow(icm *domain.ICMInfo, row Row) bool {
	if len(row.Cells) < 2 {
		return false
	}
	for _, cell := range row.Cells[:len(row.Cells)-1] {
		lower := strings.ToLower(cell)
		if !strings.Contains(lower, "icm") && row.Section != SectionICM {
			continue
		}
		switch {
		case strings.Contains(lower, "messenger"):
			icm.MessengerAddress = row.Last()
			return true
		case strings.Contains(lower, "registry"):
			icm.RegistryAddress = row.Last()
			return true
		}
	}
	return false
}

func addRPCRow(urls map[string]string, row Row) {
	if len(row.Cells) < 2 {
		return
	}
	for _, cell := range row.Cells[1:] {
		if strings.Contains(strings.ToLower(cell), "http") {
			urls[strings.ToLower(row.Cells[0])] = cell
			return
		}
	}
}

func nodeFromRow(row Row) (domain.NodeInfo, bool) {
	if len(row.Cells) < 3 {
		return domain.NodeInfo{}, false
	}
	return domain.NodeInfo{Name: row.Cells[0], NodeID: row.Cells[1], Endpoint: row.Cells[2]}, true
}

func notApplicable(cell string) string {
	if strings.EqualFold(cell, "n/a") {
		return ""
	}
	return cell
}

// snakeKey lowercases a label and joins its words with underscores
func snakeKey(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), "_")
}
