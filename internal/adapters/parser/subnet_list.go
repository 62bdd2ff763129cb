package parser

import (
	"strings"

	"github.com/trebuchet-org/subnetctl/internal/domain"
)

// ParseSubnetList reads a NAME | STATUS table. Rows before the header are ignored and a row
// without a status column is reported as "unknown".
func ParseSubnetList(output string) []domain.SubnetSummary {
	subnets := []domain.SubnetSummary{}
	nameCol, statusCol := -1, -1

	for _, raw := range strings.Split(output, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || isBorder(line) {
			continue
		}

		var cells []string
		if isTableLine(line) {
			cells = SplitRow(line)
		} else {
			cells = strings.Fields(line)
		}
		if len(cells) == 0 {
			continue
		}

		if nameCol < 0 {
			nameCol, statusCol = listHeader(cells)
			continue
		}
		if repeated, _ := listHeader(cells); repeated >= 0 {
			continue
		}

		name := cellAt(cells, nameCol)
		if name == "" {
			continue
		}
		status := cellAt(cells, statusCol)
		if status == "" {
			status = "unknown"
		}
		subnets = append(subnets, domain.SubnetSummary{Name: name, Status: status})
	}
	return subnets
}

// listHeader returns the NAME and STATUS column positions, or -1 when cells is not the header
func listHeader(cells []string) (int, int) {
	name, status := -1, -1
	for i, c := range cells {
		switch strings.ToUpper(c) {
		case "NAME", "SUBNET", "BLOCKCHAIN":
			if name < 0 {
				name = i
			}
		case "STATUS":
			status = i
		}
	}
	if name < 0 || status < 0 {
		return -1, -1
	}
	return name, status
}

func cellAt(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}
