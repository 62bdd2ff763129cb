package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/trebuchet-org/subnetctl/internal/domain"
)

var firstNumber = regexp.MustCompile(`\d+`)

// ParseNetworkStatus converts "network status" output into a NetworkStatus
func ParseNetworkStatus(output string) *domain.NetworkStatus {
	status := domain.NewNetworkStatus()

	scanRows(output, func(row Row) {
		line := row.Line
		lower := strings.ToLower(line)

		switch {
		case strings.Contains(line, "Network is Up"):
			status.IsUp = true
		case strings.Contains(line, "Number of Nodes:"):
			status.Nodes = parseCount(line)
		case strings.Contains(line, "Number of Custom VMs:"):
			status.CustomVMs = parseCount(line)
		case strings.Contains(line, "Custom VMs Healthy:"):
			status.CustomVMsHealthy = strings.Contains(lower, "true")
		case strings.Contains(line, "Network Healthy:"):
			status.NetworkHealthy = strings.Contains(lower, "true")
		}

		if len(row.Cells) == 0 {
			return
		}

		if strings.Contains(lower, "nodeid-") {
			if node, ok := nodeFromRow(row); ok {
				if row.Section == SectionL1Nodes {
					status.L1Nodes = append(status.L1Nodes, node)
				} else {
					status.PrimaryNodes = append(status.PrimaryNodes, node)
				}
			}
			return
		}

		if row.Section == SectionRPCURLs {
			addRPCRow(status.RPCURLs, row)
			return
		}
		if strings.Contains(lower, "localhost") && strings.Contains(lower, "http") {
			status.RPCURLs["localhost"] = row.Last()
		}
	})

	return status
}

func parseCount(line string) int {
	n, err := strconv.Atoi(firstNumber.FindString(line))
	if err != nil {
		return 0
	}
	return n
}
