package parser

import (
	"strings"

	"github.com/trebuchet-org/subnetctl/internal/domain"
)

// ParseSubnetDescribe converts the legacy "subnet describe" output into a SubnetDescribeRecord.
// Values are taken from the last cell of a row since older releases pad rows with extra columns.
func ParseSubnetDescribe(output string) *domain.SubnetDescribeRecord {
	rec := domain.NewSubnetDescribeRecord()

	scanRows(output, func(row Row) {
		if row.Section == SectionNetwork {
			ensureNetwork(rec.Networks, row.Network)
		}
		if len(row.Cells) < 2 {
			return
		}
		if applyICMRow(&rec.ICM, row) {
			return
		}

		label := row.Cells[0]
		if field, ok := fieldLabel(label); ok && row.Section != SectionToken {
			setGeneralField(field, row.Last(), &rec.Name, &rec.VMID, &rec.VMVersion, &rec.Validation)
			return
		}
		switch {
		case strings.HasPrefix(label, "Token "):
			rec.Token[snakeKey(strings.TrimPrefix(label, "Token "))] = row.Last()
			return
		}

		switch row.Section {
		case SectionNetwork:
			ensureNetwork(rec.Networks, row.Network)[label] = row.Last()
		case SectionToken:
			rec.Token[snakeKey(label)] = row.Last()
		}
	})

	return rec
}
