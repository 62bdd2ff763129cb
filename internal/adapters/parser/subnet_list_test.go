package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/subnetctl/internal/domain"
)

func TestParseSubnetList(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []domain.SubnetSummary
	}{
		{
			name: "pipe table",
			output: `+------------------+----------+
| NAME             | STATUS   |
+------------------+----------+
| ChaosStarNetwork | Deployed |
| Orion            | Created  |
+------------------+----------+`,
			want: []domain.SubnetSummary{
				{Name: "ChaosStarNetwork", Status: "Deployed"},
				{Name: "Orion", Status: "Created"},
			},
		},
		{
			name: "columns in other order",
			output: `| STATUS | VM     | NAME  |
| Live   | subnet | Vega  |`,
			want: []domain.SubnetSummary{{Name: "Vega", Status: "Live"}},
		},
		{
			name: "missing status cell",
			output: `NAME STATUS
Lyra`,
			want: []domain.SubnetSummary{{Name: "Lyra", Status: "unknown"}},
		},
		{
			name: "upper-case names and repeated header",
			output: `| NAME   | STATUS   |
| ORION  | DEPLOYED |
| NAME   | STATUS   |
| VEGA   | CREATED  |`,
			want: []domain.SubnetSummary{
				{Name: "ORION", Status: "DEPLOYED"},
				{Name: "VEGA", Status: "CREATED"},
			},
		},
		{
			name:   "no header",
			output: "| Orion | Created |",
			want:   []domain.SubnetSummary{},
		},
		{
			name:   "empty",
			output: "",
			want:   []domain.SubnetSummary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSubnetList(tt.output))
		})
	}
}
