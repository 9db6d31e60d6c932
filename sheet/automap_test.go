package sheet

import (
	"testing"

	"github.com/etnz/fifo"
	"github.com/google/go-cmp/cmp"
)

func TestAutoMap(t *testing.T) {
	testCases := []struct {
		name    string
		headers []string
		want    fifo.Mapping
	}{
		{
			name:    "back office export",
			headers: []string{"Trade Date", "Value Date", "B/S", "Nominal 0", "Nominal 1", "TRN.NB", "CNT.NB", "PCK.NB"},
			want: fifo.Mapping{
				fifo.RoleDate: 1, fifo.RoleDirection: 2, fifo.RoleNominal: 3,
				fifo.RoleTRN: 5, fifo.RoleCNC: 6, fifo.RolePCK: 7,
			},
		},
		{
			name:    "plain names",
			headers: []string{"date", "Direction", "Quantity", "TRN", "CNC", "PCK"},
			want: fifo.Mapping{
				fifo.RoleDate: 0, fifo.RoleDirection: 1, fifo.RoleNominal: 2,
				fifo.RoleTRN: 3, fifo.RoleCNC: 4, fifo.RolePCK: 5,
			},
		},
		{
			name:    "generic names",
			headers: []string{"Side", "Notional", "Transaction Id", "Contract", "Package", "Timestamp"},
			want: fifo.Mapping{
				fifo.RoleDate: 5, fifo.RoleDirection: 0, fifo.RoleNominal: 1,
				fifo.RoleTRN: 2, fifo.RoleCNC: 3, fifo.RolePCK: 4,
			},
		},
		{
			name:    "unknown headers",
			headers: []string{"foo", "bar"},
			want:    fifo.Mapping{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := AutoMap(tc.headers)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("AutoMap(%q) mismatch (-want +got):\n%s", tc.headers, diff)
			}
		})
	}
}
