package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Inputs
		want Inputs
	}{
		{
			name: "in range untouched",
			in:   Inputs{RiskPerTrade: 0.02, WinRate: 0.6, AvgR: 2, VolLevel: VolHigh, Paths: 1000},
			want: Inputs{RiskPerTrade: 0.02, WinRate: 0.6, AvgR: 2, VolLevel: VolHigh, Paths: 1000},
		},
		{
			name: "below range",
			in:   Inputs{RiskPerTrade: 0, WinRate: 0, AvgR: 0, VolLevel: VolLow, Paths: -3},
			want: Inputs{RiskPerTrade: MinRiskPerTrade, WinRate: MinWinRate, AvgR: MinAvgR, VolLevel: VolLow, Paths: MinPaths},
		},
		{
			name: "above range",
			in:   Inputs{RiskPerTrade: 1, WinRate: 1, AvgR: 50, VolLevel: VolLow, Paths: 1e6},
			want: Inputs{RiskPerTrade: MaxRiskPerTrade, WinRate: MaxWinRate, AvgR: MaxAvgR, VolLevel: VolLow, Paths: MaxPaths},
		},
		{
			name: "nan takes defaults",
			in:   Inputs{RiskPerTrade: math.NaN(), WinRate: math.NaN(), AvgR: math.NaN(), VolLevel: VolMed, Paths: 500},
			want: Inputs{RiskPerTrade: DefaultRiskPerTrade, WinRate: DefaultWinRate, AvgR: DefaultAvgR, VolLevel: VolMed, Paths: 500},
		},
		{
			name: "infinities clamp",
			in:   Inputs{RiskPerTrade: math.Inf(1), WinRate: math.Inf(-1), AvgR: math.Inf(1), VolLevel: VolMed, Paths: 500},
			want: Inputs{RiskPerTrade: MaxRiskPerTrade, WinRate: MinWinRate, AvgR: MaxAvgR, VolLevel: VolMed, Paths: 500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.in.Clamp())
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Inputs{VolLevel: VolExtreme}.Validate())
	assert.ErrorIs(t, Inputs{}.Validate(), ErrUnknownVolLevel)
	assert.ErrorIs(t, Inputs{VolLevel: 9}.Validate(), ErrUnknownVolLevel)
}
