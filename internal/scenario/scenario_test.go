package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	m, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []float64{2.00, 1.62, 0.34, 1.15, 2.73}, m.GrowthRates())
	assert.Equal(t, []float64{0.87, 2.27, 3.96, 5.10}, m.WarmingLevels())
	assert.Equal(t, "RCP8.5", m.Warming(3).Name)
	assert.Equal(t, MarkerDiamond, m.Warming(3).Marker)

	g, w := m.Central()
	assert.Equal(t, "SSP2", m.Growth(g).Name)
	assert.Equal(t, "4.5 W m-2", m.Warming(w).Forcing)

	r, gr, b, a := m.Color(0).RGBA()
	assert.Equal(t, uint32(0x1f1f), r)
	assert.Equal(t, uint32(0x7777), gr)
	assert.Equal(t, uint32(0xb4b4), b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestGrowthRatesReturnsCopy(t *testing.T) {
	m, err := Default()
	require.NoError(t, err)

	rates := m.GrowthRates()
	rates[0] = 99

	assert.Equal(t, 2.00, m.Growth(0).Rate)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		edit    func(string) string
		wantMsg string
	}{
		{
			name:    "unknown marker",
			edit:    func(s string) string { return strings.Replace(s, "marker: diamond", "marker: star", 1) },
			wantMsg: `unknown marker "star"`,
		},
		{
			name:    "bad colour",
			edit:    func(s string) string { return strings.Replace(s, `"#9467bd"`, `"purple"`, 1) },
			wantMsg: "SSP5 colour",
		},
		{
			name:    "scenario out of order",
			edit:    func(s string) string { return strings.Replace(s, "name: SSP1", "name: SSP0", 1) },
			wantMsg: `growth scenario 1 is "SSP0"`,
		},
		{
			name:    "central pair missing",
			edit:    func(s string) string { return strings.Replace(s, "growth: SSP2", "growth: SSP7", 1) },
			wantMsg: "central scenario SSP7",
		},
		{
			name: "missing warming entry",
			edit: func(s string) string {
				i := strings.Index(s, "  - forcing: 8.5")
				j := strings.Index(s, "central:")
				return s[:i] + "\n" + s[j:]
			},
			wantMsg: "want 4 warming scenarios, got 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.edit(string(defaultYAML))))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("growth: [unterminated"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	edited := strings.Replace(string(defaultYAML), "level: 0.87", "level: 0.9", 1)
	require.NoError(t, os.WriteFile(path, []byte(edited), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.9, m.Warming(0).Level)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
