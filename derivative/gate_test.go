package derivative

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatePolicy_Pass(t *testing.T) {
	tests := []struct {
		name       string
		gate       GatePolicy
		dr, dg, db int
		threshold  uint8
		want       bool
	}{
		{"red above threshold", GateRed, 31, 0, 0, 30, true},
		{"red at threshold", GateRed, 30, 255, 255, 30, false},
		{"red ignores other channels", GateRed, 10, 50, 50, 30, false},
		{"any channel green", GateAnyChannel, 10, 50, 0, 30, true},
		{"any channel blue", GateAnyChannel, 0, 0, 31, 30, true},
		{"any channel none", GateAnyChannel, 30, 30, 30, 30, false},
		{"luminance above", GateLuminance, 10, 50, 50, 30, true},
		{"luminance below", GateLuminance, 0, 0, 255, 30, false},
		{"zero threshold passes any change", GateRed, 1, 0, 0, 0, true},
		{"zero threshold blocks no change", GateRed, 0, 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.gate.Pass(tt.dr, tt.dg, tt.db, tt.threshold))
		})
	}
}

func TestGatePolicy_StringRoundTrip(t *testing.T) {
	for _, g := range []GatePolicy{GateRed, GateAnyChannel, GateLuminance} {
		parsed, err := ParseGatePolicy(g.String())
		require.NoError(t, err)
		assert.Equal(t, g, parsed)
		assert.True(t, g.Valid())
	}

	assert.Equal(t, "GatePolicy(7)", GatePolicy(7).String())
	assert.False(t, GatePolicy(7).Valid())

	_, err := ParseGatePolicy("blue")
	assert.ErrorIs(t, err, ErrUnknownGate)
}
