package phase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFillOpacity(t *testing.T) {
	require.InDelta(t, 0.05, FillOpacity(0), 1e-15)
	require.InDelta(t, 1, FillOpacity(1), 1e-15)
	require.InDelta(t, 0.525, FillOpacity(0.5), 1e-15)
	require.InDelta(t, 1, FillOpacity(3), 1e-15)
	require.InDelta(t, 0.05, FillOpacity(-1), 1e-15)
}

func TestDuty(t *testing.T) {
	require.Equal(t, uint32(2047), Duty(1, DefaultDutyBits))
	require.Equal(t, uint32(127), Duty(0.5, 8))
	require.Equal(t, uint32(0), Duty(-0.2, 8))
	require.Equal(t, uint32(255), Duty(7, 8))
	require.Equal(t, uint32(0x3FFFFFFF), Duty(1, 30))
	require.Equal(t, uint32(0xFFFFFFFF), Duty(1, 31))
	require.Equal(t, uint32(0xFFFFFFFF), Duty(1, 32))
	require.Equal(t, uint32(0xFFFFFFFF), Duty(1, 40))
	require.Equal(t, uint32(0), Duty(1, 0))
}
