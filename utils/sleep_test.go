package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestComputeSleepMinutesOvernight(t *testing.T) {
	got := ComputeSleepMinutes(strPtr("23:30"), strPtr("06:15"), nil)
	require.NotNil(t, got)
	assert.Equal(t, 405, *got)
}

func TestComputeSleepMinutesSameSide(t *testing.T) {
	got := ComputeSleepMinutes(strPtr("01:00"), strPtr("09:00"), nil)
	require.NotNil(t, got)
	assert.Equal(t, 480, *got)
}

func TestComputeSleepMinutesExplicitWins(t *testing.T) {
	got := ComputeSleepMinutes(strPtr("23:30"), strPtr("06:15"), intPtr(300))
	require.NotNil(t, got)
	assert.Equal(t, 300, *got)

	// explicit wins even without clocks
	got = ComputeSleepMinutes(nil, nil, intPtr(0))
	require.NotNil(t, got)
	assert.Equal(t, 0, *got)
}

func TestComputeSleepMinutesUnknown(t *testing.T) {
	assert.Nil(t, ComputeSleepMinutes(nil, nil, nil))
	assert.Nil(t, ComputeSleepMinutes(strPtr("23:00"), nil, nil))
	assert.Nil(t, ComputeSleepMinutes(nil, strPtr("07:00"), nil))
	assert.Nil(t, ComputeSleepMinutes(strPtr("bogus"), strPtr("07:00"), nil))
}

func TestComputeSleepMinutesWakeEqualsBed(t *testing.T) {
	// read as a full day of sleep, not zero
	got := ComputeSleepMinutes(strPtr("22:00"), strPtr("22:00"), nil)
	require.NotNil(t, got)
	assert.Equal(t, 1440, *got)
}
