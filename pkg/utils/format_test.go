package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0 mins"},
		{time.Minute, "1 min"},
		{30 * time.Minute, "30 mins"},
		{time.Hour, "1 hour"},
		{65 * time.Minute, "1 hour 5 mins"},
		{2*time.Hour + time.Minute, "2 hours 1 min"},
		{90 * time.Minute, "1 hour 30 mins"},
		{-5 * time.Minute, "0 mins"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FormatDuration(tc.in), "duration %s", tc.in)
	}
}

func TestFormatClock(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	require.Equal(t, "02:00 PM", FormatClock(time.Date(2026, 9, 12, 14, 0, 0, 0, ist)))
	require.Equal(t, "11:00 AM", FormatClock(time.Date(2026, 9, 12, 11, 0, 0, 0, ist)))
}

func TestNormalizeIATA(t *testing.T) {
	require.Equal(t, "AI505", NormalizeIATA(" ai505 "))
	require.Equal(t, "BLR", NormalizeIATA("blr"))
	require.Equal(t, "", NormalizeIATA("   "))
}
