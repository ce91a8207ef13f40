package training

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"01:30", 90},
		{"00:00", 0},
		{"", 0},
		{"garbage", 0},
		{"1:5", 65},
		{"10:07:59", 607},
		{" 2 : 3 ", 123},
		{"2h:15m", 135},
		{"ab:15", 15},
		{"03:xx", 180},
		{"-1:30", 30},
		{"+1:00", 60},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTimeToMinutes(tt.in), "ParseTimeToMinutes(%q)", tt.in)
	}
}

func TestFormatMinutesToHHMM(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{125, "02:05"},
		{0, "00:00"},
		{300, "05:00"},
		{59, "00:59"},
		{6000, "100:00"},
		{59.6, "00:60"},
		{math.NaN(), "00:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinutesToHHMM(tt.in), "FormatMinutesToHHMM(%v)", tt.in)
	}
}
