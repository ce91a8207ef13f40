package training

import (
	"fmt"
	"math"
	"strings"
)

// ParseTimeToMinutes converts an "HH:MM" logbook duration to minutes.
// It never fails: a missing colon or an unparsable segment counts as zero.
func ParseTimeToMinutes(s string) int {
	if s == "" || !strings.Contains(s, ":") {
		return 0
	}
	parts := strings.Split(s, ":")
	return leadingInt(parts[0])*60 + leadingInt(parts[1])
}

// leadingInt reads the unsigned integer prefix of s after leading blanks.
// Signs and non-digit prefixes yield 0.
func leadingInt(s string) int {
	s = strings.TrimLeft(s, " \t")
	s = strings.TrimPrefix(s, "+")
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		if n > math.MaxInt32 {
			return 0
		}
	}
	return n
}

// FormatMinutesToHHMM renders minutes as zero-padded "HH:MM".
// Hours are floored and the remaining minutes rounded, so a remainder of
// 59.5 or more shows as "60".
func FormatMinutesToHHMM(totalMinutes float64) string {
	if math.IsNaN(totalMinutes) {
		return "00:00"
	}
	hours := math.Floor(totalMinutes / 60)
	minutes := math.Round(math.Mod(totalMinutes, 60))
	return fmt.Sprintf("%02d:%02d", int(hours), int(minutes))
}
