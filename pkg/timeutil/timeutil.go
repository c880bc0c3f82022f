package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// Field ranges for the HH:MM:SS selectors.
const (
	HourMax   = 23
	MinuteMax = 59
	SecondMax = 59
)

// FormatTime formats whole seconds as HH:MM:SS (e.g. 00:01:30, 01:11:22).
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, mins, secs)
}

// CombineHMS combines hour/minute/second selector values into total seconds.
func CombineHMS(h, m, s int) int {
	return h*3600 + m*60 + s
}

// SplitHMS splits total seconds back into hour/minute/second selector values.
func SplitHMS(total int) (h, m, s int) {
	if total < 0 {
		total = 0
	}
	return total / 3600, (total % 3600) / 60, total % 60
}

// CoerceField resolves manual text entry for a single time selector field.
// Non-numeric text, negative values, and values above max all resolve to 0;
// a bad edit is indistinguishable from an intentional 0.
func CoerceField(text string, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 0 || n > max {
		return 0
	}
	return n
}

// ParseTimeToSeconds parses a time string in HH:MM:SS, MM:SS, or raw seconds format.
// Uses colon count: 2 colons = H:M:S, 1 colon = M:S, 0 colons = raw seconds.
func ParseTimeToSeconds(timeStr string) (int, error) {
	colons := strings.Count(timeStr, ":")

	switch colons {
	case 2:
		var hours, minutes, seconds int
		if n, err := fmt.Sscanf(timeStr, "%d:%d:%d", &hours, &minutes, &seconds); n == 3 && err == nil {
			return CombineHMS(hours, minutes, seconds), nil
		}
	case 1:
		var minutes, seconds int
		if n, err := fmt.Sscanf(timeStr, "%d:%d", &minutes, &seconds); n == 2 && err == nil {
			return minutes*60 + seconds, nil
		}
	case 0:
		var secs int
		if n, err := fmt.Sscanf(timeStr, "%d", &secs); n == 1 && err == nil {
			return secs, nil
		}
	}

	return 0, fmt.Errorf("expected HH:MM:SS, MM:SS, or seconds, got '%s'", timeStr)
}
