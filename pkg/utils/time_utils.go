// utils/time_utils.go
package utils

import (
	"fmt"
	"time"
)

const (
	TimestampLayout = "2006-01-02 15:04:05"
	ClockLayout     = "15:04"
)

// Stored visit timestamps sort lexicographically in this layout.
func FormatTimestamp(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(TimestampLayout)
}

func FormatClock(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(ClockLayout)
}

// WeekdayIndex numbers days from Monday=0 to Sunday=6 in loc.
func WeekdayIndex(t time.Time, loc *time.Location) int {
	return (int(t.In(loc).Weekday()) + 6) % 7
}

// FormatDuration renders seconds as H:MM:SS, prefixed by "N day(s), " past 24h.
func FormatDuration(seconds int) string {
	days := seconds / 86400
	rest := seconds % 86400
	clock := fmt.Sprintf("%d:%02d:%02d", rest/3600, rest%3600/60, rest%60)
	switch {
	case days == 1:
		return "1 day, " + clock
	case days > 1:
		return fmt.Sprintf("%d days, %s", days, clock)
	}
	return clock
}

func FormatKilometers(meters int) string {
	return fmt.Sprintf("%.2f km", float64(meters)/1000)
}
