package battery

import (
	"fmt"
	"strings"
	"time"
)

const (
	minuteSeconds = 60
	hourSeconds   = 3_600
	daySeconds    = 86_400
)

// FormatDuration renders a duration the way a person reads battery life:
// "10s", "3m", "3h05m", "2d 10h". Minutes are hidden once days are shown,
// and seconds appear only when the duration is under a minute.
func FormatDuration(d time.Duration) string {
	total := int64(d.Seconds())

	seconds := total % daySeconds
	days := total / daySeconds

	hours := seconds / hourSeconds
	seconds %= hourSeconds

	minutes := seconds / minuteSeconds
	seconds %= minuteSeconds

	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%dd", days)
	}
	if hours > 0 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%dh", hours)
	}
	// only show minutes if days are not shown
	if minutes > 0 && days < 1 {
		if b.Len() > 0 && hours < 1 {
			b.WriteString(" ")
		}
		if hours > 0 {
			fmt.Fprintf(&b, "%02dm", minutes)
		} else {
			fmt.Fprintf(&b, "%dm", minutes)
		}
	}
	if days < 1 && hours < 1 && minutes < 1 {
		fmt.Fprintf(&b, "%ds", seconds)
	}
	return b.String()
}
