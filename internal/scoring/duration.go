package scoring

import "fmt"

const (
	msPerSecond = 1_000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
)

// FormatDurationRounded renders ms for display. Half a second or more rounds
// the seconds up, carrying into minutes and hours. Hours are omitted when
// zero: "0:SS", "M:SS" or "H:MM:SS".
func FormatDurationRounded(ms uint32) string {
	hours := ms / msPerHour
	minutes := (ms % msPerHour) / msPerMinute
	seconds := (ms % msPerMinute) / msPerSecond

	if ms%msPerSecond >= 500 {
		seconds++
		if seconds == 60 {
			seconds = 0
			minutes++
			if minutes == 60 {
				minutes = 0
				hours++
			}
		}
	}

	switch {
	case hours > 0:
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%d:%02d", minutes, seconds)
	default:
		return fmt.Sprintf("0:%02d", seconds)
	}
}

// FormatDurationPadded renders ms as HH:MM:SS.mmm without rounding
func FormatDurationPadded(ms uint32) string {
	return fmt.Sprintf("%02d:%02d:%02d.%03d",
		ms/msPerHour,
		(ms%msPerHour)/msPerMinute,
		(ms%msPerMinute)/msPerSecond,
		ms%msPerSecond,
	)
}
