package helper

import "fmt"

// FormatMinutes renders minutes as "H:MM", or "-" when there is no value.
func FormatMinutes(minutes *int) string {
	if minutes == nil {
		return "-"
	}
	h, m := splitMinutes(*minutes)
	return fmt.Sprintf("%d:%02d", h, m)
}

// FormatMinutesJapanese renders minutes as "X時間Y分", dropping whichever
// part is zero. Zero itself reads "0分".
func FormatMinutesJapanese(minutes *int) string {
	if minutes == nil {
		return "-"
	}
	h, m := splitMinutes(*minutes)
	switch {
	case h == 0:
		return fmt.Sprintf("%d分", m)
	case m == 0:
		return fmt.Sprintf("%d時間", h)
	default:
		return fmt.Sprintf("%d時間%d分", h, m)
	}
}

func splitMinutes(minutes int) (int, int) {
	return minutes / 60, minutes % 60
}
