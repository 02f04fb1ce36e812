package event

import (
	"fmt"
	"strconv"
	"time"
)

// FormatMessage renders an event as the one-line sentence shown on the page
// and in the read API. Unknown actions render as the empty string.
func FormatMessage(ev Event) string {
	when := FormatTimestamp(ev.Timestamp)

	switch ev.Action {
	case ActionPush:
		return fmt.Sprintf("%q pushed to %q on %s", ev.Author, ev.ToBranch, when)
	case ActionPullRequest:
		return fmt.Sprintf("%q submitted a pull request from %q to %q on %s", ev.Author, ev.FromBranch, ev.ToBranch, when)
	case ActionMerge:
		return fmt.Sprintf("%q merged branch %q to %q on %s", ev.Author, ev.FromBranch, ev.ToBranch, when)
	default:
		return ""
	}
}

// FormatTimestamp renders a stored RFC 3339 instant as, for example,
// "1st April 2021 - 9:30 PM UTC". A value that does not parse is returned
// unmodified rather than failing the whole read.
func FormatTimestamp(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	t = t.UTC()
	return fmt.Sprintf("%s %s %d - %s UTC",
		ordinalDay(t.Day()), t.Month().String(), t.Year(), t.Format("3:04 PM"))
}

// 11th, 12th and 13th break the last-digit rule.
func ordinalDay(day int) string {
	suffix := "th"
	if day%100 < 11 || day%100 > 13 {
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(day) + suffix
}
