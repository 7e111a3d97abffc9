package reminders

import (
	"fmt"
	"time"
)

// relMagnitude describes one step of the relative-time scale.
type relMagnitude struct {
	unit time.Duration
	name string
}

var relMagnitudes = []relMagnitude{
	{365 * 24 * time.Hour, "year"},
	{30 * 24 * time.Hour, "month"},
	{7 * 24 * time.Hour, "week"},
	{24 * time.Hour, "day"},
	{time.Hour, "hour"},
	{time.Minute, "minute"},
	{time.Second, "second"},
}

// relativeTime renders t relative to now in natural language, e.g.
// "in 2 hours", "in 1 day" or "3 weeks ago". Counts are truncated towards
// zero; anything under a second reads as "now".
func relativeTime(t, now time.Time) string {
	d := t.Sub(now)
	future := d >= 0
	if !future {
		d = -d
	}

	for _, m := range relMagnitudes {
		if d < m.unit {
			continue
		}
		n := int64(d / m.unit)
		unit := m.name
		if n != 1 {
			unit += "s"
		}
		if future {
			return fmt.Sprintf("in %d %s", n, unit)
		}
		return fmt.Sprintf("%d %s ago", n, unit)
	}
	return "now"
}
