package reminders

import (
	"fmt"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// dueDateLayouts are the fixed formats tried before falling back to
// natural-language parsing.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

var dueDateParser = newDueDateParser()

func newDueDateParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

// ParseDueDate resolves a user-supplied due date into a concrete time.
// Fixed layouts (RFC 3339, "2006-01-02 15:04", "2006-01-02") are tried
// first; anything else goes through natural-language parsing ("tomorrow at
// 9am", "next friday") relative to now.
func ParseDueDate(text string, now time.Time) (time.Time, error) {
	for _, layout := range dueDateLayouts {
		if t, err := time.ParseInLocation(layout, text, time.Local); err == nil {
			return t, nil
		}
	}

	r, err := dueDateParser.Parse(text, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse due date %q: %w", text, err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("could not understand due date %q", text)
	}
	return r.Time, nil
}
