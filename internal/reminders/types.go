package reminders

import (
	"time"

	"github.com/scottCheezem/reminders-cli/internal/store"
)

// Format selects how ShowListItems renders its output.
type Format string

// Supported output formats.
const (
	FormatPlainText Format = "plain"
	FormatJSON      Format = "json"
)

// unknownTitle substitutes for items without a title in plain-text output.
const unknownTitle = "<unknown>"

// OutputRecord is the serialized projection of an item used for JSON
// output. Due-date fields are present together or absent together;
// CreationDate is floating-point epoch seconds.
type OutputRecord struct {
	Title                string   `json:"title"`
	DueDateEpoch         *int64   `json:"dueDateEpoch,omitempty"`
	DueDateHumanReadable *string  `json:"dueDateHumanReadable,omitempty"`
	CreationDate         *float64 `json:"creationDate,omitempty"`
}

// newOutputRecord projects an item, resolving relative due dates against
// now.
func newOutputRecord(item store.Item, now time.Time) OutputRecord {
	rec := OutputRecord{Title: item.Title}

	if item.Due != nil {
		epoch := item.Due.Unix()
		human := relativeTime(*item.Due, now)
		rec.DueDateEpoch = &epoch
		rec.DueDateHumanReadable = &human
	}

	if item.CreatedAt != nil {
		created := float64(item.CreatedAt.UnixNano()) / float64(time.Second)
		rec.CreationDate = &created
	}

	return rec
}
