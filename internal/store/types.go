package store

import "time"

// List represents a named container of reminder items.
type List struct {
	ID    string
	Title string
	// AllowsModification is false for read-only lists, e.g. shared
	// subscriptions. The facade never writes to such lists.
	AllowsModification bool
}

// Item represents a single reminder.
type Item struct {
	ID        string
	ListID    string
	Title     string
	Due       *time.Time
	CreatedAt *time.Time
	Completed bool
}

// Predicate selects items belonging to a set of lists. Construct one with
// ItemsInLists and pass it to FetchItems.
type Predicate struct {
	listIDs []string
}

// ItemsInLists returns a predicate matching all items, completed or not,
// that belong to any of the given lists.
func ItemsInLists(lists []List) Predicate {
	ids := make([]string, 0, len(lists))
	for _, l := range lists {
		ids = append(ids, l.ID)
	}
	return Predicate{listIDs: ids}
}

// ListIDs returns the IDs of the lists the predicate matches against.
func (p Predicate) ListIDs() []string {
	return p.listIDs
}
