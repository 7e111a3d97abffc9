package reminders

import "fmt"

// UnknownListError is returned when a single list name resolves to no
// writable list.
type UnknownListError struct {
	Name string
}

func (e *UnknownListError) Error() string {
	return fmt.Sprintf("no reminders list matching %q", e.Name)
}

// IndexOutOfRangeError is returned when an item index does not exist in the
// current non-completed sequence of a list.
type IndexOutOfRangeError struct {
	Index int
	List  string
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("no reminder at index %d on list %q", e.Index, e.List)
}

// AccessDeniedError is returned when the store refuses read/write access.
type AccessDeniedError struct{}

func (e *AccessDeniedError) Error() string {
	return "access to the reminders store was denied"
}
