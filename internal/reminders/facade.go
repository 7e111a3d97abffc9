package reminders

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/scottCheezem/reminders-cli/internal/logging"
	"github.com/scottCheezem/reminders-cli/internal/store"
)

// Store is the contract the facade requires from the reminders data store.
// *store.Store satisfies it; tests substitute a fake.
type Store interface {
	RequestAccess(ctx context.Context, fn func(granted bool, err error))
	Lists(ctx context.Context) ([]store.List, error)
	FetchItems(ctx context.Context, p store.Predicate, fn func(items []store.Item, err error))
	Save(ctx context.Context, item store.Item, commit bool) error
	Remove(ctx context.Context, item store.Item, commit bool) error
}

// Facade bridges command invocations to the reminders store: it resolves
// named lists, fetches non-completed items, formats output and commits
// mutations. All methods return typed errors; process termination belongs
// to the caller.
type Facade struct {
	store  Store
	out    io.Writer
	logger *slog.Logger
	now    func() time.Time
}

// New creates a facade over the given store handle, writing user-facing
// output to out. A nil out defaults to stdout.
func New(s Store, out io.Writer) *Facade {
	if out == nil {
		out = os.Stdout
	}
	return &Facade{
		store:  s,
		out:    out,
		logger: slog.Default(),
		now:    time.Now,
	}
}

// RequestAccess asks the store for read/write authorization and blocks
// until its single grant/deny callback fires. One request per process
// invocation; no retry.
func (f *Facade) RequestAccess(ctx context.Context) (bool, error) {
	type result struct {
		granted bool
		err     error
	}

	ch := make(chan result, 1)
	f.store.RequestAccess(ctx, func(granted bool, err error) {
		ch <- result{granted: granted, err: err}
	})

	res := <-ch
	if res.err != nil {
		return false, fmt.Errorf("failed to request reminders access: %w", res.err)
	}

	f.logger.Debug("reminders access requested",
		logging.Operation("request_access"),
		slog.Bool("granted", res.granted))
	return res.granted, nil
}

// ShowLists prints the title of every writable list, one per line, in
// store order.
func (f *Facade) ShowLists(ctx context.Context) error {
	lists, err := f.writableLists(ctx)
	if err != nil {
		return err
	}
	for _, l := range lists {
		fmt.Fprintln(f.out, l.Title)
	}
	return nil
}

// ShowListItems prints the non-completed items of the named lists.
// Unresolvable names are skipped; when none resolve the operation is a
// silent no-op. With dueDateOnly set, items without a due date are
// dropped. Plain-text lines carry the item's 0-based position in the
// printed sequence; those indices are not valid for Complete or Delete
// unless a single list was shown unfiltered.
func (f *Facade) ShowListItems(ctx context.Context, names []string, format Format, dueDateOnly bool) error {
	lists, err := f.resolveLists(ctx, names)
	if err != nil {
		return err
	}
	if len(lists) == 0 {
		return nil
	}

	items, err := f.incompleteItems(ctx, lists)
	if err != nil {
		return err
	}

	if dueDateOnly {
		withDue := items[:0]
		for _, item := range items {
			if item.Due != nil {
				withDue = append(withDue, item)
			}
		}
		items = withDue
	}

	if format == FormatJSON {
		return f.printJSON(items)
	}
	f.printPlainText(items)
	return nil
}

// Complete marks the item at index on the named list as completed and
// persists the change. The index refers to the current non-completed
// sequence of that single list.
func (f *Facade) Complete(ctx context.Context, index int, listName string) error {
	item, err := f.itemAt(ctx, index, listName)
	if err != nil {
		return err
	}

	item.Completed = true
	if err := f.store.Save(ctx, *item, true); err != nil {
		return fmt.Errorf("failed to complete reminder: %w", err)
	}

	f.logger.Debug("reminder completed",
		logging.Operation("complete"), logging.List(listName))
	fmt.Fprintf(f.out, "Completed '%s'\n", displayTitle(*item))
	return nil
}

// Delete removes the item at index on the named list from the store. The
// index semantics match Complete.
func (f *Facade) Delete(ctx context.Context, index int, listName string) error {
	item, err := f.itemAt(ctx, index, listName)
	if err != nil {
		return err
	}

	if err := f.store.Remove(ctx, *item, true); err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	f.logger.Debug("reminder deleted",
		logging.Operation("delete"), logging.List(listName))
	fmt.Fprintf(f.out, "Deleted '%s'\n", displayTitle(*item))
	return nil
}

// AddReminder creates a new item with the given title and optional due
// date on the named list and persists it immediately.
func (f *Facade) AddReminder(ctx context.Context, title, listName string, due *time.Time) error {
	list, err := f.resolveList(ctx, listName)
	if err != nil {
		return err
	}

	item := store.Item{
		ListID: list.ID,
		Title:  title,
		Due:    due,
	}
	if err := f.store.Save(ctx, item, true); err != nil {
		return fmt.Errorf("failed to add reminder: %w", err)
	}

	f.logger.Debug("reminder added",
		logging.Operation("add"), logging.List(list.Title))
	fmt.Fprintf(f.out, "Added '%s' to '%s'\n", title, list.Title)
	return nil
}

// writableLists recomputes the modifiable view of the store's lists on
// every call; nothing is cached across operations.
func (f *Facade) writableLists(ctx context.Context) ([]store.List, error) {
	lists, err := f.store.Lists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load reminders lists: %w", err)
	}

	writable := make([]store.List, 0, len(lists))
	for _, l := range lists {
		if l.AllowsModification {
			writable = append(writable, l)
		}
	}
	return writable, nil
}

// resolveLists matches names case-insensitively against the writable
// lists. The returned subset may be empty; multi-name resolution never
// fails on unknown names.
func (f *Facade) resolveLists(ctx context.Context, names []string) ([]store.List, error) {
	lists, err := f.writableLists(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[strings.ToLower(name)] = true
	}

	var matched []store.List
	for _, l := range lists {
		if wanted[strings.ToLower(l.Title)] {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

// resolveList matches a single name case-insensitively against the
// writable lists and fails with UnknownListError when nothing matches.
func (f *Facade) resolveList(ctx context.Context, name string) (*store.List, error) {
	lists, err := f.writableLists(ctx)
	if err != nil {
		return nil, err
	}
	for _, l := range lists {
		if strings.EqualFold(l.Title, name) {
			return &l, nil
		}
	}
	return nil, &UnknownListError{Name: name}
}

// incompleteItems fetches the items of the given lists as one combined
// sequence, blocking on the store's single completion callback, and drops
// completed items before returning.
func (f *Facade) incompleteItems(ctx context.Context, lists []store.List) ([]store.Item, error) {
	type result struct {
		items []store.Item
		err   error
	}

	ch := make(chan result, 1)
	f.store.FetchItems(ctx, store.ItemsInLists(lists), func(items []store.Item, err error) {
		ch <- result{items: items, err: err}
	})

	res := <-ch
	if res.err != nil {
		return nil, fmt.Errorf("failed to fetch reminders: %w", res.err)
	}

	var incomplete []store.Item
	for _, item := range res.items {
		if !item.Completed {
			incomplete = append(incomplete, item)
		}
	}
	return incomplete, nil
}

// itemAt resolves listName and returns the item at index within that
// list's current non-completed sequence.
func (f *Facade) itemAt(ctx context.Context, index int, listName string) (*store.Item, error) {
	list, err := f.resolveList(ctx, listName)
	if err != nil {
		return nil, err
	}

	items, err := f.incompleteItems(ctx, []store.List{*list})
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(items) {
		return nil, &IndexOutOfRangeError{Index: index, List: list.Title}
	}
	return &items[index], nil
}

func (f *Facade) printJSON(items []store.Item) error {
	now := f.now()
	records := make([]OutputRecord, 0, len(items))
	for _, item := range items {
		records = append(records, newOutputRecord(item, now))
	}

	encoded, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode reminders as JSON: %w", err)
	}
	fmt.Fprintln(f.out, string(encoded))
	return nil
}

func (f *Facade) printPlainText(items []store.Item) {
	now := f.now()
	for i, item := range items {
		if item.Due != nil {
			fmt.Fprintf(f.out, "%d: %s (%s)\n", i, displayTitle(item), relativeTime(*item.Due, now))
		} else {
			fmt.Fprintf(f.out, "%d: %s\n", i, displayTitle(item))
		}
	}
}

func displayTitle(item store.Item) string {
	if item.Title == "" {
		return unknownTitle
	}
	return item.Title
}
