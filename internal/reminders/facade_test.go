package reminders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottCheezem/reminders-cli/internal/store"
)

var testNow = time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

// fakeStore is an in-memory Store with the same asynchronous callback
// contract as the SQLite-backed one.
type fakeStore struct {
	lists []store.List
	items []store.Item

	accessGranted bool
	accessErr     error
	fetchErr      error
	saveErr       error
	removeErr     error

	nextID int
}

func (s *fakeStore) RequestAccess(_ context.Context, fn func(granted bool, err error)) {
	go fn(s.accessGranted, s.accessErr)
}

func (s *fakeStore) Lists(_ context.Context) ([]store.List, error) {
	return s.lists, nil
}

func (s *fakeStore) FetchItems(_ context.Context, p store.Predicate, fn func(items []store.Item, err error)) {
	wanted := make(map[string]bool)
	for _, id := range p.ListIDs() {
		wanted[id] = true
	}
	var matched []store.Item
	for _, item := range s.items {
		if wanted[item.ListID] {
			matched = append(matched, item)
		}
	}
	go fn(matched, s.fetchErr)
}

func (s *fakeStore) Save(_ context.Context, item store.Item, _ bool) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	if item.ID == "" {
		s.nextID++
		item.ID = fmt.Sprintf("item-%d", s.nextID)
		s.items = append(s.items, item)
		return nil
	}
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			return nil
		}
	}
	s.items = append(s.items, item)
	return nil
}

func (s *fakeStore) Remove(_ context.Context, item store.Item, _ bool) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("reminder %s not found", item.ID)
}

func (s *fakeStore) itemByID(id string) *store.Item {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i]
		}
	}
	return nil
}

// homeStore is the fixture of the listing scenarios: list "Home" holding
// A (completed), B (due in 2 hours) and C (no due date).
func homeStore() *fakeStore {
	dueB := testNow.Add(2 * time.Hour)
	createdB := testNow.Add(-24 * time.Hour)
	return &fakeStore{
		accessGranted: true,
		lists: []store.List{
			{ID: "L1", Title: "Home", AllowsModification: true},
			{ID: "L2", Title: "Subscribed", AllowsModification: false},
		},
		items: []store.Item{
			{ID: "a", ListID: "L1", Title: "A", Completed: true},
			{ID: "b", ListID: "L1", Title: "B", Due: &dueB, CreatedAt: &createdB},
			{ID: "c", ListID: "L1", Title: "C"},
		},
	}
}

func newTestFacade(st Store) (*Facade, *bytes.Buffer) {
	var buf bytes.Buffer
	f := New(st, &buf)
	f.now = func() time.Time { return testNow }
	return f, &buf
}

func TestRequestAccess(t *testing.T) {
	tests := []struct {
		name    string
		granted bool
		err     error
		want    bool
		wantErr bool
	}{
		{name: "granted", granted: true, want: true},
		{name: "denied", granted: false, want: false},
		{name: "store error", err: errors.New("boom"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := newTestFacade(&fakeStore{accessGranted: tt.granted, accessErr: tt.err})
			granted, err := f.RequestAccess(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, granted)
		})
	}
}

func TestShowListsPrintsWritableOnly(t *testing.T) {
	f, buf := newTestFacade(homeStore())

	require.NoError(t, f.ShowLists(context.Background()))
	assert.Equal(t, "Home\n", buf.String())
}

func TestShowListItemsPlainText(t *testing.T) {
	f, buf := newTestFacade(homeStore())

	err := f.ShowListItems(context.Background(), []string{"Home"}, FormatPlainText, false)
	require.NoError(t, err)
	assert.Equal(t, "0: B (in 2 hours)\n1: C\n", buf.String())
}

func TestShowListItemsDueDateOnly(t *testing.T) {
	f, buf := newTestFacade(homeStore())

	err := f.ShowListItems(context.Background(), []string{"Home"}, FormatPlainText, true)
	require.NoError(t, err)
	assert.Equal(t, "0: B (in 2 hours)\n", buf.String())
}

func TestShowListItemsCaseInsensitive(t *testing.T) {
	f, buf := newTestFacade(homeStore())

	err := f.ShowListItems(context.Background(), []string{"hOmE"}, FormatPlainText, false)
	require.NoError(t, err)
	assert.Equal(t, "0: B (in 2 hours)\n1: C\n", buf.String())
}

func TestShowListItemsUnknownNamesAreSilent(t *testing.T) {
	f, buf := newTestFacade(homeStore())

	err := f.ShowListItems(context.Background(), []string{"Nope", "Missing"}, FormatPlainText, false)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestShowListItemsReadOnlyListNeverResolves(t *testing.T) {
	f, buf := newTestFacade(homeStore())

	err := f.ShowListItems(context.Background(), []string{"Subscribed"}, FormatPlainText, false)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestShowListItemsSkipsUnknownAmongKnown(t *testing.T) {
	f, buf := newTestFacade(homeStore())

	err := f.ShowListItems(context.Background(), []string{"Nope", "Home"}, FormatPlainText, false)
	require.NoError(t, err)
	assert.Equal(t, "0: B (in 2 hours)\n1: C\n", buf.String())
}

func TestShowListItemsIdempotent(t *testing.T) {
	st := homeStore()
	f, buf := newTestFacade(st)
	ctx := context.Background()

	require.NoError(t, f.ShowListItems(ctx, []string{"Home"}, FormatPlainText, false))
	first := buf.String()
	buf.Reset()
	require.NoError(t, f.ShowListItems(ctx, []string{"Home"}, FormatPlainText, false))
	assert.Equal(t, first, buf.String())
}

func TestShowListItemsUntitledItem(t *testing.T) {
	st := &fakeStore{
		lists: []store.List{{ID: "L1", Title: "Home", AllowsModification: true}},
		items: []store.Item{{ID: "x", ListID: "L1"}},
	}
	f, buf := newTestFacade(st)

	err := f.ShowListItems(context.Background(), []string{"Home"}, FormatPlainText, false)
	require.NoError(t, err)
	assert.Equal(t, "0: <unknown>\n", buf.String())
}

func TestShowListItemsJSON(t *testing.T) {
	f, buf := newTestFacade(homeStore())

	err := f.ShowListItems(context.Background(), []string{"Home"}, FormatJSON, false)
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 2)

	b := records[0]
	assert.Equal(t, "B", b["title"])
	assert.Equal(t, float64(testNow.Add(2*time.Hour).Unix()), b["dueDateEpoch"])
	assert.Equal(t, "in 2 hours", b["dueDateHumanReadable"])
	assert.Contains(t, b, "creationDate")

	c := records[1]
	assert.Equal(t, "C", c["title"])
	assert.NotContains(t, c, "dueDateEpoch")
	assert.NotContains(t, c, "dueDateHumanReadable")
	assert.NotContains(t, c, "creationDate")
}

func TestShowListItemsJSONIsSingleLine(t *testing.T) {
	f, buf := newTestFacade(homeStore())

	err := f.ShowListItems(context.Background(), []string{"Home"}, FormatJSON, false)
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, "[", out[:1])
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestComplete(t *testing.T) {
	st := homeStore()
	f, buf := newTestFacade(st)
	ctx := context.Background()

	require.NoError(t, f.Complete(ctx, 0, "Home"))
	assert.Equal(t, "Completed 'B'\n", buf.String())
	assert.True(t, st.itemByID("b").Completed)

	// A fresh listing never shows the completed item.
	buf.Reset()
	require.NoError(t, f.ShowListItems(ctx, []string{"Home"}, FormatPlainText, false))
	assert.Equal(t, "0: C\n", buf.String())
}

func TestCompleteIndexesUnfilteredNonCompletedSequence(t *testing.T) {
	// A due-date-only listing shows B alone, but Complete always indexes
	// the full non-completed fetch: index 1 is C.
	st := homeStore()
	f, _ := newTestFacade(st)

	require.NoError(t, f.Complete(context.Background(), 1, "Home"))
	assert.True(t, st.itemByID("c").Completed)
	assert.False(t, st.itemByID("b").Completed)
}

func TestCompleteOutOfRange(t *testing.T) {
	f, _ := newTestFacade(homeStore())

	err := f.Complete(context.Background(), 5, "Home")
	var oor *IndexOutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 5, oor.Index)
	assert.Equal(t, "Home", oor.List)
}

func TestCompleteNegativeIndex(t *testing.T) {
	f, _ := newTestFacade(homeStore())

	err := f.Complete(context.Background(), -1, "Home")
	var oor *IndexOutOfRangeError
	require.ErrorAs(t, err, &oor)
}

func TestCompleteUnknownList(t *testing.T) {
	f, _ := newTestFacade(homeStore())

	err := f.Complete(context.Background(), 0, "Nope")
	var unknown *UnknownListError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Nope", unknown.Name)
}

func TestCompleteSaveFailure(t *testing.T) {
	st := homeStore()
	st.saveErr = errors.New("disk full")
	f, _ := newTestFacade(st)

	err := f.Complete(context.Background(), 0, "Home")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestDelete(t *testing.T) {
	st := homeStore()
	f, buf := newTestFacade(st)
	ctx := context.Background()

	require.NoError(t, f.Delete(ctx, 0, "Home"))
	assert.Equal(t, "Deleted 'B'\n", buf.String())
	assert.Nil(t, st.itemByID("b"))
}

func TestDeleteOutOfRange(t *testing.T) {
	f, _ := newTestFacade(homeStore())

	err := f.Delete(context.Background(), 2, "Home")
	var oor *IndexOutOfRangeError
	require.ErrorAs(t, err, &oor)
}

func TestAddReminder(t *testing.T) {
	st := homeStore()
	f, buf := newTestFacade(st)
	ctx := context.Background()

	require.NoError(t, f.AddReminder(ctx, "Buy milk", "home", nil))
	assert.Equal(t, "Added 'Buy milk' to 'Home'\n", buf.String())

	buf.Reset()
	require.NoError(t, f.ShowListItems(ctx, []string{"Home"}, FormatJSON, false))

	var records []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 3)

	added := records[2]
	assert.Equal(t, "Buy milk", added["title"])
	assert.NotContains(t, added, "dueDateEpoch")
	assert.NotContains(t, added, "dueDateHumanReadable")
}

func TestAddReminderWithDueDate(t *testing.T) {
	st := homeStore()
	f, _ := newTestFacade(st)

	due := testNow.Add(48 * time.Hour)
	require.NoError(t, f.AddReminder(context.Background(), "Dentist", "Home", &due))

	var saved *store.Item
	for i := range st.items {
		if st.items[i].Title == "Dentist" {
			saved = &st.items[i]
		}
	}
	require.NotNil(t, saved)
	require.NotNil(t, saved.Due)
	assert.True(t, saved.Due.Equal(due))
}

func TestAddReminderUnknownList(t *testing.T) {
	f, _ := newTestFacade(homeStore())

	err := f.AddReminder(context.Background(), "Buy milk", "Nope", nil)
	var unknown *UnknownListError
	require.ErrorAs(t, err, &unknown)
}

func TestFetchFailureSurfaces(t *testing.T) {
	st := homeStore()
	st.fetchErr = errors.New("store hung up")
	f, _ := newTestFacade(st)

	err := f.ShowListItems(context.Background(), []string{"Home"}, FormatPlainText, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store hung up")
}
