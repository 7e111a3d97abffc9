package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// DefaultListTitle is the title of the list seeded into an empty store.
const DefaultListTitle = "Reminders"

// Store provides SQLite-backed storage for reminder lists and items.
//
// Enumeration and persistence are synchronous; authorization and item
// queries follow the platform's asynchronous callback contract. Callers
// that need blocking semantics bridge the callback themselves.
type Store struct {
	db *sql.DB

	mu      sync.Mutex
	pending []Item
}

// Open opens (or creates) the reminders database at path, ensures the
// schema exists and seeds the default list when the store is empty.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reminders database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db}
	if err := s.seedDefaultList(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func createSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS lists (
			id                  TEXT PRIMARY KEY,
			title               TEXT    NOT NULL,
			allows_modification INTEGER NOT NULL DEFAULT 1
		);
		CREATE TABLE IF NOT EXISTS items (
			id         TEXT PRIMARY KEY,
			list_id    TEXT    NOT NULL REFERENCES lists(id),
			title      TEXT    NOT NULL DEFAULT '',
			due_date   TEXT,
			created_at TEXT,
			completed  INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *Store) seedDefaultList() error {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM lists`).Scan(&n); err != nil {
		return fmt.Errorf("failed to count lists: %w", err)
	}
	if n > 0 {
		return nil
	}
	_, err := s.db.Exec(`INSERT INTO lists (id, title, allows_modification) VALUES (?, ?, 1)`,
		uuid.NewString(), DefaultListTitle)
	if err != nil {
		return fmt.Errorf("failed to seed default list: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// RequestAccess asks the store for read/write authorization. The result is
// delivered asynchronously through fn, exactly once.
func (s *Store) RequestAccess(ctx context.Context, fn func(granted bool, err error)) {
	go func() {
		if err := s.db.PingContext(ctx); err != nil {
			fn(false, fmt.Errorf("reminders store unavailable: %w", err))
			return
		}
		fn(true, nil)
	}()
}

// Lists enumerates all reminder lists, writable or not, in storage order.
func (s *Store) Lists(ctx context.Context) ([]List, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, allows_modification FROM lists ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate lists: %w", err)
	}
	defer rows.Close()

	var lists []List
	for rows.Next() {
		var l List
		if err := rows.Scan(&l.ID, &l.Title, &l.AllowsModification); err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

// CreateList creates a new writable list. List lifecycle belongs to the
// store; the facade only enumerates.
func (s *Store) CreateList(ctx context.Context, title string) (List, error) {
	l := List{ID: uuid.NewString(), Title: title, AllowsModification: true}
	_, err := s.db.ExecContext(ctx, `INSERT INTO lists (id, title, allows_modification) VALUES (?, ?, 1)`,
		l.ID, l.Title)
	if err != nil {
		return List{}, fmt.Errorf("failed to create list: %w", err)
	}
	return l, nil
}

// FetchItems queries items matching the predicate and delivers them
// asynchronously through fn, exactly once. Completed items are included;
// filtering is the caller's concern.
func (s *Store) FetchItems(ctx context.Context, p Predicate, fn func(items []Item, err error)) {
	go func() {
		items, err := s.queryItems(ctx, p)
		fn(items, err)
	}()
}

func (s *Store) queryItems(ctx context.Context, p Predicate) ([]Item, error) {
	if len(p.listIDs) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(p.listIDs)), ",")
	args := make([]any, len(p.listIDs))
	for i, id := range p.listIDs {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, list_id, title, due_date, created_at, completed
		FROM items WHERE list_id IN (%s) ORDER BY rowid
	`, placeholders), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		var due, created sql.NullString
		if err := rows.Scan(&it.ID, &it.ListID, &it.Title, &due, &created, &it.Completed); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		it.Due = parseNullTime(due)
		it.CreatedAt = parseNullTime(created)
		items = append(items, it)
	}
	return items, rows.Err()
}

// Save persists an item. New items (empty ID) are assigned an ID and a
// creation timestamp. When commit is false the write is staged until the
// next call to Commit.
func (s *Store) Save(ctx context.Context, item Item, commit bool) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt == nil {
		now := time.Now()
		item.CreatedAt = &now
	}

	if !commit {
		s.mu.Lock()
		s.pending = append(s.pending, item)
		s.mu.Unlock()
		return nil
	}

	return s.writeItem(ctx, item)
}

// Commit flushes all staged writes.
func (s *Store) Commit(ctx context.Context) error {
	s.mu.Lock()
	staged := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, item := range staged {
		if err := s.writeItem(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) writeItem(ctx context.Context, item Item) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO items (id, list_id, title, due_date, created_at, completed)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			list_id   = excluded.list_id,
			title     = excluded.title,
			due_date  = excluded.due_date,
			completed = excluded.completed
	`, item.ID, item.ListID, item.Title,
		formatNullTime(item.Due), formatNullTime(item.CreatedAt), item.Completed)
	if err != nil {
		return fmt.Errorf("failed to save reminder: %w", err)
	}
	return nil
}

// Remove deletes an item. The commit flag mirrors Save; removal of a staged
// item simply drops it from the staging area.
func (s *Store) Remove(ctx context.Context, item Item, commit bool) error {
	if !commit {
		s.mu.Lock()
		for i, staged := range s.pending {
			if staged.ID == item.ID {
				s.pending = append(s.pending[:i], s.pending[i+1:]...)
				break
			}
		}
		s.mu.Unlock()
		return nil
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, item.ID)
	if err != nil {
		return fmt.Errorf("failed to remove reminder: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("reminder %s not found", item.ID)
	}
	return nil
}

func parseNullTime(v sql.NullString) *time.Time {
	if !v.Valid || v.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, v.String)
	if err != nil {
		return nil
	}
	return &t
}

func formatNullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
