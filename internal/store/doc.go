// Package store implements the reminders data store backing the CLI.
//
// The store keeps reminder lists and items in a local SQLite database and
// exposes the contract the facade layer is written against:
//   - RequestAccess: asynchronous read/write authorization
//   - Lists: synchronous list enumeration
//   - ItemsInLists / FetchItems: asynchronous, predicate-based item queries
//   - Save / Remove: blocking persistence with an optional staging commit flag
//
// Item queries deliver completed and non-completed items alike; completion
// filtering belongs to the caller. An empty store is seeded with a single
// writable "Reminders" list; list lifecycle is otherwise owned here and
// never driven by the facade.
package store
