// Package reminders implements the facade between command invocations and
// the reminders store.
//
// The facade resolves list names case-insensitively against the writable
// lists, fetches non-completed items, renders plain-text or JSON output and
// commits mutations (completing, deleting, adding items). The store's
// asynchronous operations are bridged to blocking calls by waiting for the
// single completion callback of each request; at most one store request is
// in flight at a time.
//
// Two resolution modes exist and behave differently on unknown names:
// multi-name resolution (ShowListItems) silently skips names that match no
// writable list, while single-name resolution (Complete, Delete,
// AddReminder) fails with UnknownListError. Item indices always refer to
// the non-completed sequence of the most recent fetch for a single list;
// no stable identifier carries across invocations.
package reminders
