// Package reminders_tools registers MCP tools exposing the reminders
// facade to AI assistants in serve mode.
//
// Available tools:
//   - reminders_show_lists: list the titles of all writable reminder lists
//   - reminders_show: show non-completed reminders on one or more lists
//   - reminders_complete: mark a reminder completed by list name and index
//   - reminders_delete: delete a reminder by list name and index
//   - reminders_add: add a reminder with an optional due date
//
// Handlers call the same facade as the CLI commands; failures are returned
// as MCP tool error results.
package reminders_tools
