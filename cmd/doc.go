// Package cmd implements the command-line interface for reminders-cli.
//
// This package provides the following commands:
//   - show-lists: print the titles of all writable reminder lists
//   - show: print the non-completed reminders on one or more lists
//   - complete: mark a reminder completed by list name and index
//   - delete: delete a reminder by list name and index
//   - add: add a reminder to a list, with an optional due date
//   - serve: run an MCP server exposing the reminders tools
//   - version: display version information
//
// Commands translate flags and arguments into facade calls; errors are
// printed by cobra and turn into a nonzero exit in Execute. No code below
// this boundary terminates the process.
package cmd
