// Package logging provides slog handler setup and shared attribute helpers
// so log output uses consistent attribute names across the codebase.
package logging
