// Package server provides serve-mode plumbing: Prometheus counters for
// tool and store activity and a dedicated HTTP server exposing them on
// /metrics.
package server
