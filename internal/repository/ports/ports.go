// Package ports declares the storage interfaces the services depend on. The
// shipped implementations are in-memory and session-scoped; nothing survives a
// process restart.
package ports

import "errors"

// ErrNotFound is the repository-level miss every implementation returns.
var ErrNotFound = errors.New("record not found")
