// Package reqid mints request correlation identifiers. One id is
// stamped on every assembled RoutingRequest and threaded through log
// lines via logctx.
package reqid

import "github.com/google/uuid"

// New returns a fresh correlation id.
func New() string { return uuid.NewString() }
