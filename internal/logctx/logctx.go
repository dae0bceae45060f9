// Package logctx carries a request-scoped logrus entry through a
// context.Context. Only the boundary packages (request assembly, the
// search harness) log; the traversal core stays silent and allocation-
// free on the hot path.
package logctx

import (
	"context"

	"github.com/sirupsen/logrus"
)

type ctxKey struct{}

// base is the process logger the context-scoped entries derive from.
var base = logrus.New()

// SetLevel adjusts the process logger's level (tests raise it to
// PanicLevel to keep output quiet).
func SetLevel(level logrus.Level) { base.SetLevel(level) }

// WithRequestID returns a context whose logger is stamped with the
// given request correlation id.
func WithRequestID(ctx context.Context, id string) context.Context {
	entry := From(ctx).WithField("request_id", id)
	return context.WithValue(ctx, ctxKey{}, entry)
}

// With returns a context whose logger carries the extra field.
func With(ctx context.Context, key string, value interface{}) context.Context {
	entry := From(ctx).WithField(key, value)
	return context.WithValue(ctx, ctxKey{}, entry)
}

// From returns the context's logger entry, or a bare entry on the
// process logger when none was attached.
func From(ctx context.Context) *logrus.Entry {
	if ctx != nil {
		if entry, ok := ctx.Value(ctxKey{}).(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(base)
}
