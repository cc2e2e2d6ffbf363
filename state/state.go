package state

import (
	"context"
	"log/slog"
)

// Env carries the cross-cutting runtime environment. It can be read from
// any goroutine.
type Env struct {
	Context context.Context
	Cancel  context.CancelCauseFunc
	Log     *slog.Logger
}
