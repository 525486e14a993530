package chat

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Stream answers the latest user turn. Events are passed to emit in order; the last one is
	// always EventDone or EventError. Input validation errors are returned before any event.
	Stream(ctx context.Context, input StreamInput, emit func(Event) error) error
}
