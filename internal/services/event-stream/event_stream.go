package eventstream

import (
	"context"
	"io"

	"github.com/gatherly/community-service/internal/types"
)

// EventStream multiplexes domain events into per-user streams.
//
// Every user owns a single unbounded FIFO queue, created lazily on the first
// Publish or Subscribe and kept for the rest of the process lifetime. Publish
// appends to the queue and never blocks; Subscribe drains it. Events published
// while nobody is subscribed stay queued and are delivered to the next
// subscriber.
type EventStream interface {
	io.Closer
	Subscriber
	Publisher
}

type Subscriber interface {
	// Subscribe attaches to the user's queue and returns a live stream of events.
	// The first event is always a fresh ConnectedEvent, then queue items follow
	// in publish order. The channel is closed when ctx is cancelled or the
	// stream is shut down.
	//
	// The queue is shared, not a broadcast topic: with more than one concurrent
	// subscriber per user the distribution of events between them is undefined.
	// Keeping a single live subscription per user is the caller's job.
	Subscribe(ctx context.Context, userID types.UserID) (<-chan Event, error)
}

type Publisher interface {
	// Publish enqueues the event for the given user and returns as soon as it
	// is in the queue. It fails only on an invalid event.
	Publish(ctx context.Context, userID types.UserID, event Event) error
}
