package inmemeventstream

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	eventstream "github.com/gatherly/community-service/internal/services/event-stream"
	"github.com/gatherly/community-service/internal/types"
)

const serviceName = "event-stream"

// Service keeps one unbounded FIFO queue per user id. Queues are created
// lazily by the first Publish or Subscribe and are never removed; an idle
// queue is a map entry and an empty slice, cheap to keep for the process
// lifetime. Events published to a user with no live subscription stay queued
// until somebody subscribes.
type Service struct {
	mu     sync.Mutex
	queues map[types.UserID]*userQueue

	wg     sync.WaitGroup
	done   chan struct{}
	closed atomic.Bool

	lg *zap.Logger
}

func New() *Service {
	return &Service{
		queues: make(map[types.UserID]*userQueue),
		done:   make(chan struct{}),
		lg:     zap.L().Named(serviceName),
	}
}

// getOrCreateQueue resolves the user's queue, inserting a fresh one on first
// reference. The registry lock covers only the lookup-or-insert, so exactly
// one queue per user id survives any race.
func (s *Service) getOrCreateQueue(userID types.UserID) *userQueue {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.queues[userID]
	if !ok {
		q = newUserQueue()
		s.queues[userID] = q
	}
	return q
}

func (s *Service) Subscribe(ctx context.Context, userID types.UserID) (<-chan eventstream.Event, error) {
	if s.closed.Load() {
		out := make(chan eventstream.Event)
		close(out)
		return out, nil
	}

	q := s.getOrCreateQueue(userID)
	out := make(chan eventstream.Event)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(out)

		// Connected is synthesized per subscription and always comes first,
		// even if the queue already holds a backlog.
		if !s.deliver(ctx, out, eventstream.NewConnectedEvent(types.NewEventID())) {
			return
		}

		for {
			ev, ok := q.pop()
			if !ok {
				select {
				case <-q.wakeup:
					continue
				case <-ctx.Done():
					s.lg.Info("client is offline", zap.String("user_id", userID.String()))
					return
				case <-s.done:
					return
				}
			}

			if !s.deliver(ctx, out, ev) {
				return
			}
		}
	}()

	s.lg.Info("client subscribed to events", zap.String("user_id", userID.String()))

	return out, nil
}

// deliver hands the event to the consumer, giving up on cancellation or
// shutdown. An event popped but not delivered is dropped, never re-queued.
func (s *Service) deliver(ctx context.Context, out chan<- eventstream.Event, ev eventstream.Event) bool {
	select {
	case out <- ev:
		return true
	case <-ctx.Done():
		return false
	case <-s.done:
		return false
	}
}

func (s *Service) Publish(_ context.Context, userID types.UserID, event eventstream.Event) error {
	if s.closed.Load() {
		return nil
	}

	if err := event.Validate(); err != nil {
		return fmt.Errorf("validate event for user %v: %v", userID, err)
	}

	s.getOrCreateQueue(userID).push(event)
	return nil
}

func (s *Service) Close() error {
	if s.closed.CompareAndSwap(false, true) {
		close(s.done)
	}
	s.wg.Wait()

	s.lg.Info("event stream closed")
	return nil
}

// userQueue is an unbounded multi-producer FIFO. wakeup carries at most one
// pending signal; that is enough because a consumer drains the queue to empty
// before waiting again.
type userQueue struct {
	mu     sync.Mutex
	items  []eventstream.Event
	wakeup chan struct{}
}

func newUserQueue() *userQueue {
	return &userQueue{
		wakeup: make(chan struct{}, 1),
	}
}

func (q *userQueue) push(ev eventstream.Event) {
	q.mu.Lock()
	q.items = append(q.items, ev)
	q.mu.Unlock()

	select {
	case q.wakeup <- struct{}{}:
	default:
	}
}

func (q *userQueue) pop() (eventstream.Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil, false
	}

	ev := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return ev, true
}
