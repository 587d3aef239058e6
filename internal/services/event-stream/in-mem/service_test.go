package inmemeventstream_test

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"

	eventstream "github.com/gatherly/community-service/internal/services/event-stream"
	inmemeventstream "github.com/gatherly/community-service/internal/services/event-stream/in-mem"
	"github.com/gatherly/community-service/internal/testingh"
	"github.com/gatherly/community-service/internal/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type ServiceSuite struct {
	testingh.ContextSuite
	stream eventstream.EventStream
}

func TestServiceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ContextSuite.SetupTest()
	s.stream = inmemeventstream.New()
}

func (s *ServiceSuite) TearDownTest() {
	s.ContextSuite.TearDownTest()
	s.NoError(s.stream.Close())
}

func (s *ServiceSuite) TestSimpleSubscription() {
	// Arrange.
	uid := types.NewUserID()

	ctx, cancel := context.WithCancel(s.Ctx)
	defer cancel()

	events, err := s.stream.Subscribe(ctx, uid)
	s.Require().NoError(err)
	s.requireConnected(events)

	bodies := []string{"Hello", "World", "!"}
	result := readMessageBodies(events, len(bodies))

	// Action.
	for _, b := range bodies {
		s.Require().NoError(s.stream.Publish(ctx, uid, s.newMessageEvent(uid, b)))
	}

	// Assert.
	s.Equal([]string{"Hello", "World", "!"}, <-result)
}

func (s *ServiceSuite) TestConnectedComesBeforeBacklog() {
	// Events are enqueued before anybody subscribes.
	uid := types.NewUserID()

	s.Require().NoError(s.stream.Publish(s.Ctx, uid, s.newMessageEvent(uid, "early bird")))

	events, err := s.stream.Subscribe(s.Ctx, uid)
	s.Require().NoError(err)

	// Connected is synthesized fresh, not read from the queue.
	s.requireConnected(events)
	s.Equal([]string{"early bird"}, <-readMessageBodies(events, 1))
}

func (s *ServiceSuite) TestIsolationBetweenUsers() {
	uid1, uid2 := types.NewUserID(), types.NewUserID()

	events1, err := s.stream.Subscribe(s.Ctx, uid1)
	s.Require().NoError(err)
	s.requireConnected(events1)

	events2, err := s.stream.Subscribe(s.Ctx, uid2)
	s.Require().NoError(err)
	s.requireConnected(events2)

	s.Require().NoError(s.stream.Publish(s.Ctx, uid1, s.newMessageEvent(uid1, "for uid1 only")))

	s.Equal([]string{"for uid1 only"}, <-readMessageBodies(events1, 1))

	select {
	case ev := <-events2:
		s.FailNowf("unexpected event for uid2", "%v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}

func (s *ServiceSuite) TestFanOutDeliversOneCopyPerRecipient() {
	// Sender A is excluded from the recipient set by the caller.
	author, b, c := types.NewUserID(), types.NewUserID(), types.NewUserID()

	eventsA, err := s.stream.Subscribe(s.Ctx, author)
	s.Require().NoError(err)
	s.requireConnected(eventsA)

	eventsB, err := s.stream.Subscribe(s.Ctx, b)
	s.Require().NoError(err)
	s.requireConnected(eventsB)

	eventsC, err := s.stream.Subscribe(s.Ctx, c)
	s.Require().NoError(err)
	s.requireConnected(eventsC)

	for _, recipient := range []types.UserID{b, c} {
		s.Require().NoError(s.stream.Publish(s.Ctx, recipient, s.newMessageEvent(author, "community news")))
	}

	s.Equal([]string{"community news"}, <-readMessageBodies(eventsB, 1))
	s.Equal([]string{"community news"}, <-readMessageBodies(eventsC, 1))

	select {
	case ev := <-eventsA:
		s.FailNowf("author got own event", "%v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}

func (s *ServiceSuite) TestBacklogSurvivesReconnect() {
	uid := types.NewUserID()

	// First tab connects and goes away.
	ctx, cancel := context.WithCancel(s.Ctx)
	events, err := s.stream.Subscribe(ctx, uid)
	s.Require().NoError(err)
	s.requireConnected(events)

	cancel()
	s.requireClosed(events)

	// Events keep accumulating while the client is offline.
	for i := 0; i < 3; i++ {
		s.Require().NoError(s.stream.Publish(s.Ctx, uid, s.newMessageEvent(uid, strconv.Itoa(i))))
	}

	// Reconnect gets a fresh Connected and then the whole backlog in order.
	events, err = s.stream.Subscribe(s.Ctx, uid)
	s.Require().NoError(err)
	s.requireConnected(events)
	s.Equal([]string{"0", "1", "2"}, <-readMessageBodies(events, 3))
}

func (s *ServiceSuite) TestCancellationStopsStreamWithPendingItems() {
	uid := types.NewUserID()

	ctx, cancel := context.WithCancel(s.Ctx)
	events, err := s.stream.Subscribe(ctx, uid)
	s.Require().NoError(err)
	s.requireConnected(events)

	for i := 0; i < 100; i++ {
		s.Require().NoError(s.stream.Publish(s.Ctx, uid, s.newMessageEvent(uid, strconv.Itoa(i))))
	}

	cancel()
	s.requireClosed(events)
}

func (s *ServiceSuite) TestConcurrentFirstReference() {
	// N concurrent publishes race to create the queue of an unseen user;
	// all of them must land in the same single queue.
	const publishers = 16

	uid := types.NewUserID()

	var wg sync.WaitGroup
	wg.Add(publishers)
	for i := 0; i < publishers; i++ {
		go func(i int) {
			defer wg.Done()
			s.NoError(s.stream.Publish(s.Ctx, uid, s.newMessageEvent(uid, strconv.Itoa(i))))
		}(i)
	}
	wg.Wait()

	events, err := s.stream.Subscribe(s.Ctx, uid)
	s.Require().NoError(err)
	s.requireConnected(events)

	expected := make([]string, 0, publishers)
	for i := 0; i < publishers; i++ {
		expected = append(expected, strconv.Itoa(i))
	}
	s.ElementsMatch(expected, <-readMessageBodies(events, publishers))
}

func (s *ServiceSuite) TestSingleDeliveryWithCompetingSubscribers() {
	// Two tabs of one user share a single queue: every event goes to exactly
	// one of them, never to both.
	const messagesCount = 20

	uid := types.NewUserID()

	tab1, err := s.stream.Subscribe(s.Ctx, uid)
	s.Require().NoError(err)
	s.requireConnected(tab1)

	tab2, err := s.stream.Subscribe(s.Ctx, uid)
	s.Require().NoError(err)
	s.requireConnected(tab2)

	expected := make([]string, 0, messagesCount)
	for i := 0; i < messagesCount; i++ {
		v := strconv.Itoa(i)
		s.Require().NoError(s.stream.Publish(s.Ctx, uid, s.newMessageEvent(uid, v)))
		expected = append(expected, v)
	}

	received := make([]string, 0, messagesCount)
	for i := 0; i < messagesCount; i++ {
		var ev eventstream.Event
		select {
		case ev = <-tab1:
		case ev = <-tab2:
		case <-time.After(time.Second):
			s.FailNow("lost events")
		}
		received = append(received, ev.(*eventstream.NewMessageEvent).Message.Body)
	}
	s.ElementsMatch(expected, received)

	// Nothing is delivered twice.
	select {
	case ev := <-tab1:
		s.FailNowf("duplicated event", "%v", ev)
	case ev := <-tab2:
		s.FailNowf("duplicated event", "%v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}

func (s *ServiceSuite) TestPublishInvalidEvent() {
	uid := types.NewUserID()

	events, err := s.stream.Subscribe(s.Ctx, uid)
	s.Require().NoError(err)
	s.requireConnected(events)

	// Not filled event.
	err = s.stream.Publish(s.Ctx, uid, &eventstream.NewMessageEvent{})
	s.Require().Error(err)

	select {
	case ev := <-events:
		s.FailNowf("unexpected event", "%v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}

func (s *ServiceSuite) TestPublishWithoutSubscribers() {
	// Publishing to a user that never subscribes just grows that user's queue.
	err := s.stream.Publish(s.Ctx, types.NewUserID(), s.newMessageEvent(types.NewUserID(), "nobody reads me"))
	s.Require().NoError(err)
}

func (s *ServiceSuite) requireConnected(events <-chan eventstream.Event) {
	s.T().Helper()

	select {
	case ev, ok := <-events:
		s.Require().True(ok, "stream closed before Connected")
		connected, isConnected := ev.(*eventstream.ConnectedEvent)
		s.Require().Truef(isConnected, "first event is %T, not ConnectedEvent", ev)
		s.Require().False(connected.EventID.IsZero())
	case <-time.After(time.Second):
		s.FailNow("no Connected event")
	}
}

func (s *ServiceSuite) requireClosed(events <-chan eventstream.Event) {
	s.T().Helper()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			s.FailNow("stream is not closed")
		}
	}
}

func (s *ServiceSuite) newMessageEvent(authorID types.UserID, body string) eventstream.Event {
	return eventstream.NewNewMessageEvent(
		types.NewEventID(),
		types.NewRequestID(),
		eventstream.MessageSnapshot{
			ID:        types.NewMessageID(),
			ChannelID: types.NewChannelID(),
			AuthorID:  authorID,
			Body:      body,
			CreatedAt: time.Now(),
		},
	)
}

// readMessageBodies reads n message events from the stream.
// If n is negative, then the function reads the stream until it is closed.
func readMessageBodies(stream <-chan eventstream.Event, n int) <-chan []string {
	result := make(chan []string)
	var bodies []string // No preallocation, n can be negative.
	go func() {
		for ev := range stream {
			bodies = append(bodies, ev.(*eventstream.NewMessageEvent).Message.Body)
			if n != -1 && len(bodies) == n {
				break
			}
		}
		result <- bodies
	}()
	return result
}
