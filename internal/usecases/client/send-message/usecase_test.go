//go:build integration

package sendmessage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	channelsrepo "github.com/gatherly/community-service/internal/repositories/channels"
	messagesrepo "github.com/gatherly/community-service/internal/repositories/messages"
	eventstream "github.com/gatherly/community-service/internal/services/event-stream"
	inmemeventstream "github.com/gatherly/community-service/internal/services/event-stream/in-mem"
	"github.com/gatherly/community-service/internal/testingh"
	"github.com/gatherly/community-service/internal/types"
	sendmessage "github.com/gatherly/community-service/internal/usecases/client/send-message"
)

type UseCaseSuite struct {
	testingh.DBSuite

	channelsRepo *channelsrepo.Repo
	msgRepo      *messagesrepo.Repo
	stream       *inmemeventstream.Service
	uCase        sendmessage.UseCase
}

func TestUseCaseSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, &UseCaseSuite{DBSuite: testingh.NewDBSuite("TestSendMessageUseCaseSuite")})
}

func (s *UseCaseSuite) SetupSuite() {
	s.DBSuite.SetupSuite()

	s.Require().NoError(s.Database.Migrate(
		new(channelsrepo.Channel),
		new(channelsrepo.Member),
		new(messagesrepo.Message),
		new(messagesrepo.Attachment),
	))

	var err error
	s.channelsRepo, err = channelsrepo.New(channelsrepo.NewOptions(s.Database))
	s.Require().NoError(err)
	s.msgRepo, err = messagesrepo.New(messagesrepo.NewOptions(s.Database))
	s.Require().NoError(err)
}

func (s *UseCaseSuite) SetupTest() {
	s.DBSuite.SetupTest()

	s.stream = inmemeventstream.New()

	var err error
	s.uCase, err = sendmessage.New(sendmessage.NewOptions(s.channelsRepo, s.msgRepo, s.stream, s.Database))
	s.Require().NoError(err)
}

func (s *UseCaseSuite) TearDownTest() {
	s.DBSuite.TearDownTest()
	s.Require().NoError(s.stream.Close())
}

func (s *UseCaseSuite) TestRequestValidationError() {
	resp, err := s.uCase.Handle(s.Ctx, sendmessage.Request{})
	s.Require().ErrorIs(err, sendmessage.ErrInvalidRequest)
	s.Empty(resp)
}

func (s *UseCaseSuite) TestChannelNotFound() {
	resp, err := s.uCase.Handle(s.Ctx, sendmessage.Request{
		ID:          types.NewRequestID(),
		AuthorID:    types.NewUserID(),
		ChannelID:   types.NewChannelID(),
		MessageBody: "hello",
	})
	s.Require().ErrorIs(err, sendmessage.ErrChannelNotFound)
	s.Empty(resp)
}

func (s *UseCaseSuite) TestNotAMember() {
	channelID, err := s.channelsRepo.Create(s.Ctx, "community", "General")
	s.Require().NoError(err)

	resp, err := s.uCase.Handle(s.Ctx, sendmessage.Request{
		ID:          types.NewRequestID(),
		AuthorID:    types.NewUserID(),
		ChannelID:   channelID,
		MessageBody: "hello",
	})
	s.Require().ErrorIs(err, sendmessage.ErrNotAMember)
	s.Empty(resp)
}

func (s *UseCaseSuite) TestSuccess_FanOutToOtherMembers() {
	author, member := types.NewUserID(), types.NewUserID()
	channelID := s.newChannel(author, member)

	memberEvents := s.subscribe(member)
	authorEvents := s.subscribe(author)

	reqID := types.NewRequestID()
	resp, err := s.uCase.Handle(s.Ctx, sendmessage.Request{
		ID:          reqID,
		AuthorID:    author,
		ChannelID:   channelID,
		MessageBody: "doors open at seven",
	})
	s.Require().NoError(err)
	s.Require().False(resp.MessageID.IsZero())
	s.Equal(author, resp.AuthorID)
	s.False(resp.CreatedAt.IsZero())

	ev := s.receive(memberEvents)
	msgEv, ok := ev.(*eventstream.NewMessageEvent)
	s.Require().True(ok, "unexpected event %T", ev)
	s.Equal(reqID, msgEv.RequestID)
	s.Equal(resp.MessageID, msgEv.Message.ID)
	s.Equal(channelID, msgEv.Message.ChannelID)
	s.Equal(author, msgEv.Message.AuthorID)
	s.Equal("doors open at seven", msgEv.Message.Body)

	// The author gets no copy of their own message.
	s.requireNoEvent(authorEvents)
}

func (s *UseCaseSuite) TestIdempotentRetry() {
	author, member := types.NewUserID(), types.NewUserID()
	channelID := s.newChannel(author, member)

	memberEvents := s.subscribe(member)

	req := sendmessage.Request{
		ID:          types.NewRequestID(),
		AuthorID:    author,
		ChannelID:   channelID,
		MessageBody: "hello",
	}

	first, err := s.uCase.Handle(s.Ctx, req)
	s.Require().NoError(err)

	second, err := s.uCase.Handle(s.Ctx, req)
	s.Require().NoError(err)
	s.Equal(first.MessageID, second.MessageID)

	// Exactly one event despite two calls.
	s.receive(memberEvents)
	s.requireNoEvent(memberEvents)
}

func (s *UseCaseSuite) newChannel(members ...types.UserID) types.ChannelID {
	s.T().Helper()

	channelID, err := s.channelsRepo.Create(s.Ctx, "community", "General")
	s.Require().NoError(err)
	for _, uid := range members {
		s.Require().NoError(s.channelsRepo.AddMember(s.Ctx, channelID, uid))
	}
	return channelID
}

func (s *UseCaseSuite) subscribe(uid types.UserID) <-chan eventstream.Event {
	s.T().Helper()

	ch, err := s.stream.Subscribe(s.Ctx, uid)
	s.Require().NoError(err)

	ev := s.receive(ch)
	s.Require().IsType(new(eventstream.ConnectedEvent), ev)
	return ch
}

func (s *UseCaseSuite) receive(ch <-chan eventstream.Event) eventstream.Event {
	s.T().Helper()

	select {
	case ev, ok := <-ch:
		s.Require().True(ok, "event stream is closed")
		return ev
	case <-time.After(time.Second):
		s.FailNow("no event received")
		return nil
	}
}

func (s *UseCaseSuite) requireNoEvent(ch <-chan eventstream.Event) {
	s.T().Helper()

	select {
	case ev := <-ch:
		s.FailNowf("unexpected event", "%#v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}
