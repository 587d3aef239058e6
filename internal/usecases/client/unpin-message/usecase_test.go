//go:build integration

package unpinmessage_test

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
	unpinmessage "github.com/gatherly/community-service/internal/usecases/client/unpin-message"
)

type UseCaseSuite struct {
	testingh.DBSuite

	channelsRepo *channelsrepo.Repo
	msgRepo      *messagesrepo.Repo
	stream       *inmemeventstream.Service
	uCase        unpinmessage.UseCase
}

func TestUseCaseSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, &UseCaseSuite{DBSuite: testingh.NewDBSuite("TestUnpinMessageUseCaseSuite")})
}

func (s *UseCaseSuite) SetupSuite() {
	s.DBSuite.SetupSuite()

	s.Require().NoError(s.Database.Migrate(
		new(channelsrepo.Channel),
		new(channelsrepo.Member),
		new(messagesrepo.Message),
		new(messagesrepo.Pin),
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
	s.uCase, err = unpinmessage.New(unpinmessage.NewOptions(s.channelsRepo, s.msgRepo, s.stream, s.Database))
	s.Require().NoError(err)
}

func (s *UseCaseSuite) TearDownTest() {
	s.DBSuite.TearDownTest()
	s.Require().NoError(s.stream.Close())
}

func (s *UseCaseSuite) TestRequestValidationError() {
	resp, err := s.uCase.Handle(s.Ctx, unpinmessage.Request{})
	s.Require().ErrorIs(err, unpinmessage.ErrInvalidRequest)
	s.Empty(resp)
}

func (s *UseCaseSuite) TestNotPinned() {
	author := types.NewUserID()
	channelID := s.newChannel(author)
	msg := s.newMessage(channelID, author)

	_, err := s.uCase.Handle(s.Ctx, unpinmessage.Request{
		ID:        types.NewRequestID(),
		ActorID:   author,
		MessageID: msg.ID,
	})
	s.Require().ErrorIs(err, unpinmessage.ErrNotPinned)
}

func (s *UseCaseSuite) TestSuccess_FanOutToOtherMembers() {
	author, member := types.NewUserID(), types.NewUserID()
	channelID := s.newChannel(author, member)
	msg := s.newMessage(channelID, author)

	pin, err := s.msgRepo.PinMessage(s.Ctx, msg.ID, channelID, author)
	s.Require().NoError(err)

	memberEvents := s.subscribe(member)

	reqID := types.NewRequestID()
	resp, err := s.uCase.Handle(s.Ctx, unpinmessage.Request{
		ID:        reqID,
		ActorID:   author,
		MessageID: msg.ID,
	})
	s.Require().NoError(err)
	s.Equal(pin.ID, resp.PinID)

	ev := s.receive(memberEvents)
	unpinEv, ok := ev.(*eventstream.MessageUnpinnedEvent)
	s.Require().True(ok, "unexpected event %T", ev)
	s.Equal(reqID, unpinEv.RequestID)
	s.Equal(pin.ID, unpinEv.PinID)
	s.Equal(msg.ID, unpinEv.MessageID)
	s.Equal(channelID, unpinEv.ChannelID)

	// The pin is gone.
	_, err = s.msgRepo.GetPin(s.Ctx, msg.ID)
	s.Require().ErrorIs(err, messagesrepo.ErrPinNotFound)
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

func (s *UseCaseSuite) newMessage(channelID types.ChannelID, authorID types.UserID) *messagesrepo.Message {
	s.T().Helper()

	msg, err := s.msgRepo.Create(s.Ctx, types.NewRequestID(), channelID, authorID, "pin me", nil)
	s.Require().NoError(err)
	return msg
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
