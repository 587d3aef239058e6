//go:build integration

package messagesrepo_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	messagesrepo "github.com/gatherly/community-service/internal/repositories/messages"
	"github.com/gatherly/community-service/internal/testingh"
	"github.com/gatherly/community-service/internal/types"
)

type MsgRepoSuite struct {
	testingh.DBSuite
	repo *messagesrepo.Repo
}

func TestMsgRepoSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, &MsgRepoSuite{DBSuite: testingh.NewDBSuite("TestMsgRepoSuite")})
}

func (s *MsgRepoSuite) SetupSuite() {
	s.DBSuite.SetupSuite()

	s.Require().NoError(s.Database.Migrate(
		new(messagesrepo.Message),
		new(messagesrepo.Attachment),
		new(messagesrepo.Pin),
		new(messagesrepo.Reaction),
	))

	var err error
	s.repo, err = messagesrepo.New(messagesrepo.NewOptions(s.Database))
	s.Require().NoError(err)
}

func (s *MsgRepoSuite) Test_Create_GetMessageByID() {
	reqID := types.NewRequestID()
	channelID, authorID := types.NewChannelID(), types.NewUserID()

	msg, err := s.repo.Create(s.Ctx, reqID, channelID, authorID, "hello", nil)
	s.Require().NoError(err)
	s.Require().False(msg.ID.IsZero())

	stored, err := s.repo.GetMessageByID(s.Ctx, msg.ID)
	s.Require().NoError(err)
	s.Equal(reqID, stored.InitialRequestID)
	s.Equal(channelID, stored.ChannelID)
	s.Equal(authorID, stored.AuthorID)
	s.Equal("hello", stored.Body)
	s.False(stored.IsDeleted)
}

func (s *MsgRepoSuite) Test_GetMessageByID_NotFound() {
	_, err := s.repo.GetMessageByID(s.Ctx, types.NewMessageID())
	s.Require().ErrorIs(err, messagesrepo.ErrMsgNotFound)
}

func (s *MsgRepoSuite) Test_GetMessageByRequestID() {
	s.Run("message exists", func() {
		reqID := types.NewRequestID()

		created, err := s.repo.Create(s.Ctx, reqID, types.NewChannelID(), types.NewUserID(), "idempotent", nil)
		s.Require().NoError(err)

		msg, err := s.repo.GetMessageByRequestID(s.Ctx, reqID)
		s.Require().NoError(err)
		s.Equal(created.ID, msg.ID)
	})

	s.Run("message does not exist", func() {
		_, err := s.repo.GetMessageByRequestID(s.Ctx, types.NewRequestID())
		s.Require().ErrorIs(err, messagesrepo.ErrMsgNotFound)
	})
}

func (s *MsgRepoSuite) Test_Create_WithAttachments() {
	attachmentIDs := []types.AttachmentID{types.NewAttachmentID(), types.NewAttachmentID()}

	msg, err := s.repo.Create(s.Ctx,
		types.NewRequestID(), types.NewChannelID(), types.NewUserID(), "see attached", attachmentIDs)
	s.Require().NoError(err)

	ids, err := s.repo.AttachmentIDs(s.Ctx, msg.ID)
	s.Require().NoError(err)
	s.ElementsMatch(attachmentIDs, ids)
}

func (s *MsgRepoSuite) Test_SoftDelete() {
	msg, err := s.repo.Create(s.Ctx,
		types.NewRequestID(), types.NewChannelID(), types.NewUserID(), "to be removed", nil)
	s.Require().NoError(err)

	s.Require().NoError(s.repo.SoftDelete(s.Ctx, msg.ID))

	// The row survives deletion but is marked.
	stored, err := s.repo.GetMessageByID(s.Ctx, msg.ID)
	s.Require().NoError(err)
	s.True(stored.IsDeleted)

	// Deleting twice is an error.
	s.Require().ErrorIs(s.repo.SoftDelete(s.Ctx, msg.ID), messagesrepo.ErrMsgNotFound)
}

func (s *MsgRepoSuite) Test_PinMessage() {
	msg, err := s.repo.Create(s.Ctx,
		types.NewRequestID(), types.NewChannelID(), types.NewUserID(), "pin me", nil)
	s.Require().NoError(err)

	pinnedBy := types.NewUserID()

	pin, err := s.repo.PinMessage(s.Ctx, msg.ID, msg.ChannelID, pinnedBy)
	s.Require().NoError(err)
	s.Equal(msg.ID, pin.MessageID)
	s.Equal(pinnedBy, pin.PinnedBy)

	_, err = s.repo.PinMessage(s.Ctx, msg.ID, msg.ChannelID, types.NewUserID())
	s.Require().ErrorIs(err, messagesrepo.ErrAlreadyPinned)

	stored, err := s.repo.GetPin(s.Ctx, msg.ID)
	s.Require().NoError(err)
	s.Equal(pin.ID, stored.ID)
}

func (s *MsgRepoSuite) Test_UnpinMessage() {
	msg, err := s.repo.Create(s.Ctx,
		types.NewRequestID(), types.NewChannelID(), types.NewUserID(), "pin me", nil)
	s.Require().NoError(err)

	_, err = s.repo.PinMessage(s.Ctx, msg.ID, msg.ChannelID, types.NewUserID())
	s.Require().NoError(err)

	pin, err := s.repo.UnpinMessage(s.Ctx, msg.ID)
	s.Require().NoError(err)
	s.Equal(msg.ID, pin.MessageID)

	_, err = s.repo.UnpinMessage(s.Ctx, msg.ID)
	s.Require().ErrorIs(err, messagesrepo.ErrPinNotFound)

	_, err = s.repo.GetPin(s.Ctx, msg.ID)
	s.Require().ErrorIs(err, messagesrepo.ErrPinNotFound)
}

func (s *MsgRepoSuite) Test_AddReaction() {
	msg, err := s.repo.Create(s.Ctx,
		types.NewRequestID(), types.NewChannelID(), types.NewUserID(), "react to me", nil)
	s.Require().NoError(err)

	userID := types.NewUserID()

	reaction, err := s.repo.AddReaction(s.Ctx, msg.ID, msg.ChannelID, userID, "👍")
	s.Require().NoError(err)
	s.Equal(msg.ID, reaction.MessageID)
	s.Equal("👍", reaction.Emoji)

	// Same user, same emoji.
	_, err = s.repo.AddReaction(s.Ctx, msg.ID, msg.ChannelID, userID, "👍")
	s.Require().ErrorIs(err, messagesrepo.ErrReactionExists)

	// Same user, another emoji.
	_, err = s.repo.AddReaction(s.Ctx, msg.ID, msg.ChannelID, userID, "🎉")
	s.Require().NoError(err)

	// Another user, same emoji.
	_, err = s.repo.AddReaction(s.Ctx, msg.ID, msg.ChannelID, types.NewUserID(), "👍")
	s.Require().NoError(err)
}

func (s *MsgRepoSuite) Test_RemoveReaction() {
	msg, err := s.repo.Create(s.Ctx,
		types.NewRequestID(), types.NewChannelID(), types.NewUserID(), "react to me", nil)
	s.Require().NoError(err)

	userID := types.NewUserID()

	_, err = s.repo.AddReaction(s.Ctx, msg.ID, msg.ChannelID, userID, "👍")
	s.Require().NoError(err)

	reaction, err := s.repo.RemoveReaction(s.Ctx, msg.ID, userID, "👍")
	s.Require().NoError(err)
	s.Equal("👍", reaction.Emoji)

	_, err = s.repo.RemoveReaction(s.Ctx, msg.ID, userID, "👍")
	s.Require().ErrorIs(err, messagesrepo.ErrReactionNotFound)
}

func (s *MsgRepoSuite) Test_ReactionSummaries() {
	msg, err := s.repo.Create(s.Ctx,
		types.NewRequestID(), types.NewChannelID(), types.NewUserID(), "popular", nil)
	s.Require().NoError(err)

	for i := 0; i < 3; i++ {
		_, err = s.repo.AddReaction(s.Ctx, msg.ID, msg.ChannelID, types.NewUserID(), "👍")
		s.Require().NoError(err)
	}
	_, err = s.repo.AddReaction(s.Ctx, msg.ID, msg.ChannelID, types.NewUserID(), "🎉")
	s.Require().NoError(err)

	summaries, err := s.repo.ReactionSummaries(s.Ctx, msg.ID)
	s.Require().NoError(err)
	s.Equal([]messagesrepo.ReactionSummary{
		{Emoji: "🎉", Count: 1},
		{Emoji: "👍", Count: 3},
	}, summaries)
}
