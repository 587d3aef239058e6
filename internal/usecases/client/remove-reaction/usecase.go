package removereaction

import (
	"context"
	"errors"
	"fmt"

	messagesrepo "github.com/gatherly/community-service/internal/repositories/messages"
	eventstream "github.com/gatherly/community-service/internal/services/event-stream"
	"github.com/gatherly/community-service/internal/types"
)

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrMsgNotFound      = errors.New("message not found")
	ErrNotAMember       = errors.New("actor is not a channel member")
	ErrReactionNotFound = errors.New("reaction not found")
)

type channelsRepository interface {
	IsMember(ctx context.Context, channelID types.ChannelID, userID types.UserID) (bool, error)
	MemberIDsExcept(ctx context.Context, channelID types.ChannelID, except types.UserID) ([]types.UserID, error)
}

type messagesRepository interface {
	GetMessageByID(ctx context.Context, msgID types.MessageID) (*messagesrepo.Message, error)
	RemoveReaction(
		ctx context.Context,
		msgID types.MessageID,
		userID types.UserID,
		emoji string,
	) (*messagesrepo.Reaction, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, userID types.UserID, event eventstream.Event) error
}

type transactor interface {
	RunInTx(ctx context.Context, f func(context.Context) error) error
}

//go:generate options-gen -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	channelsRepo channelsRepository `option:"mandatory" validate:"required"`
	msgRepo      messagesRepository `option:"mandatory" validate:"required"`
	eventStream  eventPublisher     `option:"mandatory" validate:"required"`
	txtor        transactor         `option:"mandatory" validate:"required"`
}

type UseCase struct {
	Options
}

func New(opts Options) (UseCase, error) {
	if err := opts.Validate(); err != nil {
		return UseCase{}, fmt.Errorf("validate options: %v", err)
	}
	return UseCase{Options: opts}, nil
}

func (u UseCase) Handle(ctx context.Context, req Request) (Response, error) {
	if err := req.Validate(); err != nil {
		return Response{}, fmt.Errorf("validate request: %w: %v", ErrInvalidRequest, err)
	}

	var reaction *messagesrepo.Reaction
	var recipients []types.UserID

	if err := u.txtor.RunInTx(ctx, func(ctx context.Context) error {
		msg, err := u.msgRepo.GetMessageByID(ctx, req.MessageID)
		if err != nil {
			if errors.Is(err, messagesrepo.ErrMsgNotFound) {
				return ErrMsgNotFound
			}
			return fmt.Errorf("get message: %v", err)
		}

		ok, err := u.channelsRepo.IsMember(ctx, msg.ChannelID, req.ActorID)
		if err != nil {
			return fmt.Errorf("check membership: %v", err)
		}
		if !ok {
			return ErrNotAMember
		}

		reaction, err = u.msgRepo.RemoveReaction(ctx, msg.ID, req.ActorID, req.Emoji)
		if err != nil {
			if errors.Is(err, messagesrepo.ErrReactionNotFound) {
				return ErrReactionNotFound
			}
			return fmt.Errorf("remove reaction: %v", err)
		}

		recipients, err = u.channelsRepo.MemberIDsExcept(ctx, msg.ChannelID, req.ActorID)
		if err != nil {
			return fmt.Errorf("resolve recipients: %v", err)
		}
		return nil
	}); err != nil {
		return Response{}, fmt.Errorf("`remove reaction` tx: %w", err)
	}

	for _, uid := range recipients {
		err := eventstream.PublishReactionRemoved(ctx, u.eventStream, uid, req.ID,
			reaction.ID, reaction.MessageID, reaction.ChannelID, reaction.UserID, reaction.Emoji)
		if err != nil {
			return Response{}, fmt.Errorf("publish reaction removed event: %v", err)
		}
	}

	return Response{ReactionID: reaction.ID}, nil
}
