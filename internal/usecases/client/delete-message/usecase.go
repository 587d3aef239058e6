package deletemessage

import (
	"context"
	"errors"
	"fmt"

	messagesrepo "github.com/gatherly/community-service/internal/repositories/messages"
	eventstream "github.com/gatherly/community-service/internal/services/event-stream"
	"github.com/gatherly/community-service/internal/types"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrMsgNotFound    = errors.New("message not found")
	ErrNotAuthor      = errors.New("only the author can delete the message")
)

type channelsRepository interface {
	MemberIDsExcept(ctx context.Context, channelID types.ChannelID, except types.UserID) ([]types.UserID, error)
}

type messagesRepository interface {
	GetMessageByID(ctx context.Context, msgID types.MessageID) (*messagesrepo.Message, error)
	SoftDelete(ctx context.Context, msgID types.MessageID) error
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

	var msg *messagesrepo.Message
	var recipients []types.UserID

	if err := u.txtor.RunInTx(ctx, func(ctx context.Context) error {
		m, err := u.msgRepo.GetMessageByID(ctx, req.MessageID)
		if err != nil {
			if errors.Is(err, messagesrepo.ErrMsgNotFound) {
				return ErrMsgNotFound
			}
			return fmt.Errorf("get message: %v", err)
		}

		if m.AuthorID != req.ActorID {
			return ErrNotAuthor
		}

		if err := u.msgRepo.SoftDelete(ctx, req.MessageID); err != nil {
			if errors.Is(err, messagesrepo.ErrMsgNotFound) {
				// Already deleted, a retry. No new fan-out.
				msg = m
				return nil
			}
			return fmt.Errorf("soft delete message: %v", err)
		}

		recipients, err = u.channelsRepo.MemberIDsExcept(ctx, m.ChannelID, req.ActorID)
		if err != nil {
			return fmt.Errorf("resolve recipients: %v", err)
		}

		msg = m
		return nil
	}); err != nil {
		return Response{}, fmt.Errorf("`delete message` tx: %w", err)
	}

	for _, uid := range recipients {
		if err := eventstream.PublishMessageDeleted(ctx, u.eventStream, uid, req.ID, msg.ID, msg.ChannelID); err != nil {
			return Response{}, fmt.Errorf("publish message deleted event: %v", err)
		}
	}

	return Response{
		MessageID: msg.ID,
		ChannelID: msg.ChannelID,
	}, nil
}
