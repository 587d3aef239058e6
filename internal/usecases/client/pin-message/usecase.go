package pinmessage

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
	ErrNotAMember     = errors.New("actor is not a channel member")
	ErrAlreadyPinned  = errors.New("message already pinned")
)

type channelsRepository interface {
	IsMember(ctx context.Context, channelID types.ChannelID, userID types.UserID) (bool, error)
	MemberIDsExcept(ctx context.Context, channelID types.ChannelID, except types.UserID) ([]types.UserID, error)
}

type messagesRepository interface {
	GetMessageByID(ctx context.Context, msgID types.MessageID) (*messagesrepo.Message, error)
	PinMessage(
		ctx context.Context,
		msgID types.MessageID,
		channelID types.ChannelID,
		pinnedBy types.UserID,
	) (*messagesrepo.Pin, error)
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

	var pin *messagesrepo.Pin
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

		pin, err = u.msgRepo.PinMessage(ctx, msg.ID, msg.ChannelID, req.ActorID)
		if err != nil {
			if errors.Is(err, messagesrepo.ErrAlreadyPinned) {
				return ErrAlreadyPinned
			}
			return fmt.Errorf("pin message: %v", err)
		}

		recipients, err = u.channelsRepo.MemberIDsExcept(ctx, msg.ChannelID, req.ActorID)
		if err != nil {
			return fmt.Errorf("resolve recipients: %v", err)
		}
		return nil
	}); err != nil {
		return Response{}, fmt.Errorf("`pin message` tx: %w", err)
	}

	for _, uid := range recipients {
		err := eventstream.PublishMessagePinned(ctx, u.eventStream, uid, req.ID,
			pin.ID, pin.MessageID, pin.ChannelID, pin.PinnedBy, pin.PinnedAt)
		if err != nil {
			return Response{}, fmt.Errorf("publish message pinned event: %v", err)
		}
	}

	return Response{
		PinID:    pin.ID,
		PinnedAt: pin.PinnedAt,
	}, nil
}
