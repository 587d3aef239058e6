package sendmessage

import (
	"context"
	"errors"
	"fmt"

	channelsrepo "github.com/gatherly/community-service/internal/repositories/channels"
	messagesrepo "github.com/gatherly/community-service/internal/repositories/messages"
	eventstream "github.com/gatherly/community-service/internal/services/event-stream"
	"github.com/gatherly/community-service/internal/types"
)

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrChannelNotFound = errors.New("channel not found")
	ErrNotAMember      = errors.New("author is not a channel member")
)

type channelsRepository interface {
	GetByID(ctx context.Context, channelID types.ChannelID) (*channelsrepo.Channel, error)
	IsMember(ctx context.Context, channelID types.ChannelID, userID types.UserID) (bool, error)
	MemberIDsExcept(ctx context.Context, channelID types.ChannelID, except types.UserID) ([]types.UserID, error)
}

type messagesRepository interface {
	GetMessageByRequestID(ctx context.Context, reqID types.RequestID) (*messagesrepo.Message, error)
	Create(
		ctx context.Context,
		reqID types.RequestID,
		channelID types.ChannelID,
		authorID types.UserID,
		body string,
		attachmentIDs []types.AttachmentID,
	) (*messagesrepo.Message, error)
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
		m, err := u.msgRepo.GetMessageByRequestID(ctx, req.ID)
		if nil == err {
			// A client retry, the message is already sent and fanned out.
			msg = m
			return nil
		}
		if !errors.Is(err, messagesrepo.ErrMsgNotFound) {
			return fmt.Errorf("get msg by initial request id: %v", err)
		}

		if _, err := u.channelsRepo.GetByID(ctx, req.ChannelID); err != nil {
			if errors.Is(err, channelsrepo.ErrChannelNotFound) {
				return ErrChannelNotFound
			}
			return fmt.Errorf("get channel: %v", err)
		}

		ok, err := u.channelsRepo.IsMember(ctx, req.ChannelID, req.AuthorID)
		if err != nil {
			return fmt.Errorf("check membership: %v", err)
		}
		if !ok {
			return ErrNotAMember
		}

		m, err = u.msgRepo.Create(ctx, req.ID, req.ChannelID, req.AuthorID, req.MessageBody, req.AttachmentIDs)
		if err != nil {
			return fmt.Errorf("create message: %v", err)
		}

		recipients, err = u.channelsRepo.MemberIDsExcept(ctx, req.ChannelID, req.AuthorID)
		if err != nil {
			return fmt.Errorf("resolve recipients: %v", err)
		}

		msg = m
		return nil
	}); err != nil {
		return Response{}, fmt.Errorf("`send message` tx: %w", err)
	}

	// Fan-out happens after the commit, a queued event must never point to an
	// uncommitted row. A retried request skips it: recipients stay nil.
	snapshot := eventstream.MessageSnapshot{
		ID:            msg.ID,
		ChannelID:     msg.ChannelID,
		AuthorID:      msg.AuthorID,
		Body:          msg.Body,
		CreatedAt:     msg.CreatedAt,
		AttachmentIDs: req.AttachmentIDs,
	}
	for _, uid := range recipients {
		if err := eventstream.PublishNewMessage(ctx, u.eventStream, uid, req.ID, snapshot); err != nil {
			return Response{}, fmt.Errorf("publish new message event: %v", err)
		}
	}

	return Response{
		MessageID: msg.ID,
		AuthorID:  msg.AuthorID,
		CreatedAt: msg.CreatedAt,
	}, nil
}
