package gethistory

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherly/community-service/internal/cursor"
	messagesrepo "github.com/gatherly/community-service/internal/repositories/messages"
	"github.com/gatherly/community-service/internal/types"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInvalidCursor  = errors.New("invalid cursor")
	ErrNotAMember     = errors.New("user is not a channel member")
)

type channelsRepository interface {
	IsMember(ctx context.Context, channelID types.ChannelID, userID types.UserID) (bool, error)
}

type messagesRepository interface {
	GetChannelMessages(
		ctx context.Context,
		channelID types.ChannelID,
		pageSize int,
		cursor *messagesrepo.Cursor,
	) ([]messagesrepo.Message, *messagesrepo.Cursor, error)
}

//go:generate options-gen -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	channelsRepo channelsRepository `option:"mandatory" validate:"required"`
	msgRepo      messagesRepository `option:"mandatory" validate:"required"`
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
	resp := Response{}

	if err := req.Validate(); err != nil {
		return resp, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	ok, err := u.channelsRepo.IsMember(ctx, req.ChannelID, req.UserID)
	if err != nil {
		return resp, fmt.Errorf("check membership: %v", err)
	}
	if !ok {
		return resp, ErrNotAMember
	}

	var cur *messagesrepo.Cursor
	if req.Cursor != "" {
		if err := cursor.Decode(req.Cursor, &cur); err != nil {
			return resp, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
		}
	}

	messages, nextCur, err := u.msgRepo.GetChannelMessages(ctx, req.ChannelID, req.PageSize, cur)
	if err != nil {
		if errors.Is(err, messagesrepo.ErrInvalidCursor) {
			return resp, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
		}
		return resp, err
	}

	resp.Messages = make([]Message, 0, len(messages))
	for _, msg := range messages {
		body := msg.Body
		if msg.IsDeleted {
			// Deleted messages keep their place in history but lose content.
			body = ""
		}

		resp.Messages = append(resp.Messages, Message{
			ID:        msg.ID,
			AuthorID:  msg.AuthorID,
			Body:      body,
			CreatedAt: msg.CreatedAt,
			EditedAt:  msg.EditedAt,
			IsDeleted: msg.IsDeleted,
		})
	}

	if nextCur != nil {
		resp.NextCursor, err = cursor.Encode(nextCur)
		if err != nil {
			return resp, err
		}
	}

	return resp, nil
}
