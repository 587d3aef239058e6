package messagesrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gatherly/community-service/internal/types"
)

var ErrMsgNotFound = errors.New("message not found")

func (r *Repo) GetMessageByID(ctx context.Context, msgID types.MessageID) (*Message, error) {
	var msg Message
	err := r.db.Conn(ctx).First(&msg, "id = ?", msgID).Error
	if isNotFound(err) {
		return nil, ErrMsgNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query message: %v", err)
	}
	return &msg, nil
}

// GetMessageByRequestID makes message sending idempotent: a client retry with
// the same request id returns the originally created message.
func (r *Repo) GetMessageByRequestID(ctx context.Context, reqID types.RequestID) (*Message, error) {
	var msg Message
	err := r.db.Conn(ctx).First(&msg, "initial_request_id = ?", reqID).Error
	if isNotFound(err) {
		return nil, ErrMsgNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query message by request id: %v", err)
	}
	return &msg, nil
}

func (r *Repo) Create(
	ctx context.Context,
	reqID types.RequestID,
	channelID types.ChannelID,
	authorID types.UserID,
	body string,
	attachmentIDs []types.AttachmentID,
) (*Message, error) {
	msg := Message{
		ID:               types.NewMessageID(),
		InitialRequestID: reqID,
		ChannelID:        channelID,
		AuthorID:         authorID,
		Body:             body,
		CreatedAt:        time.Now(),
	}

	if err := r.db.Conn(ctx).Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("create message: %v", err)
	}

	for _, id := range attachmentIDs {
		attachment := Attachment{ID: id, MessageID: msg.ID}
		if err := r.db.Conn(ctx).Create(&attachment).Error; err != nil {
			return nil, fmt.Errorf("bind attachment %v: %v", id, err)
		}
	}

	return &msg, nil
}

// SoftDelete marks the message deleted, keeping the row so that history and
// pins stay consistent.
func (r *Repo) SoftDelete(ctx context.Context, msgID types.MessageID) error {
	result := r.db.Conn(ctx).Model(&Message{}).
		Where("id = ? AND is_deleted = ?", msgID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return fmt.Errorf("soft delete message: %v", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMsgNotFound
	}
	return nil
}

func (r *Repo) AttachmentIDs(ctx context.Context, msgID types.MessageID) ([]types.AttachmentID, error) {
	var ids []types.AttachmentID
	err := r.db.Conn(ctx).Model(&Attachment{}).
		Where("message_id = ?", msgID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("query attachments: %v", err)
	}
	return ids, nil
}
