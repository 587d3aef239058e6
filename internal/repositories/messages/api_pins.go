package messagesrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gatherly/community-service/internal/types"
)

var (
	ErrAlreadyPinned = errors.New("message already pinned")
	ErrPinNotFound   = errors.New("pin not found")
)

// PinMessage pins the message in its channel. A message carries at most one
// pin; a second attempt fails with ErrAlreadyPinned.
func (r *Repo) PinMessage(
	ctx context.Context,
	msgID types.MessageID,
	channelID types.ChannelID,
	pinnedBy types.UserID,
) (*Pin, error) {
	pin := Pin{
		ID:        types.NewPinID(),
		MessageID: msgID,
		ChannelID: channelID,
		PinnedBy:  pinnedBy,
		PinnedAt:  time.Now(),
	}

	err := r.db.Conn(ctx).Create(&pin).Error
	if isDuplicate(err) {
		return nil, ErrAlreadyPinned
	}
	if err != nil {
		return nil, fmt.Errorf("create pin: %v", err)
	}
	return &pin, nil
}

func (r *Repo) UnpinMessage(ctx context.Context, msgID types.MessageID) (*Pin, error) {
	var pin Pin
	err := r.db.Conn(ctx).First(&pin, "message_id = ?", msgID).Error
	if isNotFound(err) {
		return nil, ErrPinNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query pin: %v", err)
	}

	if err := r.db.Conn(ctx).Delete(&Pin{}, "id = ?", pin.ID).Error; err != nil {
		return nil, fmt.Errorf("delete pin: %v", err)
	}
	return &pin, nil
}

func (r *Repo) GetPin(ctx context.Context, msgID types.MessageID) (*Pin, error) {
	var pin Pin
	err := r.db.Conn(ctx).First(&pin, "message_id = ?", msgID).Error
	if isNotFound(err) {
		return nil, ErrPinNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query pin: %v", err)
	}
	return &pin, nil
}
