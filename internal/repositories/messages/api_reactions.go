package messagesrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gatherly/community-service/internal/types"
)

var (
	ErrReactionExists   = errors.New("reaction already exists")
	ErrReactionNotFound = errors.New("reaction not found")
)

// AddReaction records one user's emoji on a message. The same user cannot
// react with the same emoji twice.
func (r *Repo) AddReaction(
	ctx context.Context,
	msgID types.MessageID,
	channelID types.ChannelID,
	userID types.UserID,
	emoji string,
) (*Reaction, error) {
	reaction := Reaction{
		ID:        types.NewReactionID(),
		MessageID: msgID,
		UserID:    userID,
		Emoji:     emoji,
		ChannelID: channelID,
		CreatedAt: time.Now(),
	}

	err := r.db.Conn(ctx).Create(&reaction).Error
	if isDuplicate(err) {
		return nil, ErrReactionExists
	}
	if err != nil {
		return nil, fmt.Errorf("create reaction: %v", err)
	}
	return &reaction, nil
}

func (r *Repo) RemoveReaction(
	ctx context.Context,
	msgID types.MessageID,
	userID types.UserID,
	emoji string,
) (*Reaction, error) {
	var reaction Reaction
	err := r.db.Conn(ctx).
		First(&reaction, "message_id = ? AND user_id = ? AND emoji = ?", msgID, userID, emoji).Error
	if isNotFound(err) {
		return nil, ErrReactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query reaction: %v", err)
	}

	if err := r.db.Conn(ctx).Delete(&Reaction{}, "id = ?", reaction.ID).Error; err != nil {
		return nil, fmt.Errorf("delete reaction: %v", err)
	}
	return &reaction, nil
}

func (r *Repo) ReactionSummaries(ctx context.Context, msgID types.MessageID) ([]ReactionSummary, error) {
	var summaries []ReactionSummary
	err := r.db.Conn(ctx).Model(&Reaction{}).
		Select("emoji", "count(*) as count").
		Where("message_id = ?", msgID).
		Group("emoji").
		Order("emoji").
		Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("query reaction summaries: %v", err)
	}
	return summaries, nil
}
