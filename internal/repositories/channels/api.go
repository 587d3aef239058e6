package channelsrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gatherly/community-service/internal/types"
)

var ErrChannelNotFound = errors.New("channel not found")

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func (r *Repo) Create(ctx context.Context, kind, title string) (types.ChannelID, error) {
	channel := Channel{
		ID:        types.NewChannelID(),
		Kind:      kind,
		Title:     title,
		CreatedAt: time.Now(),
	}

	if err := r.db.Conn(ctx).Create(&channel).Error; err != nil {
		return types.ChannelIDNil, fmt.Errorf("create channel: %v", err)
	}
	return channel.ID, nil
}

func (r *Repo) GetByID(ctx context.Context, channelID types.ChannelID) (*Channel, error) {
	var channel Channel
	err := r.db.Conn(ctx).First(&channel, "id = ?", channelID).Error
	if isNotFound(err) {
		return nil, ErrChannelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query channel: %v", err)
	}
	return &channel, nil
}

func (r *Repo) AddMember(ctx context.Context, channelID types.ChannelID, userID types.UserID) error {
	member := Member{
		ChannelID: channelID,
		UserID:    userID,
		JoinedAt:  time.Now(),
	}

	err := r.db.Conn(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&member).Error
	if err != nil {
		return fmt.Errorf("add member: %v", err)
	}
	return nil
}

func (r *Repo) IsMember(ctx context.Context, channelID types.ChannelID, userID types.UserID) (bool, error) {
	var count int64
	err := r.db.Conn(ctx).Model(&Member{}).
		Where("channel_id = ? AND user_id = ?", channelID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("query membership: %v", err)
	}
	return count > 0, nil
}

func (r *Repo) MemberIDs(ctx context.Context, channelID types.ChannelID) ([]types.UserID, error) {
	var ids []types.UserID
	err := r.db.Conn(ctx).Model(&Member{}).
		Where("channel_id = ?", channelID).
		Order("joined_at").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("query members: %v", err)
	}
	return ids, nil
}

// MemberIDsExcept returns the channel audience without the acting user,
// the usual recipient set for event fan-out.
func (r *Repo) MemberIDsExcept(ctx context.Context, channelID types.ChannelID, except types.UserID) ([]types.UserID, error) {
	var ids []types.UserID
	err := r.db.Conn(ctx).Model(&Member{}).
		Where("channel_id = ? AND user_id <> ?", channelID, except).
		Order("joined_at").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("query members: %v", err)
	}
	return ids, nil
}
