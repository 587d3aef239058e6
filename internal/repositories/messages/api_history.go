package messagesrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gatherly/community-service/internal/types"
)

const (
	minPageSize = 10
	maxPageSize = 100
)

var (
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrInvalidCursor   = errors.New("invalid cursor")
)

type Cursor struct {
	LastCreatedAt time.Time
	PageSize      int
}

// GetChannelMessages returns a page of channel messages from newest to oldest.
// Either pageSize (the first page) or cursor (subsequent pages) must be passed.
func (r *Repo) GetChannelMessages(
	ctx context.Context,
	channelID types.ChannelID,
	pageSize int,
	cursor *Cursor,
) ([]Message, *Cursor, error) {
	var limit int
	var lastCreatedAt time.Time

	if cursor != nil {
		if err := r.validateCursor(cursor); err != nil {
			return nil, nil, err
		}
		limit = cursor.PageSize
		lastCreatedAt = cursor.LastCreatedAt
	} else {
		if err := r.validatePageSize(pageSize); err != nil {
			return nil, nil, err
		}
		limit = pageSize
	}

	query := r.db.Conn(ctx).
		Where("channel_id = ?", channelID).
		Order("created_at DESC").
		Limit(limit + 1) // One extra row to detect the next page.
	if !lastCreatedAt.IsZero() {
		query = query.Where("created_at < ?", lastCreatedAt)
	}

	var msgs []Message
	if err := query.Find(&msgs).Error; err != nil {
		return nil, nil, fmt.Errorf("query channel messages: %v", err)
	}

	var newCursor *Cursor
	if len(msgs) > limit {
		msgs = msgs[:limit]
		newCursor = &Cursor{
			LastCreatedAt: msgs[len(msgs)-1].CreatedAt,
			PageSize:      limit,
		}
	}
	return msgs, newCursor, nil
}

func (r *Repo) validatePageSize(pageSize int) error {
	if pageSize < minPageSize || pageSize > maxPageSize {
		return ErrInvalidPageSize
	}
	return nil
}

func (r *Repo) validateCursor(cursor *Cursor) error {
	if cursor.LastCreatedAt.IsZero() {
		return ErrInvalidCursor
	}
	if err := r.validatePageSize(cursor.PageSize); err != nil {
		return ErrInvalidCursor
	}
	return nil
}
