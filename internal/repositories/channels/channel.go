package channelsrepo

import (
	"time"

	"github.com/gatherly/community-service/internal/types"
)

const (
	KindCommunity = "community"
	KindEvent     = "event"
	KindDirect    = "direct"
)

type Channel struct {
	ID        types.ChannelID `gorm:"type:uuid;primaryKey"`
	Kind      string          `gorm:"size:16;not null"`
	Title     string          `gorm:"size:128"`
	CreatedAt time.Time
}

type Member struct {
	ChannelID types.ChannelID `gorm:"type:uuid;primaryKey"`
	UserID    types.UserID    `gorm:"type:uuid;primaryKey"`
	JoinedAt  time.Time
}

func (Member) TableName() string {
	return "channel_members"
}
