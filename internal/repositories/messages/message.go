package messagesrepo

import (
	"time"

	"github.com/gatherly/community-service/internal/types"
)

type Message struct {
	ID               types.MessageID `gorm:"type:uuid;primaryKey"`
	InitialRequestID types.RequestID `gorm:"type:uuid;uniqueIndex;not null"`
	ChannelID        types.ChannelID `gorm:"type:uuid;index;not null"`
	AuthorID         types.UserID    `gorm:"type:uuid;index;not null"`
	Body             string          `gorm:"size:3000;not null"`
	CreatedAt        time.Time       `gorm:"index"`
	EditedAt         *time.Time
	IsDeleted        bool `gorm:"not null;default:false"`
}

type Attachment struct {
	ID        types.AttachmentID `gorm:"type:uuid;primaryKey"`
	MessageID types.MessageID    `gorm:"type:uuid;index;not null"`
}

type Pin struct {
	ID        types.PinID     `gorm:"type:uuid;primaryKey"`
	MessageID types.MessageID `gorm:"type:uuid;uniqueIndex;not null"`
	ChannelID types.ChannelID `gorm:"type:uuid;index;not null"`
	PinnedBy  types.UserID    `gorm:"type:uuid;not null"`
	PinnedAt  time.Time
}

type Reaction struct {
	ID        types.ReactionID `gorm:"type:uuid;primaryKey"`
	MessageID types.MessageID  `gorm:"type:uuid;index:idx_reaction_identity,unique;not null"`
	UserID    types.UserID     `gorm:"type:uuid;index:idx_reaction_identity,unique;not null"`
	Emoji     string           `gorm:"size:32;index:idx_reaction_identity,unique;not null"`
	ChannelID types.ChannelID  `gorm:"type:uuid;index;not null"`
	CreatedAt time.Time
}

// ReactionSummary is the per-emoji aggregate of a message's reactions.
type ReactionSummary struct {
	Emoji string
	Count int
}
