package eventstream

import (
	"time"

	"github.com/gatherly/community-service/internal/types"
)

// MessageSnapshot is a value copy of a message taken at publish time.
// Later edits of the source message do not affect already published events,
// so the caller must resolve every field before publishing.
type MessageSnapshot struct {
	ID            types.MessageID      `validate:"required"`
	ChannelID     types.ChannelID      `validate:"required"`
	AuthorID      types.UserID         `validate:"required"`
	Body          string               `validate:"max=3000"`
	CreatedAt     time.Time            `validate:"required"`
	EditedAt      *time.Time           `validate:"omitempty"`
	IsDeleted     bool
	AttachmentIDs []types.AttachmentID `validate:"omitempty,max=10"`
	Reactions     []ReactionSummary    `validate:"omitempty,dive"`
}

// ReactionSummary aggregates reactions of one emoji on a message.
type ReactionSummary struct {
	Emoji string `validate:"required"`
	Count int    `validate:"min=1"`
}
