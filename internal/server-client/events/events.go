package clientevents

import (
	"time"

	"github.com/gatherly/community-service/internal/types"
)

// Wire representation of the stream events. The eventType field is the
// discriminator the client switches on.

type ConnectedEvent struct {
	EventType string        `json:"eventType"`
	EventID   types.EventID `json:"eventId"`
}

type NewMessageEvent struct {
	EventType string          `json:"eventType"`
	EventID   types.EventID   `json:"eventId"`
	RequestID types.RequestID `json:"requestId"`
	Message   Message         `json:"message"`
}

type Message struct {
	ID            types.MessageID     `json:"messageId"`
	ChannelID     types.ChannelID     `json:"channelId"`
	AuthorID      types.UserID        `json:"authorId"`
	Body          string              `json:"body"`
	CreatedAt     time.Time           `json:"createdAt"`
	EditedAt      *time.Time          `json:"editedAt,omitempty"`
	IsDeleted     bool                `json:"isDeleted,omitempty"`
	AttachmentIDs []types.AttachmentID `json:"attachmentIds,omitempty"`
	Reactions     []Reaction          `json:"reactions,omitempty"`
}

type Reaction struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

type MessageDeletedEvent struct {
	EventType string          `json:"eventType"`
	EventID   types.EventID   `json:"eventId"`
	RequestID types.RequestID `json:"requestId"`
	MessageID types.MessageID `json:"messageId"`
	ChannelID types.ChannelID `json:"channelId"`
}

type MessagePinnedEvent struct {
	EventType string          `json:"eventType"`
	EventID   types.EventID   `json:"eventId"`
	RequestID types.RequestID `json:"requestId"`
	PinID     types.PinID     `json:"pinId"`
	MessageID types.MessageID `json:"messageId"`
	ChannelID types.ChannelID `json:"channelId"`
	PinnedBy  types.UserID    `json:"pinnedBy"`
	PinnedAt  time.Time       `json:"pinnedAt"`
}

type MessageUnpinnedEvent struct {
	EventType string          `json:"eventType"`
	EventID   types.EventID   `json:"eventId"`
	RequestID types.RequestID `json:"requestId"`
	PinID     types.PinID     `json:"pinId"`
	MessageID types.MessageID `json:"messageId"`
	ChannelID types.ChannelID `json:"channelId"`
}

type ReactionAddedEvent struct {
	EventType  string           `json:"eventType"`
	EventID    types.EventID    `json:"eventId"`
	RequestID  types.RequestID  `json:"requestId"`
	ReactionID types.ReactionID `json:"reactionId"`
	MessageID  types.MessageID  `json:"messageId"`
	ChannelID  types.ChannelID  `json:"channelId"`
	UserID     types.UserID     `json:"userId"`
	Emoji      string           `json:"emoji"`
	CreatedAt  time.Time        `json:"createdAt"`
}

type ReactionRemovedEvent struct {
	EventType  string           `json:"eventType"`
	EventID    types.EventID    `json:"eventId"`
	RequestID  types.RequestID  `json:"requestId"`
	ReactionID types.ReactionID `json:"reactionId"`
	MessageID  types.MessageID  `json:"messageId"`
	ChannelID  types.ChannelID  `json:"channelId"`
	UserID     types.UserID     `json:"userId"`
	Emoji      string           `json:"emoji"`
}
