package eventstream

import (
	"time"

	"github.com/gatherly/community-service/internal/types"
	"github.com/gatherly/community-service/internal/validator"
)

type Event interface {
	eventMarker()
	Validate() error
}

type event struct{}

func (*event) eventMarker() {}

// ConnectedEvent is synthesized once per subscription, before any queued
// event, so the transport can confirm liveness to the client immediately.
// It is never stored in a queue.
type ConnectedEvent struct {
	event

	EventID types.EventID `validate:"required"`
}

func (e ConnectedEvent) Validate() error {
	return validator.Validator.Struct(e)
}

func NewConnectedEvent(eventID types.EventID) *ConnectedEvent {
	return &ConnectedEvent{EventID: eventID}
}

// NewMessageEvent is a signal about the appearance of a new message in a channel.
type NewMessageEvent struct {
	event

	EventID   types.EventID   `validate:"required"`
	RequestID types.RequestID `validate:"required"`
	Message   MessageSnapshot
}

func (e NewMessageEvent) Validate() error {
	return validator.Validator.Struct(e)
}

func NewNewMessageEvent(
	eventID types.EventID,
	reqID types.RequestID,
	msg MessageSnapshot,
) *NewMessageEvent {
	return &NewMessageEvent{
		EventID:   eventID,
		RequestID: reqID,
		Message:   msg,
	}
}

type MessageDeletedEvent struct {
	event

	EventID   types.EventID   `validate:"required"`
	RequestID types.RequestID `validate:"required"`
	MessageID types.MessageID `validate:"required"`
	ChannelID types.ChannelID `validate:"required"`
}

func (e MessageDeletedEvent) Validate() error {
	return validator.Validator.Struct(e)
}

func NewMessageDeletedEvent(
	eventID types.EventID,
	reqID types.RequestID,
	msgID types.MessageID,
	channelID types.ChannelID,
) *MessageDeletedEvent {
	return &MessageDeletedEvent{
		EventID:   eventID,
		RequestID: reqID,
		MessageID: msgID,
		ChannelID: channelID,
	}
}

type MessagePinnedEvent struct {
	event

	EventID   types.EventID   `validate:"required"`
	RequestID types.RequestID `validate:"required"`
	PinID     types.PinID     `validate:"required"`
	MessageID types.MessageID `validate:"required"`
	ChannelID types.ChannelID `validate:"required"`
	PinnedBy  types.UserID    `validate:"required"`
	PinnedAt  time.Time       `validate:"required"`
}

func (e MessagePinnedEvent) Validate() error {
	return validator.Validator.Struct(e)
}

func NewMessagePinnedEvent(
	eventID types.EventID,
	reqID types.RequestID,
	pinID types.PinID,
	msgID types.MessageID,
	channelID types.ChannelID,
	pinnedBy types.UserID,
	pinnedAt time.Time,
) *MessagePinnedEvent {
	return &MessagePinnedEvent{
		EventID:   eventID,
		RequestID: reqID,
		PinID:     pinID,
		MessageID: msgID,
		ChannelID: channelID,
		PinnedBy:  pinnedBy,
		PinnedAt:  pinnedAt,
	}
}

type MessageUnpinnedEvent struct {
	event

	EventID   types.EventID   `validate:"required"`
	RequestID types.RequestID `validate:"required"`
	PinID     types.PinID     `validate:"required"`
	MessageID types.MessageID `validate:"required"`
	ChannelID types.ChannelID `validate:"required"`
}

func (e MessageUnpinnedEvent) Validate() error {
	return validator.Validator.Struct(e)
}

func NewMessageUnpinnedEvent(
	eventID types.EventID,
	reqID types.RequestID,
	pinID types.PinID,
	msgID types.MessageID,
	channelID types.ChannelID,
) *MessageUnpinnedEvent {
	return &MessageUnpinnedEvent{
		EventID:   eventID,
		RequestID: reqID,
		PinID:     pinID,
		MessageID: msgID,
		ChannelID: channelID,
	}
}

type ReactionAddedEvent struct {
	event

	EventID    types.EventID    `validate:"required"`
	RequestID  types.RequestID  `validate:"required"`
	ReactionID types.ReactionID `validate:"required"`
	MessageID  types.MessageID  `validate:"required"`
	ChannelID  types.ChannelID  `validate:"required"`
	UserID     types.UserID     `validate:"required"`
	Emoji      string           `validate:"required"`
	CreatedAt  time.Time        `validate:"required"`
}

func (e ReactionAddedEvent) Validate() error {
	return validator.Validator.Struct(e)
}

func NewReactionAddedEvent(
	eventID types.EventID,
	reqID types.RequestID,
	reactionID types.ReactionID,
	msgID types.MessageID,
	channelID types.ChannelID,
	userID types.UserID,
	emoji string,
	createdAt time.Time,
) *ReactionAddedEvent {
	return &ReactionAddedEvent{
		EventID:    eventID,
		RequestID:  reqID,
		ReactionID: reactionID,
		MessageID:  msgID,
		ChannelID:  channelID,
		UserID:     userID,
		Emoji:      emoji,
		CreatedAt:  createdAt,
	}
}

type ReactionRemovedEvent struct {
	event

	EventID    types.EventID    `validate:"required"`
	RequestID  types.RequestID  `validate:"required"`
	ReactionID types.ReactionID `validate:"required"`
	MessageID  types.MessageID  `validate:"required"`
	ChannelID  types.ChannelID  `validate:"required"`
	UserID     types.UserID     `validate:"required"`
	Emoji      string           `validate:"required"`
}

func (e ReactionRemovedEvent) Validate() error {
	return validator.Validator.Struct(e)
}

func NewReactionRemovedEvent(
	eventID types.EventID,
	reqID types.RequestID,
	reactionID types.ReactionID,
	msgID types.MessageID,
	channelID types.ChannelID,
	userID types.UserID,
	emoji string,
) *ReactionRemovedEvent {
	return &ReactionRemovedEvent{
		EventID:    eventID,
		RequestID:  reqID,
		ReactionID: reactionID,
		MessageID:  msgID,
		ChannelID:  channelID,
		UserID:     userID,
		Emoji:      emoji,
	}
}
