package eventstream

import (
	"context"
	"time"

	"github.com/gatherly/community-service/internal/types"
)

// Typed publish helpers. Each call targets a single recipient; fan-out to a
// channel audience is the caller's responsibility (one call per recipient).

func PublishNewMessage(
	ctx context.Context,
	p Publisher,
	userID types.UserID,
	reqID types.RequestID,
	msg MessageSnapshot,
) error {
	return p.Publish(ctx, userID, NewNewMessageEvent(types.NewEventID(), reqID, msg))
}

func PublishMessageDeleted(
	ctx context.Context,
	p Publisher,
	userID types.UserID,
	reqID types.RequestID,
	msgID types.MessageID,
	channelID types.ChannelID,
) error {
	return p.Publish(ctx, userID, NewMessageDeletedEvent(types.NewEventID(), reqID, msgID, channelID))
}

func PublishMessagePinned(
	ctx context.Context,
	p Publisher,
	userID types.UserID,
	reqID types.RequestID,
	pinID types.PinID,
	msgID types.MessageID,
	channelID types.ChannelID,
	pinnedBy types.UserID,
	pinnedAt time.Time,
) error {
	return p.Publish(ctx, userID, NewMessagePinnedEvent(types.NewEventID(), reqID, pinID, msgID, channelID, pinnedBy, pinnedAt))
}

func PublishMessageUnpinned(
	ctx context.Context,
	p Publisher,
	userID types.UserID,
	reqID types.RequestID,
	pinID types.PinID,
	msgID types.MessageID,
	channelID types.ChannelID,
) error {
	return p.Publish(ctx, userID, NewMessageUnpinnedEvent(types.NewEventID(), reqID, pinID, msgID, channelID))
}

func PublishReactionAdded(
	ctx context.Context,
	p Publisher,
	userID types.UserID,
	reqID types.RequestID,
	reactionID types.ReactionID,
	msgID types.MessageID,
	channelID types.ChannelID,
	reactedBy types.UserID,
	emoji string,
	createdAt time.Time,
) error {
	return p.Publish(ctx, userID, NewReactionAddedEvent(types.NewEventID(), reqID, reactionID, msgID, channelID, reactedBy, emoji, createdAt))
}

func PublishReactionRemoved(
	ctx context.Context,
	p Publisher,
	userID types.UserID,
	reqID types.RequestID,
	reactionID types.ReactionID,
	msgID types.MessageID,
	channelID types.ChannelID,
	reactedBy types.UserID,
	emoji string,
) error {
	return p.Publish(ctx, userID, NewReactionRemovedEvent(types.NewEventID(), reqID, reactionID, msgID, channelID, reactedBy, emoji))
}
