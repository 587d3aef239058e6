package clientevents

import (
	"fmt"

	eventstream "github.com/gatherly/community-service/internal/services/event-stream"
	websocketstream "github.com/gatherly/community-service/internal/websocket-stream"
)

var _ websocketstream.EventAdapter = Adapter{}

type Adapter struct{}

func (Adapter) Adapt(sEvent eventstream.Event) (any, error) {
	switch v := sEvent.(type) {
	case *eventstream.ConnectedEvent:
		return ConnectedEvent{
			EventType: "ConnectedEvent",
			EventID:   v.EventID,
		}, nil

	case *eventstream.NewMessageEvent:
		return NewMessageEvent{
			EventType: "NewMessageEvent",
			EventID:   v.EventID,
			RequestID: v.RequestID,
			Message:   adaptMessage(v.Message),
		}, nil

	case *eventstream.MessageDeletedEvent:
		return MessageDeletedEvent{
			EventType: "MessageDeletedEvent",
			EventID:   v.EventID,
			RequestID: v.RequestID,
			MessageID: v.MessageID,
			ChannelID: v.ChannelID,
		}, nil

	case *eventstream.MessagePinnedEvent:
		return MessagePinnedEvent{
			EventType: "MessagePinnedEvent",
			EventID:   v.EventID,
			RequestID: v.RequestID,
			PinID:     v.PinID,
			MessageID: v.MessageID,
			ChannelID: v.ChannelID,
			PinnedBy:  v.PinnedBy,
			PinnedAt:  v.PinnedAt,
		}, nil

	case *eventstream.MessageUnpinnedEvent:
		return MessageUnpinnedEvent{
			EventType: "MessageUnpinnedEvent",
			EventID:   v.EventID,
			RequestID: v.RequestID,
			PinID:     v.PinID,
			MessageID: v.MessageID,
			ChannelID: v.ChannelID,
		}, nil

	case *eventstream.ReactionAddedEvent:
		return ReactionAddedEvent{
			EventType:  "ReactionAddedEvent",
			EventID:    v.EventID,
			RequestID:  v.RequestID,
			ReactionID: v.ReactionID,
			MessageID:  v.MessageID,
			ChannelID:  v.ChannelID,
			UserID:     v.UserID,
			Emoji:      v.Emoji,
			CreatedAt:  v.CreatedAt,
		}, nil

	case *eventstream.ReactionRemovedEvent:
		return ReactionRemovedEvent{
			EventType:  "ReactionRemovedEvent",
			EventID:    v.EventID,
			RequestID:  v.RequestID,
			ReactionID: v.ReactionID,
			MessageID:  v.MessageID,
			ChannelID:  v.ChannelID,
			UserID:     v.UserID,
			Emoji:      v.Emoji,
		}, nil

	default:
		return nil, fmt.Errorf("unknown client event: %v (%T)", v, v)
	}
}

func adaptMessage(m eventstream.MessageSnapshot) Message {
	var reactions []Reaction
	for _, r := range m.Reactions {
		reactions = append(reactions, Reaction{Emoji: r.Emoji, Count: r.Count})
	}

	return Message{
		ID:            m.ID,
		ChannelID:     m.ChannelID,
		AuthorID:      m.AuthorID,
		Body:          m.Body,
		CreatedAt:     m.CreatedAt,
		EditedAt:      m.EditedAt,
		IsDeleted:     m.IsDeleted,
		AttachmentIDs: m.AttachmentIDs,
		Reactions:     reactions,
	}
}
