package callback

import (
	"encoding/json"
	"fmt"
)

// Event types.
const (
	EventTypeFollow  = "follow"
	EventTypeMessage = "message"
)

// Source types.
const (
	SourceTypeUser  = "user"
	SourceTypeGroup = "group"
	SourceTypeRoom  = "room"
)

// MessageTypeText is the inbound message type carrying text.
const MessageTypeText = "text"

// Request is the body of a webhook callback. Events are kept raw so that
// one malformed event does not prevent the others from being handled.
type Request struct {
	Destination string            `json:"destination"`
	Events      []json.RawMessage `json:"events"`
}

// Source identifies where an event came from.
type Source struct {
	Type    string `json:"type"`
	UserID  string `json:"userId,omitempty"`
	GroupID string `json:"groupId,omitempty"`
	RoomID  string `json:"roomId,omitempty"`
}

// DeliveryContext tells whether the platform is resending an event.
type DeliveryContext struct {
	IsRedelivery bool `json:"isRedelivery"`
}

// EventBase holds the fields every event carries.
type EventBase struct {
	Type            string          `json:"type"`
	Mode            string          `json:"mode,omitempty"`
	Timestamp       int64           `json:"timestamp"`
	Source          Source          `json:"source"`
	WebhookEventID  string          `json:"webhookEventId,omitempty"`
	DeliveryContext DeliveryContext `json:"deliveryContext"`
	ReplyToken      string          `json:"replyToken,omitempty"`
}

// Base returns the common event fields.
func (e *EventBase) Base() *EventBase { return e }

// Event is one of *FollowEvent, *MessageEvent or *UnknownEvent.
type Event interface {
	Base() *EventBase
	isEvent()
}

// FollowEvent is sent when a user adds the bot as a friend.
type FollowEvent struct {
	EventBase
}

// MessageEvent is sent when a user sends the bot a message.
type MessageEvent struct {
	EventBase
	Message Message `json:"message"`
}

// Message is the content of a MessageEvent. Text is only set for text messages.
type Message struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// UnknownEvent is any event type the bot does not react to.
type UnknownEvent struct {
	EventBase
}

func (*FollowEvent) isEvent()  {}
func (*MessageEvent) isEvent() {}
func (*UnknownEvent) isEvent() {}

// ParseEvent decodes a single raw event into its concrete type.
func ParseEvent(raw json.RawMessage) (Event, error) {
	var base EventBase
	if err := json.Unmarshal(raw, &base); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	switch base.Type {
	case EventTypeFollow:
		return &FollowEvent{EventBase: base}, nil
	case EventTypeMessage:
		ev := &MessageEvent{}
		if err := json.Unmarshal(raw, ev); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message event: %w", err)
		}
		return ev, nil
	default:
		return &UnknownEvent{EventBase: base}, nil
	}
}
