// Package chat contains the Chat entity: a communication thread scoped to
// a (package, trip) pair. Notification-type chats carry system coordination
// messages and are unique per pair; negotiation and coordination chats are
// open-ended.
package chat

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/pkg/errs"
	"amenade/internal/pkg/guard"
)

// Type classifies a chat thread.
type Type int

const (
	// TypeUnknown represents an invalid or undefined chat type.
	TypeUnknown Type = iota

	// TypeNotification carries system coordination messages for a
	// (package, trip) pair. At most one exists per pair.
	TypeNotification

	// TypePackageNegotiation carries sender-driven price and terms negotiation.
	TypePackageNegotiation

	// TypeTripCoordination carries traveler-driven logistics coordination.
	TypeTripCoordination
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:            "UNKNOWN",
		TypeNotification:       "NOTIFICATION",
		TypePackageNegotiation: "PACKAGE_NEGOTIATION",
		TypeTripCoordination:   "TRIP_COORDINATION",
	}
}

// Validate rejects TypeUnknown and out-of-range values.
func (t Type) Validate() error {
	if t != TypeNotification && t != TypePackageNegotiation && t != TypeTripCoordination {
		return errs.NewValueIsInvalidErrorWithCause("chatType", fmt.Errorf("%d is not a valid chat type", t))
	}
	return nil
}

// String returns the persisted name of the chat type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// ErrChatIsNotConstructed is returned when using an improperly initialized Chat.
var ErrChatIsNotConstructed = errors.New("Chat must be created via NewChat constructor")

// Message is the most recent message snapshot carried on a chat thread.
// Full message history lives outside this aggregate.
type Message struct {
	SenderID kernel.UUID
	Body     string
	SentAt   time.Time
}

// Chat is a communication thread between a sender and a traveler for a
// specific (package, trip) pair.
type Chat struct {
	id          kernel.UUID
	chatType    Type
	packageID   kernel.UUID
	tripID      kernel.UUID
	participant map[kernel.UUID]struct{}
	ordered     []kernel.UUID
	lastMessage *Message

	guard guard.ConstructorGuard
}

// NewChat creates a chat thread of the given type for a (package, trip)
// pair with an initial participant.
func NewChat(id kernel.UUID, chatType Type, packageID, tripID, initialParticipant kernel.UUID) (*Chat, error) {
	c := &Chat{
		participant: make(map[kernel.UUID]struct{}),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		chatType.Validate(),
		packageID.Validate(),
		tripID.Validate(),
		initialParticipant.Validate(),
	); err != nil {
		return nil, err
	}

	c.id = id
	c.chatType = chatType
	c.packageID = packageID
	c.tripID = tripID
	c.addParticipant(initialParticipant)
	return c, nil
}

// RestoreChat reconstructs a Chat from persistent storage with its full
// participant list and last message snapshot.
func RestoreChat(
	id kernel.UUID,
	chatType Type,
	packageID, tripID kernel.UUID,
	participants []kernel.UUID,
	lastMessage *Message,
) (*Chat, error) {
	if len(participants) == 0 {
		return nil, errs.NewValueIsRequiredError("participants")
	}

	c, err := NewChat(id, chatType, packageID, tripID, participants[0])
	if err != nil {
		return nil, err
	}

	for _, p := range participants[1:] {
		if err = c.AddParticipant(p); err != nil {
			return nil, err
		}
	}

	c.lastMessage = lastMessage
	return c, nil
}

// Validate ensures the Chat was constructed through NewChat or RestoreChat.
func (c *Chat) Validate() error {
	if c == nil {
		return ErrChatIsNotConstructed
	}
	return c.guard.Validate(ErrChatIsNotConstructed)
}

// ID returns the chat's unique identifier.
func (c *Chat) ID() kernel.UUID { return c.id }

// ChatType returns the thread classification.
func (c *Chat) ChatType() Type { return c.chatType }

// PackageID returns the package this thread is scoped to.
func (c *Chat) PackageID() kernel.UUID { return c.packageID }

// TripID returns the trip this thread is scoped to.
func (c *Chat) TripID() kernel.UUID { return c.tripID }

// Participants returns the participant IDs in join order.
func (c *Chat) Participants() []kernel.UUID {
	out := make([]kernel.UUID, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// HasParticipant reports whether the given user is part of the thread.
func (c *Chat) HasParticipant(userID kernel.UUID) bool {
	_, ok := c.participant[userID]
	return ok
}

// LastMessage returns the most recent message snapshot, or nil for a
// thread with no messages yet.
func (c *Chat) LastMessage() *Message {
	if c.lastMessage == nil {
		return nil
	}
	msg := *c.lastMessage
	return &msg
}

// AddParticipant adds a user to the thread. Adding an existing participant
// is a no-op.
func (c *Chat) AddParticipant(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.addParticipant(userID)
	return nil
}

// RecordMessage stores the latest message snapshot on the thread.
// The sender must be a participant.
func (c *Chat) RecordMessage(senderID kernel.UUID, body string, sentAt time.Time) error {
	if !c.HasParticipant(senderID) {
		return errs.NewValueIsInvalidErrorWithCause("senderId",
			fmt.Errorf("user %s is not a participant of chat %s", senderID, c.id))
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return errs.NewValueIsRequiredError("body")
	}

	c.lastMessage = &Message{SenderID: senderID, Body: body, SentAt: sentAt}
	return nil
}

func (c *Chat) addParticipant(userID kernel.UUID) {
	if _, ok := c.participant[userID]; ok {
		return
	}
	c.participant[userID] = struct{}{}
	c.ordered = append(c.ordered, userID)
}
