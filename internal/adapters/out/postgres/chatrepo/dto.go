// Package chatrepo provides data transfer objects and mapping functions for
// chat persistence. Participants live in their own table keyed by chat, and
// the last message is embedded as a snapshot on the chat row.
package chatrepo

import (
	"time"

	"amenade/internal/core/domain/model/chat"
	"amenade/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ChatDTO represents the database structure for persisting chat aggregates.
// The (type, package, trip) index backs the find-or-create lookup used by
// the assignment workflow.
type ChatDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ChatType          int        `gorm:"index:idx_chats_type_pair"`
	PackageID         uuid.UUID  `gorm:"type:uuid;index:idx_chats_type_pair"`
	TripID            uuid.UUID  `gorm:"type:uuid;index:idx_chats_type_pair"`
	LastMessageSender *uuid.UUID `gorm:"type:uuid"`
	LastMessageBody   string     `gorm:"type:text"`
	LastMessageSentAt *time.Time

	Participants []ChatParticipantDTO `gorm:"foreignKey:ChatID;references:ID"`
}

// TableName specifies the database table name for chat entities.
func (ChatDTO) TableName() string {
	return "chats"
}

// ChatParticipantDTO represents one user's membership in a chat.
type ChatParticipantDTO struct {
	ChatID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for chat participants.
func (ChatParticipantDTO) TableName() string {
	return "chat_participants"
}

// fromDomain converts a chat domain aggregate to its database representation.
func fromDomain(c *chat.Chat) ChatDTO {
	dto := ChatDTO{
		ID:        c.ID().Bytes(),
		ChatType:  int(c.ChatType()),
		PackageID: c.PackageID().Bytes(),
		TripID:    c.TripID().Bytes(),
	}

	if last := c.LastMessage(); last != nil {
		senderID := last.SenderID.Bytes()
		sentAt := last.SentAt
		dto.LastMessageSender = &senderID
		dto.LastMessageBody = last.Body
		dto.LastMessageSentAt = &sentAt
	}

	for _, participant := range c.Participants() {
		dto.Participants = append(dto.Participants, ChatParticipantDTO{
			ChatID: c.ID().Bytes(),
			UserID: participant.Bytes(),
		})
	}

	return dto
}

// toDomain converts a database DTO to a chat domain aggregate using
// RestoreChat.
func toDomain(dto ChatDTO) (*chat.Chat, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	packageID, err := kernel.UUIDFromBytes(dto.PackageID[:])
	if err != nil {
		return nil, err
	}

	tripID, err := kernel.UUIDFromBytes(dto.TripID[:])
	if err != nil {
		return nil, err
	}

	participants := make([]kernel.UUID, 0, len(dto.Participants))
	for _, participant := range dto.Participants {
		userID, userErr := kernel.UUIDFromBytes(participant.UserID[:])
		if userErr != nil {
			return nil, userErr
		}
		participants = append(participants, userID)
	}

	var lastMessage *chat.Message
	if dto.LastMessageSender != nil && dto.LastMessageSentAt != nil {
		senderID, senderErr := kernel.UUIDFromBytes((*dto.LastMessageSender)[:])
		if senderErr != nil {
			return nil, senderErr
		}

		lastMessage = &chat.Message{
			SenderID: senderID,
			Body:     dto.LastMessageBody,
			SentAt:   *dto.LastMessageSentAt,
		}
	}

	return chat.RestoreChat(id, chat.Type(dto.ChatType), packageID, tripID, participants, lastMessage)
}
