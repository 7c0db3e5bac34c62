package chatrepo

import (
	"context"
	"errors"

	"amenade/internal/core/domain/model/chat"
	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormChatRepository implements ChatRepository using GORM.
type GormChatRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormChatRepository creates a new GORM chat repository.
func NewGormChatRepository(db *gorm.DB, tracker aggregateTracker) *GormChatRepository {
	return &GormChatRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new chat and its participants to the database.
func (r *GormChatRepository) Add(ctx context.Context, aggregate *chat.Chat) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing chat to the database. Participant rows are
// upserted so re-adding an existing participant is a no-op.
func (r *GormChatRepository) Update(ctx context.Context, aggregate *chat.Chat) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ChatDTO{}).
		Where("id = ?", dto.ID).
		Select("chat_type", "package_id", "trip_id",
			"last_message_sender", "last_message_body", "last_message_sent_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if len(dto.Participants) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.Participants).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a chat by ID with its participants.
func (r *GormChatRepository) Get(ctx context.Context, id kernel.UUID) (*chat.Chat, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ChatDTO
	err := r.db.WithContext(ctx).
		Preload("Participants").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("chatId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTypeAndPair retrieves the chat of the given type bound to the
// (package, trip) pair.
func (r *GormChatRepository) GetByTypeAndPair(
	ctx context.Context,
	chatType chat.Type,
	packageID, tripID kernel.UUID,
) (*chat.Chat, error) {
	if err := errors.Join(packageID.Validate(), tripID.Validate()); err != nil {
		return nil, err
	}

	var dto ChatDTO
	err := r.db.WithContext(ctx).
		Preload("Participants").
		First(&dto, "chat_type = ? AND package_id = ? AND trip_id = ?",
			int(chatType), packageID.Bytes(), tripID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("chatId", packageID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
