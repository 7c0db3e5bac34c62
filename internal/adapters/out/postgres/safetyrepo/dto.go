// Package safetyrepo provides data transfer objects and mapping functions
// for safety confirmation audit records.
package safetyrepo

import (
	"time"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/safety"

	"github.com/google/uuid"
)

// ConfirmationDTO represents the database structure for persisting safety
// confirmation records. Each checklist flag maps to its own column so audit
// queries can filter on individual affirmations.
type ConfirmationDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	PackageID           uuid.UUID `gorm:"type:uuid;index"`
	TripID              uuid.UUID `gorm:"type:uuid;index"`
	ConfirmedBy         uuid.UUID `gorm:"type:uuid"`
	ConfirmationType    int       `gorm:""`
	LegalCompliance     bool      `gorm:""`
	DamageInspection    bool      `gorm:""`
	AccurateDescription bool      `gorm:""`
	SafetyMeasures      bool      `gorm:""`
	TermsAcceptance     bool      `gorm:""`
	ConfirmedAt         time.Time `gorm:"index"`
}

// TableName specifies the database table name for safety confirmation entities.
func (ConfirmationDTO) TableName() string {
	return "safety_confirmations"
}

// fromDomain converts a safety confirmation to its database representation.
func fromDomain(record *safety.Confirmation) ConfirmationDTO {
	set := record.Confirmations()
	return ConfirmationDTO{
		ID:                  record.ID().Bytes(),
		PackageID:           record.PackageID().Bytes(),
		TripID:              record.TripID().Bytes(),
		ConfirmedBy:         record.ConfirmedBy().Bytes(),
		ConfirmationType:    int(record.Type()),
		LegalCompliance:     set.LegalCompliance,
		DamageInspection:    set.DamageInspection,
		AccurateDescription: set.AccurateDescription,
		SafetyMeasures:      set.SafetyMeasures,
		TermsAcceptance:     set.TermsAcceptance,
		ConfirmedAt:         record.ConfirmedAt(),
	}
}

// toDomain converts a database DTO to a safety confirmation.
func toDomain(dto ConfirmationDTO) (*safety.Confirmation, error) {
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

	confirmedBy, err := kernel.UUIDFromBytes(dto.ConfirmedBy[:])
	if err != nil {
		return nil, err
	}

	set := safety.ConfirmationSet{
		LegalCompliance:     dto.LegalCompliance,
		DamageInspection:    dto.DamageInspection,
		AccurateDescription: dto.AccurateDescription,
		SafetyMeasures:      dto.SafetyMeasures,
		TermsAcceptance:     dto.TermsAcceptance,
	}

	return safety.NewConfirmation(id, packageID, tripID, confirmedBy,
		safety.ConfirmationType(dto.ConfirmationType), set, dto.ConfirmedAt)
}
