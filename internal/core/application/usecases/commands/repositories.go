// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"amenade/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PackageRepoFactory provides access to the package repository within a transaction.
	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	// TripRepoFactory provides access to the trip repository within a transaction.
	TripRepoFactory interface {
		TripRepository() ports.TripRepository
	}

	// ChatRepoFactory provides access to the chat repository within a transaction.
	ChatRepoFactory interface {
		ChatRepository() ports.ChatRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// TrackingRepoFactory provides access to the tracking repository within a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// SafetyRepoFactory provides access to the safety confirmation repository within a transaction.
	SafetyRepoFactory interface {
		SafetyRepository() ports.SafetyRepository
	}

	// PackageUoW manages transactions for package-only operations.
	PackageUoW interface {
		TxManager
		PackageRepoFactory
	}

	// PackageUoWFactory creates new package unit of work instances.
	PackageUoWFactory interface {
		Create() PackageUoW
	}

	// TripUoW manages transactions for trip-only operations.
	TripUoW interface {
		TxManager
		TripRepoFactory
	}

	// TripUoWFactory creates new trip unit of work instances.
	TripUoWFactory interface {
		Create() TripUoW
	}

	// AssignmentUoW manages transactions spanning every aggregate the
	// assignment workflow touches: package, trip, chat, notification,
	// tracking and safety records.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   packageRepo := uow.PackageRepository()
	//   tripRepo := uow.TripRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	AssignmentUoW interface {
		TxManager
		PackageRepoFactory
		TripRepoFactory
		ChatRepoFactory
		NotificationRepoFactory
		TrackingRepoFactory
		SafetyRepoFactory
	}

	// AssignmentUoWFactory creates new unit of work instances for assignment operations.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// ActivationUoW manages transactions for the trip activation job,
	// which touches trips, their packages, tracking and notifications.
	ActivationUoW interface {
		TxManager
		TripRepoFactory
		PackageRepoFactory
		TrackingRepoFactory
		NotificationRepoFactory
	}

	// ActivationUoWFactory creates new unit of work instances for trip activation.
	ActivationUoWFactory interface {
		Create() ActivationUoW
	}
)
