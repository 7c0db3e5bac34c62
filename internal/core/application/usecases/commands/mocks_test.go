package commands_test

import (
	"context"
	"testing"
	"time"

	"amenade/internal/core/application/usecases/commands"
	"amenade/internal/core/domain/model/chat"
	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/notification"
	"amenade/internal/core/domain/model/packages"
	"amenade/internal/core/domain/model/safety"
	"amenade/internal/core/domain/model/tracking"
	"amenade/internal/core/domain/model/trip"
	"amenade/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPackageRepository struct{ mock.Mock }

func (m *MockPackageRepository) Add(ctx context.Context, p *packages.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Update(ctx context.Context, p *packages.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Get(ctx context.Context, id kernel.UUID) (*packages.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*packages.Package), args.Error(1)
}

func (m *MockPackageRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*packages.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*packages.Package), args.Error(1)
}

func (m *MockPackageRepository) GetAllAssignedToTrip(ctx context.Context, tripID kernel.UUID) ([]*packages.Package, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*packages.Package), args.Error(1)
}

type MockTripRepository struct{ mock.Mock }

func (m *MockTripRepository) Add(ctx context.Context, t *trip.Trip) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTripRepository) Update(ctx context.Context, t *trip.Trip) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTripRepository) Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

func (m *MockTripRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*trip.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

func (m *MockTripRepository) GetAllDueForDeparture(ctx context.Context, now time.Time) ([]*trip.Trip, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trip.Trip), args.Error(1)
}

type MockChatRepository struct{ mock.Mock }

func (m *MockChatRepository) Add(ctx context.Context, c *chat.Chat) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockChatRepository) Update(ctx context.Context, c *chat.Chat) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockChatRepository) Get(ctx context.Context, id kernel.UUID) (*chat.Chat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chat.Chat), args.Error(1)
}

func (m *MockChatRepository) GetByTypeAndPair(
	ctx context.Context, chatType chat.Type, packageID, tripID kernel.UUID,
) (*chat.Chat, error) {
	args := m.Called(ctx, chatType, packageID, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chat.Chat), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetAllForRecipient(
	ctx context.Context, recipientID kernel.UUID,
) ([]*notification.Notification, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) Add(ctx context.Context, e *tracking.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockTrackingRepository) GetAllForPackage(
	ctx context.Context, packageID kernel.UUID,
) ([]*tracking.Event, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tracking.Event), args.Error(1)
}

type MockSafetyRepository struct{ mock.Mock }

func (m *MockSafetyRepository) Add(ctx context.Context, c *safety.Confirmation) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockSafetyRepository) GetAllForPackage(
	ctx context.Context, packageID kernel.UUID,
) ([]*safety.Confirmation, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*safety.Confirmation), args.Error(1)
}

type MockAssignmentUoW struct{ mock.Mock }

func (m *MockAssignmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}

func (m *MockAssignmentUoW) TripRepository() ports.TripRepository {
	args := m.Called()
	return args.Get(0).(ports.TripRepository)
}

func (m *MockAssignmentUoW) ChatRepository() ports.ChatRepository {
	args := m.Called()
	return args.Get(0).(ports.ChatRepository)
}

func (m *MockAssignmentUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

func (m *MockAssignmentUoW) TrackingRepository() ports.TrackingRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingRepository)
}

func (m *MockAssignmentUoW) SafetyRepository() ports.SafetyRepository {
	args := m.Called()
	return args.Get(0).(ports.SafetyRepository)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockPackageUoW struct{ mock.Mock }

func (m *MockPackageUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPackageUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPackageUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPackageUoW) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}

type MockPackageUoWFactory struct{ mock.Mock }

func (m *MockPackageUoWFactory) Create() commands.PackageUoW {
	args := m.Called()
	return args.Get(0).(commands.PackageUoW)
}

type MockTripUoW struct{ mock.Mock }

func (m *MockTripUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTripUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTripUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTripUoW) TripRepository() ports.TripRepository {
	args := m.Called()
	return args.Get(0).(ports.TripRepository)
}

type MockTripUoWFactory struct{ mock.Mock }

func (m *MockTripUoWFactory) Create() commands.TripUoW {
	args := m.Called()
	return args.Get(0).(commands.TripUoW)
}

type MockActivationUoW struct{ mock.Mock }

func (m *MockActivationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockActivationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockActivationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockActivationUoW) TripRepository() ports.TripRepository {
	args := m.Called()
	return args.Get(0).(ports.TripRepository)
}

func (m *MockActivationUoW) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}

func (m *MockActivationUoW) TrackingRepository() ports.TrackingRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingRepository)
}

func (m *MockActivationUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockActivationUoWFactory struct{ mock.Mock }

func (m *MockActivationUoWFactory) Create() commands.ActivationUoW {
	args := m.Called()
	return args.Get(0).(commands.ActivationUoW)
}

func newPostedPackage(t *testing.T, weightKg float64) *packages.Package {
	t.Helper()

	weight, err := kernel.NewWeight(weightKg)
	require.NoError(t, err)
	dimensions, err := packages.NewDimensions(30, 20, 10, weight)
	require.NoError(t, err)
	pickup, err := kernel.NewAddress("12 Marina Rd", "Lagos", "Nigeria")
	require.NoError(t, err)
	delivery, err := kernel.NewAddress("", "Accra", "Ghana")
	require.NoError(t, err)

	pickupDate := time.Now().Add(24 * time.Hour)
	pkg, err := packages.NewPackage(kernel.NewUUID(), "Documents", "Sealed envelope",
		"DOCUMENTS", dimensions, kernel.NewUUID(),
		pickup, pickupDate, delivery, pickupDate.Add(48*time.Hour), 25)
	require.NoError(t, err)
	require.NoError(t, pkg.Post())

	return pkg
}

func newPostedTrip(t *testing.T, spaceKg float64) *trip.Trip {
	t.Helper()

	space, err := kernel.NewWeight(spaceKg)
	require.NoError(t, err)
	origin, err := kernel.NewAddress("", "Lagos", "Nigeria")
	require.NoError(t, err)
	destination, err := kernel.NewAddress("", "Accra", "Ghana")
	require.NoError(t, err)

	departure := time.Now().Add(24 * time.Hour)
	result, err := trip.NewTrip(kernel.NewUUID(), "Lagos to Accra", kernel.NewUUID(),
		space, departure, departure.Add(6*time.Hour), origin, destination)
	require.NoError(t, err)

	return result
}
