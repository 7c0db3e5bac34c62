package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	postgres_adapter "amenade/internal/adapters/out/postgres"
	"amenade/internal/adapters/out/postgres/chatrepo"
	"amenade/internal/adapters/out/postgres/notificationrepo"
	"amenade/internal/adapters/out/postgres/packagerepo"
	"amenade/internal/adapters/out/postgres/safetyrepo"
	"amenade/internal/adapters/out/postgres/trackingrepo"
	"amenade/internal/adapters/out/postgres/triprepo"
	"amenade/internal/core/application/usecases/commands"
	"amenade/internal/core/domain/model/chat"
	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/notification"
	"amenade/internal/core/domain/model/packages"
	"amenade/internal/core/domain/model/safety"
	"amenade/internal/core/domain/model/tracking"
	"amenade/internal/core/domain/model/trip"
	"amenade/internal/core/domain/services"
	"amenade/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection
// for all tests, then runs schema migrations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&packagerepo.PackageDTO{},
		&triprepo.TripDTO{},
		&chatrepo.ChatDTO{},
		&chatrepo.ChatParticipantDTO{},
		&notificationrepo.NotificationDTO{},
		&trackingrepo.EventDTO{},
		&safetyrepo.ConfirmationDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE packages, trips, chats, chat_participants, " +
		"notifications, tracking_events, safety_confirmations").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory creates independent
// unit of work instances with access to every repository.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.PackageRepository(), "First instance should provide package repository")
	suite.NotNil(uow1.TripRepository(), "First instance should provide trip repository")
	suite.NotNil(uow1.ChatRepository(), "First instance should provide chat repository")
	suite.NotNil(uow2.NotificationRepository(), "Second instance should provide notification repository")
	suite.NotNil(uow2.TrackingRepository(), "Second instance should provide tracking repository")
	suite.NotNil(uow2.SafetyRepository(), "Second instance should provide safety repository")
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit, and rollback
// operations including repeated begin calls.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for commit and
// rollback without an active transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testPackage := createTestPackage()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.PackageRepository().Add(ctx, testPackage)
	suite.Require().NoError(err)

	retrieved, err := uow.PackageRepository().Get(ctx, testPackage.ID())
	suite.Require().NoError(err)
	suite.Equal(testPackage.ID(), retrieved.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.PackageRepository().Get(ctx, testPackage.ID())
	suite.Require().NoError(err)
	suite.Equal(testPackage.ID(), retrieved.ID())
	suite.Equal(packages.Posted, retrieved.Status())
}

// TestUnitOfWork_AssignmentWorkflow runs the complete package assignment
// workflow across all repositories within a single transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AssignmentWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testPackage := createTestPackage()
	testTrip := createTestTrip()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Step 1: persist both sides of the match
	err = uow.PackageRepository().Add(ctx, testPackage)
	suite.Require().NoError(err)
	err = uow.TripRepository().Add(ctx, testTrip)
	suite.Require().NoError(err)

	// Step 2: reserve space and assign (domain operations)
	err = testTrip.ReserveSpace(testPackage.Weight(), false)
	suite.Require().NoError(err)
	err = testPackage.AssignToTrip(testTrip.ID())
	suite.Require().NoError(err)

	err = uow.PackageRepository().Update(ctx, testPackage)
	suite.Require().NoError(err)
	err = uow.TripRepository().Update(ctx, testTrip)
	suite.Require().NoError(err)

	// Step 3: open the coordination chat
	testChat, err := chat.NewChat(kernel.NewUUID(), chat.TypeNotification,
		testPackage.ID(), testTrip.ID(), testPackage.SenderID())
	suite.Require().NoError(err)
	err = testChat.AddParticipant(testTrip.TravelerID())
	suite.Require().NoError(err)
	err = uow.ChatRepository().Add(ctx, testChat)
	suite.Require().NoError(err)

	// Step 4: side effect records
	event, err := tracking.NewEvent(kernel.NewUUID(), testPackage.ID(),
		tracking.EventMatched, "Package matched with trip", testTrip.Origin().String(), time.Now())
	suite.Require().NoError(err)
	err = uow.TrackingRepository().Add(ctx, event)
	suite.Require().NoError(err)

	note, err := notification.NewNotification(kernel.NewUUID(), testTrip.TravelerID(),
		notification.TypeTripAssignment, "New package assigned", "",
		ptr(testPackage.ID()), ptr(testTrip.ID()), time.Now())
	suite.Require().NoError(err)
	err = uow.NotificationRepository().Add(ctx, note)
	suite.Require().NoError(err)

	record, err := safety.NewConfirmation(kernel.NewUUID(), testPackage.ID(), testTrip.ID(),
		testTrip.TravelerID(), safety.ConfirmationAssignment, completeConfirmationSet(), time.Now())
	suite.Require().NoError(err)
	err = uow.SafetyRepository().Add(ctx, record)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify everything persisted with a fresh unit of work
	newUow := suite.factory.Create()

	retrievedPackage, err := newUow.PackageRepository().Get(ctx, testPackage.ID())
	suite.Require().NoError(err)
	suite.Equal(packages.Matched, retrievedPackage.Status())
	suite.Require().NotNil(retrievedPackage.Trip())
	suite.Equal(testTrip.ID(), *retrievedPackage.Trip())

	retrievedTrip, err := newUow.TripRepository().Get(ctx, testTrip.ID())
	suite.Require().NoError(err)
	suite.InDelta(10.0-testPackage.Weight().Kilograms(),
		retrievedTrip.AvailableSpace().Kilograms(), 0.001)

	retrievedChat, err := newUow.ChatRepository().GetByTypeAndPair(ctx,
		chat.TypeNotification, testPackage.ID(), testTrip.ID())
	suite.Require().NoError(err)
	suite.True(retrievedChat.HasParticipant(testPackage.SenderID()))
	suite.True(retrievedChat.HasParticipant(testTrip.TravelerID()))

	history, err := newUow.TrackingRepository().GetAllForPackage(ctx, testPackage.ID())
	suite.Require().NoError(err)
	suite.Len(history, 1)
	suite.Equal(tracking.EventMatched, history[0].Type())

	notes, err := newUow.NotificationRepository().GetAllForRecipient(ctx, testTrip.TravelerID())
	suite.Require().NoError(err)
	suite.Len(notes, 1)
	suite.Equal(notification.TypeTripAssignment, notes[0].NotificationType())

	records, err := newUow.SafetyRepository().GetAllForPackage(ctx, testPackage.ID())
	suite.Require().NoError(err)
	suite.Len(records, 1)
	suite.Equal(safety.ConfirmationAssignment, records[0].Type())
	suite.True(records[0].Confirmations().IsComplete())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testPackage := createTestPackage()
	testTrip := createTestTrip()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.PackageRepository().Add(ctx, testPackage)
	suite.Require().NoError(err)
	err = uow.TripRepository().Add(ctx, testTrip)
	suite.Require().NoError(err)

	_, err = uow.PackageRepository().Get(ctx, testPackage.ID())
	suite.Require().NoError(err)
	_, err = uow.TripRepository().Get(ctx, testTrip.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.PackageRepository().Get(ctx, testPackage.ID())
	suite.Require().Error(err, "Package should not exist after rollback")
	_, err = newUow.TripRepository().Get(ctx, testTrip.ID())
	suite.Require().Error(err, "Trip should not exist after rollback")
}

// TestUnitOfWork_UnassignmentRestoresSpace verifies that releasing a package
// writes the NULL trip reference and restored capacity back to the database.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_UnassignmentRestoresSpace() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testPackage := createTestPackage()
	testTrip := createTestTrip()

	err := uow.PackageRepository().Add(ctx, testPackage)
	suite.Require().NoError(err)
	err = uow.TripRepository().Add(ctx, testTrip)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = testTrip.ReserveSpace(testPackage.Weight(), false)
	suite.Require().NoError(err)
	err = testPackage.AssignToTrip(testTrip.ID())
	suite.Require().NoError(err)
	err = uow.PackageRepository().Update(ctx, testPackage)
	suite.Require().NoError(err)
	err = uow.TripRepository().Update(ctx, testTrip)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Undo the assignment in a second transaction
	secondUow := suite.factory.Create()
	err = secondUow.Begin(ctx)
	suite.Require().NoError(err)

	lockedPackage, err := secondUow.PackageRepository().GetForUpdate(ctx, testPackage.ID())
	suite.Require().NoError(err)
	lockedTrip, err := secondUow.TripRepository().GetForUpdate(ctx, testTrip.ID())
	suite.Require().NoError(err)

	lockedTrip.ReleaseSpace(lockedPackage.Weight())
	err = lockedPackage.UnassignFromTrip()
	suite.Require().NoError(err)

	err = secondUow.PackageRepository().Update(ctx, lockedPackage)
	suite.Require().NoError(err)
	err = secondUow.TripRepository().Update(ctx, lockedTrip)
	suite.Require().NoError(err)

	err = secondUow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrievedPackage, err := newUow.PackageRepository().Get(ctx, testPackage.ID())
	suite.Require().NoError(err)
	suite.Equal(packages.Posted, retrievedPackage.Status())
	suite.Nil(retrievedPackage.Trip(), "Trip reference should be NULL after unassignment")

	retrievedTrip, err := newUow.TripRepository().Get(ctx, testTrip.ID())
	suite.Require().NoError(err)
	suite.InDelta(10.0, retrievedTrip.AvailableSpace().Kilograms(), 0.001)
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained from
// different unit of work instances operate in isolated transactions.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	package1 := createTestPackage()
	package2 := createTestPackage()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.PackageRepository().Add(ctx, package1)
	suite.Require().NoError(err)
	err = uow2.PackageRepository().Add(ctx, package2)
	suite.Require().NoError(err)

	_, err = uow1.PackageRepository().Get(ctx, package1.ID())
	suite.Require().NoError(err, "UOW1 should see package1")
	_, err = uow1.PackageRepository().Get(ctx, package2.ID())
	suite.Require().Error(err, "UOW1 should not see package2")

	_, err = uow2.PackageRepository().Get(ctx, package2.ID())
	suite.Require().NoError(err, "UOW2 should see package2")
	_, err = uow2.PackageRepository().Get(ctx, package1.ID())
	suite.Require().Error(err, "UOW2 should not see package1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.PackageRepository().Get(ctx, package1.ID())
	suite.Require().NoError(err, "Package1 should persist after commit")
	_, err = newUow.PackageRepository().Get(ctx, package2.ID())
	suite.Require().Error(err, "Package2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work without
// explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testPackage := createTestPackage()

	err := uow.PackageRepository().Add(ctx, testPackage)
	suite.Require().NoError(err)

	retrieved, err := uow.PackageRepository().Get(ctx, testPackage.ID())
	suite.Require().NoError(err)
	suite.Equal(testPackage.ID(), retrieved.ID())

	newUow := suite.factory.Create()
	retrieved, err = newUow.PackageRepository().Get(ctx, testPackage.ID())
	suite.Require().NoError(err)
	suite.Equal(testPackage.ID(), retrieved.ID())
}

// TestUnitOfWork_DepartureSweepQueries verifies the trip activation queries
// return only due posted trips and only the packages matched to them.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DepartureSweepQueries() {
	ctx := context.Background()
	uow := suite.factory.Create()

	dueTrip := createDueTestTrip()
	futureTrip := createTestTrip()

	err := uow.TripRepository().Add(ctx, dueTrip)
	suite.Require().NoError(err)
	err = uow.TripRepository().Add(ctx, futureTrip)
	suite.Require().NoError(err)

	matchedPackage := createTestPackage()
	err = matchedPackage.AssignToTrip(dueTrip.ID())
	suite.Require().NoError(err)
	err = uow.PackageRepository().Add(ctx, matchedPackage)
	suite.Require().NoError(err)

	unmatchedPackage := createTestPackage()
	err = uow.PackageRepository().Add(ctx, unmatchedPackage)
	suite.Require().NoError(err)

	dueTrips, err := uow.TripRepository().GetAllDueForDeparture(ctx, time.Now())
	suite.Require().NoError(err)
	suite.Require().Len(dueTrips, 1)
	suite.Equal(dueTrip.ID(), dueTrips[0].ID())

	assigned, err := uow.PackageRepository().GetAllAssignedToTrip(ctx, dueTrip.ID())
	suite.Require().NoError(err)
	suite.Require().Len(assigned, 1)
	suite.Equal(matchedPackage.ID(), assigned[0].ID())
}

// TestUnitOfWork_ConcurrentAssignmentRace fires two simultaneous assignments
// of the same package against two different trips. The row locks must let
// exactly one through; the loser's trip keeps its capacity untouched.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentAssignmentRace() {
	ctx := context.Background()

	testPackage := createTestPackage()
	firstTrip := createTestTrip()
	secondTrip := createTestTrip()

	seed := suite.factory.Create()
	suite.Require().NoError(seed.PackageRepository().Add(ctx, testPackage))
	suite.Require().NoError(seed.TripRepository().Add(ctx, firstTrip))
	suite.Require().NoError(seed.TripRepository().Add(ctx, secondTrip))

	handler := commands.NewAssignPackageCommandHandler(
		assignmentUoWFactory{factory: suite.factory},
		services.NewCapacityPolicy(true),
	)

	actorID := testPackage.SenderID()
	candidates := []*trip.Trip{firstTrip, secondTrip}
	results := make([]error, len(candidates))

	var wg sync.WaitGroup
	for i, candidate := range candidates {
		cmd, err := commands.NewAssignPackageCommand(testPackage.ID(), candidate.ID(), actorID,
			completeConfirmationSet(), safety.ConfirmationAssignment, commands.NotifyTrip)
		suite.Require().NoError(err)

		wg.Add(1)
		go func(i int, cmd commands.AssignPackageCommand) {
			defer wg.Done()
			_, results[i] = handler.Handle(ctx, cmd)
		}(i, cmd)
	}
	wg.Wait()

	var winners, losers int
	for _, err := range results {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, commands.ErrPackageAlreadyAssigned):
			losers++
		default:
			suite.Require().NoError(err, "Assignment should only fail with already-assigned")
		}
	}
	suite.Equal(1, winners, "Exactly one assignment should succeed")
	suite.Equal(1, losers, "The other assignment should observe the existing match")

	verifyUow := suite.factory.Create()
	retrievedPackage, err := verifyUow.PackageRepository().Get(ctx, testPackage.ID())
	suite.Require().NoError(err)
	suite.Equal(packages.Matched, retrievedPackage.Status())
	suite.Require().NotNil(retrievedPackage.Trip())

	winnerID := *retrievedPackage.Trip()
	for _, candidate := range candidates {
		retrievedTrip, err := verifyUow.TripRepository().Get(ctx, candidate.ID())
		suite.Require().NoError(err)
		if candidate.ID() == winnerID {
			suite.InDelta(10.0-testPackage.Weight().Kilograms(),
				retrievedTrip.AvailableSpace().Kilograms(), 0.001)
		} else {
			suite.InDelta(10.0, retrievedTrip.AvailableSpace().Kilograms(), 0.001,
				"Losing trip should keep its capacity")
		}
	}
}

// assignmentUoWFactory adapts the general unit of work factory to the
// narrower factory the assignment handler depends on.
type assignmentUoWFactory struct {
	factory ports.UnitOfWorkFactory
}

func (f assignmentUoWFactory) Create() commands.AssignmentUoW {
	return f.factory.Create()
}

// createTestPackage creates a posted 3 kg package for testing purposes.
func createTestPackage() *packages.Package {
	weight, _ := kernel.NewWeight(3)
	dimensions, _ := packages.NewDimensions(30, 20, 10, weight)
	pickup, _ := kernel.NewAddress("12 Marina Rd", "Lagos", "Nigeria")
	delivery, _ := kernel.NewAddress("", "Accra", "Ghana")

	pickupDate := time.Now().Add(24 * time.Hour)
	testPackage, _ := packages.NewPackage(kernel.NewUUID(), "Documents", "Sealed envelope",
		"DOCUMENTS", dimensions, kernel.NewUUID(),
		pickup, pickupDate, delivery, pickupDate.Add(48*time.Hour), 25)
	_ = testPackage.Post()
	return testPackage
}

// createTestTrip creates a posted trip with 10 kg of available space.
func createTestTrip() *trip.Trip {
	space, _ := kernel.NewWeight(10)
	origin, _ := kernel.NewAddress("", "Lagos", "Nigeria")
	destination, _ := kernel.NewAddress("", "Accra", "Ghana")

	departure := time.Now().Add(24 * time.Hour)
	testTrip, _ := trip.NewTrip(kernel.NewUUID(), "Lagos to Accra", kernel.NewUUID(),
		space, departure, departure.Add(6*time.Hour), origin, destination)
	return testTrip
}

// createDueTestTrip restores a posted trip whose departure is already past.
func createDueTestTrip() *trip.Trip {
	space, _ := kernel.NewWeight(10)
	origin, _ := kernel.NewAddress("", "Lagos", "Nigeria")
	destination, _ := kernel.NewAddress("", "Accra", "Ghana")

	departure := time.Now().Add(-1 * time.Hour)
	testTrip, _ := trip.RestoreTrip(kernel.NewUUID(), "Lagos to Accra", trip.Posted,
		kernel.NewUUID(), space, departure, departure.Add(6*time.Hour), origin, destination)
	return testTrip
}

func completeConfirmationSet() safety.ConfirmationSet {
	return safety.ConfirmationSet{
		LegalCompliance:     true,
		DamageInspection:    true,
		AccurateDescription: true,
		SafetyMeasures:      true,
		TermsAcceptance:     true,
	}
}

func ptr(id kernel.UUID) *kernel.UUID {
	return &id
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
