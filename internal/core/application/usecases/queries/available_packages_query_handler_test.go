package queries_test

import (
	"context"
	"testing"
	"time"

	"amenade/internal/adapters/out/postgres/packagerepo"
	"amenade/internal/adapters/out/postgres/triprepo"
	"amenade/internal/core/application/usecases/queries"
	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/packages"
	"amenade/internal/core/domain/model/trip"
	"amenade/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type AvailablePackagesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.AvailablePackagesQueryHandler
}

func (suite *AvailablePackagesQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&packagerepo.PackageDTO{}, &triprepo.TripDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewAvailablePackagesQueryHandler(db)
}

func (suite *AvailablePackagesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *AvailablePackagesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE packages, trips").Error
	suite.Require().NoError(err)
}

func (suite *AvailablePackagesQueryHandlerTestSuite) TestHandle_TripNotFound_ReturnsError() {
	query, err := queries.NewAvailablePackagesQuery(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(result)
}

func (suite *AvailablePackagesQueryHandlerTestSuite) TestHandle_FiltersByOwnerStatusAndAssignment() {
	senderID := kernel.NewUUID()
	candidateTrip := suite.saveCandidateTrip()

	// Candidate: the sender's posted unassigned package
	unassigned := suite.saveCandidatePackage(senderID, 24*time.Hour, nil)

	// Excluded: already matched to a trip
	assignedTo := candidateTrip.ID()
	suite.saveCandidatePackage(senderID, 24*time.Hour, &assignedTo)

	// Excluded: belongs to another sender
	suite.saveCandidatePackage(kernel.NewUUID(), 24*time.Hour, nil)

	query, err := queries.NewAvailablePackagesQuery(candidateTrip.ID(), senderID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(unassigned.ID(), result[0].ID)
	suite.Equal(unassigned.Title(), result[0].Title)
	suite.Equal("DOCUMENTS", result[0].Category)
	suite.InDelta(3.0, result[0].WeightKg, 0.001)
	suite.Equal("Lagos", result[0].PickupCity)
	suite.Equal("Accra", result[0].DeliveryCity)
	suite.InDelta(25.0, result[0].OfferedPrice, 0.001)
}

func (suite *AvailablePackagesQueryHandlerTestSuite) TestHandle_OrdersByPickupDate() {
	senderID := kernel.NewUUID()
	candidateTrip := suite.saveCandidateTrip()

	later := suite.saveCandidatePackage(senderID, 72*time.Hour, nil)
	sooner := suite.saveCandidatePackage(senderID, 24*time.Hour, nil)

	query, err := queries.NewAvailablePackagesQuery(candidateTrip.ID(), senderID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(sooner.ID(), result[0].ID)
	suite.Equal(later.ID(), result[1].ID)
}

func (suite *AvailablePackagesQueryHandlerTestSuite) TestHandle_NoCandidates_ReturnsEmptySlice() {
	candidateTrip := suite.saveCandidateTrip()

	query, err := queries.NewAvailablePackagesQuery(candidateTrip.ID(), kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *AvailablePackagesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.AvailablePackagesQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewAvailablePackagesQuery constructor")
}

func (suite *AvailablePackagesQueryHandlerTestSuite) saveCandidatePackage(
	senderID kernel.UUID, pickupIn time.Duration, assignedTrip *kernel.UUID,
) *packages.Package {
	weight, err := kernel.NewWeight(3)
	suite.Require().NoError(err)
	dimensions, err := packages.NewDimensions(30, 20, 10, weight)
	suite.Require().NoError(err)
	pickup, err := kernel.NewAddress("12 Marina Rd", "Lagos", "Nigeria")
	suite.Require().NoError(err)
	delivery, err := kernel.NewAddress("", "Accra", "Ghana")
	suite.Require().NoError(err)

	pickupDate := time.Now().Add(pickupIn)
	pkg, err := packages.NewPackage(kernel.NewUUID(), "Documents", "Sealed envelope",
		"DOCUMENTS", dimensions, senderID,
		pickup, pickupDate, delivery, pickupDate.Add(48*time.Hour), 25)
	suite.Require().NoError(err)
	suite.Require().NoError(pkg.Post())
	if assignedTrip != nil {
		suite.Require().NoError(pkg.AssignToTrip(*assignedTrip))
	}

	repo := packagerepo.NewGormPackageRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), pkg))
	return pkg
}

func (suite *AvailablePackagesQueryHandlerTestSuite) saveCandidateTrip() *trip.Trip {
	space, err := kernel.NewWeight(10)
	suite.Require().NoError(err)
	origin, err := kernel.NewAddress("", "Lagos", "Nigeria")
	suite.Require().NoError(err)
	destination, err := kernel.NewAddress("", "Accra", "Ghana")
	suite.Require().NoError(err)

	departure := time.Now().Add(24 * time.Hour)
	result, err := trip.NewTrip(kernel.NewUUID(), "Lagos to Accra", kernel.NewUUID(),
		space, departure, departure.Add(6*time.Hour), origin, destination)
	suite.Require().NoError(err)

	repo := triprepo.NewGormTripRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), result))
	return result
}

func TestAvailablePackagesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AvailablePackagesQueryHandlerTestSuite))
}
