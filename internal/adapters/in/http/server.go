// Package http exposes the marketplace over a REST API. Handlers translate
// wire requests into commands and queries, and map domain failures onto
// HTTP status codes without leaking internals to callers.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"amenade/internal/core/application/usecases/commands"
	"amenade/internal/core/application/usecases/queries"
	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/packages"
	"amenade/internal/core/domain/model/safety"
	"amenade/internal/core/domain/model/trip"
	"amenade/internal/core/domain/services"
	"amenade/internal/core/ports"
	"amenade/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	assignPackageHandler   commands.AssignPackageCommandHandler
	unassignPackageHandler commands.UnassignPackageCommandHandler
	createPackageHandler   commands.CreatePackageCommandHandler
	createTripHandler      commands.CreateTripCommandHandler

	// Query handlers
	availableTripsHandler    queries.AvailableTripsQueryHandler
	availablePackagesHandler queries.AvailablePackagesQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	assignPackageHandler commands.AssignPackageCommandHandler,
	unassignPackageHandler commands.UnassignPackageCommandHandler,
	createPackageHandler commands.CreatePackageCommandHandler,
	createTripHandler commands.CreateTripCommandHandler,
	availableTripsHandler queries.AvailableTripsQueryHandler,
	availablePackagesHandler queries.AvailablePackagesQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		assignPackageHandler:     assignPackageHandler,
		unassignPackageHandler:   unassignPackageHandler,
		createPackageHandler:     createPackageHandler,
		createTripHandler:        createTripHandler,
		availableTripsHandler:    availableTripsHandler,
		availablePackagesHandler: availablePackagesHandler,
		logger:                   logger.With("component", "http"),
	}
}

// RegisterRoutes attaches all endpoints to the echo instance. Mutating
// routes are throttled per client by the given rate limiter.
func (s *Server) RegisterRoutes(e *echo.Echo, limiter ports.RateLimiter) {
	throttled := RateLimitMiddleware(limiter, s.logger)

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/assignments", s.AssignPackage, throttled)
	api.DELETE("/assignments/:packageId", s.UnassignPackage, throttled)
	api.POST("/packages", s.CreatePackage, throttled)
	api.POST("/trips", s.CreateTrip, throttled)
	api.GET("/packages/:packageId/available-trips", s.GetAvailableTrips)
	api.GET("/trips/:tripId/available-packages", s.GetAvailablePackages)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// AssignPackage handles POST /api/v1/assignments - matches a package with a trip.
func (s *Server) AssignPackage(ctx echo.Context) error {
	var request AssignPackageRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	packageID, err := kernel.UUIDFromString(request.PackageID)
	if err != nil {
		return badRequest(ctx, "Invalid packageId: "+request.PackageID)
	}
	tripID, err := kernel.UUIDFromString(request.TripID)
	if err != nil {
		return badRequest(ctx, "Invalid tripId: "+request.TripID)
	}
	userID, err := kernel.UUIDFromString(request.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid userId: "+request.UserID)
	}

	confirmationType, err := safety.ConfirmationTypeFromString(request.ConfirmationType)
	if err != nil {
		return badRequest(ctx, "Invalid confirmationType: "+request.ConfirmationType)
	}
	notifyTarget, err := commands.NotifyTargetFromString(request.Notification)
	if err != nil {
		return badRequest(ctx, "Invalid notification target: "+request.Notification)
	}

	confirmations := safety.ConfirmationSet{
		LegalCompliance:     request.Confirmations.LegalCompliance,
		DamageInspection:    request.Confirmations.DamageInspection,
		AccurateDescription: request.Confirmations.AccurateDescription,
		SafetyMeasures:      request.Confirmations.SafetyMeasures,
		TermsAcceptance:     request.Confirmations.TermsAcceptance,
	}

	command, err := commands.NewAssignPackageCommand(packageID, tripID, userID,
		confirmations, confirmationType, notifyTarget)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.assignPackageHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, assignmentResponse(result))
}

// UnassignPackage handles DELETE /api/v1/assignments/:packageId - reverses an assignment.
func (s *Server) UnassignPackage(ctx echo.Context) error {
	packageID, err := kernel.UUIDFromString(ctx.Param("packageId"))
	if err != nil {
		return badRequest(ctx, "Invalid packageId: "+ctx.Param("packageId"))
	}
	userID, err := kernel.UUIDFromString(ctx.QueryParam("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid userId: "+ctx.QueryParam("userId"))
	}

	command, err := commands.NewUnassignPackageCommand(packageID, userID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.unassignPackageHandler.Handle(ctx.Request().Context(), command); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreatePackage handles POST /api/v1/packages - posts a new package.
func (s *Server) CreatePackage(ctx echo.Context) error {
	var request CreatePackageRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	senderID, err := kernel.UUIDFromString(request.SenderID)
	if err != nil {
		return badRequest(ctx, "Invalid senderId: "+request.SenderID)
	}

	weight, err := kernel.NewWeight(request.Dimensions.WeightKg)
	if err != nil {
		return s.writeError(ctx, err)
	}
	dimensions, err := packages.NewDimensions(request.Dimensions.LengthCm,
		request.Dimensions.WidthCm, request.Dimensions.HeightCm, weight)
	if err != nil {
		return s.writeError(ctx, err)
	}
	pickup, err := kernel.NewAddress(request.Pickup.Street, request.Pickup.City, request.Pickup.Country)
	if err != nil {
		return s.writeError(ctx, err)
	}
	delivery, err := kernel.NewAddress(request.Delivery.Street, request.Delivery.City, request.Delivery.Country)
	if err != nil {
		return s.writeError(ctx, err)
	}

	packageID := kernel.NewUUID()
	command, err := commands.NewCreatePackageCommand(packageID, request.Title,
		request.Description, request.Category, dimensions, senderID,
		pickup, request.PickupDate, delivery, request.DeliveryDate, request.OfferedPrice)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.createPackageHandler.Handle(ctx.Request().Context(), command); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: packageID.String()})
}

// CreateTrip handles POST /api/v1/trips - posts a new trip.
func (s *Server) CreateTrip(ctx echo.Context) error {
	var request CreateTripRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	travelerID, err := kernel.UUIDFromString(request.TravelerID)
	if err != nil {
		return badRequest(ctx, "Invalid travelerId: "+request.TravelerID)
	}

	space, err := kernel.NewWeight(request.AvailableSpaceKg)
	if err != nil {
		return s.writeError(ctx, err)
	}
	origin, err := kernel.NewAddress(request.Origin.Street, request.Origin.City, request.Origin.Country)
	if err != nil {
		return s.writeError(ctx, err)
	}
	destination, err := kernel.NewAddress(request.Destination.Street,
		request.Destination.City, request.Destination.Country)
	if err != nil {
		return s.writeError(ctx, err)
	}

	tripID := kernel.NewUUID()
	command, err := commands.NewCreateTripCommand(tripID, request.Title, travelerID,
		space, request.Departure, request.Arrival, origin, destination)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.createTripHandler.Handle(ctx.Request().Context(), command); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: tripID.String()})
}

// GetAvailableTrips handles GET /api/v1/packages/:packageId/available-trips.
func (s *Server) GetAvailableTrips(ctx echo.Context) error {
	packageID, err := kernel.UUIDFromString(ctx.Param("packageId"))
	if err != nil {
		return badRequest(ctx, "Invalid packageId: "+ctx.Param("packageId"))
	}
	userID, err := kernel.UUIDFromString(ctx.QueryParam("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid userId: "+ctx.QueryParam("userId"))
	}

	query, err := queries.NewAvailableTripsQuery(packageID, userID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	trips, err := s.availableTripsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tripCandidates(trips))
}

// GetAvailablePackages handles GET /api/v1/trips/:tripId/available-packages.
func (s *Server) GetAvailablePackages(ctx echo.Context) error {
	tripID, err := kernel.UUIDFromString(ctx.Param("tripId"))
	if err != nil {
		return badRequest(ctx, "Invalid tripId: "+ctx.Param("tripId"))
	}
	userID, err := kernel.UUIDFromString(ctx.QueryParam("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid userId: "+ctx.QueryParam("userId"))
	}

	query, err := queries.NewAvailablePackagesQuery(tripID, userID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	candidates, err := s.availablePackagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, packageCandidates(candidates))
}

// writeError maps a command or query failure onto the HTTP error taxonomy.
// Unmapped failures return a generic body so transaction internals never
// reach the caller.
func (s *Server) writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})

	case errors.Is(err, commands.ErrPackageAlreadyAssigned),
		errors.Is(err, commands.ErrPackageNotAssigned),
		errors.Is(err, services.ErrInsufficientCapacity):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrConfirmationsIncomplete),
		errors.Is(err, trip.ErrDepartureAfterArrival):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})

	default:
		s.logger.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "assignment failed",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
