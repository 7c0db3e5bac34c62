package http

import (
	"testing"
	"time"

	"amenade/internal/core/application/usecases/commands"
	"amenade/internal/core/domain/model/chat"
	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/packages"
	"amenade/internal/core/domain/model/trip"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assignedFixture(t *testing.T) (*packages.Package, *trip.Trip, kernel.UUID, kernel.UUID) {
	t.Helper()

	senderID := kernel.NewUUID()
	travelerID := kernel.NewUUID()

	weight, err := kernel.NewWeight(3)
	require.NoError(t, err)
	dimensions, err := packages.NewDimensions(20, 20, 20, weight)
	require.NoError(t, err)
	pickup, err := kernel.NewAddress("1 Marina Rd", "Lagos", "Nigeria")
	require.NoError(t, err)
	delivery, err := kernel.NewAddress("5 High St", "Accra", "Ghana")
	require.NoError(t, err)

	pkg, err := packages.NewPackage(kernel.NewUUID(), "Laptop", "boxed", "electronics",
		dimensions, senderID, pickup, time.Now().Add(24*time.Hour), delivery, time.Now().Add(72*time.Hour), 50)
	require.NoError(t, err)
	require.NoError(t, pkg.Post())

	space, err := kernel.NewWeight(10)
	require.NoError(t, err)
	journey, err := trip.NewTrip(kernel.NewUUID(), "Lagos to Accra", travelerID, space,
		time.Now().Add(24*time.Hour), time.Now().Add(48*time.Hour), pickup, delivery)
	require.NoError(t, err)

	require.NoError(t, journey.ReserveSpace(weight, false))
	require.NoError(t, pkg.AssignToTrip(journey.ID()))

	return pkg, journey, senderID, travelerID
}

func TestAssignmentResponse(t *testing.T) {
	t.Run("should expand the package, trip and chat", func(t *testing.T) {
		pkg, journey, senderID, travelerID := assignedFixture(t)

		thread, err := chat.NewChat(kernel.NewUUID(), chat.TypeNotification, pkg.ID(), journey.ID(), senderID)
		require.NoError(t, err)
		require.NoError(t, thread.AddParticipant(travelerID))

		sentAt := time.Now()
		require.NoError(t, thread.RecordMessage(travelerID, "Package assigned to trip", sentAt))

		response := assignmentResponse(commands.AssignmentResult{Package: pkg, Trip: journey, Chat: thread})

		assert.Equal(t, pkg.ID().String(), response.Package.ID)
		assert.Equal(t, "Laptop", response.Package.Title)
		assert.Equal(t, "MATCHED", response.Package.Status)
		assert.Equal(t, journey.ID().String(), response.Package.TripID)

		assert.Equal(t, journey.ID().String(), response.Trip.ID)
		assert.Equal(t, "Lagos to Accra", response.Trip.Title)
		assert.Equal(t, "POSTED", response.Trip.Status)
		assert.InDelta(t, 7.0, response.Trip.AvailableSpaceKg, 0.001)

		assert.Equal(t, thread.ID().String(), response.Chat.ID)
		assert.ElementsMatch(t, []string{senderID.String(), travelerID.String()}, response.Chat.Participants)
		require.NotNil(t, response.Chat.LastMessage)
		assert.Equal(t, travelerID.String(), response.Chat.LastMessage.SenderID)
		assert.Equal(t, "Package assigned to trip", response.Chat.LastMessage.Body)
		assert.True(t, response.Chat.LastMessage.SentAt.Equal(sentAt))
	})

	t.Run("should omit the last message when the chat has none", func(t *testing.T) {
		pkg, journey, senderID, _ := assignedFixture(t)

		thread, err := chat.NewChat(kernel.NewUUID(), chat.TypeNotification, pkg.ID(), journey.ID(), senderID)
		require.NoError(t, err)

		response := assignmentResponse(commands.AssignmentResult{Package: pkg, Trip: journey, Chat: thread})

		assert.Nil(t, response.Chat.LastMessage)
		assert.Equal(t, []string{senderID.String()}, response.Chat.Participants)
	})
}
