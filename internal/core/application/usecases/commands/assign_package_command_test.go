package commands_test

import (
	"testing"

	"amenade/internal/core/application/usecases/commands"
	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/safety"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allConfirmations() safety.ConfirmationSet {
	return safety.ConfirmationSet{
		LegalCompliance:     true,
		DamageInspection:    true,
		AccurateDescription: true,
		SafetyMeasures:      true,
		TermsAcceptance:     true,
	}
}

func TestNewAssignPackageCommand(t *testing.T) {
	packageID := kernel.NewUUID()
	tripID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	t.Run("creates valid command", func(t *testing.T) {
		cmd, err := commands.NewAssignPackageCommand(packageID, tripID, actorID,
			allConfirmations(), safety.ConfirmationAssignment, commands.NotifyPackage)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.PackageID().IsEqual(packageID))
		assert.True(t, cmd.TripID().IsEqual(tripID))
		assert.True(t, cmd.ActorID().IsEqual(actorID))
		assert.Equal(t, safety.ConfirmationAssignment, cmd.ConfirmationType())
		assert.Equal(t, commands.NotifyPackage, cmd.NotifyTarget())
		assert.True(t, cmd.Confirmations().IsComplete())
	})

	t.Run("rejects incomplete confirmations", func(t *testing.T) {
		confirmations := allConfirmations()
		confirmations.DamageInspection = false

		_, err := commands.NewAssignPackageCommand(packageID, tripID, actorID,
			confirmations, safety.ConfirmationAssignment, commands.NotifyTrip)

		require.ErrorIs(t, err, commands.ErrConfirmationsIncomplete)
	})

	t.Run("rejects unconstructed package id", func(t *testing.T) {
		_, err := commands.NewAssignPackageCommand(kernel.UUID{}, tripID, actorID,
			allConfirmations(), safety.ConfirmationAssignment, commands.NotifyTrip)

		require.Error(t, err)
	})

	t.Run("rejects unknown confirmation type", func(t *testing.T) {
		_, err := commands.NewAssignPackageCommand(packageID, tripID, actorID,
			allConfirmations(), safety.ConfirmationUnknown, commands.NotifyTrip)

		require.Error(t, err)
	})

	t.Run("rejects unknown notify target", func(t *testing.T) {
		_, err := commands.NewAssignPackageCommand(packageID, tripID, actorID,
			allConfirmations(), safety.ConfirmationAssignment, commands.NotifyUnknown)

		require.Error(t, err)
	})

	t.Run("default constructor fails validation", func(t *testing.T) {
		cmd := commands.AssignPackageCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrAssignPackageCommandIsNotConstructed)
	})
}

func TestNotifyTargetFromString(t *testing.T) {
	t.Run("parses wire values", func(t *testing.T) {
		toTrip, err := commands.NotifyTargetFromString("TO_TRIP")
		require.NoError(t, err)
		assert.Equal(t, commands.NotifyTrip, toTrip)

		toPackage, err := commands.NotifyTargetFromString("TO_PACKAGE")
		require.NoError(t, err)
		assert.Equal(t, commands.NotifyPackage, toPackage)
	})

	t.Run("rejects unknown value", func(t *testing.T) {
		_, err := commands.NotifyTargetFromString("TO_EVERYONE")

		require.Error(t, err)
	})
}
