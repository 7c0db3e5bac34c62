package packages_test

import (
	"fmt"
	"testing"

	"amenade/internal/core/domain/model/packages"
	"amenade/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(packages.Unknown))
		assert.Equal(t, 1, int(packages.Draft))
		assert.Equal(t, 2, int(packages.Posted))
		assert.Equal(t, 3, int(packages.Matched))
		assert.Equal(t, 4, int(packages.InTransit))
		assert.Equal(t, 5, int(packages.Delivered))
		assert.Equal(t, 6, int(packages.Cancelled))
		assert.Equal(t, 7, int(packages.Disputed))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []packages.Status{
			packages.Draft,
			packages.Posted,
			packages.Matched,
			packages.InTransit,
			packages.Delivered,
			packages.Cancelled,
			packages.Disputed,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := packages.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out of range status values", func(t *testing.T) {
		for _, status := range []packages.Status{packages.Status(-1), packages.Status(8), packages.Status(100)} {
			require.Error(t, status.Validate())
		}
	})
}

func TestStatus_String(t *testing.T) {
	tests := map[packages.Status]string{
		packages.Unknown:     "UNKNOWN",
		packages.Draft:       "DRAFT",
		packages.Posted:      "POSTED",
		packages.Matched:     "MATCHED",
		packages.InTransit:   "IN_TRANSIT",
		packages.Delivered:   "DELIVERED",
		packages.Cancelled:   "CANCELLED",
		packages.Disputed:    "DISPUTED",
		packages.Status(100): "UNKNOWN",
	}

	for status, expected := range tests {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatus_Match(t *testing.T) {
	t.Run("posted_package_can_be_matched", func(t *testing.T) {
		newStatus, err := packages.Posted.Match()

		require.NoError(t, err)
		assert.Equal(t, packages.Matched, newStatus)
	})

	t.Run("other_statuses_cannot_be_matched", func(t *testing.T) {
		for _, status := range []packages.Status{
			packages.Draft,
			packages.Matched,
			packages.InTransit,
			packages.Delivered,
			packages.Cancelled,
			packages.Disputed,
		} {
			t.Run(status.String(), func(t *testing.T) {
				_, err := status.Match()
				require.Error(t, err)
				assert.Contains(t, err.Error(), "not a valid status to match")
			})
		}
	})
}

func TestStatus_Post(t *testing.T) {
	t.Run("draft_can_be_posted", func(t *testing.T) {
		newStatus, err := packages.Draft.Post()

		require.NoError(t, err)
		assert.Equal(t, packages.Posted, newStatus)
	})

	t.Run("matched_returns_to_posted_on_unassignment", func(t *testing.T) {
		newStatus, err := packages.Matched.Post()

		require.NoError(t, err)
		assert.Equal(t, packages.Posted, newStatus)
	})

	t.Run("delivered_cannot_be_posted", func(t *testing.T) {
		_, err := packages.Delivered.Post()
		require.Error(t, err)
	})
}

func TestStatus_Lifecycle(t *testing.T) {
	t.Run("full_delivery_lifecycle", func(t *testing.T) {
		status := packages.Draft

		status, err := status.Post()
		require.NoError(t, err)

		status, err = status.Match()
		require.NoError(t, err)

		status, err = status.StartTransit()
		require.NoError(t, err)

		status, err = status.Deliver()
		require.NoError(t, err)

		assert.Equal(t, packages.Delivered, status)
	})

	t.Run("only_matched_can_start_transit", func(t *testing.T) {
		_, err := packages.Posted.StartTransit()
		require.Error(t, err)
	})

	t.Run("only_in_transit_can_be_delivered", func(t *testing.T) {
		_, err := packages.Matched.Deliver()
		require.Error(t, err)
	})

	t.Run("cancel_only_before_assignment", func(t *testing.T) {
		for _, status := range []packages.Status{packages.Draft, packages.Posted} {
			_, err := status.Cancel()
			require.NoError(t, err)
		}
		for _, status := range []packages.Status{packages.Matched, packages.InTransit, packages.Delivered} {
			_, err := status.Cancel()
			require.Error(t, err)
		}
	})

	t.Run("dispute_only_during_or_after_transit", func(t *testing.T) {
		for _, status := range []packages.Status{packages.InTransit, packages.Delivered} {
			_, err := status.Dispute()
			require.NoError(t, err)
		}
		for _, status := range []packages.Status{packages.Draft, packages.Posted, packages.Matched} {
			_, err := status.Dispute()
			require.Error(t, err)
		}
	})
}

func TestStatus_ValidateCanHaveTrip(t *testing.T) {
	t.Run("trip_reference_requires_matched_or_later", func(t *testing.T) {
		for _, status := range []packages.Status{
			packages.Matched, packages.InTransit, packages.Delivered, packages.Disputed,
		} {
			require.NoError(t, status.ValidateCanHaveTrip(true), status.String())
		}

		for _, status := range []packages.Status{packages.Draft, packages.Posted, packages.Cancelled} {
			require.Error(t, status.ValidateCanHaveTrip(true), status.String())
		}
	})

	t.Run("matched_and_in_transit_require_trip", func(t *testing.T) {
		for _, status := range []packages.Status{packages.Matched, packages.InTransit} {
			require.Error(t, status.ValidateCanHaveTrip(false), status.String())
		}

		for _, status := range []packages.Status{packages.Draft, packages.Posted, packages.Cancelled} {
			require.NoError(t, status.ValidateCanHaveTrip(false), status.String())
		}
	})
}
