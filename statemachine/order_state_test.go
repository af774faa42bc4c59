package statemachine

import (
	"testing"

	"campus-eats-api/models"

	"github.com/stretchr/testify/assert"
)

func TestVendorLifecycle(t *testing.T) {
	steps := []struct {
		from, to models.OrderStatus
	}{
		{models.StatusPending, models.StatusConfirmed},
		{models.StatusConfirmed, models.StatusPreparing},
		{models.StatusPreparing, models.StatusReady},
		{models.StatusReady, models.StatusCompleted},
	}
	for _, s := range steps {
		assert.NoError(t, CanTransition(s.from, s.to, "vendor"))
		assert.NoError(t, CanTransition(s.from, s.to, "admin"))
	}
}

func TestCancelFromAnyNonTerminal(t *testing.T) {
	for _, from := range []models.OrderStatus{
		models.StatusPending, models.StatusConfirmed, models.StatusPreparing, models.StatusReady,
	} {
		assert.NoError(t, CanTransition(from, models.StatusCancelled, "vendor"))
	}
	assert.Error(t, CanTransition(models.StatusCompleted, models.StatusCancelled, "vendor"))
	assert.Error(t, CanTransition(models.StatusCancelled, models.StatusCancelled, "vendor"))
}

func TestIllegalMoves(t *testing.T) {
	assert.Error(t, CanTransition(models.StatusCompleted, models.StatusPreparing, "vendor"))
	assert.Error(t, CanTransition(models.StatusPending, models.StatusReady, "vendor"))
	assert.Error(t, CanTransition(models.StatusPending, models.StatusCompleted, "admin"))
}

func TestStudentMayOnlyCancelPending(t *testing.T) {
	assert.NoError(t, CanTransition(models.StatusPending, models.StatusCancelled, "student"))
	assert.Error(t, CanTransition(models.StatusConfirmed, models.StatusCancelled, "student"))
	assert.Error(t, CanTransition(models.StatusPending, models.StatusConfirmed, "student"))
}

func TestTerminalStates(t *testing.T) {
	assert.True(t, IsTerminal(models.StatusCompleted))
	assert.True(t, IsTerminal(models.StatusCancelled))
	assert.False(t, IsTerminal(models.StatusPending))
	assert.Empty(t, ValidTransitionsFrom(models.StatusCompleted))
	assert.Empty(t, ValidTransitionsFrom(models.StatusCancelled))
}

func TestValidTransitionsFrom(t *testing.T) {
	nexts := ValidTransitionsFrom(models.StatusPending)
	assert.ElementsMatch(t, []models.OrderStatus{models.StatusConfirmed, models.StatusCancelled}, nexts)
}
