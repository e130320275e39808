package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/zanzibar/internal/models"
)

func TestApplyActivatesEffect(t *testing.T) {
	tr := NewTracker()

	tr.Apply(models.EffectLuckBoost, 20, 2)

	assert.True(t, tr.IsActive(models.EffectLuckBoost))
	mag, ok := tr.Magnitude(models.EffectLuckBoost)
	assert.True(t, ok)
	assert.Equal(t, 20, mag)
	assert.Equal(t, 2, tr.TurnsRemaining(models.EffectLuckBoost))
}

func TestApplyOverwritesInsteadOfStacking(t *testing.T) {
	tr := NewTracker()

	tr.Apply(models.EffectFocusBoost, 30, 2)
	tr.Apply(models.EffectFocusBoost, 15, 4)

	// Last-applied wins: duration and magnitude are replaced, not added
	assert.Equal(t, 4, tr.TurnsRemaining(models.EffectFocusBoost))
	mag, _ := tr.Magnitude(models.EffectFocusBoost)
	assert.Equal(t, 15, mag)

	// Still exactly one instance of the kind
	assert.Len(t, tr.Active(), 1)
}

func TestApplyIgnoresNonPositiveDuration(t *testing.T) {
	tr := NewTracker()

	tr.Apply(models.EffectMoodBoost, 10, 0)

	assert.False(t, tr.IsActive(models.EffectMoodBoost))
}

func TestTickExpiresAfterExactDuration(t *testing.T) {
	tr := NewTracker()
	tr.Apply(models.EffectLuckBoost, 20, 3)

	assert.Empty(t, tr.Tick())
	assert.True(t, tr.IsActive(models.EffectLuckBoost))
	assert.Equal(t, 2, tr.TurnsRemaining(models.EffectLuckBoost))

	assert.Empty(t, tr.Tick())
	assert.True(t, tr.IsActive(models.EffectLuckBoost))

	expired := tr.Tick()
	assert.Equal(t, []models.EffectKind{models.EffectLuckBoost}, expired)
	assert.False(t, tr.IsActive(models.EffectLuckBoost))
}

func TestTickRemovesOnlyExpiredInstances(t *testing.T) {
	tr := NewTracker()
	tr.Apply(models.EffectLuckBoost, 20, 1)
	tr.Apply(models.EffectFocusBoost, 30, 3)

	expired := tr.Tick()

	assert.Equal(t, []models.EffectKind{models.EffectLuckBoost}, expired)
	assert.False(t, tr.IsActive(models.EffectLuckBoost))
	assert.True(t, tr.IsActive(models.EffectFocusBoost))
	assert.Equal(t, 2, tr.TurnsRemaining(models.EffectFocusBoost))
}

func TestTickOnEmptyTrackerIsNoOp(t *testing.T) {
	tr := NewTracker()

	assert.Empty(t, tr.Tick())
}

func TestActiveReturnsSortedSnapshot(t *testing.T) {
	tr := NewTracker()
	tr.Apply(models.EffectMoodBoost, 25, 3)
	tr.Apply(models.EffectEnergyBoost, 50, 2)

	active := tr.Active()

	assert.Equal(t, []models.ActiveEffect{
		{Kind: models.EffectEnergyBoost, Magnitude: 50, TurnsRemaining: 2},
		{Kind: models.EffectMoodBoost, Magnitude: 25, TurnsRemaining: 3},
	}, active)

	// The snapshot is detached from the tracker
	active[0].TurnsRemaining = 99
	assert.Equal(t, 2, tr.TurnsRemaining(models.EffectEnergyBoost))
}
