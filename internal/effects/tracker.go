// Package effects tracks temporary status effects on a single player.
package effects

import (
	"sort"

	"github.com/KirkDiggler/zanzibar/internal/models"
)

// instance is one active effect on the owning player
type instance struct {
	magnitude      int
	turnsRemaining int
}

// Tracker tracks the active effects of one player.
// It is not safe for concurrent use; the round engine serialises access.
type Tracker struct {
	active map[models.EffectKind]*instance
}

// NewTracker creates an empty Tracker
func NewTracker() *Tracker {
	return &Tracker{
		active: make(map[models.EffectKind]*instance),
	}
}

// Apply activates an effect kind with the given magnitude and duration.
// Re-applying an active kind overwrites its duration and magnitude:
// last-applied wins. Effects never stack.
//
// Postcondition: IsActive(kind) is true and at most one instance of kind exists.
func (t *Tracker) Apply(kind models.EffectKind, magnitude, duration int) {
	if duration < 1 {
		return
	}

	t.active[kind] = &instance{
		magnitude:      magnitude,
		turnsRemaining: duration,
	}
}

// Tick decrements every active instance's remaining turns by 1 and removes
// instances that reach 0 in the same step. It returns the expired kinds.
//
// Callers must invoke Tick exactly once per round boundary; a second call
// within the same round double-decrements.
func (t *Tracker) Tick() []models.EffectKind {
	var expired []models.EffectKind
	for kind, inst := range t.active {
		inst.turnsRemaining--
		if inst.turnsRemaining <= 0 {
			expired = append(expired, kind)
			delete(t.active, kind)
		}
	}

	sort.Slice(expired, func(i, j int) bool { return expired[i] < expired[j] })
	return expired
}

// IsActive reports whether the effect kind is currently active
func (t *Tracker) IsActive(kind models.EffectKind) bool {
	_, ok := t.active[kind]
	return ok
}

// Magnitude returns the magnitude of an active effect kind.
// The second return is false when the kind is not active.
func (t *Tracker) Magnitude(kind models.EffectKind) (int, bool) {
	inst, ok := t.active[kind]
	if !ok {
		return 0, false
	}
	return inst.magnitude, true
}

// TurnsRemaining returns the remaining duration of an active effect kind,
// or 0 when the kind is not active.
func (t *Tracker) TurnsRemaining(kind models.EffectKind) int {
	inst, ok := t.active[kind]
	if !ok {
		return 0
	}
	return inst.turnsRemaining
}

// Active returns a snapshot of the active effects sorted by kind.
// Mutating the returned slice does not affect the tracker.
func (t *Tracker) Active() []models.ActiveEffect {
	out := make([]models.ActiveEffect, 0, len(t.active))
	for kind, inst := range t.active {
		out = append(out, models.ActiveEffect{
			Kind:           kind,
			Magnitude:      inst.magnitude,
			TurnsRemaining: inst.turnsRemaining,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}
