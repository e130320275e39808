// Package resolver turns a dice roll plus a player's active effects into a
// scored outcome.
package resolver

import (
	"errors"

	"github.com/KirkDiggler/zanzibar/internal/dice"
	"github.com/KirkDiggler/zanzibar/internal/effects"
	"github.com/KirkDiggler/zanzibar/internal/models"
	"github.com/KirkDiggler/zanzibar/internal/scoring"
)

// Config holds configuration for the roll resolver
type Config struct {
	// Number of dice per roll
	DiceCount int

	// Number of sides on the dice
	DiceSides int

	// Percent chance (0..100) that an active luck boost upgrades the
	// roll to a Zanzibar
	LuckProcPercent int

	// Minimum face value enforced by an active focus boost
	FocusFloor int
}

// Resolver resolves rolls for players
type Resolver struct {
	config *Config
	roller dice.Roller
}

// New creates a new roll resolver
func New(cfg *Config, roller dice.Roller) (*Resolver, error) {
	if roller == nil {
		return nil, errors.New("dice roller cannot be nil")
	}

	if cfg == nil {
		cfg = &Config{}
	}

	if cfg.DiceCount == 0 {
		cfg.DiceCount = 3
	}
	if cfg.DiceSides == 0 {
		cfg.DiceSides = 6
	}
	if cfg.LuckProcPercent == 0 {
		cfg.LuckProcPercent = 30
	}
	if cfg.FocusFloor == 0 {
		cfg.FocusFloor = 2
	}

	return &Resolver{
		config: cfg,
		roller: roller,
	}, nil
}

// Resolve draws a raw roll, applies the player's active effect modifiers,
// classifies the hand and computes the chip delta. It is total over valid
// player state: a player with no active effects gets the raw roll scored
// as-is.
func (r *Resolver) Resolve(tracker *effects.Tracker) *models.RollOutcome {
	raw := r.roller.RollN(r.config.DiceCount, r.config.DiceSides)

	faces := make([]int, len(raw))
	copy(faces, raw)

	outcome := &models.RollOutcome{
		RawFaces: raw,
		Faces:    faces,
	}

	// Luck boost: a full-roll upgrade to the privileged combination,
	// not a per-die nudge
	if tracker.IsActive(models.EffectLuckBoost) {
		if r.roller.Roll(100) <= r.config.LuckProcPercent {
			copy(outcome.Faces, scoring.ZanzibarFaces)
			outcome.LuckApplied = true
		}
	}

	// Focus boost: clamp low faces up to the floor, after the luck step
	// and independent of it
	if tracker.IsActive(models.EffectFocusBoost) {
		for i, face := range outcome.Faces {
			if face < r.config.FocusFloor {
				outcome.Faces[i] = r.config.FocusFloor
				outcome.FocusApplied = true
			}
		}
	}

	outcome.Category = scoring.Classify(outcome.Faces)
	outcome.ChipDelta = scoring.Payout(outcome.Category)

	return outcome
}
