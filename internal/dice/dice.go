package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/zanzibar/internal/dice Roller

// Roller provides dice rolling functionality
type Roller interface {
	// Roll generates a uniform random value in 1..sides
	Roll(sides int) int

	// RollN generates count independent uniform values in 1..sides
	RollN(count, sides int) []int
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// roller implements Roller using math/rand
type roller struct {
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &roller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *roller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}
	return r.random.Intn(sides) + 1
}

// RollN generates count independent rolls with the specified number of sides
func (r *roller) RollN(count, sides int) []int {
	if count < 1 {
		count = 1
	}
	faces := make([]int, count)
	for i := range faces {
		faces[i] = r.Roll(sides)
	}
	return faces
}
