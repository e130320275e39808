package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollStaysInRange(t *testing.T) {
	r := New(&Config{Seed: 42})

	for i := 0; i < 1000; i++ {
		v := r.Roll(6)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
	}
}

func TestRollDefaultsToSixSides(t *testing.T) {
	r := New(&Config{Seed: 42})

	v := r.Roll(0)
	assert.GreaterOrEqual(t, v, 1)
	assert.LessOrEqual(t, v, 6)
}

func TestRollNCountAndRange(t *testing.T) {
	r := New(&Config{Seed: 7})

	faces := r.RollN(3, 6)
	assert.Len(t, faces, 3)
	for _, f := range faces {
		assert.GreaterOrEqual(t, f, 1)
		assert.LessOrEqual(t, f, 6)
	}
}

func TestSeededRollerIsDeterministic(t *testing.T) {
	a := New(&Config{Seed: 99})
	b := New(&Config{Seed: 99})

	assert.Equal(t, a.RollN(10, 6), b.RollN(10, 6))
}
