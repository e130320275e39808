// Package scoring classifies three-die hands and maps them to chip payouts.
package scoring

import (
	"sort"

	"github.com/KirkDiggler/zanzibar/internal/models"
)

// ZanzibarFaces is the privileged combination, the highest-ranked hand
var ZanzibarFaces = []int{4, 5, 6}

// payouts maps each hand category to its signed chip delta.
// Chips are economy-inverted: negative deltas move the roller toward
// the win threshold of 0.
var payouts = map[models.HandCategory]int{
	models.HandZanzibar:     -25,
	models.HandThreeOfAKind: -15,
	models.HandLowRun:       -10,
	models.HandPoints:       5,
}

// Classify determines the hand category of a face sequence.
// Classification is total and deterministic: identical faces always
// classify identically, regardless of order.
func Classify(faces []int) models.HandCategory {
	sorted := make([]int, len(faces))
	copy(sorted, faces)
	sort.Ints(sorted)

	if len(sorted) == 3 {
		if sorted[0] == ZanzibarFaces[0] && sorted[1] == ZanzibarFaces[1] && sorted[2] == ZanzibarFaces[2] {
			return models.HandZanzibar
		}
		if sorted[0] == sorted[1] && sorted[1] == sorted[2] {
			return models.HandThreeOfAKind
		}
		if sorted[0] == 1 && sorted[1] == 2 && sorted[2] == 3 {
			return models.HandLowRun
		}
	}

	return models.HandPoints
}

// Payout returns the signed chip delta for a hand category
func Payout(category models.HandCategory) int {
	return payouts[category]
}

// Rank returns the ordering of a category; lower is better
func Rank(category models.HandCategory) int {
	switch category {
	case models.HandZanzibar:
		return 0
	case models.HandThreeOfAKind:
		return 1
	case models.HandLowRun:
		return 2
	default:
		return 3
	}
}
