package game

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/zanzibar/internal/catalog"
	"github.com/KirkDiggler/zanzibar/internal/common/clock"
	"github.com/KirkDiggler/zanzibar/internal/common/uuid"
	"github.com/KirkDiggler/zanzibar/internal/models"
	"github.com/KirkDiggler/zanzibar/internal/repositories/history"
	"github.com/KirkDiggler/zanzibar/internal/resolver"
)

// Config holds configuration for the round engine
type Config struct {
	// Maximum number of players per match
	MaxPlayers int

	// Default starting chip balance for new matches
	StartingChips int

	// Energy lost by every player on each completed turn
	EnergyDecayPerTurn int

	// Upper bound of the energy resource
	MaxEnergy int

	// Dependencies
	Catalog       *catalog.Registry
	Resolver      *resolver.Resolver
	HistoryRepo   history.Repository
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Optional logger; a no-op logger is used when nil
	Logger *zap.Logger
}

// StartGameInput contains parameters for creating a new match
type StartGameInput struct {
	// ChannelID is an optional presentation-layer binding for the match
	ChannelID string

	// PlayerNames are the unique display names in turn order
	PlayerNames []string

	// StartingChips overrides the configured default when positive
	StartingChips int
}

// StartGameOutput contains the result of creating a new match
type StartGameOutput struct {
	// GameID is the unique identifier for the created match
	GameID string

	// Players are the created players in turn order
	Players []*models.Player
}

// CurrentPlayerInput contains parameters for looking up the acting player
type CurrentPlayerInput struct {
	GameID string
}

// CurrentPlayerOutput contains the acting player
type CurrentPlayerOutput struct {
	Player *models.Player
}

// RollInput contains parameters for rolling dice
type RollInput struct {
	GameID string
}

// RollOutput contains the result of a resolved roll
type RollOutput struct {
	// PlayerID is the ID of the player who rolled
	PlayerID string

	// PlayerName is the display name of the player who rolled
	PlayerName string

	// Outcome is the fully resolved roll
	Outcome *models.RollOutcome

	// Chips is the player's balance after the chip delta was applied
	Chips int
}

// PurchaseInput contains parameters for buying an item
type PurchaseInput struct {
	GameID string
	ItemID string
}

// PurchaseOutput contains the result of buying an item
type PurchaseOutput struct {
	// Item is the purchased catalog entry
	Item *models.Item

	// Chips is the buyer's balance after the purchase.
	// Buying ADDS the item's cost: the shop trades progress for power.
	Chips int

	// Quantity is the owned quantity after the purchase
	Quantity int
}

// UseItemInput contains parameters for consuming an item
type UseItemInput struct {
	GameID string
	ItemID string
}

// UseItemOutput contains the result of consuming an item
type UseItemOutput struct {
	// Item is the consumed catalog entry
	Item *models.Item

	// Applied are the effect instances active after consumption
	Applied []models.ActiveEffect

	// Energy is the player's energy after the item's energy value was added
	Energy int
}

// EndTurnInput contains parameters for ending the acting player's turn
type EndTurnInput struct {
	GameID string
}

// EndTurnOutput contains the result of the advancing transition
type EndTurnOutput struct {
	// GameOver indicates the match ended on this transition
	GameOver bool

	// Winner is the winning player when GameOver is true
	Winner *models.Player

	// NextPlayer is the new acting player when the match continues
	NextPlayer *models.Player

	// Round is the round counter after advancing
	Round int

	// ExpiredEffects maps player IDs to the effect kinds that expired
	// during this transition
	ExpiredEffects map[string][]models.EffectKind
}

// SwitchActivePlayerInput contains parameters for rotating the menu focus
type SwitchActivePlayerInput struct {
	GameID string
}

// SwitchActivePlayerOutput contains the newly focused player
type SwitchActivePlayerOutput struct {
	Player *models.Player
}

// SnapshotInput contains parameters for reading a match view
type SnapshotInput struct {
	GameID string
}

// PlayerSnapshot is a read-only view of one player
type PlayerSnapshot struct {
	// ID is the unique identifier for the player
	ID string

	// Name is the display name of the player
	Name string

	// Chips is the player's chip balance
	Chips int

	// Energy is the player's energy level
	Energy int

	// Inventory is the player's item quantities in first-added order
	Inventory []models.ItemQuantity

	// Effects are the player's active effects sorted by kind
	Effects []models.ActiveEffect
}

// Snapshot is a read-only view of a whole match
type Snapshot struct {
	// GameID is the unique identifier for the match
	GameID string

	// ChannelID is the presentation-layer binding of the match, if any
	ChannelID string

	// Status is the current state of the match
	Status models.GameStatus

	// Round is the current round counter
	Round int

	// CurrentTurn is the index of the acting player
	CurrentTurn int

	// WinnerID is the winning player's ID; empty until game over
	WinnerID string

	// Players are the player views in turn order
	Players []PlayerSnapshot
}

// SnapshotOutput contains the match view
type SnapshotOutput struct {
	Snapshot *Snapshot
}

// LeaderboardInput contains parameters for reading the wins leaderboard
type LeaderboardInput struct {
	// Limit is the maximum number of entries to return
	Limit int
}

// LeaderboardOutput contains the wins leaderboard
type LeaderboardOutput struct {
	Entries []history.LeaderboardEntry
}
