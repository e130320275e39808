package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound         GameError = "game not found"
	ErrInvalidState         GameError = "command is not valid in the current game state"
	ErrInvalidPlayerCount   GameError = "player count out of range"
	ErrDuplicateName        GameError = "duplicate player name"
	ErrEmptyPlayerName      GameError = "player name cannot be empty"
	ErrUnknownItem          GameError = "unknown item"
	ErrInsufficientQuantity GameError = "item not owned"
	ErrNilConfig            GameError = "config cannot be nil"
	ErrNilCatalog           GameError = "item catalog cannot be nil"
	ErrNilResolver          GameError = "roll resolver cannot be nil"
	ErrNilHistoryRepo       GameError = "history repository cannot be nil"
	ErrNilClock             GameError = "clock cannot be nil"
	ErrNilUUIDGenerator     GameError = "UUID generator cannot be nil"
)
