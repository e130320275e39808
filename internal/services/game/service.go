package game

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/KirkDiggler/zanzibar/internal/catalog"
	"github.com/KirkDiggler/zanzibar/internal/common/clock"
	"github.com/KirkDiggler/zanzibar/internal/common/uuid"
	"github.com/KirkDiggler/zanzibar/internal/effects"
	"github.com/KirkDiggler/zanzibar/internal/inventory"
	"github.com/KirkDiggler/zanzibar/internal/models"
	"github.com/KirkDiggler/zanzibar/internal/repositories/history"
	"github.com/KirkDiggler/zanzibar/internal/resolver"
)

// participant pairs a player with the inventory and effect tracker the
// engine owns on their behalf
type participant struct {
	player    *models.Player
	inventory *inventory.Inventory
	effects   *effects.Tracker
}

// match is one in-memory game in progress
type match struct {
	game         *models.Game
	participants []*participant

	// menuFocus is the player index presented in menu context.
	// It is independent of the acting-player index.
	menuFocus int
}

// service implements the Service interface
type service struct {
	config      *Config
	catalog     *catalog.Registry
	resolver    *resolver.Resolver
	historyRepo history.Repository
	clock       clock.Clock
	uuidGen     uuid.UUID
	logger      *zap.Logger

	// mu serialises all commands: one state transition at a time,
	// never reentrant during a transition
	mu      sync.Mutex
	matches map[string]*match
}

// New creates a new round engine
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}
	if cfg.Resolver == nil {
		return nil, ErrNilResolver
	}
	if cfg.HistoryRepo == nil {
		return nil, ErrNilHistoryRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.MaxPlayers == 0 {
		cfg.MaxPlayers = 4
	}
	if cfg.StartingChips == 0 {
		cfg.StartingChips = 100
	}
	if cfg.EnergyDecayPerTurn == 0 {
		cfg.EnergyDecayPerTurn = 5
	}
	if cfg.MaxEnergy == 0 {
		cfg.MaxEnergy = 100
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		config:      cfg,
		catalog:     cfg.Catalog,
		resolver:    cfg.Resolver,
		historyRepo: cfg.HistoryRepo,
		clock:       cfg.Clock,
		uuidGen:     cfg.UUIDGenerator,
		logger:      logger,
		matches:     make(map[string]*match),
	}, nil
}

// StartGame creates a new match for the given players
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.PlayerNames) < 2 || len(input.PlayerNames) > s.config.MaxPlayers {
		return nil, ErrInvalidPlayerCount
	}

	seen := make(map[string]bool, len(input.PlayerNames))
	for _, name := range input.PlayerNames {
		if name == "" {
			return nil, ErrEmptyPlayerName
		}
		if seen[name] {
			return nil, ErrDuplicateName
		}
		seen[name] = true
	}

	startingChips := s.config.StartingChips
	if input.StartingChips > 0 {
		startingChips = input.StartingChips
	}

	now := s.clock.Now()
	m := &match{
		game: &models.Game{
			ID:          s.uuidGen.NewUUID(),
			ChannelID:   input.ChannelID,
			Status:      models.GameStatusAwaitingRoll,
			CurrentTurn: 0,
			Round:       1,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	players := make([]*models.Player, 0, len(input.PlayerNames))
	for _, name := range input.PlayerNames {
		// Every player is fully constructed up front: empty inventory,
		// empty effect tracker, full energy
		p := &models.Player{
			ID:     s.uuidGen.NewUUID(),
			Name:   name,
			Chips:  startingChips,
			Energy: s.config.MaxEnergy,
		}
		m.participants = append(m.participants, &participant{
			player:    p,
			inventory: inventory.New(s.catalog),
			effects:   effects.NewTracker(),
		})
		players = append(players, clonePlayer(p))
	}

	s.mu.Lock()
	s.matches[m.game.ID] = m
	s.mu.Unlock()

	s.logger.Info("match started",
		zap.String("game_id", m.game.ID),
		zap.Int("players", len(players)),
		zap.Int("starting_chips", startingChips))

	return &StartGameOutput{
		GameID:  m.game.ID,
		Players: players,
	}, nil
}

// CurrentPlayer returns the identity of the acting player
func (s *service) CurrentPlayer(ctx context.Context, input *CurrentPlayerInput) (*CurrentPlayerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.getMatch(input.GameID)
	if err != nil {
		return nil, err
	}

	return &CurrentPlayerOutput{
		Player: clonePlayer(m.acting().player),
	}, nil
}

// Roll resolves a dice roll for the acting player and applies the chip delta
func (s *service) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.getMatch(input.GameID)
	if err != nil {
		return nil, err
	}

	if m.game.Status != models.GameStatusAwaitingRoll {
		return nil, ErrInvalidState
	}

	p := m.acting()
	outcome := s.resolver.Resolve(p.effects)
	p.player.Chips += outcome.ChipDelta

	m.game.Status = models.GameStatusAwaitingAction
	m.game.UpdatedAt = s.clock.Now()

	s.logger.Info("roll resolved",
		zap.String("game_id", m.game.ID),
		zap.String("player", p.player.Name),
		zap.Ints("faces", outcome.Faces),
		zap.String("hand", string(outcome.Category)),
		zap.Int("chip_delta", outcome.ChipDelta))

	return &RollOutput{
		PlayerID:   p.player.ID,
		PlayerName: p.player.Name,
		Outcome:    outcome,
		Chips:      p.player.Chips,
	}, nil
}

// Purchase buys an item for the acting player. The shop economy is
// intentionally inverted: buying ADDS the item's cost to the buyer's
// balance, moving them away from the win threshold.
func (s *service) Purchase(ctx context.Context, input *PurchaseInput) (*PurchaseOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.getMatch(input.GameID)
	if err != nil {
		return nil, err
	}

	if m.game.Status != models.GameStatusAwaitingAction {
		return nil, ErrInvalidState
	}

	item, err := s.catalog.Lookup(input.ItemID)
	if err != nil {
		return nil, ErrUnknownItem
	}

	p := m.acting()
	if err := p.inventory.Add(item.ID, 1); err != nil {
		return nil, fmt.Errorf("failed to add item to inventory: %w", err)
	}

	p.player.Chips += item.Cost
	m.game.UpdatedAt = s.clock.Now()

	return &PurchaseOutput{
		Item:     item,
		Chips:    p.player.Chips,
		Quantity: p.inventory.Quantity(item.ID),
	}, nil
}

// UseItem consumes one owned unit and applies the item's effects.
// Using an item never changes the chip balance.
func (s *service) UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.getMatch(input.GameID)
	if err != nil {
		return nil, err
	}

	if m.game.Status != models.GameStatusAwaitingAction {
		return nil, ErrInvalidState
	}

	item, err := s.catalog.Lookup(input.ItemID)
	if err != nil {
		return nil, ErrUnknownItem
	}

	p := m.acting()
	if err := p.inventory.RemoveOne(item.ID); err != nil {
		// Nothing was mutated: the denial leaves state unchanged
		return nil, ErrInsufficientQuantity
	}

	for _, kind := range item.Effects {
		p.effects.Apply(kind, item.EnergyValue, item.Duration)
	}

	p.player.Energy += item.EnergyValue
	if p.player.Energy > s.config.MaxEnergy {
		p.player.Energy = s.config.MaxEnergy
	}

	m.game.UpdatedAt = s.clock.Now()

	return &UseItemOutput{
		Item:    item,
		Applied: p.effects.Active(),
		Energy:  p.player.Energy,
	}, nil
}

// EndTurn performs the advancing transition: effects tick exactly once for
// every player, energy decays, the acting index moves on and the win
// condition is checked.
func (s *service) EndTurn(ctx context.Context, input *EndTurnInput) (*EndTurnOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.getMatch(input.GameID)
	if err != nil {
		return nil, err
	}

	if m.game.Status != models.GameStatusAwaitingAction {
		return nil, ErrInvalidState
	}

	expired := make(map[string][]models.EffectKind)
	for _, p := range m.participants {
		if kinds := p.effects.Tick(); len(kinds) > 0 {
			expired[p.player.ID] = kinds
		}

		p.player.Energy -= s.config.EnergyDecayPerTurn
		if p.player.Energy < 0 {
			p.player.Energy = 0
		}
	}

	m.game.CurrentTurn = (m.game.CurrentTurn + 1) % len(m.participants)
	if m.game.CurrentTurn == 0 {
		m.game.Round++
	}
	m.game.UpdatedAt = s.clock.Now()

	if winner := m.findWinner(); winner != nil {
		m.game.Status = models.GameStatusGameOver
		m.game.WinnerID = winner.ID

		s.logger.Info("match finished",
			zap.String("game_id", m.game.ID),
			zap.String("winner", winner.Name),
			zap.Int("rounds", m.game.Round))

		s.recordResult(ctx, m, winner)

		return &EndTurnOutput{
			GameOver:       true,
			Winner:         clonePlayer(winner),
			Round:          m.game.Round,
			ExpiredEffects: expired,
		}, nil
	}

	m.game.Status = models.GameStatusAwaitingRoll

	return &EndTurnOutput{
		NextPlayer:     clonePlayer(m.acting().player),
		Round:          m.game.Round,
		ExpiredEffects: expired,
	}, nil
}

// SwitchActivePlayer rotates the menu-focused player. It is menu-context
// only: it never consumes a turn, never ticks effects and never touches the
// acting-player index or round counter.
func (s *service) SwitchActivePlayer(ctx context.Context, input *SwitchActivePlayerInput) (*SwitchActivePlayerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.getMatch(input.GameID)
	if err != nil {
		return nil, err
	}

	m.menuFocus = (m.menuFocus + 1) % len(m.participants)

	return &SwitchActivePlayerOutput{
		Player: clonePlayer(m.participants[m.menuFocus].player),
	}, nil
}

// Snapshot returns a read-only deep copy of the match for rendering
func (s *service) Snapshot(ctx context.Context, input *SnapshotInput) (*SnapshotOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.getMatch(input.GameID)
	if err != nil {
		return nil, err
	}

	players := make([]PlayerSnapshot, 0, len(m.participants))
	for _, p := range m.participants {
		players = append(players, PlayerSnapshot{
			ID:        p.player.ID,
			Name:      p.player.Name,
			Chips:     p.player.Chips,
			Energy:    p.player.Energy,
			Inventory: p.inventory.Quantities(),
			Effects:   p.effects.Active(),
		})
	}

	return &SnapshotOutput{
		Snapshot: &Snapshot{
			GameID:      m.game.ID,
			ChannelID:   m.game.ChannelID,
			Status:      m.game.Status,
			Round:       m.game.Round,
			CurrentTurn: m.game.CurrentTurn,
			WinnerID:    m.game.WinnerID,
			Players:     players,
		},
	}, nil
}

// Leaderboard returns the all-time wins leaderboard
func (s *service) Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error) {
	limit := 0
	if input != nil {
		limit = input.Limit
	}

	out, err := s.historyRepo.GetLeaderboard(ctx, &history.GetLeaderboardInput{
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	return &LeaderboardOutput{
		Entries: out.Entries,
	}, nil
}

// getMatch looks up a match by ID. The caller must hold s.mu.
func (s *service) getMatch(gameID string) (*match, error) {
	m, ok := s.matches[gameID]
	if !ok {
		return nil, ErrGameNotFound
	}
	return m, nil
}

// acting returns the participant whose turn it is
func (m *match) acting() *participant {
	return m.participants[m.game.CurrentTurn]
}

// findWinner returns the winning player, or nil while the match continues.
// A player wins by reaching the threshold of 0 chips; when several cross it
// on the same transition, the balance closest to 0 wins, ties broken by
// lower turn-order index.
func (m *match) findWinner() *models.Player {
	var winner *models.Player
	for _, p := range m.participants {
		if p.player.Chips > 0 {
			continue
		}
		if winner == nil || abs(p.player.Chips) < abs(winner.Chips) {
			winner = p.player
		}
	}
	return winner
}

// recordResult persists the finished match to the history repository.
// Persistence failures are logged, not surfaced: the match outcome stands.
func (s *service) recordResult(ctx context.Context, m *match, winner *models.Player) {
	standings := make([]models.PlayerStanding, 0, len(m.participants))
	for _, p := range m.participants {
		standings = append(standings, models.PlayerStanding{
			PlayerID:   p.player.ID,
			PlayerName: p.player.Name,
			Chips:      p.player.Chips,
		})
	}
	// Winner first, everyone else by distance from the threshold
	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].PlayerID == winner.ID {
			return true
		}
		if standings[j].PlayerID == winner.ID {
			return false
		}
		return abs(standings[i].Chips) < abs(standings[j].Chips)
	})

	result := &models.MatchResult{
		ID:         s.uuidGen.NewUUID(),
		GameID:     m.game.ID,
		ChannelID:  m.game.ChannelID,
		WinnerID:   winner.ID,
		WinnerName: winner.Name,
		Rounds:     m.game.Round,
		Standings:  standings,
		FinishedAt: s.clock.Now(),
	}

	err := s.historyRepo.SaveResult(ctx, &history.SaveResultInput{
		Result: result,
	})
	if err != nil {
		s.logger.Warn("failed to record match result",
			zap.String("game_id", m.game.ID),
			zap.Error(err))
	}
}

func clonePlayer(p *models.Player) *models.Player {
	clone := *p
	return &clone
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
