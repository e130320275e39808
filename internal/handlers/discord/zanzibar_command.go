package discord

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/zanzibar/internal/services/game"
)

// ZanzibarCommand handles the /zanzibar command
type ZanzibarCommand struct {
	BaseCommand
	gameService game.Service
	logger      *zap.Logger

	// mu guards channelGames
	mu           sync.Mutex
	channelGames map[string]string // Maps channel ID to game ID
}

// NewZanzibarCommand creates a new zanzibar command handler
func NewZanzibarCommand(gameService game.Service, logger *zap.Logger) *ZanzibarCommand {
	return &ZanzibarCommand{
		BaseCommand: BaseCommand{
			Name:        "zanzibar",
			Description: "Zanzibar dice game commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a new match in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "players",
							Description: "Comma-separated player names in turn order",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "roll",
					Description: "Roll the dice for the acting player",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "buy",
					Description: "Buy an item from the shop",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "item",
							Description: "Item ID to buy",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "use",
					Description: "Use an item from your inventory",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "item",
							Description: "Item ID to use",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "pass",
					Description: "End the acting player's turn",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "switch",
					Description: "Rotate the menu-focused player",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "table",
					Description: "Show the current match state",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leaderboard",
					Description: "Show the all-time wins leaderboard",
				},
			},
		},
		gameService:  gameService,
		logger:       logger,
		channelGames: make(map[string]string),
	}
}

// Handle processes a Discord interaction for the zanzibar command
func (c *ZanzibarCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	channelID := i.ChannelID

	var err error
	switch data.Options[0].Name {
	case "start":
		err = c.handleStart(s, i, channelID, data.Options[0].Options)
	case "roll":
		err = c.handleRoll(s, i, channelID)
	case "buy":
		err = c.handleBuy(s, i, channelID, data.Options[0].Options)
	case "use":
		err = c.handleUse(s, i, channelID, data.Options[0].Options)
	case "pass":
		err = c.handlePass(s, i, channelID)
	case "switch":
		err = c.handleSwitch(s, i, channelID)
	case "table":
		err = c.handleTable(s, i, channelID)
	case "leaderboard":
		err = c.handleLeaderboard(s, i)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

// gameFor looks up the match bound to a channel
func (c *ZanzibarCommand) gameFor(channelID string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	gameID, ok := c.channelGames[channelID]
	return gameID, ok
}

func (c *ZanzibarCommand) bindGame(channelID, gameID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.channelGames[channelID] = gameID
}

func (c *ZanzibarCommand) unbindGame(channelID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.channelGames, channelID)
}

// handleStart handles the start subcommand
func (c *ZanzibarCommand) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	if _, ok := c.gameFor(channelID); ok {
		return RespondWithError(s, i, "There's already a match in progress in this channel. Finish it before starting a new one.")
	}

	var names []string
	for _, raw := range strings.Split(stringOption(opts, "players"), ",") {
		if name := strings.TrimSpace(raw); name != "" {
			names = append(names, name)
		}
	}

	out, err := c.gameService.StartGame(ctx, &game.StartGameInput{
		ChannelID:   channelID,
		PlayerNames: names,
	})
	if err != nil {
		c.logger.Error("error starting match", zap.Error(err))
		return RespondWithError(s, i, friendlyError(err))
	}

	c.bindGame(channelID, out.GameID)

	return RespondWithEmbed(s, i,
		"Zanzibar!",
		renderMatchStart(out),
		nil)
}

// handleRoll handles the roll subcommand
func (c *ZanzibarCommand) handleRoll(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	ctx := context.Background()

	gameID, ok := c.gameFor(channelID)
	if !ok {
		return RespondWithError(s, i, "No match in this channel. Use `/zanzibar start` to begin one.")
	}

	out, err := c.gameService.Roll(ctx, &game.RollInput{GameID: gameID})
	if err != nil {
		return RespondWithError(s, i, friendlyError(err))
	}

	title, description := renderRoll(out)
	return RespondWithEmbed(s, i, title, description, nil)
}

// handleBuy handles the buy subcommand
func (c *ZanzibarCommand) handleBuy(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	gameID, ok := c.gameFor(channelID)
	if !ok {
		return RespondWithError(s, i, "No match in this channel. Use `/zanzibar start` to begin one.")
	}

	out, err := c.gameService.Purchase(ctx, &game.PurchaseInput{
		GameID: gameID,
		ItemID: stringOption(opts, "item"),
	})
	if err != nil {
		return RespondWithError(s, i, friendlyError(err))
	}

	return RespondWithEmbed(s, i, "Shop", renderPurchase(out), nil)
}

// handleUse handles the use subcommand
func (c *ZanzibarCommand) handleUse(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	gameID, ok := c.gameFor(channelID)
	if !ok {
		return RespondWithError(s, i, "No match in this channel. Use `/zanzibar start` to begin one.")
	}

	out, err := c.gameService.UseItem(ctx, &game.UseItemInput{
		GameID: gameID,
		ItemID: stringOption(opts, "item"),
	})
	if err != nil {
		return RespondWithError(s, i, friendlyError(err))
	}

	return RespondWithEmbed(s, i, "Item used", renderUseItem(out), nil)
}

// handlePass handles the pass subcommand
func (c *ZanzibarCommand) handlePass(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	ctx := context.Background()

	gameID, ok := c.gameFor(channelID)
	if !ok {
		return RespondWithError(s, i, "No match in this channel. Use `/zanzibar start` to begin one.")
	}

	out, err := c.gameService.EndTurn(ctx, &game.EndTurnInput{GameID: gameID})
	if err != nil {
		return RespondWithError(s, i, friendlyError(err))
	}

	if out.GameOver {
		c.unbindGame(channelID)
		return RespondWithEmbed(s, i, "Game over!", renderGameOver(out), nil)
	}

	return RespondWithEmbed(s, i, "Next turn", renderTurnEnd(out), nil)
}

// handleSwitch handles the switch subcommand
func (c *ZanzibarCommand) handleSwitch(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	ctx := context.Background()

	gameID, ok := c.gameFor(channelID)
	if !ok {
		return RespondWithError(s, i, "No match in this channel. Use `/zanzibar start` to begin one.")
	}

	out, err := c.gameService.SwitchActivePlayer(ctx, &game.SwitchActivePlayerInput{GameID: gameID})
	if err != nil {
		return RespondWithError(s, i, friendlyError(err))
	}

	return RespondWithEphemeralMessage(s, i, "Now viewing **"+out.Player.Name+"**.")
}

// handleTable handles the table subcommand
func (c *ZanzibarCommand) handleTable(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	ctx := context.Background()

	gameID, ok := c.gameFor(channelID)
	if !ok {
		return RespondWithError(s, i, "No match in this channel. Use `/zanzibar start` to begin one.")
	}

	out, err := c.gameService.Snapshot(ctx, &game.SnapshotInput{GameID: gameID})
	if err != nil {
		return RespondWithError(s, i, friendlyError(err))
	}

	return RespondWithEmbed(s, i, "The table", "", renderSnapshotFields(out.Snapshot))
}

// handleLeaderboard handles the leaderboard subcommand
func (c *ZanzibarCommand) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	out, err := c.gameService.Leaderboard(ctx, &game.LeaderboardInput{})
	if err != nil {
		return RespondWithError(s, i, friendlyError(err))
	}

	return RespondWithEmbed(s, i, "All-time wins", renderLeaderboard(out), nil)
}

// stringOption extracts a named string option from a subcommand
func stringOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range opts {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

// friendlyError maps service errors to player-facing messages
func friendlyError(err error) string {
	switch {
	case errors.Is(err, game.ErrInvalidState):
		return "You can't do that right now. Roll first, then act, then pass."
	case errors.Is(err, game.ErrUnknownItem):
		return "The shop has never heard of that item."
	case errors.Is(err, game.ErrInsufficientQuantity):
		return "You don't have one of those. Buy it first."
	case errors.Is(err, game.ErrGameNotFound):
		return "That match no longer exists."
	case errors.Is(err, game.ErrInvalidPlayerCount):
		return "A match needs 2 to 4 players."
	case errors.Is(err, game.ErrDuplicateName):
		return "Player names must be unique."
	case errors.Is(err, game.ErrEmptyPlayerName):
		return "Player names cannot be empty."
	default:
		return "Something went wrong: " + err.Error()
	}
}
