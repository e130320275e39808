package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/zanzibar/internal/models"
	"github.com/KirkDiggler/zanzibar/internal/services/game"
)

// handNames maps hand categories to player-facing names
var handNames = map[models.HandCategory]string{
	models.HandZanzibar:     "ZANZIBAR! 🎉",
	models.HandThreeOfAKind: "Three of a kind",
	models.HandLowRun:       "1-2-3 run",
	models.HandPoints:       "Points",
}

// renderMatchStart renders the match creation announcement
func renderMatchStart(out *game.StartGameOutput) string {
	var sb strings.Builder
	sb.WriteString("A new match has begun! Turn order:\n")
	for n, p := range out.Players {
		fmt.Fprintf(&sb, "%d. **%s** — %d chips\n", n+1, p.Name, p.Chips)
	}
	sb.WriteString("\nFirst to shed every chip wins. `/zanzibar roll` to begin.")
	return sb.String()
}

// renderRoll renders a resolved roll
func renderRoll(out *game.RollOutput) (title, description string) {
	title = fmt.Sprintf("%s rolled %s", out.PlayerName, renderFaces(out.Outcome.Faces))

	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s**", handNames[out.Outcome.Category])
	if out.Outcome.LuckApplied {
		sb.WriteString(" *(luck kicked in!)*")
	}
	if out.Outcome.FocusApplied {
		fmt.Fprintf(&sb, " *(focus lifted %s)*", renderFaces(out.Outcome.RawFaces))
	}
	fmt.Fprintf(&sb, "\nChips: %+d → **%d**", out.Outcome.ChipDelta, out.Chips)
	sb.WriteString("\nBuy or use items, then `/zanzibar pass`.")
	return title, sb.String()
}

// renderFaces renders dice faces as die emoji
func renderFaces(faces []int) string {
	dieFaces := []string{"⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}
	parts := make([]string, 0, len(faces))
	for _, f := range faces {
		if f >= 1 && f <= 6 {
			parts = append(parts, dieFaces[f-1])
		} else {
			parts = append(parts, fmt.Sprintf("%d", f))
		}
	}
	return strings.Join(parts, " ")
}

// renderPurchase renders a completed shop purchase
func renderPurchase(out *game.PurchaseOutput) string {
	return fmt.Sprintf("Bought **%s** for %d chips (you now carry %d).\nBalance: **%d** chips — the shop trades progress for power.",
		out.Item.Name, out.Item.Cost, out.Quantity, out.Chips)
}

// renderUseItem renders a consumed item and its effects
func renderUseItem(out *game.UseItemOutput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Consumed **%s**. Energy: **%d**\n", out.Item.Name, out.Energy)
	if len(out.Applied) > 0 {
		sb.WriteString("Active effects:\n")
		for _, e := range out.Applied {
			fmt.Fprintf(&sb, "• %s — %d turns left\n", effectName(e.Kind), e.TurnsRemaining)
		}
	}
	return sb.String()
}

// renderTurnEnd renders a normal turn handoff
func renderTurnEnd(out *game.EndTurnOutput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Round %d — it's **%s**'s turn.\n", out.Round, out.NextPlayer.Name)
	appendExpiredEffects(&sb, out.ExpiredEffects)
	return sb.String()
}

// renderGameOver renders the winning announcement
func renderGameOver(out *game.EndTurnOutput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s** shed every chip and wins after %d rounds! 🏆\n", out.Winner.Name, out.Round)
	appendExpiredEffects(&sb, out.ExpiredEffects)
	return sb.String()
}

func appendExpiredEffects(sb *strings.Builder, expired map[string][]models.EffectKind) {
	for _, kinds := range expired {
		for _, kind := range kinds {
			fmt.Fprintf(sb, "*%s wore off.*\n", effectName(kind))
		}
	}
}

// renderSnapshotFields renders the match view as embed fields
func renderSnapshotFields(snap *game.Snapshot) []*discordgo.MessageEmbedField {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Round",
			Value:  fmt.Sprintf("%d", snap.Round),
			Inline: true,
		},
		{
			Name:   "Status",
			Value:  string(snap.Status),
			Inline: true,
		},
	}

	for n, p := range snap.Players {
		name := p.Name
		if n == snap.CurrentTurn && snap.Status != models.GameStatusGameOver {
			name = "🎲 " + name
		}
		if p.ID == snap.WinnerID {
			name = "🏆 " + name
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Chips: %d · Energy: %d", p.Chips, p.Energy)
		for _, iq := range p.Inventory {
			fmt.Fprintf(&sb, "\n%s ×%d", iq.ItemID, iq.Quantity)
		}
		for _, e := range p.Effects {
			fmt.Fprintf(&sb, "\n%s (%d turns)", effectName(e.Kind), e.TurnsRemaining)
		}

		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  name,
			Value: sb.String(),
		})
	}

	return fields
}

// renderLeaderboard renders the all-time wins leaderboard
func renderLeaderboard(out *game.LeaderboardOutput) string {
	if len(out.Entries) == 0 {
		return "No finished matches yet."
	}

	var sb strings.Builder
	for n, e := range out.Entries {
		fmt.Fprintf(&sb, "%d. **%s** — %d wins\n", n+1, e.PlayerName, e.Wins)
	}
	return sb.String()
}

// effectName renders an effect kind for players
func effectName(kind models.EffectKind) string {
	switch kind {
	case models.EffectEnergyBoost:
		return "Energy boost"
	case models.EffectLuckBoost:
		return "Luck boost"
	case models.EffectFocusBoost:
		return "Focus boost"
	case models.EffectMoodBoost:
		return "Mood boost"
	default:
		return string(kind)
	}
}
