// Package suggest - /suggestions command
package suggest

import (
	"fmt"
	"time"

	"github.com/PancyStudios/FlaceManagerGo/pkg/discord"
	"github.com/PancyStudios/FlaceManagerGo/pkg/errors"
	"github.com/PancyStudios/FlaceManagerGo/pkg/logger"
	"github.com/bwmarrin/discordgo"

	"github.com/PancyStudios/FlaceManagerGo/pkg/store"
)

// createHistoryCommand creates the /suggestions command
func createHistoryCommand() *discord.Command {
	return discord.NewCommand(
		"suggestions",
		"[STAFF] Muestra el historial de sugerencias",
		"suggest",
		historyHandler,
	).WithUserPermissions(discordgo.PermissionAdministrator).RequiresDatabase()
}

func historyHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		suggestions, err := store.Get().Suggestions()
		if err != nil {
			logger.Error(fmt.Sprintf("Error DB Suggestions: %v", err), "CMD-Suggestions")
			ctx.ReplyEphemeral("❌ Error al consultar la base de datos.")
			return
		}

		if len(suggestions) == 0 {
			ctx.ReplyEphemeral("ℹ️ No hay sugerencias registradas todavía.")
			return
		}

		// Las últimas 15 para no exceder el límite del embed
		start := 0
		if len(suggestions) > 15 {
			start = len(suggestions) - 15
		}

		var description string
		for _, s := range suggestions[start:] {
			text := s.Text
			if len(text) > 80 {
				text = text[:77] + "..."
			}
			description += fmt.Sprintf("> **#%d** - [%s](%s)\n", s.ID, text, s.MessageLink)
		}
		description += fmt.Sprintf("\n> 💫 - **Total de sugerencias:** %d\n> 🕒 - **Fecha de consulta:** <t:%d>", len(suggestions), time.Now().Unix())

		embed := &discordgo.MessageEmbed{
			Title:       "📋 - Historial de sugerencias",
			Color:       0x3498DB,
			Description: description,
			Footer: &discordgo.MessageEmbedFooter{
				Text:    "💫 Developed by PancyStudios | Flace Manager Go",
				IconURL: ctx.Guild().IconURL(""),
			},
		}

		ctx.ReplyEphemeralEmbed(embed)
	}()

	return nil
}
