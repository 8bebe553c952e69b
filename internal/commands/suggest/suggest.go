// Package suggest - /suggest command
package suggest

import (
	"fmt"
	"time"

	"github.com/PancyStudios/FlaceManagerGo/pkg/config"
	"github.com/PancyStudios/FlaceManagerGo/pkg/discord"
	"github.com/PancyStudios/FlaceManagerGo/pkg/errors"
	"github.com/PancyStudios/FlaceManagerGo/pkg/logger"
	"github.com/PancyStudios/FlaceManagerGo/pkg/models"
	"github.com/PancyStudios/FlaceManagerGo/pkg/store"
	"github.com/bwmarrin/discordgo"
)

// createSuggestCommand creates the /suggest command
func createSuggestCommand() *discord.Command {
	return discord.NewCommand(
		"suggest",
		"Envía una sugerencia a la comunidad",
		"suggest",
		suggestHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "sugerencia",
			Description: "Tu sugerencia",
			Required:    true,
		},
	).RequiresDatabase()
}

// voteComponents builds the three vote buttons attached to every
// suggestion message. The custom IDs are what the interaction handler
// routes on.
func voteComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "👍",
					Style:    discordgo.SuccessButton,
					CustomID: string(models.VoteUp),
				},
				discordgo.Button{
					Label:    "👎",
					Style:    discordgo.DangerButton,
					CustomID: string(models.VoteDown),
				},
				discordgo.Button{
					Label:    "🤷 N/A",
					Style:    discordgo.SecondaryButton,
					CustomID: string(models.VoteNota),
				},
			},
		},
	}
}

// suggestionEmbed renders a fresh suggestion with zeroed counters. The
// interaction handler edits the three fields in place as votes arrive,
// so their order is part of the message contract.
func suggestionEmbed(text string, author *discordgo.User) *discordgo.MessageEmbed {
	var tally models.Tally

	return &discordgo.MessageEmbed{
		Title:       "💡 Nueva sugerencia",
		Description: text,
		Color:       tally.Color(),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "👍 Votos a favor", Value: "0", Inline: true},
			{Name: "👎 Votos en contra", Value: "0", Inline: true},
			{Name: "🤷 Sin opinión", Value: "0", Inline: true},
		},
		Author: &discordgo.MessageEmbedAuthor{
			Name:    author.Username,
			IconURL: author.AvatarURL(""),
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "💫 Developed by PancyStudios | Flace Manager Go",
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// suggestHandler handles the /suggest command
func suggestHandler(ctx *discord.CommandContext) error {
	text := ctx.GetStringOption("sugerencia")
	if text == "" {
		return ctx.ReplyEphemeral("❌ Debes escribir una sugerencia.")
	}

	settings := config.GetSettings()

	channelID := settings.Suggestions.ChannelID
	if channelID == "" {
		channelID = ctx.Interaction.ChannelID
	}

	go func() {
		defer errors.RecoverMiddleware()()

		// Primero se publica el mensaje y después se guarda el registro.
		// Si el guardado falla, el mensaje sigue siendo votable; solo se
		// pierde la entrada del historial.
		msg, err := ctx.Session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
			Embeds:     []*discordgo.MessageEmbed{suggestionEmbed(text, ctx.User())},
			Components: voteComponents(),
		})
		if err != nil {
			logger.Error(fmt.Sprintf("Error publicando sugerencia: %v", err), "CMD-Suggest")
			ctx.ReplyEphemeral("❌ No se pudo publicar la sugerencia.")
			return
		}

		link := fmt.Sprintf("https://discord.com/channels/%s/%s/%s", ctx.Interaction.GuildID, channelID, msg.ID)

		if _, err := store.Get().RecordSuggestion(text, link); err != nil {
			logger.Error(fmt.Sprintf("Error guardando sugerencia: %v", err), "CMD-Suggest")
		}

		ctx.ReplyEphemeral(fmt.Sprintf("✅ Tu sugerencia ha sido publicada: %s", link))
	}()

	return nil
}
