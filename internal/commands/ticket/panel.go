// Package ticket - /ticketpanel command
package ticket

import (
	"fmt"

	"github.com/PancyStudios/FlaceManagerGo/pkg/config"
	"github.com/PancyStudios/FlaceManagerGo/pkg/discord"
	"github.com/PancyStudios/FlaceManagerGo/pkg/errors"
	"github.com/PancyStudios/FlaceManagerGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// PanelCustomID is the custom ID of the ticket panel select menu.
const PanelCustomID = "ticket_panel"

// createPanelCommand creates the /ticketpanel command
func createPanelCommand() *discord.Command {
	return discord.NewCommand(
		"ticketpanel",
		"[STAFF] Publica el panel de tickets en este canal",
		"ticket",
		panelHandler,
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

func panelHandler(ctx *discord.CommandContext) error {
	settings := config.GetSettings()

	options := make([]discordgo.SelectMenuOption, 0, len(settings.Tickets.Types))
	for _, t := range settings.Tickets.Types {
		options = append(options, discordgo.SelectMenuOption{
			Label:       t.Label,
			Value:       t.Value,
			Description: t.Description,
		})
	}

	if len(options) == 0 {
		return ctx.ReplyEphemeral("❌ No hay tipos de ticket configurados.")
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🎫 - Soporte",
		Description: "Selecciona el tipo de ticket que deseas abrir en el menú de abajo.",
		Color:       settings.EmbedColor,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "💫 Developed by PancyStudios | Flace Manager Go",
		},
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    PanelCustomID,
					Placeholder: "Selecciona un tipo de ticket...",
					Options:     options,
				},
			},
		},
	}

	go func() {
		defer errors.RecoverMiddleware()()

		_, err := ctx.Session.ChannelMessageSendComplex(ctx.Interaction.ChannelID, &discordgo.MessageSend{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		})
		if err != nil {
			logger.Error(fmt.Sprintf("Error publicando panel de tickets: %v", err), "CMD-TicketPanel")
			ctx.ReplyEphemeral("❌ No se pudo publicar el panel de tickets.")
			return
		}

		ctx.ReplyEphemeral("✅ Panel de tickets publicado.")
	}()

	return nil
}
