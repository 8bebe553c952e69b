// Package events provides the component interaction handlers: suggestion
// vote buttons and the ticket panel.
package events

import (
	"fmt"
	"time"

	"github.com/PancyStudios/FlaceManagerGo/internal/commands/ticket"
	"github.com/PancyStudios/FlaceManagerGo/pkg/config"
	"github.com/PancyStudios/FlaceManagerGo/pkg/discord"
	"github.com/PancyStudios/FlaceManagerGo/pkg/errors"
	"github.com/PancyStudios/FlaceManagerGo/pkg/logger"
	"github.com/PancyStudios/FlaceManagerGo/pkg/models"
	"github.com/PancyStudios/FlaceManagerGo/pkg/store"
	"github.com/bwmarrin/discordgo"
)

// Custom IDs de los botones internos de un ticket
const (
	ticketCloseID = "del"
	ticketClaimID = "claim"
)

// RegisterInteractionEvents registers the component interaction handlers
func RegisterInteractionEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onComponentInteraction)
}

func onComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	go func() {
		defer errors.RecoverMiddleware()()

		data := i.MessageComponentData()

		switch {
		case models.VoteType(data.CustomID).Valid():
			handleVote(s, i, models.VoteType(data.CustomID))
		case data.CustomID == ticket.PanelCustomID:
			handleTicketOpen(s, i, data)
		case data.CustomID == ticketCloseID:
			handleTicketClose(s, i)
		case data.CustomID == ticketClaimID:
			handleTicketClaim(s, i)
		}
	}()
}

// interactionUser resolves the acting user for guild and DM interactions
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

func replyEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		logger.Debug(fmt.Sprintf("Error respondiendo interacción: %v", err), "Interaction")
	}
}

// voteLabel is the user-facing name of each vote category
func voteLabel(v models.VoteType) string {
	switch v {
	case models.VoteUp:
		return "👍 a favor"
	case models.VoteDown:
		return "👎 en contra"
	default:
		return "🤷 sin opinión"
	}
}

// handleVote applies one button press to the vote ledger and re-renders
// the suggestion message from a fresh tally. The message is never the
// source of truth: the counts shown are always recomputed from the store.
func handleVote(s *discordgo.Session, i *discordgo.InteractionCreate, voteType models.VoteType) {
	user := interactionUser(i)

	result, err := store.Get().CastVote(i.Message.ID, user.ID, voteType)
	if err != nil {
		logger.Error(fmt.Sprintf("Error registrando voto: %v", err), "Votes")
		replyEphemeral(s, i, "❌ No se pudo registrar tu voto.")
		return
	}

	switch result.Outcome {
	case store.VoteAdded:
		replyEphemeral(s, i, "✅ Tu voto ha sido registrado.")
	case store.VoteRetracted:
		replyEphemeral(s, i, "🗑️ Tu voto ha sido retirado.")
	case store.VoteConflict:
		replyEphemeral(s, i, fmt.Sprintf("❌ Ya has votado **%s**. Retira ese voto antes de cambiarlo.", voteLabel(result.Existing)))
		// El mensaje no cambió, no hay nada que re-renderizar
		return
	}

	tally, err := store.Get().Tally(i.Message.ID)
	if err != nil {
		logger.Error(fmt.Sprintf("Error obteniendo conteo de votos: %v", err), "Votes")
		return
	}

	if len(i.Message.Embeds) == 0 {
		return
	}

	embed := i.Message.Embeds[0]
	if len(embed.Fields) < 3 {
		return
	}

	embed.Fields[0].Value = fmt.Sprintf("%d", tally.Up)
	embed.Fields[1].Value = fmt.Sprintf("%d", tally.Down)
	embed.Fields[2].Value = fmt.Sprintf("%d", tally.Nota)
	embed.Color = tally.Color()

	_, err = s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel: i.ChannelID,
		ID:      i.Message.ID,
		Embeds:  &[]*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Error actualizando mensaje de sugerencia: %v", err), "Votes")
	}
}

// handleTicketOpen creates a private ticket channel for the selected type
func handleTicketOpen(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.MessageComponentInteractionData) {
	if len(data.Values) == 0 {
		return
	}
	ticketType := data.Values[0]
	user := interactionUser(i)
	settings := config.GetSettings()

	overwrites := []*discordgo.PermissionOverwrite{
		{
			ID:   i.GuildID, // @everyone
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: discordgo.PermissionViewChannel,
		},
		{
			ID:    user.ID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages,
		},
	}
	if settings.Tickets.SupportRoleID != "" {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID:    settings.Tickets.SupportRoleID,
			Type:  discordgo.PermissionOverwriteTypeRole,
			Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages,
		})
	}

	channel, err := s.GuildChannelCreateComplex(i.GuildID, discordgo.GuildChannelCreateData{
		Name:                 fmt.Sprintf(settings.Tickets.NameTemplate, user.Username),
		Type:                 discordgo.ChannelTypeGuildText,
		Topic:                fmt.Sprintf("Ticket de %s | Tipo: %s", user.Username, ticketType),
		ParentID:             settings.Tickets.CategoryID,
		PermissionOverwrites: overwrites,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Error creando canal de ticket: %v", err), "Tickets")
		replyEphemeral(s, i, "❌ No se pudo crear el ticket.")
		return
	}

	intro := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎫 Ticket de %s", user.Username),
		Description: fmt.Sprintf("**Tipo:** %s\n\n%s", ticketType, settings.Tickets.Message),
		Color:       settings.EmbedColor,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "💫 Developed by PancyStudios | Flace Manager Go",
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "🔒 Cerrar",
					Style:    discordgo.DangerButton,
					CustomID: ticketCloseID,
				},
				discordgo.Button{
					Label:    "🙋 Reclamar",
					Style:    discordgo.PrimaryButton,
					CustomID: ticketClaimID,
				},
			},
		},
	}

	_, err = s.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
		Content:    fmt.Sprintf("<@%s>", user.ID),
		Embeds:     []*discordgo.MessageEmbed{intro},
		Components: components,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Error enviando mensaje inicial del ticket: %v", err), "Tickets")
	}

	logger.Info(fmt.Sprintf("🎫 Ticket creado: %s (%s) por %s", channel.Name, ticketType, user.ID), "Tickets")
	replyEphemeral(s, i, fmt.Sprintf("✅ Ticket creado: <#%s>", channel.ID))
}

// handleTicketClose deletes the ticket channel
func handleTicketClose(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	replyEphemeral(s, i, "🔒 Cerrando el ticket...")

	logger.Info(fmt.Sprintf("🔒 Ticket cerrado por %s (%s)", user.Username, user.ID), "Tickets")

	if _, err := s.ChannelDelete(i.ChannelID); err != nil {
		logger.Error(fmt.Sprintf("Error cerrando ticket: %v", err), "Tickets")
	}
}

// handleTicketClaim announces who took the ticket
func handleTicketClaim(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("🙋 Ticket reclamado por <@%s>.", user.ID),
		},
	})
	if err != nil {
		logger.Debug(fmt.Sprintf("Error respondiendo claim: %v", err), "Tickets")
	}
}
