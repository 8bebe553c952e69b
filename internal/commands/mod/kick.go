// Package mod - /mod kick command
package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/FlaceManagerGo/pkg/discord"
	"github.com/PancyStudios/FlaceManagerGo/pkg/errors"
	"github.com/PancyStudios/FlaceManagerGo/pkg/logger"
	"github.com/PancyStudios/FlaceManagerGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createKickCommand creates the /mod kick subcommand
func createKickCommand() *discord.Command {
	return discord.NewCommand(
		"kick",
		"Expulsa a un usuario del servidor",
		"mod",
		kickHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a expulsar",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón de la expulsión",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionKickMembers).
		WithBotPermissions(discordgo.PermissionKickMembers)
}

// kickHandler handles the /mod kick command
func kickHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	reason := ctx.GetStringOption("razon")
	if reason == "" {
		reason = "Sin razón especificada"
	}

	req, err := buildGuardRequest(ctx, user)
	if err != nil {
		return ctx.ReplyEphemeral("❌ No se pudo encontrar al usuario en este servidor.")
	}

	if dec := moderation.Authorize(moderation.ActionKick, req); !dec.Allowed {
		return ctx.ReplyEphemeral("❌ " + dec.Reason)
	}

	go func() {
		defer errors.RecoverMiddleware()()

		// El MD va primero: tras la expulsión ya no se puede contactar
		// al usuario.
		embedDM := &discordgo.MessageEmbed{
			Title: "👢 - Has sido expulsado",
			Color: 0xFFA500,
			Description: fmt.Sprintf(
				"⚒ - **Servidor:** %s\n"+
					"📝 - **Razón:** %s\n\n"+
					"🕒 - **Fecha:** <t:%d:F>",
				ctx.Guild().Name, reason, time.Now().Unix(),
			),
			Footer: &discordgo.MessageEmbedFooter{
				Text:    "💫 Developed by PancyStudios | Flace Manager Go",
				IconURL: ctx.Client.Session.State.User.AvatarURL(""),
			},
		}
		sendPunishmentDM(ctx, user, embedDM)

		err := ctx.Session.GuildMemberDeleteWithReason(
			ctx.Interaction.GuildID,
			user.ID,
			reason,
		)
		if err != nil {
			logger.Error(fmt.Sprintf("Error expulsando a %s: %v", user.ID, err), "CMD-Kick")
			ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al expulsar: %v", err))
			return
		}

		ctx.Reply(fmt.Sprintf("👢 **%s** ha sido expulsado.\n**Razón:** %s", user.Username, reason))
	}()

	return nil
}
