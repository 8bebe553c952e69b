// Package mod - /mod ban command
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

// createBanCommand creates the /mod ban subcommand
func createBanCommand() *discord.Command {
	return discord.NewCommand(
		"ban",
		"Banea a un usuario del servidor",
		"mod",
		banHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a banear",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón del ban",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "dias",
			Description: "Días de mensajes a eliminar (0-7)",
			Required:    false,
			MinValue:    func() *float64 { v := 0.0; return &v }(),
			MaxValue:    7,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers).
		WithBotPermissions(discordgo.PermissionBanMembers)
}

// banHandler handles the /mod ban command
func banHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	reason := ctx.GetStringOption("razon")
	if reason == "" {
		reason = "Sin razón especificada"
	}

	days := int(ctx.GetIntOption("dias"))

	req, err := buildGuardRequest(ctx, user)
	if err != nil {
		return ctx.ReplyEphemeral("❌ No se pudo encontrar al usuario en este servidor.")
	}

	if dec := moderation.Authorize(moderation.ActionBan, req); !dec.Allowed {
		return ctx.ReplyEphemeral("❌ " + dec.Reason)
	}

	go func() {
		defer errors.RecoverMiddleware()()

		embedDM := &discordgo.MessageEmbed{
			Title: "🔨 - Has sido baneado",
			Color: 0xFF0000,
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

		err := ctx.Session.GuildBanCreateWithReason(
			ctx.Interaction.GuildID,
			user.ID,
			reason,
			days,
		)
		if err != nil {
			logger.Error(fmt.Sprintf("Error baneando a %s: %v", user.ID, err), "CMD-Ban")
			ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al banear: %v", err))
			return
		}

		ctx.Reply(fmt.Sprintf("🔨 **%s** ha sido baneado.\n**Razón:** %s", user.Username, reason))
	}()

	return nil
}
