// Package mod - /mod warn command
package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/FlaceManagerGo/pkg/discord"
	"github.com/PancyStudios/FlaceManagerGo/pkg/errors"
	"github.com/PancyStudios/FlaceManagerGo/pkg/logger"
	"github.com/PancyStudios/FlaceManagerGo/pkg/moderation"
	"github.com/PancyStudios/FlaceManagerGo/pkg/store"
	"github.com/bwmarrin/discordgo"
)

// createWarnCommand creates the /mod warn subcommand
func createWarnCommand() *discord.Command {
	return discord.NewCommand(
		"warn",
		"Advierte a un usuario",
		"mod",
		warnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a advertir",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón de la advertencia",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).RequiresDatabase()
}

// warnHandler handles the /mod warn command
func warnHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	// A diferencia de kick/ban, advertir no compara rangos. Solo se
	// rechaza la auto-advertencia.
	if dec := moderation.CanWarn(ctx.User().ID, user.ID); !dec.Allowed {
		return ctx.ReplyEphemeral("❌ " + dec.Reason)
	}

	reason := ctx.GetStringOption("razon")

	warning, err := store.Get().AddWarning(user.ID, reason)
	if err != nil {
		logger.Error(fmt.Sprintf("Error DB Warn: %v", err), "CMD-Warn")
		return ctx.ReplyEphemeral("❌ Error al guardar la advertencia.")
	}

	total, err := store.Get().CountWarnings(user.ID)
	if err != nil {
		total = 0
	}

	go func() {
		defer errors.RecoverMiddleware()()

		embedDM := &discordgo.MessageEmbed{
			Title: "⚠️ - Has recibido una advertencia",
			Color: 0xFFA500,
			Description: fmt.Sprintf(
				"⚒ - **Servidor:** %s\n"+
					"📝 - **Razón:** %s\n"+
					"💫 - **Advertencias totales:** %d\n\n"+
					"🕒 - **Fecha:** <t:%d:F>",
				ctx.Guild().Name, warning.Reason, total, time.Now().Unix(),
			),
			Footer: &discordgo.MessageEmbedFooter{
				Text:    "💫 Developed by PancyStudios | Flace Manager Go",
				IconURL: ctx.Client.Session.State.User.AvatarURL(""),
			},
		}
		sendPunishmentDM(ctx, user, embedDM)
	}()

	return ctx.Reply(fmt.Sprintf("⚠️ **%s** ha sido advertido.\n**Razón:** %s\n**Moderador:** %s\n**Advertencias totales:** %d",
		user.Username,
		warning.Reason,
		ctx.User().Username,
		total,
	))
}
