// Package mod - /mod warns command
package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/FlaceManagerGo/pkg/discord"
	"github.com/PancyStudios/FlaceManagerGo/pkg/errors"
	"github.com/PancyStudios/FlaceManagerGo/pkg/logger"
	"github.com/PancyStudios/FlaceManagerGo/pkg/store"
	"github.com/bwmarrin/discordgo"
)

// createWarnsCommand creates the /mod warns subcommand
func createWarnsCommand() *discord.Command {
	return discord.NewCommand(
		"warns",
		"Lista de advertencias de un usuario",
		"mod",
		warnsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "[STAFF] Usuario a buscar (opcional)",
			Required:    false,
		},
	).RequiresDatabase()
}

func warnsHandler(ctx *discord.CommandContext) error {
	// Goroutine para no bloquear el hilo principal
	go func() {
		defer errors.RecoverMiddleware()()

		// 1. Determinar objetivo y permisos
		targetUser := ctx.GetUserOption("usuario")
		isSelf := false

		perms, err := ctx.Session.UserChannelPermissions(ctx.User().ID, ctx.Interaction.ChannelID)
		if err != nil {
			perms = 0
		}
		isModerator := (perms & discordgo.PermissionModerateMembers) != 0

		if targetUser == nil {
			targetUser = ctx.User()
			isSelf = true
		}

		// Si intenta ver advertencias de otro y no es moderador
		if !isSelf && !isModerator {
			ctx.ReplyEphemeral("❌ No tienes permisos para ver la lista de advertencias de otro usuario.")
			return
		}

		// 2. Feedback inicial
		embedLoading := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("🔖 - Lista de advertencias de %s", targetUser.Username),
			Description: "Espere un momento mientras obtenemos las advertencias...",
			Color:       0x3498DB,
			Footer: &discordgo.MessageEmbedFooter{
				Text:    "💫 Developed by PancyStudios | Flace Manager Go",
				IconURL: ctx.Guild().IconURL(""),
			},
		}

		if err := ctx.ReplyEphemeralEmbed(embedLoading); err != nil {
			logger.Error(fmt.Sprintf("Error enviando reply inicial warns: %v", err), "CMD-Warns")
			return
		}

		// 3. Consulta DB
		warnings, err := store.Get().ListWarnings(targetUser.ID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error DB Warns: %v", err), "CMD-Warns")
			ctx.EditReply("❌ Error al consultar la base de datos.")
			return
		}

		if len(warnings) == 0 {
			embedClear := &discordgo.MessageEmbed{
				Title:       fmt.Sprintf("🔖 - Lista de advertencias de %s", targetUser.Username),
				Color:       0x00FF00,
				Description: fmt.Sprintf("No se han encontrado advertencias del usuario\n\n> 💫 - **Cantidad de advertencias:** 0\n> 🕒 - **Fecha de consulta:** <t:%d>", time.Now().Unix()),
				Footer: &discordgo.MessageEmbedFooter{
					Text:    "💫 Developed by PancyStudios | Flace Manager Go",
					IconURL: ctx.Guild().IconURL(""),
				},
			}
			ctx.EditReplyEmbed(embedClear)
			return
		}

		// 4. Construir la lista numerada. El número es el que acepta
		// /mod removewarn.
		var description string
		for i, warn := range warnings {
			description += fmt.Sprintf("> **#%d** - %s\n", i+1, warn.Reason)
		}
		description += fmt.Sprintf("\n> 💫 - **Cantidad de advertencias:** %d \n> 🕒 - **Fecha de consulta:** <t:%d>", len(warnings), time.Now().Unix())

		embedList := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("🔖 - Lista de advertencias de %s (%s)", targetUser.Username, targetUser.ID),
			Color:       0xFFA500,
			Description: description,
			Footer: &discordgo.MessageEmbedFooter{
				Text:    "💫 Developed by PancyStudios | Flace Manager Go",
				IconURL: ctx.Guild().IconURL(""),
			},
		}

		// 5. Enviar respuesta final
		ctx.EditReplyEmbed(embedList)
	}()

	return nil
}
