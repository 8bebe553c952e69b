package dev

import (
	"fmt"
	"time"

	"github.com/PancyStudios/FlaceManagerGo/pkg/discord"
	"github.com/PancyStudios/FlaceManagerGo/pkg/errors"
	"github.com/PancyStudios/FlaceManagerGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// CreateShutdownCommand crea el comando /dev shutdown
func CreateShutdownCommand() *discord.Command {
	return discord.NewCommand(
		"shutdown",
		"Apaga el bot de forma segura",
		"dev",
		shutdownHandler,
	).AsDev()
}

func shutdownHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !isOwner(ctx.User().ID) {
			ctx.ReplyEphemeral("❌ **Acceso Denegado:** Este comando es solo para los dueños del bot.")
			return
		}

		embed := &discordgo.MessageEmbed{
			Title:       "🛑 Apagando el bot...",
			Description: fmt.Sprintf("Apagado solicitado por **%s**.\n\n**Últimas líneas del log:**\n```\n%s\n```", ctx.User().String(), lastLogLines()),
			Color:       0xFF0000,
			Timestamp:   time.Now().Format(time.RFC3339),
		}

		if err := ctx.ReplyEmbed(embed); err != nil {
			logger.Error(fmt.Sprintf("Error enviando confirmación de apagado: %v", err), "DevShutdown")
		}

		logger.System(fmt.Sprintf("Apagado solicitado por %s (%s)", ctx.User().String(), ctx.User().ID), "DevShutdown")

		// Dar un momento a Discord para entregar la respuesta
		time.Sleep(2 * time.Second)
		errors.Get().Shutdown(0)
	}()
	return nil
}

// lastLogLines returns the tail of the current log file, bounded so it
// fits inside an embed.
func lastLogLines() string {
	tail, err := logger.Get().Tail(1500)
	if err != nil || tail == "" {
		return "(log no disponible)"
	}
	return tail
}
