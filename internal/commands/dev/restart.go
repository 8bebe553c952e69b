package dev

import (
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/PancyStudios/FlaceManagerGo/pkg/discord"
	"github.com/PancyStudios/FlaceManagerGo/pkg/errors"
	"github.com/PancyStudios/FlaceManagerGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// CreateRestartCommand crea el comando /dev restart
func CreateRestartCommand() *discord.Command {
	return discord.NewCommand(
		"restart",
		"Reinicia el bot",
		"dev",
		restartHandler,
	).AsDev()
}

func restartHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !isOwner(ctx.User().ID) {
			ctx.ReplyEphemeral("❌ **Acceso Denegado:** Este comando es solo para los dueños del bot.")
			return
		}

		embed := &discordgo.MessageEmbed{
			Title:       "🔄 Reiniciando el bot...",
			Description: fmt.Sprintf("Reinicio solicitado por **%s**.\n\n**Últimas líneas del log:**\n```\n%s\n```", ctx.User().String(), lastLogLines()),
			Color:       0xFFA500,
			Timestamp:   time.Now().Format(time.RFC3339),
		}

		if err := ctx.ReplyEmbed(embed); err != nil {
			logger.Error(fmt.Sprintf("Error enviando confirmación de reinicio: %v", err), "DevRestart")
		}

		logger.System(fmt.Sprintf("Reinicio solicitado por %s (%s)", ctx.User().String(), ctx.User().ID), "DevRestart")

		time.Sleep(2 * time.Second)

		ctx.Client.Stop()

		exe, err := os.Executable()
		if err != nil {
			logger.Critical(fmt.Sprintf("No se pudo resolver el ejecutable para reiniciar: %v", err), "DevRestart")
			errors.Get().Shutdown(1)
			return
		}

		// Reemplaza el proceso actual, el PID se conserva
		if err := syscall.Exec(exe, os.Args, os.Environ()); err != nil {
			logger.Critical(fmt.Sprintf("Error reiniciando el proceso: %v", err), "DevRestart")
			errors.Get().Shutdown(1)
		}
	}()
	return nil
}
