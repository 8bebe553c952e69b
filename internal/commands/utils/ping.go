// Package utils - /utils ping command
package utils

import (
	"fmt"

	"github.com/PancyStudios/FlaceManagerGo/pkg/discord"
	"github.com/PancyStudios/FlaceManagerGo/pkg/errors"
	"github.com/PancyStudios/FlaceManagerGo/pkg/store"
)

// createPingCommand creates the /utils ping subcommand
func createPingCommand() *discord.Command {
	return discord.NewCommand(
		"ping",
		"Comprueba la latencia del bot",
		"utils",
		pingHandler,
	)
}

// pingHandler handles the /utils ping command
func pingHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		latency := ctx.Client.Session.HeartbeatLatency().Milliseconds()

		dbLine := "🔴 | Desconectado"
		if db := store.Get(); db != nil {
			if elapsed, err := db.Ping(); err == nil {
				dbLine = fmt.Sprintf("🟢 | %dms", elapsed.Milliseconds())
			}
		}

		ctx.Reply(fmt.Sprintf("🏓 Pong!\n• **Gateway:** %dms\n• **Base de datos:** %s", latency, dbLine))
	}()
	return nil
}
