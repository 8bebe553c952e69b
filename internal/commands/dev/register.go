// Package dev provides owner-only development commands under /dev.
// They are registered only in the dev guild.
package dev

import (
	"github.com/PancyStudios/FlaceManagerGo/pkg/config"
	"github.com/PancyStudios/FlaceManagerGo/pkg/discord"
)

// Register registers all dev commands as /dev subcommands (only in dev guild)
func Register(client *discord.ExtendedClient) {
	// Create individual subcommands
	evalCmd := CreateEvalCommand()
	shutdownCmd := CreateShutdownCommand()
	restartCmd := CreateRestartCommand()

	// Build the /dev command group with all subcommands
	devGroup := client.CommandHandler.BuildCommandGroup(
		"dev",
		"Comandos de desarrollo",
		evalCmd,
		shutdownCmd,
		restartCmd,
	)

	// Register the command group as dev-only command
	client.CommandHandler.AddDevCommand(devGroup)
}

// isOwner checks the configured owner list
func isOwner(userID string) bool {
	for _, id := range config.GetSettings().OwnerIDs {
		if id == userID {
			return true
		}
	}
	return false
}
