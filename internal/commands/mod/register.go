// Package mod provides moderation commands organized as subcommands under /mod
// Each command is in its own file for better organization
package mod

import (
	"github.com/PancyStudios/FlaceManagerGo/pkg/discord"
)

// RegisterModCommands registers all moderation commands as /mod subcommands
func RegisterModCommands(client *discord.ExtendedClient) {
	// Create individual subcommands (each can be in its own file)
	warnCmd := createWarnCommand()
	warnsCmd := createWarnsCommand()
	removeWarnCmd := createRemoveWarnCommand()
	kickCmd := createKickCommand()
	banCmd := createBanCommand()

	// Build the /mod command group with all subcommands
	modGroup := client.CommandHandler.BuildCommandGroup(
		"mod",
		"Comandos de moderación",
		warnCmd,
		warnsCmd,
		removeWarnCmd,
		kickCmd,
		banCmd,
	)

	// Register the command group
	client.CommandHandler.AddGlobalCommand(modGroup)
}
