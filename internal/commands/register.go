// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (utils, mod,
// suggest, ticket, dev).
package commands

import (
	"github.com/PancyStudios/FlaceManagerGo/internal/commands/dev"
	"github.com/PancyStudios/FlaceManagerGo/internal/commands/mod"
	"github.com/PancyStudios/FlaceManagerGo/internal/commands/suggest"
	"github.com/PancyStudios/FlaceManagerGo/internal/commands/ticket"
	"github.com/PancyStudios/FlaceManagerGo/internal/commands/utils"
	"github.com/PancyStudios/FlaceManagerGo/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	// Utility commands (/utils ping, /utils stats, /utils botinfo)
	utils.RegisterUtilsCommands(client)

	// Moderation commands (/mod warn, /mod warns, /mod removewarn, /mod kick, /mod ban)
	mod.RegisterModCommands(client)

	// Suggestion commands (/suggest, /suggestions)
	suggest.RegisterSuggestCommands(client)

	// Ticket commands (/ticketpanel)
	ticket.RegisterTicketCommands(client)

	// Dev commands, only registered in the dev guild (/dev eval, /dev shutdown, /dev restart)
	dev.Register(client)
}
