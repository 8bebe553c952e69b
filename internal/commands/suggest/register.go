// Package suggest provides the community suggestion commands.
// Votes on rendered suggestion messages are handled by the interaction
// event handler in internal/events.
package suggest

import (
	"github.com/PancyStudios/FlaceManagerGo/pkg/discord"
)

// RegisterSuggestCommands registers the suggestion commands
func RegisterSuggestCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createSuggestCommand())
	client.CommandHandler.RegisterCommand(createHistoryCommand())
}
