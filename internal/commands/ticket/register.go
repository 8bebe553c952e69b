// Package ticket provides the support ticket panel command.
// Ticket creation, claim and close run through the interaction event
// handler in internal/events.
package ticket

import (
	"github.com/PancyStudios/FlaceManagerGo/pkg/discord"
)

// RegisterTicketCommands registers the ticket commands
func RegisterTicketCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createPanelCommand())
}
