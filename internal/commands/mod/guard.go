// Package mod - shared authorization helpers for punitive commands
package mod

import (
	"fmt"

	"github.com/PancyStudios/FlaceManagerGo/pkg/discord"
	"github.com/PancyStudios/FlaceManagerGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// buildGuardRequest resuelve los rangos de actor, objetivo y bot para la
// verificación de autorización. Los rangos son la posición del rol más
// alto de cada miembro en el servidor.
func buildGuardRequest(ctx *discord.CommandContext, target *discordgo.User) (moderation.Request, error) {
	guildID := ctx.Interaction.GuildID

	targetMember, err := ctx.Session.GuildMember(guildID, target.ID)
	if err != nil {
		return moderation.Request{}, fmt.Errorf("failed to resolve target member: %w", err)
	}

	botUser := ctx.Session.State.User

	return moderation.Request{
		ActorID:    ctx.User().ID,
		ActorRank:  discord.MemberTopRolePosition(ctx.Session, guildID, ctx.Interaction.Member),
		TargetID:   target.ID,
		TargetRank: discord.MemberTopRolePosition(ctx.Session, guildID, targetMember),
		BotID:      botUser.ID,
		BotRank:    discord.BotTopRolePosition(ctx.Session, guildID),
	}, nil
}

// sendPunishmentDM envía un MD al usuario sancionado antes de aplicar la
// sanción. El fallo se ignora: muchos usuarios tienen los MD cerrados.
func sendPunishmentDM(ctx *discord.CommandContext, target *discordgo.User, embed *discordgo.MessageEmbed) {
	userChannel, err := ctx.Session.UserChannelCreate(target.ID)
	if err != nil {
		return
	}
	_, _ = ctx.Session.ChannelMessageSendEmbed(userChannel.ID, embed)
}
