package discord

import (
	"github.com/bwmarrin/discordgo"
)

// MemberTopRolePosition resolves the highest role hierarchy position held by
// a member. The @everyone role sits at position 0, so a member with no roles
// ranks 0. Returns -1 when the guild is not in state.
func MemberTopRolePosition(s *discordgo.Session, guildID string, member *discordgo.Member) int {
	if member == nil {
		return -1
	}

	guild, err := s.State.Guild(guildID)
	if err != nil || guild == nil {
		return -1
	}

	top := 0
	for _, roleID := range member.Roles {
		for _, role := range guild.Roles {
			if role.ID == roleID && role.Position > top {
				top = role.Position
			}
		}
	}
	return top
}

// BotTopRolePosition resolves the bot's own highest role position in a guild.
func BotTopRolePosition(s *discordgo.Session, guildID string) int {
	if s.State == nil || s.State.User == nil {
		return -1
	}

	member, err := s.State.Member(guildID, s.State.User.ID)
	if err != nil || member == nil {
		member, err = s.GuildMember(guildID, s.State.User.ID)
		if err != nil {
			return -1
		}
	}
	return MemberTopRolePosition(s, guildID, member)
}
