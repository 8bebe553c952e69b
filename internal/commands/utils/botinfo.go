// Package utils - /utils botinfo command
package utils

import (
	"fmt"
	"time"

	"github.com/PancyStudios/FlaceManagerGo/pkg/discord"
	"github.com/PancyStudios/FlaceManagerGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// createBotInfoCommand creates the /utils botinfo subcommand
func createBotInfoCommand() *discord.Command {
	return discord.NewCommand(
		"botinfo",
		"Muestra información del sistema donde corre el bot",
		"utils",
		botInfoHandler,
	)
}

// botInfoHandler handles the /utils botinfo command
func botInfoHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		// La medición de CPU bloquea un segundo, por eso se difiere la
		// respuesta.
		if err := ctx.Defer(); err != nil {
			return
		}

		cpuLine := "Desconocido"
		if percents, err := cpu.Percent(time.Second, false); err == nil && len(percents) > 0 {
			cpuLine = fmt.Sprintf("%.1f%%", percents[0])
		}

		ramLine := "Desconocido"
		if vm, err := mem.VirtualMemory(); err == nil {
			ramLine = fmt.Sprintf("%.2f GB / %.2f GB (%.1f%%)",
				float64(vm.Used)/1024/1024/1024,
				float64(vm.Total)/1024/1024/1024,
				vm.UsedPercent,
			)
		}

		diskLine := "Desconocido"
		if du, err := disk.Usage("/"); err == nil {
			diskLine = fmt.Sprintf("%.2f GB / %.2f GB (%.1f%%)",
				float64(du.Used)/1024/1024/1024,
				float64(du.Total)/1024/1024/1024,
				du.UsedPercent,
			)
		}

		osLine := "Desconocido"
		uptimeLine := "Desconocido"
		if info, err := host.Info(); err == nil {
			osLine = fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion)
			uptimeLine = formatDuration(time.Duration(info.Uptime) * time.Second)
		}

		embed := &discordgo.MessageEmbed{
			Title: "🖥️ Información del sistema",
			Color: 0x5865F2,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "⚙️ CPU", Value: cpuLine, Inline: true},
				{Name: "🧠 RAM", Value: ramLine, Inline: true},
				{Name: "💾 Disco", Value: diskLine, Inline: true},
				{Name: "🐧 Sistema", Value: osLine, Inline: true},
				{Name: "⏱ Uptime del sistema", Value: uptimeLine, Inline: true},
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text:    "💫 Developed by PancyStudios | Flace Manager Go",
				IconURL: ctx.Client.Session.State.User.AvatarURL(""),
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		ctx.EditReplyEmbed(embed)
	}()
	return nil
}
