// Package events provides event handlers for the bot
package events

import (
	"fmt"
	"time"

	"github.com/PancyStudios/FlaceManagerGo/pkg/discord"
	"github.com/PancyStudios/FlaceManagerGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// RegisterReadyEvent registers the ready event handler
func RegisterReadyEvent(client *discord.ExtendedClient) {
	client.Session.AddHandler(onReady)
	client.Session.AddHandler(onDebug)
}

// onReady is called when the bot successfully connects to Discord
func onReady(s *discordgo.Session, r *discordgo.Ready) {
	logger.Success(fmt.Sprintf("✅ Bot conectado: %s#%s", r.User.Username, r.User.Discriminator), "Ready")
	logger.Info(fmt.Sprintf("📊 Conectado a %d servidores", len(r.Guilds)), "Ready")

	// Establecer estado inicial y arrancar la rotación
	if err := s.UpdateGameStatus(0, "💡 /suggest | Flace Manager Go"); err != nil {
		logger.Error(fmt.Sprintf("Error estableciendo estado: %v", err), "Ready")
	}

	go rotatePresence(s)
}

// rotatePresence cycles the bot status between static messages and live
// host metrics.
func rotatePresence(s *discordgo.Session) {
	ticker := time.NewTicker(60 * time.Second)
	defer ticker.Stop()

	step := 0
	for range ticker.C {
		var status string

		switch step % 3 {
		case 0:
			status = "💡 /suggest | Flace Manager Go"
		case 1:
			status = fmt.Sprintf("👥 %d servidores", len(s.State.Guilds))
		default:
			status = hostMetricsStatus()
		}

		if err := s.UpdateGameStatus(0, status); err != nil {
			logger.Debug(fmt.Sprintf("Error rotando estado: %v", err), "Ready")
		}
		step++
	}
}

func hostMetricsStatus() string {
	cpuLine := "?"
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		cpuLine = fmt.Sprintf("%.0f%%", percents[0])
	}

	ramLine := "?"
	if vm, err := mem.VirtualMemory(); err == nil {
		ramLine = fmt.Sprintf("%.0f%%", vm.UsedPercent)
	}

	return fmt.Sprintf("🖥️ CPU: %s | RAM: %s", cpuLine, ramLine)
}

func onDebug(s *discordgo.Session, log string) {
	logger.Debug(log, "DiscordGO")
}
