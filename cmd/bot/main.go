// Package main is the entry point for the Flace Manager Go application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PancyStudios/FlaceManagerGo/internal/commands"
	"github.com/PancyStudios/FlaceManagerGo/internal/events"
	"github.com/PancyStudios/FlaceManagerGo/pkg/config"
	"github.com/PancyStudios/FlaceManagerGo/pkg/discord"
	"github.com/PancyStudios/FlaceManagerGo/pkg/errors"
	"github.com/PancyStudios/FlaceManagerGo/pkg/logger"
	"github.com/PancyStudios/FlaceManagerGo/pkg/mqtt"
	"github.com/PancyStudios/FlaceManagerGo/pkg/store"
	"github.com/PancyStudios/FlaceManagerGo/pkg/web"
)

const heartbeatInterval = 60 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Iniciando Flace Manager Go...", "Main")
	logger.Info(fmt.Sprintf("Directorio de trabajo: %s", getCurrentDir()), "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			if err := discordClient.Stop(); err != nil {
				return
			}
		}
		if db := store.Get(); db != nil {
			_ = db.Close()
		}
		if mq := mqtt.Get(); mq != nil {
			mq.Destroy()
		}
	})

	// Initialize the embedded store
	db, err := store.Init(cfg.DBPath)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error opening database: %v", err), "Main")
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			return
		}
	}()

	// Initialize MQTT
	mqttClientID := "flacemanager"
	if !cfg.IsProd() {
		mqttClientID = "flacemanager_canary"
	}

	mqttClient := mqtt.Init(
		cfg.MQTTHost,
		cfg.MQTTPort,
		cfg.MQTTUser,
		cfg.MQTTPassword,
		mqttClientID,
	)
	defer mqttClient.Destroy()

	// Initialize web server
	webServer := web.Init(cfg.LogsWebhook)
	web.SetupAPIRoutes(webServer)
	webServer.StartAsync(cfg.Port)

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Register commands and events
	commands.RegisterAll(discordClient)
	events.RegisterAll(discordClient)

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func(discordClient *discord.ExtendedClient) {
		if err := discordClient.Stop(); err != nil {
			return
		}
	}(discordClient)

	// Publish status heartbeats once everything is up
	startHeartbeat(mqttClient, discordClient, db)

	logger.Success("Flace Manager Go iniciado correctamente!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Apagando Flace Manager Go...", "Main")
}

// startHeartbeat wires the periodic status publication to the broker
func startHeartbeat(mq *mqtt.MqttCommunicator, client *discord.ExtendedClient, db *store.Store) {
	mq.StartHeartbeat(heartbeatInterval, func() mqtt.Heartbeat {
		_, dbOnline := db.GetStatus()
		return mqtt.Heartbeat{
			Guilds:   client.GuildCount(),
			DBOnline: dbOnline,
			Uptime:   time.Since(client.StartTime).Round(time.Second).String(),
		}
	})
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}
