package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// TicketType is one selectable entry of the ticket panel menu.
type TicketType struct {
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
	Value       string `yaml:"value"`
}

// Settings holds the guild-level configuration loaded from conf/bot.yaml.
type Settings struct {
	// Color por defecto de los embeds
	EmbedColor int `yaml:"embed_color"`

	// IDs de los dueños del bot (comandos dev)
	OwnerIDs []string `yaml:"owner_ids"`

	Suggestions struct {
		ChannelID string `yaml:"channel_id"`
	} `yaml:"suggestions"`

	Tickets struct {
		CategoryID    string       `yaml:"category_id"`
		SupportRoleID string       `yaml:"support_role_id"`
		NameTemplate  string       `yaml:"name_template"`
		Message       string       `yaml:"message"`
		Types         []TicketType `yaml:"types"`
	} `yaml:"tickets"`
}

var (
	settings     *Settings
	settingsOnce sync.Once
	settingsErr  error
)

// DefaultSettings returns the settings used when no YAML file is present.
func DefaultSettings() *Settings {
	s := &Settings{EmbedColor: 0x3498DB}
	s.Tickets.NameTemplate = "ticket-%s"
	s.Tickets.Message = "El equipo de soporte te atenderá en breve."
	s.Tickets.Types = []TicketType{
		{Label: "Order", Description: "Order issue", Value: "Order"},
		{Label: "Issue", Description: "General issue", Value: "Issue"},
		{Label: "Partnership", Description: "Partnership inquiry", Value: "Partnership"},
		{Label: "Bot Issue", Description: "Bot-related issue", Value: "Bot Issue"},
	}
	return s
}

// LoadSettings parses the guild settings file at path. Missing file is not
// an error: defaults apply and the per-guild features stay disabled until
// their IDs are configured.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}
	return s, nil
}

// GetSettings returns the global settings, loading them on first use from
// the path in Config.
func GetSettings() *Settings {
	settingsOnce.Do(func() {
		settings, settingsErr = LoadSettings(Get().SettingsPath)
		if settingsErr != nil {
			settings = DefaultSettings()
		}
	})
	return settings
}
