package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	// Set up test environment variables
	os.Setenv("botToken", "test-token")
	os.Setenv("PORT", "3001")
	os.Setenv("enviroment", "test")
	os.Setenv("dbPath", "/tmp/test.db")
	defer func() {
		os.Unsetenv("botToken")
		os.Unsetenv("PORT")
		os.Unsetenv("enviroment")
		os.Unsetenv("dbPath")
	}()

	// Reset global config
	resetForTesting()

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if config.BotToken != "test-token" {
		t.Errorf("BotToken = %v, want %v", config.BotToken, "test-token")
	}

	if config.Port != "3001" {
		t.Errorf("Port = %v, want %v", config.Port, "3001")
	}

	if config.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %v, want %v", config.DBPath, "/tmp/test.db")
	}

	if config.Environment != "test" {
		t.Errorf("Environment = %v, want %v", config.Environment, "test")
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test-value")
	defer os.Unsetenv("TEST_VAR")

	if got := getEnv("TEST_VAR", "default"); got != "test-value" {
		t.Errorf("getEnv() = %v, want %v", got, "test-value")
	}

	if got := getEnv("NON_EXISTENT_VAR", "default"); got != "default" {
		t.Errorf("getEnv() = %v, want %v", got, "default")
	}
}

func TestIsProd(t *testing.T) {
	resetForTesting()
	os.Setenv("enviroment", "prod")
	config, _ := Load()

	if !config.IsProd() {
		t.Error("IsProd() should return true when environment is 'prod'")
	}

	resetForTesting()
	os.Setenv("enviroment", "dev")
	config, _ = Load()

	if config.IsProd() {
		t.Error("IsProd() should return false when environment is not 'prod'")
	}

	os.Unsetenv("enviroment")
}

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadSettings() returned error: %v", err)
	}

	// Sin archivo se aplican los valores por defecto
	if s.EmbedColor != 0x3498DB {
		t.Errorf("EmbedColor = %#x, want 0x3498DB", s.EmbedColor)
	}
	if len(s.Tickets.Types) != 4 {
		t.Errorf("len(Tickets.Types) = %d, want 4", len(s.Tickets.Types))
	}
}

func TestLoadSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.yaml")
	data := `
embed_color: 0xFF00FF
owner_ids: ["111", "222"]
suggestions:
  channel_id: "123456"
tickets:
  category_id: "654321"
  support_role_id: "999"
  types:
    - label: Help
      description: Ask for help
      value: Help
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("writing settings file: %v", err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() returned error: %v", err)
	}

	if s.EmbedColor != 0xFF00FF {
		t.Errorf("EmbedColor = %#x, want 0xFF00FF", s.EmbedColor)
	}
	if s.Suggestions.ChannelID != "123456" {
		t.Errorf("Suggestions.ChannelID = %v, want 123456", s.Suggestions.ChannelID)
	}
	if len(s.OwnerIDs) != 2 || s.OwnerIDs[0] != "111" {
		t.Errorf("OwnerIDs = %v, want [111 222]", s.OwnerIDs)
	}
	if len(s.Tickets.Types) != 1 || s.Tickets.Types[0].Label != "Help" {
		t.Errorf("Tickets.Types = %v, want the Help entry", s.Tickets.Types)
	}
}
