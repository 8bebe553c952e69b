package logger

import (
	"strings"
	"testing"
)

func TestLogLevelString(t *testing.T) {
	cases := []struct {
		level LogLevel
		want  string
	}{
		{LevelCritical, "CRITICAL"},
		{LevelError, "ERROR"},
		{LevelWarn, "WARN"},
		{LevelSuccess, "SUCCESS"},
		{LevelInfo, "INFO"},
		{LevelDebug, "DEBUG"},
		{LevelSystem, "SYSTEM"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, c := range cases {
		if got := c.level.String(); got != c.want {
			t.Errorf("String() = %v, want %v", got, c.want)
		}
	}
}

func TestLogLevelDiscordColor(t *testing.T) {
	if LevelError.DiscordColor() != 0xFF0000 {
		t.Errorf("LevelError color = %#x, want 0xFF0000", LevelError.DiscordColor())
	}
	if LevelSuccess.DiscordColor() != 0x00FF00 {
		t.Errorf("LevelSuccess color = %#x, want 0x00FF00", LevelSuccess.DiscordColor())
	}
}

func TestLogWritesToFile(t *testing.T) {
	l := NewLogger("", "")
	defer l.Close()

	l.Info("mensaje de prueba", "Test")

	tail, err := l.Tail(4096)
	if err != nil {
		t.Fatalf("Tail() returned error: %v", err)
	}
	if !strings.Contains(tail, "mensaje de prueba") {
		t.Errorf("log file should contain the message, got: %q", tail)
	}
	if !strings.Contains(tail, "[INFO]") {
		t.Errorf("log file should contain the level, got: %q", tail)
	}
}
