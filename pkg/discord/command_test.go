package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

// TestCommandCreation verifies that commands can be created with the builder pattern
func TestCommandCreation(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("test", "Test command", "test", handler)

	if cmd == nil {
		t.Fatal("NewCommand returned nil")
	}

	if cmd.Name != "test" {
		t.Errorf("Name = %v, want %v", cmd.Name, "test")
	}

	if cmd.Description != "Test command" {
		t.Errorf("Description = %v, want %v", cmd.Description, "Test command")
	}

	if cmd.Category != "test" {
		t.Errorf("Category = %v, want %v", cmd.Category, "test")
	}

	if cmd.Run == nil {
		t.Error("Run function is nil")
	}
}

// TestCommandBuilder verifies the builder methods
func TestCommandBuilder(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	option := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "test-option",
		Description: "Test option",
		Required:    true,
	}

	cmd := NewCommand("test", "Test command", "test", handler).
		WithOptions(option).
		WithUserPermissions(discordgo.PermissionKickMembers).
		AsDev().
		RequiresDatabase()

	if len(cmd.Options) != 1 || cmd.Options[0].Name != "test-option" {
		t.Errorf("Options = %v, want the test-option entry", cmd.Options)
	}
	if cmd.UserPermissions != discordgo.PermissionKickMembers {
		t.Errorf("UserPermissions = %v, want PermissionKickMembers", cmd.UserPermissions)
	}
	if !cmd.IsDev {
		t.Error("IsDev should be true after AsDev()")
	}
	if !cmd.RequiresDB {
		t.Error("RequiresDB should be true after RequiresDatabase()")
	}
}

// TestCommandCollection verifies the thread-safe command registry
func TestCommandCollection(t *testing.T) {
	cc := NewCommandCollection()

	if cc.Size() != 0 {
		t.Errorf("Size() = %d, want 0", cc.Size())
	}

	cmd := NewCommand("mod.warn", "Advierte a un usuario", "mod", func(ctx *CommandContext) error { return nil })
	cc.Set("mod.warn", cmd)

	got, ok := cc.Get("mod.warn")
	if !ok || got.Name != "mod.warn" {
		t.Errorf("Get() = %v, %v, want the registered command", got, ok)
	}

	if _, ok := cc.Get("mod.mute"); ok {
		t.Error("Get() should report missing commands")
	}

	if cc.Size() != 1 {
		t.Errorf("Size() = %d, want 1", cc.Size())
	}
}

// TestFullCommandName verifies subcommand routing keys
func TestFullCommandName(t *testing.T) {
	data := discordgo.ApplicationCommandInteractionData{
		Name: "mod",
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{
				Name: "warn",
				Type: discordgo.ApplicationCommandOptionSubCommand,
			},
		},
	}

	if got := fullCommandName(data); got != "mod.warn" {
		t.Errorf("fullCommandName() = %v, want mod.warn", got)
	}

	plain := discordgo.ApplicationCommandInteractionData{Name: "ping"}
	if got := fullCommandName(plain); got != "ping" {
		t.Errorf("fullCommandName() = %v, want ping", got)
	}
}
