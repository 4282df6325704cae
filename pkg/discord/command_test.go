package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestNewCommand(t *testing.T) {
	run := func(ctx *CommandContext) error { return nil }
	cmd := NewCommand("ping", "Vérifie la latence du bot", "utils", run)

	if cmd.Name != "ping" {
		t.Errorf("Name = %v, want ping", cmd.Name)
	}
	if cmd.Description != "Vérifie la latence du bot" {
		t.Errorf("Description = %v, want the given description", cmd.Description)
	}
	if cmd.Category != "utils" {
		t.Errorf("Category = %v, want utils", cmd.Category)
	}
	if cmd.Run == nil {
		t.Error("Run should be set")
	}
	if cmd.IsDev || cmd.RequiresPremium {
		t.Error("a fresh command should be neither dev nor premium")
	}
}

func TestCommandBuilders(t *testing.T) {
	cmd := NewCommand("warn", "Avertit un membre", "mod", nil).
		WithOptions(&discordgo.ApplicationCommandOption{
			Type: discordgo.ApplicationCommandOptionUser,
			Name: "membre",
		}).
		WithUserPermissions(discordgo.PermissionKickMembers).
		AsDev().
		AsPremium()

	if len(cmd.Options) != 1 || cmd.Options[0].Name != "membre" {
		t.Errorf("Options = %+v, want the membre option", cmd.Options)
	}
	if cmd.UserPermissions != discordgo.PermissionKickMembers {
		t.Errorf("UserPermissions = %v, want %v", cmd.UserPermissions, discordgo.PermissionKickMembers)
	}
	if !cmd.IsDev {
		t.Error("AsDev() should mark the command as dev")
	}
	if !cmd.RequiresPremium {
		t.Error("AsPremium() should mark the command as premium")
	}
}

func TestToApplicationCommand(t *testing.T) {
	cmd := NewCommand("ban", "Bannit un membre", "mod", nil).
		WithUserPermissions(discordgo.PermissionBanMembers)

	appCmd := cmd.ToApplicationCommand()
	if appCmd.Name != "ban" {
		t.Errorf("Name = %v, want ban", appCmd.Name)
	}
	if appCmd.DefaultMemberPermissions == nil {
		t.Fatal("DefaultMemberPermissions should be set")
	}
	if *appCmd.DefaultMemberPermissions != discordgo.PermissionBanMembers {
		t.Errorf("DefaultMemberPermissions = %v, want %v", *appCmd.DefaultMemberPermissions, discordgo.PermissionBanMembers)
	}
}

func TestToApplicationCommandNoPermissions(t *testing.T) {
	appCmd := NewCommand("ping", "Vérifie la latence du bot", "utils", nil).ToApplicationCommand()
	if appCmd.DefaultMemberPermissions != nil {
		t.Error("DefaultMemberPermissions should stay unset without user permissions")
	}
}

func TestFindOptionNested(t *testing.T) {
	options := []*discordgo.ApplicationCommandInteractionDataOption{
		{
			Name: "warn",
			Type: discordgo.ApplicationCommandOptionSubCommand,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "membre", Type: discordgo.ApplicationCommandOptionUser},
				{Name: "raison", Type: discordgo.ApplicationCommandOptionString, Value: "spam"},
			},
		},
	}

	opt := findOption(options, "raison")
	if opt == nil {
		t.Fatal("findOption() should reach options nested under a subcommand")
	}
	if opt.StringValue() != "spam" {
		t.Errorf("StringValue() = %v, want spam", opt.StringValue())
	}

	if findOption(options, "absent") != nil {
		t.Error("findOption() for an unknown name should return nil")
	}
}
