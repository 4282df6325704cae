package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func newTestHandler() (*CommandHandler, *ExtendedClient) {
	c := &ExtendedClient{Commands: NewCommandCollection()}
	ch := NewCommandHandler(c)
	c.CommandHandler = ch
	return ch, c
}

func TestRegisterCommand(t *testing.T) {
	ch, c := newTestHandler()

	ch.RegisterCommand(NewCommand("ping", "Vérifie la latence du bot", "utils", nil))
	ch.RegisterCommand(NewCommand("flush", "Force une sauvegarde", "dev", nil).AsDev())

	if _, ok := c.Commands.Get("ping"); !ok {
		t.Error("ping should be dispatchable after registration")
	}
	if len(ch.slashCommands) != 1 {
		t.Errorf("slashCommands has %d entries, want 1", len(ch.slashCommands))
	}
	if len(ch.slashCommandsDev) != 1 {
		t.Errorf("slashCommandsDev has %d entries, want 1", len(ch.slashCommandsDev))
	}
}

func TestBuildCommandGroup(t *testing.T) {
	ch, c := newTestHandler()

	group := ch.BuildCommandGroup("mod", "Commandes de modération",
		NewCommand("warn", "Avertit un membre", "mod", nil).
			WithUserPermissions(discordgo.PermissionKickMembers),
		NewCommand("ban", "Bannit un membre", "mod", nil).
			WithUserPermissions(discordgo.PermissionBanMembers),
	)

	if group.Name != "mod" || len(group.Options) != 2 {
		t.Fatalf("group = %v with %d options, want mod with 2", group.Name, len(group.Options))
	}
	for _, opt := range group.Options {
		if opt.Type != discordgo.ApplicationCommandOptionSubCommand {
			t.Errorf("option %v type = %v, want subcommand", opt.Name, opt.Type)
		}
	}

	// Subcommands dispatch under "group.sub".
	if _, ok := c.Commands.Get("mod.warn"); !ok {
		t.Error("mod.warn should be dispatchable")
	}
	if _, ok := c.Commands.Get("mod.ban"); !ok {
		t.Error("mod.ban should be dispatchable")
	}
	if _, ok := c.Commands.Get("warn"); ok {
		t.Error("subcommands should not dispatch under their bare name")
	}

	// The group carries the union of its subcommand permissions.
	if group.DefaultMemberPermissions == nil {
		t.Fatal("DefaultMemberPermissions should be set")
	}
	want := int64(discordgo.PermissionKickMembers | discordgo.PermissionBanMembers)
	if *group.DefaultMemberPermissions != want {
		t.Errorf("DefaultMemberPermissions = %v, want %v", *group.DefaultMemberPermissions, want)
	}
}

func TestCommandCollection(t *testing.T) {
	cc := NewCommandCollection()

	if cc.Size() != 0 {
		t.Errorf("Size() = %v, want 0", cc.Size())
	}

	cc.Set("ping", NewCommand("ping", "Vérifie la latence du bot", "utils", nil))
	if cc.Size() != 1 {
		t.Errorf("Size() = %v, want 1", cc.Size())
	}

	cmd, ok := cc.Get("ping")
	if !ok || cmd.Name != "ping" {
		t.Errorf("Get() = %v %v, want the ping command", cmd, ok)
	}
	if _, ok := cc.Get("missing"); ok {
		t.Error("Get() for an unknown name should report absent")
	}
}
