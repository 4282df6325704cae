// Package discord provides the Discord bot client and related structures.
// It wraps discordgo with additional functionality for command and event handling.
package discord

import (
	"fmt"
	"sync"
	"time"

	"github.com/ANN7660/hoshimi/pkg/logger"
	"github.com/ANN7660/hoshimi/pkg/mqtt"
	"github.com/ANN7660/hoshimi/pkg/scheduler"
	"github.com/ANN7660/hoshimi/pkg/state"
	"github.com/bwmarrin/discordgo"
)

func init() {
	discordgo.Logger = func(msgL int, caller int, format string, a ...interface{}) {
		logger.Debug(fmt.Sprintf(format, a...), "DiscordGo")
	}
}

// Deps bundles everything command and event handlers need. The store
// and its accessors are constructed in main and injected here, never
// reached through package globals, so tests can build isolated stores.
type Deps struct {
	Store         *state.Store
	GuildConfig   *state.GuildConfigRegistry
	Warnings      *state.ModerationLedger
	Economy       *state.EconomyLedger
	Giveaways     *state.GiveawayBook
	Mutes         *state.MuteBook
	TempVocs      *state.TempVoiceDir
	ReactionRoles *state.ReactionRoleMap
	Levels        *state.LevelBoard
	Tickets       *state.TicketDesk
	Premium       *state.PremiumList
	Responses     *state.AutoResponder
	Links         *state.LinkPolicy
	Badges        *state.BadgeCase
	Suggestions   *state.SuggestionBox
	Scheduler     *scheduler.Scheduler
	Telemetry     *mqtt.Publisher
}

// ExtendedClient wraps discordgo.Session with command dispatch and the
// injected bot dependencies.
type ExtendedClient struct {
	Session        *discordgo.Session
	Commands       *CommandCollection
	CommandHandler *CommandHandler
	Deps           *Deps
	StartTime      time.Time
	mu             sync.RWMutex
	isReady        bool
}

// CommandCollection holds registered commands
type CommandCollection struct {
	commands map[string]*Command
	mu       sync.RWMutex
}

// NewCommandCollection creates a new CommandCollection
func NewCommandCollection() *CommandCollection {
	return &CommandCollection{
		commands: make(map[string]*Command),
	}
}

// Set adds or updates a command
func (cc *CommandCollection) Set(name string, cmd *Command) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.commands[name] = cmd
}

// Get retrieves a command by name
func (cc *CommandCollection) Get(name string) (*Command, bool) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	cmd, ok := cc.commands[name]
	return cmd, ok
}

// Size returns the number of commands
func (cc *CommandCollection) Size() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return len(cc.commands)
}

var (
	client *ExtendedClient
	once   sync.Once
)

// Init initializes the global Discord client
func Init(token string, deps *Deps) (*ExtendedClient, error) {
	var err error
	once.Do(func() {
		client, err = NewClient(token, deps)
	})
	return client, err
}

// Get returns the global Discord client
func Get() *ExtendedClient {
	return client
}

// NewClient creates a new ExtendedClient
func NewClient(token string, deps *Deps) (*ExtendedClient, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentsMessageContent

	session.SyncEvents = false
	session.StateEnabled = true
	session.LogLevel = discordgo.LogWarning

	c := &ExtendedClient{
		Session:  session,
		Commands: NewCommandCollection(),
		Deps:     deps,
	}
	c.CommandHandler = NewCommandHandler(c)

	return c, nil
}

// Start opens the gateway connection and wires command dispatch.
func (c *ExtendedClient) Start() error {
	c.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		c.mu.Lock()
		c.isReady = true
		c.mu.Unlock()

		logger.Success("Connected as: "+r.User.Username, "Client")
		c.CommandHandler.RegisterCommands()
	})

	c.Session.AddHandler(c.handleInteraction)

	c.StartTime = time.Now()
	return c.Session.Open()
}

// handleInteraction dispatches incoming slash command interactions.
func (c *ExtendedClient) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	commandName := data.Name

	// Subcommands dispatch under "group.sub"
	if len(data.Options) > 0 {
		opt := data.Options[0]
		if opt.Type == discordgo.ApplicationCommandOptionSubCommandGroup {
			if len(opt.Options) > 0 {
				commandName = data.Name + "." + opt.Name + "." + opt.Options[0].Name
			}
		} else if opt.Type == discordgo.ApplicationCommandOptionSubCommand {
			commandName = data.Name + "." + opt.Name
		}
	}

	cmd, ok := c.Commands.Get(commandName)
	if !ok {
		logger.Warn("Command not found: "+commandName, "Client")
		return
	}

	ctx := &CommandContext{
		Session:     s,
		Interaction: i,
		Client:      c,
	}

	if cmd.RequiresPremium {
		if c.Deps.Premium == nil || !c.Deps.Premium.Has(i.GuildID, ctx.User().ID) {
			ctx.ReplyEphemeral("💎 Cette commande est réservée aux membres premium.")
			return
		}
	}

	if err := cmd.Run(ctx); err != nil {
		logger.Error("Error executing command "+commandName+": "+err.Error(), "Client")
	}
}

// Stop stops the bot and closes the session
func (c *ExtendedClient) Stop() error {
	c.mu.Lock()
	c.isReady = false
	c.mu.Unlock()

	if c.Session != nil {
		return c.Session.Close()
	}
	return nil
}

// IsReady returns true if the bot is ready
func (c *ExtendedClient) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isReady
}

// GuildCount returns the number of guilds the bot is in
func (c *ExtendedClient) GuildCount() int {
	if c.Session == nil || c.Session.State == nil {
		return 0
	}
	c.Session.State.RLock()
	defer c.Session.State.RUnlock()
	return len(c.Session.State.Guilds)
}
