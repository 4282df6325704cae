// Package economy provides currency commands organized as subcommands under /eco
package economy

import (
	"github.com/ANN7660/hoshimi/pkg/discord"
)

// DailyAmount is the daily reward, claimable once per cooldown window.
const DailyAmount = 100

// ShopItem is a purchasable cosmetic.
type ShopItem struct {
	Name  string
	Emoji string
	Price int64
}

// ShopItems lists the historical shop catalog.
var ShopItems = []ShopItem{
	{Name: "badge", Emoji: "🎖️", Price: 500},
	{Name: "fleur", Emoji: "🌸", Price: 300},
	{Name: "coeur", Emoji: "💖", Price: 1000},
}

// RegisterEconomyCommands registers all economy commands as /eco subcommands
func RegisterEconomyCommands(client *discord.ExtendedClient) {
	balanceCmd := createBalanceCommand()
	dailyCmd := createDailyCommand()
	payCmd := createPayCommand()
	shopCmd := createShopCommand()
	buyCmd := createBuyCommand()

	ecoGroup := client.CommandHandler.BuildCommandGroup(
		"eco",
		"Commandes d'économie",
		balanceCmd,
		dailyCmd,
		payCmd,
		shopCmd,
		buyCmd,
	)

	client.CommandHandler.AddGlobalCommand(ecoGroup)
}

// findItem returns the shop item with the given name.
func findItem(name string) (ShopItem, bool) {
	for _, item := range ShopItems {
		if item.Name == name {
			return item, true
		}
	}
	return ShopItem{}, false
}
