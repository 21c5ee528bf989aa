package models

import "fmt"

const discordCDNBase = "https://cdn.discordapp.com"

// Guild is the display projection of a Discord guild served to the dashboard
type Guild struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	IconURL *string `json:"icon_url"`
}

// GuildIconURL builds the CDN icon URL for a guild, or nil when the guild
// has no icon set
func GuildIconURL(guildID, iconHash string) *string {
	if iconHash == "" {
		return nil
	}
	url := fmt.Sprintf("%s/icons/%s/%s.png", discordCDNBase, guildID, iconHash)
	return &url
}
