package models

// DiscordUser is the identity Discord reports for a bearer token.
// It is fetched fresh on every authenticated request and never persisted.
type DiscordUser struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator,omitempty"`
	GlobalName    string `json:"global_name,omitempty"`
	Avatar        string `json:"avatar,omitempty"`
}

// AuthSession is returned to the dashboard after the OAuth code exchange
type AuthSession struct {
	AccessToken string       `json:"access_token"`
	User        *DiscordUser `json:"user"`
}
