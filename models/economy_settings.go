package models

import "time"

// Defaults served when a guild has no stored row. They are only ever
// returned, never written back to the store.
const (
	DefaultWorkCooldown  = 3600
	DefaultWorkMinAmount = 10
	DefaultWorkMaxAmount = 100
)

// EconomySettings is the per-guild economy configuration row
type EconomySettings struct {
	GuildID       string    `json:"-"               db:"guild_id"`
	WorkCooldown  int       `json:"work_cooldown"   db:"work_cooldown"`
	WorkMinAmount int       `json:"work_min_amount" db:"work_min_amount"`
	WorkMaxAmount int       `json:"work_max_amount" db:"work_max_amount"`
	CreatedAt     time.Time `json:"-"               db:"created_at"`
	UpdatedAt     time.Time `json:"-"               db:"updated_at"`
}

// DefaultEconomySettings returns the fixed defaults for a guild with no row
func DefaultEconomySettings(guildID string) *EconomySettings {
	return &EconomySettings{
		GuildID:       guildID,
		WorkCooldown:  DefaultWorkCooldown,
		WorkMinAmount: DefaultWorkMinAmount,
		WorkMaxAmount: DefaultWorkMaxAmount,
	}
}
