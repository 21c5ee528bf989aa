package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/samber/mo"

	"deltaboard/models"
)

type PostgresEconomySettingsRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for server_settings table
var economySettingsColumns = []string{
	"guild_id",
	"work_cooldown",
	"work_min_amount",
	"work_max_amount",
	"created_at",
	"updated_at",
}

func NewPostgresEconomySettingsRepository(db *sqlx.DB, schema string) *PostgresEconomySettingsRepository {
	return &PostgresEconomySettingsRepository{db: db, schema: schema}
}

// GetSettingsByGuildID returns the stored row for a guild, or None when the
// guild has never been configured
func (r *PostgresEconomySettingsRepository) GetSettingsByGuildID(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.EconomySettings], error) {
	columnsStr := strings.Join(economySettingsColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.server_settings
		WHERE guild_id = $1
	`, columnsStr, r.schema)

	var settings models.EconomySettings
	err := r.db.QueryRowxContext(ctx, query, guildID).StructScan(&settings)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mo.None[*models.EconomySettings](), nil
		}
		return mo.None[*models.EconomySettings](), fmt.Errorf("failed to get economy settings: %w", err)
	}

	return mo.Some(&settings), nil
}

// UpsertSettings writes the full settings row for a guild, overwriting any
// existing row (last-write-wins)
func (r *PostgresEconomySettingsRepository) UpsertSettings(
	ctx context.Context,
	settings *models.EconomySettings,
) (*models.EconomySettings, error) {
	returningStr := strings.Join(economySettingsColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.server_settings (
			guild_id, work_cooldown, work_min_amount, work_max_amount
		) VALUES ($1, $2, $3, $4)
		ON CONFLICT (guild_id)
		DO UPDATE SET
			work_cooldown = EXCLUDED.work_cooldown,
			work_min_amount = EXCLUDED.work_min_amount,
			work_max_amount = EXCLUDED.work_max_amount,
			updated_at = NOW()
		RETURNING %s
	`, r.schema, returningStr)

	var saved models.EconomySettings
	err := r.db.QueryRowxContext(
		ctx,
		query,
		settings.GuildID, settings.WorkCooldown, settings.WorkMinAmount, settings.WorkMaxAmount,
	).StructScan(&saved)

	if err != nil {
		return nil, fmt.Errorf("failed to upsert economy settings: %w", err)
	}

	return &saved, nil
}
