package repositories

import (
	"context"
	"time"

	"realestate-listings/internal/models"
	"realestate-listings/pkg/database"

	"github.com/jmoiron/sqlx"
)

type settingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *database.Database) SettingsRepository {
	return &settingsRepository{db: db.DB}
}

func (r *settingsRepository) GetSettings(ctx context.Context) (settings models.SiteSettings, err error) {
	defer observe("get", "site_settings", time.Now(), &err)

	var rows []models.Setting
	if err := r.db.SelectContext(ctx, &rows, "SELECT setting_key, setting_value FROM site_settings"); err != nil {
		return nil, unavailable("load settings", err)
	}
	settings = make(models.SiteSettings, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}
	return settings, nil
}

// SaveSettings upserts every given key. Keys not present are left alone.
func (r *settingsRepository) SaveSettings(ctx context.Context, settings models.SiteSettings) (err error) {
	defer observe("save", "site_settings", time.Now(), &err)

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		for key, value := range settings {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO site_settings (setting_key, setting_value) VALUES (?, ?)
				ON DUPLICATE KEY UPDATE setting_value = VALUES(setting_value)`, key, value); err != nil {
				return unavailable("save settings", err)
			}
		}
		return nil
	})
}
