// ABOUTME: Settings row persistence for the SQLite store
// ABOUTME: Lazily materializes defaults on first read and upserts on save

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Ensure SQLiteStore implements SettingsStore.
var _ SettingsStore = (*SQLiteStore)(nil)

// GetOrCreateSettings returns the settings row for an account, creating the
// default row on first read. The insert ignores conflicts on account_id, so
// concurrent first-reads for the same account persist at most one row and
// every caller observes the same values.
func (s *SQLiteStore) GetOrCreateSettings(ctx context.Context, accountID string) (*Settings, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (account_id, font_size, font_type, bootstrap_theme, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(account_id) DO NOTHING
	`, accountID, DefaultFontSize, DefaultFontType, DefaultBootstrapTheme,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("creating default settings: %w", err)
	}

	return s.getSettings(ctx, accountID)
}

// SaveSettings creates or replaces the settings row for settings.AccountID.
// A second save for the same account overwrites the previous row rather than
// duplicating it.
func (s *SQLiteStore) SaveSettings(ctx context.Context, settings *Settings) error {
	settings.UpdatedAt = time.Now()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (account_id, font_size, font_type, bootstrap_theme, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(account_id) DO UPDATE SET
			font_size = excluded.font_size,
			font_type = excluded.font_type,
			bootstrap_theme = excluded.bootstrap_theme,
			updated_at = excluded.updated_at
	`, settings.AccountID, settings.FontSize, settings.FontType, settings.BootstrapTheme,
		settings.UpdatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	return nil
}

// DeleteSettings removes the settings row for an account.
// Returns ErrNotFound when no row was affected.
func (s *SQLiteStore) DeleteSettings(ctx context.Context, accountID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE account_id = ?`, accountID)
	if err != nil {
		return fmt.Errorf("deleting settings: %w", err)
	}

	n, _ := result.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) getSettings(ctx context.Context, accountID string) (*Settings, error) {
	var settings Settings
	var updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT account_id, font_size, font_type, bootstrap_theme, updated_at
		FROM settings WHERE account_id = ?
	`, accountID).Scan(
		&settings.AccountID,
		&settings.FontSize,
		&settings.FontType,
		&settings.BootstrapTheme,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying settings: %w", err)
	}

	settings.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &settings, nil
}
