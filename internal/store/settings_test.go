// ABOUTME: Tests for SettingsStore methods against real SQLite
// ABOUTME: Covers lazy defaults, upsert-on-save, and the one-row-per-account invariant

package store

import (
	"context"
	"errors"
	"testing"
)

func TestGetOrCreateSettingsDefaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	accountID := createTestAccount(t, s, "ada", "ada@x.com")

	got, err := s.GetOrCreateSettings(ctx, accountID)
	if err != nil {
		t.Fatalf("GetOrCreateSettings: %v", err)
	}
	if got.FontSize != DefaultFontSize {
		t.Errorf("unexpected font size: %s", got.FontSize)
	}
	if got.FontType != DefaultFontType {
		t.Errorf("unexpected font type: %s", got.FontType)
	}
	if got.BootstrapTheme != DefaultBootstrapTheme {
		t.Errorf("unexpected theme: %s", got.BootstrapTheme)
	}

	// Second read returns identical settings and exactly one row exists
	again, err := s.GetOrCreateSettings(ctx, accountID)
	if err != nil {
		t.Fatalf("GetOrCreateSettings second: %v", err)
	}
	if *again != *got {
		t.Errorf("second read differs: %+v vs %+v", again, got)
	}
	if n := countSettingsRows(t, s, accountID); n != 1 {
		t.Errorf("expected exactly 1 settings row, got %d", n)
	}
}

func TestGetOrCreateSettingsPreservesExisting(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	accountID := createTestAccount(t, s, "ada", "ada@x.com")

	saved := &Settings{
		AccountID:      accountID,
		FontSize:       "20",
		FontType:       "Courier",
		BootstrapTheme: "darkly.css",
	}
	if err := s.SaveSettings(ctx, saved); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	got, err := s.GetOrCreateSettings(ctx, accountID)
	if err != nil {
		t.Fatalf("GetOrCreateSettings: %v", err)
	}
	if got.FontSize != "20" || got.FontType != "Courier" || got.BootstrapTheme != "darkly.css" {
		t.Errorf("existing row not returned unchanged: %+v", got)
	}
}

func TestSaveSettingsUpserts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	accountID := createTestAccount(t, s, "ada", "ada@x.com")

	if err := s.SaveSettings(ctx, &Settings{AccountID: accountID, FontSize: "14", FontType: "Arial", BootstrapTheme: "bootstrap.css"}); err != nil {
		t.Fatalf("SaveSettings first: %v", err)
	}
	if err := s.SaveSettings(ctx, &Settings{AccountID: accountID, FontSize: "18", FontType: "Verdana", BootstrapTheme: "flatly.css"}); err != nil {
		t.Fatalf("SaveSettings second: %v", err)
	}

	if n := countSettingsRows(t, s, accountID); n != 1 {
		t.Fatalf("expected 1 settings row after two saves, got %d", n)
	}

	got, err := s.GetOrCreateSettings(ctx, accountID)
	if err != nil {
		t.Fatalf("GetOrCreateSettings: %v", err)
	}
	if got.FontSize != "18" || got.FontType != "Verdana" || got.BootstrapTheme != "flatly.css" {
		t.Errorf("second save did not replace the row: %+v", got)
	}
}

func TestDeleteSettings(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	accountID := createTestAccount(t, s, "ada", "ada@x.com")

	err := s.DeleteSettings(ctx, accountID)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound before any row exists, got %v", err)
	}

	if _, err := s.GetOrCreateSettings(ctx, accountID); err != nil {
		t.Fatalf("GetOrCreateSettings: %v", err)
	}
	if err := s.DeleteSettings(ctx, accountID); err != nil {
		t.Fatalf("DeleteSettings: %v", err)
	}

	err = s.DeleteSettings(ctx, accountID)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func countSettingsRows(t *testing.T, s *SQLiteStore, accountID string) int {
	t.Helper()
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM settings WHERE account_id = ?`, accountID).Scan(&n); err != nil {
		t.Fatalf("counting settings rows: %v", err)
	}
	return n
}
