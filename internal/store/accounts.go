// ABOUTME: Account row persistence for the SQLite store
// ABOUTME: Handles registration inserts and username/id lookups

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Ensure SQLiteStore implements AccountStore.
var _ AccountStore = (*SQLiteStore)(nil)

// CreateAccount creates a new account row. Returns ErrAccountExists if the
// username or email is already taken. The pre-check mirrors the insert's
// unique constraints; the constraints remain the real guarantee under
// concurrent registration.
func (s *SQLiteStore) CreateAccount(ctx context.Context, account *Account) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}

	// Early exit on an obvious duplicate, matching the single combined lookup
	// the registration flow performs
	var exists int
	err := s.db.QueryRowContext(ctx, `
		SELECT 1 FROM accounts WHERE username = ? OR email = ?
	`, account.Username, account.Email).Scan(&exists)
	if err == nil {
		return ErrAccountExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking account uniqueness: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO accounts (id, username, email, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, account.ID, account.Username, account.Email, account.PasswordHash,
		account.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrAccountExists
		}
		return fmt.Errorf("inserting account: %w", err)
	}

	s.logger.Info("created account", "id", account.ID, "username", account.Username)
	return nil
}

// GetAccount retrieves an account by ID.
func (s *SQLiteStore) GetAccount(ctx context.Context, id string) (*Account, error) {
	return s.getAccount(ctx, `id = ?`, id)
}

// GetAccountByUsername retrieves an account by username. Usernames are
// case-sensitive.
func (s *SQLiteStore) GetAccountByUsername(ctx context.Context, username string) (*Account, error) {
	return s.getAccount(ctx, `username = ?`, username)
}

func (s *SQLiteStore) getAccount(ctx context.Context, where string, arg any) (*Account, error) {
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM accounts
		WHERE ` + where

	var account Account
	var createdAtStr string

	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&createdAtStr,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying account: %w", err)
	}

	account.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	return &account, nil
}
