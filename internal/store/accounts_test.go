// ABOUTME: Tests for AccountStore methods against real SQLite
// ABOUTME: Covers creation, uniqueness conflicts, and lookups

package store

import (
	"context"
	"errors"
	"testing"
)

func TestCreateAccount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	account := &Account{
		Username:     "ada",
		Email:        "ada@x.com",
		PasswordHash: "$2a$10$fakehashfortest",
	}
	if err := s.CreateAccount(ctx, account); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	if account.ID == "" {
		t.Error("expected ID to be set")
	}

	got, err := s.GetAccountByUsername(ctx, "ada")
	if err != nil {
		t.Fatalf("GetAccountByUsername: %v", err)
	}
	if got.Email != "ada@x.com" {
		t.Errorf("unexpected email: %s", got.Email)
	}
	if got.PasswordHash != "$2a$10$fakehashfortest" {
		t.Errorf("unexpected password hash: %s", got.PasswordHash)
	}
}

func TestCreateAccountDuplicateUsername(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateAccount(ctx, &Account{Username: "ada", Email: "ada@x.com", PasswordHash: "h"}); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	// Same username, different email
	err := s.CreateAccount(ctx, &Account{Username: "ada", Email: "other@x.com", PasswordHash: "h"})
	if !errors.Is(err, ErrAccountExists) {
		t.Errorf("expected ErrAccountExists, got %v", err)
	}
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateAccount(ctx, &Account{Username: "ada", Email: "ada@x.com", PasswordHash: "h"}); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	err := s.CreateAccount(ctx, &Account{Username: "grace", Email: "ada@x.com", PasswordHash: "h"})
	if !errors.Is(err, ErrAccountExists) {
		t.Errorf("expected ErrAccountExists, got %v", err)
	}
}

func TestGetAccountByID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	account := &Account{Username: "ada", Email: "ada@x.com", PasswordHash: "h"}
	if err := s.CreateAccount(ctx, account); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	got, err := s.GetAccount(ctx, account.ID)
	if err != nil {
		t.Fatalf("GetAccount: %v", err)
	}
	if got.Username != "ada" {
		t.Errorf("unexpected username: %s", got.Username)
	}
}

func TestGetAccountNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.GetAccountByUsername(ctx, "nonexistent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	_, err = s.GetAccount(ctx, "nonexistent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUsernamesAreCaseSensitive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateAccount(ctx, &Account{Username: "Ada", Email: "ada@x.com", PasswordHash: "h"}); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	_, err := s.GetAccountByUsername(ctx, "ada")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for lowercase lookup, got %v", err)
	}
}

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}
