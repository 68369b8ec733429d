// ABOUTME: Store interfaces and data types for SuperTodo persistence
// ABOUTME: Defines Account, Task, Settings structs and the per-entity store interfaces

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrAccountExists is returned when an account's username or email is already taken
var ErrAccountExists = errors.New("username or email already in use")

// Account represents a registered user identity.
// PasswordHash holds the bcrypt hash of the password; the plaintext is never stored.
type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Task represents a to-do item owned by exactly one account.
// DueDate is stored and returned verbatim; the store does not parse it.
type Task struct {
	ID          string
	AccountID   string
	TaskName    string
	Instruction string
	Location    string
	Status      string
	DueDate     string
	CreatedAt   time.Time
}

// Default settings values materialized on first read.
const (
	DefaultFontSize       = "16"
	DefaultFontType       = "Arial"
	DefaultBootstrapTheme = "bootstrap.css"
)

// Settings represents per-account UI preferences. At most one row exists
// per account, enforced by a unique index on account_id.
type Settings struct {
	AccountID      string
	FontSize       string
	FontType       string
	BootstrapTheme string
	UpdatedAt      time.Time
}

// AccountStore defines account row persistence
type AccountStore interface {
	CreateAccount(ctx context.Context, account *Account) error
	GetAccount(ctx context.Context, id string) (*Account, error)
	GetAccountByUsername(ctx context.Context, username string) (*Account, error)
}

// TaskStore defines task row persistence, scoped to an account
type TaskStore interface {
	CreateTask(ctx context.Context, task *Task) error
	ListTasksByAccount(ctx context.Context, accountID string) ([]*Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id string) error
}

// SettingsStore defines settings row persistence
type SettingsStore interface {
	GetOrCreateSettings(ctx context.Context, accountID string) (*Settings, error)
	SaveSettings(ctx context.Context, settings *Settings) error
	DeleteSettings(ctx context.Context, accountID string) error
}

// Store combines all entity stores with a shutdown path
type Store interface {
	AccountStore
	TaskStore
	SettingsStore

	// Close releases any resources held by the store
	Close() error
}
