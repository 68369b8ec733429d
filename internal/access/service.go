// ABOUTME: Access service facade over the account/task/settings stores
// ABOUTME: Resolves usernames to account ids, owns password hashing and verification

package access

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/matto772/Super-Todo-Webapp/internal/store"
)

// DefaultBcryptCost is the work factor used when none is configured.
const DefaultBcryptCost = 10

// dummyHash is compared against when a username does not resolve, so login
// timing does not reveal whether the account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// TaskFields holds the five mutable task fields supplied by callers.
type TaskFields struct {
	TaskName    string
	Instruction string
	Location    string
	Status      string
	DueDate     string
}

// SettingsFields holds the settings values supplied by callers.
type SettingsFields struct {
	FontSize       string
	FontType       string
	BootstrapTheme string
}

// Service is the facade the boundary layer talks to. It is the only
// component that knows about usernames; the stores operate purely on
// account ids.
type Service struct {
	store      store.Store
	bcryptCost int
	logger     *slog.Logger
}

// New creates a new access service backed by the given store.
// A bcryptCost outside bcrypt's valid range falls back to DefaultBcryptCost.
func New(st store.Store, bcryptCost int) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = DefaultBcryptCost
	}
	return &Service{
		store:      st,
		bcryptCost: bcryptCost,
		logger:     slog.Default().With("component", "access"),
	}
}

// Register creates a new account with a bcrypt-hashed password.
// Returns ErrConflict when the username or email is already taken.
func (s *Service) Register(ctx context.Context, username, password, email string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	account := &store.Account{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.store.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, store.ErrAccountExists) {
			return ErrConflict
		}
		return fmt.Errorf("creating account: %w", err)
	}

	s.logger.Info("registered account", "username", username)
	return nil
}

// Login verifies a username/password pair. No session or token is issued;
// each login is a stateless check. Returns ErrAccountNotFound when the
// username does not resolve and ErrInvalidCredentials on a hash mismatch.
func (s *Service) Login(ctx context.Context, username, password string) error {
	account, err := s.store.GetAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Dummy comparison keeps timing constant for unknown usernames
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return ErrAccountNotFound
		}
		return fmt.Errorf("looking up account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	return nil
}

// AddTask creates a task owned by the account the username resolves to.
func (s *Service) AddTask(ctx context.Context, username string, fields TaskFields) (*store.Task, error) {
	account, err := s.resolveAccount(ctx, username)
	if err != nil {
		return nil, err
	}

	task := &store.Task{
		AccountID:   account.ID,
		TaskName:    fields.TaskName,
		Instruction: fields.Instruction,
		Location:    fields.Location,
		Status:      fields.Status,
		DueDate:     fields.DueDate,
	}
	if err := s.store.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	return task, nil
}

// GetTasks lists all tasks owned by the account the username resolves to.
// An account with zero tasks yields an empty slice, not an error.
func (s *Service) GetTasks(ctx context.Context, username string) ([]*store.Task, error) {
	account, err := s.resolveAccount(ctx, username)
	if err != nil {
		return nil, err
	}

	tasks, err := s.store.ListTasksByAccount(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask replaces the mutable fields of the task with the given id.
// The lookup is by task id alone; ownership is fixed at creation.
func (s *Service) UpdateTask(ctx context.Context, taskID string, fields TaskFields) error {
	task := &store.Task{
		ID:          taskID,
		TaskName:    fields.TaskName,
		Instruction: fields.Instruction,
		Location:    fields.Location,
		Status:      fields.Status,
		DueDate:     fields.DueDate,
	}
	if err := s.store.UpdateTask(ctx, task); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

// DeleteTask deletes the task with the given id.
func (s *Service) DeleteTask(ctx context.Context, taskID string) error {
	if err := s.store.DeleteTask(ctx, taskID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

// GetSettings returns the account's settings, materializing the default row
// on first read.
func (s *Service) GetSettings(ctx context.Context, username string) (*store.Settings, error) {
	account, err := s.resolveAccount(ctx, username)
	if err != nil {
		return nil, err
	}

	settings, err := s.store.GetOrCreateSettings(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}
	return settings, nil
}

// SaveSettings creates or replaces the account's settings row.
func (s *Service) SaveSettings(ctx context.Context, username string, fields SettingsFields) error {
	account, err := s.resolveAccount(ctx, username)
	if err != nil {
		return err
	}

	settings := &store.Settings{
		AccountID:      account.ID,
		FontSize:       fields.FontSize,
		FontType:       fields.FontType,
		BootstrapTheme: fields.BootstrapTheme,
	}
	if err := s.store.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

// DeleteSettings removes the account's settings row. Returns
// ErrSettingsNotFound when the account has no settings row.
func (s *Service) DeleteSettings(ctx context.Context, username string) error {
	account, err := s.resolveAccount(ctx, username)
	if err != nil {
		return err
	}

	if err := s.store.DeleteSettings(ctx, account.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSettingsNotFound
		}
		return fmt.Errorf("deleting settings: %w", err)
	}
	return nil
}

func (s *Service) resolveAccount(ctx context.Context, username string) (*store.Account, error) {
	account, err := s.store.GetAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("resolving account: %w", err)
	}
	return account, nil
}
