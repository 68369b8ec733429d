// Package store provides persistent storage for the SuperTodo backend using SQLite.
//
// # Architecture
//
// The store package uses an interface-driven architecture with one narrow
// interface per entity:
//
//   - AccountStore: account rows (username, email, password hash)
//   - TaskStore: task rows scoped to an account
//   - SettingsStore: at most one UI settings row per account
//
// SQLiteStore implements all interfaces in a single struct. The Store
// interface combines them with a Close method so callers can hold one
// handle with a well-defined shutdown path.
//
// # SQLite Configuration
//
// The store uses SQLite with WAL mode for concurrent reads:
//
//	PRAGMA journal_mode=WAL;
//	PRAGMA foreign_keys=ON;
//
// The schema is created on initialization. Unique indexes on
// accounts(username), accounts(email) and settings(account_id) enforce the
// uniqueness invariants at the storage level; application-level checks are
// early exits only.
//
// # Error Handling
//
// Common errors:
//
//   - ErrNotFound: Requested entity does not exist
//   - ErrAccountExists: Username or email already in use
//
// All methods accept context.Context for cancellation support.
//
// # Testing
//
// Use NewSQLiteStore(":memory:") for tests with real SQLite.
package store
