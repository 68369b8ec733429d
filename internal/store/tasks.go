// ABOUTME: Task row persistence for the SQLite store
// ABOUTME: Handles create, list-by-account, update-by-id, and delete-by-id

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Ensure SQLiteStore implements TaskStore.
var _ TaskStore = (*SQLiteStore)(nil)

// CreateTask creates a new task row owned by task.AccountID.
func (s *SQLiteStore) CreateTask(ctx context.Context, task *Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (id, account_id, task_name, instruction, location, status, due_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, task.ID, task.AccountID, task.TaskName, task.Instruction, task.Location,
		task.Status, task.DueDate, task.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}

	return nil
}

// ListTasksByAccount lists all tasks owned by an account in creation order.
// Returns an empty slice when the account has no tasks.
func (s *SQLiteStore) ListTasksByAccount(ctx context.Context, accountID string) ([]*Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, account_id, task_name, instruction, location, status, due_date, created_at
		FROM tasks WHERE account_id = ?
		ORDER BY created_at ASC, id ASC
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := []*Task{}
	for rows.Next() {
		var t Task
		var instruction, location, status, dueDate sql.NullString
		var createdAt string
		if err := rows.Scan(&t.ID, &t.AccountID, &t.TaskName, &instruction, &location, &status, &dueDate, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		t.Instruction = instruction.String
		t.Location = location.String
		t.Status = status.String
		t.DueDate = dueDate.String
		t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		tasks = append(tasks, &t)
	}
	return tasks, rows.Err()
}

// UpdateTask replaces the five mutable fields of the task identified by
// task.ID. Returns ErrNotFound when no task has that id. Ownership is not
// re-checked; the account_id set at creation is immutable.
func (s *SQLiteStore) UpdateTask(ctx context.Context, task *Task) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET task_name = ?, instruction = ?, location = ?, status = ?, due_date = ?
		WHERE id = ?
	`, task.TaskName, task.Instruction, task.Location, task.Status, task.DueDate, task.ID)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}

	n, _ := result.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTask deletes a task by ID. Returns ErrNotFound when no row was affected.
func (s *SQLiteStore) DeleteTask(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	n, _ := result.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
