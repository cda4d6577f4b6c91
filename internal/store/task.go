package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Timestamp layouts used throughout the store. Timestamps are persisted
// as local-time TEXT; DayLayout is the date portion used by streak and
// per-day log keys.
const (
	DayLayout       = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// Status is the task lifecycle state. Pending transitions to completed
// exactly once; completed is terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Task is a tracked unit of work. Points are computed once at creation
// from the scoring policy and never recomputed; completing a task only
// realizes them into totals.
type Task struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Category      string  `json:"category"`
	Priority      string  `json:"priority"`
	DurationHours float64 `json:"duration_hours"`
	CreatedAt     string  `json:"created_at"`
	DueDate       string  `json:"due_date,omitempty"`
	Status        Status  `json:"status"`
	Points        int     `json:"points"`
}

// CreatedDay returns the calendar-day portion of the creation timestamp.
func (t Task) CreatedDay() string {
	if len(t.CreatedAt) < len(DayLayout) {
		return t.CreatedAt
	}
	return t.CreatedAt[:len(DayLayout)]
}

// AddTaskParams holds the input for creating a new task. Points arrive
// precomputed by the caller's scoring policy.
type AddTaskParams struct {
	Title         string
	Category      string
	Priority      string
	DurationHours float64
	DueDate       string
	Points        int
}

// AddTask inserts a new pending task and returns it with its assigned ID.
func (s *Store) AddTask(ctx context.Context, p AddTaskParams) (Task, error) {
	createdAt := timeNow().Format(TimestampLayout)

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (title, category, priority, duration_hours, created_at, due_date, status, points)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Title, p.Category, p.Priority, p.DurationHours, createdAt, p.DueDate, StatusPending, p.Points,
	)
	if err != nil {
		return Task{}, fmt.Errorf("store: add task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Task{}, fmt.Errorf("store: add task: last insert id: %w", err)
	}

	return Task{
		ID:            id,
		Title:         p.Title,
		Category:      p.Category,
		Priority:      p.Priority,
		DurationHours: p.DurationHours,
		CreatedAt:     createdAt,
		DueDate:       p.DueDate,
		Status:        StatusPending,
		Points:        p.Points,
	}, nil
}

// ListTasks returns all tasks in creation order.
func (s *Store) ListTasks(ctx context.Context) ([]Task, error) {
	return s.queryTasks(ctx, `
		SELECT id, title, category, priority, duration_hours, created_at, due_date, status, points
		FROM tasks ORDER BY id`)
}

// ListPendingTasks returns tasks still pending, in creation order.
func (s *Store) ListPendingTasks(ctx context.Context) ([]Task, error) {
	return s.queryTasks(ctx, `
		SELECT id, title, category, priority, duration_hours, created_at, due_date, status, points
		FROM tasks WHERE status = ? ORDER BY id`, StatusPending)
}

// CompleteTask transitions a pending task to completed. It returns
// ErrTaskNotFound for unknown IDs and ErrTaskAlreadyCompleted when the
// transition already happened; re-completion never alters totals.
func (s *Store) CompleteTask(ctx context.Context, id int64) (Task, error) {
	// Conditional UPDATE makes the transition atomic: zero rows means
	// either the task is missing or it was already completed.
	res, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET status = ? WHERE id = ? AND status = ?`,
		StatusCompleted, id, StatusPending,
	)
	if err != nil {
		return Task{}, fmt.Errorf("store: complete task: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return Task{}, fmt.Errorf("store: complete task: rows affected: %w", err)
	}
	if n == 0 {
		var status Status
		err := s.db.QueryRowContext(ctx, `SELECT status FROM tasks WHERE id = ?`, id).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrTaskNotFound
		}
		if err != nil {
			return Task{}, fmt.Errorf("store: complete task: status check: %w", err)
		}
		return Task{}, ErrTaskAlreadyCompleted
	}

	return s.getTask(ctx, id)
}

func (s *Store) getTask(ctx context.Context, id int64) (Task, error) {
	var t Task
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, category, priority, duration_hours, created_at, due_date, status, points
		FROM tasks WHERE id = ?`, id,
	).Scan(&t.ID, &t.Title, &t.Category, &t.Priority, &t.DurationHours, &t.CreatedAt, &t.DueDate, &t.Status, &t.Points)
	if errors.Is(err, sql.ErrNoRows) {
		return Task{}, ErrTaskNotFound
	}
	if err != nil {
		return Task{}, fmt.Errorf("store: get task: %w", err)
	}
	return t, nil
}

func (s *Store) queryTasks(ctx context.Context, query string, args ...any) ([]Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Category, &t.Priority, &t.DurationHours,
			&t.CreatedAt, &t.DueDate, &t.Status, &t.Points); err != nil {
			return nil, fmt.Errorf("store: scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list tasks: %w", err)
	}
	return tasks, nil
}
