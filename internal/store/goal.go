package store

import (
	"context"
	"fmt"
)

// Goal is a target number of hours for a task category. Completed hours
// are never stored; they are recomputed wholesale from completed tasks
// on every read.
type Goal struct {
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	TargetHours float64 `json:"target_hours"`
	CreatedAt   string  `json:"created_at"`
}

// SetGoal creates or replaces the goal with the given title.
func (s *Store) SetGoal(ctx context.Context, title, category string, targetHours float64) (Goal, error) {
	createdAt := timeNow().Format(TimestampLayout)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO goals (title, category, target_hours, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(title) DO UPDATE SET category = excluded.category, target_hours = excluded.target_hours`,
		title, category, targetHours, createdAt,
	)
	if err != nil {
		return Goal{}, fmt.Errorf("store: set goal: %w", err)
	}

	var g Goal
	if err := s.db.QueryRowContext(ctx,
		`SELECT title, category, target_hours, created_at FROM goals WHERE title = ?`, title,
	).Scan(&g.Title, &g.Category, &g.TargetHours, &g.CreatedAt); err != nil {
		return Goal{}, fmt.Errorf("store: set goal: read back: %w", err)
	}
	return g, nil
}

// ListGoals returns all goals ordered by title.
func (s *Store) ListGoals(ctx context.Context) ([]Goal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT title, category, target_hours, created_at FROM goals ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("store: list goals: %w", err)
	}
	defer rows.Close()

	var goals []Goal
	for rows.Next() {
		var g Goal
		if err := rows.Scan(&g.Title, &g.Category, &g.TargetHours, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("store: scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list goals: %w", err)
	}
	return goals, nil
}

// CompletedHoursByCategory sums duration hours over completed tasks in a
// category (case-insensitive). Zero when nothing matches.
func (s *Store) CompletedHoursByCategory(ctx context.Context, category string) (float64, error) {
	var hours float64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(duration_hours), 0) FROM tasks
		WHERE status = ? AND category = ? COLLATE NOCASE`,
		StatusCompleted, category,
	).Scan(&hours)
	if err != nil {
		return 0, fmt.Errorf("store: completed hours: %w", err)
	}
	return hours, nil
}
