package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// MoodEntry is one append-only mood measurement.
type MoodEntry struct {
	ID        string  `json:"id"`
	Day       string  `json:"day"`
	Score     float64 `json:"score"`
	CreatedAt string  `json:"created_at"`
}

// SleepEntry is one append-only sleep measurement.
type SleepEntry struct {
	ID        string  `json:"id"`
	Day       string  `json:"day"`
	Hours     float64 `json:"hours"`
	CreatedAt string  `json:"created_at"`
}

// LogWater adds liters to the given day's cumulative total and returns
// the new total. Daily totals only ever grow within a day.
func (s *Store) LogWater(ctx context.Context, day string, liters float64) (float64, error) {
	if day == "" {
		day = timeNow().Format(DayLayout)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO water_logs (day, liters) VALUES (?, ?)
		ON CONFLICT(day) DO UPDATE SET liters = liters + excluded.liters`,
		day, liters,
	)
	if err != nil {
		return 0, fmt.Errorf("store: log water: %w", err)
	}

	var total float64
	if err := s.db.QueryRowContext(ctx,
		`SELECT liters FROM water_logs WHERE day = ?`, day,
	).Scan(&total); err != nil {
		return 0, fmt.Errorf("store: log water: read total: %w", err)
	}
	return total, nil
}

// WaterLogs returns the per-day cumulative liters for every logged day.
func (s *Store) WaterLogs(ctx context.Context) (map[string]float64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT day, liters FROM water_logs`)
	if err != nil {
		return nil, fmt.Errorf("store: water logs: %w", err)
	}
	defer rows.Close()

	logs := make(map[string]float64)
	for rows.Next() {
		var day string
		var liters float64
		if err := rows.Scan(&day, &liters); err != nil {
			return nil, fmt.Errorf("store: scan water log: %w", err)
		}
		logs[day] = liters
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: water logs: %w", err)
	}
	return logs, nil
}

// LogMood appends a mood entry. Entries are never deduplicated: several
// check-ins on the same day all count toward the average.
func (s *Store) LogMood(ctx context.Context, day string, score float64) (MoodEntry, error) {
	if day == "" {
		day = timeNow().Format(DayLayout)
	}
	entry := MoodEntry{
		ID:        uuid.NewString(),
		Day:       day,
		Score:     score,
		CreatedAt: timeNow().Format(TimestampLayout),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO mood_logs (id, day, score, created_at) VALUES (?, ?, ?, ?)`,
		entry.ID, entry.Day, entry.Score, entry.CreatedAt,
	)
	if err != nil {
		return MoodEntry{}, fmt.Errorf("store: log mood: %w", err)
	}
	return entry, nil
}

// LogSleep appends a sleep entry.
func (s *Store) LogSleep(ctx context.Context, day string, hours float64) (SleepEntry, error) {
	if day == "" {
		day = timeNow().Format(DayLayout)
	}
	entry := SleepEntry{
		ID:        uuid.NewString(),
		Day:       day,
		Hours:     hours,
		CreatedAt: timeNow().Format(TimestampLayout),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sleep_logs (id, day, hours, created_at) VALUES (?, ?, ?, ?)`,
		entry.ID, entry.Day, entry.Hours, entry.CreatedAt,
	)
	if err != nil {
		return SleepEntry{}, fmt.Errorf("store: log sleep: %w", err)
	}
	return entry, nil
}

// MoodLogs returns all mood entries in insertion order.
func (s *Store) MoodLogs(ctx context.Context) ([]MoodEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, day, score, created_at FROM mood_logs ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("store: mood logs: %w", err)
	}
	defer rows.Close()

	var entries []MoodEntry
	for rows.Next() {
		var e MoodEntry
		if err := rows.Scan(&e.ID, &e.Day, &e.Score, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("store: scan mood log: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: mood logs: %w", err)
	}
	return entries, nil
}

// SleepLogs returns all sleep entries in insertion order.
func (s *Store) SleepLogs(ctx context.Context) ([]SleepEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, day, hours, created_at FROM sleep_logs ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("store: sleep logs: %w", err)
	}
	defer rows.Close()

	var entries []SleepEntry
	for rows.Next() {
		var e SleepEntry
		if err := rows.Scan(&e.ID, &e.Day, &e.Hours, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("store: scan sleep log: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: sleep logs: %w", err)
	}
	return entries, nil
}
