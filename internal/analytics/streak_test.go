package analytics

import (
	"testing"
	"time"

	"pulse/internal/store"
)

// today is a fixed reference day for streak tests.
var today = time.Date(2026, 8, 26, 15, 0, 0, 0, time.UTC)

// completedOn builds a completed task created on the given day offset
// from today (0 = today, 1 = yesterday, ...).
func completedOn(daysAgo int) store.Task {
	return store.Task{
		Status:    store.StatusCompleted,
		CreatedAt: today.AddDate(0, 0, -daysAgo).Format(store.TimestampLayout),
	}
}

func pendingOn(daysAgo int) store.Task {
	t := completedOn(daysAgo)
	t.Status = store.StatusPending
	return t
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name  string
		tasks []store.Task
		want  int
	}{
		{"empty task set", nil, 0},
		{"all pending", []store.Task{pendingOn(0), pendingOn(1)}, 0},
		{"single completion today", []store.Task{completedOn(0)}, 1},
		{"three consecutive days", []store.Task{completedOn(0), completedOn(1), completedOn(2)}, 3},
		{"gap at yesterday breaks streak", []store.Task{completedOn(0), completedOn(2)}, 1},
		{"no completion today means zero", []store.Task{completedOn(1), completedOn(2)}, 0},
		{"multiple completions same day count once", []store.Task{completedOn(0), completedOn(0), completedOn(1)}, 2},
		{"gap mid-run ignores older days", []store.Task{completedOn(0), completedOn(1), completedOn(3), completedOn(4)}, 2},
		{"pending today does not extend", []store.Task{pendingOn(0), completedOn(1)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Streak(tt.tasks, today)
			if got != tt.want {
				t.Errorf("Streak = %d, want %d", got, tt.want)
			}
		})
	}
}

// The streak is keyed off creation date, not completion date: a task
// created two days ago and completed now contributes to the day it was
// created on.
func TestStreak_KeyedOffCreationDate(t *testing.T) {
	tasks := []store.Task{completedOn(2)}
	if got := Streak(tasks, today); got != 0 {
		t.Errorf("Streak = %d, want 0 (completion realized on creation day, not today)", got)
	}
}
