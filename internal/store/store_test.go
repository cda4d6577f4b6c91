package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

// newTestStore opens a store against a temp directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(Config{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func addTask(t *testing.T, s *Store, title string, points int) Task {
	t.Helper()
	task, err := s.AddTask(context.Background(), AddTaskParams{
		Title:         title,
		Category:      "Study",
		Priority:      "Medium",
		DurationHours: 1,
		Points:        points,
	})
	if err != nil {
		t.Fatalf("AddTask(%q) failed: %v", title, err)
	}
	return task
}

// --- AddTask / ListTasks ---

func TestAddTask_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.AddTask(ctx, AddTaskParams{
		Title:         "Read chapter 4",
		Category:      "Study",
		Priority:      "High",
		DurationHours: 1.5,
		DueDate:       "2026-09-01",
		Points:        20,
	})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("first task ID = %d, want 1", created.ID)
	}

	tasks, err := s.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("len(tasks) = %d, want 1", len(tasks))
	}

	got := tasks[0]
	if got.Title != "Read chapter 4" || got.Priority != "High" || got.DueDate != "2026-09-01" {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if got.Status != StatusPending {
		t.Errorf("new task status = %s, want pending", got.Status)
	}
	if got.Points != 20 {
		t.Errorf("Points = %d, want the precomputed 20", got.Points)
	}
}

func TestAddTask_IDsMonotonic(t *testing.T) {
	s := newTestStore(t)

	for i := 1; i <= 3; i++ {
		task := addTask(t, s, "t", 10)
		if task.ID != int64(i) {
			t.Errorf("task %d got ID %d", i, task.ID)
		}
	}
}

func TestListTasks_CreationOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	addTask(t, s, "first", 10)
	addTask(t, s, "second", 10)
	addTask(t, s, "third", 10)

	tasks, err := s.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	titles := []string{"first", "second", "third"}
	for i, want := range titles {
		if tasks[i].Title != want {
			t.Errorf("tasks[%d].Title = %q, want %q", i, tasks[i].Title, want)
		}
	}
}

func TestListPendingTasks_FiltersCompleted(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := addTask(t, s, "done", 10)
	addTask(t, s, "open", 10)

	if _, err := s.CompleteTask(ctx, a.ID); err != nil {
		t.Fatalf("CompleteTask failed: %v", err)
	}

	pending, err := s.ListPendingTasks(ctx)
	if err != nil {
		t.Fatalf("ListPendingTasks failed: %v", err)
	}
	if len(pending) != 1 || pending[0].Title != "open" {
		t.Errorf("pending = %+v, want only 'open'", pending)
	}
}

// --- CompleteTask ---

func TestCompleteTask(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	task := addTask(t, s, "t", 15)

	done, err := s.CompleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("CompleteTask failed: %v", err)
	}
	if done.Status != StatusCompleted {
		t.Errorf("status = %s, want completed", done.Status)
	}
	if done.Points != 15 {
		t.Errorf("Points = %d, want 15 (never recomputed)", done.Points)
	}
}

func TestCompleteTask_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CompleteTask(context.Background(), 999)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestCompleteTask_Idempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	task := addTask(t, s, "t", 15)
	if _, err := s.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("first completion failed: %v", err)
	}

	_, err := s.CompleteTask(ctx, task.ID)
	if !errors.Is(err, ErrTaskAlreadyCompleted) {
		t.Errorf("second completion err = %v, want ErrTaskAlreadyCompleted", err)
	}

	// Totals are unchanged between the two calls.
	tasks, err := s.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	total := 0
	for _, task := range tasks {
		if task.Status == StatusCompleted {
			total += task.Points
		}
	}
	if total != 15 {
		t.Errorf("total points = %d, want 15", total)
	}
}

// --- Water logs ---

func TestLogWater_Accumulates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.LogWater(ctx, "2026-08-26", 1.0); err != nil {
		t.Fatalf("LogWater failed: %v", err)
	}
	total, err := s.LogWater(ctx, "2026-08-26", 1.5)
	if err != nil {
		t.Fatalf("LogWater failed: %v", err)
	}
	if total != 2.5 {
		t.Errorf("total = %v, want 2.5 (additive within a day)", total)
	}

	logs, err := s.WaterLogs(ctx)
	if err != nil {
		t.Fatalf("WaterLogs failed: %v", err)
	}
	if logs["2026-08-26"] != 2.5 {
		t.Errorf("logs = %v, want 2.5 on 2026-08-26", logs)
	}
}

func TestLogWater_DaysAreIndependent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, _ = s.LogWater(ctx, "2026-08-25", 2)
	_, _ = s.LogWater(ctx, "2026-08-26", 1)

	logs, err := s.WaterLogs(ctx)
	if err != nil {
		t.Fatalf("WaterLogs failed: %v", err)
	}
	if logs["2026-08-25"] != 2 || logs["2026-08-26"] != 1 {
		t.Errorf("logs = %v", logs)
	}
}

// --- Mood / sleep logs ---

func TestLogMoodAndSleep_AppendOnly(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.LogMood(ctx, "2026-08-26", 7); err != nil {
		t.Fatalf("LogMood failed: %v", err)
	}
	if _, err := s.LogMood(ctx, "2026-08-26", 4); err != nil {
		t.Fatalf("LogMood failed: %v", err)
	}

	moods, err := s.MoodLogs(ctx)
	if err != nil {
		t.Fatalf("MoodLogs failed: %v", err)
	}
	// Same-day entries are not deduplicated.
	if len(moods) != 2 {
		t.Fatalf("len(moods) = %d, want 2", len(moods))
	}
	if moods[0].ID == moods[1].ID {
		t.Error("mood entries share an ID")
	}

	entry, err := s.LogSleep(ctx, "", 7.5)
	if err != nil {
		t.Fatalf("LogSleep failed: %v", err)
	}
	if entry.Day != timeNow().Format(DayLayout) {
		t.Errorf("empty day defaulted to %q, want today", entry.Day)
	}

	sleeps, err := s.SleepLogs(ctx)
	if err != nil {
		t.Fatalf("SleepLogs failed: %v", err)
	}
	if len(sleeps) != 1 || sleeps[0].Hours != 7.5 {
		t.Errorf("sleeps = %+v", sleeps)
	}
}

// --- Goals ---

func TestSetGoal_Upserts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.SetGoal(ctx, "Fitness", "Exercise", 10); err != nil {
		t.Fatalf("SetGoal failed: %v", err)
	}
	g, err := s.SetGoal(ctx, "Fitness", "Exercise", 20)
	if err != nil {
		t.Fatalf("SetGoal (update) failed: %v", err)
	}
	if g.TargetHours != 20 {
		t.Errorf("TargetHours = %v, want 20 after upsert", g.TargetHours)
	}

	goals, err := s.ListGoals(ctx)
	if err != nil {
		t.Fatalf("ListGoals failed: %v", err)
	}
	if len(goals) != 1 {
		t.Errorf("len(goals) = %d, want 1 (upsert, not duplicate)", len(goals))
	}
}

func TestCompletedHoursByCategory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	add := func(category string, hours float64) Task {
		t.Helper()
		task, err := s.AddTask(ctx, AddTaskParams{Title: "t", Category: category, Priority: "Low", DurationHours: hours})
		if err != nil {
			t.Fatalf("AddTask failed: %v", err)
		}
		return task
	}

	a := add("Exercise", 2)
	b := add("Exercise", 3)
	add("Exercise", 10) // stays pending
	c := add("Study", 4)
	for _, task := range []Task{a, b, c} {
		if _, err := s.CompleteTask(ctx, task.ID); err != nil {
			t.Fatalf("CompleteTask failed: %v", err)
		}
	}

	hours, err := s.CompletedHoursByCategory(ctx, "exercise")
	if err != nil {
		t.Fatalf("CompletedHoursByCategory failed: %v", err)
	}
	if hours != 5 {
		t.Errorf("hours = %v, want 5 (completed Exercise only, case-insensitive)", hours)
	}

	hours, err = s.CompletedHoursByCategory(ctx, "Chores")
	if err != nil {
		t.Fatalf("CompletedHoursByCategory failed: %v", err)
	}
	if hours != 0 {
		t.Errorf("hours for unused category = %v, want 0", hours)
	}
}

// --- Reset ---

func TestReset_ClearsEverythingAndRestartsIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	addTask(t, s, "a", 10)
	addTask(t, s, "b", 10)
	_, _ = s.LogWater(ctx, "2026-08-26", 2)
	_, _ = s.LogMood(ctx, "2026-08-26", 7)
	_, _ = s.LogSleep(ctx, "2026-08-26", 8)
	_, _ = s.SetGoal(ctx, "Fitness", "Exercise", 10)

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	tasks, _ := s.ListTasks(ctx)
	if len(tasks) != 0 {
		t.Errorf("tasks after reset = %d, want 0", len(tasks))
	}
	water, _ := s.WaterLogs(ctx)
	if len(water) != 0 {
		t.Errorf("water logs after reset = %d, want 0", len(water))
	}
	moods, _ := s.MoodLogs(ctx)
	sleeps, _ := s.SleepLogs(ctx)
	if len(moods) != 0 || len(sleeps) != 0 {
		t.Errorf("logs after reset = %d moods, %d sleeps, want 0/0", len(moods), len(sleeps))
	}
	goals, _ := s.ListGoals(ctx)
	if len(goals) != 0 {
		t.Errorf("goals after reset = %d, want 0", len(goals))
	}

	task := addTask(t, s, "fresh", 10)
	if task.ID != 1 {
		t.Errorf("first task after reset got ID %d, want 1", task.ID)
	}
}

// --- Timestamps ---

func TestAddTask_CreatedAtUsesInjectedClock(t *testing.T) {
	s := newTestStore(t)

	fixed := time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC)
	orig := timeNow
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = orig }()

	task := addTask(t, s, "t", 10)
	if task.CreatedAt != "2026-08-26 09:30:00" {
		t.Errorf("CreatedAt = %q", task.CreatedAt)
	}
	if task.CreatedDay() != "2026-08-26" {
		t.Errorf("CreatedDay = %q", task.CreatedDay())
	}
}
