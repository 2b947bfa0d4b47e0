package service

import (
	"context"
	"testing"
	"time"

	"mydo/internal/model"
)

func newTaskFixture(t *testing.T) (*TaskService, *reminderFixture) {
	t.Helper()
	f := newReminderFixture(t)
	return NewTaskService(f.tasks, f.notifs), f
}

func TestTaskServiceCreateValidates(t *testing.T) {
	svc, f := newTaskFixture(t)
	ctx := context.Background()
	user := f.createUser(t, "frank@example.com")
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	if _, err := svc.Create(ctx, user, TaskInput{Title: "  ", DueDate: now}, now); err == nil {
		t.Fatal("expected error for blank title")
	}
	if _, err := svc.Create(ctx, user, TaskInput{Title: "No due date"}, now); err == nil {
		t.Fatal("expected error for missing due date")
	}
	if _, err := svc.Create(ctx, user, TaskInput{
		Title:       "Bad recurrence",
		DueDate:     now.Add(48 * time.Hour),
		IsRecurring: true,
		Frequency:   model.FrequencyDaily,
		Interval:    0,
	}, now); err == nil {
		t.Fatal("expected error for recurring task without positive interval")
	}
}

func TestTaskServiceCreateRecordsNotices(t *testing.T) {
	svc, f := newTaskFixture(t)
	ctx := context.Background()
	user := f.createUser(t, "grace@example.com")
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	task, err := svc.Create(ctx, user, TaskInput{
		Title:   "  Plan trip  ",
		DueDate: now.Add(72 * time.Hour),
		Tags:    []string{"travel", "family"},
	}, now)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.Title != "Plan trip" {
		t.Fatalf("expected trimmed title, got %q", task.Title)
	}
	if task.Priority != model.PriorityMedium {
		t.Fatalf("expected default MEDIUM priority, got %q", task.Priority)
	}

	rows := f.notificationsFor(t, task.ID)
	titles := map[string]bool{}
	for _, n := range rows {
		titles[n.Title] = true
	}
	if !titles["New Task Created"] || !titles["Task Reminder"] {
		t.Fatalf("expected creation and reminder notices, got %+v", rows)
	}
}

func TestTaskServiceCreateSkipsReminderInsideWindow(t *testing.T) {
	svc, f := newTaskFixture(t)
	ctx := context.Background()
	user := f.createUser(t, "heidi@example.com")
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	task, err := svc.Create(ctx, user, TaskInput{Title: "Due tonight", DueDate: now.Add(6 * time.Hour)}, now)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, n := range f.notificationsFor(t, task.ID) {
		if n.Title == "Task Reminder" {
			t.Fatal("task inside the due-soon window must not get a pre-due reminder")
		}
	}
}

func TestTaskServiceCompleteCreatesRecurrenceSuccessor(t *testing.T) {
	svc, f := newTaskFixture(t)
	ctx := context.Background()
	user := f.createUser(t, "ivan@example.com")
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	due := time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)

	task, err := svc.Create(ctx, user, TaskInput{
		Title:       "Weekly review",
		DueDate:     due,
		IsRecurring: true,
		Frequency:   model.FrequencyWeekly,
		Interval:    1,
	}, now)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	completed, err := svc.Complete(ctx, user, task.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if completed.Status != model.StatusCompleted {
		t.Fatalf("expected COMPLETED, got %q", completed.Status)
	}

	all, err := svc.List(ctx, user)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected original plus successor, got %d tasks", len(all))
	}
	var successor *model.Task
	for i := range all {
		if all[i].ID != task.ID {
			successor = &all[i]
		}
	}
	if successor == nil {
		t.Fatal("successor not found")
	}
	if successor.Status != model.StatusPending {
		t.Fatalf("successor must be PENDING, got %q", successor.Status)
	}
	if want := due.AddDate(0, 0, 7); !successor.DueDate.Equal(want) {
		t.Fatalf("expected successor due %s, got %s", want, successor.DueDate)
	}
}

func TestTaskServiceCompleteCustomFrequencyHasNoSuccessor(t *testing.T) {
	svc, f := newTaskFixture(t)
	ctx := context.Background()
	user := f.createUser(t, "judy@example.com")
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	task, err := svc.Create(ctx, user, TaskInput{
		Title:       "Irregular chore",
		DueDate:     now.Add(48 * time.Hour),
		IsRecurring: true,
		Frequency:   model.FrequencyCustom,
		Interval:    2,
	}, now)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Complete(ctx, user, task.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	all, err := svc.List(ctx, user)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("CUSTOM task must not spawn a successor, got %d tasks", len(all))
	}
}
