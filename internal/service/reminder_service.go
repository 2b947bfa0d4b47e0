package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"mydo/internal/model"
	"mydo/internal/notify"
	"mydo/internal/repository"
)

const (
	titleOverdue = "Task Overdue"
	titleDueSoon = "Task Due Soon"

	defaultDueSoonWindow = 24 * time.Hour
)

// RunReport summarizes one reminder pass.
type RunReport struct {
	Scanned  int // tasks returned by the due/overdue query
	Notified int // notification rows created this run
	Skipped  int // tasks already notified for their bucket
	Failed   int // tasks whose processing errored
	Dispatch []notify.Result
}

// ReminderService scans due and overdue tasks and creates at most one
// in-app notification per task and bucket, fanning each new notification
// out to the user's side channels.
type ReminderService struct {
	taskRepo         *repository.TaskRepository
	userRepo         *repository.UserRepository
	notificationRepo *repository.NotificationRepository
	dispatcher       *notify.Dispatcher
	dueSoonWindow    time.Duration
}

func NewReminderService(
	taskRepo *repository.TaskRepository,
	userRepo *repository.UserRepository,
	notificationRepo *repository.NotificationRepository,
	dispatcher *notify.Dispatcher,
	dueSoonWindow time.Duration,
) *ReminderService {
	if dueSoonWindow <= 0 {
		dueSoonWindow = defaultDueSoonWindow
	}
	return &ReminderService{
		taskRepo:         taskRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		dispatcher:       dispatcher,
		dueSoonWindow:    dueSoonWindow,
	}
}

// Run performs a single pass over all tasks due before now+window.
// Creating the in-app row is the only required side effect; email and
// push failures are logged and reported but never abort the run. Only a
// failed task fetch makes Run return an error.
func (s *ReminderService) Run(ctx context.Context, now time.Time) (RunReport, error) {
	var report RunReport

	tasks, err := s.taskRepo.ListDueSoonOrOverdue(ctx, now.Add(s.dueSoonWindow))
	if err != nil {
		return report, fmt.Errorf("list due tasks: %w", err)
	}
	report.Scanned = len(tasks)

	for _, task := range tasks {
		if err := s.processTask(ctx, task, now, &report); err != nil {
			report.Failed++
			log.Printf("reminder: task %s (%q): %v", task.ID, task.Title, err)
		}
	}
	return report, nil
}

func (s *ReminderService) processTask(ctx context.Context, task model.Task, now time.Time, report *RunReport) error {
	b := classify(task, now)

	notification := model.Notification{
		Type:    model.NotificationInApp,
		Title:   b.title,
		Message: b.inApp,
		UserID:  task.UserID,
		TaskID:  &task.ID,
	}
	err := s.notificationRepo.Create(ctx, &notification)
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		// Already notified for this bucket, possibly by a concurrent run.
		report.Skipped++
		return nil
	case err != nil:
		return err
	}
	report.Notified++

	user, err := s.userRepo.FindByID(ctx, task.UserID)
	if err != nil {
		return fmt.Errorf("load user %s: %w", task.UserID, err)
	}

	results := s.dispatcher.Dispatch(ctx, *user, notify.Message{
		Subject: b.subject,
		Body:    b.body,
		Push:    b.inApp,
	})
	for _, res := range results {
		if !res.OK() {
			log.Printf("reminder: %s to %s: %v", res.Channel, res.Target, res.Err)
		}
	}
	report.Dispatch = append(report.Dispatch, results...)
	return nil
}

// bucket holds the per-channel text for one reminder classification.
type bucket struct {
	title   string // in-app title, also the de-duplication key component
	inApp   string // in-app message and push payload
	subject string
	body    string
}

func classify(task model.Task, now time.Time) bucket {
	due := task.DueDate.Format("Jan 2, 2006 15:04")
	if task.DueDate.Before(now) {
		return bucket{
			title:   titleOverdue,
			inApp:   fmt.Sprintf("Task %q is overdue!", task.Title),
			subject: "Task Overdue: " + task.Title,
			body:    fmt.Sprintf("Your task %q was due on %s and is now overdue. Please take action.", task.Title, due),
		}
	}
	return bucket{
		title:   titleDueSoon,
		inApp:   fmt.Sprintf("Task %q is due on %s.", task.Title, due),
		subject: "Task Due Soon: " + task.Title,
		body:    fmt.Sprintf("Your task %q is due on %s. Please be prepared.", task.Title, due),
	}
}
