package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"mydo/internal/model"
	"mydo/internal/repository"
)

// TaskInput represents data required to create a task.
type TaskInput struct {
	Title       string
	Description string
	Priority    model.Priority
	DueDate     time.Time
	DueTime     string
	Tags        []string
	IsRecurring bool
	Frequency   model.Frequency
	Interval    int
}

// TaskService wraps task-related business logic.
type TaskService struct {
	taskRepo         *repository.TaskRepository
	notificationRepo *repository.NotificationRepository
}

func NewTaskService(taskRepo *repository.TaskRepository, notificationRepo *repository.NotificationRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, notificationRepo: notificationRepo}
}

// Create validates the input, stores the task and records its in-app
// creation notices. Notification failures are logged, not returned: the
// task row is the required outcome.
func (s *TaskService) Create(ctx context.Context, user *model.User, input TaskInput, now time.Time) (*model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if input.DueDate.IsZero() {
		return nil, fmt.Errorf("due date is required")
	}
	if input.IsRecurring && (input.Frequency == "" || input.Interval <= 0) {
		return nil, fmt.Errorf("recurring task requires a frequency and a positive interval")
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	task := model.Task{
		UserID:      user.ID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Priority:    priority,
		Status:      model.StatusPending,
		DueDate:     input.DueDate,
		DueTime:     input.DueTime,
		Tags:        input.Tags,
		IsRecurring: input.IsRecurring,
	}
	if input.IsRecurring {
		task.Frequency = input.Frequency
		task.Interval = input.Interval
	}

	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}

	s.recordNotice(ctx, &task, "New Task Created",
		fmt.Sprintf("Task %q has been created", task.Title))

	// Pre-due reminder, only when the due date is still more than a
	// day out; tasks already inside the window are picked up by the
	// reminder run instead.
	if task.DueDate.Add(-24 * time.Hour).After(now) {
		s.recordNotice(ctx, &task, "Task Reminder",
			fmt.Sprintf("Task %q is due tomorrow", task.Title))
	}

	return &task, nil
}

func (s *TaskService) recordNotice(ctx context.Context, task *model.Task, title, message string) {
	n := model.Notification{
		Type:    model.NotificationInApp,
		Title:   title,
		Message: message,
		UserID:  task.UserID,
		TaskID:  &task.ID,
	}
	if err := s.notificationRepo.Create(ctx, &n); err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		log.Printf("task %s: %s notice: %v", task.ID, title, err)
	}
}

func (s *TaskService) List(ctx context.Context, user *model.User) ([]model.Task, error) {
	return s.taskRepo.ListByUser(ctx, user.ID)
}

func (s *TaskService) Get(ctx context.Context, user *model.User, taskID string) (*model.Task, error) {
	return s.taskRepo.FindByID(ctx, user.ID, taskID)
}

// Complete marks a task as done. For recurring tasks it materializes the
// next occurrence as a fresh PENDING row; the completed row is otherwise
// left untouched. CUSTOM frequencies get no successor.
func (s *TaskService) Complete(ctx context.Context, user *model.User, taskID string) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, user.ID, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status == model.StatusCompleted {
		return task, nil
	}

	if err := s.taskRepo.UpdateStatus(ctx, task, model.StatusCompleted); err != nil {
		return nil, err
	}

	if task.IsRecurring {
		if next, ok := NextDueDate(task.DueDate, task.Frequency, task.Interval); ok {
			successor := *task
			successor.ID = ""
			successor.Status = model.StatusPending
			successor.DueDate = next
			successor.CreatedAt = time.Time{}
			successor.UpdatedAt = time.Time{}
			if err := s.taskRepo.Create(ctx, &successor); err != nil {
				return nil, fmt.Errorf("create recurrence successor: %w", err)
			}
		}
	}

	return task, nil
}

// Delete removes a task completely, recurring or not.
func (s *TaskService) Delete(ctx context.Context, user *model.User, taskID string) error {
	return s.taskRepo.Delete(ctx, user.ID, taskID)
}
