package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Priority ranks a task's importance.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Status tracks a task through its lifecycle.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// Frequency names a recurrence cadence. Custom cadences carry no
// computable next occurrence.
type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyCustom  Frequency = "CUSTOM"
)

// Task represents a single item in the planner.
type Task struct {
	ID          string `gorm:"primaryKey;size:36"`
	UserID      string `gorm:"index;size:36"`
	Title       string
	Description string
	Priority    Priority  `gorm:"size:8;default:MEDIUM"`
	Status      Status    `gorm:"size:16;index;default:PENDING"`
	DueDate     time.Time `gorm:"index"`
	DueTime     string    // optional HH:MM
	IsRecurring bool      `gorm:"default:false"`
	Frequency   Frequency `gorm:"size:8"`
	Interval    int
	Tags        TagList `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TagList stores a task's tags as a JSON array in a single text column.
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if len(t) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}
	return string(b), nil
}

func (t *TagList) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("scan tags: unsupported type %T", src)
	}
	if len(raw) == 0 {
		*t = nil
		return nil
	}
	if err := json.Unmarshal(raw, t); err != nil {
		return fmt.Errorf("decode tags: %w", err)
	}
	return nil
}
