package model

import "time"

// NotificationType names the delivery surface a notification row records.
// Only in-app rows are persisted; email and push are fire-and-forget.
type NotificationType string

const NotificationInApp NotificationType = "IN_APP"

// Notification is an in-app message shown to a user, optionally tied to
// a task. The composite unique index is the reminder de-duplication key:
// at most one row may exist per (task, user, type, title), so a losing
// concurrent insert fails with a duplicate-key error instead of
// double-notifying.
type Notification struct {
	ID        string           `gorm:"primaryKey;size:36"`
	Type      NotificationType `gorm:"size:16;uniqueIndex:idx_notification_dedup"`
	Title     string           `gorm:"uniqueIndex:idx_notification_dedup"`
	Message   string
	UserID    string  `gorm:"index;size:36;uniqueIndex:idx_notification_dedup"`
	TaskID    *string `gorm:"index;size:36;uniqueIndex:idx_notification_dedup"`
	IsRead    bool    `gorm:"default:false"`
	CreatedAt time.Time
}
