package model

import "time"

// User owns tasks, notifications and push subscriptions. Email may be
// empty, in which case the email channel is skipped for this user.
type User struct {
	ID           string `gorm:"primaryKey;size:36"`
	Email        string `gorm:"uniqueIndex"`
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
