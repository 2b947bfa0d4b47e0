package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// PushSubscription is a browser push endpoint registered by a user.
// Keys holds the subscription's key material as JSON text; older rows
// store it doubly encoded (a JSON string containing JSON), so reads go
// through DecodeKeys.
type PushSubscription struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    string `gorm:"index;size:36"`
	Endpoint  string `gorm:"uniqueIndex"`
	Keys      string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubscriptionKeys is the decoded key material of a push subscription.
type SubscriptionKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// DecodeKeys parses the stored key material, accepting both a plain
// JSON object and a JSON-encoded string wrapping one.
func (s *PushSubscription) DecodeKeys() (SubscriptionKeys, error) {
	raw := []byte(s.Keys)
	var quoted string
	if err := json.Unmarshal(raw, &quoted); err == nil {
		raw = []byte(quoted)
	}
	var keys SubscriptionKeys
	if err := json.Unmarshal(raw, &keys); err != nil {
		return SubscriptionKeys{}, fmt.Errorf("decode subscription keys: %w", err)
	}
	return keys, nil
}
