package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config keeps runtime settings for the reminder notifier.
type Config struct {
	DatabaseURL string

	VAPIDPublicKey  string
	VAPIDPrivateKey string
	VAPIDSubject    string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	DueSoonWindow time.Duration
	RunInterval   time.Duration // > 0 enables the in-process interval mode
	RunAt         string        // HH:MM, enables the in-process daily mode
}

// Load reads configuration from environment variables with sane
// defaults. Missing VAPID keys are a startup error: the notifier must
// never run half-configured and silently drop push delivery.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		VAPIDPublicKey:  strings.TrimSpace(os.Getenv("VAPID_PUBLIC_KEY")),
		VAPIDPrivateKey: strings.TrimSpace(os.Getenv("VAPID_PRIVATE_KEY")),
		VAPIDSubject:    strings.TrimSpace(os.Getenv("VAPID_SUBJECT")),
		SMTPHost:        strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPPort:        parsePort(strings.TrimSpace(os.Getenv("SMTP_PORT"))),
		SMTPUser:        strings.TrimSpace(os.Getenv("SMTP_USER")),
		SMTPPass:        os.Getenv("SMTP_PASS"),
		SMTPFrom:        strings.TrimSpace(os.Getenv("SMTP_FROM")),
		DueSoonWindow:   parseHours(strings.TrimSpace(os.Getenv("DUE_SOON_HOURS"))),
		RunInterval:     parseHours(strings.TrimSpace(os.Getenv("RUN_INTERVAL_HOURS"))),
		RunAt:           strings.TrimSpace(os.Getenv("RUN_AT")),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "mydo.db"
	}
	if cfg.VAPIDSubject == "" {
		cfg.VAPIDSubject = "mailto:notifications@mydo.app"
	}
	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = "MyDo <no-reply@mydo.app>"
	}
	if cfg.DueSoonWindow == 0 {
		cfg.DueSoonWindow = 24 * time.Hour
	}

	if cfg.VAPIDPublicKey == "" || cfg.VAPIDPrivateKey == "" {
		return cfg, fmt.Errorf("VAPID_PUBLIC_KEY and VAPID_PRIVATE_KEY are required")
	}

	return cfg, nil
}

func parseHours(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}

func parsePort(raw string) int {
	if raw == "" {
		return 587
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port <= 0 {
		return 587
	}
	return port
}
