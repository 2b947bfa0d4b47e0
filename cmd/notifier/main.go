package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"mydo/internal/config"
	"mydo/internal/notify"
	"mydo/internal/repository"
	"mydo/internal/service"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	subRepo := repository.NewPushSubscriptionRepository(db)

	var mail notify.MailSender
	if cfg.SMTPHost != "" {
		mail = notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	} else {
		log.Println("SMTP_HOST not set, email channel disabled.")
	}
	push := notify.NewWebPushSender(cfg.VAPIDSubject, cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey)
	dispatcher := notify.NewDispatcher(mail, push, subRepo)

	reminderSvc := service.NewReminderService(taskRepo, userRepo, notificationRepo, dispatcher, cfg.DueSoonWindow)

	runOnce := func(ctx context.Context) error {
		report, err := reminderSvc.Run(ctx, time.Now())
		if err != nil {
			return err
		}
		log.Printf("reminder run: scanned=%d notified=%d skipped=%d failed=%d dispatched=%d",
			report.Scanned, report.Notified, report.Skipped, report.Failed, len(report.Dispatch))
		return nil
	}

	// Default mode is a single pass for an external scheduler; setting
	// RUN_INTERVAL_HOURS or RUN_AT keeps the process alive instead.
	if cfg.RunInterval <= 0 && cfg.RunAt == "" {
		if err := runOnce(ctx); err != nil {
			log.Fatalf("reminder run: %v", err)
		}
		log.Println("Task notifications processed.")
		return
	}

	scheduler := service.NewSchedulerService(time.Local)
	job := func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := runOnce(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("reminder run: %v", err)
		}
	}
	if cfg.RunInterval > 0 {
		if _, err := scheduler.ScheduleInterval(cfg.RunInterval, job); err != nil {
			log.Fatalf("schedule interval: %v", err)
		}
	}
	if cfg.RunAt != "" {
		if _, err := scheduler.ScheduleDaily(cfg.RunAt, job); err != nil {
			log.Fatalf("schedule daily: %v", err)
		}
	}
	scheduler.Start()
	defer scheduler.Stop()

	log.Println("Reminder notifier started.")
	<-ctx.Done()
	log.Println("Shutdown complete.")
}
