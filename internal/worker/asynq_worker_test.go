package worker

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/zephyra-admin/internal/config"
	"github.com/zephyra-admin/internal/models"
	"github.com/zephyra-admin/internal/provider"
	"github.com/zephyra-admin/internal/queue"
	"github.com/zephyra-admin/internal/repository"
	"github.com/zephyra-admin/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func openWorkerDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate models failed: %v", err)
	}
	return db
}

func newTrashService(db *gorm.DB) *service.TrashService {
	return service.NewTrashService(repository.NewTrashRepository(db), repository.NewAdminUserRepository(db), nil, 30)
}

func TestHandleTrashCleanupPurgesExpiredRows(t *testing.T) {
	db := openWorkerDB(t)
	old := &models.Client{Name: "Iberdrola"}
	recent := &models.Client{Name: "Acciona"}
	for _, c := range []*models.Client{old, recent} {
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("create client failed: %v", err)
		}
	}
	now := time.Now().UTC()
	if err := db.Model(&models.Client{}).Where("id = ?", old.ID).UpdateColumn("deleted_at", now.Add(-31*24*time.Hour)).Error; err != nil {
		t.Fatalf("trash old failed: %v", err)
	}
	if err := db.Model(&models.Client{}).Where("id = ?", recent.ID).UpdateColumn("deleted_at", now.Add(-29*24*time.Hour)).Error; err != nil {
		t.Fatalf("trash recent failed: %v", err)
	}

	consumer := NewConsumer(&provider.Container{TrashService: newTrashService(db)})
	task, err := queue.NewTrashCleanupTask(queue.TrashCleanupPayload{Trigger: "manual"})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleTrashCleanup(context.Background(), task); err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}

	var remaining []models.Client
	if err := db.Unscoped().Order("id").Find(&remaining).Error; err != nil {
		t.Fatalf("load clients failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != recent.ID {
		t.Fatalf("only the expired client should be purged, got %+v", remaining)
	}
}

func TestHandleTrashCleanupRejectsBadPayload(t *testing.T) {
	consumer := NewConsumer(&provider.Container{TrashService: newTrashService(openWorkerDB(t))})
	task := asynq.NewTask(queue.TaskTrashCleanup, []byte("{"))
	if err := consumer.handleTrashCleanup(context.Background(), task); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}

func TestHandlePasswordResetEmailSkipsIncompletePayload(t *testing.T) {
	consumer := NewConsumer(&provider.Container{EmailService: service.NewEmailService(&config.EmailConfig{})})
	task, err := queue.NewPasswordResetEmailTask(queue.PasswordResetEmailPayload{AdminUserID: 7, Email: "  "})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handlePasswordResetEmail(context.Background(), task); err != nil {
		t.Fatalf("incomplete payload should be skipped, got %v", err)
	}
	bad := asynq.NewTask(queue.TaskPasswordResetEmail, []byte("not-json"))
	if err := consumer.handlePasswordResetEmail(context.Background(), bad); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}

func TestHandlersSkipWithoutContainer(t *testing.T) {
	consumer := NewConsumer(nil)
	task := asynq.NewTask(queue.TaskTrashCleanup, nil)
	if err := consumer.handleTrashCleanup(context.Background(), task); err != nil {
		t.Fatalf("nil container should be skipped, got %v", err)
	}
	if err := consumer.handlePasswordResetEmail(context.Background(), task); err != nil {
		t.Fatalf("nil container should be skipped, got %v", err)
	}
}

func TestNewCronServiceUsesConfiguredSchedule(t *testing.T) {
	trash := newTrashService(openWorkerDB(t))
	svc, err := NewCronService(config.TrashConfig{}, trash)
	if err != nil {
		t.Fatalf("default schedule failed: %v", err)
	}
	entries := svc.cron.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected one cron entry, got %d", len(entries))
	}
	from := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	next := entries[0].Schedule.Next(from)
	want := time.Date(2026, 3, 11, 3, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Fatalf("next run want %v got %v", want, next)
	}

	if _, err := NewCronService(config.TrashConfig{CleanupCron: "not a spec"}, trash); err == nil {
		t.Fatalf("invalid cron spec must be rejected")
	}
	if _, err := NewCronService(config.TrashConfig{}, nil); err == nil {
		t.Fatalf("nil trash service must be rejected")
	}
}

func TestCronServiceStopsWithContext(t *testing.T) {
	svc, err := NewCronService(config.TrashConfig{}, newTrashService(openWorkerDB(t)))
	if err != nil {
		t.Fatalf("new cron failed: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Start(ctx) }()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("start returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("cron service did not stop")
	}
	if err := svc.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
}
