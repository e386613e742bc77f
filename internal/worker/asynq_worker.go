package worker

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/zephyra-admin/internal/logger"
	"github.com/zephyra-admin/internal/provider"
	"github.com/zephyra-admin/internal/queue"
	"github.com/zephyra-admin/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskTrashCleanup, c.handleTrashCleanup)
	mux.HandleFunc(queue.TaskPasswordResetEmail, c.handlePasswordResetEmail)
}

func (c *Consumer) handleTrashCleanup(ctx context.Context, task *asynq.Task) error {
	if c == nil || c.Container == nil || c.TrashService == nil || task == nil {
		logger.Debugw("worker_trash_cleanup_skip_nil", "task_nil", task == nil)
		return nil
	}
	var payload queue.TrashCleanupPayload
	if len(task.Payload()) > 0 {
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			logger.Warnw("worker_trash_cleanup_unmarshal_failed", "error", err)
			return err
		}
	}
	return RunTrashCleanup(ctx, c.TrashService, payload.Trigger)
}

// RunTrashCleanup 执行一次过期清理，部分失败时返回错误交由调用方重试
func RunTrashCleanup(ctx context.Context, trash *service.TrashService, trigger string) error {
	if trash == nil {
		return nil
	}
	result, err := trash.CleanupExpired(ctx, time.Now())
	logger.Infow("trash_cleanup_done",
		"trigger", trigger,
		"total", result.Total,
		"per_kind", result.PerKind,
		"cutoff", result.Cutoff,
	)
	if err != nil {
		logger.Warnw("trash_cleanup_partial_failure", "trigger", trigger, "error", err)
		return err
	}
	return nil
}

func (c *Consumer) handlePasswordResetEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || c.Container == nil || c.EmailService == nil || task == nil {
		logger.Debugw("worker_password_reset_email_skip_nil", "task_nil", task == nil)
		return nil
	}
	var payload queue.PasswordResetEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_password_reset_email_unmarshal_failed", "error", err)
		return err
	}
	email := strings.TrimSpace(payload.Email)
	if email == "" || strings.TrimSpace(payload.ResetURL) == "" {
		logger.Debugw("worker_password_reset_email_skip_invalid_payload", "admin_user_id", payload.AdminUserID)
		return nil
	}
	if err := c.EmailService.SendPasswordReset(service.PasswordResetEmail{
		To:       email,
		Name:     payload.Name,
		ResetURL: payload.ResetURL,
		Locale:   payload.Locale,
	}); err != nil {
		logger.Warnw("worker_password_reset_email_send_failed", "admin_user_id", payload.AdminUserID, "error", err)
		return err
	}
	return nil
}
