package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// TaskTrashCleanup 回收站过期清理任务
	TaskTrashCleanup = "trash:cleanup"
	// TaskPasswordResetEmail 找回密码邮件任务
	TaskPasswordResetEmail = "email:password_reset"
)

// TrashCleanupPayload 回收站清理任务载荷
type TrashCleanupPayload struct {
	Trigger string `json:"trigger"` // schedule / manual
}

// PasswordResetEmailPayload 找回密码邮件载荷，令牌明文只存在于队列中
type PasswordResetEmailPayload struct {
	AdminUserID uint   `json:"admin_user_id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	ResetURL    string `json:"reset_url"`
	Locale      string `json:"locale"`
}

// NewTrashCleanupTask 创建回收站清理任务
func NewTrashCleanupTask(payload TrashCleanupPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTrashCleanup, body), nil
}

// NewPasswordResetEmailTask 创建找回密码邮件任务
func NewPasswordResetEmailTask(payload PasswordResetEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPasswordResetEmail, body), nil
}
