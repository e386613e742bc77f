package queue

import (
	"fmt"
	"strings"
	"time"

	"github.com/zephyra-admin/internal/config"
	"github.com/zephyra-admin/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// DefaultQueue 默认队列名称
	DefaultQueue = constants.QueueDefault
	// MaintenanceQueue 维护任务队列
	MaintenanceQueue = constants.QueueMaintenance
)

// Client 队列客户端封装
type Client struct {
	client  *asynq.Client
	enabled bool
}

// NewClient 创建队列客户端
func NewClient(cfg *config.QueueConfig) (*Client, error) {
	if cfg == nil || !cfg.Enabled {
		return &Client{enabled: false}, nil
	}
	return &Client{
		client:  asynq.NewClient(buildRedisOpt(cfg)),
		enabled: true,
	}, nil
}

// Enabled 判断是否启用
func (c *Client) Enabled() bool {
	return c != nil && c.enabled && c.client != nil
}

// Close 关闭客户端
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// EnqueuePasswordResetEmail 推送找回密码邮件任务
func (c *Client) EnqueuePasswordResetEmail(payload PasswordResetEmailPayload) error {
	if !c.Enabled() {
		return nil
	}
	task, err := NewPasswordResetEmailTask(payload)
	if err != nil {
		return err
	}
	_, err = c.client.Enqueue(task, asynq.Queue(DefaultQueue), asynq.MaxRetry(3), asynq.Timeout(30*time.Second))
	return err
}

// EnqueueTrashCleanup 立即推送一次回收站清理
func (c *Client) EnqueueTrashCleanup(trigger string) error {
	if !c.Enabled() {
		return nil
	}
	task, err := NewTrashCleanupTask(TrashCleanupPayload{Trigger: trigger})
	if err != nil {
		return err
	}
	_, err = c.client.Enqueue(task, trashCleanupOptions()...)
	return err
}

// trashCleanupOptions 同一时刻只保留一个清理任务
func trashCleanupOptions() []asynq.Option {
	return []asynq.Option{
		asynq.Queue(MaintenanceQueue),
		asynq.MaxRetry(5),
		asynq.Timeout(10 * time.Minute),
		asynq.Unique(time.Hour),
	}
}

// BuildServerConfig 生成队列服务配置
func BuildServerConfig(cfg *config.QueueConfig) (asynq.RedisClientOpt, asynq.Config) {
	opt := buildRedisOpt(cfg)
	concurrency := 5
	if cfg != nil && cfg.Concurrency > 0 {
		concurrency = cfg.Concurrency
	}
	queues := map[string]int{DefaultQueue: 10, MaintenanceQueue: 2}
	if cfg != nil && len(cfg.Queues) > 0 {
		queues = cfg.Queues
	}
	return opt, asynq.Config{
		Concurrency: concurrency,
		Queues:      queues,
	}
}

// NewScheduler 创建周期任务调度器，注册每日回收站清理
func NewScheduler(cfg *config.QueueConfig, trash config.TrashConfig) (*asynq.Scheduler, error) {
	loc, err := LoadLocation(trash.Timezone)
	if err != nil {
		return nil, err
	}
	scheduler := asynq.NewScheduler(buildRedisOpt(cfg), &asynq.SchedulerOpts{Location: loc})
	task, err := NewTrashCleanupTask(TrashCleanupPayload{Trigger: "schedule"})
	if err != nil {
		return nil, err
	}
	if _, err := scheduler.Register(CleanupSpec(trash), task, trashCleanupOptions()...); err != nil {
		return nil, fmt.Errorf("register trash cleanup: %w", err)
	}
	return scheduler, nil
}

// CleanupSpec 清理任务的 cron 表达式，默认每天 03:00
func CleanupSpec(trash config.TrashConfig) string {
	spec := strings.TrimSpace(trash.CleanupCron)
	if spec == "" {
		return "0 3 * * *"
	}
	return spec
}

// LoadLocation 解析清理任务时区，空值按 UTC
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "UTC") {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}

func buildRedisOpt(cfg *config.QueueConfig) asynq.RedisClientOpt {
	host := "127.0.0.1"
	port := 6379
	password := ""
	db := 0
	if cfg != nil {
		if strings.TrimSpace(cfg.Host) != "" {
			host = strings.TrimSpace(cfg.Host)
		}
		if cfg.Port > 0 {
			port = cfg.Port
		}
		password = cfg.Password
		db = cfg.DB
	}
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	}
}
