package worker

import (
	"context"
	"errors"

	"github.com/zephyra-admin/internal/config"
	"github.com/zephyra-admin/internal/logger"
	"github.com/zephyra-admin/internal/queue"
	"github.com/zephyra-admin/internal/service"

	"github.com/robfig/cron/v3"
)

// CronService 未启用队列时的进程内定时清理
type CronService struct {
	name  string
	cron  *cron.Cron
	trash *service.TrashService
}

// NewCronService 按回收站配置注册清理任务
func NewCronService(trashCfg config.TrashConfig, trash *service.TrashService) (*CronService, error) {
	if trash == nil {
		return nil, errors.New("trash service is nil")
	}
	loc, err := queue.LoadLocation(trashCfg.Timezone)
	if err != nil {
		return nil, err
	}
	s := &CronService{
		name:  "trash-cron",
		cron:  cron.New(cron.WithLocation(loc)),
		trash: trash,
	}
	if _, err := s.cron.AddFunc(queue.CleanupSpec(trashCfg), s.runOnce); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *CronService) runOnce() {
	_ = RunTrashCleanup(context.Background(), s.trash, "schedule")
}

// Name 服务名称
func (s *CronService) Name() string {
	if s == nil || s.name == "" {
		return "trash-cron"
	}
	return s.name
}

// Start 启动定时器并阻塞到 ctx 结束
func (s *CronService) Start(ctx context.Context) error {
	if s == nil || s.cron == nil {
		return errors.New("cron not initialized")
	}
	s.cron.Start()
	logger.Infow("trash_cron_started", "entries", len(s.cron.Entries()))
	<-ctx.Done()
	return nil
}

// Stop 停止定时器并等待运行中的任务结束
func (s *CronService) Stop(ctx context.Context) error {
	if s == nil || s.cron == nil {
		return nil
	}
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}
