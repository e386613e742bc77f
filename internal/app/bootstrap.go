package app

import (
	"errors"

	"github.com/zephyra-admin/internal/config"
	"github.com/zephyra-admin/internal/logger"
	"github.com/zephyra-admin/internal/provider"
	"github.com/zephyra-admin/internal/router"
	"github.com/zephyra-admin/internal/worker"
)

// BuildRunner 构建服务运行器
func BuildRunner(cfg *config.Config, mode string) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	container := provider.NewContainer(cfg)

	var services []Service

	// 初始化 HTTP 服务
	if mode == ModeAll || mode == ModeAPI {
		engine := router.SetupRouter(cfg, container)
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		httpService := NewHTTPService(addr, engine)
		services = append(services, httpService)
	}

	// 初始化 Worker 服务，队列不可用时退回进程内定时清理
	if mode == ModeAll || mode == ModeWorker {
		svc, err := buildWorker(cfg, container)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}

	if len(services) == 0 {
		return nil, errors.New("no services initialized (check mode and config)")
	}

	return NewRunner(services...), nil
}

func buildWorker(cfg *config.Config, container *provider.Container) (Service, error) {
	if cfg.Queue.Enabled && container.QueueClient != nil {
		return worker.NewService(cfg, worker.NewConsumer(container))
	}
	logger.Warnw("worker_queue_unavailable_use_cron", "queue_enabled", cfg.Queue.Enabled)
	return worker.NewCronService(cfg.Trash, container.TrashService)
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config, opts.Mode)
	if err != nil {
		return err
	}

	addr := opts.Config.Server.Host + ":" + opts.Config.Server.Port
	opts.Logger.Infow("app_start", "addr", addr, "mode", opts.Mode)
	return RunWithOptions(runner, opts)
}
