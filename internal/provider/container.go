package provider

import (
	"github.com/zephyra-admin/internal/authz"
	"github.com/zephyra-admin/internal/cache"
	"github.com/zephyra-admin/internal/config"
	"github.com/zephyra-admin/internal/logger"
	"github.com/zephyra-admin/internal/models"
	"github.com/zephyra-admin/internal/queue"
	"github.com/zephyra-admin/internal/repository"
	"github.com/zephyra-admin/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminUserRepo   repository.AdminUserRepository
	ResetTokenRepo  repository.PasswordResetTokenRepository
	BlogPostRepo    repository.BlogPostRepository
	TeamMemberRepo  repository.TeamMemberRepository
	ProjectRepo     repository.ProjectRepository
	AchievementRepo repository.ProjectAchievementRepository
	OfferingRepo    repository.OfferingRepository
	ClientRepo      repository.ClientRepository
	AllianceRepo    repository.AllianceRepository
	NewsletterRepo  repository.NewsletterRepository
	TrashRepo       repository.TrashRepository
	DashboardRepo   repository.DashboardRepository

	// Services
	AuthzService      *authz.Service
	AuthService       *service.AuthService
	AdminUserService  *service.AdminUserService
	EmailService      *service.EmailService
	CaptchaService    *service.CaptchaService
	UploadService     *service.UploadService
	BlogPostService   *service.BlogPostService
	TeamMemberService *service.TeamMemberService
	ProjectService    *service.ProjectService
	OfferingService   *service.OfferingService
	ClientService     *service.ClientService
	AllianceService   *service.AllianceService
	NewsletterService *service.NewsletterService
	TrashService      *service.TrashService
	DashboardService  *service.DashboardService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	// 3. 同步已有管理员的角色绑定
	c.syncAdminRoles()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminUserRepo = repository.NewAdminUserRepository(db)
	c.ResetTokenRepo = repository.NewPasswordResetTokenRepository(db)
	c.BlogPostRepo = repository.NewBlogPostRepository(db)
	c.TeamMemberRepo = repository.NewTeamMemberRepository(db)
	c.ProjectRepo = repository.NewProjectRepository(db)
	c.AchievementRepo = repository.NewProjectAchievementRepository(db)
	c.OfferingRepo = repository.NewOfferingRepository(db)
	c.ClientRepo = repository.NewClientRepository(db)
	c.AllianceRepo = repository.NewAllianceRepository(db)
	c.NewsletterRepo = repository.NewNewsletterRepository(db)
	c.TrashRepo = repository.NewTrashRepository(db)
	c.DashboardRepo = repository.NewDashboardRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.UploadService = service.NewUploadService(c.Config.Upload, "")
	c.AuthService = service.NewAuthService(c.Config, c.AdminUserRepo, c.ResetTokenRepo, c.QueueClient, c.EmailService)
	c.AdminUserService = service.NewAdminUserService(c.AdminUserRepo, c.AuthService, c.AuthzService)
	c.BlogPostService = service.NewBlogPostService(c.BlogPostRepo, c.TeamMemberRepo)
	c.TeamMemberService = service.NewTeamMemberService(c.TeamMemberRepo, c.BlogPostRepo)
	c.ProjectService = service.NewProjectService(c.ProjectRepo, c.AchievementRepo)
	c.OfferingService = service.NewOfferingService(c.OfferingRepo)
	c.ClientService = service.NewClientService(c.ClientRepo)
	c.AllianceService = service.NewAllianceService(c.AllianceRepo)
	c.NewsletterService = service.NewNewsletterService(c.NewsletterRepo)
	c.TrashService = service.NewTrashService(c.TrashRepo, c.AdminUserRepo, c.AuthzService, c.Config.Trash.RetentionDays)
	c.DashboardService = service.NewDashboardService(c.DashboardRepo, c.TrashService)
}

func (c *Container) syncAdminRoles() {
	admins, err := c.AdminUserRepo.List()
	if err != nil {
		logger.Warnw("provider_list_admins_failed", "error", err)
		return
	}
	for _, admin := range admins {
		if err := c.AuthzService.SyncAdminRole(admin.ID, admin.Role); err != nil {
			logger.Warnw("provider_sync_admin_role_failed", "admin_id", admin.ID, "error", err)
		}
	}
}
