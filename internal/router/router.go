package router

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zephyra-admin/internal/authz"
	"github.com/zephyra-admin/internal/cache"
	"github.com/zephyra-admin/internal/config"
	"github.com/zephyra-admin/internal/constants"
	adminhandlers "github.com/zephyra-admin/internal/http/handlers/admin"
	publichandlers "github.com/zephyra-admin/internal/http/handlers/public"
	"github.com/zephyra-admin/internal/logger"
	"github.com/zephyra-admin/internal/provider"

	"github.com/gin-gonic/gin"
)

const (
	subscribeWindowSeconds = 3600
	subscribeMaxRequests   = 10
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "zp"
	}
	redisClient := cache.Client()
	loginLimit := cfg.Security.LoginRateLimit
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: loginLimit.WindowSeconds,
		MaxRequests:   loginLimit.MaxAttempts,
		BlockSeconds:  loginLimit.BlockSeconds,
	}
	forgotRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:forgot_password", redisPrefix),
		WindowSeconds: loginLimit.WindowSeconds,
		MaxRequests:   loginLimit.MaxAttempts,
		BlockSeconds:  loginLimit.BlockSeconds,
	}
	subscribeRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:subscribe", redisPrefix),
		WindowSeconds: subscribeWindowSeconds,
		MaxRequests:   subscribeMaxRequests,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(logger.Z()))
	r.Use(CORSMiddleware(cfg.CORS))

	// 上传文件
	r.Static("/uploads", c.UploadService.Root())

	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/posts", publicHandler.GetPosts)
			public.GET("/posts/:slug", publicHandler.GetPostBySlug)
			public.GET("/team", publicHandler.GetTeam)
			public.GET("/projects", publicHandler.GetProjects)
			public.GET("/projects/:slug", publicHandler.GetProjectBySlug)
			public.GET("/services", publicHandler.GetServices)
			public.GET("/clients", publicHandler.GetClients)
			public.GET("/alliances", publicHandler.GetAlliances)
			public.POST("/newsletter/subscribe", RateLimitMiddleware(redisClient, subscribeRule, KeyByIP), publicHandler.SubscribeNewsletter)
			public.POST("/newsletter/unsubscribe", publicHandler.UnsubscribeNewsletter)
			public.GET("/captcha/config", publicHandler.GetCaptchaConfig)
			public.GET("/captcha/image", publicHandler.GetImageCaptcha)
		}

		// 找回密码
		auth := apiV1.Group("/auth")
		{
			auth.POST("/forgot-password", RateLimitMiddleware(redisClient, forgotRule, KeyByIPAndJSONField("email")), publicHandler.ForgotPassword)
			auth.POST("/reset-password", publicHandler.ResetPassword)
		}

		admin := apiV1.Group("/admin")
		{
			// 登录接口（无需鉴权）
			admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIPAndJSONField("email")), adminHandler.AdminLogin)

			// 需要鉴权的接口
			authorized := admin.Group("")
			authorized.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, cfg.JWT.CookieName, c.AdminUserRepo), AdminRBACMiddleware(c.AuthzService))
			{
				authorized.POST("/logout", adminHandler.AdminLogout)
				authorized.GET("/me", adminHandler.GetAdminMe)
				authorized.PUT("/me/password", adminHandler.ChangeAdminPassword)
				authorized.GET("/dashboard/stats", adminHandler.GetDashboardStats)
				authorized.POST("/upload", adminHandler.UploadFile)

				// 管理员账号
				authorized.GET("/admin-users", adminHandler.GetAdminUsers)
				authorized.POST("/admin-users", adminHandler.CreateAdminUser)
				authorized.PUT("/admin-users/:id", adminHandler.UpdateAdminUser)
				authorized.DELETE("/admin-users/:id", adminHandler.DeleteAdminUser)

				// 文章
				authorized.GET("/posts", adminHandler.GetAdminPosts)
				authorized.POST("/posts", adminHandler.CreatePost)
				authorized.PUT("/posts/:id", adminHandler.UpdatePost)
				authorized.DELETE("/posts/:id", adminHandler.DeletePost)
				authorized.POST("/posts/:id/publish", adminHandler.PublishPost)
				authorized.POST("/posts/:id/unpublish", adminHandler.UnpublishPost)

				// 团队
				authorized.GET("/team", adminHandler.GetTeamMembers)
				authorized.GET("/team/options", adminHandler.GetTeamOptions)
				authorized.GET("/team/:id/can-delete", adminHandler.CanDeleteTeamMember)
				authorized.POST("/team", adminHandler.CreateTeamMember)
				authorized.PUT("/team/reorder", adminHandler.ReorderTeamMembers)
				authorized.PUT("/team/:id", adminHandler.UpdateTeamMember)
				authorized.DELETE("/team/:id", adminHandler.DeleteTeamMember)

				// 项目与成果
				authorized.GET("/projects", adminHandler.GetAdminProjects)
				authorized.POST("/projects", adminHandler.CreateProject)
				authorized.PUT("/projects/reorder", adminHandler.ReorderProjects)
				authorized.PUT("/projects/:id", adminHandler.UpdateProject)
				authorized.DELETE("/projects/:id", adminHandler.DeleteProject)
				authorized.POST("/projects/:id/toggle-featured", adminHandler.ToggleProjectFeatured)
				authorized.POST("/projects/:id/achievements", adminHandler.AddProjectAchievement)
				authorized.PUT("/projects/:id/achievements/reorder", adminHandler.ReorderProjectAchievements)
				authorized.PUT("/achievements/:id", adminHandler.UpdateAchievement)
				authorized.DELETE("/achievements/:id", adminHandler.DeleteAchievement)

				// 服务
				authorized.GET("/services", adminHandler.GetAdminServices)
				authorized.POST("/services", adminHandler.CreateService)
				authorized.PUT("/services/reorder", adminHandler.ReorderServices)
				authorized.PUT("/services/:id", adminHandler.UpdateService)
				authorized.DELETE("/services/:id", adminHandler.DeleteService)
				authorized.POST("/services/:id/toggle-active", adminHandler.ToggleServiceActive)

				// 客户与合作伙伴
				authorized.GET("/clients", adminHandler.GetAdminClients)
				authorized.POST("/clients", adminHandler.CreateClient)
				authorized.PUT("/clients/reorder", adminHandler.ReorderClients)
				authorized.PUT("/clients/:id", adminHandler.UpdateClient)
				authorized.DELETE("/clients/:id", adminHandler.DeleteClient)
				authorized.GET("/alliances", adminHandler.GetAdminAlliances)
				authorized.POST("/alliances", adminHandler.CreateAlliance)
				authorized.PUT("/alliances/reorder", adminHandler.ReorderAlliances)
				authorized.PUT("/alliances/:id", adminHandler.UpdateAlliance)
				authorized.DELETE("/alliances/:id", adminHandler.DeleteAlliance)

				// 回收站
				authorized.GET("/trash", adminHandler.GetTrash)
				authorized.POST("/trash/cleanup", adminHandler.CleanupTrash)
				authorized.POST("/trash/:kind/:id/restore", adminHandler.RestoreTrashItem)
				authorized.DELETE("/trash/:kind/:id", adminHandler.PermanentDeleteTrashItem)

				// 邮件订阅
				authorized.GET("/newsletter", adminHandler.GetSubscribers)
				authorized.GET("/newsletter/stats", adminHandler.GetSubscriberStats)
				authorized.GET("/newsletter/export", adminHandler.ExportSubscribers)
				authorized.PATCH("/newsletter/:id", adminHandler.UpdateSubscriber)
				authorized.DELETE("/newsletter/:id", adminHandler.DeleteSubscriber)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auditAdminPolicies(r, c.AuthzService)
	return r
}

// auditAdminPolicies 启动时列出普通管理员无权访问的后台路由
func auditAdminPolicies(engine *gin.Engine, authzService *authz.Service) {
	if authzService == nil {
		return
	}
	role, err := authz.NormalizeRole(constants.AdminRoleAdmin)
	if err != nil {
		return
	}
	for _, item := range buildAdminPermissionCatalog(engine) {
		allowed, err := authzService.Enforce(role, item.Object, item.Method)
		if err != nil {
			logger.Warnw("authz_audit_failed", "permission", item.Permission, "error", err)
			return
		}
		if !allowed {
			logger.Debugw("authz_superadmin_only_route", "permission", item.Permission)
		}
	}
}

type adminPermissionCatalogItem struct {
	Module     string `json:"module"`
	Method     string `json:"method"`
	Object     string `json:"object"`
	Permission string `json:"permission"`
}

func buildAdminPermissionCatalog(engine *gin.Engine) []adminPermissionCatalogItem {
	if engine == nil {
		return []adminPermissionCatalogItem{}
	}

	routes := engine.Routes()
	seen := make(map[string]struct{}, len(routes))
	items := make([]adminPermissionCatalogItem, 0, len(routes))

	for _, item := range routes {
		method := strings.ToUpper(strings.TrimSpace(item.Method))
		if method == "" || method == "OPTIONS" || method == "HEAD" {
			continue
		}
		if !strings.HasPrefix(item.Path, "/api/v1/admin/") {
			continue
		}
		if item.Path == "/api/v1/admin/login" {
			continue
		}
		object := authz.NormalizeObject(item.Path)
		permission := method + ":" + object
		if _, exists := seen[permission]; exists {
			continue
		}
		seen[permission] = struct{}{}
		items = append(items, adminPermissionCatalogItem{
			Module:     deriveAdminPermissionModule(object),
			Method:     method,
			Object:     object,
			Permission: permission,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Module == items[j].Module {
			if items[i].Object == items[j].Object {
				return items[i].Method < items[j].Method
			}
			return items[i].Object < items[j].Object
		}
		return items[i].Module < items[j].Module
	})

	return items
}

func deriveAdminPermissionModule(object string) string {
	normalized := strings.TrimPrefix(strings.TrimSpace(object), "/")
	if normalized == "" {
		return "system"
	}
	segments := strings.Split(normalized, "/")
	if len(segments) <= 1 {
		return segments[0]
	}
	if segments[0] != "admin" {
		return segments[0]
	}
	return segments[1]
}
