package constants

// 管理员角色常量
const (
	AdminRoleSuperAdmin = "superadmin"
	AdminRoleAdmin      = "admin"
)

// 文章状态常量
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

// 上传场景常量
const (
	UploadSceneBlog     = "blog"
	UploadSceneTeam     = "team"
	UploadSceneProject  = "project"
	UploadSceneClient   = "client"
	UploadSceneAlliance = "alliance"
	UploadSceneAvatar   = "avatar"
	UploadSceneEditor   = "editor"
)

// 队列名称
const (
	QueueDefault     = "default"
	QueueMaintenance = "maintenance"
)

// 统计缓存键
const CacheKeyDashboardOverview = "dashboard:overview"
