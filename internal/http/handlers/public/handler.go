package public

import "github.com/zephyra-admin/internal/provider"

// Handler 公开站点接口处理器入口
// 说明：该处理器仅用于官网展示、订阅与找回密码 API。
type Handler struct {
	*provider.Container
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
