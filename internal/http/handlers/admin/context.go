package admin

import (
	"strconv"
	"strings"

	handlershared "github.com/zephyra-admin/internal/http/handlers/shared"
	"github.com/zephyra-admin/internal/http/response"
	"github.com/zephyra-admin/internal/service"

	"github.com/gin-gonic/gin"
)

func getAdminID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, "admin_id", "error.unauthorized", "error.internal")
}

// currentActor 当前登录管理员，角色由鉴权中间件写入
func currentActor(c *gin.Context) (service.Actor, bool) {
	id, ok := getAdminID(c)
	if !ok {
		return service.Actor{}, false
	}
	role := ""
	if value, exists := c.Get("admin_role"); exists {
		role, _ = value.(string)
	}
	return service.Actor{ID: id, Role: role}, true
}

// parseIDParam 解析路径中的正整数 ID
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return 0, false
	}
	return uint(id), true
}

// ReorderRequest 排序请求，ids 下标即新位置
type ReorderRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}
