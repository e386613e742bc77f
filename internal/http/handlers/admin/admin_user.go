package admin

import (
	"github.com/zephyra-admin/internal/http/response"
	"github.com/zephyra-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateAdminUserRequest 创建管理员请求
type CreateAdminUserRequest struct {
	Email     string `json:"email" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url"`
}

// UpdateAdminUserRequest 更新管理员请求，缺省字段不修改
type UpdateAdminUserRequest struct {
	Email     *string `json:"email"`
	Name      *string `json:"name"`
	Password  *string `json:"password"`
	Role      *string `json:"role"`
	AvatarURL *string `json:"avatar_url"`
	IsActive  *bool   `json:"is_active"`
}

// GetAdminUsers 管理员列表
func (h *Handler) GetAdminUsers(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	admins, err := h.AdminUserService.List(actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, admins)
}

// CreateAdminUser 创建管理员
func (h *Handler) CreateAdminUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req CreateAdminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	admin, err := h.AdminUserService.Create(actor, service.CreateAdminUserInput{
		Email:     req.Email,
		Name:      req.Name,
		Password:  req.Password,
		Role:      req.Role,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, admin)
}

// UpdateAdminUser 更新管理员
func (h *Handler) UpdateAdminUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateAdminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	admin, err := h.AdminUserService.Update(actor, id, service.UpdateAdminUserInput{
		Email:     req.Email,
		Name:      req.Name,
		Password:  req.Password,
		Role:      req.Role,
		AvatarURL: req.AvatarURL,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, admin)
}

// DeleteAdminUser 管理员移入回收站
func (h *Handler) DeleteAdminUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.AdminUserService.Remove(actor, id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, successMsg(c, "msg.moved_to_trash"), nil)
}
