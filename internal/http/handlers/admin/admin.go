package admin

import (
	"net/http"
	"time"

	handlershared "github.com/zephyra-admin/internal/http/handlers/shared"
	"github.com/zephyra-admin/internal/http/response"
	"github.com/zephyra-admin/internal/models"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	handlershared.CaptchaPayloadRequest
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string            `json:"token"`
	User      *models.AdminUser `json:"user"`
	ExpiresAt string            `json:"expires_at"`
}

// AdminLogin 管理员登录，写入 HttpOnly 会话 Cookie
func (h *Handler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if h.CaptchaService != nil {
		if err := h.CaptchaService.Verify(req.ToServicePayload()); err != nil {
			respondServiceError(c, err)
			return
		}
	}

	admin, token, expiresAt, err := h.AuthService.Login(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	h.setSessionCookie(c, token, int(time.Until(expiresAt).Seconds()))
	response.Success(c, LoginResponse{
		Token:     token,
		User:      admin,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}

// AdminLogout 退出登录，清除会话 Cookie
func (h *Handler) AdminLogout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	response.SuccessWithMsg(c, successMsg(c, "msg.logged_out"), nil)
}

func (h *Handler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	name := h.Config.JWT.CookieName
	if name == "" {
		name = "session"
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", h.Config.JWT.CookieSecure, true)
}

// GetAdminMe 当前登录管理员
func (h *Handler) GetAdminMe(c *gin.Context) {
	id, ok := getAdminID(c)
	if !ok {
		return
	}
	admin, err := h.AuthService.Me(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, admin)
}

// UpdatePasswordRequest 修改密码请求
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ChangeAdminPassword 修改当前管理员密码，旧会话随之失效
func (h *Handler) ChangeAdminPassword(c *gin.Context) {
	id, ok := getAdminID(c)
	if !ok {
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.AuthService.ChangePassword(id, req.OldPassword, req.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}
	h.setSessionCookie(c, "", -1)
	response.SuccessWithMsg(c, successMsg(c, "msg.password_changed"), nil)
}

// UploadFile 图片上传
func (h *Handler) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_upload", nil)
		return
	}
	scene := c.DefaultPostForm("scene", "editor")

	url, err := h.UploadService.SaveFile(file, scene)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, gin.H{
		"url":      url,
		"filename": file.Filename,
		"size":     file.Size,
	})
}
