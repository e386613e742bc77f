package public

import (
	"github.com/zephyra-admin/internal/http/response"
	"github.com/zephyra-admin/internal/i18n"

	"github.com/gin-gonic/gin"
)

// ForgotPasswordRequest 找回密码请求
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ResetPasswordRequest 重置密码请求
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ForgotPassword 发送重置链接，响应不区分邮箱是否存在
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.AuthService.RequestPasswordReset(req.Email, i18n.ResolveLocale(c)); err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithMsg(c, localized(c, "msg.password_reset_requested"), nil)
}

// ResetPassword 使用一次性令牌设置新密码
func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.AuthService.ResetPassword(req.Token, req.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, localized(c, "msg.password_reset_done"), nil)
}
