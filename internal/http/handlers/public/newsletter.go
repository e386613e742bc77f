package public

import (
	"github.com/zephyra-admin/internal/http/response"

	"github.com/gin-gonic/gin"
)

// NewsletterRequest 订阅/退订请求
type NewsletterRequest struct {
	Email string `json:"email" binding:"required"`
}

// SubscribeNewsletter 订阅资讯，重复订阅返回已订阅提示
func (h *Handler) SubscribeNewsletter(c *gin.Context) {
	var req NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	created, err := h.NewsletterService.Subscribe(req.Email)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	key := "msg.subscribed"
	if !created {
		key = "msg.already_subscribed"
	}
	response.SuccessWithMsg(c, localized(c, key), gin.H{"subscribed": created})
}

// UnsubscribeNewsletter 退订
func (h *Handler) UnsubscribeNewsletter(c *gin.Context) {
	var req NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.NewsletterService.Unsubscribe(req.Email); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, localized(c, "msg.unsubscribed"), nil)
}
