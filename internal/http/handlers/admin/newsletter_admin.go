package admin

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	handlershared "github.com/zephyra-admin/internal/http/handlers/shared"
	"github.com/zephyra-admin/internal/http/response"
	"github.com/zephyra-admin/internal/repository"

	"github.com/gin-gonic/gin"
)

// UpdateSubscriberRequest 修改订阅状态
type UpdateSubscriberRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// GetSubscribers 订阅者列表
func (h *Handler) GetSubscribers(c *gin.Context) {
	page, pageSize := handlershared.ParsePage(c)
	filter := repository.NewsletterListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(c.Query("search")),
	}
	if raw := strings.TrimSpace(c.Query("is_active")); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return
		}
		filter.IsActive = &active
	}
	rows, total, err := h.NewsletterService.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, rows, response.NewPagination(page, pageSize, total))
}

// GetSubscriberStats 订阅统计
func (h *Handler) GetSubscriberStats(c *gin.Context) {
	stats, err := h.NewsletterService.Stats()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, stats)
}

// ExportSubscribers 导出有效订阅邮箱为 CSV
func (h *Handler) ExportSubscribers(c *gin.Context) {
	emails, err := h.NewsletterService.ExportActiveEmails()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	filename := fmt.Sprintf("newsletter-%s.csv", time.Now().UTC().Format("20060102"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	writer := csv.NewWriter(c.Writer)
	_ = writer.Write([]string{"email"})
	for _, email := range emails {
		_ = writer.Write([]string{email})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		requestLog(c).Warnw("newsletter_export_write_failed", "error", err)
	}
}

// UpdateSubscriber 启用或停用订阅
func (h *Handler) UpdateSubscriber(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateSubscriberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	row, err := h.NewsletterService.SetActive(id, *req.IsActive)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, row)
}

// DeleteSubscriber 物理删除订阅者，不进回收站
func (h *Handler) DeleteSubscriber(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.NewsletterService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, successMsg(c, "msg.deleted_permanently"), nil)
}
