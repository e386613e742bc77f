package admin

import (
	"errors"
	"time"

	"github.com/zephyra-admin/internal/http/response"
	"github.com/zephyra-admin/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

// GetTrash 回收站列表，按删除时间倒序
func (h *Handler) GetTrash(c *gin.Context) {
	items, err := h.TrashService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{
		"items":          items,
		"total":          len(items),
		"retention_days": h.TrashService.RetentionDays(),
	})
}

// RestoreTrashItem 恢复回收站记录
func (h *Handler) RestoreTrashItem(c *gin.Context) {
	kind, id, ok := parseTrashTarget(c)
	if !ok {
		return
	}
	if err := h.TrashService.Restore(kind, id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, successMsg(c, "msg.restored"), nil)
}

// PermanentDeleteTrashItem 永久删除回收站记录
func (h *Handler) PermanentDeleteTrashItem(c *gin.Context) {
	kind, id, ok := parseTrashTarget(c)
	if !ok {
		return
	}
	if err := h.TrashService.PermanentDelete(kind, id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, successMsg(c, "msg.deleted_permanently"), nil)
}

// CleanupTrash 手动触发过期清理，有队列时异步执行
func (h *Handler) CleanupTrash(c *gin.Context) {
	if h.QueueClient.Enabled() {
		err := h.QueueClient.EnqueueTrashCleanup("manual")
		if err == nil || errors.Is(err, asynq.ErrDuplicateTask) {
			response.SuccessWithMsg(c, successMsg(c, "msg.cleanup_queued"), gin.H{"queued": true})
			return
		}
		requestLog(c).Warnw("trash_cleanup_enqueue_failed_run_inline", "error", err)
	}

	result, err := h.TrashService.CleanupExpired(c.Request.Context(), time.Now().UTC())
	if err != nil {
		requestLog(c).Errorw("trash_cleanup_partial", "total", result.Total, "error", err)
		response.ErrorWithData(c, response.CodeInternal, successMsg(c, "error.cleanup_partial"), result)
		return
	}
	requestLog(c).Infow("trash_cleanup_done", "trigger", "manual", "total", result.Total, "per_kind", result.PerKind)
	response.Success(c, result)
}

func parseTrashTarget(c *gin.Context) (service.EntityKind, uint, bool) {
	kind, err := service.ParseEntityKind(c.Param("kind"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_entity_kind", nil)
		return "", 0, false
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return "", 0, false
	}
	return kind, id, true
}
