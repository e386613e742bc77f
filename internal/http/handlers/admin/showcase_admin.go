package admin

import (
	"github.com/zephyra-admin/internal/http/response"
	"github.com/zephyra-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// ServiceUpsertRequest 服务项目请求
type ServiceUpsertRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	IconName    string `json:"icon_name"`
	IsActive    *bool  `json:"is_active"`
}

// LogoUpsertRequest 客户/合作伙伴请求
type LogoUpsertRequest struct {
	Name       string  `json:"name" binding:"required"`
	LogoURL    string  `json:"logo_url"`
	WebsiteURL *string `json:"website_url"`
}

func (r LogoUpsertRequest) toInput() service.LogoInput {
	return service.LogoInput{Name: r.Name, LogoURL: r.LogoURL, WebsiteURL: r.WebsiteURL}
}

// ====================  服务项目  ====================

// GetAdminServices 服务项目列表
func (h *Handler) GetAdminServices(c *gin.Context) {
	rows, err := h.OfferingService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, rows)
}

// CreateService 创建服务项目
func (h *Handler) CreateService(c *gin.Context) {
	var req ServiceUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	row, err := h.OfferingService.Create(service.OfferingInput{
		Title:       req.Title,
		Description: req.Description,
		IconName:    req.IconName,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, row)
}

// UpdateService 更新服务项目
func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req ServiceUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	row, err := h.OfferingService.Update(id, service.OfferingInput{
		Title:       req.Title,
		Description: req.Description,
		IconName:    req.IconName,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, row)
}

// ToggleServiceActive 切换上下架
func (h *Handler) ToggleServiceActive(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	row, err := h.OfferingService.ToggleActive(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, row)
}

// DeleteService 服务项目移入回收站
func (h *Handler) DeleteService(c *gin.Context) {
	h.removeByID(c, h.OfferingService.Remove)
}

// ReorderServices 调整服务项目顺序
func (h *Handler) ReorderServices(c *gin.Context) {
	h.reorder(c, h.OfferingService.Reorder)
}

// ====================  客户  ====================

// GetAdminClients 客户列表
func (h *Handler) GetAdminClients(c *gin.Context) {
	rows, err := h.ClientService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, rows)
}

// CreateClient 创建客户
func (h *Handler) CreateClient(c *gin.Context) {
	var req LogoUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	row, err := h.ClientService.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, row)
}

// UpdateClient 更新客户
func (h *Handler) UpdateClient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req LogoUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	row, err := h.ClientService.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, row)
}

// DeleteClient 客户移入回收站
func (h *Handler) DeleteClient(c *gin.Context) {
	h.removeByID(c, h.ClientService.Remove)
}

// ReorderClients 调整客户顺序
func (h *Handler) ReorderClients(c *gin.Context) {
	h.reorder(c, h.ClientService.Reorder)
}

// ====================  合作伙伴  ====================

// GetAdminAlliances 合作伙伴列表
func (h *Handler) GetAdminAlliances(c *gin.Context) {
	rows, err := h.AllianceService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, rows)
}

// CreateAlliance 创建合作伙伴
func (h *Handler) CreateAlliance(c *gin.Context) {
	var req LogoUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	row, err := h.AllianceService.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, row)
}

// UpdateAlliance 更新合作伙伴
func (h *Handler) UpdateAlliance(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req LogoUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	row, err := h.AllianceService.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, row)
}

// DeleteAlliance 合作伙伴移入回收站
func (h *Handler) DeleteAlliance(c *gin.Context) {
	h.removeByID(c, h.AllianceService.Remove)
}

// ReorderAlliances 调整合作伙伴顺序
func (h *Handler) ReorderAlliances(c *gin.Context) {
	h.reorder(c, h.AllianceService.Reorder)
}

func (h *Handler) removeByID(c *gin.Context, remove func(id, actorID uint) error) {
	actorID, ok := getAdminID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := remove(id, actorID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, successMsg(c, "msg.moved_to_trash"), nil)
}

func (h *Handler) reorder(c *gin.Context, apply func(ids []uint) error) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := apply(req.IDs); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, nil)
}
