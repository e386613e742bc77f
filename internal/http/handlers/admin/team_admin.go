package admin

import (
	"github.com/zephyra-admin/internal/http/response"
	"github.com/zephyra-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamMemberUpsertRequest 团队成员创建/更新请求
type TeamMemberUpsertRequest struct {
	Name      string `json:"name" binding:"required"`
	Role      string `json:"role"`
	Specialty string `json:"specialty"`
	ImageURL  string `json:"image_url"`
	IsVisible *bool  `json:"is_visible"`
}

func (r TeamMemberUpsertRequest) toInput() service.TeamMemberInput {
	return service.TeamMemberInput{
		Name:      r.Name,
		Role:      r.Role,
		Specialty: r.Specialty,
		ImageURL:  r.ImageURL,
		IsVisible: r.IsVisible,
	}
}

// GetTeamMembers 团队成员列表
func (h *Handler) GetTeamMembers(c *gin.Context) {
	members, err := h.TeamMemberService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, members)
}

// GetTeamOptions 作者下拉选项
func (h *Handler) GetTeamOptions(c *gin.Context) {
	options, err := h.TeamMemberService.ListForSelect()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, options)
}

// CanDeleteTeamMember 是否仍是活跃文章的作者
func (h *Handler) CanDeleteTeamMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	canDelete, postCount, err := h.TeamMemberService.CanDelete(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{
		"can_delete": canDelete,
		"post_count": postCount,
	})
}

// CreateTeamMember 创建团队成员
func (h *Handler) CreateTeamMember(c *gin.Context) {
	var req TeamMemberUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	member, err := h.TeamMemberService.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, member)
}

// UpdateTeamMember 更新团队成员
func (h *Handler) UpdateTeamMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req TeamMemberUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	member, err := h.TeamMemberService.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, member)
}

// DeleteTeamMember 团队成员移入回收站
func (h *Handler) DeleteTeamMember(c *gin.Context) {
	actorID, ok := getAdminID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.TeamMemberService.Remove(id, actorID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, successMsg(c, "msg.moved_to_trash"), nil)
}

// ReorderTeamMembers 调整团队成员顺序
func (h *Handler) ReorderTeamMembers(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.TeamMemberService.Reorder(req.IDs); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, nil)
}
