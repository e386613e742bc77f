package admin

import (
	"github.com/zephyra-admin/internal/http/response"
	"github.com/zephyra-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectUpsertRequest 项目创建/更新请求
// achievements 为 null 时更新不改动成果列表
type ProjectUpsertRequest struct {
	Title        string   `json:"title" binding:"required"`
	Slug         string   `json:"slug"`
	Description  string   `json:"description"`
	Excerpt      string   `json:"excerpt"`
	ImageURL     string   `json:"image_url"`
	IsFeatured   *bool    `json:"is_featured"`
	Achievements []string `json:"achievements"`
}

func (r ProjectUpsertRequest) toInput() service.ProjectInput {
	return service.ProjectInput{
		Title:        r.Title,
		Slug:         r.Slug,
		Description:  r.Description,
		Excerpt:      r.Excerpt,
		ImageURL:     r.ImageURL,
		IsFeatured:   r.IsFeatured,
		Achievements: r.Achievements,
	}
}

// AchievementRequest 成果请求
type AchievementRequest struct {
	Description string `json:"description" binding:"required"`
}

// GetAdminProjects 后台项目列表
func (h *Handler) GetAdminProjects(c *gin.Context) {
	projects, err := h.ProjectService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, projects)
}

// CreateProject 创建项目
func (h *Handler) CreateProject(c *gin.Context) {
	var req ProjectUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	project, err := h.ProjectService.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, project)
}

// UpdateProject 更新项目
func (h *Handler) UpdateProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req ProjectUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	project, err := h.ProjectService.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, project)
}

// ToggleProjectFeatured 切换精选状态
func (h *Handler) ToggleProjectFeatured(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	project, err := h.ProjectService.ToggleFeatured(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, project)
}

// DeleteProject 项目移入回收站，成果保留到永久删除
func (h *Handler) DeleteProject(c *gin.Context) {
	actorID, ok := getAdminID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ProjectService.Remove(id, actorID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, successMsg(c, "msg.moved_to_trash"), nil)
}

// ReorderProjects 调整项目顺序
func (h *Handler) ReorderProjects(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.ProjectService.Reorder(req.IDs); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, nil)
}

// AddProjectAchievement 追加成果
func (h *Handler) AddProjectAchievement(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req AchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	achievement, err := h.ProjectService.AddAchievement(projectID, req.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, achievement)
}

// UpdateAchievement 修改成果描述
func (h *Handler) UpdateAchievement(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req AchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	achievement, err := h.ProjectService.UpdateAchievement(id, req.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, achievement)
}

// DeleteAchievement 物理删除成果
func (h *Handler) DeleteAchievement(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ProjectService.DeleteAchievement(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, successMsg(c, "msg.deleted_permanently"), nil)
}

// ReorderProjectAchievements 调整项目内成果顺序
func (h *Handler) ReorderProjectAchievements(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.ProjectService.ReorderAchievements(projectID, req.IDs); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, nil)
}
