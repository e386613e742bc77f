package public

import (
	"strings"

	"github.com/zephyra-admin/internal/cache"
	handlershared "github.com/zephyra-admin/internal/http/handlers/shared"
	"github.com/zephyra-admin/internal/http/response"

	"github.com/gin-gonic/gin"
)

const variantFeatured = "featured"

// cachedList 先读公开内容缓存，未命中时回源并回写
func cachedList[T any](c *gin.Context, section, variant string, load func() ([]T, error)) ([]T, error) {
	ctx := c.Request.Context()
	var rows []T
	hit, err := cache.GetPublicContent(ctx, section, variant, &rows)
	if err != nil {
		handlershared.RequestLog(c).Warnw("public_content_cache_get_failed", "section", section, "error", err)
	}
	if hit {
		return rows, nil
	}
	rows, err = load()
	if err != nil {
		return nil, err
	}
	if err := cache.SetPublicContent(ctx, section, variant, rows); err != nil {
		handlershared.RequestLog(c).Warnw("public_content_cache_set_failed", "section", section, "error", err)
	}
	return rows, nil
}

// GetPosts 已发布文章分页列表
func (h *Handler) GetPosts(c *gin.Context) {
	page, pageSize := handlershared.ParsePage(c)
	posts, total, err := h.BlogPostService.ListPublished(page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, posts, response.NewPagination(page, pageSize, total))
}

// GetPostBySlug 已发布文章详情
func (h *Handler) GetPostBySlug(c *gin.Context) {
	post, err := h.BlogPostService.GetBySlug(strings.TrimSpace(c.Param("slug")), true)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, post)
}

// GetTeam 可见团队成员
func (h *Handler) GetTeam(c *gin.Context) {
	members, err := cachedList(c, cache.SectionTeam, "", h.TeamMemberService.ListPublic)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, members)
}

// GetProjects 项目列表，featured=1 仅返回精选
func (h *Handler) GetProjects(c *gin.Context) {
	featured := c.Query("featured")
	if featured == "1" || strings.EqualFold(featured, "true") {
		projects, err := cachedList(c, cache.SectionProjects, variantFeatured, h.ProjectService.ListFeatured)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		response.Success(c, projects)
		return
	}
	projects, err := cachedList(c, cache.SectionProjects, "", h.ProjectService.List)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, projects)
}

// GetProjectBySlug 项目详情
func (h *Handler) GetProjectBySlug(c *gin.Context) {
	project, err := h.ProjectService.GetBySlug(strings.TrimSpace(c.Param("slug")))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, project)
}

// GetServices 上架的服务项目
func (h *Handler) GetServices(c *gin.Context) {
	rows, err := cachedList(c, cache.SectionServices, "", h.OfferingService.ListPublic)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, rows)
}

// GetClients 客户墙
func (h *Handler) GetClients(c *gin.Context) {
	rows, err := cachedList(c, cache.SectionClients, "", h.ClientService.List)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, rows)
}

// GetAlliances 合作伙伴墙
func (h *Handler) GetAlliances(c *gin.Context) {
	rows, err := cachedList(c, cache.SectionAlliances, "", h.AllianceService.List)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, rows)
}
