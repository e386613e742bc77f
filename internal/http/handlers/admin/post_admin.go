package admin

import (
	"strings"

	handlershared "github.com/zephyra-admin/internal/http/handlers/shared"
	"github.com/zephyra-admin/internal/http/response"
	"github.com/zephyra-admin/internal/repository"
	"github.com/zephyra-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// PostUpsertRequest 文章创建/更新请求
type PostUpsertRequest struct {
	Title    string `json:"title" binding:"required"`
	Slug     string `json:"slug"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	CoverURL string `json:"cover_url"`
	AuthorID uint   `json:"author_id" binding:"required"`
	Status   string `json:"status"`
}

func (r PostUpsertRequest) toInput() service.BlogPostInput {
	return service.BlogPostInput{
		Title:    r.Title,
		Slug:     r.Slug,
		Excerpt:  r.Excerpt,
		Content:  r.Content,
		CoverURL: r.CoverURL,
		AuthorID: r.AuthorID,
		Status:   r.Status,
	}
}

// GetAdminPosts 后台文章列表
func (h *Handler) GetAdminPosts(c *gin.Context) {
	page, pageSize := handlershared.ParsePage(c)
	posts, total, err := h.BlogPostService.ListAdmin(repository.BlogPostListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(c.Query("status")),
		Search:   strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, posts, response.NewPagination(page, pageSize, total))
}

// CreatePost 创建文章
func (h *Handler) CreatePost(c *gin.Context) {
	var req PostUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	post, err := h.BlogPostService.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, post)
}

// UpdatePost 更新文章
func (h *Handler) UpdatePost(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req PostUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	post, err := h.BlogPostService.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, post)
}

// PublishPost 发布文章
func (h *Handler) PublishPost(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	post, err := h.BlogPostService.Publish(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, post)
}

// UnpublishPost 撤回为草稿
func (h *Handler) UnpublishPost(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	post, err := h.BlogPostService.Unpublish(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, post)
}

// DeletePost 文章移入回收站
func (h *Handler) DeletePost(c *gin.Context) {
	actorID, ok := getAdminID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.BlogPostService.Remove(id, actorID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, successMsg(c, "msg.moved_to_trash"), nil)
}
