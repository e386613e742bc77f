package service

import (
	"strings"
	"time"

	"github.com/zephyra-admin/internal/cache"
	"github.com/zephyra-admin/internal/constants"
	"github.com/zephyra-admin/internal/models"
	"github.com/zephyra-admin/internal/repository"
)

// BlogPostService 博客文章业务服务
type BlogPostService struct {
	repo       repository.BlogPostRepository
	memberRepo repository.TeamMemberRepository
}

// NewBlogPostService 创建文章服务
func NewBlogPostService(repo repository.BlogPostRepository, memberRepo repository.TeamMemberRepository) *BlogPostService {
	return &BlogPostService{repo: repo, memberRepo: memberRepo}
}

// BlogPostInput 创建/更新文章参数
type BlogPostInput struct {
	Title    string
	Slug     string
	Excerpt  string
	Content  string
	CoverURL string
	AuthorID uint
	Status   string
}

// ListAdmin 后台文章列表
func (s *BlogPostService) ListAdmin(filter repository.BlogPostListFilter) ([]models.BlogPost, int64, error) {
	if filter.Status != "" && !validPostStatus(filter.Status) {
		return nil, 0, ErrInvalidPostStatus
	}
	filter.OnlyPublished = false
	filter.OrderBy = ""
	return s.repo.List(filter)
}

// ListPublished 已发布文章，按发布时间倒序
func (s *BlogPostService) ListPublished(page, pageSize int) ([]models.BlogPost, int64, error) {
	return s.repo.List(repository.BlogPostListFilter{
		Page:          page,
		PageSize:      pageSize,
		OnlyPublished: true,
		OrderBy:       "published_at DESC, id DESC",
	})
}

// GetBySlug 根据 slug 获取文章
func (s *BlogPostService) GetBySlug(slug string, publishedOnly bool) (*models.BlogPost, error) {
	post, err := s.repo.GetBySlug(strings.TrimSpace(slug), publishedOnly)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// Create 创建文章，slug 冲突时自动追加序号
func (s *BlogPostService) Create(input BlogPostInput) (*models.BlogPost, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = constants.PostStatusDraft
	}
	if !validPostStatus(status) {
		return nil, ErrInvalidPostStatus
	}
	if err := s.ensureAuthor(input.AuthorID); err != nil {
		return nil, err
	}

	base := GenerateSlug(input.Slug)
	if base == "" {
		base = GenerateSlug(title)
	}
	slug, err := uniqueSlug(base, 0, s.repo.SlugExists)
	if err != nil {
		return nil, err
	}

	post := &models.BlogPost{
		Title:    title,
		Slug:     slug,
		Excerpt:  strings.TrimSpace(input.Excerpt),
		Content:  input.Content,
		CoverURL: strings.TrimSpace(input.CoverURL),
		AuthorID: input.AuthorID,
		Status:   status,
	}
	if status == constants.PostStatusPublished {
		now := nowUTC()
		post.PublishedAt = &now
	}
	if err := s.repo.Create(post); err != nil {
		return nil, conflictOr(err, ErrSlugExists)
	}
	invalidateSection(cache.SectionPosts)
	return post, nil
}

// Update 更新文章，显式指定的 slug 冲突时返回 Conflict
func (s *BlogPostService) Update(id uint, input BlogPostInput) (*models.BlogPost, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = post.Status
	}
	if !validPostStatus(status) {
		return nil, ErrInvalidPostStatus
	}
	if input.AuthorID != 0 && input.AuthorID != post.AuthorID {
		if err := s.ensureAuthor(input.AuthorID); err != nil {
			return nil, err
		}
		post.AuthorID = input.AuthorID
		post.Author = nil
	}

	if slug := GenerateSlug(input.Slug); slug != "" && slug != post.Slug {
		exists, err := s.repo.SlugExists(slug, post.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrSlugExists
		}
		post.Slug = slug
	}

	post.Title = title
	post.Excerpt = strings.TrimSpace(input.Excerpt)
	post.Content = input.Content
	post.CoverURL = strings.TrimSpace(input.CoverURL)
	applyPostStatus(post, status, nowUTC())

	if err := s.repo.Update(post); err != nil {
		return nil, conflictOr(err, ErrSlugExists)
	}
	invalidateSection(cache.SectionPosts)
	return post, nil
}

// Publish 发布文章
func (s *BlogPostService) Publish(id uint) (*models.BlogPost, error) {
	return s.setStatus(id, constants.PostStatusPublished)
}

// Unpublish 撤回为草稿
func (s *BlogPostService) Unpublish(id uint) (*models.BlogPost, error) {
	return s.setStatus(id, constants.PostStatusDraft)
}

func (s *BlogPostService) setStatus(id uint, status string) (*models.BlogPost, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	applyPostStatus(post, status, nowUTC())
	if err := s.repo.Update(post); err != nil {
		return nil, err
	}
	invalidateSection(cache.SectionPosts)
	return post, nil
}

// Remove 软删除文章
func (s *BlogPostService) Remove(id, actorID uint) error {
	return softRemove(s.repo.MarkDeleted, id, actorID, cache.SectionPosts)
}

func (s *BlogPostService) ensureAuthor(authorID uint) error {
	if authorID == 0 {
		return ErrAuthorNotFound
	}
	member, err := s.memberRepo.GetByID(authorID)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrAuthorNotFound
	}
	return nil
}

// applyPostStatus 首次发布时记录发布时间，已有发布时间保持不变
func applyPostStatus(post *models.BlogPost, status string, now time.Time) {
	post.Status = status
	if status == constants.PostStatusPublished && post.PublishedAt == nil {
		post.PublishedAt = &now
	}
}

func validPostStatus(status string) bool {
	return status == constants.PostStatusDraft || status == constants.PostStatusPublished
}
