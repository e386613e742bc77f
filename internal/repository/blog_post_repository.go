package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/zephyra-admin/internal/constants"
	"github.com/zephyra-admin/internal/models"

	"gorm.io/gorm"
)

// BlogPostRepository 博客文章数据访问接口
type BlogPostRepository interface {
	List(filter BlogPostListFilter) ([]models.BlogPost, int64, error)
	GetByID(id uint) (*models.BlogPost, error)
	GetBySlug(slug string, onlyPublished bool) (*models.BlogPost, error)
	SlugExists(slug string, excludeID uint) (bool, error)
	CountActiveByAuthor(authorID uint) (int64, error)
	CountByStatus(status string) (int64, error)
	Create(post *models.BlogPost) error
	Update(post *models.BlogPost) error
	MarkDeleted(id, actorID uint, at time.Time) (bool, error)
	CountActive() (int64, error)
}

// GormBlogPostRepository GORM 实现
type GormBlogPostRepository struct {
	softDeleteStore[models.BlogPost]
}

// NewBlogPostRepository 创建文章仓库
func NewBlogPostRepository(db *gorm.DB) *GormBlogPostRepository {
	return &GormBlogPostRepository{softDeleteStore: softDeleteStore[models.BlogPost]{db: db}}
}

// List 文章列表
func (r *GormBlogPostRepository) List(filter BlogPostListFilter) ([]models.BlogPost, int64, error) {
	posts := make([]models.BlogPost, 0)
	query := r.db.Model(&models.BlogPost{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OnlyPublished {
		query = query.Where("status = ?", constants.PostStatusPublished)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		op := likeOperatorByDialect(dbDialectName(r.db))
		query = query.Where("title "+op+" ? OR slug "+op+" ?", like, like)
	}

	query, total, err := countAndPage(query, filter.Page, filter.PageSize)
	if err != nil {
		return nil, 0, err
	}
	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC, id DESC"
	}
	if err := query.Preload("Author").Order(orderBy).Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// GetBySlug 根据 slug 获取活跃文章
func (r *GormBlogPostRepository) GetBySlug(slug string, onlyPublished bool) (*models.BlogPost, error) {
	var post models.BlogPost
	query := r.db.Preload("Author").Where("slug = ?", slug)
	if onlyPublished {
		query = query.Where("status = ?", constants.PostStatusPublished)
	}
	if err := query.First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// SlugExists slug 是否已被占用（含回收站）
func (r *GormBlogPostRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	return slugTaken(r.db, &models.BlogPost{}, slug, excludeID)
}

// CountActiveByAuthor 统计作者的活跃文章数
func (r *GormBlogPostRepository) CountActiveByAuthor(authorID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.BlogPost{}).Where("author_id = ?", authorID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus 按状态统计活跃文章
func (r *GormBlogPostRepository) CountByStatus(status string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.BlogPost{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func slugTaken(db *gorm.DB, model interface{}, slug string, excludeID uint) (bool, error) {
	var count int64
	query := db.Unscoped().Model(model).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
