package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/zephyra-admin/internal/models"

	"gorm.io/gorm"
)

// NewsletterRepository 邮件订阅数据访问接口（仅物理删除）
type NewsletterRepository interface {
	List(filter NewsletterListFilter) ([]models.NewsletterSubscriber, int64, error)
	GetByID(id uint) (*models.NewsletterSubscriber, error)
	GetByEmail(email string) (*models.NewsletterSubscriber, error)
	Create(subscriber *models.NewsletterSubscriber) error
	Update(subscriber *models.NewsletterSubscriber) error
	Delete(id uint) error
	Count(active *bool) (int64, error)
	CountSince(since time.Time) (int64, error)
	ListActiveEmails() ([]string, error)
}

// GormNewsletterRepository GORM 实现
type GormNewsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository 创建订阅仓库
func NewNewsletterRepository(db *gorm.DB) *GormNewsletterRepository {
	return &GormNewsletterRepository{db: db}
}

// List 订阅者列表
func (r *GormNewsletterRepository) List(filter NewsletterListFilter) ([]models.NewsletterSubscriber, int64, error) {
	rows := make([]models.NewsletterSubscriber, 0)
	query := r.db.Model(&models.NewsletterSubscriber{})
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("email "+likeOperatorByDialect(dbDialectName(r.db))+" ?", "%"+search+"%")
	}

	query, total, err := countAndPage(query, filter.Page, filter.PageSize)
	if err != nil {
		return nil, 0, err
	}
	if err := query.Order("subscribed_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// GetByID 根据 ID 获取订阅者
func (r *GormNewsletterRepository) GetByID(id uint) (*models.NewsletterSubscriber, error) {
	var row models.NewsletterSubscriber
	if err := r.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// GetByEmail 根据邮箱获取订阅者
func (r *GormNewsletterRepository) GetByEmail(email string) (*models.NewsletterSubscriber, error) {
	var row models.NewsletterSubscriber
	if err := r.db.Where("email = ?", email).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Create 创建订阅者
func (r *GormNewsletterRepository) Create(subscriber *models.NewsletterSubscriber) error {
	return r.db.Create(subscriber).Error
}

// Update 更新订阅者，目标已删除时返回 ErrNotFound
func (r *GormNewsletterRepository) Update(subscriber *models.NewsletterSubscriber) error {
	return updateExisting(r.db, subscriber)
}

// Delete 物理删除订阅者
func (r *GormNewsletterRepository) Delete(id uint) error {
	return r.db.Delete(&models.NewsletterSubscriber{}, id).Error
}

// Count 统计订阅者，active 为空时统计全部
func (r *GormNewsletterRepository) Count(active *bool) (int64, error) {
	var count int64
	query := r.db.Model(&models.NewsletterSubscriber{})
	if active != nil {
		query = query.Where("is_active = ?", *active)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountSince 统计某时间后的新订阅
func (r *GormNewsletterRepository) CountSince(since time.Time) (int64, error) {
	var count int64
	if err := r.db.Model(&models.NewsletterSubscriber{}).Where("subscribed_at >= ?", since).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListActiveEmails 导出活跃订阅邮箱
func (r *GormNewsletterRepository) ListActiveEmails() ([]string, error) {
	emails := make([]string, 0)
	if err := r.db.Model(&models.NewsletterSubscriber{}).
		Where("is_active = ?", true).
		Order("subscribed_at ASC, id ASC").
		Pluck("email", &emails).Error; err != nil {
		return nil, err
	}
	return emails, nil
}
