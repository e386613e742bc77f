package service

import (
	"github.com/zephyra-admin/internal/models"
	"github.com/zephyra-admin/internal/repository"
)

const newsletterRecentDays = 30

// NewsletterService 邮件订阅服务（仅物理删除，不进回收站）
type NewsletterService struct {
	repo repository.NewsletterRepository
}

// NewNewsletterService 创建订阅服务
func NewNewsletterService(repo repository.NewsletterRepository) *NewsletterService {
	return &NewsletterService{repo: repo}
}

// NewsletterStats 订阅统计
type NewsletterStats struct {
	Total        int64 `json:"total"`
	Active       int64 `json:"active"`
	Unsubscribed int64 `json:"unsubscribed"`
	Recent       int64 `json:"recent"`
}

// Subscribe 订阅，已取消的重新激活；返回是否为新订阅
func (s *NewsletterService) Subscribe(email string) (bool, error) {
	email = normalizeEmail(email)
	if !validEmail(email) {
		return false, ErrInvalidEmail
	}
	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		return false, err
	}
	now := nowUTC()
	if existing != nil {
		if existing.IsActive {
			return false, nil
		}
		existing.IsActive = true
		existing.SubscribedAt = now
		existing.UnsubscribedAt = nil
		if err := s.repo.Update(existing); err != nil {
			return false, err
		}
		return true, nil
	}
	subscriber := &models.NewsletterSubscriber{
		Email:        email,
		SubscribedAt: now,
		IsActive:     true,
	}
	if err := s.repo.Create(subscriber); err != nil {
		if repository.IsUniqueViolation(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Unsubscribe 取消订阅，邮箱不存在时返回 NotFound
func (s *NewsletterService) Unsubscribe(email string) error {
	subscriber, err := s.repo.GetByEmail(normalizeEmail(email))
	if err != nil {
		return err
	}
	if subscriber == nil {
		return ErrNotFound
	}
	if !subscriber.IsActive {
		return nil
	}
	now := nowUTC()
	subscriber.IsActive = false
	subscriber.UnsubscribedAt = &now
	return s.repo.Update(subscriber)
}

// SetActive 后台切换订阅状态
func (s *NewsletterService) SetActive(id uint, active bool) (*models.NewsletterSubscriber, error) {
	subscriber, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subscriber == nil {
		return nil, ErrNotFound
	}
	if subscriber.IsActive == active {
		return subscriber, nil
	}
	subscriber.IsActive = active
	if active {
		subscriber.UnsubscribedAt = nil
	} else {
		now := nowUTC()
		subscriber.UnsubscribedAt = &now
	}
	if err := s.repo.Update(subscriber); err != nil {
		return nil, err
	}
	return subscriber, nil
}

// Delete 物理删除订阅者
func (s *NewsletterService) Delete(id uint) error {
	subscriber, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if subscriber == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

// List 订阅者列表
func (s *NewsletterService) List(filter repository.NewsletterListFilter) ([]models.NewsletterSubscriber, int64, error) {
	return s.repo.List(filter)
}

// Stats 订阅统计，recent 为最近 30 天新订阅
func (s *NewsletterService) Stats() (NewsletterStats, error) {
	var stats NewsletterStats
	var err error
	if stats.Total, err = s.repo.Count(nil); err != nil {
		return stats, err
	}
	active := true
	if stats.Active, err = s.repo.Count(&active); err != nil {
		return stats, err
	}
	stats.Unsubscribed = stats.Total - stats.Active
	if stats.Recent, err = s.repo.CountSince(nowUTC().AddDate(0, 0, -newsletterRecentDays)); err != nil {
		return stats, err
	}
	return stats, nil
}

// ExportActiveEmails 导出活跃订阅邮箱
func (s *NewsletterService) ExportActiveEmails() ([]string, error) {
	return s.repo.ListActiveEmails()
}
