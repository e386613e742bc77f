package service

import (
	"strings"

	"github.com/zephyra-admin/internal/cache"
	"github.com/zephyra-admin/internal/models"
	"github.com/zephyra-admin/internal/repository"
)

// OfferingService 服务项目
type OfferingService struct {
	repo repository.OfferingRepository
}

// NewOfferingService 创建服务项目服务
func NewOfferingService(repo repository.OfferingRepository) *OfferingService {
	return &OfferingService{repo: repo}
}

// OfferingInput 服务项目参数
type OfferingInput struct {
	Title       string
	Description string
	IconName    string
	IsActive    *bool
}

// List 后台列表
func (s *OfferingService) List() ([]models.Offering, error) {
	return s.repo.ListActive()
}

// ListPublic 前台启用的服务
func (s *OfferingService) ListPublic() ([]models.Offering, error) {
	return s.repo.ListEnabled()
}

// Create 新服务排在末尾，默认启用
func (s *OfferingService) Create(input OfferingInput) (*models.Offering, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	order, err := nextDisplayOrder(s.repo.MaxDisplayOrder)
	if err != nil {
		return nil, err
	}
	offering := &models.Offering{
		Title:        title,
		Description:  strings.TrimSpace(input.Description),
		IconName:     strings.TrimSpace(input.IconName),
		DisplayOrder: order,
		IsActive:     input.IsActive == nil || *input.IsActive,
	}
	if err := s.repo.Create(offering); err != nil {
		return nil, err
	}
	invalidateSection(cache.SectionServices)
	return offering, nil
}

// Update 更新服务
func (s *OfferingService) Update(id uint, input OfferingInput) (*models.Offering, error) {
	offering, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if offering == nil {
		return nil, ErrNotFound
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	offering.Title = title
	offering.Description = strings.TrimSpace(input.Description)
	offering.IconName = strings.TrimSpace(input.IconName)
	if input.IsActive != nil {
		offering.IsActive = *input.IsActive
	}
	if err := s.repo.Update(offering); err != nil {
		return nil, err
	}
	invalidateSection(cache.SectionServices)
	return offering, nil
}

// ToggleActive 切换启用状态
func (s *OfferingService) ToggleActive(id uint) (*models.Offering, error) {
	offering, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if offering == nil {
		return nil, ErrNotFound
	}
	offering.IsActive = !offering.IsActive
	if err := s.repo.Update(offering); err != nil {
		return nil, err
	}
	invalidateSection(cache.SectionServices)
	return offering, nil
}

// Remove 软删除服务
func (s *OfferingService) Remove(id, actorID uint) error {
	return softRemove(s.repo.MarkDeleted, id, actorID, cache.SectionServices)
}

// Reorder 重写展示顺序
func (s *OfferingService) Reorder(ids []uint) error {
	return reorder(s.repo.Reorder, ids, cache.SectionServices)
}

// LogoInput 客户/合作伙伴参数
type LogoInput struct {
	Name       string
	LogoURL    string
	WebsiteURL *string
}

// ClientService 客户服务
type ClientService struct {
	repo repository.ClientRepository
}

// NewClientService 创建客户服务
func NewClientService(repo repository.ClientRepository) *ClientService {
	return &ClientService{repo: repo}
}

// List 按展示顺序列出客户
func (s *ClientService) List() ([]models.Client, error) {
	return s.repo.ListActive()
}

// Create 创建客户
func (s *ClientService) Create(input LogoInput) (*models.Client, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	order, err := nextDisplayOrder(s.repo.MaxDisplayOrder)
	if err != nil {
		return nil, err
	}
	client := &models.Client{
		Name:         name,
		LogoURL:      strings.TrimSpace(input.LogoURL),
		WebsiteURL:   optionalString(input.WebsiteURL),
		DisplayOrder: order,
	}
	if err := s.repo.Create(client); err != nil {
		return nil, err
	}
	invalidateSection(cache.SectionClients)
	return client, nil
}

// Update 更新客户
func (s *ClientService) Update(id uint, input LogoInput) (*models.Client, error) {
	client, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrNotFound
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	client.Name = name
	client.LogoURL = strings.TrimSpace(input.LogoURL)
	client.WebsiteURL = optionalString(input.WebsiteURL)
	if err := s.repo.Update(client); err != nil {
		return nil, err
	}
	invalidateSection(cache.SectionClients)
	return client, nil
}

// Remove 软删除客户
func (s *ClientService) Remove(id, actorID uint) error {
	return softRemove(s.repo.MarkDeleted, id, actorID, cache.SectionClients)
}

// Reorder 重写展示顺序
func (s *ClientService) Reorder(ids []uint) error {
	return reorder(s.repo.Reorder, ids, cache.SectionClients)
}

// AllianceService 合作伙伴服务
type AllianceService struct {
	repo repository.AllianceRepository
}

// NewAllianceService 创建合作伙伴服务
func NewAllianceService(repo repository.AllianceRepository) *AllianceService {
	return &AllianceService{repo: repo}
}

// List 按展示顺序列出合作伙伴
func (s *AllianceService) List() ([]models.Alliance, error) {
	return s.repo.ListActive()
}

// Create 创建合作伙伴
func (s *AllianceService) Create(input LogoInput) (*models.Alliance, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	order, err := nextDisplayOrder(s.repo.MaxDisplayOrder)
	if err != nil {
		return nil, err
	}
	alliance := &models.Alliance{
		Name:         name,
		LogoURL:      strings.TrimSpace(input.LogoURL),
		WebsiteURL:   optionalString(input.WebsiteURL),
		DisplayOrder: order,
	}
	if err := s.repo.Create(alliance); err != nil {
		return nil, err
	}
	invalidateSection(cache.SectionAlliances)
	return alliance, nil
}

// Update 更新合作伙伴
func (s *AllianceService) Update(id uint, input LogoInput) (*models.Alliance, error) {
	alliance, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if alliance == nil {
		return nil, ErrNotFound
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	alliance.Name = name
	alliance.LogoURL = strings.TrimSpace(input.LogoURL)
	alliance.WebsiteURL = optionalString(input.WebsiteURL)
	if err := s.repo.Update(alliance); err != nil {
		return nil, err
	}
	invalidateSection(cache.SectionAlliances)
	return alliance, nil
}

// Remove 软删除合作伙伴
func (s *AllianceService) Remove(id, actorID uint) error {
	return softRemove(s.repo.MarkDeleted, id, actorID, cache.SectionAlliances)
}

// Reorder 重写展示顺序
func (s *AllianceService) Reorder(ids []uint) error {
	return reorder(s.repo.Reorder, ids, cache.SectionAlliances)
}
