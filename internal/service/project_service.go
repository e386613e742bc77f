package service

import (
	"strings"

	"github.com/zephyra-admin/internal/cache"
	"github.com/zephyra-admin/internal/models"
	"github.com/zephyra-admin/internal/repository"
)

// ProjectService 项目案例与成果服务
type ProjectService struct {
	repo            repository.ProjectRepository
	achievementRepo repository.ProjectAchievementRepository
}

// NewProjectService 创建项目服务
func NewProjectService(repo repository.ProjectRepository, achievementRepo repository.ProjectAchievementRepository) *ProjectService {
	return &ProjectService{repo: repo, achievementRepo: achievementRepo}
}

// ProjectInput 项目参数；Achievements 非 nil 时整体替换
type ProjectInput struct {
	Title        string
	Slug         string
	Description  string
	Excerpt      string
	ImageURL     string
	IsFeatured   *bool
	Achievements []string
}

// List 后台列表（含成果）
func (s *ProjectService) List() ([]models.Project, error) {
	return s.repo.ListActive()
}

// ListFeatured 精选项目
func (s *ProjectService) ListFeatured() ([]models.Project, error) {
	return s.repo.ListFeatured()
}

// GetBySlug 前台项目详情
func (s *ProjectService) GetBySlug(slug string) (*models.Project, error) {
	project, err := s.repo.GetBySlug(strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}
	return project, nil
}

// Create 创建项目及其成果
func (s *ProjectService) Create(input ProjectInput) (*models.Project, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	base := GenerateSlug(input.Slug)
	if base == "" {
		base = GenerateSlug(title)
	}
	slug, err := uniqueSlug(base, 0, s.repo.SlugExists)
	if err != nil {
		return nil, err
	}
	order, err := nextDisplayOrder(s.repo.MaxDisplayOrder)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		Title:        title,
		Slug:         slug,
		Description:  input.Description,
		Excerpt:      strings.TrimSpace(input.Excerpt),
		ImageURL:     strings.TrimSpace(input.ImageURL),
		DisplayOrder: order,
		IsFeatured:   input.IsFeatured != nil && *input.IsFeatured,
	}
	if err := s.repo.Create(project); err != nil {
		return nil, conflictOr(err, ErrSlugExists)
	}
	if descriptions := cleanAchievements(input.Achievements); len(descriptions) > 0 {
		if err := s.achievementRepo.Replace(project.ID, descriptions); err != nil {
			return nil, err
		}
	}
	if err := s.loadAchievements(project); err != nil {
		return nil, err
	}
	invalidateSection(cache.SectionProjects)
	return project, nil
}

// Update 更新项目，slug 冲突返回 Conflict
func (s *ProjectService) Update(id uint, input ProjectInput) (*models.Project, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if slug := GenerateSlug(input.Slug); slug != "" && slug != project.Slug {
		exists, err := s.repo.SlugExists(slug, project.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrSlugExists
		}
		project.Slug = slug
	}
	project.Title = title
	project.Description = input.Description
	project.Excerpt = strings.TrimSpace(input.Excerpt)
	project.ImageURL = strings.TrimSpace(input.ImageURL)
	if input.IsFeatured != nil {
		project.IsFeatured = *input.IsFeatured
	}
	project.Achievements = nil

	if err := s.repo.Update(project); err != nil {
		return nil, conflictOr(err, ErrSlugExists)
	}
	if input.Achievements != nil {
		if err := s.achievementRepo.Replace(project.ID, cleanAchievements(input.Achievements)); err != nil {
			return nil, err
		}
	}
	if err := s.loadAchievements(project); err != nil {
		return nil, err
	}
	invalidateSection(cache.SectionProjects)
	return project, nil
}

// ToggleFeatured 切换精选状态
func (s *ProjectService) ToggleFeatured(id uint) (*models.Project, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}
	project.IsFeatured = !project.IsFeatured
	if err := s.repo.Update(project); err != nil {
		return nil, err
	}
	invalidateSection(cache.SectionProjects)
	return project, nil
}

// Remove 软删除项目，成果保持挂载
func (s *ProjectService) Remove(id, actorID uint) error {
	return softRemove(s.repo.MarkDeleted, id, actorID, cache.SectionProjects)
}

// Reorder 重写项目展示顺序
func (s *ProjectService) Reorder(ids []uint) error {
	return reorder(s.repo.Reorder, ids, cache.SectionProjects)
}

// AddAchievement 为活跃项目追加成果
func (s *ProjectService) AddAchievement(projectID uint, description string) (*models.ProjectAchievement, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrValidation
	}
	project, err := s.repo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	order, err := nextDisplayOrder(func() (int, error) {
		return s.achievementRepo.MaxDisplayOrder(projectID)
	})
	if err != nil {
		return nil, err
	}
	item := &models.ProjectAchievement{
		ProjectID:    projectID,
		Description:  description,
		DisplayOrder: order,
	}
	if err := s.achievementRepo.Create(item); err != nil {
		return nil, err
	}
	invalidateSection(cache.SectionProjects)
	return item, nil
}

// UpdateAchievement 修改成果描述
func (s *ProjectService) UpdateAchievement(id uint, description string) (*models.ProjectAchievement, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrValidation
	}
	item, err := s.achievementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	item.Description = description
	if err := s.achievementRepo.Update(item); err != nil {
		return nil, err
	}
	invalidateSection(cache.SectionProjects)
	return item, nil
}

// DeleteAchievement 物理删除成果
func (s *ProjectService) DeleteAchievement(id uint) error {
	item, err := s.achievementRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	if err := s.achievementRepo.Delete(id); err != nil {
		return err
	}
	invalidateSection(cache.SectionProjects)
	return nil
}

// ReorderAchievements 仅重排属于该项目的成果
func (s *ProjectService) ReorderAchievements(projectID uint, ids []uint) error {
	items, err := s.achievementRepo.ListByProject(projectID)
	if err != nil {
		return err
	}
	owned := make(map[uint]struct{}, len(items))
	for _, item := range items {
		owned[item.ID] = struct{}{}
	}
	filtered := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := owned[id]; ok {
			filtered = append(filtered, id)
		}
	}
	if err := s.achievementRepo.Reorder(filtered); err != nil {
		return err
	}
	invalidateSection(cache.SectionProjects)
	return nil
}

func (s *ProjectService) loadAchievements(project *models.Project) error {
	items, err := s.achievementRepo.ListByProject(project.ID)
	if err != nil {
		return err
	}
	project.Achievements = items
	return nil
}

func cleanAchievements(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
