package repository

import (
	"errors"
	"time"

	"github.com/zephyra-admin/internal/models"

	"gorm.io/gorm"
)

// ProjectRepository 项目数据访问接口
type ProjectRepository interface {
	ListActive() ([]models.Project, error)
	ListFeatured() ([]models.Project, error)
	GetByID(id uint) (*models.Project, error)
	GetBySlug(slug string) (*models.Project, error)
	SlugExists(slug string, excludeID uint) (bool, error)
	Create(project *models.Project) error
	Update(project *models.Project) error
	MaxDisplayOrder() (int, error)
	Reorder(ids []uint) error
	MarkDeleted(id, actorID uint, at time.Time) (bool, error)
	CountActive() (int64, error)
}

// GormProjectRepository GORM 实现
type GormProjectRepository struct {
	orderedStore[models.Project]
}

// NewProjectRepository 创建项目仓库
func NewProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{orderedStore: orderedStore[models.Project]{softDeleteStore[models.Project]{db: db}}}
}

func preloadAchievements(db *gorm.DB) *gorm.DB {
	return db.Order("display_order ASC, id ASC")
}

// ListActive 按展示顺序列出活跃项目（含成果）
func (r *GormProjectRepository) ListActive() ([]models.Project, error) {
	projects := make([]models.Project, 0)
	if err := r.db.Preload("Achievements", preloadAchievements).Order("display_order ASC, id ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ListFeatured 精选项目
func (r *GormProjectRepository) ListFeatured() ([]models.Project, error) {
	projects := make([]models.Project, 0)
	err := r.db.Preload("Achievements", preloadAchievements).
		Where("is_featured = ?", true).
		Order("display_order ASC, id ASC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// GetBySlug 根据 slug 获取活跃项目（含成果）
func (r *GormProjectRepository) GetBySlug(slug string) (*models.Project, error) {
	var project models.Project
	if err := r.db.Preload("Achievements", preloadAchievements).Where("slug = ?", slug).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

// SlugExists slug 是否已被占用（含回收站）
func (r *GormProjectRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	return slugTaken(r.db, &models.Project{}, slug, excludeID)
}

// ProjectAchievementRepository 项目成果数据访问接口
type ProjectAchievementRepository interface {
	ListByProject(projectID uint) ([]models.ProjectAchievement, error)
	GetByID(id uint) (*models.ProjectAchievement, error)
	MaxDisplayOrder(projectID uint) (int, error)
	Create(item *models.ProjectAchievement) error
	Update(item *models.ProjectAchievement) error
	Delete(id uint) error
	DeleteByProject(projectID uint) (int64, error)
	Replace(projectID uint, descriptions []string) error
	Reorder(ids []uint) error
}

// GormProjectAchievementRepository GORM 实现
type GormProjectAchievementRepository struct {
	db *gorm.DB
}

// NewProjectAchievementRepository 创建项目成果仓库
func NewProjectAchievementRepository(db *gorm.DB) *GormProjectAchievementRepository {
	return &GormProjectAchievementRepository{db: db}
}

// ListByProject 按展示顺序获取项目成果
func (r *GormProjectAchievementRepository) ListByProject(projectID uint) ([]models.ProjectAchievement, error) {
	items := make([]models.ProjectAchievement, 0)
	if err := r.db.Where("project_id = ?", projectID).Order("display_order ASC, id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID 根据 ID 获取成果
func (r *GormProjectAchievementRepository) GetByID(id uint) (*models.ProjectAchievement, error) {
	var item models.ProjectAchievement
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// MaxDisplayOrder 项目内最大展示顺序，空时返回 -1
func (r *GormProjectAchievementRepository) MaxDisplayOrder(projectID uint) (int, error) {
	return maxDisplayOrder(r.db.Model(&models.ProjectAchievement{}).Where("project_id = ?", projectID))
}

// Create 创建成果
func (r *GormProjectAchievementRepository) Create(item *models.ProjectAchievement) error {
	return r.db.Create(item).Error
}

// Update 更新成果，目标已删除时返回 ErrNotFound
func (r *GormProjectAchievementRepository) Update(item *models.ProjectAchievement) error {
	return updateExisting(r.db, item)
}

// Delete 物理删除成果
func (r *GormProjectAchievementRepository) Delete(id uint) error {
	return r.db.Delete(&models.ProjectAchievement{}, id).Error
}

// DeleteByProject 删除项目下全部成果
func (r *GormProjectAchievementRepository) DeleteByProject(projectID uint) (int64, error) {
	result := r.db.Where("project_id = ?", projectID).Delete(&models.ProjectAchievement{})
	return result.RowsAffected, result.Error
}

// Replace 事务内整体替换项目成果，顺序为 0..n-1
func (r *GormProjectAchievementRepository) Replace(projectID uint, descriptions []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectAchievement{}).Error; err != nil {
			return err
		}
		for i, description := range descriptions {
			item := &models.ProjectAchievement{
				ProjectID:    projectID,
				Description:  description,
				DisplayOrder: i,
			}
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Reorder 按给定顺序写入 0..n-1
func (r *GormProjectAchievementRepository) Reorder(ids []uint) error {
	return reorderRows(r.db, &models.ProjectAchievement{}, ids)
}
