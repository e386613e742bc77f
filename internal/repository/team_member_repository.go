package repository

import (
	"time"

	"github.com/zephyra-admin/internal/models"

	"gorm.io/gorm"
)

// TeamMemberRepository 团队成员数据访问接口
type TeamMemberRepository interface {
	ListActive() ([]models.TeamMember, error)
	ListVisible() ([]models.TeamMember, error)
	GetByID(id uint) (*models.TeamMember, error)
	Create(member *models.TeamMember) error
	Update(member *models.TeamMember) error
	MaxDisplayOrder() (int, error)
	Reorder(ids []uint) error
	MarkDeleted(id, actorID uint, at time.Time) (bool, error)
	CountActive() (int64, error)
}

// GormTeamMemberRepository GORM 实现
type GormTeamMemberRepository struct {
	orderedStore[models.TeamMember]
}

// NewTeamMemberRepository 创建团队成员仓库
func NewTeamMemberRepository(db *gorm.DB) *GormTeamMemberRepository {
	return &GormTeamMemberRepository{orderedStore: orderedStore[models.TeamMember]{softDeleteStore[models.TeamMember]{db: db}}}
}

// ListVisible 公开展示的成员
func (r *GormTeamMemberRepository) ListVisible() ([]models.TeamMember, error) {
	members := make([]models.TeamMember, 0)
	if err := r.db.Where("is_visible = ?", true).Order("display_order ASC, id ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
