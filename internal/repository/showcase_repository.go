package repository

import (
	"time"

	"github.com/zephyra-admin/internal/models"

	"gorm.io/gorm"
)

// OfferingRepository 服务项目数据访问接口
type OfferingRepository interface {
	ListActive() ([]models.Offering, error)
	ListEnabled() ([]models.Offering, error)
	GetByID(id uint) (*models.Offering, error)
	Create(offering *models.Offering) error
	Update(offering *models.Offering) error
	MaxDisplayOrder() (int, error)
	Reorder(ids []uint) error
	MarkDeleted(id, actorID uint, at time.Time) (bool, error)
	CountActive() (int64, error)
}

// GormOfferingRepository GORM 实现
type GormOfferingRepository struct {
	orderedStore[models.Offering]
}

// NewOfferingRepository 创建服务项目仓库
func NewOfferingRepository(db *gorm.DB) *GormOfferingRepository {
	return &GormOfferingRepository{orderedStore: orderedStore[models.Offering]{softDeleteStore[models.Offering]{db: db}}}
}

// ListEnabled 对外展示的服务
func (r *GormOfferingRepository) ListEnabled() ([]models.Offering, error) {
	rows := make([]models.Offering, 0)
	if err := r.db.Where("is_active = ?", true).Order("display_order ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ClientRepository 客户数据访问接口
type ClientRepository interface {
	ListActive() ([]models.Client, error)
	GetByID(id uint) (*models.Client, error)
	Create(client *models.Client) error
	Update(client *models.Client) error
	MaxDisplayOrder() (int, error)
	Reorder(ids []uint) error
	MarkDeleted(id, actorID uint, at time.Time) (bool, error)
	CountActive() (int64, error)
}

// GormClientRepository GORM 实现
type GormClientRepository struct {
	orderedStore[models.Client]
}

// NewClientRepository 创建客户仓库
func NewClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{orderedStore: orderedStore[models.Client]{softDeleteStore[models.Client]{db: db}}}
}

// AllianceRepository 合作伙伴数据访问接口
type AllianceRepository interface {
	ListActive() ([]models.Alliance, error)
	GetByID(id uint) (*models.Alliance, error)
	Create(alliance *models.Alliance) error
	Update(alliance *models.Alliance) error
	MaxDisplayOrder() (int, error)
	Reorder(ids []uint) error
	MarkDeleted(id, actorID uint, at time.Time) (bool, error)
	CountActive() (int64, error)
}

// GormAllianceRepository GORM 实现
type GormAllianceRepository struct {
	orderedStore[models.Alliance]
}

// NewAllianceRepository 创建合作伙伴仓库
func NewAllianceRepository(db *gorm.DB) *GormAllianceRepository {
	return &GormAllianceRepository{orderedStore: orderedStore[models.Alliance]{softDeleteStore[models.Alliance]{db: db}}}
}
