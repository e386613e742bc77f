package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Cascade 永久删除父记录前需要清理的子表
type Cascade struct {
	Model      interface{}
	ForeignKey string
}

// TrashRepository 回收站数据访问接口，按模型值分派到对应表
type TrashRepository interface {
	ListDeleted(model interface{}, dest interface{}) error
	CountDeleted(model interface{}) (int64, error)
	FindExpiredIDs(model interface{}, cutoff time.Time) ([]uint, error)
	Restore(model interface{}, id uint) (bool, error)
	Purge(model interface{}, id uint, cascades ...Cascade) (bool, error)
}

// GormTrashRepository GORM 实现
type GormTrashRepository struct {
	db *gorm.DB
}

// NewTrashRepository 创建回收站仓库
func NewTrashRepository(db *gorm.DB) *GormTrashRepository {
	return &GormTrashRepository{db: db}
}

var errPurgeTargetMissing = errors.New("purge target missing")

func (r *GormTrashRepository) deleted(model interface{}) *gorm.DB {
	return r.db.Unscoped().Model(model).Where("deleted_at IS NOT NULL")
}

// ListDeleted 已删除记录，按删除时间倒序
func (r *GormTrashRepository) ListDeleted(model interface{}, dest interface{}) error {
	return r.deleted(model).Order("deleted_at DESC, id DESC").Find(dest).Error
}

// CountDeleted 已删除记录数
func (r *GormTrashRepository) CountDeleted(model interface{}) (int64, error) {
	var count int64
	if err := r.deleted(model).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindExpiredIDs 删除时间早于 cutoff 的记录 ID（走 deleted_at 索引）
func (r *GormTrashRepository) FindExpiredIDs(model interface{}, cutoff time.Time) ([]uint, error) {
	ids := make([]uint, 0)
	if err := r.deleted(model).Where("deleted_at < ?", cutoff).Order("id ASC").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Restore 清除删除标记，仅对回收站中的记录生效
func (r *GormTrashRepository) Restore(model interface{}, id uint) (bool, error) {
	result := r.deleted(model).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"deleted_at": nil,
			"deleted_by": nil,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Purge 事务内先清理子表再物理删除回收站中的记录
func (r *GormTrashRepository) Purge(model interface{}, id uint, cascades ...Cascade) (bool, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Unscoped().Model(model).Where("id = ? AND deleted_at IS NOT NULL", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errPurgeTargetMissing
		}
		for _, cascade := range cascades {
			if err := tx.Unscoped().Where(cascade.ForeignKey+" = ?", id).Delete(cascade.Model).Error; err != nil {
				return err
			}
		}
		return tx.Unscoped().Where("id = ?", id).Delete(model).Error
	})
	if errors.Is(err, errPurgeTargetMissing) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
