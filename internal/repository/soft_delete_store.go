package repository

import (
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound 更新目标不存在或已进入回收站
var ErrNotFound = errors.New("not found")

// updateExisting 按主键更新仍存在的记录，删除标记与创建时间不参与写入
// 软删除作用域会附加 deleted_at IS NULL，未命中时返回 ErrNotFound 而不是插入
func updateExisting(db *gorm.DB, row interface{}) error {
	result := db.Model(row).
		Select("*").
		Omit(clause.Associations, "created_at", "deleted_at", "deleted_by").
		Updates(row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// softDeleteStore 可回收实体的通用读写（活跃记录过滤由 gorm.DeletedAt 默认作用域提供）
type softDeleteStore[T any] struct {
	db *gorm.DB
}

// GetByID 获取活跃记录，不存在或已删除时返回 nil
func (s softDeleteStore[T]) GetByID(id uint) (*T, error) {
	var row T
	if err := s.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// GetAnyByID 获取记录（含回收站）
func (s softDeleteStore[T]) GetAnyByID(id uint) (*T, error) {
	var row T
	if err := s.db.Unscoped().First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Create 创建记录
func (s softDeleteStore[T]) Create(row *T) error {
	return s.db.Create(row).Error
}

// Update 更新活跃记录，目标已删除时返回 ErrNotFound
func (s softDeleteStore[T]) Update(row *T) error {
	return updateExisting(s.db, row)
}

// CountActive 活跃记录数
func (s softDeleteStore[T]) CountActive() (int64, error) {
	var count int64
	if err := s.db.Model(new(T)).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// MarkDeleted 一次 UPDATE 写入删除时间与删除人（不触碰 updated_at），目标不存在或已删除时返回 false
func (s softDeleteStore[T]) MarkDeleted(id, actorID uint, at time.Time) (bool, error) {
	result := s.db.Model(new(T)).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"deleted_at": at,
			"deleted_by": actorID,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// orderedStore 带 display_order 字段的实体
type orderedStore[T any] struct {
	softDeleteStore[T]
}

// ListActive 按展示顺序列出活跃记录
func (s orderedStore[T]) ListActive() ([]T, error) {
	rows := make([]T, 0)
	if err := s.db.Order("display_order ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// MaxDisplayOrder 全表（含回收站）最大展示顺序，空表返回 -1
func (s orderedStore[T]) MaxDisplayOrder() (int, error) {
	return maxDisplayOrder(s.db.Unscoped().Model(new(T)))
}

// Reorder 按给定顺序写入 0..n-1，未知 ID 静默跳过
func (s orderedStore[T]) Reorder(ids []uint) error {
	return reorderRows(s.db, new(T), ids)
}

func maxDisplayOrder(query *gorm.DB) (int, error) {
	var maxOrder sql.NullInt64
	if err := query.Select("MAX(display_order)").Row().Scan(&maxOrder); err != nil {
		return 0, err
	}
	if !maxOrder.Valid {
		return -1, nil
	}
	return int(maxOrder.Int64), nil
}

func reorderRows(db *gorm.DB, model interface{}, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for position, id := range ids {
			if err := tx.Model(model).Where("id = ?", id).UpdateColumn("display_order", position).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
