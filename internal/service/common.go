package service

import (
	"context"
	"strings"
	"time"

	"github.com/zephyra-admin/internal/cache"
	"github.com/zephyra-admin/internal/constants"
	"github.com/zephyra-admin/internal/repository"
)

// Actor 执行操作的管理员，由调用方显式传入
type Actor struct {
	ID   uint
	Role string
}

// IsSuperAdmin 是否超级管理员
func (a Actor) IsSuperAdmin() bool {
	return a.Role == constants.AdminRoleSuperAdmin
}

// invalidateSection 清理公开内容缓存，失败只影响缓存时效
func invalidateSection(section string) {
	if section == "" {
		return
	}
	_ = cache.InvalidatePublicContent(context.Background(), section, publicVariantFeatured)
}

const publicVariantFeatured = "featured"

// conflictOr 唯一索引冲突统一为业务冲突错误
func conflictOr(err, conflict error) error {
	if err != nil && repository.IsUniqueViolation(err) {
		return conflict
	}
	return err
}

// nextDisplayOrder 追加到末尾
func nextDisplayOrder(maxOrder func() (int, error)) (int, error) {
	current, err := maxOrder()
	if err != nil {
		return 0, err
	}
	return current + 1, nil
}

// optionalString 去除首尾空白，空串存为 NULL
func optionalString(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// softRemove 写入删除标记，目标不存在或已在回收站时返回 NotFound
func softRemove(mark func(id, actorID uint, at time.Time) (bool, error), id, actorID uint, section string) error {
	deleted, err := mark(id, actorID, nowUTC())
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	invalidateSection(section)
	return nil
}

func reorder(write func(ids []uint) error, ids []uint, section string) error {
	if err := write(ids); err != nil {
		return err
	}
	invalidateSection(section)
	return nil
}
