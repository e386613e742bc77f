package repository

import (
	"errors"
	"time"

	"github.com/zephyra-admin/internal/models"

	"gorm.io/gorm"
)

// AdminUserRepository 管理员数据访问接口
type AdminUserRepository interface {
	GetByID(id uint) (*models.AdminUser, error)
	GetAnyByID(id uint) (*models.AdminUser, error)
	GetByEmail(email string) (*models.AdminUser, error)
	EmailExists(email string, excludeID uint) (bool, error)
	List() ([]models.AdminUser, error)
	ListNamesByIDs(ids []uint) (map[uint]string, error)
	Create(admin *models.AdminUser) error
	Update(admin *models.AdminUser) error
	UpdateLastLogin(id uint, at time.Time) error
	MarkDeleted(id, actorID uint, at time.Time) (bool, error)
	CountActive() (int64, error)
}

// GormAdminUserRepository GORM 实现
type GormAdminUserRepository struct {
	softDeleteStore[models.AdminUser]
}

// NewAdminUserRepository 创建管理员仓库
func NewAdminUserRepository(db *gorm.DB) *GormAdminUserRepository {
	return &GormAdminUserRepository{softDeleteStore: softDeleteStore[models.AdminUser]{db: db}}
}

// GetByEmail 根据邮箱获取活跃管理员
func (r *GormAdminUserRepository) GetByEmail(email string) (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := r.db.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// EmailExists 邮箱是否已被占用（含回收站，与唯一索引一致）
func (r *GormAdminUserRepository) EmailExists(email string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Unscoped().Model(&models.AdminUser{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// List 获取活跃管理员列表
func (r *GormAdminUserRepository) List() ([]models.AdminUser, error) {
	admins := make([]models.AdminUser, 0)
	if err := r.db.Order("id ASC").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

// ListNamesByIDs 批量解析管理员名称（含已删除账号）
func (r *GormAdminUserRepository) ListNamesByIDs(ids []uint) (map[uint]string, error) {
	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	var rows []models.AdminUser
	if err := r.db.Unscoped().Select("id", "name").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}

// UpdateLastLogin 更新最后登录时间
func (r *GormAdminUserRepository) UpdateLastLogin(id uint, at time.Time) error {
	return r.db.Model(&models.AdminUser{}).Where("id = ?", id).UpdateColumn("last_login_at", at).Error
}

// PasswordResetTokenRepository 找回密码令牌数据访问接口
type PasswordResetTokenRepository interface {
	Create(token *models.PasswordResetToken) error
	GetByHash(hash string) (*models.PasswordResetToken, error)
	DeleteByAdmin(adminID uint) error
	MarkUsed(id uint, at time.Time) error
}

// GormPasswordResetTokenRepository GORM 实现
type GormPasswordResetTokenRepository struct {
	db *gorm.DB
}

// NewPasswordResetTokenRepository 创建令牌仓库
func NewPasswordResetTokenRepository(db *gorm.DB) *GormPasswordResetTokenRepository {
	return &GormPasswordResetTokenRepository{db: db}
}

// Create 创建令牌
func (r *GormPasswordResetTokenRepository) Create(token *models.PasswordResetToken) error {
	return r.db.Create(token).Error
}

// GetByHash 根据哈希获取令牌
func (r *GormPasswordResetTokenRepository) GetByHash(hash string) (*models.PasswordResetToken, error) {
	var token models.PasswordResetToken
	if err := r.db.Where("token_hash = ?", hash).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

// DeleteByAdmin 删除管理员的全部令牌
func (r *GormPasswordResetTokenRepository) DeleteByAdmin(adminID uint) error {
	return r.db.Where("admin_user_id = ?", adminID).Delete(&models.PasswordResetToken{}).Error
}

// MarkUsed 标记令牌已使用
func (r *GormPasswordResetTokenRepository) MarkUsed(id uint, at time.Time) error {
	return r.db.Model(&models.PasswordResetToken{}).Where("id = ?", id).Update("used_at", at).Error
}
