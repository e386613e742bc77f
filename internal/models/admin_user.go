package models

import "time"

// AdminUser 后台管理员表
type AdminUser struct {
	ID                 uint       `gorm:"primarykey" json:"id"`                     // 主键
	Email              string     `gorm:"uniqueIndex;not null" json:"email"`        // 登录邮箱（小写）
	Name               string     `gorm:"not null" json:"name"`                     // 显示名称
	PasswordHash       string     `gorm:"not null" json:"-"`                        // 密码哈希
	Role               string     `gorm:"not null;default:admin;index" json:"role"` // 角色 superadmin/admin
	AvatarURL          string     `json:"avatar_url"`                               // 头像
	IsActive           bool       `gorm:"not null;index" json:"is_active"`          // 是否启用
	LastLoginAt        *time.Time `json:"last_login_at"`                            // 最后登录时间
	TokenVersion       uint64     `gorm:"not null;default:0" json:"-"`              // Token 版本
	TokenInvalidBefore *time.Time `json:"-"`                                        // 该时间点前签发的 Token 失效
	CreatedAt          time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	SoftDelete
}

// TableName 指定表名
func (AdminUser) TableName() string {
	return "admin_users"
}

// TrashLabel 回收站展示名称
func (a AdminUser) TrashLabel() string {
	return a.Name + " (" + a.Email + ")"
}

// PasswordResetToken 找回密码令牌（一次性）
type PasswordResetToken struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	AdminUserID uint       `gorm:"not null;index" json:"admin_user_id"`
	TokenHash   string     `gorm:"uniqueIndex;size:64;not null" json:"-"`
	ExpiresAt   time.Time  `gorm:"not null;index" json:"expires_at"`
	UsedAt      *time.Time `json:"used_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TableName 指定表名
func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}
