package service

import (
	"context"
	"net/mail"
	"strings"

	"github.com/zephyra-admin/internal/cache"
	"github.com/zephyra-admin/internal/constants"
	"github.com/zephyra-admin/internal/logger"
	"github.com/zephyra-admin/internal/models"
	"github.com/zephyra-admin/internal/repository"
)

// AdminUserService 管理员账号管理（仅超级管理员）
type AdminUserService struct {
	repo   repository.AdminUserRepository
	auth   *AuthService
	access AdminAccessSync
}

// NewAdminUserService 创建管理员服务
func NewAdminUserService(repo repository.AdminUserRepository, auth *AuthService, access AdminAccessSync) *AdminUserService {
	return &AdminUserService{repo: repo, auth: auth, access: access}
}

// CreateAdminUserInput 创建管理员参数
type CreateAdminUserInput struct {
	Email     string
	Name      string
	Password  string
	Role      string
	AvatarURL string
}

// UpdateAdminUserInput 更新管理员参数，nil 表示不修改
type UpdateAdminUserInput struct {
	Email     *string
	Name      *string
	Password  *string
	Role      *string
	AvatarURL *string
	IsActive  *bool
}

func normalizeAdminRole(role string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "", constants.AdminRoleAdmin:
		return constants.AdminRoleAdmin, nil
	case constants.AdminRoleSuperAdmin:
		return constants.AdminRoleSuperAdmin, nil
	default:
		return "", ErrInvalidRole
	}
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// List 活跃管理员列表
func (s *AdminUserService) List(actor Actor) ([]models.AdminUser, error) {
	if !actor.IsSuperAdmin() {
		return nil, ErrSuperAdminRequired
	}
	return s.repo.List()
}

// Create 创建管理员，邮箱唯一（含回收站）
func (s *AdminUserService) Create(actor Actor, input CreateAdminUserInput) (*models.AdminUser, error) {
	if !actor.IsSuperAdmin() {
		return nil, ErrSuperAdminRequired
	}
	email := normalizeEmail(input.Email)
	if !validEmail(email) {
		return nil, ErrInvalidEmail
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	role, err := normalizeAdminRole(input.Role)
	if err != nil {
		return nil, err
	}
	if err := s.auth.ValidatePassword(input.Password); err != nil {
		return nil, err
	}
	exists, err := s.repo.EmailExists(email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}
	hash, err := s.auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.AdminUser{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
		AvatarURL:    strings.TrimSpace(input.AvatarURL),
		IsActive:     true,
	}
	if err := s.repo.Create(admin); err != nil {
		return nil, conflictOr(err, ErrEmailExists)
	}
	s.syncRole(admin)
	return admin, nil
}

// Update 更新管理员，不允许修改自己的角色
func (s *AdminUserService) Update(actor Actor, id uint, input UpdateAdminUserInput) (*models.AdminUser, error) {
	if !actor.IsSuperAdmin() {
		return nil, ErrSuperAdminRequired
	}
	admin, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrNotFound
	}

	revoke := false
	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		if !validEmail(email) {
			return nil, ErrInvalidEmail
		}
		if email != admin.Email {
			exists, err := s.repo.EmailExists(email, admin.ID)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, ErrEmailExists
			}
			admin.Email = email
		}
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		admin.Name = name
	}
	if input.Role != nil {
		role, err := normalizeAdminRole(*input.Role)
		if err != nil {
			return nil, err
		}
		if role != admin.Role {
			if actor.ID == admin.ID {
				return nil, ErrCannotChangeOwnRole
			}
			admin.Role = role
		}
	}
	if input.AvatarURL != nil {
		admin.AvatarURL = strings.TrimSpace(*input.AvatarURL)
	}
	if input.IsActive != nil && *input.IsActive != admin.IsActive {
		if actor.ID == admin.ID && !*input.IsActive {
			return nil, ErrCannotDeleteSelf
		}
		admin.IsActive = *input.IsActive
		revoke = !admin.IsActive
	}
	if input.Password != nil && *input.Password != "" {
		if err := s.auth.ValidatePassword(*input.Password); err != nil {
			return nil, err
		}
		hash, err := s.auth.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = hash
		revoke = true
	}
	if revoke {
		now := nowUTC()
		admin.TokenVersion++
		admin.TokenInvalidBefore = &now
	}

	if err := s.repo.Update(admin); err != nil {
		return nil, conflictOr(err, ErrEmailExists)
	}
	_ = cache.SetAdminAuthState(context.Background(), cache.BuildAdminAuthState(admin))
	s.syncRole(admin)
	return admin, nil
}

// Remove 软删除管理员并撤销角色绑定，不能删除自己
func (s *AdminUserService) Remove(actor Actor, id uint) error {
	if !actor.IsSuperAdmin() {
		return ErrSuperAdminRequired
	}
	if actor.ID == id {
		return ErrCannotDeleteSelf
	}
	deleted, err := s.repo.MarkDeleted(id, actor.ID, nowUTC())
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	_ = cache.DelAdminAuthState(context.Background(), id)
	if s.access != nil {
		if err := s.access.RemoveAdmin(id); err != nil {
			logger.Warnw("admin_role_revoke_failed", "admin_id", id, "error", err)
		}
	}
	return nil
}

func (s *AdminUserService) syncRole(admin *models.AdminUser) {
	if s.access == nil {
		return
	}
	if err := s.access.SyncAdminRole(admin.ID, admin.Role); err != nil {
		logger.Warnw("admin_role_sync_failed", "admin_id", admin.ID, "role", admin.Role, "error", err)
	}
}
