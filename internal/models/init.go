package models

import (
	"strings"

	"github.com/zephyra-admin/internal/constants"
	"github.com/zephyra-admin/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultSuperAdminEmail    = "admin@zephyra.local"
	defaultSuperAdminPassword = "admin12345"
	defaultSuperAdminName     = "Administrador"
)

// InitDefaultSuperAdmin 管理员表为空时创建首个超级管理员
func InitDefaultSuperAdmin(email, password, name string) error {
	var count int64
	if err := DB.Unscoped().Model(&AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		email = defaultSuperAdminEmail
	}
	if password == "" {
		password = defaultSuperAdminPassword
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultSuperAdminName
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := AdminUser{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         constants.AdminRoleSuperAdmin,
		IsActive:     true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	if password == defaultSuperAdminPassword {
		logger.Warnw("default_superadmin_created_with_default_password", "email", email)
		logger.Warnw("default_superadmin_password_change_required", "email", email)
	} else {
		logger.Warnw("default_superadmin_created", "email", email, "password_hidden", true)
	}
	return nil
}
