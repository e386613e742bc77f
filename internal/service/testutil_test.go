package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/zephyra-admin/internal/config"
	"github.com/zephyra-admin/internal/constants"
	"github.com/zephyra-admin/internal/models"
	"github.com/zephyra-admin/internal/repository"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func openServiceDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate models failed: %v", err)
	}
	return db
}

type serviceFixture struct {
	db         *gorm.DB
	cfg        *config.Config
	auth       *AuthService
	admins     *AdminUserService
	posts      *BlogPostService
	members    *TeamMemberService
	projects   *ProjectService
	offerings  *OfferingService
	clients    *ClientService
	alliances  *AllianceService
	newsletter *NewsletterService
	trash      *TrashService
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	db := openServiceDB(t)
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.ExpireMinutes = 30

	adminRepo := repository.NewAdminUserRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	postRepo := repository.NewBlogPostRepository(db)
	auth := NewAuthService(cfg, adminRepo, repository.NewPasswordResetTokenRepository(db), nil, NewEmailService(&cfg.Email))

	return &serviceFixture{
		db:         db,
		cfg:        cfg,
		auth:       auth,
		admins:     NewAdminUserService(adminRepo, auth, nil),
		posts:      NewBlogPostService(postRepo, memberRepo),
		members:    NewTeamMemberService(memberRepo, postRepo),
		projects:   NewProjectService(repository.NewProjectRepository(db), repository.NewProjectAchievementRepository(db)),
		offerings:  NewOfferingService(repository.NewOfferingRepository(db)),
		clients:    NewClientService(repository.NewClientRepository(db)),
		alliances:  NewAllianceService(repository.NewAllianceRepository(db)),
		newsletter: NewNewsletterService(repository.NewNewsletterRepository(db)),
		trash:      NewTrashService(repository.NewTrashRepository(db), adminRepo, nil, 30),
	}
}

// seedAdmin 直接写库，跳过服务层的权限校验
func (f *serviceFixture) seedAdmin(t *testing.T, email, name, password, role string) *models.AdminUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	admin := &models.AdminUser{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := f.db.Create(admin).Error; err != nil {
		t.Fatalf("seed admin failed: %v", err)
	}
	return admin
}

func (f *serviceFixture) superAdmin(t *testing.T) (*models.AdminUser, Actor) {
	t.Helper()
	admin := f.seedAdmin(t, "root@zephyra.es", "Root", "Sup3r-secret", constants.AdminRoleSuperAdmin)
	return admin, Actor{ID: admin.ID, Role: admin.Role}
}

// backdate 将已删除记录的删除时间移到 age 之前
func (f *serviceFixture) backdate(t *testing.T, model interface{}, id uint, age time.Duration) {
	t.Helper()
	err := f.db.Unscoped().Model(model).Where("id = ?", id).
		UpdateColumn("deleted_at", time.Now().UTC().Add(-age)).Error
	if err != nil {
		t.Fatalf("backdate failed: %v", err)
	}
}

func (f *serviceFixture) countUnscoped(t *testing.T, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	tx := f.db.Unscoped().Model(model)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	if err := tx.Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return count
}

const day = 24 * time.Hour
