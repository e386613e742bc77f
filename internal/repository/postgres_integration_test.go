//go:build integration
// +build integration

package repository

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/zephyra-admin/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgresIntegrationDB 初始化 PostgreSQL 集成测试数据库。
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}

	all := models.AllModels()
	_ = db.Migrator().DropTable(all...)
	if err := db.AutoMigrate(all...); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(all...)
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestPostgresProjectPurgeCascades(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	projects := NewProjectRepository(db)
	achievements := NewProjectAchievementRepository(db)
	trash := NewTrashRepository(db)

	project := &models.Project{Title: "Solar", Slug: "solar"}
	if err := projects.Create(project); err != nil {
		t.Fatalf("create project failed: %v", err)
	}
	if err := achievements.Replace(project.ID, []string{"A", "B"}); err != nil {
		t.Fatalf("replace achievements failed: %v", err)
	}
	if ok, err := projects.MarkDeleted(project.ID, 1, time.Now().UTC()); err != nil || !ok {
		t.Fatalf("mark deleted failed: ok=%v err=%v", ok, err)
	}

	ok, err := trash.Purge(&models.Project{}, project.ID, Cascade{Model: &models.ProjectAchievement{}, ForeignKey: "project_id"})
	if err != nil || !ok {
		t.Fatalf("purge failed: ok=%v err=%v", ok, err)
	}
	left, err := achievements.ListByProject(project.ID)
	if err != nil {
		t.Fatalf("list achievements failed: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("expected achievements purged, got %d", len(left))
	}
}

func TestPostgresNewsletterSearchIsCaseInsensitive(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewNewsletterRepository(db)
	if err := repo.Create(&models.NewsletterSubscriber{Email: "ana@green.io", SubscribedAt: time.Now().UTC(), IsActive: true}); err != nil {
		t.Fatalf("create subscriber failed: %v", err)
	}
	rows, total, err := repo.List(NewsletterListFilter{Page: 1, Search: "GREEN"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("want 1 got total=%d len=%d", total, len(rows))
	}
}
