package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/zephyra-admin/internal/constants"
	"github.com/zephyra-admin/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate models failed: %v", err)
	}
	return db
}

func TestGetContentCountsSkipsTrashedRows(t *testing.T) {
	db := openTestDB(t)
	repo := NewDashboardRepository(db)
	now := time.Now().UTC()

	author := &models.TeamMember{Name: "Lucía", IsVisible: true}
	if err := db.Create(author).Error; err != nil {
		t.Fatalf("create author failed: %v", err)
	}
	posts := []models.BlogPost{
		{Title: "A", Slug: "a", AuthorID: author.ID, Status: constants.PostStatusPublished, PublishedAt: &now},
		{Title: "B", Slug: "b", AuthorID: author.ID, Status: constants.PostStatusDraft},
		{Title: "C", Slug: "c", AuthorID: author.ID, Status: constants.PostStatusDraft},
	}
	if err := db.Create(&posts).Error; err != nil {
		t.Fatalf("create posts failed: %v", err)
	}
	if _, err := NewBlogPostRepository(db).MarkDeleted(posts[2].ID, 1, now); err != nil {
		t.Fatalf("mark deleted failed: %v", err)
	}
	if err := db.Create(&models.NewsletterSubscriber{Email: "x@y.z", SubscribedAt: now, IsActive: false}).Error; err != nil {
		t.Fatalf("create subscriber failed: %v", err)
	}

	row, err := repo.GetContentCounts()
	if err != nil {
		t.Fatalf("get counts failed: %v", err)
	}
	if row.BlogTotal != 2 || row.BlogPublished != 1 || row.BlogDrafts != 1 {
		t.Fatalf("unexpected blog counts: %+v", row)
	}
	if row.TeamMembers != 1 {
		t.Fatalf("team members want 1 got %d", row.TeamMembers)
	}
	if row.NewsletterTotal != 1 || row.NewsletterActive != 0 {
		t.Fatalf("unexpected newsletter counts: %+v", row)
	}
}
