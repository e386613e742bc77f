package cache

import (
	"context"
	"testing"
	"time"

	"github.com/zephyra-admin/internal/config"
	"github.com/zephyra-admin/internal/models"
)

func TestDisabledCacheDegradesToMiss(t *testing.T) {
	if err := InitRedis(&config.RedisConfig{Enabled: false}); err != nil {
		t.Fatalf("init disabled redis failed: %v", err)
	}
	ctx := context.Background()
	if err := SetJSON(ctx, "k", map[string]int{"a": 1}, time.Minute); err != nil {
		t.Fatalf("set on disabled cache must be a no-op, got %v", err)
	}
	var dest map[string]int
	hit, err := GetJSON(ctx, "k", &dest)
	if err != nil || hit {
		t.Fatalf("disabled cache must miss, hit=%v err=%v", hit, err)
	}
	if err := InvalidatePublicContent(ctx, SectionPosts, "list"); err != nil {
		t.Fatalf("invalidate on disabled cache failed: %v", err)
	}
}

func TestBuildAdminAuthState(t *testing.T) {
	before := time.Unix(1700000000, 0)
	state := BuildAdminAuthState(&models.AdminUser{
		ID:                 9,
		Email:              "ops@zephyra.es",
		Role:               "admin",
		IsActive:           true,
		TokenVersion:       3,
		TokenInvalidBefore: &before,
	})
	if state.AdminID != 9 || state.TokenVersion != 3 || state.TokenInvalidBefore != 1700000000 {
		t.Fatalf("unexpected state: %+v", state)
	}
	if BuildAdminAuthState(nil) != nil {
		t.Fatalf("nil admin must yield nil state")
	}
}

func TestPublicContentKey(t *testing.T) {
	if got := publicContentKey(SectionProjects, "featured"); got != "public:projects:featured" {
		t.Fatalf("unexpected key %s", got)
	}
	if got := publicContentKey(SectionTeam, ""); got != "public:team" {
		t.Fatalf("unexpected key %s", got)
	}
}
