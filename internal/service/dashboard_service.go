package service

import (
	"context"
	"time"

	"github.com/zephyra-admin/internal/cache"
	"github.com/zephyra-admin/internal/constants"
	"github.com/zephyra-admin/internal/repository"
)

const dashboardCacheTTL = 45 * time.Second

// DashboardService 仪表盘服务
// 说明：聚合后台首页内容统计与回收站规模。
type DashboardService struct {
	repo  repository.DashboardRepository
	trash *TrashService
}

// NewDashboardService 创建仪表盘服务
func NewDashboardService(repo repository.DashboardRepository, trash *TrashService) *DashboardService {
	return &DashboardService{repo: repo, trash: trash}
}

// DashboardOverview 仪表盘总览
type DashboardOverview struct {
	Blog struct {
		Total     int64 `json:"total"`
		Published int64 `json:"published"`
		Drafts    int64 `json:"drafts"`
	} `json:"blog"`
	TeamMembers      int64 `json:"team_members"`
	Projects         int64 `json:"projects"`
	FeaturedProjects int64 `json:"featured_projects"`
	Services         int64 `json:"services"`
	Clients          int64 `json:"clients"`
	Alliances        int64 `json:"alliances"`
	Newsletter       struct {
		Total  int64 `json:"total"`
		Active int64 `json:"active"`
	} `json:"newsletter"`
	TrashCount  int64  `json:"trash_count"`
	GeneratedAt string `json:"generated_at"`
}

// GetOverview 读取总览，forceRefresh 时跳过缓存
func (s *DashboardService) GetOverview(ctx context.Context, forceRefresh bool) (*DashboardOverview, error) {
	if s == nil || s.repo == nil {
		return &DashboardOverview{}, nil
	}
	if !forceRefresh {
		var cached DashboardOverview
		hit, cacheErr := cache.GetJSON(ctx, constants.CacheKeyDashboardOverview, &cached)
		if cacheErr == nil && hit {
			return &cached, nil
		}
	}

	row, err := s.repo.GetContentCounts()
	if err != nil {
		return nil, err
	}
	overview := &DashboardOverview{
		TeamMembers:      row.TeamMembers,
		Projects:         row.Projects,
		FeaturedProjects: row.FeaturedProjects,
		Services:         row.Services,
		Clients:          row.Clients,
		Alliances:        row.Alliances,
		GeneratedAt:      nowUTC().Format(time.RFC3339),
	}
	overview.Blog.Total = row.BlogTotal
	overview.Blog.Published = row.BlogPublished
	overview.Blog.Drafts = row.BlogDrafts
	overview.Newsletter.Total = row.NewsletterTotal
	overview.Newsletter.Active = row.NewsletterActive

	if s.trash != nil {
		if overview.TrashCount, err = s.trash.Count(); err != nil {
			return nil, err
		}
	}

	_ = cache.SetJSON(ctx, constants.CacheKeyDashboardOverview, overview, dashboardCacheTTL)
	return overview, nil
}
