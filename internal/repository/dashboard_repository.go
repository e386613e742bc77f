package repository

import (
	"github.com/zephyra-admin/internal/constants"
	"github.com/zephyra-admin/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository 仪表盘聚合查询接口
// 说明：仅聚合统计数据，不承载业务规则。
type DashboardRepository interface {
	GetContentCounts() (DashboardContentRow, error)
}

// DashboardContentRow 内容统计原始结果
type DashboardContentRow struct {
	BlogTotal        int64
	BlogPublished    int64
	BlogDrafts       int64
	TeamMembers      int64
	Projects         int64
	FeaturedProjects int64
	Services         int64
	Clients          int64
	Alliances        int64
	NewsletterTotal  int64
	NewsletterActive int64
}

// GormDashboardRepository GORM 实现
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository 创建仪表盘仓库
func NewDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// GetContentCounts 汇总各内容表的活跃记录数
func (r *GormDashboardRepository) GetContentCounts() (DashboardContentRow, error) {
	result := DashboardContentRow{}

	counts := []struct {
		query *gorm.DB
		dest  *int64
	}{
		{r.db.Model(&models.BlogPost{}), &result.BlogTotal},
		{r.db.Model(&models.BlogPost{}).Where("status = ?", constants.PostStatusPublished), &result.BlogPublished},
		{r.db.Model(&models.BlogPost{}).Where("status = ?", constants.PostStatusDraft), &result.BlogDrafts},
		{r.db.Model(&models.TeamMember{}), &result.TeamMembers},
		{r.db.Model(&models.Project{}), &result.Projects},
		{r.db.Model(&models.Project{}).Where("is_featured = ?", true), &result.FeaturedProjects},
		{r.db.Model(&models.Offering{}), &result.Services},
		{r.db.Model(&models.Client{}), &result.Clients},
		{r.db.Model(&models.Alliance{}), &result.Alliances},
		{r.db.Model(&models.NewsletterSubscriber{}), &result.NewsletterTotal},
		{r.db.Model(&models.NewsletterSubscriber{}).Where("is_active = ?", true), &result.NewsletterActive},
	}
	for _, item := range counts {
		if err := item.query.Count(item.dest).Error; err != nil {
			return result, err
		}
	}
	return result, nil
}
