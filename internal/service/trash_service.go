package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/zephyra-admin/internal/cache"
	"github.com/zephyra-admin/internal/logger"
	"github.com/zephyra-admin/internal/models"
	"github.com/zephyra-admin/internal/repository"
)

const defaultTrashRetentionDays = 30

// EntityKind 可进入回收站的实体类型
type EntityKind string

const (
	EntityAdminUsers  EntityKind = "adminUsers"
	EntityBlogPosts   EntityKind = "blogPosts"
	EntityTeamMembers EntityKind = "teamMembers"
	EntityProjects    EntityKind = "projects"
	EntityServices    EntityKind = "services"
	EntityClients     EntityKind = "clients"
	EntityAlliances   EntityKind = "alliances"
)

// trashHandler 单个实体类型的回收站处理表项
type trashHandler struct {
	kind     EntityKind
	section  string
	newModel func() interface{}
	list     func(repo repository.TrashRepository) ([]models.Trashable, error)
	cascades []repository.Cascade
}

func trashEntry[T models.Trashable](kind EntityKind, section string, cascades ...repository.Cascade) trashHandler {
	return trashHandler{
		kind:     kind,
		section:  section,
		newModel: func() interface{} { return new(T) },
		list: func(repo repository.TrashRepository) ([]models.Trashable, error) {
			return listDeleted[T](repo)
		},
		cascades: cascades,
	}
}

// trashKinds 顺序即清理顺序
var trashKinds = []trashHandler{
	trashEntry[models.AdminUser](EntityAdminUsers, ""),
	trashEntry[models.BlogPost](EntityBlogPosts, cache.SectionPosts),
	trashEntry[models.TeamMember](EntityTeamMembers, cache.SectionTeam),
	trashEntry[models.Project](EntityProjects, cache.SectionProjects,
		repository.Cascade{Model: &models.ProjectAchievement{}, ForeignKey: "project_id"}),
	trashEntry[models.Offering](EntityServices, cache.SectionServices),
	trashEntry[models.Client](EntityClients, cache.SectionClients),
	trashEntry[models.Alliance](EntityAlliances, cache.SectionAlliances),
}

func listDeleted[T models.Trashable](repo repository.TrashRepository) ([]models.Trashable, error) {
	rows := make([]T, 0)
	if err := repo.ListDeleted(new(T), &rows); err != nil {
		return nil, err
	}
	items := make([]models.Trashable, 0, len(rows))
	for _, row := range rows {
		items = append(items, row)
	}
	return items, nil
}

// EntityKinds 返回全部实体类型
func EntityKinds() []EntityKind {
	kinds := make([]EntityKind, 0, len(trashKinds))
	for _, h := range trashKinds {
		kinds = append(kinds, h.kind)
	}
	return kinds
}

// ParseEntityKind 校验实体类型
func ParseEntityKind(raw string) (EntityKind, error) {
	for _, h := range trashKinds {
		if string(h.kind) == raw {
			return h.kind, nil
		}
	}
	return "", ErrInvalidEntityKind
}

func handlerFor(kind EntityKind) (trashHandler, error) {
	for _, h := range trashKinds {
		if h.kind == kind {
			return h, nil
		}
	}
	return trashHandler{}, ErrInvalidEntityKind
}

// AdminAccessSync 管理员账号状态变更后同步角色
type AdminAccessSync interface {
	SyncAdminRole(adminID uint, role string) error
	RemoveAdmin(adminID uint) error
}

// TrashItem 回收站列表项
type TrashItem struct {
	ID            uint       `json:"id"`
	EntityType    EntityKind `json:"entity_type"`
	Name          string     `json:"name"`
	DeletedAt     time.Time  `json:"deleted_at"`
	DeletedBy     *uint      `json:"deleted_by"`
	DeletedByName string     `json:"deleted_by_name"`
}

// CleanupResult 过期清理结果
type CleanupResult struct {
	Total   int                `json:"total"`
	PerKind map[EntityKind]int `json:"per_kind"`
	Cutoff  time.Time          `json:"cutoff"`
}

// TrashService 回收站服务
type TrashService struct {
	trashRepo     repository.TrashRepository
	adminRepo     repository.AdminUserRepository
	access        AdminAccessSync
	retentionDays int
}

// NewTrashService 创建回收站服务
func NewTrashService(trashRepo repository.TrashRepository, adminRepo repository.AdminUserRepository, access AdminAccessSync, retentionDays int) *TrashService {
	if retentionDays <= 0 {
		retentionDays = defaultTrashRetentionDays
	}
	return &TrashService{
		trashRepo:     trashRepo,
		adminRepo:     adminRepo,
		access:        access,
		retentionDays: retentionDays,
	}
}

// RetentionDays 回收站保留天数
func (s *TrashService) RetentionDays() int {
	return s.retentionDays
}

// List 合并全部类型的已删除记录，按删除时间倒序
func (s *TrashService) List() ([]TrashItem, error) {
	items := make([]TrashItem, 0)
	actorIDs := make([]uint, 0)
	seen := make(map[uint]struct{})

	for _, h := range trashKinds {
		rows, err := h.list(s.trashRepo)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			deletedAt, deletedBy := row.TrashMarker()
			items = append(items, TrashItem{
				ID:         row.TrashKey(),
				EntityType: h.kind,
				Name:       row.TrashLabel(),
				DeletedAt:  deletedAt,
				DeletedBy:  deletedBy,
			})
			if deletedBy != nil {
				if _, ok := seen[*deletedBy]; !ok {
					seen[*deletedBy] = struct{}{}
					actorIDs = append(actorIDs, *deletedBy)
				}
			}
		}
	}

	names, err := s.adminRepo.ListNamesByIDs(actorIDs)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].DeletedBy != nil {
			items[i].DeletedByName = names[*items[i].DeletedBy]
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DeletedAt.After(items[j].DeletedAt)
	})
	return items, nil
}

// Count 回收站记录总数
func (s *TrashService) Count() (int64, error) {
	var total int64
	for _, h := range trashKinds {
		count, err := s.trashRepo.CountDeleted(h.newModel())
		if err != nil {
			return 0, err
		}
		total += count
	}
	return total, nil
}

// Restore 清除删除标记
func (s *TrashService) Restore(kind EntityKind, id uint) error {
	h, err := handlerFor(kind)
	if err != nil {
		return err
	}
	restored, err := s.trashRepo.Restore(h.newModel(), id)
	if err != nil {
		return err
	}
	if !restored {
		return ErrNotFound
	}
	invalidateSection(h.section)
	s.afterRestore(kind, id)
	return nil
}

// PermanentDelete 先清理子记录再物理删除
func (s *TrashService) PermanentDelete(kind EntityKind, id uint) error {
	h, err := handlerFor(kind)
	if err != nil {
		return err
	}
	purged, err := s.trashRepo.Purge(h.newModel(), id, h.cascades...)
	if err != nil {
		return err
	}
	if !purged {
		return ErrNotFound
	}
	if kind == EntityAdminUsers && s.access != nil {
		if err := s.access.RemoveAdmin(id); err != nil {
			logger.Warnw("trash_admin_role_cleanup_failed", "admin_id", id, "error", err)
		}
	}
	return nil
}

// CleanupExpired 物理删除删除时间早于 now - 保留天数 的记录
// 单条失败不中断，返回已删除数量与合并后的错误
func (s *TrashService) CleanupExpired(ctx context.Context, now time.Time) (CleanupResult, error) {
	cutoff := now.UTC().AddDate(0, 0, -s.retentionDays)
	result := CleanupResult{PerKind: make(map[EntityKind]int, len(trashKinds)), Cutoff: cutoff}
	var errs []error

	for _, h := range trashKinds {
		if err := ctx.Err(); err != nil {
			return result, errors.Join(append(errs, err)...)
		}
		ids, err := s.trashRepo.FindExpiredIDs(h.newModel(), cutoff)
		if err != nil {
			logger.Errorw("trash_cleanup_scan_failed", "kind", h.kind, "error", err)
			errs = append(errs, CleanupError{Kind: h.kind, Err: err})
			continue
		}
		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				return result, errors.Join(append(errs, err)...)
			}
			purged, err := s.trashRepo.Purge(h.newModel(), id, h.cascades...)
			if err != nil {
				logger.Errorw("trash_cleanup_purge_failed", "kind", h.kind, "id", id, "error", err)
				errs = append(errs, CleanupError{Kind: h.kind, ID: id, Err: err})
				continue
			}
			if !purged {
				continue
			}
			if h.kind == EntityAdminUsers && s.access != nil {
				if err := s.access.RemoveAdmin(id); err != nil {
					logger.Warnw("trash_admin_role_cleanup_failed", "admin_id", id, "error", err)
				}
			}
			result.PerKind[h.kind]++
			result.Total++
		}
	}
	return result, errors.Join(errs...)
}

func (s *TrashService) afterRestore(kind EntityKind, id uint) {
	if kind != EntityAdminUsers {
		return
	}
	admin, err := s.adminRepo.GetByID(id)
	if err != nil || admin == nil {
		return
	}
	_ = cache.SetAdminAuthState(context.Background(), cache.BuildAdminAuthState(admin))
	if s.access != nil {
		if err := s.access.SyncAdminRole(admin.ID, admin.Role); err != nil {
			logger.Warnw("trash_admin_role_sync_failed", "admin_id", admin.ID, "error", err)
		}
	}
}
