package authz

import (
	"fmt"

	"github.com/zephyra-admin/internal/constants"
)

// RoleSeed 预置角色定义
type RoleSeed struct {
	Role     string
	Inherits []string
	Policies []Policy
}

// contentPolicies 可排序内容的标准 CRUD 路由
func contentPolicies(resource string, reorderable bool) []Policy {
	base := "/admin/" + resource
	policies := []Policy{
		{Object: base, Action: "GET"},
		{Object: base, Action: "POST"},
		{Object: base + "/:id", Action: "PUT"},
		{Object: base + "/:id", Action: "DELETE"},
	}
	if reorderable {
		policies = append(policies, Policy{Object: base + "/reorder", Action: "PUT"})
	}
	return policies
}

// BuiltinRoleSeeds 系统预置角色矩阵
// admin 不含管理员账号管理与手动清理回收站，superadmin 在其基础上补齐
func BuiltinRoleSeeds() []RoleSeed {
	admin := []Policy{
		{Object: "/admin/logout", Action: "POST"},
		{Object: "/admin/me", Action: "GET"},
		{Object: "/admin/me/password", Action: "PUT"},
		{Object: "/admin/dashboard/stats", Action: "GET"},
		{Object: "/admin/upload", Action: "POST"},

		{Object: "/admin/posts/:id/publish", Action: "POST"},
		{Object: "/admin/posts/:id/unpublish", Action: "POST"},
		{Object: "/admin/team/options", Action: "GET"},
		{Object: "/admin/team/:id/can-delete", Action: "GET"},
		{Object: "/admin/projects/:id/toggle-featured", Action: "POST"},
		{Object: "/admin/projects/:id/achievements", Action: "POST"},
		{Object: "/admin/projects/:id/achievements/reorder", Action: "PUT"},
		{Object: "/admin/achievements/:id", Action: "PUT"},
		{Object: "/admin/achievements/:id", Action: "DELETE"},
		{Object: "/admin/services/:id/toggle-active", Action: "POST"},

		{Object: "/admin/trash", Action: "GET"},
		{Object: "/admin/trash/:kind/:id/restore", Action: "POST"},
		{Object: "/admin/trash/:kind/:id", Action: "DELETE"},

		{Object: "/admin/newsletter", Action: "GET"},
		{Object: "/admin/newsletter/stats", Action: "GET"},
		{Object: "/admin/newsletter/export", Action: "GET"},
		{Object: "/admin/newsletter/:id", Action: "PATCH"},
		{Object: "/admin/newsletter/:id", Action: "DELETE"},
	}
	admin = append(admin, contentPolicies("posts", false)...)
	for _, resource := range []string{"team", "projects", "services", "clients", "alliances"} {
		admin = append(admin, contentPolicies(resource, true)...)
	}

	return []RoleSeed{
		{
			Role:     constants.AdminRoleAdmin,
			Policies: admin,
		},
		{
			Role:     constants.AdminRoleSuperAdmin,
			Inherits: []string{constants.AdminRoleAdmin},
			Policies: []Policy{
				{Object: "/admin/admin-users", Action: "*"},
				{Object: "/admin/admin-users/:id", Action: "*"},
				{Object: "/admin/trash/cleanup", Action: "POST"},
			},
		},
	}
}

// BootstrapBuiltinRoles 初始化预置角色与默认策略，可重复执行
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return errUnavailable
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := s.EnsureRole(seed.Role)
		if err != nil {
			return err
		}
		for _, parent := range seed.Inherits {
			parentRole, err := s.EnsureRole(parent)
			if err != nil {
				return err
			}
			if _, err := s.enforcer.AddNamedGroupingPolicy("g", role, parentRole); err != nil {
				return fmt.Errorf("link role inheritance failed: %w", err)
			}
		}
		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}
	return nil
}
