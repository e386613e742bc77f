package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/zephyra-admin/internal/constants"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzServiceTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}
	return svc
}

func TestAdminRoleMatrix(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.SyncAdminRole(1, constants.AdminRoleAdmin); err != nil {
		t.Fatalf("sync admin role failed: %v", err)
	}
	if err := svc.SyncAdminRole(2, constants.AdminRoleSuperAdmin); err != nil {
		t.Fatalf("sync superadmin role failed: %v", err)
	}

	cases := []struct {
		adminID uint
		obj     string
		act     string
		want    bool
	}{
		{1, "/api/v1/admin/posts", "GET", true},
		{1, "/api/v1/admin/posts/:id", "delete", true},
		{1, "/api/v1/admin/projects/reorder", "PUT", true},
		{1, "/api/v1/admin/trash", "GET", true},
		{1, "/api/v1/admin/trash/:kind/:id/restore", "POST", true},
		{1, "/api/v1/admin/trash/:kind/:id", "DELETE", true},
		{1, "/api/v1/admin/trash/cleanup", "POST", false},
		{1, "/api/v1/admin/admin-users", "GET", false},
		{1, "/api/v1/admin/admin-users/:id", "DELETE", false},
		{2, "/api/v1/admin/admin-users/:id", "DELETE", true},
		{2, "/api/v1/admin/trash/cleanup", "POST", true},
		{2, "/api/v1/admin/clients/:id", "PUT", true},
		{3, "/api/v1/admin/posts", "GET", false},
	}
	for _, tc := range cases {
		allow, err := svc.EnforceAdmin(tc.adminID, tc.obj, tc.act)
		if err != nil {
			t.Fatalf("enforce %d %s %s failed: %v", tc.adminID, tc.act, tc.obj, err)
		}
		if allow != tc.want {
			t.Fatalf("enforce %d %s %s want %v got %v", tc.adminID, tc.act, tc.obj, tc.want, allow)
		}
	}
}

func TestSyncAdminRoleOverridesAndRemove(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.SyncAdminRole(5, constants.AdminRoleSuperAdmin); err != nil {
		t.Fatalf("sync role failed: %v", err)
	}
	if err := svc.SyncAdminRole(5, constants.AdminRoleAdmin); err != nil {
		t.Fatalf("sync role failed: %v", err)
	}
	roles, err := svc.GetAdminRoles(5)
	if err != nil {
		t.Fatalf("get roles failed: %v", err)
	}
	if len(roles) != 1 || roles[0] != "role:admin" {
		t.Fatalf("roles want [role:admin], got=%v", roles)
	}
	allow, err := svc.EnforceAdmin(5, "/admin/admin-users", "GET")
	if err != nil || allow {
		t.Fatalf("demoted admin must lose admin-users access: allow=%v err=%v", allow, err)
	}

	policies, err := svc.GetAdminPolicies(5)
	if err != nil || len(policies) == 0 {
		t.Fatalf("admin policies missing: %v", err)
	}

	if err := svc.RemoveAdmin(5); err != nil {
		t.Fatalf("remove admin failed: %v", err)
	}
	allow, err = svc.EnforceAdmin(5, "/admin/posts", "GET")
	if err != nil || allow {
		t.Fatalf("removed admin must lose access: allow=%v err=%v", allow, err)
	}
}

func TestBootstrapIsIdempotent(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("second bootstrap failed: %v", err)
	}
	if err := svc.ReloadPolicy(); err != nil {
		t.Fatalf("reload policy failed: %v", err)
	}
	if err := svc.SyncAdminRole(1, constants.AdminRoleAdmin); err != nil {
		t.Fatalf("sync role failed: %v", err)
	}
	allow, err := svc.EnforceAdmin(1, "/admin/newsletter/export", "GET")
	if err != nil || !allow {
		t.Fatalf("persisted policies must survive reload: allow=%v err=%v", allow, err)
	}
}

func TestNormalizeObject(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "/api/v1/admin/trash/:kind/:id", want: "/admin/trash/:kind/:id"},
		{in: "/admin/posts/:id", want: "/admin/posts/:id"},
		{in: "admin/posts", want: "/admin/posts"},
		{in: "/api/v1", want: "/"},
		{in: "", want: "/"},
	}
	for _, item := range cases {
		got := NormalizeObject(item.in)
		if got != item.want {
			t.Fatalf("normalize object failed, in=%q want=%q got=%q", item.in, item.want, got)
		}
	}
}
