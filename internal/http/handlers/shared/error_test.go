package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/zephyra-admin/internal/http/response"
	"github.com/zephyra-admin/internal/i18n"
	"github.com/zephyra-admin/internal/service"
)

func TestServiceErrorResponse(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "not found", err: service.ErrNotFound, wantCode: response.CodeNotFound, wantMsg: "Resource not found"},
		{name: "wrapped conflict", err: fmt.Errorf("create post: %w", service.ErrSlugExists), wantCode: response.CodeConflict, wantMsg: "An item with this slug already exists"},
		{name: "team member in use", err: service.TeamMemberInUseError{Count: 3}, wantCode: response.CodeBadRequest, wantMsg: "Cannot delete: author of 3 active posts"},
		{name: "bad credentials", err: service.ErrInvalidCredentials, wantCode: response.CodeUnauthorized, wantMsg: "Wrong email or password"},
		{name: "superadmin only", err: service.ErrSuperAdminRequired, wantCode: response.CodeForbidden, wantMsg: "Only a superadmin can do this"},
		{name: "joined kinds", err: errors.Join(service.ErrSlugExists, service.ErrNotFound), wantCode: response.CodeNotFound, wantMsg: "Resource not found"},
		{name: "unknown", err: errors.New("db down"), wantCode: response.CodeInternal, wantMsg: "Internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := ServiceErrorResponse(i18n.LocaleEN, tc.err)
			if code != tc.wantCode {
				t.Fatalf("code want %d got %d", tc.wantCode, code)
			}
			if msg != tc.wantMsg {
				t.Fatalf("msg want %q got %q", tc.wantMsg, msg)
			}
		})
	}
}

func TestNormalizePagination(t *testing.T) {
	page, size := NormalizePagination(0, 0)
	if page != 1 || size <= 0 {
		t.Fatalf("defaults want page 1 and positive size, got %d/%d", page, size)
	}
}
