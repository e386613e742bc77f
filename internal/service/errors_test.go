package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/zephyra-admin/internal/repository"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{nil, KindInternal},
		{errors.New("boom"), KindInternal},
		{ErrNotFound, KindNotFound},
		{fmt.Errorf("load: %w", ErrProjectNotFound), KindNotFound},
		{ErrSlugExists, KindConflict},
		{ErrEmailExists, KindConflict},
		{TeamMemberInUseError{Count: 2}, KindValidation},
		{fmt.Errorf("%w: scene", ErrInvalidUpload), KindValidation},
		{ErrCannotDeleteSelf, KindValidation},
		{ErrInvalidCredentials, KindUnauthorized},
		{ErrSuperAdminRequired, KindUnauthorized},
	}
	for _, tc := range cases {
		if got := KindOf(tc.err); got != tc.want {
			t.Fatalf("KindOf(%v) want %d got %d", tc.err, tc.want, got)
		}
	}
}

func TestCleanupErrorUnwraps(t *testing.T) {
	inner := errors.New("disk full")
	err := errors.Join(CleanupError{Kind: EntityProjects, ID: 7, Err: inner})
	if !errors.Is(err, inner) {
		t.Fatalf("cleanup error must unwrap to its cause")
	}
	var cleanupErr CleanupError
	if !errors.As(err, &cleanupErr) || cleanupErr.ID != 7 || cleanupErr.Kind != EntityProjects {
		t.Fatalf("cleanup error lost its context: %v", err)
	}
}

func TestKindOfJoinedErrorsIsStable(t *testing.T) {
	joined := errors.Join(
		CleanupError{Kind: EntityClients, ID: 3, Err: ErrSlugExists},
		CleanupError{Kind: EntityProjects, ID: 4, Err: ErrNotFound},
		ErrInvalidCredentials,
	)
	for i := 0; i < 50; i++ {
		if got := KindOf(joined); got != KindNotFound {
			t.Fatalf("run %d: joined error want KindNotFound got %d", i, got)
		}
	}
	if got := KindOf(errors.Join(ErrWeakPassword, ErrEmailExists)); got != KindConflict {
		t.Fatalf("conflict is listed before validation, got %d", got)
	}
}

func TestRepositoryNotFoundMapsToNotFound(t *testing.T) {
	if !errors.Is(repository.ErrNotFound, ErrNotFound) || KindOf(fmt.Errorf("update: %w", repository.ErrNotFound)) != KindNotFound {
		t.Fatalf("repository not found must classify as NotFound")
	}
}
