package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/zephyra-admin/internal/repository"
)

// Kind 业务错误分类
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindValidation
	KindUnauthorized
)

// 通用错误
var (
	ErrNotFound          = repository.ErrNotFound
	ErrInvalidEntityKind = errors.New("invalid entity kind")
	ErrValidation        = errors.New("validation failed")
)

// 认证与管理员错误
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidPassword     = errors.New("invalid password")
	ErrWeakPassword        = errors.New("weak password")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrEmailExists         = errors.New("email already exists")
	ErrInvalidRole         = errors.New("invalid role")
	ErrCannotDeleteSelf    = errors.New("cannot delete own account")
	ErrCannotChangeOwnRole = errors.New("cannot change own role")
	ErrSuperAdminRequired  = errors.New("superadmin required")
	ErrResetTokenInvalid   = errors.New("reset token invalid")
	ErrResetTokenUsed      = errors.New("reset token already used")
	ErrResetTokenExpired   = errors.New("reset token expired")
	ErrCaptchaRequired     = errors.New("captcha required")
	ErrCaptchaInvalid      = errors.New("captcha invalid")
	ErrEmailDisabled       = errors.New("email service disabled")
)

// 内容错误
var (
	ErrSlugExists        = errors.New("slug already exists")
	ErrTitleRequired     = errors.New("title required")
	ErrNameRequired      = errors.New("name required")
	ErrInvalidPostStatus = errors.New("invalid post status")
	ErrAuthorNotFound    = errors.New("author not found")
	ErrProjectNotFound   = errors.New("project not found")
	ErrInvalidUpload     = errors.New("invalid upload")
	ErrUploadTooLarge    = errors.New("upload too large")
)

// TeamMemberInUseError 成员仍是活跃文章的作者
type TeamMemberInUseError struct {
	Count int64
}

func (e TeamMemberInUseError) Error() string {
	return fmt.Sprintf("team member is author of %d active posts", e.Count)
}

// Is 归类为校验错误
func (e TeamMemberInUseError) Is(target error) bool {
	return target == ErrValidation
}

// CleanupError 清理过程中单条记录的失败
type CleanupError struct {
	Kind EntityKind
	ID   uint
	Err  error
}

func (e CleanupError) Error() string {
	return fmt.Sprintf("purge %s#%d: %v", e.Kind, e.ID, e.Err)
}

func (e CleanupError) Unwrap() error { return e.Err }

type errorKind struct {
	err  error
	kind Kind
}

// kindByError 按顺序匹配，合并错误同时包含多类时取第一个命中项
var kindByError = []errorKind{
	{ErrNotFound, KindNotFound},
	{ErrProjectNotFound, KindNotFound},
	{ErrEmailExists, KindConflict},
	{ErrSlugExists, KindConflict},
	{ErrInvalidEntityKind, KindValidation},
	{ErrValidation, KindValidation},
	{ErrInvalidPassword, KindValidation},
	{ErrWeakPassword, KindValidation},
	{ErrInvalidEmail, KindValidation},
	{ErrInvalidRole, KindValidation},
	{ErrCannotDeleteSelf, KindValidation},
	{ErrCannotChangeOwnRole, KindValidation},
	{ErrResetTokenInvalid, KindValidation},
	{ErrResetTokenUsed, KindValidation},
	{ErrResetTokenExpired, KindValidation},
	{ErrCaptchaRequired, KindValidation},
	{ErrCaptchaInvalid, KindValidation},
	{ErrTitleRequired, KindValidation},
	{ErrNameRequired, KindValidation},
	{ErrInvalidPostStatus, KindValidation},
	{ErrAuthorNotFound, KindValidation},
	{ErrInvalidUpload, KindValidation},
	{ErrUploadTooLarge, KindValidation},
	{ErrInvalidCredentials, KindUnauthorized},
	{ErrSuperAdminRequired, KindUnauthorized},
}

// KindOf 将错误归入 NotFound / Conflict / Validation / Unauthorized
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}
	for _, entry := range kindByError {
		if errors.Is(err, entry.err) {
			return entry.kind
		}
	}
	return KindInternal
}

// nowUTC 服务层统一使用 UTC 时间写库
func nowUTC() time.Time {
	return time.Now().UTC()
}
