package shared

import (
	"errors"

	"github.com/zephyra-admin/internal/http/response"
	"github.com/zephyra-admin/internal/i18n"
	"github.com/zephyra-admin/internal/logger"
	"github.com/zephyra-admin/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回国际化错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, key string, err error) {
	RespondErrorWithMsg(c, code, i18n.T(i18n.ResolveLocale(c), key), err)
}

// RespondErrorWithMsg 返回已本地化的错误响应。
func RespondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	if err != nil {
		log := RequestLog(c).With("code", code, "message", msg, "error", err)
		if code >= response.CodeInternal {
			log.Errorw("handler_error")
		} else {
			log.Warnw("handler_error")
		}
	}
	response.Error(c, code, msg)
}

// serviceErrorKeys 业务错误对应的文案键，按顺序取第一个命中项
var serviceErrorKeys = []struct {
	err error
	key string
}{
	{service.ErrNotFound, "error.not_found"},
	{service.ErrProjectNotFound, "error.project_not_found"},
	{service.ErrEmailExists, "error.email_exists"},
	{service.ErrSlugExists, "error.slug_exists"},
	{service.ErrInvalidEntityKind, "error.invalid_entity_kind"},
	{service.ErrInvalidPassword, "error.invalid_password"},
	{service.ErrInvalidEmail, "error.invalid_email"},
	{service.ErrInvalidRole, "error.invalid_role"},
	{service.ErrCannotDeleteSelf, "error.cannot_delete_self"},
	{service.ErrCannotChangeOwnRole, "error.cannot_change_own_role"},
	{service.ErrSuperAdminRequired, "error.superadmin_required"},
	{service.ErrResetTokenInvalid, "error.reset_token_invalid"},
	{service.ErrResetTokenUsed, "error.reset_token_used"},
	{service.ErrResetTokenExpired, "error.reset_token_expired"},
	{service.ErrCaptchaRequired, "error.captcha_required"},
	{service.ErrCaptchaInvalid, "error.captcha_invalid"},
	{service.ErrEmailDisabled, "error.email_disabled"},
	{service.ErrTitleRequired, "error.title_required"},
	{service.ErrNameRequired, "error.name_required"},
	{service.ErrInvalidPostStatus, "error.invalid_post_status"},
	{service.ErrAuthorNotFound, "error.author_not_found"},
	{service.ErrInvalidUpload, "error.invalid_upload"},
	{service.ErrUploadTooLarge, "error.upload_too_large"},
	{service.ErrInvalidCredentials, "error.invalid_credentials"},
}

// ServiceErrorResponse 将业务错误映射为响应码与本地化文案。
func ServiceErrorResponse(locale string, err error) (int, string) {
	var inUse service.TeamMemberInUseError
	if errors.As(err, &inUse) {
		return response.CodeBadRequest, i18n.Sprintf(locale, "error.team_member_in_use", inUse.Count)
	}
	var policy interface {
		Key() string
		Args() []interface{}
	}
	if errors.As(err, &policy) {
		return response.CodeBadRequest, i18n.Sprintf(locale, policy.Key(), policy.Args()...)
	}

	kind := service.KindOf(err)
	key := ""
	for _, entry := range serviceErrorKeys {
		if errors.Is(err, entry.err) {
			key = entry.key
			break
		}
	}
	switch kind {
	case service.KindNotFound:
		return response.CodeNotFound, i18n.T(locale, keyOr(key, "error.not_found"))
	case service.KindConflict:
		return response.CodeConflict, i18n.T(locale, keyOr(key, "error.conflict"))
	case service.KindValidation:
		return response.CodeBadRequest, i18n.T(locale, keyOr(key, "error.validation"))
	case service.KindUnauthorized:
		if errors.Is(err, service.ErrInvalidCredentials) {
			return response.CodeUnauthorized, i18n.T(locale, key)
		}
		return response.CodeForbidden, i18n.T(locale, keyOr(key, "error.forbidden"))
	}
	if errors.Is(err, service.ErrEmailDisabled) {
		return response.CodeBadRequest, i18n.T(locale, key)
	}
	return response.CodeInternal, i18n.T(locale, "error.internal")
}

func keyOr(key, fallback string) string {
	if key == "" {
		return fallback
	}
	return key
}

// RespondServiceError 按错误分类返回响应，仅内部错误记录日志。
func RespondServiceError(c *gin.Context, err error) {
	code, msg := ServiceErrorResponse(i18n.ResolveLocale(c), err)
	if code == response.CodeInternal {
		RespondErrorWithMsg(c, code, msg, err)
		return
	}
	response.Error(c, code, msg)
}
