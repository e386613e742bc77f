package service

import (
	"unicode"

	"github.com/zephyra-admin/internal/config"
)

const minPasswordLength = 8

type passwordPolicyError struct {
	key  string
	args []interface{}
}

func (e passwordPolicyError) Error() string {
	return e.key
}

func (e passwordPolicyError) Is(target error) bool {
	return target == ErrWeakPassword
}

// Key i18n 文案键
func (e passwordPolicyError) Key() string {
	return e.key
}

// Args 文案参数
func (e passwordPolicyError) Args() []interface{} {
	return e.args
}

// validatePassword 最小长度始终不低于 8，其余规则按配置开启
func validatePassword(policy config.PasswordPolicyConfig, password string) error {
	minLength := policy.MinLength
	if minLength < minPasswordLength {
		minLength = minPasswordLength
	}
	if len([]rune(password)) < minLength {
		return passwordPolicyError{key: "error.password_min_length", args: []interface{}{minLength}}
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		default:
			hasSpecial = true
		}
	}

	switch {
	case policy.RequireUpper && !hasUpper:
		return passwordPolicyError{key: "error.password_require_upper"}
	case policy.RequireLower && !hasLower:
		return passwordPolicyError{key: "error.password_require_lower"}
	case policy.RequireNumber && !hasNumber:
		return passwordPolicyError{key: "error.password_require_number"}
	case policy.RequireSpecial && !hasSpecial:
		return passwordPolicyError{key: "error.password_require_special"}
	}
	return nil
}
