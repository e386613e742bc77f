package service

import (
	"errors"
	"testing"

	"github.com/zephyra-admin/internal/config"
)

func TestValidatePasswordPolicy(t *testing.T) {
	strict := config.PasswordPolicyConfig{
		MinLength:      10,
		RequireUpper:   true,
		RequireLower:   true,
		RequireNumber:  true,
		RequireSpecial: true,
	}
	cases := []struct {
		name     string
		policy   config.PasswordPolicyConfig
		password string
		key      string
	}{
		{name: "floor of eight", policy: config.PasswordPolicyConfig{MinLength: 4}, password: "abcdefg", key: "error.password_min_length"},
		{name: "default ok", password: "abcdefgh"},
		{name: "configured length", policy: strict, password: "Ab1!", key: "error.password_min_length"},
		{name: "upper", policy: strict, password: "abcdefgh1!", key: "error.password_require_upper"},
		{name: "lower", policy: strict, password: "ABCDEFGH1!", key: "error.password_require_lower"},
		{name: "number", policy: strict, password: "Abcdefghi!", key: "error.password_require_number"},
		{name: "special", policy: strict, password: "Abcdefghi1", key: "error.password_require_special"},
		{name: "strict ok", policy: strict, password: "Abcdefgh1!"},
	}
	for _, tc := range cases {
		err := validatePassword(tc.policy, tc.password)
		if tc.key == "" {
			if err != nil {
				t.Fatalf("%s: unexpected error %v", tc.name, err)
			}
			continue
		}
		var policyErr passwordPolicyError
		if !errors.As(err, &policyErr) || policyErr.Key() != tc.key {
			t.Fatalf("%s: want %s got %v", tc.name, tc.key, err)
		}
		if !errors.Is(err, ErrWeakPassword) || KindOf(err) != KindValidation {
			t.Fatalf("%s: policy errors classify as validation", tc.name)
		}
	}

	err := validatePassword(strict, "short")
	var policyErr passwordPolicyError
	if !errors.As(err, &policyErr) || len(policyErr.Args()) != 1 || policyErr.Args()[0] != 10 {
		t.Fatalf("min length args want [10] got %v", err)
	}
}
