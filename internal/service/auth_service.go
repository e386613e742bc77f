package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/zephyra-admin/internal/cache"
	"github.com/zephyra-admin/internal/config"
	"github.com/zephyra-admin/internal/logger"
	"github.com/zephyra-admin/internal/models"
	"github.com/zephyra-admin/internal/queue"
	"github.com/zephyra-admin/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultSessionMinutes    = 30
	defaultResetTokenMinutes = 60
)

// AuthService 后台认证服务
type AuthService struct {
	cfg          *config.Config
	adminRepo    repository.AdminUserRepository
	tokenRepo    repository.PasswordResetTokenRepository
	queueClient  *queue.Client
	emailService *EmailService
}

// NewAuthService 创建认证服务实例
func NewAuthService(
	cfg *config.Config,
	adminRepo repository.AdminUserRepository,
	tokenRepo repository.PasswordResetTokenRepository,
	queueClient *queue.Client,
	emailService *EmailService,
) *AuthService {
	return &AuthService{
		cfg:          cfg,
		adminRepo:    adminRepo,
		tokenRepo:    tokenRepo,
		queueClient:  queueClient,
		emailService: emailService,
	}
}

// HashPassword 使用 bcrypt 加密密码
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword 验证密码
func (s *AuthService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// ValidatePassword 校验密码是否符合策略
func (s *AuthService) ValidatePassword(password string) error {
	var policy config.PasswordPolicyConfig
	if s != nil && s.cfg != nil {
		policy = s.cfg.Security.PasswordPolicy
	}
	return validatePassword(policy, password)
}

// JWTClaims 后台会话声明
type JWTClaims struct {
	AdminID      uint   `json:"admin_id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	TokenVersion uint64 `json:"token_version"`
	jwt.RegisteredClaims
}

// SessionTTL 会话有效期
func (s *AuthService) SessionTTL() time.Duration {
	minutes := s.cfg.JWT.ExpireMinutes
	if minutes <= 0 {
		minutes = defaultSessionMinutes
	}
	return time.Duration(minutes) * time.Minute
}

// GenerateJWT 生成会话 Token
func (s *AuthService) GenerateJWT(admin *models.AdminUser) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.SessionTTL())
	claims := JWTClaims{
		AdminID:      admin.ID,
		Email:        admin.Email,
		Role:         admin.Role,
		TokenVersion: admin.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseJWT 解析会话 Token
func (s *AuthService) ParseJWT(tokenString string) (*JWTClaims, error) {
	return ParseAdminToken(s.cfg.JWT.SecretKey, tokenString)
}

// ParseAdminToken 仅接受 HS256 签名
func ParseAdminToken(secret, tokenString string) (*JWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &JWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.AdminID == 0 {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Login 管理员登录
func (s *AuthService) Login(email, password string) (*models.AdminUser, string, time.Time, error) {
	admin, err := s.adminRepo.GetByEmail(normalizeEmail(email))
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if admin == nil || !admin.IsActive {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if err := s.VerifyPassword(admin.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateJWT(admin)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	now := nowUTC()
	admin.LastLoginAt = &now
	if err := s.adminRepo.UpdateLastLogin(admin.ID, now); err != nil {
		return nil, "", time.Time{}, err
	}
	_ = cache.SetAdminAuthState(context.Background(), cache.BuildAdminAuthState(admin))
	return admin, token, expiresAt, nil
}

// Me 当前管理员
func (s *AuthService) Me(adminID uint) (*models.AdminUser, error) {
	admin, err := s.adminRepo.GetByID(adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrNotFound
	}
	return admin, nil
}

// ChangePassword 修改当前管理员密码，旧会话全部失效
func (s *AuthService) ChangePassword(adminID uint, oldPassword, newPassword string) error {
	admin, err := s.adminRepo.GetByID(adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrNotFound
	}
	if err := s.VerifyPassword(admin.PasswordHash, oldPassword); err != nil {
		return ErrInvalidPassword
	}
	return s.setPassword(admin, newPassword)
}

func (s *AuthService) setPassword(admin *models.AdminUser, newPassword string) error {
	if err := s.ValidatePassword(newPassword); err != nil {
		return err
	}
	hash, err := s.HashPassword(newPassword)
	if err != nil {
		return err
	}
	now := nowUTC()
	admin.PasswordHash = hash
	admin.TokenVersion++
	admin.TokenInvalidBefore = &now
	if err := s.adminRepo.Update(admin); err != nil {
		return err
	}
	_ = cache.SetAdminAuthState(context.Background(), cache.BuildAdminAuthState(admin))
	return nil
}

// RequestPasswordReset 对外始终成功，避免暴露邮箱是否存在
func (s *AuthService) RequestPasswordReset(email, locale string) error {
	admin, err := s.adminRepo.GetByEmail(normalizeEmail(email))
	if err != nil {
		return err
	}
	if admin == nil || !admin.IsActive {
		logger.Infow("password_reset_unknown_email", "email", normalizeEmail(email))
		return nil
	}

	if err := s.tokenRepo.DeleteByAdmin(admin.ID); err != nil {
		return err
	}
	raw := uuid.NewString()
	record := &models.PasswordResetToken{
		AdminUserID: admin.ID,
		TokenHash:   hashResetToken(raw),
		ExpiresAt:   nowUTC().Add(s.resetTokenTTL()),
	}
	if err := s.tokenRepo.Create(record); err != nil {
		return err
	}

	payload := queue.PasswordResetEmailPayload{
		AdminUserID: admin.ID,
		Email:       admin.Email,
		Name:        admin.Name,
		ResetURL:    s.buildResetURL(raw),
		Locale:      locale,
	}
	if s.queueClient != nil && s.queueClient.Enabled() {
		if err := s.queueClient.EnqueuePasswordResetEmail(payload); err != nil {
			logger.Errorw("password_reset_enqueue_failed", "admin_id", admin.ID, "error", err)
		}
		return nil
	}
	if s.emailService == nil {
		return nil
	}
	if err := s.emailService.SendPasswordReset(PasswordResetEmail{
		To:       payload.Email,
		Name:     payload.Name,
		ResetURL: payload.ResetURL,
		Locale:   payload.Locale,
	}); err != nil {
		logger.Warnw("password_reset_email_failed", "admin_id", admin.ID, "error", err)
	}
	return nil
}

// ResetPassword 使用一次性令牌重置密码
func (s *AuthService) ResetPassword(rawToken, newPassword string) error {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return ErrResetTokenInvalid
	}
	record, err := s.tokenRepo.GetByHash(hashResetToken(rawToken))
	if err != nil {
		return err
	}
	if record == nil {
		return ErrResetTokenInvalid
	}
	if record.UsedAt != nil {
		return ErrResetTokenUsed
	}
	now := nowUTC()
	if !now.Before(record.ExpiresAt) {
		return ErrResetTokenExpired
	}

	admin, err := s.adminRepo.GetByID(record.AdminUserID)
	if err != nil {
		return err
	}
	if admin == nil || !admin.IsActive {
		return ErrResetTokenInvalid
	}
	if err := s.setPassword(admin, newPassword); err != nil {
		return err
	}
	return s.tokenRepo.MarkUsed(record.ID, now)
}

func (s *AuthService) resetTokenTTL() time.Duration {
	minutes := s.cfg.PasswordReset.ExpireMinutes
	if minutes <= 0 {
		minutes = defaultResetTokenMinutes
	}
	return time.Duration(minutes) * time.Minute
}

func (s *AuthService) buildResetURL(raw string) string {
	base := strings.TrimSpace(s.cfg.PasswordReset.ResetURL)
	u, err := url.Parse(base)
	if err != nil || base == "" {
		return "/reset-password?token=" + url.QueryEscape(raw)
	}
	q := u.Query()
	q.Set("token", raw)
	u.RawQuery = q.Encode()
	return u.String()
}

func hashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
