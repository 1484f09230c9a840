package service

import (
	"errors"
	"testing"

	"github.com/rgsuhas/fitness-buddy-sub001/internal/common"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"github.com/rgsuhas/fitness-buddy-sub001/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testJWTManager() *jwt.Manager {
	return jwt.NewManager("test-secret", 15, 1440)
}

func TestRegister_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := NewAuthService(userRepo, testJWTManager())

	userRepo.On("ExistsByEmail", "alice@example.com").Return(false, nil)
	userRepo.On("Create", mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.Register(&RegisterRequest{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "correct-horse",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "user", user.Role)

	created := userRepo.Calls[1].Arguments.Get(0).(*domain.User)
	assert.NotEmpty(t, created.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("correct-horse")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := NewAuthService(userRepo, testJWTManager())

	userRepo.On("ExistsByEmail", "alice@example.com").Return(true, nil)

	_, err := svc.Register(&RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "whatever12"})

	assert.ErrorIs(t, err, common.ErrUserAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := NewAuthService(userRepo, testJWTManager())

	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	userRepo.On("FindByEmail", "alice@example.com").Return(&domain.User{
		ID: "u1", Name: "Alice", Email: "alice@example.com", Password: string(hashed), Role: "user",
	}, nil)

	result, err := svc.Login(&LoginRequest{Email: "alice@example.com", Password: "correct-horse"})

	assert.NoError(t, err)
	assert.Equal(t, "u1", result.User.ID)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotEmpty(t, result.Tokens.RefreshToken)

	claims, err := testJWTManager().VerifyToken(result.Tokens.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := NewAuthService(userRepo, testJWTManager())

	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	userRepo.On("FindByEmail", "alice@example.com").Return(&domain.User{
		ID: "u1", Email: "alice@example.com", Password: string(hashed),
	}, nil)

	_, err := svc.Login(&LoginRequest{Email: "alice@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := NewAuthService(userRepo, testJWTManager())

	userRepo.On("FindByEmail", "ghost@example.com").Return(nil, errors.New("record not found"))

	_, err := svc.Login(&LoginRequest{Email: "ghost@example.com", Password: "whatever"})

	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestRefresh_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	manager := testJWTManager()
	svc := NewAuthService(userRepo, manager)

	refresh, err := manager.GenerateRefreshToken("u1")
	assert.NoError(t, err)

	userRepo.On("FindByID", "u1").Return(&domain.User{ID: "u1", Name: "Alice", Role: "user"}, nil)

	tokens, err := svc.Refresh(refresh)

	assert.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
}

func TestRefresh_InvalidToken(t *testing.T) {
	svc := NewAuthService(new(mockUserRepo), testJWTManager())

	_, err := svc.Refresh("not-a-token")

	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
