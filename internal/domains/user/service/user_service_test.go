package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bookshop-backend/internal/domains/user/model"
	"bookshop-backend/internal/domains/user/repository/mocks"
	"bookshop-backend/pkg/jwt"
)

func newTestService() (*mocks.MockUserRepository, ServiceInterface) {
	repo := new(mocks.MockUserRepository)
	manager := jwt.NewManager("test-secret", 15, 168)
	return repo, NewUserService(repo, manager)
}

func validRegister() model.RegisterRequest {
	return model.RegisterRequest{
		Email:    "ana@example.com",
		Username: "ana42",
		Password: "correct horse",
		FullName: "Ana",
	}
}

func TestRegister_Success(t *testing.T) {
	repo, svc := newTestService()

	repo.On("EmailExists", mock.Anything, "ana@example.com").Return(false, nil)
	repo.On("UsernameExists", mock.Anything, "ana42").Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	auth, err := svc.Register(context.Background(), validRegister())

	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, auth.User.Role)
	assert.True(t, auth.User.IsActive)
	assert.NotEmpty(t, auth.Tokens.AccessToken)
	assert.NotEmpty(t, auth.Tokens.RefreshToken)

	// the stored hash verifies against the plaintext
	err = bcrypt.CompareHashAndPassword([]byte(auth.User.PasswordHash), []byte("correct horse"))
	assert.NoError(t, err)
}

func TestRegister_EmailTaken(t *testing.T) {
	repo, svc := newTestService()

	repo.On("EmailExists", mock.Anything, "ana@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), validRegister())

	assert.ErrorIs(t, err, model.ErrEmailExists)
	repo.AssertNotCalled(t, "Create")
}

func TestRegister_UsernameTaken(t *testing.T) {
	repo, svc := newTestService()

	repo.On("EmailExists", mock.Anything, "ana@example.com").Return(false, nil)
	repo.On("UsernameExists", mock.Anything, "ana42").Return(true, nil)

	_, err := svc.Register(context.Background(), validRegister())

	assert.ErrorIs(t, err, model.ErrUsernameExists)
}

func TestRegister_ShortPassword(t *testing.T) {
	repo, svc := newTestService()

	req := validRegister()
	req.Password = "short"

	_, err := svc.Register(context.Background(), req)

	assert.Error(t, err)
	repo.AssertNotCalled(t, "EmailExists")
}

func activeUser(t *testing.T, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &model.User{
		ID:           uuid.New(),
		Email:        "ana@example.com",
		Username:     "ana42",
		PasswordHash: string(hash),
		Role:         model.RoleUser,
		IsActive:     true,
	}
}

func TestLogin_Success(t *testing.T) {
	repo, svc := newTestService()

	user := activeUser(t, "correct horse")
	repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(user, nil)

	auth, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "ana@example.com",
		Password: "correct horse",
	})

	require.NoError(t, err)
	assert.Equal(t, user.ID, auth.User.ID)
	assert.NotEmpty(t, auth.Tokens.AccessToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo, svc := newTestService()

	user := activeUser(t, "correct horse")
	repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(user, nil)

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong horse",
	})

	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo, svc := newTestService()

	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, model.ErrUserNotFound)

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever1",
	})

	// indistinguishable from a wrong password
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestLogin_InactiveAccount(t *testing.T) {
	repo, svc := newTestService()

	user := activeUser(t, "correct horse")
	user.IsActive = false
	repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(user, nil)

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "ana@example.com",
		Password: "correct horse",
	})

	assert.ErrorIs(t, err, model.ErrInactiveAccount)
}

func TestRefresh_RoundTrip(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	manager := jwt.NewManager("test-secret", 15, 168)
	svc := NewUserService(repo, manager)

	user := activeUser(t, "correct horse")
	refresh, err := manager.GenerateRefreshToken(user.ID.String())
	require.NoError(t, err)

	repo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	tokens, err := svc.Refresh(context.Background(), model.RefreshRequest{RefreshToken: refresh})

	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	manager := jwt.NewManager("test-secret", 15, 168)
	svc := NewUserService(repo, manager)

	user := activeUser(t, "correct horse")
	access, err := manager.GenerateAccessToken(user.ID.String(), user.Email, user.Role)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), model.RefreshRequest{RefreshToken: access})

	assert.ErrorIs(t, err, model.ErrInvalidToken)
	repo.AssertNotCalled(t, "GetByID")
}
