package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"foodgram/internal/domain"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil {
		u.ID = 1
	}
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64) (string, error) { return "token-stub", nil }

func validRegister() RegisterRequest {
	return RegisterRequest{
		Email:     "new@example.com",
		Username:  "newuser",
		FirstName: "Пётр",
		LastName:  "Петров",
		Password:  "str0ng-pass",
	}
}

func TestService_Register_ReservedUsername(t *testing.T) {
	repo := new(mockUserRepo)
	service := NewService(repo, stubJWT{})

	req := validRegister()
	req.Username = "me"

	_, err := service.Register(context.Background(), req)

	assert.ErrorIs(t, err, ErrReservedUsername)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_EmailTaken(t *testing.T) {
	repo := new(mockUserRepo)
	service := NewService(repo, stubJWT{})

	repo.On("ExistsByEmail", mock.Anything, "new@example.com").Return(true, nil)

	_, err := service.Register(context.Background(), validRegister())

	assert.ErrorIs(t, err, ErrEmailTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_UsernameTaken(t *testing.T) {
	repo := new(mockUserRepo)
	service := NewService(repo, stubJWT{})

	repo.On("ExistsByEmail", mock.Anything, "new@example.com").Return(false, nil)
	repo.On("ExistsByUsername", mock.Anything, "newuser").Return(true, nil)

	_, err := service.Register(context.Background(), validRegister())

	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestService_Register_Success(t *testing.T) {
	repo := new(mockUserRepo)
	service := NewService(repo, stubJWT{})

	repo.On("ExistsByEmail", mock.Anything, "new@example.com").Return(false, nil)
	repo.On("ExistsByUsername", mock.Anything, "newuser").Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		// в хранилище уходит bcrypt-хеш, а не пароль
		return u.PasswordHash != "str0ng-pass" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("str0ng-pass")) == nil
	})).Return(nil)

	resp, err := service.Register(context.Background(), validRegister())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "newuser", resp.Username)
}

func TestService_Login_WrongPassword(t *testing.T) {
	repo := new(mockUserRepo)
	service := NewService(repo, stubJWT{})

	hash, err := bcrypt.GenerateFromPassword([]byte("right-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.On("GetByEmail", mock.Anything, "new@example.com").Return(&domain.User{
		ID:           1,
		Email:        "new@example.com",
		PasswordHash: string(hash),
	}, nil)

	_, err = service.Login(context.Background(), LoginRequest{
		Email:    "new@example.com",
		Password: "wrong-pass",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmailSameError(t *testing.T) {
	repo := new(mockUserRepo)
	service := NewService(repo, stubJWT{})

	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_Success(t *testing.T) {
	repo := new(mockUserRepo)
	service := NewService(repo, stubJWT{})

	hash, err := bcrypt.GenerateFromPassword([]byte("right-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.On("GetByEmail", mock.Anything, "new@example.com").Return(&domain.User{
		ID:           1,
		Email:        "new@example.com",
		PasswordHash: string(hash),
	}, nil)

	token, err := service.Login(context.Background(), LoginRequest{
		Email:    "new@example.com",
		Password: "right-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-stub", token)
}

func TestService_SetPassword_WrongCurrent(t *testing.T) {
	repo := new(mockUserRepo)
	service := NewService(repo, stubJWT{})

	hash, err := bcrypt.GenerateFromPassword([]byte("old-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{
		ID:           1,
		PasswordHash: string(hash),
	}, nil)

	err = service.SetPassword(context.Background(), 1, SetPasswordRequest{
		NewPassword:     "brand-new-pass",
		CurrentPassword: "not-old-pass",
	})

	assert.ErrorIs(t, err, ErrWrongPassword)
	repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}
