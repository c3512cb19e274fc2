package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"foodgram/internal/domain"
	"foodgram/internal/repository"
)

type jwtService interface {
	GenerateToken(userID int64) (string, error)
}

// reservedUsernames — имена, совпадающие со служебными маршрутами API.
var reservedUsernames = map[string]struct{}{
	"me":            {},
	"set_password":  {},
	"subscriptions": {},
	"subscribe":     {},
}

// Service содержит логику регистрации, входа и смены пароля.
type Service struct {
	users repository.UserRepository
	jwt   jwtService
}

func NewService(users repository.UserRepository, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

// Register создаёт нового пользователя. Email и username проверяются
// на уникальность до записи; гонка добивается уникальным индексом.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*RegisteredUserResponse, error) {
	username := strings.TrimSpace(req.Username)
	if _, reserved := reservedUsernames[strings.ToLower(username)]; reserved {
		return nil, ErrReservedUsername
	}

	if taken, err := s.users.ExistsByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}

	if taken, err := s.users.ExistsByUsername(ctx, username); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Username:     username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &RegisteredUserResponse{
		Email:     user.Email,
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

// Login проверяет учётные данные и выдаёт токен. Несуществующий email
// и неверный пароль неразличимы для клиента.
func (s *Service) Login(ctx context.Context, req LoginRequest) (string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwt.GenerateToken(user.ID)
}

// SetPassword меняет пароль после проверки текущего.
func (s *Service) SetPassword(ctx context.Context, userID int64, req SetPasswordRequest) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.users.UpdatePassword(ctx, userID, string(hash))
}
