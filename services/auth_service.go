package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/janebaby34221-collab/Superapp/entity"
	"github.com/janebaby34221-collab/Superapp/repository"
	"github.com/janebaby34221-collab/Superapp/utils"
)

// AuthService handles register/login and token issuance.
type AuthService struct {
	users         *repository.UserRepository
	jwtSecret     string
	jwtTTL        time.Duration
	reservedEmail string
}

func NewAuthService(users *repository.UserRepository, secret string, ttl time.Duration, reservedEmail string) *AuthService {
	return &AuthService{
		users:         users,
		jwtSecret:     secret,
		jwtTTL:        ttl,
		reservedEmail: strings.ToLower(reservedEmail),
	}
}

// Register creates a USER-role account. The reserved superadmin email can
// never be registered through here.
func (s *AuthService) Register(email, password, name, phone string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == s.reservedEmail {
		return nil, ErrReservedAccount
	}

	count, err := s.users.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		Name:     strings.TrimSpace(name),
		Phone:    strings.TrimSpace(phone),
		Role:     entity.RoleUser,
	}
	if err := s.users.Create(user); err != nil {
		// the pre-check can race a concurrent register
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues a signed, time-boxed token.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Profile(userID uint) (*entity.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return user, nil
}
