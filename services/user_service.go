package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/janebaby34221-collab/Superapp/entity"
	"github.com/janebaby34221-collab/Superapp/repository"
)

// UserService covers the admin-facing account operations.
type UserService struct {
	users         *repository.UserRepository
	reservedEmail string
}

func NewUserService(users *repository.UserRepository, reservedEmail string) *UserService {
	return &UserService{users: users, reservedEmail: strings.ToLower(reservedEmail)}
}

func (s *UserService) List() ([]entity.User, error) {
	return s.users.ListNewestFirst()
}

// CreateAdmin provisions an ADMIN-role account directly.
func (s *UserService) CreateAdmin(email, password, name, phone string) (*entity.User, error) {
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
	admin := &entity.User{
		Email:    email,
		Password: string(hashed),
		Name:     strings.TrimSpace(name),
		Phone:    strings.TrimSpace(phone),
		Role:     entity.RoleAdmin,
	}
	if err := s.users.Create(admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return admin, nil
}

// Promote elevates an account to ADMIN. The reserved account is untouchable.
func (s *UserService) Promote(id uint) (*entity.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if strings.ToLower(user.Email) == s.reservedEmail {
		return nil, ErrReservedAccount
	}
	if err := s.users.UpdateRole(id, entity.RoleAdmin); err != nil {
		return nil, err
	}
	user.Role = entity.RoleAdmin
	return user, nil
}

// Delete removes an account. The reserved account is untouchable.
func (s *UserService) Delete(id uint) error {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if strings.ToLower(user.Email) == s.reservedEmail {
		return ErrReservedAccount
	}
	return s.users.Delete(id)
}
