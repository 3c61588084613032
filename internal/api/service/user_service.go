package service

import (
	"context"
	"errors"
	"strings"

	"bookstore/internal/api/models"
	"bookstore/internal/api/repository"
	"bookstore/internal/auth"
)

var ErrUserNotFound = errors.New("user not found")

type UserService interface {
	Create(ctx context.Context, name, email, password, role string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, patch *UserPatch) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

// UserPatch carries partial admin updates; nil means "leave as is".
type UserPatch struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
	IsActive *bool
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, name, email, password, role string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailInUse
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	if role != models.RoleAdmin {
		role = models.RoleUser
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     role,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *userService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id string, patch *UserPatch) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*patch.Email))
	}
	if patch.Password != nil {
		hashed, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	if patch.Role != nil && (*patch.Role == models.RoleAdmin || *patch.Role == models.RoleUser) {
		user.Role = *patch.Role
	}
	if patch.IsActive != nil {
		user.IsActive = *patch.IsActive
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrUserNotFound
	}
	return s.repo.Delete(ctx, id)
}
