package service

import (
	"context"
	"errors"
	"strings"

	"bookstore/internal/api/models"
	"bookstore/internal/api/repository"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryNameInUse = errors.New("a category with this name already exists")
)

type CategoryService interface {
	Create(ctx context.Context, category *models.Category) error
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	Update(ctx context.Context, id string, name, description *string) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, category *models.Category) error {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return errors.New("name is required")
	}
	if _, err := s.repo.FindByName(ctx, category.Name); err == nil {
		return ErrCategoryNameInUse
	}
	return s.repo.Create(ctx, category)
}

func (s *categoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *categoryService) GetByID(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id string, name, description *string) (*models.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrCategoryNotFound
	}

	if name != nil && strings.TrimSpace(*name) != "" {
		category.Name = strings.TrimSpace(*name)
	}
	if description != nil {
		category.Description = *description
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrCategoryNotFound
	}
	return s.repo.Delete(ctx, id)
}
