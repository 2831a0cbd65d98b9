package service

import (
	"context"

	"clubhub-backend/internal/models"
)

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, in models.CreateCategoryInput) (*models.Category, error)
	GetClubsByCategory(ctx context.Context, categoryID string) ([]models.Club, error)
}

type CategoryService struct {
	categories CategoryRepository
}

func NewCategoryService(categories CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categories.GetAll(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	if err := required("categories.Get", field{"id", id}); err != nil {
		return nil, err
	}
	return s.categories.GetByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, in models.CreateCategoryInput) (*models.Category, error) {
	if err := required("categories.Create", field{"name", in.Name}); err != nil {
		return nil, err
	}
	return s.categories.Create(ctx, in)
}

// Clubs lists the clubs tagged with the category. An unknown category is
// NotFound rather than an empty list.
func (s *CategoryService) Clubs(ctx context.Context, id string) ([]models.Club, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.categories.GetClubsByCategory(ctx, id)
}
