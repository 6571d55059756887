package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-commerce-api/internal/domain/entity"
	"github.com/oksasatya/go-commerce-api/internal/domain/repository"
	"github.com/oksasatya/go-commerce-api/pkg/apperr"
)

type CategoryService struct {
	Repo   repository.CategoryRepository
	Logger *logrus.Logger
}

func NewCategoryService(repo repository.CategoryRepository, logger *logrus.Logger) *CategoryService {
	return &CategoryService{Repo: repo, Logger: logger}
}

func (s *CategoryService) Create(ctx context.Context, name, description string) (*entity.Category, error) {
	if name == "" {
		return nil, apperr.New(apperr.BadInput, "name is required")
	}
	c := &entity.Category{Name: name, Description: description}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, apperr.Wrap(apperr.UpstreamFailure, "error occurred while creating the category", err)
	}
	return c, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*entity.Category, error) {
	if id == "" {
		return nil, apperr.New(apperr.BadInput, "category id is required")
	}
	c, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(apperr.NotFound, "category not found")
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) List(ctx context.Context) ([]entity.Category, error) {
	return s.Repo.List(ctx)
}

func (s *CategoryService) Update(ctx context.Context, id, name, description string) (*entity.Category, error) {
	if id == "" {
		return nil, apperr.New(apperr.BadInput, "category id is required")
	}
	if name == "" && description == "" {
		return nil, apperr.New(apperr.BadInput, "nothing to update")
	}
	c, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(apperr.NotFound, "category not found")
	}
	if err != nil {
		return nil, err
	}
	if name != "" {
		c.Name = name
	}
	if description != "" {
		c.Description = description
	}
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, apperr.Wrap(apperr.UpstreamFailure, "error occurred while updating the category", err)
	}
	return c, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.New(apperr.BadInput, "category id is required")
	}
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.New(apperr.NotFound, "category not found")
	}
	return err
}
