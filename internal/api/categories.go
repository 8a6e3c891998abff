package api

import (
	"context"
	"net/http"

	"moneytracker/internal/model"
)

type categoriesService struct {
	c *Client
}

func (s *categoriesService) GetAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := s.c.do(ctx, http.MethodGet, "/Categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *categoriesService) GetByID(ctx context.Context, id string) (model.Category, error) {
	var category model.Category
	if err := s.c.do(ctx, http.MethodGet, "/Categories/"+escape(id), nil, &category); err != nil {
		return model.Category{}, err
	}
	return category, nil
}

func (s *categoriesService) Create(ctx context.Context, dto model.CreateCategoryDTO) (model.Category, error) {
	var category model.Category
	if err := s.c.do(ctx, http.MethodPost, "/Categories", dto, &category); err != nil {
		return model.Category{}, err
	}
	return category, nil
}

func (s *categoriesService) Update(ctx context.Context, id string, dto model.UpdateCategoryDTO) (model.Category, error) {
	var category model.Category
	if err := s.c.do(ctx, http.MethodPut, "/Categories/"+escape(id), dto, &category); err != nil {
		return model.Category{}, err
	}
	return category, nil
}

func (s *categoriesService) PartialUpdate(ctx context.Context, id string, dto model.UpdateCategoryDTO) (model.CategoryPatch, error) {
	var patch model.CategoryPatch
	if err := s.c.do(ctx, http.MethodPatch, "/Categories/"+escape(id), dto, &patch); err != nil {
		return model.CategoryPatch{}, err
	}
	return patch, nil
}

func (s *categoriesService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/Categories/"+escape(id), nil, nil)
}
