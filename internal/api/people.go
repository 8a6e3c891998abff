package api

import (
	"context"
	"net/http"

	"moneytracker/internal/model"
)

type peopleService struct {
	c *Client
}

func (s *peopleService) GetAll(ctx context.Context) ([]model.Person, error) {
	var people []model.Person
	if err := s.c.do(ctx, http.MethodGet, "/People", nil, &people); err != nil {
		return nil, err
	}
	return people, nil
}

func (s *peopleService) GetByID(ctx context.Context, id string) (model.Person, error) {
	var person model.Person
	if err := s.c.do(ctx, http.MethodGet, "/People/"+escape(id), nil, &person); err != nil {
		return model.Person{}, err
	}
	return person, nil
}

func (s *peopleService) Create(ctx context.Context, dto model.CreatePersonDTO) (model.Person, error) {
	var person model.Person
	if err := s.c.do(ctx, http.MethodPost, "/People", dto, &person); err != nil {
		return model.Person{}, err
	}
	return person, nil
}

func (s *peopleService) Update(ctx context.Context, id string, dto model.UpdatePersonDTO) (model.Person, error) {
	var person model.Person
	if err := s.c.do(ctx, http.MethodPut, "/People/"+escape(id), dto, &person); err != nil {
		return model.Person{}, err
	}
	return person, nil
}

func (s *peopleService) PartialUpdate(ctx context.Context, id string, dto model.UpdatePersonDTO) (model.PersonPatch, error) {
	var patch model.PersonPatch
	if err := s.c.do(ctx, http.MethodPatch, "/People/"+escape(id), dto, &patch); err != nil {
		return model.PersonPatch{}, err
	}
	return patch, nil
}

func (s *peopleService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/People/"+escape(id), nil, nil)
}
