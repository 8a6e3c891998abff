package api

import (
	"context"
	"net/http"

	"moneytracker/internal/model"
)

type transactionsService struct {
	c *Client
}

func (s *transactionsService) GetAll(ctx context.Context) ([]model.Transaction, error) {
	var transactions []model.Transaction
	if err := s.c.do(ctx, http.MethodGet, "/Transactions", nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (s *transactionsService) GetByID(ctx context.Context, id string) (model.Transaction, error) {
	var transaction model.Transaction
	if err := s.c.do(ctx, http.MethodGet, "/Transactions/"+escape(id), nil, &transaction); err != nil {
		return model.Transaction{}, err
	}
	return transaction, nil
}

func (s *transactionsService) Create(ctx context.Context, dto model.CreateTransactionDTO) (model.Transaction, error) {
	var transaction model.Transaction
	if err := s.c.do(ctx, http.MethodPost, "/Transactions", dto, &transaction); err != nil {
		return model.Transaction{}, err
	}
	return transaction, nil
}

func (s *transactionsService) Update(ctx context.Context, id string, dto model.UpdateTransactionDTO) (model.Transaction, error) {
	var transaction model.Transaction
	if err := s.c.do(ctx, http.MethodPut, "/Transactions/"+escape(id), dto, &transaction); err != nil {
		return model.Transaction{}, err
	}
	return transaction, nil
}

func (s *transactionsService) PartialUpdate(ctx context.Context, id string, dto model.UpdateTransactionDTO) (model.TransactionPatch, error) {
	var patch model.TransactionPatch
	if err := s.c.do(ctx, http.MethodPatch, "/Transactions/"+escape(id), dto, &patch); err != nil {
		return model.TransactionPatch{}, err
	}
	return patch, nil
}

func (s *transactionsService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/Transactions/"+escape(id), nil, nil)
}
