package api

import (
	"context"

	"moneytracker/internal/model"
)

// PersonService defines the remote operations on /People. The
// interface exists so the store and CLI can be tested against mocks.
type PersonService interface {
	GetAll(ctx context.Context) ([]model.Person, error)
	GetByID(ctx context.Context, id string) (model.Person, error)
	Create(ctx context.Context, dto model.CreatePersonDTO) (model.Person, error)
	Update(ctx context.Context, id string, dto model.UpdatePersonDTO) (model.Person, error)
	PartialUpdate(ctx context.Context, id string, dto model.UpdatePersonDTO) (model.PersonPatch, error)
	Delete(ctx context.Context, id string) error
}

// CategoryService defines the remote operations on /Categories.
type CategoryService interface {
	GetAll(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id string) (model.Category, error)
	Create(ctx context.Context, dto model.CreateCategoryDTO) (model.Category, error)
	Update(ctx context.Context, id string, dto model.UpdateCategoryDTO) (model.Category, error)
	PartialUpdate(ctx context.Context, id string, dto model.UpdateCategoryDTO) (model.CategoryPatch, error)
	Delete(ctx context.Context, id string) error
}

// TransactionService defines the remote operations on /Transactions.
type TransactionService interface {
	GetAll(ctx context.Context) ([]model.Transaction, error)
	GetByID(ctx context.Context, id string) (model.Transaction, error)
	Create(ctx context.Context, dto model.CreateTransactionDTO) (model.Transaction, error)
	Update(ctx context.Context, id string, dto model.UpdateTransactionDTO) (model.Transaction, error)
	PartialUpdate(ctx context.Context, id string, dto model.UpdateTransactionDTO) (model.TransactionPatch, error)
	Delete(ctx context.Context, id string) error
}
