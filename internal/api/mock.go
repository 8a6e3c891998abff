package api

import (
	"context"

	"moneytracker/internal/model"
)

// MockPersonService is a hand-rolled mock of PersonService for tests.
// Set the Fn fields to control behavior; unset functions return zero
// values and no error.
type MockPersonService struct {
	GetAllFn        func(ctx context.Context) ([]model.Person, error)
	GetByIDFn       func(ctx context.Context, id string) (model.Person, error)
	CreateFn        func(ctx context.Context, dto model.CreatePersonDTO) (model.Person, error)
	UpdateFn        func(ctx context.Context, id string, dto model.UpdatePersonDTO) (model.Person, error)
	PartialUpdateFn func(ctx context.Context, id string, dto model.UpdatePersonDTO) (model.PersonPatch, error)
	DeleteFn        func(ctx context.Context, id string) error

	DeleteCalls []string
}

// GetAll implements PersonService.
func (m *MockPersonService) GetAll(ctx context.Context) ([]model.Person, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}
	return []model.Person{}, nil
}

// GetByID implements PersonService.
func (m *MockPersonService) GetByID(ctx context.Context, id string) (model.Person, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return model.Person{}, nil
}

// Create implements PersonService.
func (m *MockPersonService) Create(ctx context.Context, dto model.CreatePersonDTO) (model.Person, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, dto)
	}
	return model.Person{}, nil
}

// Update implements PersonService.
func (m *MockPersonService) Update(ctx context.Context, id string, dto model.UpdatePersonDTO) (model.Person, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, dto)
	}
	return model.Person{}, nil
}

// PartialUpdate implements PersonService.
func (m *MockPersonService) PartialUpdate(ctx context.Context, id string, dto model.UpdatePersonDTO) (model.PersonPatch, error) {
	if m.PartialUpdateFn != nil {
		return m.PartialUpdateFn(ctx, id, dto)
	}
	return model.PersonPatch{}, nil
}

// Delete implements PersonService.
func (m *MockPersonService) Delete(ctx context.Context, id string) error {
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// MockCategoryService is a hand-rolled mock of CategoryService.
type MockCategoryService struct {
	GetAllFn        func(ctx context.Context) ([]model.Category, error)
	GetByIDFn       func(ctx context.Context, id string) (model.Category, error)
	CreateFn        func(ctx context.Context, dto model.CreateCategoryDTO) (model.Category, error)
	UpdateFn        func(ctx context.Context, id string, dto model.UpdateCategoryDTO) (model.Category, error)
	PartialUpdateFn func(ctx context.Context, id string, dto model.UpdateCategoryDTO) (model.CategoryPatch, error)
	DeleteFn        func(ctx context.Context, id string) error

	DeleteCalls []string
}

// GetAll implements CategoryService.
func (m *MockCategoryService) GetAll(ctx context.Context) ([]model.Category, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}
	return []model.Category{}, nil
}

// GetByID implements CategoryService.
func (m *MockCategoryService) GetByID(ctx context.Context, id string) (model.Category, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return model.Category{}, nil
}

// Create implements CategoryService.
func (m *MockCategoryService) Create(ctx context.Context, dto model.CreateCategoryDTO) (model.Category, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, dto)
	}
	return model.Category{}, nil
}

// Update implements CategoryService.
func (m *MockCategoryService) Update(ctx context.Context, id string, dto model.UpdateCategoryDTO) (model.Category, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, dto)
	}
	return model.Category{}, nil
}

// PartialUpdate implements CategoryService.
func (m *MockCategoryService) PartialUpdate(ctx context.Context, id string, dto model.UpdateCategoryDTO) (model.CategoryPatch, error) {
	if m.PartialUpdateFn != nil {
		return m.PartialUpdateFn(ctx, id, dto)
	}
	return model.CategoryPatch{}, nil
}

// Delete implements CategoryService.
func (m *MockCategoryService) Delete(ctx context.Context, id string) error {
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// MockTransactionService is a hand-rolled mock of TransactionService.
type MockTransactionService struct {
	GetAllFn        func(ctx context.Context) ([]model.Transaction, error)
	GetByIDFn       func(ctx context.Context, id string) (model.Transaction, error)
	CreateFn        func(ctx context.Context, dto model.CreateTransactionDTO) (model.Transaction, error)
	UpdateFn        func(ctx context.Context, id string, dto model.UpdateTransactionDTO) (model.Transaction, error)
	PartialUpdateFn func(ctx context.Context, id string, dto model.UpdateTransactionDTO) (model.TransactionPatch, error)
	DeleteFn        func(ctx context.Context, id string) error

	DeleteCalls []string
}

// GetAll implements TransactionService.
func (m *MockTransactionService) GetAll(ctx context.Context) ([]model.Transaction, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}
	return []model.Transaction{}, nil
}

// GetByID implements TransactionService.
func (m *MockTransactionService) GetByID(ctx context.Context, id string) (model.Transaction, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return model.Transaction{}, nil
}

// Create implements TransactionService.
func (m *MockTransactionService) Create(ctx context.Context, dto model.CreateTransactionDTO) (model.Transaction, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, dto)
	}
	return model.Transaction{}, nil
}

// Update implements TransactionService.
func (m *MockTransactionService) Update(ctx context.Context, id string, dto model.UpdateTransactionDTO) (model.Transaction, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, dto)
	}
	return model.Transaction{}, nil
}

// PartialUpdate implements TransactionService.
func (m *MockTransactionService) PartialUpdate(ctx context.Context, id string, dto model.UpdateTransactionDTO) (model.TransactionPatch, error) {
	if m.PartialUpdateFn != nil {
		return m.PartialUpdateFn(ctx, id, dto)
	}
	return model.TransactionPatch{}, nil
}

// Delete implements TransactionService.
func (m *MockTransactionService) Delete(ctx context.Context, id string) error {
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
