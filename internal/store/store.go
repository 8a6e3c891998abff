// Package store maintains the in-memory collections of people,
// categories and transactions, mirroring the remote API through
// explicit CRUD operations. The Store is a plain context object passed
// to whoever needs it; there is no package-level state. Each collection
// tracks one async operation at a time through loading/error/success
// fields, and every mutation round-trips the remote API before the
// local view changes.
package store

import (
	"context"
	"log/slog"

	"moneytracker/internal/api"
	"moneytracker/internal/model"
)

// Store owns the three entity collections.
type Store struct {
	peopleAPI       api.PersonService
	categoriesAPI   api.CategoryService
	transactionsAPI api.TransactionService

	people       Collection[model.Person]
	categories   Collection[model.Category]
	transactions Collection[model.Transaction]
}

// New builds a store backed by the remote API client.
func New(client *api.Client) *Store {
	return NewWithServices(client.People, client.Categories, client.Transactions)
}

// NewWithServices builds a store from individual services, letting
// tests substitute mocks.
func NewWithServices(people api.PersonService, categories api.CategoryService, transactions api.TransactionService) *Store {
	return &Store{
		peopleAPI:       people,
		categoriesAPI:   categories,
		transactionsAPI: transactions,
	}
}

// People exposes the people collection (snapshots and local actions).
func (s *Store) People() *Collection[model.Person] { return &s.people }

// Categories exposes the categories collection.
func (s *Store) Categories() *Collection[model.Category] { return &s.categories }

// Transactions exposes the transactions collection.
func (s *Store) Transactions() *Collection[model.Transaction] { return &s.transactions }

// People operations.

// FetchPeople replaces the people collection with the server's list.
func (s *Store) FetchPeople(ctx context.Context) error {
	return fetchAll(ctx, &s.people, s.peopleAPI.GetAll, "Erro ao buscar pessoas")
}

// FetchPersonByID loads one person into the collection's selected slot.
func (s *Store) FetchPersonByID(ctx context.Context, id string) error {
	return fetchByID(ctx, &s.people, func(ctx context.Context) (model.Person, error) {
		return s.peopleAPI.GetByID(ctx, id)
	}, "Erro ao buscar pessoa")
}

// CreatePerson creates a person remotely and appends the returned
// entity to the collection.
func (s *Store) CreatePerson(ctx context.Context, dto model.CreatePersonDTO) error {
	return createItem(ctx, &s.people, func(ctx context.Context) (model.Person, error) {
		return s.peopleAPI.Create(ctx, dto)
	}, "Pessoa criada com sucesso", "Erro ao criar pessoa")
}

// UpdatePerson fully replaces a person, preserving its position.
func (s *Store) UpdatePerson(ctx context.Context, id string, dto model.UpdatePersonDTO) error {
	return updateItem(ctx, &s.people, func(ctx context.Context) (model.Person, error) {
		return s.peopleAPI.Update(ctx, id, dto)
	}, "Pessoa atualizada com sucesso", "Erro ao atualizar pessoa")
}

// PartialUpdatePerson shallow-merges the fields the server returned
// into the existing person.
func (s *Store) PartialUpdatePerson(ctx context.Context, id string, dto model.UpdatePersonDTO) error {
	return patchItem(ctx, &s.people, id, func(ctx context.Context) (model.PersonPatch, error) {
		return s.peopleAPI.PartialUpdate(ctx, id, dto)
	}, model.Person.Merge, "Pessoa parcialmente atualizada com sucesso", "Erro ao atualizar parcialmente a pessoa")
}

// DeletePerson deletes the person remotely and, on success, also drops
// that person's transactions from the local transactions view. The
// cascade is a local filter only; the remote API owns whatever
// server-side cleanup it wants to do.
func (s *Store) DeletePerson(ctx context.Context, id string) error {
	err := deleteItem(ctx, &s.people, id, func(ctx context.Context) error {
		return s.peopleAPI.Delete(ctx, id)
	}, "Pessoa deletada com sucesso", "Erro ao deletar pessoa")
	if err != nil {
		return err
	}

	removed := s.transactions.removeWhere(func(tx model.Transaction) bool {
		return tx.PersonID == id
	})
	if removed > 0 {
		slog.Debug("Removed transactions of deleted person", "person_id", id, "count", removed)
	}
	return nil
}

// Category operations.

// FetchCategories replaces the categories collection with the server's list.
func (s *Store) FetchCategories(ctx context.Context) error {
	return fetchAll(ctx, &s.categories, s.categoriesAPI.GetAll, "Erro ao buscar categorias")
}

// FetchCategoryByID loads one category into the selected slot.
func (s *Store) FetchCategoryByID(ctx context.Context, id string) error {
	return fetchByID(ctx, &s.categories, func(ctx context.Context) (model.Category, error) {
		return s.categoriesAPI.GetByID(ctx, id)
	}, "Erro ao buscar categoria")
}

// CreateCategory creates a category remotely and appends it locally.
func (s *Store) CreateCategory(ctx context.Context, dto model.CreateCategoryDTO) error {
	return createItem(ctx, &s.categories, func(ctx context.Context) (model.Category, error) {
		return s.categoriesAPI.Create(ctx, dto)
	}, "Categoria criada com sucesso", "Erro ao criar categoria")
}

// UpdateCategory fully replaces a category, preserving its position.
func (s *Store) UpdateCategory(ctx context.Context, id string, dto model.UpdateCategoryDTO) error {
	return updateItem(ctx, &s.categories, func(ctx context.Context) (model.Category, error) {
		return s.categoriesAPI.Update(ctx, id, dto)
	}, "Categoria atualizada com sucesso", "Erro ao atualizar categoria")
}

// PartialUpdateCategory shallow-merges the returned fields into the
// existing category.
func (s *Store) PartialUpdateCategory(ctx context.Context, id string, dto model.UpdateCategoryDTO) error {
	return patchItem(ctx, &s.categories, id, func(ctx context.Context) (model.CategoryPatch, error) {
		return s.categoriesAPI.PartialUpdate(ctx, id, dto)
	}, model.Category.Merge, "Categoria atualizada parcialmente com sucesso", "Erro ao atualizar parcialmente a categoria")
}

// DeleteCategory deletes a category. There is no cascade: transactions
// keep their dangling categoryId and the category report skips them.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	return deleteItem(ctx, &s.categories, id, func(ctx context.Context) error {
		return s.categoriesAPI.Delete(ctx, id)
	}, "Categoria deletada com sucesso", "Erro ao deletar categoria")
}

// Transaction operations.

// FetchTransactions replaces the transactions collection with the
// server's list.
func (s *Store) FetchTransactions(ctx context.Context) error {
	return fetchAll(ctx, &s.transactions, s.transactionsAPI.GetAll, "Erro ao buscar transações")
}

// FetchTransactionByID loads one transaction into the selected slot.
func (s *Store) FetchTransactionByID(ctx context.Context, id string) error {
	return fetchByID(ctx, &s.transactions, func(ctx context.Context) (model.Transaction, error) {
		return s.transactionsAPI.GetByID(ctx, id)
	}, "Erro ao buscar transação")
}

// CreateTransaction creates a transaction remotely and appends it
// locally. Business-rule validation happens before this call; the
// store only applies outcomes.
func (s *Store) CreateTransaction(ctx context.Context, dto model.CreateTransactionDTO) error {
	return createItem(ctx, &s.transactions, func(ctx context.Context) (model.Transaction, error) {
		return s.transactionsAPI.Create(ctx, dto)
	}, "Transação criada com sucesso", "Erro ao criar transação")
}

// UpdateTransaction fully replaces a transaction, preserving its position.
func (s *Store) UpdateTransaction(ctx context.Context, id string, dto model.UpdateTransactionDTO) error {
	return updateItem(ctx, &s.transactions, func(ctx context.Context) (model.Transaction, error) {
		return s.transactionsAPI.Update(ctx, id, dto)
	}, "Transação atualizada com sucesso", "Erro ao atualizar transação")
}

// PartialUpdateTransaction shallow-merges the returned fields into the
// existing transaction.
func (s *Store) PartialUpdateTransaction(ctx context.Context, id string, dto model.UpdateTransactionDTO) error {
	return patchItem(ctx, &s.transactions, id, func(ctx context.Context) (model.TransactionPatch, error) {
		return s.transactionsAPI.PartialUpdate(ctx, id, dto)
	}, model.Transaction.Merge, "Transação parcialmente atualizada com sucesso", "Erro ao atualizar parcialmente a transação")
}

// DeleteTransaction deletes a single transaction.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	return deleteItem(ctx, &s.transactions, id, func(ctx context.Context) error {
		return s.transactionsAPI.Delete(ctx, id)
	}, "Transação deletada com sucesso", "Erro ao deletar transação")
}

// PopulateDisplayNames resolves each transaction's personName and
// categoryName from the current people and categories collections.
// Unknown references are left blank.
func (s *Store) PopulateDisplayNames() {
	peopleByID := make(map[string]string)
	for _, p := range s.people.Snapshot().Items {
		peopleByID[p.ID] = p.Name
	}
	categoriesByID := make(map[string]string)
	for _, c := range s.categories.Snapshot().Items {
		categoriesByID[c.ID] = c.Name
	}

	s.transactions.mutateItems(func(items []model.Transaction) {
		for i := range items {
			items[i].PersonName = peopleByID[items[i].PersonID]
			items[i].CategoryName = categoriesByID[items[i].CategoryID]
		}
	})
}
