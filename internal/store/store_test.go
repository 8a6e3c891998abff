package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneytracker/internal/api"
	"moneytracker/internal/model"
)

type mocks struct {
	people       *api.MockPersonService
	categories   *api.MockCategoryService
	transactions *api.MockTransactionService
}

func newTestStore() (*Store, *mocks) {
	m := &mocks{
		people:       &api.MockPersonService{},
		categories:   &api.MockCategoryService{},
		transactions: &api.MockTransactionService{},
	}
	return NewWithServices(m.people, m.categories, m.transactions), m
}

func person(id, name string) model.Person {
	return model.Person{ID: id, Name: name, BirthDate: model.NewDate(1990, time.January, 1)}
}

func transaction(id, personID string) model.Transaction {
	return model.Transaction{
		ID:         id,
		PersonID:   personID,
		CategoryID: "c1",
		Type:       model.TypeExpense,
		Amount:     10,
	}
}

func TestFetchPeopleReplacesItems(t *testing.T) {
	s, m := newTestStore()
	m.people.GetAllFn = func(context.Context) ([]model.Person, error) {
		return []model.Person{person("1", "Maria"), person("2", "João")}, nil
	}

	require.NoError(t, s.FetchPeople(context.Background()))

	snap := s.People().Snapshot()
	require.Len(t, snap.Items, 2)
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Error)

	// A later fetch replaces wholesale, not appends.
	m.people.GetAllFn = func(context.Context) ([]model.Person, error) {
		return []model.Person{person("3", "Ana")}, nil
	}
	require.NoError(t, s.FetchPeople(context.Background()))
	snap = s.People().Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "3", snap.Items[0].ID)
}

func TestFetchSetsLoadingAndClearsError(t *testing.T) {
	s, m := newTestStore()

	// Seed an error from a failed fetch.
	m.people.GetAllFn = func(context.Context) ([]model.Person, error) {
		return nil, errors.New("boom")
	}
	require.Error(t, s.FetchPeople(context.Background()))
	assert.Equal(t, "Erro ao buscar pessoas", s.People().Snapshot().Error)

	// During the next fetch, loading is on and the error is cleared.
	m.people.GetAllFn = func(context.Context) ([]model.Person, error) {
		snap := s.People().Snapshot()
		assert.True(t, snap.Loading)
		assert.Empty(t, snap.Error)
		return nil, nil
	}
	require.NoError(t, s.FetchPeople(context.Background()))
	assert.False(t, s.People().Snapshot().Loading)
}

func TestFetchPersonByIDPopulatesSelected(t *testing.T) {
	s, m := newTestStore()
	m.people.GetByIDFn = func(_ context.Context, id string) (model.Person, error) {
		return person(id, "Maria"), nil
	}

	require.NoError(t, s.FetchPersonByID(context.Background(), "7"))

	snap := s.People().Snapshot()
	require.NotNil(t, snap.Selected)
	assert.Equal(t, "7", snap.Selected.ID)
	assert.Empty(t, snap.Items, "fetching one person does not touch the list")
}

func TestCreatePersonAppendsAndSetsSuccess(t *testing.T) {
	s, m := newTestStore()
	m.people.GetAllFn = func(context.Context) ([]model.Person, error) {
		return []model.Person{person("1", "Maria")}, nil
	}
	require.NoError(t, s.FetchPeople(context.Background()))

	m.people.CreateFn = func(_ context.Context, dto model.CreatePersonDTO) (model.Person, error) {
		return model.Person{ID: "2", Name: dto.Name, BirthDate: dto.BirthDate}, nil
	}

	require.NoError(t, s.CreatePerson(context.Background(), model.CreatePersonDTO{
		Name:      "João",
		BirthDate: model.NewDate(2000, time.May, 5),
	}))

	snap := s.People().Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "João", snap.Items[1].Name, "created entity is appended")
	assert.Equal(t, "Pessoa criada com sucesso", snap.Success)
}

func TestCreateFailureLeavesItemsUntouched(t *testing.T) {
	s, m := newTestStore()
	m.categories.GetAllFn = func(context.Context) ([]model.Category, error) {
		return []model.Category{{ID: "c1", Name: "Mercado", Type: model.TypeExpense}}, nil
	}
	require.NoError(t, s.FetchCategories(context.Background()))

	m.categories.CreateFn = func(context.Context, model.CreateCategoryDTO) (model.Category, error) {
		return model.Category{}, errors.New("network down")
	}

	err := s.CreateCategory(context.Background(), model.CreateCategoryDTO{
		Name: "Lazer", Description: "Saídas", Type: model.TypeExpense,
	})
	require.Error(t, err)

	snap := s.Categories().Snapshot()
	require.Len(t, snap.Items, 1, "failed create must not change the list")
	assert.Equal(t, "Erro ao criar categoria", snap.Error)
	assert.Empty(t, snap.Success)
}

func TestErrorFieldPrefersNormalizedAPIMessage(t *testing.T) {
	s, m := newTestStore()
	m.transactions.GetAllFn = func(context.Context) ([]model.Transaction, error) {
		return nil, &api.Error{Message: "Sessão expirada", Status: 401}
	}

	require.Error(t, s.FetchTransactions(context.Background()))
	assert.Equal(t, "Sessão expirada", s.Transactions().Snapshot().Error)
}

func TestUpdatePersonReplacesInPlace(t *testing.T) {
	s, m := newTestStore()
	m.people.GetAllFn = func(context.Context) ([]model.Person, error) {
		return []model.Person{person("1", "Maria"), person("2", "João"), person("3", "Ana")}, nil
	}
	require.NoError(t, s.FetchPeople(context.Background()))

	m.people.UpdateFn = func(_ context.Context, id string, dto model.UpdatePersonDTO) (model.Person, error) {
		return model.Person{ID: id, Name: *dto.Name}, nil
	}

	name := "João Pedro"
	require.NoError(t, s.UpdatePerson(context.Background(), "2", model.UpdatePersonDTO{Name: &name}))

	snap := s.People().Snapshot()
	require.Len(t, snap.Items, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{snap.Items[0].ID, snap.Items[1].ID, snap.Items[2].ID},
		"positional order is preserved")
	assert.Equal(t, "João Pedro", snap.Items[1].Name)
	assert.Equal(t, "Pessoa atualizada com sucesso", snap.Success)
}

func TestPartialUpdateMergesReturnedFieldsOnly(t *testing.T) {
	s, m := newTestStore()
	m.categories.GetAllFn = func(context.Context) ([]model.Category, error) {
		return []model.Category{{
			ID: "c1", Name: "Mercado", Description: "Compras", Type: model.TypeExpense,
		}}, nil
	}
	require.NoError(t, s.FetchCategories(context.Background()))

	desc := "Compras do mês"
	m.categories.PartialUpdateFn = func(context.Context, string, model.UpdateCategoryDTO) (model.CategoryPatch, error) {
		return model.CategoryPatch{
			UpdateCategoryDTO: model.UpdateCategoryDTO{Description: &desc},
		}, nil
	}

	require.NoError(t, s.PartialUpdateCategory(context.Background(), "c1", model.UpdateCategoryDTO{Description: &desc}))

	snap := s.Categories().Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "Compras do mês", snap.Items[0].Description)
	assert.Equal(t, "Mercado", snap.Items[0].Name, "fields absent from the response are preserved")
	assert.Equal(t, model.TypeExpense, snap.Items[0].Type)
	assert.Equal(t, "Categoria atualizada parcialmente com sucesso", snap.Success)
}

func TestDeleteTransactionRemovesById(t *testing.T) {
	s, m := newTestStore()
	m.transactions.GetAllFn = func(context.Context) ([]model.Transaction, error) {
		return []model.Transaction{transaction("t1", "1"), transaction("t2", "1")}, nil
	}
	require.NoError(t, s.FetchTransactions(context.Background()))

	require.NoError(t, s.DeleteTransaction(context.Background(), "t1"))

	snap := s.Transactions().Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "t2", snap.Items[0].ID)
	assert.Equal(t, "Transação deletada com sucesso", snap.Success)
	assert.Equal(t, []string{"t1"}, m.transactions.DeleteCalls)
}

func TestDeletePersonCascadesToLocalTransactions(t *testing.T) {
	s, m := newTestStore()
	m.people.GetAllFn = func(context.Context) ([]model.Person, error) {
		return []model.Person{person("1", "Maria"), person("2", "João")}, nil
	}
	m.transactions.GetAllFn = func(context.Context) ([]model.Transaction, error) {
		return []model.Transaction{
			transaction("t1", "1"),
			transaction("t2", "2"),
			transaction("t3", "1"),
			transaction("t4", "2"),
		}, nil
	}
	require.NoError(t, s.FetchPeople(context.Background()))
	require.NoError(t, s.FetchTransactions(context.Background()))

	require.NoError(t, s.DeletePerson(context.Background(), "1"))

	people := s.People().Snapshot()
	require.Len(t, people.Items, 1)
	assert.Equal(t, "2", people.Items[0].ID)
	assert.Equal(t, "Pessoa deletada com sucesso", people.Success)

	txs := s.Transactions().Snapshot()
	require.Len(t, txs.Items, 2, "exactly the deleted person's transactions are removed")
	assert.Equal(t, "t2", txs.Items[0].ID)
	assert.Equal(t, "t4", txs.Items[1].ID)

	// The cascade is local only: no remote transaction deletes.
	assert.Empty(t, m.transactions.DeleteCalls)

	// Deleting the other person removes the rest, regardless of order.
	require.NoError(t, s.DeletePerson(context.Background(), "2"))
	assert.Empty(t, s.Transactions().Snapshot().Items)
}

func TestDeletePersonFailureTouchesNothing(t *testing.T) {
	s, m := newTestStore()
	m.people.GetAllFn = func(context.Context) ([]model.Person, error) {
		return []model.Person{person("1", "Maria")}, nil
	}
	m.transactions.GetAllFn = func(context.Context) ([]model.Transaction, error) {
		return []model.Transaction{transaction("t1", "1")}, nil
	}
	require.NoError(t, s.FetchPeople(context.Background()))
	require.NoError(t, s.FetchTransactions(context.Background()))

	m.people.DeleteFn = func(context.Context, string) error {
		return &api.Error{Message: "Pessoa possui pendências", Status: 409}
	}

	require.Error(t, s.DeletePerson(context.Background(), "1"))

	assert.Len(t, s.People().Snapshot().Items, 1)
	assert.Equal(t, "Pessoa possui pendências", s.People().Snapshot().Error)
	assert.Len(t, s.Transactions().Snapshot().Items, 1, "no cascade on failure")
}

func TestClearErrorAndSuccess(t *testing.T) {
	s, m := newTestStore()
	m.people.GetAllFn = func(context.Context) ([]model.Person, error) {
		return nil, errors.New("boom")
	}
	require.Error(t, s.FetchPeople(context.Background()))
	require.NotEmpty(t, s.People().Snapshot().Error)

	s.People().ClearError()
	assert.Empty(t, s.People().Snapshot().Error)

	m.people.GetAllFn = nil
	m.people.CreateFn = func(context.Context, model.CreatePersonDTO) (model.Person, error) {
		return person("1", "Maria"), nil
	}
	require.NoError(t, s.CreatePerson(context.Background(), model.CreatePersonDTO{
		Name: "Maria", BirthDate: model.NewDate(1990, time.January, 1),
	}))
	require.NotEmpty(t, s.People().Snapshot().Success)

	s.People().ClearSuccess()
	assert.Empty(t, s.People().Snapshot().Success)
}

func TestSetSelectedIsLocal(t *testing.T) {
	s, _ := newTestStore()
	p := person("1", "Maria")

	s.People().SetSelected(&p)
	snap := s.People().Snapshot()
	require.NotNil(t, snap.Selected)
	assert.Equal(t, "1", snap.Selected.ID)

	s.People().SetSelected(nil)
	assert.Nil(t, s.People().Snapshot().Selected)
}

func TestStaleCompletionIsDiscarded(t *testing.T) {
	s, m := newTestStore()

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	calls := 0
	var mu sync.Mutex

	m.transactions.GetAllFn = func(context.Context) ([]model.Transaction, error) {
		mu.Lock()
		calls++
		mine := calls
		mu.Unlock()

		if mine == 1 {
			close(firstStarted)
			<-releaseFirst
			return []model.Transaction{transaction("old", "1")}, nil
		}
		return []model.Transaction{transaction("new", "1")}, nil
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = s.FetchTransactions(context.Background())
	}()

	<-firstStarted
	// A second fetch starts (and finishes) while the first is in flight.
	require.NoError(t, s.FetchTransactions(context.Background()))

	// Now the first, stale response arrives.
	close(releaseFirst)
	wg.Wait()

	snap := s.Transactions().Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "new", snap.Items[0].ID, "the superseded response must not clobber newer state")
	assert.False(t, snap.Loading)
}

func TestPopulateDisplayNames(t *testing.T) {
	s, m := newTestStore()
	m.people.GetAllFn = func(context.Context) ([]model.Person, error) {
		return []model.Person{person("1", "Maria")}, nil
	}
	m.categories.GetAllFn = func(context.Context) ([]model.Category, error) {
		return []model.Category{{ID: "c1", Name: "Mercado", Type: model.TypeExpense}}, nil
	}
	m.transactions.GetAllFn = func(context.Context) ([]model.Transaction, error) {
		return []model.Transaction{transaction("t1", "1"), transaction("t2", "ghost")}, nil
	}
	require.NoError(t, s.FetchPeople(context.Background()))
	require.NoError(t, s.FetchCategories(context.Background()))
	require.NoError(t, s.FetchTransactions(context.Background()))

	s.PopulateDisplayNames()

	items := s.Transactions().Snapshot().Items
	require.Len(t, items, 2)
	assert.Equal(t, "Maria", items[0].PersonName)
	assert.Equal(t, "Mercado", items[0].CategoryName)
	assert.Empty(t, items[1].PersonName, "unknown references stay blank")
}

func TestSnapshotIsACopy(t *testing.T) {
	s, m := newTestStore()
	m.people.GetAllFn = func(context.Context) ([]model.Person, error) {
		return []model.Person{person("1", "Maria")}, nil
	}
	require.NoError(t, s.FetchPeople(context.Background()))

	snap := s.People().Snapshot()
	snap.Items[0].Name = "Hacked"

	assert.Equal(t, "Maria", s.People().Snapshot().Items[0].Name)
}
