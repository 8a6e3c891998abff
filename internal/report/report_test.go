package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneytracker/internal/model"
)

func tx(personID, categoryID string, txType model.TransactionType, amount float64) model.Transaction {
	return model.Transaction{
		ID:         personID + "-" + categoryID,
		PersonID:   personID,
		CategoryID: categoryID,
		Type:       txType,
		Amount:     amount,
		Date:       model.NewDate(2024, time.June, 1),
	}
}

func TestComputeGeneralReport(t *testing.T) {
	people := []model.Person{
		{ID: "1", Name: "A"},
		{ID: "2", Name: "B"},
	}
	transactions := []model.Transaction{
		tx("1", "c1", model.TypeIncome, 100),
		tx("1", "c1", model.TypeExpense, 40),
		tx("2", "c2", model.TypeIncome, 50),
	}

	got := ComputeGeneralReport(people, transactions)

	require.Len(t, got.PeopleReports, 2)
	assert.Equal(t, PersonReport{
		PersonID: "1", PersonName: "A",
		TotalIncome: 100, TotalExpense: 40, Balance: 60,
	}, got.PeopleReports[0])
	assert.Equal(t, PersonReport{
		PersonID: "2", PersonName: "B",
		TotalIncome: 50, TotalExpense: 0, Balance: 50,
	}, got.PeopleReports[1])

	assert.Equal(t, 150.0, got.TotalIncome)
	assert.Equal(t, 40.0, got.TotalExpense)
	assert.Equal(t, 110.0, got.NetBalance)
}

func TestComputeGeneralReportZeroTransactionPerson(t *testing.T) {
	people := []model.Person{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}}
	transactions := []model.Transaction{tx("1", "c1", model.TypeIncome, 10)}

	got := ComputeGeneralReport(people, transactions)

	require.Len(t, got.PeopleReports, 2, "people without transactions still get a report")
	assert.Equal(t, PersonReport{PersonID: "2", PersonName: "B"}, got.PeopleReports[1])
}

func TestComputeGeneralReportSkipsUnknownPerson(t *testing.T) {
	people := []model.Person{{ID: "1", Name: "A"}}
	transactions := []model.Transaction{
		tx("1", "c1", model.TypeIncome, 100),
		tx("ghost", "c1", model.TypeIncome, 999),
	}

	got := ComputeGeneralReport(people, transactions)

	assert.Equal(t, 100.0, got.TotalIncome, "unknown personId is skipped silently")
	assert.Equal(t, 100.0, got.NetBalance)
}

func TestComputeGeneralReportPreservesPeopleOrder(t *testing.T) {
	people := []model.Person{
		{ID: "z", Name: "Zara"},
		{ID: "a", Name: "Ana"},
		{ID: "m", Name: "Miguel"},
	}

	got := ComputeGeneralReport(people, nil)

	require.Len(t, got.PeopleReports, 3)
	assert.Equal(t, "z", got.PeopleReports[0].PersonID)
	assert.Equal(t, "a", got.PeopleReports[1].PersonID)
	assert.Equal(t, "m", got.PeopleReports[2].PersonID)
}

func TestComputeGeneralReportEmptyInputs(t *testing.T) {
	got := ComputeGeneralReport(nil, nil)
	assert.Empty(t, got.PeopleReports)
	assert.Zero(t, got.TotalIncome)
	assert.Zero(t, got.TotalExpense)
	assert.Zero(t, got.NetBalance)
}

func TestComputeCategoryReports(t *testing.T) {
	categories := []model.Category{
		{ID: "c1", Name: "Salário", Type: model.TypeIncome},
		{ID: "c2", Name: "Mercado", Type: model.TypeExpense},
		{ID: "c3", Name: "Lazer", Type: model.TypeExpense},
	}
	transactions := []model.Transaction{
		tx("1", "c1", model.TypeIncome, 3000),
		tx("1", "c2", model.TypeExpense, 250),
		tx("2", "c2", model.TypeExpense, 130),
		tx("2", "ghost", model.TypeExpense, 999),
	}

	got := ComputeCategoryReports(categories, transactions)

	require.Len(t, got, 2, "categories without transactions are excluded")
	assert.Equal(t, CategoryReport{
		CategoryID: "c1", CategoryName: "Salário",
		Type: model.TypeIncome, Total: 3000, TransactionCount: 1,
	}, got[0])
	assert.Equal(t, CategoryReport{
		CategoryID: "c2", CategoryName: "Mercado",
		Type: model.TypeExpense, Total: 380, TransactionCount: 2,
	}, got[1])
}

func TestComputeCategoryReportsAllEmpty(t *testing.T) {
	categories := []model.Category{{ID: "c1", Name: "Mercado", Type: model.TypeExpense}}
	assert.Empty(t, ComputeCategoryReports(categories, nil))
}

func TestReportsAreIdempotent(t *testing.T) {
	people := []model.Person{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}}
	categories := []model.Category{{ID: "c1", Name: "Mercado", Type: model.TypeExpense}}
	transactions := []model.Transaction{
		tx("1", "c1", model.TypeExpense, 40),
		tx("2", "c1", model.TypeExpense, 25),
	}

	first := ComputeGeneralReport(people, transactions)
	second := ComputeGeneralReport(people, transactions)
	assert.Equal(t, first, second)

	firstCats := ComputeCategoryReports(categories, transactions)
	secondCats := ComputeCategoryReports(categories, transactions)
	assert.Equal(t, firstCats, secondCats)
}

func TestReportsDoNotMutateInputs(t *testing.T) {
	people := []model.Person{{ID: "1", Name: "A"}}
	transactions := []model.Transaction{tx("1", "c1", model.TypeIncome, 10)}

	before := transactions[0]
	_ = ComputeGeneralReport(people, transactions)
	_ = ComputeCategoryReports(nil, transactions)
	assert.Equal(t, before, transactions[0])
}
