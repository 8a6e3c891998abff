// Package report computes aggregate financial views from snapshots of
// the entity collections. Both computations are pure and deterministic:
// they never mutate their inputs and always produce fresh values, so
// callers recompute after every mutation instead of patching a report
// in place.
package report

import "moneytracker/internal/model"

// PersonReport holds the totals for a single person. A person with no
// transactions still gets a report with zeroed totals.
type PersonReport struct {
	PersonID     string  `json:"personId"`
	PersonName   string  `json:"personName"`
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Balance      float64 `json:"balance"`
}

// GeneralReport aggregates totals across all people plus a grand total.
type GeneralReport struct {
	PeopleReports []PersonReport `json:"peopleReports"`
	TotalIncome   float64        `json:"totalIncome"`
	TotalExpense  float64        `json:"totalExpense"`
	NetBalance    float64        `json:"netBalance"`
}

// CategoryReport holds the totals for a single category. Categories
// without transactions are excluded from the output entirely.
type CategoryReport struct {
	CategoryID       string                `json:"categoryId"`
	CategoryName     string                `json:"categoryName"`
	Type             model.TransactionType `json:"type"`
	Total            float64               `json:"total"`
	TransactionCount int                   `json:"transactionCount"`
}

// ComputeGeneralReport groups transactions by person and totals income,
// expense and balance per person and overall. Report order follows the
// people slice. Transactions referencing an unknown personId are
// skipped silently; a type that is neither income nor expense
// contributes to no total.
func ComputeGeneralReport(people []model.Person, transactions []model.Transaction) GeneralReport {
	reports := make([]PersonReport, 0, len(people))
	index := make(map[string]int, len(people))

	for _, person := range people {
		index[person.ID] = len(reports)
		reports = append(reports, PersonReport{
			PersonID:   person.ID,
			PersonName: person.Name,
		})
	}

	for _, tx := range transactions {
		i, ok := index[tx.PersonID]
		if !ok {
			continue
		}
		switch tx.Type {
		case model.TypeIncome:
			reports[i].TotalIncome += tx.Amount
		case model.TypeExpense:
			reports[i].TotalExpense += tx.Amount
		}
		reports[i].Balance = reports[i].TotalIncome - reports[i].TotalExpense
	}

	var general GeneralReport
	general.PeopleReports = reports
	for _, r := range reports {
		general.TotalIncome += r.TotalIncome
		general.TotalExpense += r.TotalExpense
	}
	general.NetBalance = general.TotalIncome - general.TotalExpense

	return general
}

// ComputeCategoryReports totals transactions per category. Only
// categories with at least one transaction are returned, in the order
// they appear in the categories slice. Transactions referencing an
// unknown categoryId are skipped silently.
func ComputeCategoryReports(categories []model.Category, transactions []model.Transaction) []CategoryReport {
	reports := make([]CategoryReport, 0, len(categories))
	index := make(map[string]int, len(categories))

	for _, category := range categories {
		index[category.ID] = len(reports)
		reports = append(reports, CategoryReport{
			CategoryID:   category.ID,
			CategoryName: category.Name,
			Type:         category.Type,
		})
	}

	for _, tx := range transactions {
		i, ok := index[tx.CategoryID]
		if !ok {
			continue
		}
		reports[i].Total += tx.Amount
		reports[i].TransactionCount++
	}

	active := make([]CategoryReport, 0, len(reports))
	for _, r := range reports {
		if r.TransactionCount > 0 {
			active = append(active, r)
		}
	}
	return active
}
