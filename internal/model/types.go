// Package model defines the core entities managed by the application:
// people, categories and transactions, plus the DTOs exchanged with the
// remote API.
package model

import "fmt"

// TransactionType indicates whether a transaction or category represents
// income or expense. The two kinds are mutually exclusive.
type TransactionType string

const (
	// TypeIncome represents money coming in.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money going out.
	TypeExpense TransactionType = "expense"
)

// ParseTransactionType converts a raw string into a TransactionType.
// Only the exact values "income" and "expense" are accepted.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TypeIncome:
		return TypeIncome, nil
	case TypeExpense:
		return TypeExpense, nil
	default:
		return "", fmt.Errorf("invalid transaction type %q (want income or expense)", s)
	}
}

// IsValid reports whether t is one of the two known kinds.
func (t TransactionType) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Label returns the Portuguese display label for the type.
func (t TransactionType) Label() string {
	if t == TypeIncome {
		return "Receita"
	}
	return "Despesa"
}
