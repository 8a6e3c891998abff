package model

import "time"

// Transaction is a single income or expense entry owned by a person and
// classified under a category. Amounts are always positive; the type
// decides the direction.
type Transaction struct {
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Date        Date            `json:"date"`
	ID          string          `json:"id"`
	PersonID    string          `json:"personId"`
	CategoryID  string          `json:"categoryId"`
	Description string          `json:"description"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`

	// Display-only fields resolved client-side from the people and
	// categories collections; never sent to the server.
	PersonName   string `json:"personName,omitempty"`
	CategoryName string `json:"categoryName,omitempty"`
}

// EntityID returns the server-assigned identifier.
func (t Transaction) EntityID() string { return t.ID }

// CreateTransactionDTO is the payload for POST /Transactions.
type CreateTransactionDTO struct {
	PersonID    string          `json:"personId"    validate:"required"`
	CategoryID  string          `json:"categoryId"  validate:"required"`
	Description string          `json:"description" validate:"required"`
	Date        Date            `json:"date"        validate:"required"`
	Type        TransactionType `json:"type"        validate:"required,oneof=income expense"`
	Amount      float64         `json:"amount"      validate:"required,gt=0"`
}

// UpdateTransactionDTO is the payload for PUT and PATCH /Transactions/:id.
type UpdateTransactionDTO struct {
	PersonID    *string          `json:"personId,omitempty"`
	CategoryID  *string          `json:"categoryId,omitempty"`
	Description *string          `json:"description,omitempty"`
	Date        *Date            `json:"date,omitempty"`
	Type        *TransactionType `json:"type,omitempty" validate:"omitempty,oneof=income expense"`
	Amount      *float64         `json:"amount,omitempty" validate:"omitempty,gt=0"`
}

// TransactionPatch is the decoded body of a PATCH response.
type TransactionPatch struct {
	UpdateTransactionDTO
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Merge applies a partial update on top of t, preserving fields the
// server did not return. Display names are cleared when the owning
// references change so stale joins are never shown.
func (t Transaction) Merge(patch TransactionPatch) Transaction {
	if patch.PersonID != nil {
		t.PersonID = *patch.PersonID
		t.PersonName = ""
	}
	if patch.CategoryID != nil {
		t.CategoryID = *patch.CategoryID
		t.CategoryName = ""
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Date != nil {
		t.Date = *patch.Date
	}
	if patch.Type != nil {
		t.Type = *patch.Type
	}
	if patch.Amount != nil {
		t.Amount = *patch.Amount
	}
	if patch.UpdatedAt != nil {
		t.UpdatedAt = *patch.UpdatedAt
	}
	return t
}
