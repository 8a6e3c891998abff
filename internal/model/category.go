package model

import "time"

// Category classifies transactions as a particular kind of income or
// expense. Descriptions are limited to 400 characters. A category is
// only compatible with transactions of the same type.
type Category struct {
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Type        TransactionType `json:"type"`
}

// EntityID returns the server-assigned identifier.
func (c Category) EntityID() string { return c.ID }

// CreateCategoryDTO is the payload for POST /Categories.
type CreateCategoryDTO struct {
	Name        string          `json:"name"        validate:"required"`
	Description string          `json:"description" validate:"required,max=400"`
	Type        TransactionType `json:"type"        validate:"required,oneof=income expense"`
}

// UpdateCategoryDTO is the payload for PUT and PATCH /Categories/:id.
type UpdateCategoryDTO struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=400"`
	Type        *TransactionType `json:"type,omitempty"        validate:"omitempty,oneof=income expense"`
}

// CategoryPatch is the decoded body of a PATCH response.
type CategoryPatch struct {
	UpdateCategoryDTO
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Merge applies a partial update on top of c, preserving fields the
// server did not return.
func (c Category) Merge(patch CategoryPatch) Category {
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.Type != nil {
		c.Type = *patch.Type
	}
	if patch.UpdatedAt != nil {
		c.UpdatedAt = *patch.UpdatedAt
	}
	return c
}
