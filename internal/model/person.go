package model

import "time"

// Person represents a member of the household whose transactions are
// tracked. Names are limited to 200 characters, and a person younger
// than 18 may only own expense transactions.
type Person struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	BirthDate Date      `json:"birthDate"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
}

// EntityID returns the server-assigned identifier.
func (p Person) EntityID() string { return p.ID }

// CreatePersonDTO is the payload for POST /People. Server-assigned
// fields (id, createdAt, updatedAt) are omitted.
type CreatePersonDTO struct {
	Name      string `json:"name"      validate:"required,max=200"`
	BirthDate Date   `json:"birthDate" validate:"required"`
}

// UpdatePersonDTO is the payload for PUT and PATCH /People/:id. Nil
// fields are left out of the request body.
type UpdatePersonDTO struct {
	Name      *string `json:"name,omitempty"      validate:"omitempty,max=200"`
	BirthDate *Date   `json:"birthDate,omitempty"`
}

// PersonPatch is the decoded body of a PATCH response. A nil field
// means the server did not return it.
type PersonPatch struct {
	UpdatePersonDTO
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Merge applies a partial update on top of p. Fields absent from the
// patch keep their prior value, never a default.
func (p Person) Merge(patch PersonPatch) Person {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.BirthDate != nil {
		p.BirthDate = *patch.BirthDate
	}
	if patch.UpdatedAt != nil {
		p.UpdatedAt = *patch.UpdatedAt
	}
	return p
}
