package domain

import (
	"time"

	"github.com/google/uuid"
)

// ShoppingList represents one user's shopping list. Each list is owned by
// exactly one account; items belong to exactly one list.
type ShoppingList struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"-"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewShoppingList creates a new ShoppingList owned by the given account.
// Returns an error if validation fails.
func NewShoppingList(ownerID uuid.UUID, name, description string) (*ShoppingList, error) {
	now := time.Now().UTC()
	list := &ShoppingList{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := list.Validate(); err != nil {
		return nil, err
	}

	return list, nil
}

// Validate checks if the ShoppingList has valid data.
func (l *ShoppingList) Validate() error {
	if l.ID == uuid.Nil {
		return ErrInvalidID
	}

	if l.OwnerID == uuid.Nil {
		return NewValidationError("owner_id", "is required", ErrValidation)
	}

	if l.Name == "" {
		return ErrEmptyName
	}

	return nil
}
