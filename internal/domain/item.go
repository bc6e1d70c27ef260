package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item is a single entry on a shopping list. The Bought flag starts false
// and is toggled through updates.
type Item struct {
	ID          uuid.UUID `json:"id"`
	ListID      uuid.UUID `json:"-"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Bought      bool      `json:"bought"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewItem creates a new Item on the given list. Bought defaults to false.
// Returns an error if validation fails.
func NewItem(listID uuid.UUID, name, description string) (*Item, error) {
	now := time.Now().UTC()
	item := &Item{
		ID:          uuid.New(),
		ListID:      listID,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the Item has valid data.
func (i *Item) Validate() error {
	if i.ID == uuid.Nil {
		return ErrInvalidID
	}

	if i.ListID == uuid.Nil {
		return NewValidationError("list_id", "is required", ErrValidation)
	}

	if i.Name == "" {
		return ErrEmptyName
	}

	return nil
}
