package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile extends an Account with free-text data. Every Profile belongs to
// exactly one Account and vice versa; the pairing is created atomically at
// registration time.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	AccountID   uuid.UUID `json:"account_id"`
	Description string    `json:"description"`

	// CachedToken holds the most recently issued auth token for the account.
	// It is a convenience cache only: token validation works from the token's
	// own signed contents and never consults this field.
	CachedToken string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProfile creates a new Profile for the given account.
func NewProfile(accountID uuid.UUID, description string) (*Profile, error) {
	now := time.Now().UTC()
	profile := &Profile{
		ID:          uuid.New(),
		AccountID:   accountID,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return profile, nil
}

// Validate checks if the Profile has valid data.
func (p *Profile) Validate() error {
	if p.ID == uuid.Nil {
		return ErrInvalidID
	}

	if p.AccountID == uuid.Nil {
		return NewValidationError("account_id", "is required", ErrValidation)
	}

	return nil
}

// CompositeProfile is the flattened, read-only merge of Account and Profile
// fields returned to API clients. It is a view, not a stored entity.
type CompositeProfile struct {
	Username    string     `json:"username"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email"`
	Description string     `json:"description"`
	LastLogin   *time.Time `json:"last_login"`
	DateJoined  time.Time  `json:"date_joined"`
}

// ComposeProfile merges an Account and its Profile into the external view.
func ComposeProfile(account *Account, profile *Profile) CompositeProfile {
	return CompositeProfile{
		Username:    account.Username,
		FirstName:   account.FirstName,
		LastName:    account.LastName,
		Email:       account.Email,
		Description: profile.Description,
		LastLogin:   account.LastLoginAt,
		DateJoined:  account.JoinedAt,
	}
}
