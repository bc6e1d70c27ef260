package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a registered user account. It carries the credentials
// and identity fields; free-text profile data lives on the associated
// Profile entity.
type Account struct {
	ID             uuid.UUID  `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	Password       string     `json:"-"` // Plaintext password, held only until hashing
	HashedPassword string     `json:"-"` // Never expose password hash in JSON
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Superuser      bool       `json:"-"`
	LastLoginAt    *time.Time `json:"last_login"`
	JoinedAt       time.Time  `json:"date_joined"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewAccount creates a new Account with the given registration fields.
// It generates a new UUID and sets the join/update timestamps.
// Returns an error if validation fails.
//
// NOTE: This function only sets up the account structure with the plaintext
// password. The caller is responsible for hashing the password before storage.
func NewAccount(username, email, password, firstName, lastName string) (*Account, error) {
	now := time.Now().UTC()
	account := &Account{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Password:  password, // Plaintext password - must be hashed before storage
		FirstName: firstName,
		LastName:  lastName,
		JoinedAt:  now,
		UpdatedAt: now,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks if the Account has valid data.
// Returns an error if any field fails validation.
func (a *Account) Validate() error {
	if a.ID == uuid.Nil {
		return ErrInvalidID
	}

	if a.Username == "" {
		return ErrEmptyUsername
	}

	// During creation the plaintext password is present; for accounts loaded
	// from the store only the hash is carried.
	if a.Password == "" && a.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}
