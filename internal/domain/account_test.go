package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		username  string
		email     string
		password  string
		firstName string
		lastName  string
		wantErr   error
	}{
		{
			name:      "valid account",
			username:  "groceryfan",
			email:     "groceryfan@example.com",
			password:  "password123",
			firstName: "Grace",
			lastName:  "Fan",
			wantErr:   nil,
		},
		{
			name:     "valid account with only required fields",
			username: "minimal",
			password: "password123",
			wantErr:  nil,
		},
		{
			name:     "empty username",
			username: "",
			password: "password123",
			wantErr:  ErrEmptyUsername,
		},
		{
			name:     "empty password",
			username: "groceryfan",
			password: "",
			wantErr:  ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			account, err := NewAccount(tt.username, tt.email, tt.password, tt.firstName, tt.lastName)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, account)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, account)
			assert.NotEqual(t, uuid.Nil, account.ID)
			assert.Equal(t, tt.username, account.Username)
			assert.Equal(t, tt.email, account.Email)
			assert.Equal(t, tt.password, account.Password)
			assert.Empty(t, account.HashedPassword)
			assert.False(t, account.Superuser)
			assert.Nil(t, account.LastLoginAt)
			assert.WithinDuration(t, time.Now().UTC(), account.JoinedAt, time.Minute)
		})
	}
}

func TestAccountValidate(t *testing.T) {
	t.Parallel()

	t.Run("stored account with only a hash is valid", func(t *testing.T) {
		t.Parallel()

		account := &Account{
			ID:             uuid.New(),
			Username:       "stored",
			HashedPassword: "$2a$10$somethinghashed",
		}
		assert.NoError(t, account.Validate())
	})

	t.Run("nil ID is invalid", func(t *testing.T) {
		t.Parallel()

		account := &Account{
			Username:       "stored",
			HashedPassword: "$2a$10$somethinghashed",
		}
		assert.ErrorIs(t, account.Validate(), ErrInvalidID)
	})

	t.Run("neither password nor hash is invalid", func(t *testing.T) {
		t.Parallel()

		account := &Account{
			ID:       uuid.New(),
			Username: "stored",
		}
		assert.ErrorIs(t, account.Validate(), ErrEmptyPassword)
	})
}
