package api

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
// Username and password are mandatory; the remaining fields are optional.
type RegisterRequest struct {
	Username    string `json:"username"    validate:"required"`
	Email       string `json:"email"       validate:"omitempty,email"`
	Password    string `json:"password"    validate:"required"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Description string `json:"description"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse defines the successful response for the login endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse defines a plain informational response body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ResetPasswordRequest defines the payload for the password reset endpoint.
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest defines the payload for the profile update endpoint.
// All fields are optional; empty fields are left untouched (sparse update).
type UpdateProfileRequest struct {
	Email       string `json:"email"       validate:"omitempty,email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Description string `json:"description"`
}

// ShoppingListRequest defines the payload for creating or updating a
// shopping list.
type ShoppingListRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// ItemRequest defines the payload for creating or updating an item.
// Bought is ignored on creation (new items always start unbought).
type ItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Bought      bool   `json:"bought"`
}
