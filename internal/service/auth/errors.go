package auth

import "errors"

// Sentinel errors for token validation failures. Handlers compare against
// these with errors.Is to pick a response status.
var (
	// ErrInvalidToken is returned for malformed tokens and bad signatures.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken is returned once a token's expiry has passed.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid is returned when the nbf claim is in the future.
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken is returned when no token accompanies the request.
	ErrMissingToken = errors.New("authentication token is missing")
)
