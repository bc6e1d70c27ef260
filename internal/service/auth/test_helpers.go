package auth

import "time"

// NewTestJWTService creates a JWT service with an injectable clock, custom
// lifetime, and zero clock skew. Tests use the clock to exercise expiry
// behavior deterministically (e.g., issue with a 1-minute lifetime, then
// validate 2 minutes later).
func NewTestJWTService(secret string, lifetime time.Duration, timeFunc func() time.Time) JWTService {
	if timeFunc == nil {
		timeFunc = time.Now
	}
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
		clockSkew:     0,
	}
}
