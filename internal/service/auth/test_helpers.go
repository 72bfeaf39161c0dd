package auth

import "time"

// NewJWTServiceForTest creates a JWT service with an injectable clock and
// no clock-skew leeway. Only for use in tests that need deterministic
// expiry behavior.
func NewJWTServiceForTest(
	secret string,
	tokenLifetime time.Duration,
	timeFunc func() time.Time,
) JWTService {
	if timeFunc == nil {
		timeFunc = time.Now
	}
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: tokenLifetime,
		timeFunc:      timeFunc,
		clockSkew:     0,
	}
}

// SetTimeFunc swaps the clock on an hmacJWTService and returns a restore
// function. Panics when s is not the HMAC implementation.
func SetTimeFunc(s JWTService, timeFunc func() time.Time) func() {
	impl, ok := s.(*hmacJWTService)
	if !ok {
		panic("SetTimeFunc: not an hmacJWTService")
	}
	prev := impl.timeFunc
	impl.timeFunc = timeFunc
	return func() { impl.timeFunc = prev }
}
