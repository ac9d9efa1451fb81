package auth

import (
	"strings"
)

// set of supported credential store keys
const (
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
)

// TokenPair is the pair of credentials issued by the token endpoint
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// CredentialStore is the durable storage of the session credentials.
// Every write is durable by the time it returns
// and the store holds either a complete TokenPair or nothing
type CredentialStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error

	// SetTokens stores both tokens in a single durable write
	SetTokens(tokens TokenPair) error

	// ClearTokens removes both tokens in a single durable write
	ClearTokens() error

	// SwapTokens replaces the stored pair with tokens only if the stored
	// refresh token still equals expectedRefresh, a zero TokenPair clears the store
	SwapTokens(expectedRefresh string, tokens TokenPair) (bool, error)
}

// IdentityCache is implemented by stores that can remember
// the identity of the last login next to its credentials
type IdentityCache interface {
	CachedIdentity() (Identity, bool)
	CacheIdentity(identity Identity) error
}

// Identity is the minimal description of the authenticated user
type Identity struct {
	Email     string
	FirstName string
	LastName  string
}

// DisplayName returns the identity's full name, or its email when unnamed
func (i Identity) DisplayName() string {
	name := strings.TrimSpace(i.FirstName + " " + i.LastName)
	if name == "" {
		return i.Email
	}
	return name
}

// RedactToken returns the token with everything but its last characters redacted,
// the mask is capped so long tokens stay readable
func RedactToken(token string) string {
	const (
		visible = 6
		masked  = 12
	)
	if len(token) <= visible {
		return strings.Repeat("*", len(token))
	}
	n := len(token) - visible
	if n > masked {
		n = masked
	}
	return strings.Repeat("*", n) + token[len(token)-visible:]
}
