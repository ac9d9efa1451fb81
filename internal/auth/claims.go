package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the fields the client reads out of an access token.
// The token is never verified here, the server remains the authority on its validity
type Claims struct {
	UserID    string
	Email     string
	FirstName string
	LastName  string
	ExpiresAt time.Time
}

// Expired returns true when the token carries an expiry that has passed
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// ParseClaims reads the claims of the access token without verifying its signature
func ParseClaims(token string) (Claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Claims{}, fmt.Errorf("failed to parse access token: %w", err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("failed to read access token claims")
	}

	var claims Claims
	if v, ok := mapClaims["user_id"]; ok && v != nil {
		claims.UserID = fmt.Sprint(v)
	}
	claims.Email, _ = mapClaims["email"].(string)
	claims.FirstName, _ = mapClaims["first_name"].(string)
	claims.LastName, _ = mapClaims["last_name"].(string)

	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	return claims, nil
}

// identityFromToken builds the placeholder identity for a stored access token
func identityFromToken(token string, cached Identity) Identity {
	identity := cached
	claims, err := ParseClaims(token)
	if err != nil {
		return identity
	}
	if claims.Email != "" {
		identity.Email = claims.Email
	}
	if claims.FirstName != "" || claims.LastName != "" {
		identity.FirstName = claims.FirstName
		identity.LastName = claims.LastName
	}
	return identity
}
