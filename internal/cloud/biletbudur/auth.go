package biletbudur

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/emreeozkull/biletbudur-cli/internal/auth"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/api"
)

const (
	accountsAPI = "/accounts/api"

	authenticatePath = accountsAPI + "/token/"
	refreshTokenPath = accountsAPI + "/token/refresh/"
	registerPath     = accountsAPI + "/register/"
)

type authPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshPayload struct {
	Refresh string `json:"refresh"`
}

// Authenticate exchanges the credentials for a token pair.
// Credentials are never sent alongside a stored token
func (c *client) Authenticate(ctx context.Context, email, password string) (auth.TokenPair, error) {
	res, err := c.doJSON(ctx, http.MethodPost, authenticatePath, authPayload{email, password}, api.RequestOptions{NoAuth: true})
	if err != nil {
		return auth.TokenPair{}, err
	}
	defer res.Body.Close()

	var tokens auth.TokenPair
	if err := json.NewDecoder(res.Body).Decode(&tokens); err != nil {
		return auth.TokenPair{}, err
	}
	return tokens, nil
}

func (c *client) Register(ctx context.Context, req auth.RegisterRequest) error {
	res, err := c.doJSON(ctx, http.MethodPost, registerPath, req, api.RequestOptions{NoAuth: true})
	if err != nil {
		return err
	}
	res.Body.Close()
	return nil
}

// RefreshToken exchanges the refresh token for a new access token.
// The refresh token of the returned pair is only set when the server rotated it
func (c *client) RefreshToken(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	res, err := c.doJSON(ctx, http.MethodPost, refreshTokenPath, refreshPayload{refreshToken}, api.RequestOptions{NoAuth: true, PreventRefresh: true})
	if err != nil {
		return auth.TokenPair{}, err
	}
	defer res.Body.Close()

	var tokens auth.TokenPair
	if err := json.NewDecoder(res.Body).Decode(&tokens); err != nil {
		return auth.TokenPair{}, err
	}
	return tokens, nil
}
