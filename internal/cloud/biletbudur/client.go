package biletbudur

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/emreeozkull/biletbudur-cli/internal/auth"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/api"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the production biletbudur backend
	DefaultBaseURL = "https://www.biletbudur.tr"

	// DefaultTimeout bounds every request made by the client
	DefaultTimeout = 5 * time.Second

	userAgent = "biletbudur-cli"
)

// Client is a biletbudur client
type Client interface {
	Authenticate(ctx context.Context, email, password string) (auth.TokenPair, error)
	Register(ctx context.Context, req auth.RegisterRequest) error
	RefreshToken(ctx context.Context, refreshToken string) (auth.TokenPair, error)

	Favorites(ctx context.Context) ([]Event, error)
	PastFavorites(ctx context.Context) ([]Event, error)
	FavoritePerformers(ctx context.Context) ([]Performer, error)
	AddFavoritePerformer(ctx context.Context, name string) error

	Events(ctx context.Context, rows int) ([]Event, error)

	Status(ctx context.Context) error
}

// Option configures a client
type Option func(c *client)

// WithLogger sets the logger used to trace requests and token refreshes
func WithLogger(logger zerolog.Logger) Option {
	return func(c *client) { c.logger = logger }
}

// WithHTTPClient sets the http client used to send requests
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) { c.httpClient = httpClient }
}

// WithSessionExpiredHook sets the function called once a token refresh fails
// and the stored session has been cleared
func WithSessionExpiredHook(fn func()) Option {
	return func(c *client) { c.onSessionExpired = fn }
}

// NewClient creates a new biletbudur client that sends every request unauthenticated
func NewClient(baseURL string, opts ...Option) Client {
	return newClient(baseURL, nil, opts...)
}

// NewAuthClient creates a new biletbudur client that authorizes its requests
// with the tokens of store and refreshes them when the server rejects them
func NewAuthClient(baseURL string, store auth.CredentialStore, opts ...Option) Client {
	return newClient(baseURL, store, opts...)
}

type client struct {
	baseURL          string
	store            auth.CredentialStore
	httpClient       *http.Client
	logger           zerolog.Logger
	onSessionExpired func()
	refresher        *refresher
}

func newClient(baseURL string, store auth.CredentialStore, opts ...Option) *client {
	c := &client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		store:      store,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if store != nil {
		c.refresher = newRefresher(store, c.RefreshToken, c.sessionExpired, c.logger)
	}
	return c
}

func (c *client) sessionExpired() {
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

func (c *client) doJSON(ctx context.Context, method, path string, payload interface{}, options api.RequestOptions) (*http.Response, error) {
	jsonOptions, err := api.JSONRequestOptions(payload)
	if err != nil {
		return nil, err
	}
	jsonOptions.NoAuth = options.NoAuth
	jsonOptions.PreventRefresh = options.PreventRefresh
	return c.do(ctx, method, path, jsonOptions)
}

// do sends the request and returns the response of a 2xx status,
// every other status is returned as an error and its body is consumed
func (c *client) do(ctx context.Context, method, path string, options api.RequestOptions) (*http.Response, error) {
	token, err := c.authorize(options)
	if err != nil {
		return nil, err
	}
	return c.send(ctx, method, path, options, token, false)
}

func (c *client) send(ctx context.Context, method, path string, options api.RequestOptions, token string, retried bool) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(options.Body))
	if err != nil {
		return nil, err
	}

	for key, values := range options.Header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	req.Header.Set(api.HeaderAccept, api.MediaTypeApplicationJSON)
	req.Header.Set(api.HeaderUserAgent, userAgent)

	requestID := uuid.NewString()
	req.Header.Set(api.HeaderRequestID, requestID)

	if token != "" {
		req.Header.Set(api.HeaderAuthorization, "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		c.logger.Debug().Err(err).Str("method", method).Str("path", path).Str("request_id", requestID).Msg("request failed")
		return nil, api.NetworkError{Err: err}
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", res.StatusCode).
		Str("request_id", requestID).
		Bool("retried", retried).
		Msg("request completed")

	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		return res, nil
	}
	defer res.Body.Close()

	serverErr := api.ParseResponseError(res)
	if !isAuthFailure(serverErr) {
		return nil, serverErr
	}

	if retried || options.PreventRefresh || options.NoAuth || c.refresher == nil || path == refreshTokenPath {
		return nil, api.UnauthorizedError{StatusCode: serverErr.StatusCode, Err: serverErr}
	}

	newToken, err := c.refresher.token(ctx, token)
	if err != nil {
		return nil, err
	}
	return c.send(ctx, method, path, options, newToken, true)
}

// authorize returns the access token the request is sent with,
// a missing token sends the request unauthenticated
func (c *client) authorize(options api.RequestOptions) (string, error) {
	if options.NoAuth || c.store == nil {
		return "", nil
	}
	token, ok, err := c.store.Get(auth.KeyAccessToken)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return token, nil
}

// isAuthFailure reports whether the server rejected the credentials of a request
func isAuthFailure(err api.ServerError) bool {
	switch err.StatusCode {
	case http.StatusUnauthorized:
		return true
	case http.StatusForbidden:
		return err.Code == api.CodeTokenNotValid || err.Detail == api.DetailCredentialsMissing
	}
	return false
}

// IsAuthFailure reports whether err is an authorization failure surfaced by the client
func IsAuthFailure(err error) bool {
	return errors.Is(err, api.ErrUnauthorized)
}
