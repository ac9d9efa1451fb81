package biletbudur

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/emreeozkull/biletbudur-cli/internal/auth"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/api"

	"github.com/rs/zerolog"
)

var errNoRefreshToken = errors.New("no refresh token stored")

type refreshResult struct {
	token string
	err   error
}

// refresher makes sure at most one token refresh is in flight.
// Requests failing while a refresh runs wait for its outcome in arrival order
type refresher struct {
	store     auth.CredentialStore
	refresh   func(ctx context.Context, refreshToken string) (auth.TokenPair, error)
	onExpired func()
	logger    zerolog.Logger

	mu         sync.Mutex
	refreshing bool
	waiters    []chan refreshResult
}

func newRefresher(
	store auth.CredentialStore,
	refresh func(ctx context.Context, refreshToken string) (auth.TokenPair, error),
	onExpired func(),
	logger zerolog.Logger,
) *refresher {
	return &refresher{
		store:     store,
		refresh:   refresh,
		onExpired: onExpired,
		logger:    logger,
	}
}

// token returns an access token to replay a request rejected with staleToken
func (r *refresher) token(ctx context.Context, staleToken string) (string, error) {
	r.mu.Lock()
	if r.refreshing {
		ch := make(chan refreshResult, 1)
		r.waiters = append(r.waiters, ch)
		r.logger.Debug().Int("waiters", len(r.waiters)).Msg("waiting for token refresh")
		r.mu.Unlock()

		select {
		case res := <-ch:
			return res.token, res.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	current, ok, err := r.store.Get(auth.KeyAccessToken)
	if err != nil {
		r.mu.Unlock()
		return "", err
	}
	if ok && current != staleToken {
		r.mu.Unlock()
		r.logger.Debug().Msg("replaying request with the refreshed access token")
		return current, nil
	}

	r.refreshing = true
	r.mu.Unlock()

	r.logger.Debug().Msg("refreshing access token")

	// the outcome is shared by every waiter, so the caller's cancellation must not abort it
	token, err := r.run(context.WithoutCancel(ctx))

	r.mu.Lock()
	waiters := r.waiters
	r.waiters = nil
	r.refreshing = false
	r.mu.Unlock()

	for _, ch := range waiters {
		ch <- refreshResult{token, err}
	}

	if err != nil {
		r.logger.Debug().Err(err).Int("waiters", len(waiters)).Msg("token refresh failed")
		if r.onExpired != nil {
			r.onExpired()
		}
		return "", err
	}

	r.logger.Debug().Int("waiters", len(waiters)).Msg("token refresh succeeded")
	return token, nil
}

func (r *refresher) run(ctx context.Context) (string, error) {
	refreshToken, ok, err := r.store.Get(auth.KeyRefreshToken)
	if err != nil {
		return "", api.RefreshFailedError{Err: err}
	}
	if !ok || refreshToken == "" {
		if err := r.store.ClearTokens(); err != nil {
			return "", api.RefreshFailedError{Err: fmt.Errorf("%s: %w", errNoRefreshToken, err)}
		}
		return "", api.RefreshFailedError{Err: errNoRefreshToken}
	}

	tokens, refreshErr := r.refresh(ctx, refreshToken)
	if refreshErr == nil && tokens.Access == "" {
		refreshErr = errors.New("no access token received")
	}
	if refreshErr != nil {
		swapped, err := r.store.SwapTokens(refreshToken, auth.TokenPair{})
		if err != nil {
			return "", api.RefreshFailedError{Err: fmt.Errorf("%s: %w", refreshErr, err)}
		}
		if swapped {
			return "", api.RefreshFailedError{Err: refreshErr}
		}
		return r.replacedSession()
	}

	if tokens.Refresh == "" {
		tokens.Refresh = refreshToken
	}

	swapped, err := r.store.SwapTokens(refreshToken, tokens)
	if err != nil {
		return "", api.RefreshFailedError{Err: err}
	}
	if swapped {
		return tokens.Access, nil
	}
	return r.replacedSession()
}

// replacedSession returns the access token of a session
// stored by a login or a logout while refreshing
func (r *refresher) replacedSession() (string, error) {
	current, ok, err := r.store.Get(auth.KeyAccessToken)
	if err != nil {
		return "", api.RefreshFailedError{Err: err}
	}
	if !ok {
		return "", api.RefreshFailedError{Err: errors.New("session ended while refreshing")}
	}
	return current, nil
}
