package mock

import (
	"context"

	"github.com/emreeozkull/biletbudur-cli/internal/auth"
	"github.com/emreeozkull/biletbudur-cli/internal/cloud/biletbudur"
)

// BiletbudurClient is a mocked biletbudur client
type BiletbudurClient struct {
	biletbudur.Client
	AuthenticateFn         func(email, password string) (auth.TokenPair, error)
	RegisterFn             func(req auth.RegisterRequest) error
	RefreshTokenFn         func(refreshToken string) (auth.TokenPair, error)
	FavoritesFn            func() ([]biletbudur.Event, error)
	PastFavoritesFn        func() ([]biletbudur.Event, error)
	FavoritePerformersFn   func() ([]biletbudur.Performer, error)
	AddFavoritePerformerFn func(name string) error
	EventsFn               func(rows int) ([]biletbudur.Event, error)
	StatusFn               func() error
}

// Authenticate calls the mocked Authenticate implementation if provided,
// otherwise the call falls back to the underlying biletbudur.Client implementation.
// NOTE: this may panic if the underlying biletbudur.Client is left undefined
func (c BiletbudurClient) Authenticate(ctx context.Context, email, password string) (auth.TokenPair, error) {
	if c.AuthenticateFn != nil {
		return c.AuthenticateFn(email, password)
	}
	return c.Client.Authenticate(ctx, email, password)
}

// Register calls the mocked Register implementation if provided,
// otherwise the call falls back to the underlying biletbudur.Client implementation.
// NOTE: this may panic if the underlying biletbudur.Client is left undefined
func (c BiletbudurClient) Register(ctx context.Context, req auth.RegisterRequest) error {
	if c.RegisterFn != nil {
		return c.RegisterFn(req)
	}
	return c.Client.Register(ctx, req)
}

// RefreshToken calls the mocked RefreshToken implementation if provided,
// otherwise the call falls back to the underlying biletbudur.Client implementation.
// NOTE: this may panic if the underlying biletbudur.Client is left undefined
func (c BiletbudurClient) RefreshToken(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	if c.RefreshTokenFn != nil {
		return c.RefreshTokenFn(refreshToken)
	}
	return c.Client.RefreshToken(ctx, refreshToken)
}

// Favorites calls the mocked Favorites implementation if provided,
// otherwise the call falls back to the underlying biletbudur.Client implementation.
// NOTE: this may panic if the underlying biletbudur.Client is left undefined
func (c BiletbudurClient) Favorites(ctx context.Context) ([]biletbudur.Event, error) {
	if c.FavoritesFn != nil {
		return c.FavoritesFn()
	}
	return c.Client.Favorites(ctx)
}

// PastFavorites calls the mocked PastFavorites implementation if provided,
// otherwise the call falls back to the underlying biletbudur.Client implementation.
// NOTE: this may panic if the underlying biletbudur.Client is left undefined
func (c BiletbudurClient) PastFavorites(ctx context.Context) ([]biletbudur.Event, error) {
	if c.PastFavoritesFn != nil {
		return c.PastFavoritesFn()
	}
	return c.Client.PastFavorites(ctx)
}

// FavoritePerformers calls the mocked FavoritePerformers implementation if provided,
// otherwise the call falls back to the underlying biletbudur.Client implementation.
// NOTE: this may panic if the underlying biletbudur.Client is left undefined
func (c BiletbudurClient) FavoritePerformers(ctx context.Context) ([]biletbudur.Performer, error) {
	if c.FavoritePerformersFn != nil {
		return c.FavoritePerformersFn()
	}
	return c.Client.FavoritePerformers(ctx)
}

// AddFavoritePerformer calls the mocked AddFavoritePerformer implementation if provided,
// otherwise the call falls back to the underlying biletbudur.Client implementation.
// NOTE: this may panic if the underlying biletbudur.Client is left undefined
func (c BiletbudurClient) AddFavoritePerformer(ctx context.Context, name string) error {
	if c.AddFavoritePerformerFn != nil {
		return c.AddFavoritePerformerFn(name)
	}
	return c.Client.AddFavoritePerformer(ctx, name)
}

// Events calls the mocked Events implementation if provided,
// otherwise the call falls back to the underlying biletbudur.Client implementation.
// NOTE: this may panic if the underlying biletbudur.Client is left undefined
func (c BiletbudurClient) Events(ctx context.Context, rows int) ([]biletbudur.Event, error) {
	if c.EventsFn != nil {
		return c.EventsFn(rows)
	}
	return c.Client.Events(ctx, rows)
}

// Status calls the mocked Status implementation if provided,
// otherwise the call falls back to the underlying biletbudur.Client implementation.
// NOTE: this may panic if the underlying biletbudur.Client is left undefined
func (c BiletbudurClient) Status(ctx context.Context) error {
	if c.StatusFn != nil {
		return c.StatusFn()
	}
	return c.Client.Status(ctx)
}
