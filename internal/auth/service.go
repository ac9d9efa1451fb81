package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emreeozkull/biletbudur-cli/internal/utils/api"
)

// API is the remote side of the session: the token and register endpoints
type API interface {
	Authenticate(ctx context.Context, email, password string) (TokenPair, error)
	Register(ctx context.Context, req RegisterRequest) error
}

// RegisterRequest is the payload of a registration
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"password2"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`

	// Name is split into the first and last names when those are not set
	Name string `json:"-"`
}

// Service manages the session of the client: it owns the login, register,
// logout and restore operations and is the only writer of the session state
// apart from the implicit logout of a failed token refresh
type Service struct {
	store CredentialStore
	state *State
	api   API
}

// NewService creates a new session service
func NewService(store CredentialStore, state *State, api API) *Service {
	return &Service{store, state, api}
}

// State returns the session state managed by the service
func (s *Service) State() *State {
	return s.state
}

// Restore loads the session from the credential store on process start.
// A stored access token is enough to consider the user logged in, no profile is fetched
func (s *Service) Restore(ctx context.Context) Result {
	defer s.state.setLoading(false)

	accessToken, ok, err := s.store.Get(KeyAccessToken)
	if err != nil {
		return resultOf(fmt.Errorf("failed to restore session: %w", err))
	}
	if !ok {
		s.state.setUser(nil)
		return resultOf(nil)
	}

	identity := identityFromToken(accessToken, s.cachedIdentity())
	s.state.setUser(&identity)
	return resultOf(nil)
}

// Login exchanges the email and password for a token pair and stores it.
// On failure the current user is left unchanged
func (s *Service) Login(ctx context.Context, email, password string) Result {
	s.state.setLoading(true)
	defer s.state.setLoading(false)

	tokens, err := s.api.Authenticate(ctx, email, password)
	if err != nil {
		var networkErr api.NetworkError
		if errors.As(err, &networkErr) {
			return resultOf(err)
		}
		return resultOf(InvalidCredentialsError{Message: loginErrorMessage(err), Err: err})
	}

	if tokens.Access == "" || tokens.Refresh == "" {
		return resultOf(InvalidCredentialsError{Message: msgInvalidCredentials, Err: errors.New("incomplete token pair received")})
	}

	if err := s.store.SetTokens(tokens); err != nil {
		return resultOf(fmt.Errorf("failed to store session: %w", err))
	}

	identity := identityFromToken(tokens.Access, Identity{Email: email})
	identity.Email = email

	if cache, ok := s.store.(IdentityCache); ok {
		if err := cache.CacheIdentity(identity); err != nil {
			return resultOf(fmt.Errorf("failed to store session: %w", err))
		}
	}

	s.state.setUser(&identity)
	return resultOf(nil)
}

// Register creates a new account. It does not log the user in
func (s *Service) Register(ctx context.Context, req RegisterRequest) Result {
	if req.Password != req.ConfirmPassword {
		return resultOf(ValidationError{msgPasswordMismatch})
	}
	if req.Email == "" || req.Password == "" {
		return resultOf(ValidationError{"Email and password are required."})
	}

	if req.FirstName == "" && req.LastName == "" {
		req.FirstName, req.LastName = SplitName(req.Name)
	}

	s.state.setLoading(true)
	defer s.state.setLoading(false)

	if err := s.api.Register(ctx, req); err != nil {
		var networkErr api.NetworkError
		if errors.As(err, &networkErr) {
			return resultOf(err)
		}
		return resultOf(RegistrationError{Message: registerErrorMessage(err), Err: err})
	}
	return resultOf(nil)
}

// Logout clears the session credentials and the current user.
// It is safe to call without a session
func (s *Service) Logout(ctx context.Context) Result {
	if err := s.store.ClearTokens(); err != nil {
		return resultOf(fmt.Errorf("failed to clear session: %w", err))
	}

	if cache, ok := s.store.(IdentityCache); ok {
		if err := cache.CacheIdentity(Identity{}); err != nil {
			return resultOf(fmt.Errorf("failed to clear session: %w", err))
		}
	}

	s.state.setUser(nil)
	return resultOf(nil)
}

// Do runs an authenticated call and reports its outcome as a Result.
// Callers must read the session state again afterwards,
// since a failed token refresh logs the user out
func (s *Service) Do(ctx context.Context, call func(ctx context.Context) error) Result {
	return resultOf(call(ctx))
}

func (s *Service) cachedIdentity() Identity {
	if cache, ok := s.store.(IdentityCache); ok {
		if identity, ok := cache.CachedIdentity(); ok {
			return identity
		}
	}
	return Identity{}
}

// SplitName splits a full name into its first name and the rest
func SplitName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
