// Package fakeapi provides an in-process biletbudur backend for tests
package fakeapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

// set of responses matching the real backend
const (
	DetailNoActiveAccount    = "No active account found with the given credentials"
	DetailCredentialsMissing = "Authentication credentials were not provided."
	DetailTokenNotValid      = "Given token not valid for any token type"
	DetailPermissionDenied   = "You do not have permission to perform this action."

	codeTokenNotValid = "token_not_valid"
)

var signingKey = []byte("fakeapi")

// User is an account known to the server
type User struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Tokens is a token pair issued by the server
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// Server is a fake biletbudur backend
type Server struct {
	*httptest.Server

	mu            sync.Mutex
	users         map[string]User
	access        map[string]string
	refresh       map[string]string
	issued        int
	calls         map[string]int
	unauthorized  int
	refreshCalls  int
	refreshGate   chan struct{}
	refreshFail   int
	rotate        bool
	invalidStatus int
	forbidden     string

	favorites     []map[string]interface{}
	pastFavorites []map[string]interface{}
	performers    []map[string]interface{}
	events        []map[string]interface{}
	eventsAuth    int
}

// New starts a new fake server, closed once the test completes
func New(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		users:         map[string]User{},
		access:        map[string]string{},
		refresh:       map[string]string{},
		calls:         map[string]int{},
		invalidStatus: http.StatusUnauthorized,
		favorites: []map[string]interface{}{
			{"id": 1, "name": []string{"Duman"}, "date": "2026-11-20T21:00:00Z", "venue_name": []string{"Harbiye Acikhava"}, "url": "https://www.biletbudur.tr/e/1"},
			{"id": 2, "name": "Sezen Aksu", "date": "2026-12-31T20:30:00Z", "venue_name": "Volkswagen Arena", "url": "https://www.biletbudur.tr/e/2"},
		},
		pastFavorites: []map[string]interface{}{
			{"id": 3, "name": "Mor ve Otesi", "date": "2025-05-01T21:00:00Z", "venue_name": []string{"KucukCiftlik Park"}},
		},
		performers: []map[string]interface{}{
			{"name": "Duman", "image_url": "https://www.biletbudur.tr/img/duman.png"},
		},
		events: []map[string]interface{}{
			{"id": "101", "name": []string{"Athena"}, "date": "2026-11-02T21:00:00Z", "venue_name": []string{"Zorlu PSM"}, "main_img": "https://www.biletbudur.tr/img/athena.png"},
			{"id": "102", "name": []string{"Kurban"}, "date": "2026-11-09T21:00:00Z", "venue_name": []string{"IF Performance Hall"}},
			{"id": "103", "name": "Hamlet", "date": "2026-11-15", "venue_name": "Harbiye Muhsin Ertugrul Sahnesi"},
		},
	}

	s.Server = httptest.NewServer(s.router())
	t.Cleanup(s.Close)
	return s
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.count)

	r.Route("/accounts/api", func(r chi.Router) {
		r.Post("/token/", s.handleToken)
		r.Post("/token/refresh/", s.handleRefresh)
		r.Post("/register/", s.handleRegister)
	})

	r.Route("/scrape/api", func(r chi.Router) {
		r.Use(s.authenticate)
		r.Get("/favorites/", s.handleList(func() []map[string]interface{} { return s.favorites }))
		r.Get("/past-favorites/", s.handleList(func() []map[string]interface{} { return s.pastFavorites }))
		r.Get("/get-favorite-performers/", s.handleList(func() []map[string]interface{} { return s.performers }))
		r.Get("/add-favorite-perfomer/{name}", s.handleAddPerformer)
	})

	r.Get("/solr/events/select", s.handleEvents)

	return r
}

// AddUser registers an account
func (s *Server) AddUser(user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Email] = user
}

// HasUser returns true if an account exists for email
func (s *Server) HasUser(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[email]
	return ok
}

// Login issues a valid token pair for the user, as a successful login would
func (s *Server) Login(email string) Tokens {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issue(email, true)
}

// ExpireAccessTokens invalidates every access token issued so far
func (s *Server) ExpireAccessTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = map[string]string{}
}

// RevokeRefreshTokens invalidates every refresh token issued so far
func (s *Server) RevokeRefreshTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh = map[string]string{}
}

// RotateRefreshTokens makes a refresh return a new refresh token and revoke the used one
func (s *Server) RotateRefreshTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rotate = true
}

// FailRefresh makes every refresh fail with status
func (s *Server) FailRefresh(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshFail = status
}

// RejectInvalidTokensWith sets the status returned for an invalid access token,
// 401 by default or 403 as some deployments respond
func (s *Server) RejectInvalidTokensWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidStatus = status
}

// Forbid makes every authenticated endpoint answer 403 with detail
func (s *Server) Forbid(detail string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forbidden = detail
}

// BlockRefresh holds every refresh request until the returned function is called
func (s *Server) BlockRefresh() (release func()) {
	gate := make(chan struct{})

	s.mu.Lock()
	s.refreshGate = gate
	s.mu.Unlock()

	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

// RefreshCalls returns the number of refresh requests received
func (s *Server) RefreshCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshCalls
}

// UnauthorizedResponses returns the number of requests rejected for their credentials
func (s *Server) UnauthorizedResponses() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unauthorized
}

// Calls returns the number of requests received for path
func (s *Server) Calls(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[path]
}

// AuthorizedEventQueries returns the number of event feed requests sent with an Authorization header
func (s *Server) AuthorizedEventQueries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eventsAuth
}

// WaitFor polls cond until it holds or the timeout passes
func (s *Server) WaitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met after %s", timeout)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func (s *Server) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.calls[r.URL.Path]++
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			s.reject(w, http.StatusForbidden, map[string]interface{}{"detail": DetailCredentialsMissing})
			return
		}

		s.mu.Lock()
		_, valid := s.access[strings.TrimPrefix(header, "Bearer ")]
		status := s.invalidStatus
		forbidden := s.forbidden
		s.mu.Unlock()

		if !valid {
			s.reject(w, status, map[string]interface{}{
				"detail": DetailTokenNotValid,
				"code":   codeTokenNotValid,
				"messages": []map[string]string{
					{"token_class": "AccessToken", "token_type": "access", "message": "Token is invalid or expired"},
				},
			})
			return
		}

		if forbidden != "" {
			writeJSON(w, http.StatusForbidden, map[string]string{"detail": forbidden})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) reject(w http.ResponseWriter, status int, body interface{}) {
	s.mu.Lock()
	s.unauthorized++
	s.mu.Unlock()
	writeJSON(w, status, body)
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "JSON parse error"})
		return
	}

	fields := map[string][]string{}
	if payload.Email == "" {
		fields["email"] = []string{"This field may not be blank."}
	}
	if payload.Password == "" {
		fields["password"] = []string{"This field may not be blank."}
	}
	if len(fields) > 0 {
		writeJSON(w, http.StatusBadRequest, fields)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[payload.Email]
	if !ok || user.Password != payload.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": DetailNoActiveAccount})
		return
	}
	writeJSON(w, http.StatusOK, s.issue(user.Email, true))
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.refreshCalls++
	gate := s.refreshGate
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}

	var payload struct {
		Refresh string `json:"refresh"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Refresh == "" {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"refresh": {"This field is required."}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.refreshFail != 0 {
		writeJSON(w, s.refreshFail, map[string]string{"detail": "Token is invalid or expired", "code": codeTokenNotValid})
		return
	}

	email, ok := s.refresh[payload.Refresh]
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Token is invalid or expired", "code": codeTokenNotValid})
		return
	}

	tokens := s.issue(email, s.rotate)
	if s.rotate {
		delete(s.refresh, payload.Refresh)
	}
	writeJSON(w, http.StatusOK, tokens)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		Password2 string `json:"password2"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, "Invalid registration payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[payload.Email]; ok {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"email": {"user with this email already exists."}})
		return
	}
	if payload.Password != payload.Password2 {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"password": {"Password fields didn't match."}})
		return
	}
	if len(payload.Password) < 8 {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"password": {"This password is too short. It must contain at least 8 characters."}})
		return
	}

	s.users[payload.Email] = User{payload.Email, payload.Password, payload.FirstName, payload.LastName}
	writeJSON(w, http.StatusCreated, map[string]string{
		"email":      payload.Email,
		"first_name": payload.FirstName,
		"last_name":  payload.LastName,
	})
}

func (s *Server) handleList(list func() []map[string]interface{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		writeJSON(w, http.StatusOK, list())
	}
}

// handleEvents answers as the search server does, the documents nested in the response envelope
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.Header.Get("Authorization") != "" {
		s.eventsAuth++
	}

	docs := s.events
	if rows, err := strconv.Atoi(r.URL.Query().Get("rows")); err == nil && rows >= 0 && rows < len(docs) {
		docs = docs[:rows]
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"responseHeader": map[string]interface{}{"status": 0, "params": map[string]string{"q": r.URL.Query().Get("q")}},
		"response":       map[string]interface{}{"numFound": len(s.events), "start": 0, "docs": docs},
	})
}

func (s *Server) handleAddPerformer(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, performer := range s.performers {
		if performer["name"] == name {
			writeJSON(w, http.StatusOK, map[string]string{"message": "Performer already in favorites"})
			return
		}
	}
	s.performers = append(s.performers, map[string]interface{}{"name": name})
	writeJSON(w, http.StatusCreated, map[string]string{"message": fmt.Sprintf("%s added to favorites", name)})
}

// issue must be called with the lock held
func (s *Server) issue(email string, withRefresh bool) Tokens {
	s.issued++
	user := s.users[email]

	access := s.sign(jwt.MapClaims{
		"token_type": "access",
		"jti":        fmt.Sprintf("access-%d", s.issued),
		"user_id":    s.issued,
		"email":      email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"exp":        time.Now().Add(5 * time.Minute).Unix(),
	})
	s.access[access] = email

	tokens := Tokens{Access: access}
	if withRefresh {
		refresh := s.sign(jwt.MapClaims{
			"token_type": "refresh",
			"jti":        fmt.Sprintf("refresh-%d", s.issued),
			"exp":        time.Now().Add(24 * time.Hour).Unix(),
		})
		s.refresh[refresh] = email
		tokens.Refresh = refresh
	}
	return tokens
}

func (s *Server) sign(claims jwt.MapClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		panic(err)
	}
	return token
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
