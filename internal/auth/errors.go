package auth

import (
	"errors"
	"fmt"

	"github.com/emreeozkull/biletbudur-cli/internal/utils/api"
)

// set of user-facing fallback messages
const (
	msgInvalidCredentials = "Invalid email or password."
	msgRegisterFailed     = "Registration failed. Please try again."
	msgPasswordMismatch   = "Passwords do not match."
)

// ValidationError is a failed client-side precondition, it never reaches the network
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// InvalidCredentialsError is a rejected login
type InvalidCredentialsError struct {
	Message string
	Err     error
}

func (e InvalidCredentialsError) Error() string { return e.Message }

func (e InvalidCredentialsError) Unwrap() error { return e.Err }

// RegistrationError is a rejected registration
type RegistrationError struct {
	Message string
	Err     error
}

func (e RegistrationError) Error() string { return e.Message }

func (e RegistrationError) Unwrap() error { return e.Err }

// Result is the outcome of a session operation,
// failures are returned as values so callers can render them inline
type Result struct {
	Success bool
	Error   error
	Status  int
}

// Err returns the result's error, or nil when it succeeded
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	return r.Error
}

// Unauthorized returns true when the caller needs to log in again
func (r Result) Unauthorized() bool {
	return !r.Success && errors.Is(r.Error, api.ErrUnauthorized)
}

func resultOf(err error) Result {
	if err == nil {
		return Result{Success: true}
	}
	return Result{Error: err, Status: api.StatusCode(err)}
}

func loginErrorMessage(err error) string {
	var serverErr api.ServerError
	if !errors.As(err, &serverErr) {
		return msgInvalidCredentials
	}
	if serverErr.Detail != "" {
		return serverErr.Detail
	}
	if msg := serverErr.NonFieldError(); msg != "" {
		return msg
	}
	return msgInvalidCredentials
}

func registerErrorMessage(err error) string {
	var serverErr api.ServerError
	if !errors.As(err, &serverErr) {
		return msgRegisterFailed
	}
	if msg := serverErr.Field("email"); msg != "" {
		return fmt.Sprintf("Email: %s", msg)
	}
	if msg := serverErr.Field("password"); msg != "" {
		return fmt.Sprintf("Password: %s", msg)
	}
	if serverErr.Message != "" {
		return serverErr.Message
	}
	return msgRegisterFailed
}
