package cli

import (
	"errors"
	"fmt"

	"github.com/emreeozkull/biletbudur-cli/internal/cli/feedback"
)

// set of session errors returned by guarded commands
var (
	ErrNotLoggedIn    = errors.New("you are not logged in")
	ErrSessionExpired = errors.New("your session has expired, please log in again")
)

func errLoginRequired() error {
	details := append([]feedback.ErrDetail{feedback.ErrNoUsage{}}, feedback.Suggest(Name+" login", Name+" register")...)
	return feedback.NewErr(ErrNotLoggedIn, details...)
}

func errSessionExpired(cause error) error {
	err := ErrSessionExpired
	if cause != nil {
		err = fmt.Errorf("%w: %w", ErrSessionExpired, cause)
	}
	return feedback.NewErr(err, feedback.ErrNoUsage{}, feedback.ErrSuggestion{Suggestion: Name + " login"})
}
