package terminal

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const (
	logFieldErr    = "err"
	logFieldFields = "fields"
)

var (
	errorMessageFields      = []string{logFieldErr}
	fieldErrorMessageFields = []string{logFieldErr, logFieldFields}
)

// FieldErrorReporter is an error holding the messages reported per input field
type FieldErrorReporter interface {
	FieldErrors() map[string][]string
}

// errorMessage prints the error along with every field message when the
// chain reports more than the one the error message already shows
type errorMessage struct {
	error
}

func (e errorMessage) Message() (string, error) {
	fields := e.fieldErrors()
	if fields == nil {
		return e.Error(), nil
	}

	var sb strings.Builder
	sb.WriteString(e.Error())
	for _, name := range sortedFieldNames(fields) {
		for _, msg := range fields[name] {
			sb.WriteString(fmt.Sprintf("\n  %s: %s", name, msg))
		}
	}
	return sb.String(), nil
}

func (e errorMessage) Payload() ([]string, map[string]interface{}, error) {
	fields := e.fieldErrors()
	if fields == nil {
		return errorMessageFields, map[string]interface{}{
			logFieldErr: e.Error(),
		}, nil
	}
	return fieldErrorMessageFields, map[string]interface{}{
		logFieldErr:    e.Error(),
		logFieldFields: fields,
	}, nil
}

func (e errorMessage) fieldErrors() map[string][]string {
	var reporter FieldErrorReporter
	if !errors.As(e.error, &reporter) {
		return nil
	}

	fields := reporter.FieldErrors()
	var count int
	for _, msgs := range fields {
		count += len(msgs)
	}
	if count < 2 {
		return nil
	}
	return fields
}

func sortedFieldNames(fields map[string][]string) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
