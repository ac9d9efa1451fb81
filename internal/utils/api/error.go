package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// set of known server error markers
const (
	CodeTokenNotValid        = "token_not_valid"
	DetailCredentialsMissing = "Authentication credentials were not provided."

	fieldNonFieldErrors = "non_field_errors"
)

// ErrUnauthorized matches every error that means the caller must log in again
var ErrUnauthorized = errors.New("unauthorized")

// ServerError is the normalized form of every error body the server returns,
// whether it is an object with a detail or code, an object of field errors,
// a bare JSON string or plain text
type ServerError struct {
	StatusCode int
	Code       string
	Detail     string
	Fields     map[string][]string
	Message    string
}

func (se ServerError) Error() string {
	if se.Detail != "" {
		return se.Detail
	}
	if msg := se.Field(fieldNonFieldErrors); msg != "" {
		return msg
	}
	for _, name := range se.fieldNames() {
		if name == fieldNonFieldErrors {
			continue
		}
		if msg := se.Field(name); msg != "" {
			return fmt.Sprintf("%s: %s", name, msg)
		}
	}
	if se.Message != "" {
		return se.Message
	}
	if text := http.StatusText(se.StatusCode); text != "" {
		return text
	}
	return "unknown server error"
}

// Field returns the first message reported for the named field
func (se ServerError) Field(name string) string {
	if msgs := se.Fields[name]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// FieldErrors returns every message the server reported per field
func (se ServerError) FieldErrors() map[string][]string {
	return se.Fields
}

// NonFieldError returns the first message not tied to a specific field
func (se ServerError) NonFieldError() string {
	return se.Field(fieldNonFieldErrors)
}

func (se ServerError) fieldNames() []string {
	names := make([]string, 0, len(se.Fields))
	for name := range se.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseResponseError reads the body of an unsuccessful *http.Response
// and normalizes it into a ServerError
func ParseResponseError(res *http.Response) ServerError {
	serverError := ServerError{StatusCode: res.StatusCode}

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(res.Body); err != nil {
		return serverError
	}

	payload := strings.TrimSpace(buf.String())
	if payload == "" {
		return serverError
	}

	var body interface{}
	if err := json.Unmarshal([]byte(payload), &body); err != nil {
		serverError.Message = payload
		return serverError
	}

	switch b := body.(type) {
	case string:
		serverError.Message = b
	case map[string]interface{}:
		for key, value := range b {
			switch key {
			case "detail":
				serverError.Detail = stringValue(value)
			case "code":
				serverError.Code = stringValue(value)
			default:
				if msgs := stringValues(value); len(msgs) > 0 {
					if serverError.Fields == nil {
						serverError.Fields = map[string][]string{}
					}
					serverError.Fields[key] = msgs
				}
			}
		}
	default:
		serverError.Message = payload
	}
	return serverError
}

func stringValue(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}

func stringValues(v interface{}) []string {
	switch vs := v.(type) {
	case string:
		if vs == "" {
			return nil
		}
		return []string{vs}
	case []interface{}:
		var out []string
		for _, item := range vs {
			out = append(out, stringValues(item)...)
		}
		return out
	case map[string]interface{}:
		// nested serializer errors, e.g. {"messages": [...]}
		var out []string
		for _, item := range vs {
			out = append(out, stringValues(item)...)
		}
		sort.Strings(out)
		return out
	}
	return nil
}

// NetworkError is a timeout or connectivity failure, the request never got a response
type NetworkError struct {
	Err error
}

func (e NetworkError) Error() string {
	return fmt.Sprintf("failed to reach server: %s", e.Err)
}

func (e NetworkError) Unwrap() error { return e.Err }

// UnauthorizedError is an authorization failure surfaced to the caller,
// either because it was not eligible for a refresh or because the retry failed again
type UnauthorizedError struct {
	StatusCode int
	Err        error
}

func (e UnauthorizedError) Error() string {
	if e.Err == nil {
		return "unauthorized"
	}
	return fmt.Sprintf("unauthorized: %s", e.Err)
}

func (e UnauthorizedError) Unwrap() error { return e.Err }

// Is reports UnauthorizedError as ErrUnauthorized
func (e UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }

// RefreshFailedError is returned to every request waiting on a refresh that did not succeed.
// The session is gone once this error is seen
type RefreshFailedError struct {
	Err error
}

func (e RefreshFailedError) Error() string {
	return fmt.Sprintf("session expired, failed to refresh access token: %s", e.Err)
}

func (e RefreshFailedError) Unwrap() error { return e.Err }

// Is reports RefreshFailedError as ErrUnauthorized
func (e RefreshFailedError) Is(target error) bool { return target == ErrUnauthorized }

// StatusCode returns the HTTP status carried by err, if any
func StatusCode(err error) int {
	var unauthorizedErr UnauthorizedError
	if errors.As(err, &unauthorizedErr) {
		return unauthorizedErr.StatusCode
	}
	var refreshErr RefreshFailedError
	if errors.As(err, &refreshErr) {
		return http.StatusUnauthorized
	}
	var serverErr ServerError
	if errors.As(err, &serverErr) {
		return serverErr.StatusCode
	}
	return 0
}
