package api

import (
	"encoding/json"
	"net/http"
)

// set of supported api header keys
const (
	HeaderAccept        = "Accept"
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderRequestID     = "X-Request-ID"
	HeaderUserAgent     = "User-Agent"
)

// set of supported api media types
const (
	MediaTypeApplicationJSON = "application/json"
)

// RequestOptions are options to configure an *http.Request
//
// Body is held as bytes so that the request can be replayed
// once its credentials have been refreshed
type RequestOptions struct {
	Body   []byte
	Header http.Header

	// NoAuth sends the request without reading the stored access token
	NoAuth bool

	// PreventRefresh stops an authorization failure from starting a token refresh
	PreventRefresh bool
}

// JSONRequestOptions returns RequestOptions configured to send the provided payload as JSON
func JSONRequestOptions(payload interface{}) (RequestOptions, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return RequestOptions{}, err
	}
	return RequestOptions{
		Body:   body,
		Header: http.Header{HeaderContentType: []string{MediaTypeApplicationJSON}},
	}, nil
}
