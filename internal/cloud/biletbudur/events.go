package biletbudur

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/emreeozkull/biletbudur-cli/internal/utils/api"
)

const (
	// DefaultEventsURL is the search server hosting the public event feed
	DefaultEventsURL = "https://solr.biletbudur.tr"

	// DefaultEventRows is the number of events requested when no limit is set
	DefaultEventRows = 20

	// EventsPath is the path of the public event feed
	EventsPath = "/solr/events/select"
)

type eventsResponse struct {
	Response *struct {
		NumFound int     `json:"numFound"`
		Docs     []Event `json:"docs"`
	} `json:"response"`
}

// Events returns up to rows events of the public feed.
// The feed is public: the request carries no credentials and a rejection never refreshes the session
func (c *client) Events(ctx context.Context, rows int) ([]Event, error) {
	if rows <= 0 {
		rows = DefaultEventRows
	}

	query := url.Values{}
	query.Set("q", "*:*")
	query.Set("q.op", "OR")
	query.Set("rows", strconv.Itoa(rows))

	res, err := c.do(ctx, http.MethodGet, EventsPath+"?"+query.Encode(), api.RequestOptions{NoAuth: true, PreventRefresh: true})
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var payload eventsResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to read response of %s: %w", EventsPath, err)
	}
	if payload.Response == nil {
		c.logger.Debug().Str("path", EventsPath).Msg("event feed response has no documents")
		return nil, nil
	}
	return payload.Response.Docs, nil
}
