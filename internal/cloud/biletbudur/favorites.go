package biletbudur

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/emreeozkull/biletbudur-cli/internal/utils/api"
)

const (
	scrapeAPI = "/scrape/api"

	favoritesPath            = scrapeAPI + "/favorites/"
	pastFavoritesPath        = scrapeAPI + "/past-favorites/"
	favoritePerformersPath   = scrapeAPI + "/get-favorite-performers/"
	addFavoritePerformerPath = scrapeAPI + "/add-favorite-perfomer/%s"
)

// ErrPerformerNameRequired is returned when adding a performer without a name
var ErrPerformerNameRequired = errors.New("performer name is required")

// Text is a value the server sends either as a string or as a list of strings,
// only its first element is kept
type Text string

// UnmarshalJSON decodes either shape of the value
func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Text(s)
		return nil
	}

	var values []interface{}
	if err := json.Unmarshal(data, &values); err == nil {
		*t = ""
		if len(values) > 0 && values[0] != nil {
			*t = Text(fmt.Sprint(values[0]))
		}
		return nil
	}

	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*t = ""
	if v != nil {
		*t = Text(fmt.Sprint(v))
	}
	return nil
}

// Event is a favorited event
type Event struct {
	ID        interface{} `json:"id,omitempty"`
	Name      Text        `json:"name"`
	Date      string      `json:"date"`
	VenueName Text        `json:"venue_name"`
	URL       string      `json:"url,omitempty"`
	ImageURL  Text        `json:"main_img,omitempty"`
}

// DisplayDate formats the event date for display, unparseable dates are returned as they are
func (e Event) DisplayDate() string {
	if e.Date == "" {
		return "Date not available"
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, e.Date); err == nil {
			return t.Format("Jan 2, 2006 15:04")
		}
	}
	return e.Date
}

// Performer is a favorited performer
type Performer struct {
	ID       interface{} `json:"id,omitempty"`
	Name     string      `json:"name"`
	ImageURL string      `json:"image_url,omitempty"`
}

// DisplayName returns the performer name, or a placeholder when it is missing
func (p Performer) DisplayName() string {
	if p.Name == "" {
		return "Unknown"
	}
	return p.Name
}

func (c *client) Favorites(ctx context.Context) ([]Event, error) {
	var events []Event
	if err := c.getJSON(ctx, favoritesPath, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *client) PastFavorites(ctx context.Context) ([]Event, error) {
	var events []Event
	if err := c.getJSON(ctx, pastFavoritesPath, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *client) FavoritePerformers(ctx context.Context) ([]Performer, error) {
	var performers []Performer
	if err := c.getJSON(ctx, favoritePerformersPath, &performers); err != nil {
		return nil, err
	}
	return performers, nil
}

func (c *client) AddFavoritePerformer(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrPerformerNameRequired
	}

	res, err := c.do(ctx, http.MethodGet, fmt.Sprintf(addFavoritePerformerPath, url.PathEscape(name)), api.RequestOptions{})
	if err != nil {
		return err
	}
	res.Body.Close()
	return nil
}

func (c *client) getJSON(ctx context.Context, path string, out interface{}) error {
	res, err := c.do(ctx, http.MethodGet, path, api.RequestOptions{})
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to read response of %s: %w", path, err)
	}
	return nil
}
