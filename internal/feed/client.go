// Package feed wraps the external image-of-the-day and quote-of-the-day
// APIs. Only the response fields the application displays are decoded.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dayboard/dayboard-server/internal/model"
)

var _ model.FeedClient = (*Client)(nil)

// Client fetches daily content over HTTP.
type Client struct {
	httpClient *http.Client
	imageURL   string
	imageKey   string
	quoteURL   string
}

// NewClient creates a feed client for the configured API endpoints.
func NewClient(imageURL, imageKey, quoteURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		imageURL:   imageURL,
		imageKey:   imageKey,
		quoteURL:   quoteURL,
	}
}

// FetchImage retrieves the astronomy picture of the day.
func (c *Client) FetchImage(ctx context.Context) (model.ImageOfTheDay, error) {
	u, err := url.Parse(c.imageURL)
	if err != nil {
		return model.ImageOfTheDay{}, fmt.Errorf("invalid image api url: %w", err)
	}
	q := u.Query()
	q.Set("api_key", c.imageKey)
	u.RawQuery = q.Encode()

	var payload struct {
		HDURL       string `json:"hdurl"`
		Title       string `json:"title"`
		Copyright   string `json:"copyright"`
		Explanation string `json:"explanation"`
	}
	if err := c.getJSON(ctx, u.String(), &payload); err != nil {
		return model.ImageOfTheDay{}, err
	}

	return model.ImageOfTheDay{
		URL:          payload.HDURL,
		Title:        payload.Title,
		Photographer: payload.Copyright,
		Description:  payload.Explanation,
	}, nil
}

// FetchQuote retrieves the quote of the day.
func (c *Client) FetchQuote(ctx context.Context) (model.Quote, error) {
	var payload struct {
		Contents struct {
			Quotes []struct {
				Quote  string `json:"quote"`
				Author string `json:"author"`
			} `json:"quotes"`
		} `json:"contents"`
	}
	if err := c.getJSON(ctx, c.quoteURL, &payload); err != nil {
		return model.Quote{}, err
	}
	if len(payload.Contents.Quotes) == 0 {
		return model.Quote{}, fmt.Errorf("quote api returned no quotes")
	}

	return model.Quote{
		Quote:  payload.Contents.Quotes[0].Quote,
		Author: payload.Contents.Quotes[0].Author,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
