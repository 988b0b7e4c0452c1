package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Ratings defines the rating lookup operation the enrichment step depends
// on. Tests substitute a stub so the pipeline suite never touches the
// network.
type Ratings interface {
	Lookup(ctx context.Context, imdbID string) (float64, bool, error)
}

// payload models the subset of the OMDb response the client reads. OMDb
// encodes everything as strings, including numbers.
type payload struct {
	Response   string `json:"Response"`
	Error      string `json:"Error"`
	IMDbRating string `json:"imdbRating"`
}

// Client provides access to the OMDb API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ Ratings = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// New creates an OMDb client.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("omdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("omdb base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 8 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Lookup fetches the IMDb rating for the given identifier. The second return
// value reports whether a usable rating was found; OMDb answers "N/A" for
// titles it cannot rate.
func (c *Client) Lookup(ctx context.Context, imdbID string) (float64, bool, error) {
	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		return 0, false, errors.New("imdb id must not be empty")
	}

	endpoint, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return 0, false, fmt.Errorf("parse omdb url: %w", err)
	}
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("i", imdbID)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return 0, false, fmt.Errorf("build omdb request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, false, fmt.Errorf("omdb lookup %s: %w", imdbID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, false, fmt.Errorf("omdb lookup %s returned status %d", imdbID, resp.StatusCode)
	}

	var body payload
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, false, fmt.Errorf("decode omdb response for %s: %w", imdbID, err)
	}
	if strings.EqualFold(body.Response, "False") {
		return 0, false, fmt.Errorf("omdb lookup %s rejected: %s", imdbID, body.Error)
	}
	rating := strings.TrimSpace(body.IMDbRating)
	if rating == "" || rating == "N/A" {
		return 0, false, nil
	}
	value, err := strconv.ParseFloat(rating, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse omdb rating %q for %s: %w", rating, imdbID, err)
	}
	return value, true, nil
}
