package sportsdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

const (
	// DefaultBaseURL is the free-tier TheSportsDB endpoint.
	DefaultBaseURL = "https://www.thesportsdb.com/api/v1/json/123"

	requestTimeout = 10 * time.Second

	// consecutive transport failures before the breaker opens
	breakerFailureThreshold = 5
)

var (
	// ErrTeamNotFound indicates the API returned no match for the name.
	ErrTeamNotFound = errors.New("no matching team")

	// ErrNoDescription indicates the matched team has no English
	// description to translate.
	ErrNoDescription = errors.New("team has no English description")
)

// Team holds the fields extracted from a team search result. Fields other
// than DescriptionEN default to "N/A" when the API omits them.
type Team struct {
	Name          string
	Sport         string
	League        string
	FormedYear    string
	Stadium       string
	DescriptionEN string
}

// searchResponse represents the API response structure
type searchResponse struct {
	Teams []apiTeam `json:"teams"`
}

// apiTeam represents a single team in the response
type apiTeam struct {
	Team          string `json:"strTeam"`
	Sport         string `json:"strSport"`
	League        string `json:"strLeague"`
	FormedYear    string `json:"intFormedYear"`
	Stadium       string `json:"strStadium"`
	DescriptionEN string `json:"strDescriptionEN"`
}

// Client queries TheSportsDB over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

// NewClient creates a new API client. An empty baseURL selects
// DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "thesportsdb",
			MaxRequests: 1,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= breakerFailureThreshold
			},
			// "not found" and "no description" are valid API answers,
			// they must not open the breaker
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, ErrTeamNotFound) || errors.Is(err, ErrNoDescription)
			},
		}),
	}
}

// SearchTeam looks up a single team by name. It returns ErrTeamNotFound when
// the API has no match and ErrNoDescription when the match carries no
// English description.
func (c *Client) SearchTeam(ctx context.Context, name string) (*Team, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.searchTeam(ctx, name)
	})
	if err != nil {
		return nil, err
	}
	return result.(*Team), nil
}

func (c *Client) searchTeam(ctx context.Context, name string) (*Team, error) {
	params := url.Values{}
	params.Set("t", name)
	searchURL := fmt.Sprintf("%s/searchteams.php?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var data searchResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(data.Teams) == 0 {
		return nil, ErrTeamNotFound
	}

	info := data.Teams[0]
	if strings.TrimSpace(info.DescriptionEN) == "" {
		return nil, ErrNoDescription
	}

	return &Team{
		Name:          valueOr(info.Team),
		Sport:         valueOr(info.Sport),
		League:        valueOr(info.League),
		FormedYear:    valueOr(info.FormedYear),
		Stadium:       valueOr(info.Stadium),
		DescriptionEN: info.DescriptionEN,
	}, nil
}

func valueOr(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
