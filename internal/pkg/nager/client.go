// Package nager is a thin client for the Nager.Date public-holiday API
// (https://date.nager.at).
package nager

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// PublicHoliday mirrors the relevant fields of the API response.
type PublicHoliday struct {
	Date      string `json:"date"`
	LocalName string `json:"localName"`
	Name      string `json:"name"`
}

// APIError is a non-200 response from the holiday API.
type APIError struct {
	StatusCode int
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("holiday API returned status %d for %s", e.StatusCode, e.URL)
}

// PublicHolidays fetches the public holidays for one country and year.
func (c *Client) PublicHolidays(ctx context.Context, year int, countryCode string) ([]PublicHoliday, error) {
	url := fmt.Sprintf("%s/publicholidays/%d/%s", c.baseURL, year, countryCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching public holidays: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, URL: url}
	}

	var holidays []PublicHoliday
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, fmt.Errorf("decoding public holidays: %w", err)
	}

	return holidays, nil
}
