// Package hotels is a thin client for the hotel API, used outside the
// conversation for account views such as the bookings list.
package hotels

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultTimeout is the default HTTP timeout used by the client.
	DefaultTimeout = 10 * time.Second

	maxResponseSize = 10 * 1024 * 1024
)

// Booking is one reservation as reported by the hotel API.
type Booking struct {
	ID       int    `json:"id"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	RoomType string `json:"roomType"`
	Guests   int    `json:"guests"`
	Status   string `json:"status"`
	UserID   string `json:"user_id"`
}

// Client talks to the hotel API with bearer authentication.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// New creates a hotel API client.
func New(baseURL, token string) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, err
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		token: token,
	}, nil
}

type apiError struct {
	StatusCode int
	Body       string
}

func (e *apiError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("hotels: http %d", e.StatusCode)
	}
	return fmt.Sprintf("hotels: http %d: %s", e.StatusCode, e.Body)
}

// UserBookings lists the bookings of one user.
func (c *Client) UserBookings(ctx context.Context, userID string) ([]Booking, error) {
	path := "/users/" + url.PathEscape(userID) + "/bookings"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	limited := io.LimitReader(resp.Body, maxResponseSize)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &apiError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	var bookings []Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
