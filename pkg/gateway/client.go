package gateway

import (
	"bytes"
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
	DefaultTimeout = 30 * time.Second

	maxResponseSize = 10 * 1024 * 1024
)

// Client talks to the agent gateway: one POST /chat request/reply cycle
// per conversation turn, plus the per-thread session state endpoint.
//
// A Client performs no retries. A failed call returns an error to the
// caller, which is expected to substitute a visible failure turn.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// New creates a new gateway client. An empty token means anonymous.
func New(baseURL string) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, err
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}, nil
}

// NewWithToken creates a gateway client that authenticates with a bearer token.
func NewWithToken(baseURL, token string) (*Client, error) {
	c, err := New(baseURL)
	if err != nil {
		return nil, err
	}
	c.token = token
	return c, nil
}

type apiError struct {
	StatusCode int
	Body       string
}

func (e *apiError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("gateway: http %d", e.StatusCode)
	}
	return fmt.Sprintf("gateway: http %d: %s", e.StatusCode, e.Body)
}

type chatRequest struct {
	Message  string `json:"message"`
	ThreadID string `json:"threadId"`
}

// Send submits one message for the given thread and waits for the
// agent's reply. The thread id rides both in the body and in the
// ThreadId header so the backend can correlate turns.
func (c *Client) Send(ctx context.Context, threadID, message string) (*AgentReply, error) {
	body, err := json.Marshal(chatRequest{Message: message, ThreadID: threadID})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("ThreadId", threadID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	var reply AgentReply
	if err := c.do(req, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// States fetches the current session state set for a thread. The state
// endpoint takes no auth header.
func (c *Client) States(ctx context.Context, threadID string) (*StateSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/state/"+url.PathEscape(threadID), nil)
	if err != nil {
		return nil, err
	}

	var snap StateSnapshot
	if err := c.do(req, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	limited := io.LimitReader(resp.Body, maxResponseSize)
	data, err := io.ReadAll(limited)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &apiError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}
