package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
)

const (
	// ReplyFailureCode is the code returned when a reply call failed.
	ReplyFailureCode = -1
	// ProfileFailureCode is the code returned when a profile lookup failed.
	ProfileFailureCode = -2

	defaultTimeout = 30 * time.Second
	// Maximum response body size to read for error logging
	maxErrorBodySize = 1024
	// Maximum profile body size accepted
	maxProfileBodySize = 64 * 1024
)

// Client calls the messaging platform's REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// New creates a new Client. A nil httpClient gets a client with a 30s timeout.
func New(baseURL, accessToken string, httpClient *http.Client) (*Client, error) {
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse platform base URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("platform base URL must be absolute: %q", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:     strings.TrimRight(parsedURL.String(), "/"),
		accessToken: accessToken,
		httpClient:  httpClient,
	}, nil
}

// ReplyMessage sends messages using a reply token. The call is not retried.
func (c *Client) ReplyMessage(ctx context.Context, replyToken string, messages []TextMessage) error {
	body, err := json.Marshal(ReplyRequest{
		ReplyToken: replyToken,
		Messages:   messages,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reply payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/message/reply", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create reply request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return richerrors.Error{
			Code: ReplyFailureCode,
			Err:  fmt.Errorf("failed to POST reply: %w", err),
		}
	}
	defer resp.Body.Close() //nolint:errcheck

	if err := checkStatus(resp); err != nil {
		return richerrors.Error{
			Code: ReplyFailureCode,
			Err:  fmt.Errorf("reply %w", err),
		}
	}
	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))
	return nil
}

// GetProfile fetches the profile of the given user.
func (c *Client) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	if userID == "" {
		return nil, errors.New("user id is empty")
	}
	endpoint := c.baseURL + "/profile/" + url.PathEscape(userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, strings.NewReader("{}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create profile request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, richerrors.Error{
			Code: ProfileFailureCode,
			Err:  fmt.Errorf("failed to GET profile: %w", err),
		}
	}
	defer resp.Body.Close() //nolint:errcheck

	if err := checkStatus(resp); err != nil {
		return nil, richerrors.Error{
			Code: ProfileFailureCode,
			Err:  fmt.Errorf("profile %w", err),
		}
	}

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxProfileBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read profile response: %w", err)
	}
	var profile Profile
	if err := json.Unmarshal(bodyBytes, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile response: %w", err)
	}
	return &profile, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	return fmt.Errorf("returned status code %d: %s", resp.StatusCode, string(respBody))
}
