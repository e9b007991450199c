// Package client talks to a running scheduler server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// ErrRejected wraps errors reported by the server in its error payload.
var ErrRejected = errors.New("server rejected request")

const schedulePath = "/api/schedule"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the server at baseURL. A nil httpClient uses http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// Schedule posts request to /api/schedule and decodes the schedule it returns.
func (c *Client) Schedule(ctx context.Context, request requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	var response responses.ScheduleResponse

	body, err := json.Marshal(request)
	if err != nil {
		return response, fmt.Errorf("encoding request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+schedulePath, bytes.NewReader(body))
	if err != nil {
		return response, err
	}
	req.Header.Set("Content-Type", "application/json")

	logrus.Debugf("POST %s: %s over %d processes", req.URL, request.Algorithm, len(request.Processes))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("posting schedule: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		var errResp responses.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error == "" {
			return response, fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
		}
		if errResp.Message != "" {
			return response, fmt.Errorf("%w: status %d: %s: %s", ErrRejected, resp.StatusCode, errResp.Error, errResp.Message)
		}
		return response, fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, errResp.Error)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("decoding response: %w", err)
	}
	return response, nil
}
