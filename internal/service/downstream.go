package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"stipendtriage/internal/model"
)

// ErrDownstreamBusy signals the consumer asked us to back off.
var ErrDownstreamBusy = errors.New("downstream rate limit exceeded")

// DownstreamClient pushes handoff records to the downstream consumer system.
type DownstreamClient struct {
	baseURL string
	client  *http.Client
}

func NewDownstreamClient(baseURL string) *DownstreamClient {
	return &DownstreamClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *DownstreamClient) Deliver(ctx context.Context, rec model.HandoffRecord) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal handoff record: %w", err)
	}

	url := fmt.Sprintf("%s/api/handoff", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrDownstreamBusy
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status: %d, body: %s", resp.StatusCode, string(respBody))
	}
}
