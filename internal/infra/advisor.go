package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// AdvisorSnapshot is the analysis request sent to the Insight Advisor
// sidecar: the tenant's order history and current inventory as generic
// structured data. The sidecar owns prompt construction and model choice.
type AdvisorSnapshot struct {
	TenantID  string        `json:"tenant_id"`
	Orders    []interface{} `json:"orders"`
	Inventory []interface{} `json:"inventory"`
}

// AdvisorClient calls the external business-insight generator over HTTP.
// The sidecar returns an ordered list of short natural-language strings
// (three expected). Callers must treat every failure as recoverable — the
// service layer substitutes a fixed fallback message.
type AdvisorClient struct {
	sidecarURL string
	httpClient *http.Client
}

// NewAdvisorClient builds a client with a bounded request timeout. The
// reference system had none; here the advisor can never hang a worker.
func NewAdvisorClient(sidecarURL string, timeout time.Duration) *AdvisorClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &AdvisorClient{
		sidecarURL: sidecarURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Analyze posts the snapshot and returns the insight strings.
func (c *AdvisorClient) Analyze(ctx context.Context, snap AdvisorSnapshot) ([]string, error) {
	body, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("advisor: marshal snapshot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.sidecarURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("advisor: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("advisor: sidecar unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("advisor: sidecar returned %d", resp.StatusCode)
	}

	var insights []string
	if err := json.NewDecoder(resp.Body).Decode(&insights); err != nil {
		return nil, fmt.Errorf("advisor: decode response: %w", err)
	}
	return insights, nil
}
