package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sehatsahara/sahara/internal/metrics"
)

// Client is the fire-and-forget POST wrapper used by the dispatcher and the bot bridge.
// It never retries and imposes no timeout unless one is configured.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	metrics *metrics.DispatchMetrics
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger, m *metrics.DispatchMetrics) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
		metrics: m,
	}
}

// Call POSTs payload as JSON to endpoint and returns a settled Result. Transport and decoding
// failures are folded into the Result; Call itself never fails.
func (c *Client) Call(ctx context.Context, endpoint string, payload any) Result {
	start := time.Now()
	res := c.do(ctx, endpoint, payload)

	label := "ok"
	if res.Err != nil {
		label = string(KindOf(res.Err))
		c.logger.Warn("gateway: call failed",
			zap.String("endpoint", endpoint),
			zap.String("kind", label),
			zap.Error(res.Err))
	}
	c.metrics.ObserveGatewayCall(endpoint, label, time.Since(start).Seconds())
	return res
}

func (c *Client) do(ctx context.Context, endpoint string, payload any) Result {
	body, err := json.Marshal(payload)
	if err != nil {
		return Failure(&CallError{Kind: FailureEncode, Endpoint: endpoint, Err: err})
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resolve(endpoint), bytes.NewReader(body))
	if err != nil {
		return Failure(&CallError{Kind: FailureNetwork, Endpoint: endpoint, Err: err})
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Failure(&CallError{Kind: classify(err), Endpoint: endpoint, Err: fmt.Errorf("sending request: %w", err)})
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Failure(&CallError{Kind: classify(err), Endpoint: endpoint, Err: fmt.Errorf("reading response: %w", err)})
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return Failure(&CallError{Kind: FailureDecode, Endpoint: endpoint, Err: fmt.Errorf("decoding response (status %d): %w", resp.StatusCode, err)})
	}

	res := Result{Status: resp.StatusCode, Raw: raw}
	if obj, ok := decoded.(map[string]any); ok {
		res.Body = obj
	}
	if resp.StatusCode >= 400 {
		c.logger.Debug("gateway: non-2xx response",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode))
	}
	return res
}

func (c *Client) resolve(endpoint string) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	return c.baseURL + endpoint
}
