// Package sheet reads project schedules from, and writes float values back
// to, the Smartsheet REST API.
package sheet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/alexanderramin/floatsync/internal/domain"
)

//go:generate mockgen -source=client.go -destination=mock_client.go -package=sheet

// Client is the schedule source and sheet updater used by a float run.
type Client interface {
	// GetSheet fetches a snapshot of the sheet with predecessor object values.
	GetSheet(ctx context.Context, sheetID string) (*domain.Sheet, error)

	// UpdateRows submits the whole update batch in one request. It is never retried.
	UpdateRows(ctx context.Context, sheetID string, updates []domain.FloatUpdate) error
}

// DefaultBaseURL is the Smartsheet API 2.0 root.
const DefaultBaseURL = "https://api.smartsheet.com/2.0"

// Config holds the connection settings for RESTClient.
type Config struct {
	BaseURL    string
	Token      string
	TimeoutMs  int
	MaxRetries int
}

// RESTClient implements Client over HTTP.
type RESTClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
	logger   *slog.Logger
}

// NewRESTClient creates a Client for the given config.
func NewRESTClient(cfg Config, observer Observer, logger *slog.Logger) *RESTClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.TimeoutMs <= 0 {
		cfg.TimeoutMs = 30000
	}
	if observer == nil {
		observer = NoopObserver{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RESTClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
		logger:   logger,
	}
}

func (c *RESTClient) GetSheet(ctx context.Context, sheetID string) (*domain.Sheet, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	u, err := c.endpoint("sheets", sheetID)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("include", "objectValue")
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching sheet", slog.String("sheet_id", sheetID), slog.String("url", u.String()))

	var (
		resp    sheetResponse
		status  int
		lastErr error
		tried   int
	)
	attempts := 1 + c.cfg.MaxRetries
	for i := 0; i < attempts; i++ {
		resp = sheetResponse{}
		tried++
		status, lastErr = c.do(ctx, http.MethodGet, u.String(), nil, &resp)
		if lastErr == nil {
			break
		}
		if ctx.Err() != nil || !isRetryable(lastErr) {
			break
		}
		c.logger.Warn("retrying sheet fetch",
			slog.String("sheet_id", sheetID),
			slog.Int("attempt", i+1),
			slog.String("error", lastErr.Error()),
		)
	}

	err = c.classify(ctx, lastErr, tried)
	c.observe("get_sheet", sheetID, status, start, err)
	if err != nil {
		return nil, err
	}

	sheet := resp.toDomain()
	c.logger.Debug("fetched sheet",
		slog.String("sheet_id", sheetID),
		slog.Int("columns", len(sheet.Columns)),
		slog.Int("rows", len(sheet.Rows)),
	)
	return sheet, nil
}

func (c *RESTClient) UpdateRows(ctx context.Context, sheetID string, updates []domain.FloatUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	u, err := c.endpoint("sheets", sheetID, "rows")
	if err != nil {
		return err
	}

	data, err := json.Marshal(toRowUpdates(updates))
	if err != nil {
		return fmt.Errorf("marshaling row updates: %w", err)
	}

	c.logger.Debug("updating rows", slog.String("sheet_id", sheetID), slog.Int("updates", len(updates)))

	var resp resultResponse
	status, err := c.do(ctx, http.MethodPut, u.String(), data, &resp)
	err = c.classify(ctx, err, 1)
	if err == nil && resp.ResultCode != 0 {
		err = &APIError{Status: status, ErrorCode: resp.ResultCode, Message: resp.Message}
	}
	c.observe("update_rows", sheetID, status, start, err)
	return err
}

func (c *RESTClient) do(ctx context.Context, method, target string, body []byte, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	httpResp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return httpResp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		apiErr := &APIError{Status: httpResp.StatusCode, Message: string(respBody)}
		var e errorResponse
		if json.Unmarshal(respBody, &e) == nil && e.Message != "" {
			apiErr.ErrorCode = e.ErrorCode
			apiErr.Message = e.Message
			apiErr.RefID = e.RefID
		}
		return httpResp.StatusCode, apiErr
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return httpResp.StatusCode, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return httpResp.StatusCode, nil
}

func (c *RESTClient) endpoint(parts ...string) (*url.URL, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	return u.JoinPath(parts...), nil
}

func (c *RESTClient) timeout() time.Duration {
	return time.Duration(c.cfg.TimeoutMs) * time.Millisecond
}

// classify maps a raw transport error onto the package sentinels.
func (c *RESTClient) classify(ctx context.Context, err error, attempts int) error {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return err
	case ctx.Err() != nil:
		return ErrTimeout
	case isConnectionError(err):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	case attempts > 1:
		return fmt.Errorf("%w: %v", ErrRetryExhausted, err)
	default:
		return err
	}
}

func (c *RESTClient) observe(op, sheetID string, status int, start time.Time, err error) {
	c.observer.OnCallComplete(CallEvent{
		Op:         op,
		SheetID:    sheetID,
		StatusCode: status,
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    err == nil,
		ErrorCode:  errorCode(err),
	})
}

func isRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.retryable()
	}
	return !errors.Is(err, ErrMalformedResponse)
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrMalformedResponse):
		return "MALFORMED_RESPONSE"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.As(err, &apiErr):
		return fmt.Sprintf("HTTP_%d", apiErr.Status)
	default:
		return "UNKNOWN"
	}
}
