package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/alexanderramin/rihla/internal/domain"
)

// ItemUpdate carries the new values for one checklist item. Status and
// note are always sent together in one commit.
type ItemUpdate struct {
	Status domain.ItemStatus `json:"status"`
	Note   string            `json:"note"`
}

// AnalyzeRequest holds the parameters for an image analysis upload.
type AnalyzeRequest struct {
	Asset    domain.Asset
	UserID   string
	Language string
}

// Client provides access to the trip service. All calls report failure
// both for transport errors and for well-formed success:false envelopes;
// callers treat the two uniformly.
type Client interface {
	// FetchTrip retrieves the full trip for a booking, checklist included.
	FetchTrip(ctx context.Context, bookingID string) (*domain.TripSnapshot, error)

	// UpdateChecklistItem persists new status/note values for one item.
	UpdateChecklistItem(ctx context.Context, tripID, itemID string, update ItemUpdate) error

	// AnalyzeImage uploads an image with user metadata and returns the
	// structured analysis result.
	AnalyzeImage(ctx context.Context, req AnalyzeRequest) (*domain.AnalysisResult, error)

	// Available checks whether the trip service is reachable.
	Available(ctx context.Context) bool
}

// httpClient implements Client against the trip service HTTP API.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client that talks to the configured trip service.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// checklistItemPayload is one checklist entry in the trip envelope.
type checklistItemPayload struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
	Note   string `json:"note"`
}

// tripPayload is the trip object inside the fetch envelope. Display
// sections are passed through undecoded.
type tripPayload struct {
	ID        string                 `json:"id"`
	Itinerary json.RawMessage        `json:"itinerary"`
	Hotel     json.RawMessage        `json:"hotel"`
	Flight    json.RawMessage        `json:"flight"`
	Meals     json.RawMessage        `json:"meals"`
	Notes     json.RawMessage        `json:"notes"`
	Checklist []checklistItemPayload `json:"checklist"`
}

// tripEnvelope is the JSON body returned by GET /api/trips/{bookingID}.
type tripEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Booking json.RawMessage `json:"booking"`
		Trip    tripPayload     `json:"trip"`
		Package json.RawMessage `json:"package"`
	} `json:"data"`
	Message string `json:"message"`
}

// ack is the JSON body returned by mutation endpoints.
type ack struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *httpClient) FetchTrip(ctx context.Context, bookingID string) (*domain.TripSnapshot, error) {
	start := time.Now()

	timeoutMs := c.cfg.OpTimeout(OpFetchTrip)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	url := c.cfg.BaseURL + "/api/trips/" + bookingID

	var env tripEnvelope
	err := c.withRetry(ctx, func() error {
		return c.doJSON(ctx, http.MethodGet, url, nil, &env)
	})
	if err != nil {
		return nil, c.finish(OpFetchTrip, start, c.mapTransport(ctx, err))
	}
	if !env.Success {
		return nil, c.finish(OpFetchTrip, start, Reject(env.Message))
	}

	snap := &domain.TripSnapshot{
		TripID:    env.Data.Trip.ID,
		Booking:   env.Data.Booking,
		Package:   env.Data.Package,
		Itinerary: env.Data.Trip.Itinerary,
		Hotel:     env.Data.Trip.Hotel,
		Flight:    env.Data.Trip.Flight,
		Meals:     env.Data.Trip.Meals,
		Notes:     env.Data.Trip.Notes,
	}
	for _, it := range env.Data.Trip.Checklist {
		snap.Checklist = append(snap.Checklist, domain.ChecklistItem{
			ID:     it.ID,
			Title:  it.Title,
			Status: domain.ItemStatus(it.Status),
			Note:   it.Note,
		})
	}

	c.finish(OpFetchTrip, start, nil)
	return snap, nil
}

func (c *httpClient) UpdateChecklistItem(ctx context.Context, tripID, itemID string, update ItemUpdate) error {
	start := time.Now()

	timeoutMs := c.cfg.OpTimeout(OpUpdateItem)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	url := c.cfg.BaseURL + "/api/trips/" + tripID + "/checklist/" + itemID

	var resp ack
	err := c.withRetry(ctx, func() error {
		return c.doJSON(ctx, http.MethodPut, url, update, &resp)
	})
	if err != nil {
		return c.finish(OpUpdateItem, start, c.mapTransport(ctx, err))
	}
	if !resp.Success {
		return c.finish(OpUpdateItem, start, Reject(resp.Message))
	}

	c.finish(OpUpdateItem, start, nil)
	return nil
}

func (c *httpClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/api/health", nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// withRetry runs fn up to 1+MaxRetries times. It never retries after
// context cancellation or timeout.
func (c *httpClient) withRetry(ctx context.Context, fn func() error) error {
	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		if err := fn(); err != nil {
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}
		return nil
	}
	return lastErr
}

// doJSON performs one request with an optional JSON body and decodes the
// response into out.
func (c *httpClient) doJSON(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("trip service returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

// mapTransport converts a low-level request error into the package's
// transport sentinels. A caller-cancelled context is not a timeout and
// passes through as context.Canceled.
func (c *httpClient) mapTransport(ctx context.Context, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.Canceled):
		return context.Canceled
	case ctx.Err() != nil:
		return ErrTimeout
	case isConnectionError(err):
		return ErrUnreachable
	}
	return err
}

// finish reports the call to the observer and passes the error through.
func (c *httpClient) finish(op Op, start time.Time, err error) error {
	c.observer.OnCallComplete(CallEvent{
		Op:        op,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
	return err
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return "CANCELLED"
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnreachable):
		return "UNREACHABLE"
	case errors.Is(err, ErrRejected):
		return "REJECTED"
	case errors.Is(err, ErrInvalidResponse):
		return "INVALID_RESPONSE"
	default:
		return "UNKNOWN"
	}
}
