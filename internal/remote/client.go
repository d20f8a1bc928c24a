package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"epochs/internal/domain"
	"epochs/internal/epoch"
	"epochs/internal/metrics"
	"epochs/internal/server"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
	Kind    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("epochsd: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("epochsd: %s", e.Message)
}

// Unwrap maps the reported kind back onto the epoch sentinels.
func (e *APIError) Unwrap() error {
	switch e.Kind {
	case metrics.OutcomeOverflow:
		return epoch.ErrOverflow
	case metrics.OutcomeOutOfRange:
		return epoch.ErrOutOfRange
	}
	return nil
}

// HTTP talks to an epochsd instance at Base.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for base using client, or http.DefaultClient when
// client is nil.
func NewHTTP(base string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: client}
}

// Schemes lists the server's schemes.
func (c *HTTP) Schemes(ctx context.Context) ([]domain.SchemeInfo, error) {
	var out []domain.SchemeInfo
	if err := c.getJSON(ctx, "/schemes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Convert decodes raw under scheme on the server.
func (c *HTTP) Convert(ctx context.Context, scheme epoch.Scheme, raw int64) (server.ConvertResponse, error) {
	var out server.ConvertResponse
	path := "/convert/" + url.PathEscape(scheme.Name()) + "/" + strconv.FormatInt(raw, 10)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return server.ConvertResponse{}, err
	}
	return out, nil
}

// Encode asks the server for the raw value of t under scheme.
func (c *HTTP) Encode(ctx context.Context, scheme epoch.Scheme, t time.Time) (int64, error) {
	var out server.EncodeResponse
	path := "/encode/" + url.PathEscape(scheme.Name()) + "?t=" + url.QueryEscape(t.Format(time.RFC3339Nano))
	if err := c.getJSON(ctx, path, &out); err != nil {
		return 0, err
	}
	return out.Raw, nil
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		apiErr := &APIError{Status: resp.StatusCode}
		var body server.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&body) == nil {
			apiErr.Message, apiErr.Kind = body.Error, body.Kind
		}
		return apiErr
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
