package orfeo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// ClientConfig is passed explicitly to the constructor; there is no
// package-level configuration state.
type ClientConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type HTTPClient struct {
	baseURL string
	token   string
	http    *http.Client
	decoder Decoder
	logger  *zap.Logger
}

func NewHTTPClient(cfg ClientConfig, decoder Decoder, logger ...*zap.Logger) *HTTPClient {
	l := zap.L().Named("orfeo.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("orfeo.client")
	}
	if decoder == nil {
		decoder = NewStrictDecoder()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPClient{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		decoder: decoder,
		logger:  l,
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, &TransportError{Err: err}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("orfeo request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("orfeo response body read failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil, &TransportError{Status: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("orfeo non-2xx response",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return nil, &TransportError{Status: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}

// listEnvelope tolerates both response shapes Orfeo serves: a bare JSON array
// or a {results: [...]} wrapper.
type listEnvelope struct {
	Results []json.RawMessage `json:"results"`
}

func (c *HTTPClient) ListWorkingHours(ctx context.Context, p ListParams) ([]WorkingHours, error) {
	q := url.Values{}
	q.Set("employee", fmt.Sprintf("%d", p.EmployeeID))
	if p.OverlapAfter != nil {
		q.Set("dates_overlap_after", p.OverlapAfter.Format(time.RFC3339))
	}
	if p.OverlapBefore != nil {
		q.Set("dates_overlap_before", p.OverlapBefore.Format(time.RFC3339))
	}

	raw, err := c.do(ctx, http.MethodGet, "/api/employeeworkinghours/", q, nil)
	if err != nil {
		return nil, err
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		var env listEnvelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, &SchemaError{Field: "response", Reason: "neither an array nor a results envelope"}
		}
		rows = env.Results
	}

	out := make([]WorkingHours, 0, len(rows))
	for _, row := range rows {
		rec, err := c.decoder.Decode(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

type effectiveHoursBody struct {
	StartDatetime string `json:"start_datetime"`
	EndDatetime   string `json:"end_datetime"`
}

type notesBody struct {
	Notes string `json:"notes"`
}

func (c *HTTPClient) DeclareHours(ctx context.Context, shiftID int, p DeclarePayload) (WorkingHours, error) {
	if len(p.Note) > MaxNoteLen {
		return WorkingHours{}, &SchemaError{Field: "note", Reason: fmt.Sprintf("longer than %d characters", MaxNoteLen)}
	}

	raw, err := c.do(ctx, http.MethodPatch,
		fmt.Sprintf("/api/employeeworkinghours/%d/set_effective_hours/", shiftID),
		nil,
		effectiveHoursBody{
			StartDatetime: p.StartDatetime.Format(time.RFC3339),
			EndDatetime:   p.EndDatetime.Format(time.RFC3339),
		},
	)
	if err != nil {
		return WorkingHours{}, err
	}

	updated, err := c.decoder.Decode(raw)
	if err != nil {
		return WorkingHours{}, err
	}

	if p.Note != "" {
		// Second, separate write. Not atomic with the first: a failure here
		// leaves the hours saved and the note lost.
		_, err := c.do(ctx, http.MethodPatch,
			fmt.Sprintf("/api/employeeworkinghours/%d/", shiftID),
			nil,
			notesBody{Notes: p.Note},
		)
		if err != nil {
			return updated, &NotePatchError{Updated: updated, Err: err}
		}
	}

	return updated, nil
}
