// Package client talks to the REST API on behalf of the offline sync agent.
package client

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

	"github.com/agendaamiga/agenda-backend/internal/domain"
)

// APIError is a non-2xx reply from the API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s: %s", e.Status, e.Code, e.Message)
}

// Unwrap lets callers test the reply with errors.Is against domain sentinels.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrConflict
	case http.StatusBadRequest:
		return domain.ErrValidation
	}
	return nil
}

// Client is a JSON client for the REST API.
type Client struct {
	baseURL *url.URL
	doer    Doer
}

// New builds a Client for baseURL, which must be absolute.
func New(baseURL string, doer Doer) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("base url %q is not absolute", baseURL)
	}
	return &Client{baseURL: u, doer: doer}, nil
}

// ConfirmarDose confirms a dose log at the server's current time.
func (c *Client) ConfirmarDose(ctx context.Context, doseLogID string) error {
	return c.do(ctx, http.MethodPost, nil, nil, "api", "doses", url.PathEscape(doseLogID), "confirmar")
}

// ConfirmarDoseEm confirms a dose log as taken at instante, the moment the
// confirmation was recorded on the device.
func (c *Client) ConfirmarDoseEm(ctx context.Context, doseLogID string, instante time.Time) error {
	body := struct {
		Instante time.Time `json:"instante"`
	}{Instante: instante.UTC()}
	return c.do(ctx, http.MethodPost, body, nil, "api", "doses", url.PathEscape(doseLogID), "confirmar")
}

// ListarPacientes returns the patients of a tutor.
func (c *Client) ListarPacientes(ctx context.Context, tutorID string) ([]domain.PacienteSnapshot, error) {
	var resp struct {
		Pacientes []domain.PacienteSnapshot `json:"pacientes"`
	}
	if err := c.do(ctx, http.MethodGet, nil, &resp, "api", "tutores", url.PathEscape(tutorID), "pacientes"); err != nil {
		return nil, err
	}
	return resp.Pacientes, nil
}

// do sends a request to the escaped path segments, with in encoded as the
// JSON body when it is not nil, and decodes a 2xx reply into out when out is
// not nil.
func (c *Client) do(ctx context.Context, method string, in, out any, segments ...string) error {
	endpoint := c.baseURL.JoinPath(segments...)
	path := endpoint.EscapedPath()

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && json.Unmarshal(data, &body) == nil {
		apiErr.Code = body.Error.Code
		apiErr.Message = body.Error.Message
	}
	return apiErr
}

// IsPermanent reports whether retrying err later cannot succeed.
func IsPermanent(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status >= 400 && apiErr.Status < 500 && apiErr.Status != http.StatusTooManyRequests
}
