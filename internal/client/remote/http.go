package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/TheReeds/turisync/internal/common"
)

// HTTPSource implements Source against the marketplace REST API.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource returns a source for the API at baseURL. The timeout bounds
// every request; there is no retry — callers re-invoke to try again.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// envelope is the wire wrapper around every API response.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// call performs the request and unwraps the envelope. A transport failure, a
// non-2xx status and a success=false flag all surface as errors; the caller
// does not distinguish them beyond the message.
func call[T any](ctx context.Context, s *HTTPSource, method, path string) (T, error) {
	var zero T

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, nil)
	if err != nil {
		return zero, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return zero, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, fmt.Errorf("%w: %s", common.ErrRemoteStatus, resp.Status)
	}

	var env envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return zero, fmt.Errorf("failed to decode response: %w", err)
	}
	if !env.Success {
		return zero, fmt.Errorf("%w: %s", common.ErrRemoteStatus, env.Message)
	}
	return env.Data, nil
}

// FetchVendors returns the full vendor listing. An explicit empty list is a
// valid authoritative answer and is returned as such; a missing data field is
// not.
func (s *HTTPSource) FetchVendors(ctx context.Context) ([]VendorPayload, error) {
	data, err := call[[]VendorPayload](ctx, s, http.MethodGet, "/api/vendors")
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, common.ErrEmptyPayload
	}
	return data, nil
}

func (s *HTTPSource) FetchVendorByID(ctx context.Context, id int64) (*VendorPayload, error) {
	data, err := call[*VendorPayload](ctx, s, http.MethodGet, fmt.Sprintf("/api/vendors/%d", id))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, common.ErrEmptyPayload
	}
	return data, nil
}

func (s *HTTPSource) FetchVendorsByMunicipality(ctx context.Context, municipalityID int64) ([]VendorPayload, error) {
	data, err := call[[]VendorPayload](ctx, s, http.MethodGet, fmt.Sprintf("/api/municipalities/%d/vendors", municipalityID))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, common.ErrEmptyPayload
	}
	return data, nil
}

func (s *HTTPSource) DeleteVendor(ctx context.Context, id int64) error {
	_, err := call[json.RawMessage](ctx, s, http.MethodDelete, fmt.Sprintf("/api/vendors/%d", id))
	return err
}

func (s *HTTPSource) FetchMunicipalities(ctx context.Context) ([]MunicipalityPayload, error) {
	data, err := call[[]MunicipalityPayload](ctx, s, http.MethodGet, "/api/municipalities")
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, common.ErrEmptyPayload
	}
	return data, nil
}

func (s *HTTPSource) FetchMunicipalityByID(ctx context.Context, id int64) (*MunicipalityPayload, error) {
	data, err := call[*MunicipalityPayload](ctx, s, http.MethodGet, fmt.Sprintf("/api/municipalities/%d", id))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, common.ErrEmptyPayload
	}
	return data, nil
}
