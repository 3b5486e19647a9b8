package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/TheReeds/turisync/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSource(t *testing.T, handler http.HandlerFunc) *HTTPSource {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPSource(srv.URL, 5*time.Second)
}

func TestFetchVendors_Success(t *testing.T) {
	s := newSource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/vendors", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"message": "ok",
			"data": [
				{"id": 9, "name": "Vendor Y", "category": "crafts",
				 "municipality": {"id": 4, "name": "Township Z", "district": "North"}}
			]
		}`))
	})

	got, err := s.FetchVendors(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(9), got[0].ID)
	require.NotNil(t, got[0].Municipality)
	assert.Equal(t, "Township Z", got[0].Municipality.Name)
}

func TestFetchVendors_ExplicitEmptyListIsValid(t *testing.T) {
	s := newSource(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "message": "ok", "data": []}`))
	})

	got, err := s.FetchVendors(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFetchVendors_MissingDataIsEmptyPayload(t *testing.T) {
	s := newSource(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "message": "ok"}`))
	})

	_, err := s.FetchVendors(context.Background())
	assert.True(t, errors.Is(err, common.ErrEmptyPayload))
}

func TestFetchVendors_NonSuccessFlag(t *testing.T) {
	s := newSource(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "message": "backend down", "data": null}`))
	})

	_, err := s.FetchVendors(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrRemoteStatus))
	assert.Contains(t, err.Error(), "backend down")
}

func TestFetchVendors_HTTPError(t *testing.T) {
	s := newSource(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := s.FetchVendors(context.Background())
	assert.True(t, errors.Is(err, common.ErrRemoteStatus))
}

func TestFetchVendorByID_Paths(t *testing.T) {
	s := newSource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/vendors/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"success": true, "message": "ok", "data": {"id": 7, "name": "Vendor X"}}`))
	})

	got, err := s.FetchVendorByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Vendor X", got.Name)
}

func TestFetchVendorByID_NullDataIsEmptyPayload(t *testing.T) {
	s := newSource(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "message": "ok", "data": null}`))
	})

	_, err := s.FetchVendorByID(context.Background(), 7)
	assert.True(t, errors.Is(err, common.ErrEmptyPayload))
}

func TestDeleteVendor(t *testing.T) {
	var gotMethod, gotPath string
	s := newSource(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		_, _ = w.Write([]byte(`{"success": true, "message": "deleted", "data": null}`))
	})

	require.NoError(t, s.DeleteVendor(context.Background(), 5))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/vendors/5", gotPath)
}

func TestFetchVendors_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	s := NewHTTPSource(srv.URL, time.Second)

	_, err := s.FetchVendors(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, common.ErrRemoteStatus))
}

func TestFetchMunicipalities_FullRecords(t *testing.T) {
	s := newSource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/municipalities", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"success": true, "message": "ok",
			"data": [{"id": 4, "name": "Township Z", "district": "North",
			          "province": "Highlands", "region": "South Region"}]
		}`))
	})

	got, err := s.FetchMunicipalities(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Highlands", got[0].Province)

	m := got[0].Model()
	assert.Equal(t, "South Region", m.Region)
}
