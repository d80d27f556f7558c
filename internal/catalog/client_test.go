package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedBody = `[
  {"id":1,"title":"Backpack","price":109.95,"image":"https://example.com/1.jpg","rating":{"rate":3.9,"count":120}},
  {"id":2,"title":"T-Shirt","price":22.3,"image":"https://example.com/2.jpg","rating":{"rate":4.1,"count":259}}
]`

// newFeedServer serves body with the given status and counts hits.
func newFeedServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestClient_ProductsDecodesFeed(t *testing.T) {
	srv, _ := newFeedServer(t, http.StatusOK, feedBody)
	client := NewClient(srv.URL)

	products, err := client.Products(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "Backpack", products[0].Title)
	assert.InDelta(t, 109.95, products[0].Price, 0.001)
	assert.Equal(t, "https://example.com/1.jpg", products[0].Image)
	assert.InDelta(t, 3.9, products[0].Rating.Rate, 0.001)
	assert.Equal(t, 120, products[0].Rating.Count)
}

func TestClient_ProductsMemoizesSnapshot(t *testing.T) {
	srv, hits := newFeedServer(t, http.StatusOK, feedBody)
	client := NewClient(srv.URL, WithSnapshotTTL(time.Hour))

	for range 3 {
		products, err := client.Products(context.Background())
		require.NoError(t, err)
		require.Len(t, products, 2)
	}

	assert.Equal(t, int64(1), hits.Load(), "fresh snapshot must be served from memory")
}

func TestClient_InvalidateForcesRefetch(t *testing.T) {
	srv, hits := newFeedServer(t, http.StatusOK, feedBody)
	client := NewClient(srv.URL, WithSnapshotTTL(time.Hour))

	_, err := client.Products(context.Background())
	require.NoError(t, err)

	client.Invalidate()

	_, err = client.Products(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), hits.Load())
}

func TestClient_ZeroTTLDisablesMemoization(t *testing.T) {
	srv, hits := newFeedServer(t, http.StatusOK, feedBody)
	client := NewClient(srv.URL, WithSnapshotTTL(0))

	_, err := client.Products(context.Background())
	require.NoError(t, err)
	_, err = client.Products(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), hits.Load())
}

func TestClient_ErrorPaths(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "oops"},
		{name: "not found", status: http.StatusNotFound, body: ""},
		{name: "malformed json", status: http.StatusOK, body: `{"not":"an array"}`},
		{name: "truncated json", status: http.StatusOK, body: `[{"id":1,`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newFeedServer(t, tt.status, tt.body)
			client := NewClient(srv.URL)

			products, err := client.Products(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFeedUnavailable, "all failures collapse to the single feed error kind")
			assert.Nil(t, products)
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	srv, _ := newFeedServer(t, http.StatusOK, feedBody)
	srv.Close() // connection refused from now on

	client := NewClient(srv.URL)
	_, err := client.Products(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFeedUnavailable)
}

func TestClient_FailureKeepsPreviousSnapshot(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(feedBody))
	}))
	t.Cleanup(srv.Close)

	// Short TTL so the second call goes back to the network.
	client := NewClient(srv.URL, WithSnapshotTTL(time.Nanosecond))

	first, err := client.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 2)

	fail.Store(true)
	_, err = client.Products(context.Background())
	require.Error(t, err)
}

func TestClient_DefaultEndpoint(t *testing.T) {
	client := NewClient("")
	assert.Equal(t, DefaultEndpoint, client.Endpoint())
}

func TestClient_ReturnedSliceIsACopy(t *testing.T) {
	srv, _ := newFeedServer(t, http.StatusOK, feedBody)
	client := NewClient(srv.URL, WithSnapshotTTL(time.Hour))

	first, err := client.Products(context.Background())
	require.NoError(t, err)
	first[0].Title = "mutated"

	second, err := client.Products(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Backpack", second[0].Title)
}
