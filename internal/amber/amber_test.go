package amber

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Sites(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sites", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"site-1","nmi":"1234567890"},{"id":"site-2","nmi":"0987654321"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)

	sites, err := c.Sites(context.Background(), "test-token")
	require.NoError(t, err)

	require.Len(t, sites, 2)
	assert.Equal(t, "site-1", sites[0].ID)
}

func TestClient_Sites_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)

	_, err := c.Sites(context.Background(), "test-token")
	assert.ErrorIs(t, err, ErrNoSites)
}

func TestClient_Sites_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)

	_, err := c.Sites(context.Background(), "bad-token")
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestClient_CurrentPrice_SelectsGeneralChannel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sites/site-1/prices/current", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"channelType":"feedIn","perKwh":-2.0,"renewables":61.2},
			{"channelType":"general","perKwh":24.81,"renewables":61.2,"spikeStatus":"none"},
			{"channelType":"controlledLoad","perKwh":18.0,"renewables":61.2}
		]`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)

	sample, err := c.CurrentPrice(context.Background(), "test-token", "site-1")
	require.NoError(t, err)

	assert.InDelta(t, 24.81, sample.PerKwh, 0.001)
	assert.InDelta(t, 61.2, sample.Renewables, 0.001)
}

func TestClient_CurrentPrice_NoGeneralChannel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"channelType":"feedIn","perKwh":-2.0,"renewables":61.2}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)

	_, err := c.CurrentPrice(context.Background(), "test-token", "site-1")
	assert.ErrorIs(t, err, ErrNoGeneralChannel)
}

func TestClient_CurrentPrice_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)

	_, err := c.CurrentPrice(context.Background(), "test-token", "site-1")
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestClient_CurrentPrice_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)

	_, err := c.CurrentPrice(context.Background(), "test-token", "site-1")
	assert.Error(t, err)
}
