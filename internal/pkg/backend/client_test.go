package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID     int `json:"id"`
	Status int `json:"status"`
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL+"/api/", 2*time.Second)
	require.NoError(t, err)
	return c
}

func TestClient_GetForwardsBearer(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/payroll/detail/7", r.URL.Path)
		assert.Equal(t, "2025-02-21", r.URL.Query().Get("start"))
		_, _ = w.Write([]byte(`[{"id":1,"status":0},{"id":2,"status":1}]`))
	})

	var out []item
	ctx := WithToken(context.Background(), "tok-123")
	err := c.Get(ctx, "/payroll/detail/7", url.Values{"start": {"2025-02-21"}}, &out)
	require.NoError(t, err)
	assert.Equal(t, []item{{1, 0}, {2, 1}}, out)
}

func TestClient_UnwrapsDataEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":5,"status":3}]}`))
	})

	var out []item
	require.NoError(t, c.Get(WithToken(context.Background(), "t"), "overtime/", nil, &out))
	assert.Equal(t, []item{{5, 3}}, out)
}

func TestClient_PutSendsJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 1, body["status"])
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.Put(WithToken(context.Background(), "t"), "/lembur/approve/9", map[string]int{"status": 1}, nil)
	assert.NoError(t, err)
}

func TestClient_RequiresToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("backend must not be called")
	})
	err := c.Get(context.Background(), "/absen/", nil, &[]item{})
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestClient_APIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"already processed"}`))
	})

	err := c.Put(WithToken(context.Background(), "t"), "/lembur/approve/9", map[string]int{"status": 2}, nil)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "already processed", apiErr.Message)
	assert.True(t, IsRejected(err))
	assert.False(t, IsNotFound(err))
}

func TestClient_UnexpectedShape(t *testing.T) {
	cases := map[string]string{
		"object for list": `{"id":1}`,
		"not json":        `<html>oops</html>`,
		"empty":           ``,
		"null":            `null`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})
			var out []item
			err := c.Get(WithToken(context.Background(), "t"), "/absen/", nil, &out)
			assert.ErrorIs(t, err, validator.ErrUnexpectedShape)
		})
	}
}

func TestClient_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c, err := NewClient(srv.URL, time.Second)
	require.NoError(t, err)
	srv.Close()

	err = c.Get(WithToken(context.Background(), "t"), "/absen/", nil, &[]item{})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNewClient_RejectsRelativeURL(t *testing.T) {
	_, err := NewClient("backend.local/api", time.Second)
	assert.Error(t, err)
}
