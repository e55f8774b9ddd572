package http

import (
	"context"
	"fmt"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDo_ReturnsResponseForAnyStatus(t *testing.T) {
	server := httptest.NewServer(stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		w.WriteHeader(stdhttp.StatusInternalServerError)
		fmt.Fprint(w, `boom`)
	}))
	defer server.Close()

	client := NewClientWithLogger(zap.NewNop())
	resp, err := client.Get(context.Background(), server.URL, nil)
	require.NoError(t, err, "non-2xx statuses are responses, not transport errors")
	assert.Equal(t, stdhttp.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "boom", string(resp.Body))
}

func TestDo_SingleAttempt(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		attempts++
		w.WriteHeader(stdhttp.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClientWithLogger(zap.NewNop())
	_, err := client.Get(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestDo_BodyEncoding(t *testing.T) {
	var contentType string
	var body []byte
	server := httptest.NewServer(stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		contentType = r.Header.Get("Content-Type")
		body, _ = io.ReadAll(r.Body)
	}))
	defer server.Close()

	client := NewClientWithLogger(zap.NewNop())

	t.Run("marshalable value gets JSON content type", func(t *testing.T) {
		_, err := client.Post(context.Background(), server.URL, nil, map[string]string{"k": "v"})
		require.NoError(t, err)
		assert.Equal(t, "application/json", contentType)
		assert.JSONEq(t, `{"k":"v"}`, string(body))
	})

	t.Run("raw bytes pass through", func(t *testing.T) {
		_, err := client.Post(context.Background(), server.URL, nil, []byte(`{"raw":1}`))
		require.NoError(t, err)
		assert.Equal(t, `{"raw":1}`, string(body))
	})

	t.Run("reader body carries no default content type", func(t *testing.T) {
		_, err := client.Post(context.Background(), server.URL, nil, strings.NewReader("stream"))
		require.NoError(t, err)
		assert.Empty(t, contentType)
		assert.Equal(t, "stream", string(body))
	})

	t.Run("explicit content type wins", func(t *testing.T) {
		headers := map[string]string{"Content-Type": "application/pdf"}
		_, err := client.Post(context.Background(), server.URL, headers, []byte("pdf-bytes"))
		require.NoError(t, err)
		assert.Equal(t, "application/pdf", contentType)
	})
}

func TestDo_TransportFailure(t *testing.T) {
	server := httptest.NewServer(stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {}))
	server.Close()

	client := NewClientWithLogger(zap.NewNop())
	_, err := client.Get(context.Background(), server.URL, nil)
	require.Error(t, err)
}

func TestAppendQuery(t *testing.T) {
	t.Run("adds parameters", func(t *testing.T) {
		got, err := AppendQuery("https://api.example.com/v7/partner/documents/", map[string]string{"page": "2"})
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com/v7/partner/documents/?page=2", got)
	})

	t.Run("merges with existing parameters", func(t *testing.T) {
		got, err := AppendQuery("https://api.example.com/x?a=1", map[string]string{"b": "2"})
		require.NoError(t, err)
		assert.Contains(t, got, "a=1")
		assert.Contains(t, got, "b=2")
	})

	t.Run("no parameters", func(t *testing.T) {
		got, err := AppendQuery("https://api.example.com/x", nil)
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com/x", got)
	})
}
