package captioning

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ACORDE/memorial-acervo/src/config"
	"github.com/ACORDE/memorial-acervo/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(endpoint string) *Client {
	return NewClient(config.CaptionConfig{
		Endpoint:        endpoint,
		Model:           "gpt-4.1-mini",
		MaxOutputTokens: 600,
		Timeout:         5 * time.Second,
	}, logger.Nop())
}

func TestDescribeSendsRequestAndConcatenatesOutput(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-4.1-mini", body["model"])
		assert.Equal(t, float64(600), body["max_output_tokens"])

		input := body["input"].([]interface{})
		require.Len(t, input, 2)
		system := input[0].(map[string]interface{})
		assert.Equal(t, "system", system["role"])
		user := input[1].(map[string]interface{})
		content := user["content"].([]interface{})
		require.Len(t, content, 2)
		assert.Equal(t, UserPrompt, content[0].(map[string]interface{})["text"])
		assert.Equal(t, "data:image/png;base64,AAAA", content[1].(map[string]interface{})["image_url"])

		_, _ = w.Write([]byte(`{"output":[{"content":[{"type":"output_text","text":"A"}]},{"content":[{"type":"reasoning","text":"x"},{"type":"output_text","text":"B"}]}]}`))
	}))
	defer srv.Close()

	text, err := newTestClient(srv.URL).Describe(context.Background(), "sk-test", "data:image/png;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, "AB", text)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDescribeForwardsUpstreamErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Describe(context.Background(), "k", "data:,")
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusTooManyRequests, httpErr.StatusCode)
	assert.Equal(t, "Rate limit", httpErr.Message)
}

func TestDescribeUpstreamErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream down`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Describe(context.Background(), "k", "data:,")
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "upstream down", httpErr.Message)

	srv2 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"bad"}`))
	}))
	defer srv2.Close()

	_, err = newTestClient(srv2.URL).Describe(context.Background(), "k", "data:,")
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, map[string]interface{}{"detail": "bad"}, httpErr.Message)
}

func TestDescribeInvalidAndEmptyResponses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Describe(context.Background(), "k", "data:,")
	var invalid *InvalidResponseError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "not json", invalid.Body)

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"output":[]}`))
	}))
	defer empty.Close()

	_, err = newTestClient(empty.URL).Describe(context.Background(), "k", "data:,")
	var emptyErr *EmptyResponseError
	require.True(t, errors.As(err, &emptyErr))
	assert.Equal(t, map[string]interface{}{"output": []interface{}{}}, emptyErr.Payload)
}

func TestDescribeTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestClient(url).Describe(context.Background(), "k", "data:,")
	var transport *TransportError
	assert.True(t, errors.As(err, &transport))
}

func TestMimeType(t *testing.T) {
	assert.Equal(t, "image/jpeg", MimeType("acervo/foto.JPG", nil))
	assert.Equal(t, "image/png", MimeType("acervo/semextensao", []byte("\x89PNG\r\n\x1a\n0000")))
	assert.Equal(t, "application/octet-stream", MimeType("acervo/semextensao", nil))
	assert.Equal(t, "data:image/png;base64,AQI=", DataURL("a.png", []byte{1, 2}))
}
