package claude

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vbonduro/cashdrop/internal/labelreader"
)

var _ labelreader.Reader = (*Reader)(nil)

func claudeServer(t *testing.T, text string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sk-test", r.Header.Get("x-api-key"))

		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "claude-test", req["model"])

		resp := map[string]any{
			"id":          "msg_1",
			"type":        "message",
			"role":        "assistant",
			"model":       "claude-test",
			"stop_reason": "end_turn",
			"content":     []map[string]any{{"type": "text", "text": text}},
			"usage":       map[string]any{"input_tokens": 10, "output_tokens": 3},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestReadTotal(t *testing.T) {
	server := claudeServer(t, "$105.00")
	reader := New("sk-test", "claude-test", WithBaseURL(server.URL))

	amount, err := reader.ReadTotal(context.Background(), bytes.NewReader([]byte{0xFF, 0xD8}), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "105.00", amount.StringFixed(2))
}

func TestReadTotalNoAmount(t *testing.T) {
	server := claudeServer(t, "NONE")
	reader := New("sk-test", "claude-test", WithBaseURL(server.URL))

	_, err := reader.ReadTotal(context.Background(), bytes.NewReader([]byte{0xFF, 0xD8}), "image/png")
	assert.ErrorIs(t, err, labelreader.ErrNoAmount)
}

func TestReadTotalAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`)
	}))
	defer server.Close()

	reader := New("sk-test", "claude-test", WithBaseURL(server.URL))
	_, err := reader.ReadTotal(context.Background(), bytes.NewReader([]byte{0xFF, 0xD8}), "image/jpeg")
	assert.Error(t, err)
}

func TestReadTotalReadError(t *testing.T) {
	reader := New("sk-test", "claude-test")
	_, err := reader.ReadTotal(context.Background(), &errReader{}, "image/jpeg")
	assert.Error(t, err)
}

func TestNormaliseMIME(t *testing.T) {
	assert.Equal(t, "image/png", normaliseMIME("image/png"))
	assert.Equal(t, "image/jpeg", normaliseMIME("application/pdf"))
}

type errReader struct{}

func (e *errReader) Read(_ []byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}
