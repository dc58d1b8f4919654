//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type RequestOption func(*http.Request)

func WithHeader(key, value string) RequestOption {
	return func(r *http.Request) { r.Header.Set(key, value) }
}

// PerformRequest sends body as JSON; a RawBody is sent untouched so tests can
// post malformed payloads. An empty authToken omits the Authorization header.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, authToken string, opts ...RequestOption) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader = http.NoBody
	switch b := body.(type) {
	case nil:
	case RawBody:
		reader = strings.NewReader(string(b))
	default:
		encoded, err := json.Marshal(b)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	for _, opt := range opts {
		opt(req)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type RawBody string
