//go:build e2e

package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// MarketplaceCall is one request the service made to the marketplace.
type MarketplaceCall struct {
	Method        string
	Path          string
	Authorization string
	Body          map[string]any
}

type FakeResponse struct {
	Status int
	Body   any
}

// FakeMarketplace serves canned envelopes per method and path and records every call.
type FakeMarketplace struct {
	server *httptest.Server

	mu     sync.Mutex
	routes map[string]FakeResponse
	calls  []MarketplaceCall
}

func NewFakeMarketplace() *FakeMarketplace {
	f := &FakeMarketplace{routes: make(map[string]FakeResponse)}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	return f
}

func (f *FakeMarketplace) URL() string { return f.server.URL }

func (f *FakeMarketplace) Close() { f.server.Close() }

func (f *FakeMarketplace) On(method, path string, status int, body any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[method+" "+path] = FakeResponse{Status: status, Body: body}
}

func (f *FakeMarketplace) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes = make(map[string]FakeResponse)
	f.calls = nil
}

func (f *FakeMarketplace) Calls(method, path string) []MarketplaceCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []MarketplaceCall
	for _, c := range f.calls {
		if c.Method == method && c.Path == path {
			out = append(out, c)
		}
	}
	return out
}

func (f *FakeMarketplace) serve(w http.ResponseWriter, r *http.Request) {
	call := MarketplaceCall{Method: r.Method, Path: r.URL.Path, Authorization: r.Header.Get("Authorization")}
	if raw, err := io.ReadAll(r.Body); err == nil && len(raw) > 0 {
		_ = json.Unmarshal(raw, &call.Body)
	}

	f.mu.Lock()
	f.calls = append(f.calls, call)
	resp, ok := f.routes[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	if !ok {
		resp = FakeResponse{Status: http.StatusNotFound, Body: Envelope(false, "Route not found", nil)}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	_ = json.NewEncoder(w).Encode(resp.Body)
}

// Envelope builds the marketplace response shape.
func Envelope(success bool, message string, data any) map[string]any {
	env := map[string]any{"success": success}
	if message != "" {
		env["message"] = message
	}
	if data != nil {
		env["data"] = data
	}
	return env
}

// PaymentRequired is the business failure that opens the payment gate.
func PaymentRequired(message, paymentURL string) map[string]any {
	env := Envelope(false, message, nil)
	env["paymentUrl"] = paymentURL
	return env
}
