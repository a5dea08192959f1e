package riot

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// testClient points a client at a local test server.
func testClient(serverURL string) *Client {
	c := NewClient("test-key", "europe")
	c.baseURL = serverURL
	return c
}

func TestMatchTelemetry_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Riot-Token"); got != "test-key" {
			t.Errorf("X-Riot-Token: want test-key, got %q", got)
		}
		if !strings.HasSuffix(r.URL.Path, "/lol/match/v5/matches/EUW1_42") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"info":{}}`))
	}))
	defer server.Close()

	body, err := testClient(server.URL).MatchTelemetry(context.Background(), "EUW1_42")
	if err != nil {
		t.Fatalf("MatchTelemetry: %v", err)
	}
	if string(body) != `{"info":{}}` {
		t.Errorf("body: got %q", body)
	}
}

func TestMatchTelemetry_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := testClient(server.URL).MatchTelemetry(context.Background(), "EUW1_42")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("want ErrRateLimited, got %v", err)
	}
	if errors.Is(err, ErrUnavailable) {
		t.Error("rate limiting must stay distinguishable from unavailability")
	}
}

func TestMatchTelemetry_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := testClient(server.URL).MatchTelemetry(context.Background(), "EUW1_42")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
}

func TestMatchTelemetry_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // refuse connections

	_, err := testClient(server.URL).MatchTelemetry(context.Background(), "EUW1_42")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
}
