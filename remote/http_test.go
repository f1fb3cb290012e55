package remote

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestHTTPClient_FetchExistingDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/alice" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"name":"alice"}`))
	}))
	defer srv.Close()

	c, err := NewHTTPClient(srv.URL)
	if err != nil {
		t.Fatalf("NewHTTPClient: %v", err)
	}

	snap, err := c.FetchByPath(t.Context(), "users/alice")
	if err != nil {
		t.Fatalf("FetchByPath: %v", err)
	}
	if !snap.Exists() {
		t.Fatal("expected the document to exist")
	}
	if string(snap.Data()) != `{"name":"alice"}` {
		t.Fatalf("unexpected payload %q", snap.Data())
	}
	if snap.Path() != "users/alice" {
		t.Fatalf("unexpected path %q", snap.Path())
	}
}

func TestHTTPClient_MissingDocumentIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no such document", http.StatusNotFound)
	}))
	defer srv.Close()

	c, err := NewHTTPClient(srv.URL)
	if err != nil {
		t.Fatalf("NewHTTPClient: %v", err)
	}

	snap, err := c.FetchByPath(t.Context(), "users/ghost")
	if err != nil {
		t.Fatalf("a 404 must not surface as an error, got %v", err)
	}
	if snap.Exists() {
		t.Fatal("expected an absence marker")
	}
	if snap.Data() != nil {
		t.Fatalf("absent document must yield nil data, got %q", snap.Data())
	}
}

func TestHTTPClient_ServerErrorsCarryStatusCodes(t *testing.T) {
	cases := []struct {
		httpStatus int
		want       codes.Code
	}{
		{http.StatusServiceUnavailable, codes.Unavailable},
		{http.StatusTooManyRequests, codes.ResourceExhausted},
		{http.StatusForbidden, codes.PermissionDenied},
		{http.StatusInternalServerError, codes.Internal},
		{http.StatusTeapot, codes.Unknown},
	}

	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "nope", tc.httpStatus)
		}))

		c, err := NewHTTPClient(srv.URL)
		if err != nil {
			t.Fatalf("NewHTTPClient: %v", err)
		}
		_, err = c.FetchByPath(t.Context(), "any/doc")
		srv.Close()

		if err == nil {
			t.Fatalf("HTTP %d: expected an error", tc.httpStatus)
		}
		st, ok := status.FromError(err)
		if !ok {
			t.Fatalf("HTTP %d: expected a status error, got %v", tc.httpStatus, err)
		}
		if st.Code() != tc.want {
			t.Fatalf("HTTP %d: got code %v, want %v", tc.httpStatus, st.Code(), tc.want)
		}
	}
}

func TestHTTPClient_SendsAuthorizationHeader(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte("{}"))
	}))
	defer srv.Close()

	c, err := NewHTTPClient(srv.URL, WithAuthorization("Bearer token-123"))
	if err != nil {
		t.Fatalf("NewHTTPClient: %v", err)
	}
	if _, err := c.FetchByPath(t.Context(), "d"); err != nil {
		t.Fatalf("FetchByPath: %v", err)
	}
	if got != "Bearer token-123" {
		t.Fatalf("unexpected Authorization header %q", got)
	}
}
