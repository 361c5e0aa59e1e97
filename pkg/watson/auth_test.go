package watson

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestBasicAuthenticator(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "https://example.test", nil)

	auth := &BasicAuthenticator{Username: "user", Password: "pass"}
	if err := auth.Authenticate(req); err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	user, pass, ok := req.BasicAuth()
	if !ok || user != "user" || pass != "pass" {
		t.Error("basic auth header not set")
	}

	empty := &BasicAuthenticator{}
	if err := empty.Authenticate(req); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestBearerAuthenticator(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "https://example.test", nil)
	auth := &BearerAuthenticator{Token: "tok-1"}
	if err := auth.Authenticate(req); err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if got := req.Header.Get("Authorization"); got != "Bearer tok-1" {
		t.Errorf("unexpected Authorization header %q", got)
	}
}

func TestIAMAuthenticator(t *testing.T) {
	var exchanges atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.PostForm.Get("grant_type"); got != iamGrantType {
			t.Errorf("unexpected grant_type %q", got)
		}
		if got := r.PostForm.Get("apikey"); got != "key-123" {
			t.Errorf("unexpected apikey %q", got)
		}
		n := exchanges.Add(1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"tok-%d","token_type":"Bearer","expires_in":3600}`, n)
	}))
	defer server.Close()

	auth := NewIAMAuthenticator("key-123")
	auth.SetURL(server.URL)

	req := httptest.NewRequest(http.MethodGet, "https://example.test", nil)
	if err := auth.Authenticate(req); err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if got := req.Header.Get("Authorization"); got != "Bearer tok-1" {
		t.Errorf("unexpected Authorization header %q", got)
	}

	// Second request reuses the cached token instead of exchanging again.
	req2 := httptest.NewRequest(http.MethodGet, "https://example.test", nil)
	if err := auth.Authenticate(req2); err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if got := req2.Header.Get("Authorization"); got != "Bearer tok-1" {
		t.Errorf("expected cached token, got %q", got)
	}
	if n := exchanges.Load(); n != 1 {
		t.Errorf("expected 1 token exchange, got %d", n)
	}
}

func TestIAMAuthenticatorErrors(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		auth := NewIAMAuthenticator("")
		req := httptest.NewRequest(http.MethodGet, "https://example.test", nil)
		if err := auth.Authenticate(req); !errors.Is(err, ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("rejected key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"errorMessage":"Provided API key could not be found"}`))
		}))
		defer server.Close()

		auth := NewIAMAuthenticator("bogus")
		auth.SetURL(server.URL)
		req := httptest.NewRequest(http.MethodGet, "https://example.test", nil)
		if err := auth.Authenticate(req); err == nil {
			t.Error("expected error for rejected key")
		}
	})
}
