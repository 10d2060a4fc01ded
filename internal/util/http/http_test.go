package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jmylchreest/autotheme/internal/version"
)

func TestIsURL(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"http://example.com/a.png", true},
		{"https://example.com/a.png", true},
		{"http://", false},
		{"https://", false},
		{"HTTP://example.com", false},
		{"ftp://example.com", false},
		{"./wallpaper.jpg", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsURL(tt.in); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFetch(t *testing.T) {
	var userAgent, custom string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		custom = r.Header.Get("X-Test")
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte("payload"))
		case "/big":
			w.Write([]byte(strings.Repeat("x", 64)))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	data, err := Fetch(context.Background(), srv.URL+"/ok", FetchOptions{Headers: map[string]string{"X-Test": "yes"}})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("Fetch() = %q, want %q", data, "payload")
	}
	if userAgent != version.UserAgent() {
		t.Errorf("User-Agent = %q", userAgent)
	}
	if custom != "yes" {
		t.Errorf("X-Test header = %q, want %q", custom, "yes")
	}

	if _, err := Fetch(context.Background(), srv.URL+"/missing", FetchOptions{}); err == nil {
		t.Error("Fetch() expected error for 404")
	}

	if _, err := Fetch(context.Background(), srv.URL+"/big", FetchOptions{MaxBytes: 16}); err == nil {
		t.Error("Fetch() expected error for oversized body")
	}
}

func TestFetchContentTypes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/png":
			w.Header().Set("Content-Type", "image/png")
		case "/html":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
		case "/bad":
			w.Header().Set("Content-Type", ";;")
		}
		w.Write([]byte("body"))
	}))
	defer srv.Close()

	images := FetchOptions{ContentTypes: []string{"image/"}}
	tests := []struct {
		path    string
		opts    FetchOptions
		wantErr bool
	}{
		{"/png", images, false},
		{"/html", images, true},
		{"/bad", images, true},
		{"/html", FetchOptions{}, false},
		{"/html", FetchOptions{ContentTypes: []string{"image/", "text/html"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := Fetch(context.Background(), srv.URL+tt.path, tt.opts)
			if tt.wantErr {
				if !errors.Is(err, ErrContentType) {
					t.Errorf("Fetch() error = %v, want ErrContentType", err)
				}
			} else if err != nil {
				t.Errorf("Fetch() error = %v", err)
			}
		})
	}
}

func TestFetchTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	start := time.Now()
	if _, err := Fetch(context.Background(), srv.URL, FetchOptions{Timeout: 50 * time.Millisecond}); err == nil {
		t.Fatal("Fetch() expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("Fetch() took %v, want it bounded by the timeout", elapsed)
	}
}
