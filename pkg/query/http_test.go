package query

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchGraphMergesScopes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope := r.URL.Query().Get("scope")
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q", got)
		}
		fmt.Fprintf(w, `{"data":{"data":{
			"nodes":[{"id":"%s-1","labels":["Document"],"properties":{}}],
			"relationships":[]
		}}}`, scope)
	}))
	defer srv.Close()

	client := NewHTTPClient(NewHTTPClientParams{
		BaseURL: srv.URL,
		Token:   "secret",
		Scopes:  []string{"document", "chunk"},
	})

	res, err := client.FetchGraph(context.Background(), "42")
	if err != nil {
		t.Fatalf("FetchGraph() error = %v", err)
	}
	if len(res.Nodes) != 2 {
		t.Errorf("got %d nodes across scopes, want 2", len(res.Nodes))
	}
}

func TestFetchGraphEnvelopeDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"data":{
			"nodes":[{"id":"1","labels":["Document"],"properties":{"fileName":"a.pdf"}}],
			"relationships":[{"id":"r1","type":"HAS_CHUNK","from":"1","to":"2"}]
		}}}`)
	}))
	defer srv.Close()

	client := NewHTTPClient(NewHTTPClientParams{BaseURL: srv.URL, Scopes: []string{"document"}})

	res, err := client.FetchGraph(context.Background(), "42")
	if err != nil {
		t.Fatalf("FetchGraph() error = %v", err)
	}
	if len(res.Nodes) != 1 || res.Nodes[0].ID != "1" {
		t.Fatalf("nodes = %+v", res.Nodes)
	}
	if res.Nodes[0].Properties["fileName"] != "a.pdf" {
		t.Errorf("properties not decoded: %v", res.Nodes[0].Properties)
	}
	if len(res.Relationships) != 1 || res.Relationships[0].Type != "HAS_CHUNK" {
		t.Errorf("relationships = %+v", res.Relationships)
	}
}

func TestFetchGraphTimeoutClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewHTTPClient(NewHTTPClientParams{
		BaseURL: srv.URL,
		Scopes:  []string{"document"},
		Timeout: 50 * time.Millisecond,
	})

	_, err := client.FetchGraph(context.Background(), "42")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsTimeout(err) {
		t.Errorf("IsTimeout(%v) = false, want true", err)
	}
}

func TestFetchGraphServerErrorNotTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewHTTPClient(NewHTTPClientParams{BaseURL: srv.URL, Scopes: []string{"document"}})

	_, err := client.FetchGraph(context.Background(), "42")
	if err == nil {
		t.Fatal("expected error")
	}
	if IsTimeout(err) {
		t.Errorf("server error misclassified as timeout: %v", err)
	}
}
