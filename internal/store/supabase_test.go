package store

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/promptpack/go-prompts/pkg/prompt"
)

func newPromptsServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/"+DefaultTable {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("apikey") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"message":"invalid api key"}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("name") {
		case "eq.welcome":
			fmt.Fprint(w, `[{"name":"welcome","content":"Hello {{ name }}!","description":"greets people","author":"docs"}]`)
		case "eq.duplicate":
			fmt.Fprint(w, `[{"name":"duplicate","content":"a"},{"name":"duplicate","content":"b"}]`)
		case "eq.bare":
			fmt.Fprint(w, `[{"name":"bare","content":"No metadata columns."}]`)
		default:
			fmt.Fprint(w, `[]`)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSupabaseLoad(t *testing.T) {
	server := newPromptsServer(t)
	s := NewSupabase(NewSupabaseClient(server.URL, "test-key"), nil)

	got, err := s.Load(context.Background(), "welcome")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got.Body != "Hello {{ name }}!" || got.Source != got.Body {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if got.Meta["description"] != "greets people" || got.Meta["author"] != "docs" {
		t.Fatalf("Meta = %v", got.Meta)
	}
}

func TestSupabaseLoadMissingRow(t *testing.T) {
	server := newPromptsServer(t)
	s := NewSupabase(NewSupabaseClient(server.URL, "test-key"), nil)

	_, err := s.Load(context.Background(), "ghost")
	if !errors.Is(err, prompt.ErrNotFound) {
		t.Fatalf("expected prompt.ErrNotFound, got %v", err)
	}
}

func TestSupabaseLoadAmbiguousRows(t *testing.T) {
	server := newPromptsServer(t)
	s := NewSupabase(NewSupabaseClient(server.URL, "test-key"), nil)

	_, err := s.Load(context.Background(), "duplicate")
	if !errors.Is(err, prompt.ErrAmbiguous) {
		t.Fatalf("expected prompt.ErrAmbiguous, got %v", err)
	}
}

func TestSupabaseLoadMissingMetadataColumns(t *testing.T) {
	server := newPromptsServer(t)
	s := NewSupabase(NewSupabaseClient(server.URL, "test-key"), nil)

	got, err := s.Load(context.Background(), "bare")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Meta.Description() != "No description provided" {
		t.Fatalf("Description() = %q", got.Meta.Description())
	}
	if got.Meta.Author() != "Unknown" {
		t.Fatalf("Author() = %q", got.Meta.Author())
	}
}

func TestSupabaseLoadQueryFailure(t *testing.T) {
	server := newPromptsServer(t)
	s := NewSupabase(NewSupabaseClient(server.URL, "wrong-key"), nil)

	if _, err := s.Load(context.Background(), "welcome"); err == nil {
		t.Fatal("expected an error for rejected credentials")
	}
}

func TestSupabaseClientURLNormalization(t *testing.T) {
	server := newPromptsServer(t)

	// A URL already pointing at the REST root must not be doubled up.
	s := NewSupabase(NewSupabaseClient(server.URL+"/rest/v1/", "test-key"), nil)
	if _, err := s.Load(context.Background(), "welcome"); err != nil {
		t.Fatalf("load with explicit rest path: %v", err)
	}
}
