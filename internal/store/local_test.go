package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name+Extension), []byte(content), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
}

func TestLocalLoadParsesFrontmatter(t *testing.T) {
	dir := t.TempDir()
	raw := "---\ndescription: greets people\nauthor: docs\n---\nHello {{ name }}!\n"
	writeTemplate(t, dir, "welcome", raw)

	s := NewLocal(dir, nil)
	got, err := s.Load(context.Background(), "welcome")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got.Source != raw {
		t.Fatalf("Source = %q", got.Source)
	}
	if got.Body != "Hello {{ name }}!\n" {
		t.Fatalf("Body = %q", got.Body)
	}
	if got.Meta["description"] != "greets people" || got.Meta["author"] != "docs" {
		t.Fatalf("Meta = %v", got.Meta)
	}
}

func TestLocalLoadWithoutFrontmatter(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "plain", "Just {{ text }}.")

	s := NewLocal(dir, nil)
	got, err := s.Load(context.Background(), "plain")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got.Body != "Just {{ text }}." || got.Source != got.Body {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if len(got.Meta) != 0 {
		t.Fatalf("Meta = %v, want empty", got.Meta)
	}
}

func TestLocalLoadMissingFile(t *testing.T) {
	s := NewLocal(t.TempDir(), nil)

	_, err := s.Load(context.Background(), "ghost")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLocalLoadHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewLocal(t.TempDir(), nil)
	if _, err := s.Load(ctx, "anything"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
