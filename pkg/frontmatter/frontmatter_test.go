package frontmatter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseExtractsMetadataAndBody(t *testing.T) {
	raw := []byte("---\ndescription: greeting template\nauthor: docs-team\nversion: 2\n---\nHello {{ name }}!\n")

	meta, body := Parse(raw)

	wantMeta := map[string]string{
		"description": "greeting template",
		"author":      "docs-team",
		"version":     "2",
	}
	if diff := cmp.Diff(wantMeta, meta); diff != "" {
		t.Fatalf("metadata mismatch (-want +got):\n%s", diff)
	}
	if got, want := string(body), "Hello {{ name }}!\n"; got != want {
		t.Fatalf("body = %q, want %q", got, want)
	}
}

func TestParseWithoutFrontmatterReturnsInputUnchanged(t *testing.T) {
	raw := []byte("Hello {{ name }}!\nNo metadata here.\n")

	meta, body := Parse(raw)

	if len(meta) != 0 {
		t.Fatalf("expected empty metadata, got %v", meta)
	}
	if string(body) != string(raw) {
		t.Fatalf("body changed: %q", body)
	}
}

func TestParseSkipsMalformedLines(t *testing.T) {
	raw := []byte("---\ndescription: still works\nthis line has no separator\nauthor: someone\n---\nbody\n")

	meta, body := Parse(raw)

	wantMeta := map[string]string{
		"description": "still works",
		"author":      "someone",
	}
	if diff := cmp.Diff(wantMeta, meta); diff != "" {
		t.Fatalf("metadata mismatch (-want +got):\n%s", diff)
	}
	if got, want := string(body), "body\n"; got != want {
		t.Fatalf("body = %q, want %q", got, want)
	}
}

func TestParseUnterminatedBlockIsBody(t *testing.T) {
	raw := []byte("---\ndescription: never closed\nHello there\n")

	meta, body := Parse(raw)

	if len(meta) != 0 {
		t.Fatalf("expected empty metadata, got %v", meta)
	}
	if string(body) != string(raw) {
		t.Fatalf("body changed: %q", body)
	}
}

func TestParseDropsCompositeValues(t *testing.T) {
	raw := []byte("---\ndescription: ok\ntags:\n  - one\n  - two\n---\nbody")

	meta, _ := Parse(raw)

	if _, ok := meta["tags"]; ok {
		t.Fatalf("composite value should be dropped, got %v", meta)
	}
	if meta["description"] != "ok" {
		t.Fatalf("description = %q", meta["description"])
	}
}

func TestParseCRLFDelimiters(t *testing.T) {
	raw := []byte("---\r\nauthor: win\r\n---\r\nbody\r\n")

	meta, body := Parse(raw)

	if meta["author"] != "win" {
		t.Fatalf("author = %q", meta["author"])
	}
	if got, want := string(body), "body\r\n"; got != want {
		t.Fatalf("body = %q, want %q", got, want)
	}
}
