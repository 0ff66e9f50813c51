package posts

import (
	"errors"
	"testing"
)

func TestDeriveSlugPrefersExplicitValue(t *testing.T) {
	slug, err := deriveSlug("my-post", "Ignored Title", "ignored.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slug != "my-post" {
		t.Fatalf("expected explicit slug, got %q", slug)
	}
}

func TestDeriveSlugNormalizesExplicitValue(t *testing.T) {
	slug, err := deriveSlug("My Post!", "", "ignored.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slug != "my-post" {
		t.Fatalf("expected normalized slug, got %q", slug)
	}
}

func TestDeriveSlugFallsBackToTitle(t *testing.T) {
	slug, err := deriveSlug("", "Modeling UI State", "posts/some-file.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slug != "modeling-ui-state" {
		t.Fatalf("expected title-derived slug, got %q", slug)
	}
}

func TestDeriveSlugFallsBackToFileName(t *testing.T) {
	slug, err := deriveSlug("", "", "posts/2020-intro.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slug != "2020-intro" {
		t.Fatalf("expected filename-derived slug, got %q", slug)
	}
}

func TestDeriveSlugRejectsEmptySources(t *testing.T) {
	if _, err := deriveSlug("", "", ""); !errors.Is(err, ErrSlugInvalid) {
		t.Fatalf("expected ErrSlugInvalid, got %v", err)
	}
}

func TestIsValidSlug(t *testing.T) {
	if !IsValidSlug("hello-world") {
		t.Fatal("expected hello-world to be valid")
	}
	if IsValidSlug("Hello World") {
		t.Fatal("expected Hello World to be invalid")
	}
}
