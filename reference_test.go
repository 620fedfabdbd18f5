package tailwindr

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildReferenceFragment(t *testing.T) {
	t.Run("bare fragment has exactly one CDN script tag", func(t *testing.T) {
		got, err := buildReferenceFragment("", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n := strings.Count(got, cdnURL); n != 1 {
			t.Errorf("expected 1 CDN reference, got %d in %q", n, got)
		}
		if strings.Contains(got, "<link") {
			t.Errorf("reference fragment must not contain link tags: %q", got)
		}
	})

	t.Run("config produces one module script with verbatim content", func(t *testing.T) {
		dir := t.TempDir()
		cfgPath := filepath.Join(dir, "tailwind.config.js")
		cfgContent := "tailwind.config = { theme: { extend: {} } };"
		if err := os.WriteFile(cfgPath, []byte(cfgContent), 0o644); err != nil {
			t.Fatal(err)
		}

		got, err := buildReferenceFragment(cfgPath, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if n := strings.Count(got, `<script type="module">`); n != 1 {
			t.Errorf("expected 1 module script, got %d", n)
		}
		if !strings.Contains(got, cfgContent) {
			t.Errorf("config content not verbatim in fragment: %q", got)
		}
		if !strings.Contains(got, cdnRefreshSnippet) {
			t.Errorf("refresh trigger missing: %q", got)
		}
		if strings.Contains(got, "<link") {
			t.Errorf("reference fragment must not contain link tags: %q", got)
		}
	})

	t.Run("stylesheets become inline style blocks in order", func(t *testing.T) {
		dir := t.TempDir()
		first := filepath.Join(dir, "a.css")
		second := filepath.Join(dir, "b.css")
		if err := os.WriteFile(first, []byte(".a { @apply p-2; }"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(second, []byte(".b { @apply m-2; }"), 0o644); err != nil {
			t.Fatal(err)
		}

		got, err := buildReferenceFragment("", []string{first, second})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if n := strings.Count(got, `<style type="text/tailwindcss">`); n != 2 {
			t.Errorf("expected 2 style blocks, got %d", n)
		}
		if strings.Index(got, ".a {") > strings.Index(got, ".b {") {
			t.Errorf("stylesheets out of order: %q", got)
		}
	})

	t.Run("missing config returns ErrMissingConfig", func(t *testing.T) {
		_, err := buildReferenceFragment(filepath.Join(t.TempDir(), "absent.js"), nil)
		if !errors.Is(err, ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig, got %v", err)
		}
	})

	t.Run("missing stylesheet returns ErrMissingStylesheet", func(t *testing.T) {
		_, err := buildReferenceFragment("", []string{filepath.Join(t.TempDir(), "absent.css")})
		if !errors.Is(err, ErrMissingStylesheet) {
			t.Errorf("expected ErrMissingStylesheet, got %v", err)
		}
	})
}
