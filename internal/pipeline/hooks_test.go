package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestSwapImageHook(t *testing.T) {
	t.Run("hooked conversion applies classes", func(t *testing.T) {
		restore := SwapImageHook(func(string) string { return "mx-auto" })
		defer restore()

		conv := NewGoldmarkConverter()
		got, err := conv.ToHTML(context.Background(), "![alt text](img.png)")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(got, `class="mx-auto"`) {
			t.Errorf("image missing hook class: %q", got)
		}
		if !strings.Contains(got, `src="img.png"`) || !strings.Contains(got, `alt="alt text"`) {
			t.Errorf("image attributes missing: %q", got)
		}
	})

	t.Run("restore reinstates the previous hook", func(t *testing.T) {
		restore := SwapImageHook(func(string) string { return "temp" })
		restore()

		conv := NewGoldmarkConverter()
		got, err := conv.ToHTML(context.Background(), "![a](b.png)")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(got, "class=") {
			t.Errorf("hook not restored: %q", got)
		}
	})

	t.Run("restore is idempotent", func(t *testing.T) {
		outer := SwapImageHook(func(string) string { return "outer" })
		defer outer()

		inner := SwapImageHook(func(string) string { return "inner" })
		inner()
		inner() // second call must not clobber the outer hook

		conv := NewGoldmarkConverter()
		got, err := conv.ToHTML(context.Background(), "![a](b.png)")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(got, `class="outer"`) {
			t.Errorf("double restore clobbered the outer hook: %q", got)
		}
	})

	t.Run("nil hook installs the default", func(t *testing.T) {
		restore := SwapImageHook(nil)
		defer restore()

		conv := NewGoldmarkConverter()
		got, err := conv.ToHTML(context.Background(), "![a](b.png)")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(got, "class=") {
			t.Errorf("default hook should apply no class: %q", got)
		}
	})
}

func TestImageTitleRendered(t *testing.T) {
	conv := NewGoldmarkConverter()
	got, err := conv.ToHTML(context.Background(), `![a](b.png "the title")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `title="the title"`) {
		t.Errorf("image title missing: %q", got)
	}
}
