package render

import (
	"sync"
	"testing"
)

func TestNormalize(t *testing.T) {
	opts := DefaultOptions()
	opts.Style = ""
	opts.Width = 3

	got := normalize(opts)
	if got.Style != StyleDark {
		t.Errorf("empty style should normalize to %q, got %q", StyleDark, got.Style)
	}
	if got.Width != MinWidth {
		t.Errorf("narrow width should clamp to %d, got %d", MinWidth, got.Width)
	}
	if normalize(DefaultOptions()) != DefaultOptions() {
		t.Error("defaults should be unchanged")
	}
}

func TestPoolSharesEquivalentOptions(t *testing.T) {
	ClearCache()
	defer ClearCache()

	blank := DefaultOptions()
	blank.Style = ""
	for _, opts := range []Options{DefaultOptions(), blank, DefaultOptions().WithWidth(5), DefaultOptions().WithWidth(MinWidth)} {
		if _, err := Markdown("text", opts); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if CacheSize() != 2 {
		t.Errorf("expected 2 pools (default and minimum width), got %d", CacheSize())
	}
}

func TestPoolRemembersStyleErrors(t *testing.T) {
	ClearCache()
	defer ClearCache()

	opts := DefaultOptions().WithStyle("no/such/style.json")
	_, first := Markdown("# a", opts)
	_, second := Markdown("# b", opts)
	if first == nil || second == nil {
		t.Fatal("expected errors for a missing style file")
	}
	if first != second {
		t.Errorf("the style error should be reused, got %v then %v", first, second)
	}
	if CacheSize() != 1 {
		t.Errorf("expected 1 pool, got %d", CacheSize())
	}
}

func TestPoolGetAndPut(t *testing.T) {
	ClearCache()
	defer ClearCache()

	opts := DefaultOptions()

	renderer, err := globalPool.get(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if renderer == nil {
		t.Fatal("expected non-nil renderer")
	}
	if CacheSize() != 1 {
		t.Errorf("expected 1 pool, got %d", CacheSize())
	}

	globalPool.put(opts, renderer)
	globalPool.put(opts, nil)

	if _, err := globalPool.get(opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if CacheSize() != 1 {
		t.Errorf("reusing options should not add pools, got %d", CacheSize())
	}
}

func TestPoolSeparatesOptions(t *testing.T) {
	ClearCache()
	defer ClearCache()

	for _, width := range []int{40, 60, 80} {
		if _, err := Markdown("text", DefaultOptions().WithWidth(width)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if CacheSize() != 3 {
		t.Errorf("expected 3 pools, got %d", CacheSize())
	}

	ClearCache()
	if CacheSize() != 0 {
		t.Errorf("expected empty cache after ClearCache, got %d", CacheSize())
	}
}

func TestMarkdownConcurrent(t *testing.T) {
	ClearCache()
	defer ClearCache()

	opts := DefaultOptions().WithStyle(StyleNoTTY)
	want, err := Markdown("## Section\n\nSame text", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Markdown("## Section\n\nSame text", opts)
			if err != nil {
				errs <- err.Error()
				return
			}
			if got != want {
				errs <- "output differs between goroutines"
			}
		}()
	}
	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Error(msg)
	}
}
