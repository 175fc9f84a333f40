package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Width != 80 {
		t.Errorf("expected Width=80, got %d", opts.Width)
	}
	if opts.Style != StyleDark {
		t.Errorf("expected Style=%q, got %q", StyleDark, opts.Style)
	}
	if !opts.EnableEmoji || !opts.PreserveNewLines || !opts.TableWrap {
		t.Errorf("unexpected toggles: %+v", opts)
	}
	if opts.InlineTableLinks {
		t.Error("expected InlineTableLinks=false")
	}
}

func TestOptionsChaining(t *testing.T) {
	opts := DefaultOptions().
		WithWidth(100).
		WithStyle(StyleLight)

	want := DefaultOptions()
	want.Width = 100
	want.Style = StyleLight
	if opts != want {
		t.Errorf("got %+v, want %+v", opts, want)
	}

	// the receiver is a copy
	if DefaultOptions().Width != 80 {
		t.Error("chaining mutated the defaults")
	}
}

func TestMarkdown(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		width    int
		contains string
	}{
		{"heading", "## Why Rankings Matter", 80, "Rankings"},
		{"bold", "This is **bold** text", 80, "bold"},
		{"code block", "```go\nfmt.Println(\"hello\")\n```", 80, "Println"},
		{"link", "[Guide](https://example.com)", 80, "Guide"},
		{"table", "| Plan | Price |\n|---|---|\n| Pro | 10 |", 80, "Price"},
		{"narrow width", "# Long heading that should wrap", 40, "Long"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			output, err := Markdown(tc.input, DefaultOptions().WithWidth(tc.width))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(output, tc.contains) {
				t.Errorf("output should contain %q, got: %s", tc.contains, output)
			}
		})
	}
}

func TestMarkdownEmoji(t *testing.T) {
	input := "Hello :smile: world"

	output, err := Markdown(input, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(output, ":smile:") {
		t.Errorf("emoji should have been converted, got: %s", output)
	}

	noEmoji := DefaultOptions()
	noEmoji.EnableEmoji = false
	output, err = Markdown(input, noEmoji)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, ":smile:") {
		t.Errorf("emoji should not have been converted, got: %s", output)
	}
}

func TestMarkdownInvalidStyle(t *testing.T) {
	_, err := Markdown("# Test", DefaultOptions().WithStyle("no/such/style.json"))
	if err == nil {
		t.Error("expected error for a missing style file")
	}
}

func TestArticle(t *testing.T) {
	opts := DefaultOptions().WithStyle(StyleNoTTY)

	output, err := Article("Coffee Guide", "## Beans\n\nPick fresh ones.", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Coffee Guide", "Beans", "fresh"} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
	if strings.Index(output, "Coffee Guide") > strings.Index(output, "Beans") {
		t.Error("title should come before the body")
	}
}

func TestArticle_NoTitle(t *testing.T) {
	opts := DefaultOptions().WithStyle(StyleNoTTY)

	withTitle, err := Article("", "body text", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	plain, err := Markdown("body text", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withTitle != plain {
		t.Errorf("empty title should render the body alone:\n%q\n%q", withTitle, plain)
	}
}

func TestStyles(t *testing.T) {
	for _, name := range []string{StyleDark, StyleLight, StyleNoTTY, StyleASCII} {
		if !IsBuiltinStyle(name) {
			t.Errorf("%q should be a builtin style", name)
		}
	}
	if IsBuiltinStyle("/tmp/custom.json") {
		t.Error("a file path is not a builtin style")
	}

	names := StyleNames()
	if len(names) < 4 {
		t.Fatalf("expected at least 4 styles, got %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("style names not sorted: %v", names)
		}
	}
}

func TestPalettes(t *testing.T) {
	for _, p := range Palettes() {
		got, ok := PaletteByName(p.Name)
		if !ok || got != p {
			t.Errorf("PaletteByName(%q) = %+v, %t", p.Name, got, ok)
		}
	}
	if _, ok := PaletteByName("solarized"); ok {
		t.Error("unknown palette should not be found")
	}
	if PaletteOrDefault("solarized") != TokyoNightPalette {
		t.Error("unknown palette should fall back to tokyonight")
	}
	if PaletteOrDefault("nord") != NordPalette {
		t.Error("nord palette not returned")
	}
}

func BenchmarkArticle(b *testing.B) {
	body := "## Why\n\nThis is **bold** and *italic* text with `code`.\n\n" +
		"- one\n- two\n\n| Name | Age |\n|---|---|\n| Alice | 30 |\n"
	opts := DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Article("Bench", body, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func TestValidateStyle(t *testing.T) {
	for _, style := range []string{"", StyleDark, StyleNoTTY} {
		if err := ValidateStyle(style); err != nil {
			t.Errorf("ValidateStyle(%q) = %v", style, err)
		}
	}

	custom := filepath.Join(t.TempDir(), "custom.json")
	if err := os.WriteFile(custom, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ValidateStyle(custom); err != nil {
		t.Errorf("existing style file rejected: %v", err)
	}

	err := ValidateStyle("no-such-style")
	if err == nil {
		t.Fatal("expected error for an unknown style")
	}
	if !strings.Contains(err.Error(), StyleDark) {
		t.Errorf("error should list the bundled styles, got %v", err)
	}
	if ValidateStyle(t.TempDir()) == nil {
		t.Error("a directory is not a style file")
	}
}
