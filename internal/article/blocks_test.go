package article

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fence = "```"

func TestSplitBlocks(t *testing.T) {
	draft := strings.Join([]string{
		"# Title",
		"",
		"Intro line one",
		"intro line two",
		"## Section",
		"Text",
		"",
		"| a | b |",
		"|---|---|",
		"| 1 | 2 |",
		"after table",
		"",
		fence + "go",
		"x := 1",
		"",
		"y := 2",
		fence,
	}, "\n")

	blocks := SplitBlocks(draft)
	require.Len(t, blocks, 6)

	want := []string{
		"# Title",
		"Intro line one\nintro line two",
		"## Section\nText",
		"| a | b |\n|---|---|\n| 1 | 2 |",
		"after table",
		fence + "go\nx := 1\n\ny := 2\n" + fence,
	}
	for i, b := range blocks {
		assert.Equal(t, want[i], b.Content, "block %d", i)
		assert.Equal(t, "block-"+string(rune('0'+i)), b.ID)
	}
}

func TestSplitBlocks_EdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		draft string
		want  []string
	}{
		{"empty", "", nil},
		{"only blank lines", "\n\n   \n", nil},
		{"crlf", "one\r\ntwo\r\n\r\nthree", []string{"one\ntwo", "three"}},
		{"unterminated fence", fence + "\ncode\n\nmore", []string{fence + "\ncode\n\nmore"}},
		{"table then blank", "| a |\n|---|\n\nnext", []string{"| a |\n|---|", "next"}},
		{"heading after heading", "# A\n## B", []string{"# A", "## B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, b := range SplitBlocks(tt.draft) {
				got = append(got, b.Content)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJoinBlocks(t *testing.T) {
	blocks := []Block{{ID: "block-0", Content: "Intro"}, {ID: "block-1", Content: "## Next\nText"}}
	assert.Equal(t, "# Title\n\nIntro\n\n## Next\nText", JoinBlocks("Title", blocks))
}

func TestJoinBlocks_RoundTrip(t *testing.T) {
	body := "Intro paragraph\n\n## Section\nText\n\n- a\n- b"
	joined := JoinBlocks("Post", SplitBlocks(body))

	title, rest := ExtractTitle(joined, "")
	assert.Equal(t, "Post", title)
	assert.Equal(t, RenderBody(body), RenderBody(rest))
}
