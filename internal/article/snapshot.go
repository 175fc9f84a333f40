package article

import (
	"strings"

	"github.com/tidwall/gjson"

	apperrors "github.com/diogo/seodraft/internal/errors"
)

// LoadSnapshot reads a saved wizard state. The state may be the top-level
// object or nested under "state".
func LoadSnapshot(data []byte) (*Draft, error) {
	if !gjson.ValidBytes(data) {
		return nil, apperrors.NewSnapshotError("not valid JSON", "")
	}

	parsed := gjson.ParseBytes(data)
	if !parsed.IsObject() {
		return nil, apperrors.NewSnapshotError("expected a JSON object", "")
	}
	if state := parsed.Get("state"); state.IsObject() {
		parsed = state
	}

	draftResult := parsed.Get("draft")
	if draftResult.Exists() && draftResult.Type != gjson.String {
		return nil, apperrors.NewSnapshotError("must be a string", "draft")
	}
	if strings.TrimSpace(draftResult.String()) == "" {
		return nil, apperrors.ErrEmptyDraft
	}

	draft := &Draft{
		Topic:    strings.TrimSpace(parsed.Get("topic").String()),
		Language: strings.TrimSpace(parsed.Get("language").String()),
		ImageURL: strings.TrimSpace(parsed.Get("imageUrl").String()),
		Markdown: draftResult.String(),
	}

	parsed.Get("outline").ForEach(func(_, item gjson.Result) bool {
		if text := strings.TrimSpace(item.String()); text != "" {
			draft.Outline = append(draft.Outline, text)
		}
		return true
	})

	return draft, nil
}
