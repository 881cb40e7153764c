package markdown

import (
	"strings"
	"testing"
)

func TestRenderThenParseKeepsMetaAndBody(t *testing.T) {
	t.Parallel()
	note := Note{Meta: map[string]any{"completed_days": 3, "title": "Plan"}, Body: "# Plan\n"}
	rendered, err := note.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(rendered, "---\n") || !strings.Contains(rendered, "completed_days: 3") {
		t.Fatalf("unexpected frontmatter: %s", rendered)
	}
	parsed, err := Parse(rendered)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Meta["title"] != "Plan" || parsed.Body != "\n# Plan\n" {
		t.Fatalf("unexpected note %+v", parsed)
	}
}

func TestParseWithoutFrontmatter(t *testing.T) {
	t.Parallel()
	note, err := Parse("just text")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(note.Meta) != 0 || note.Body != "just text" {
		t.Fatalf("unexpected note %+v", note)
	}
	if _, err := Parse("---\nunterminated"); err == nil {
		t.Fatalf("expected missing separator error")
	}
}

func TestReplaceBlockKeepsUserText(t *testing.T) {
	t.Parallel()
	note := Note{Body: "my notes\n"}
	note.ReplaceBlock("days", "first")
	if !strings.Contains(note.Body, "my notes\n\n<!-- switchsprint:days:start -->\nfirst\n<!-- switchsprint:days:end -->") {
		t.Fatalf("unexpected append: %q", note.Body)
	}
	note.Body += "\nfooter\n"
	note.ReplaceBlock("days", "second\n")
	if strings.Contains(note.Body, "first") || !strings.Contains(note.Body, "second") {
		t.Fatalf("block not replaced: %q", note.Body)
	}
	if !strings.HasPrefix(note.Body, "my notes") || !strings.HasSuffix(note.Body, "footer\n") {
		t.Fatalf("user text lost: %q", note.Body)
	}

	empty := Note{}
	empty.ReplaceBlock("x", "y")
	if empty.Body != "<!-- switchsprint:x:start -->\ny\n<!-- switchsprint:x:end -->\n" {
		t.Fatalf("unexpected empty body: %q", empty.Body)
	}
}

func TestMergeOverridesKeys(t *testing.T) {
	t.Parallel()
	note := Note{}
	note.Merge(map[string]any{"a": 1})
	note.Meta["keep"] = true
	note.Merge(map[string]any{"a": 2})
	if note.Meta["a"] != 2 || note.Meta["keep"] != true {
		t.Fatalf("unexpected meta %+v", note.Meta)
	}
}
