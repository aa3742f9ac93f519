package markdown_test

import (
	"strings"
	"testing"

	"familyalter/internal/platform/markdown"
)

type exportMeta struct {
	SchemaVersion int `yaml:"schema_version"`
	Sessions      int `yaml:"sessions"`
}

func TestRenderThenSplit(t *testing.T) {
	t.Parallel()
	doc, err := markdown.Render(exportMeta{SchemaVersion: 1, Sessions: 2}, "# History\n")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(doc, "---\nschema_version: 1\nsessions: 2\n---\n") {
		t.Fatalf("unexpected frontmatter: %q", doc)
	}
	var meta exportMeta
	body, err := markdown.Split(doc, &meta)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if meta.Sessions != 2 || strings.TrimSpace(body) != "# History" {
		t.Fatalf("unexpected split result meta=%+v body=%q", meta, body)
	}
}

func TestSplitWithoutFrontmatterAndUnclosed(t *testing.T) {
	t.Parallel()
	var meta exportMeta
	body, err := markdown.Split("plain", &meta)
	if err != nil || body != "plain" {
		t.Fatalf("plain content should pass through, got %q %v", body, err)
	}
	if _, err := markdown.Split("---\nsessions: 1\n", &meta); err == nil {
		t.Fatalf("unclosed frontmatter should fail")
	}
}
