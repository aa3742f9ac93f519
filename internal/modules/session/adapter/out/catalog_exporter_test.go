package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"familyalter/assets"
	sessionout "familyalter/internal/modules/session/adapter/out"
	"familyalter/internal/modules/session/domain"
	apperrors "familyalter/internal/platform/errors"
	"familyalter/internal/platform/markdown"
)

func TestJSONCatalogFiltersStories(t *testing.T) {
	t.Parallel()
	fsys := fstest.MapFS{
		"worship_music.json": {Data: []byte(`[{"name":"A","url":"http://a","order":1},{"name":"A","url":"http://a","order":1}]`)},
		"bible_stories.json": {Data: []byte(`[{"number":0,"title":"Zero"},{"number":1,"title":"One"},{"number":2,"title":""}]`)},
	}
	catalog := sessionout.NewJSONCatalog(fsys)
	tracks, err := catalog.Tracks(context.Background())
	if err != nil {
		t.Fatalf("tracks: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("duplicate tracks must be preserved, got %d", len(tracks))
	}
	stories, err := catalog.Stories(context.Background())
	if err != nil {
		t.Fatalf("stories: %v", err)
	}
	if len(stories) != 1 || stories[0].Title != "One" {
		t.Fatalf("expected only story #1, got %+v", stories)
	}
}

func TestJSONCatalogMissingAndMalformed(t *testing.T) {
	t.Parallel()
	catalog := sessionout.NewJSONCatalog(fstest.MapFS{
		"bible_stories.json": {Data: []byte(`{"number":1}`)},
	})
	if _, err := catalog.Tracks(context.Background()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := catalog.Stories(context.Background()); err == nil {
		t.Fatalf("non-array bundle should fail")
	}
}

func TestEmbeddedCatalogLoads(t *testing.T) {
	t.Parallel()
	catalog := sessionout.NewJSONCatalog(assets.Catalog())
	tracks, err := catalog.Tracks(context.Background())
	if err != nil || len(tracks) == 0 {
		t.Fatalf("embedded tracks: n=%d err=%v", len(tracks), err)
	}
	stories, err := catalog.Stories(context.Background())
	if err != nil || len(stories) == 0 {
		t.Fatalf("embedded stories: n=%d err=%v", len(stories), err)
	}
	if stories[0].Number != 1 {
		t.Fatalf("embedded stories should start at #1, got %+v", stories[0])
	}
}

func TestMarkdownHistoryExporter(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "exports", "history.md")
	history := []domain.Record{
		{ID: 2, Date: "2026年10月20日星期二", Worship: "Goodness of God", Story: "The sneaky snake", StoryNumber: 2},
		{ID: 1, Date: "2026年10月19日星期一", Worship: "Way | Maker", Story: "The Beginning", StoryNumber: 1},
	}
	at := time.Date(2026, 10, 20, 21, 0, 0, 0, time.UTC)
	if err := sessionout.NewMarkdownHistoryExporter().Export(context.Background(), path, history, at); err != nil {
		t.Fatalf("export: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var meta struct {
		Sessions   int    `yaml:"sessions"`
		ExportedAt string `yaml:"exported_at"`
	}
	body, err := markdown.Split(string(b), &meta)
	if err != nil {
		t.Fatalf("split export: %v", err)
	}
	if meta.Sessions != 2 || meta.ExportedAt != "2026-10-20T21:00:00Z" {
		t.Fatalf("unexpected frontmatter %+v", meta)
	}
	first := strings.Index(body, "The sneaky snake (#2)")
	second := strings.Index(body, "The Beginning (#1)")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("records should be listed newest first:\n%s", body)
	}
	if !strings.Contains(body, `Way \| Maker`) {
		t.Fatalf("pipes should be escaped in table cells:\n%s", body)
	}
}
