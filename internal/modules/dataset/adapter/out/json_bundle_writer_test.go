package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	datasetout "familyalter/internal/modules/dataset/adapter/out"
	"familyalter/internal/modules/dataset/domain"
)

func TestJSONBundleWriterEmptyArrayAndNoLeftovers(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "nested")
	path := filepath.Join(dir, "bible_stories.json")
	if err := datasetout.NewJSONBundleWriter().Write(context.Background(), path, []domain.BibleStory{}); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "[]" {
		t.Fatalf("expected empty array, got %q", b)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp files should be cleaned up, found %d entries", len(entries))
	}
}

func TestFileTableSourceStripsBOM(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "t.csv")
	if err := os.WriteFile(path, []byte("\xef\xbb\xbfNumber,Title\n1,One\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := datasetout.NewFileTableSource().Read(context.Background(), path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got[:6] != "Number" {
		t.Fatalf("bom should be stripped, got %q", got[:6])
	}
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := datasetout.NewFileTableSource().Read(context.Background(), path); err == nil {
		t.Fatalf("invalid utf-8 should fail")
	}
}
