package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"familyalter/internal/modules/session/domain"
	sessionout "familyalter/internal/modules/session/port/out"
	"familyalter/internal/platform/markdown"
)

const exportSchemaVersion = 1

type exportMeta struct {
	SchemaVersion int    `yaml:"schema_version"`
	ExportedAt    string `yaml:"exported_at"`
	Sessions      int    `yaml:"sessions"`
}

type MarkdownHistoryExporter struct{}

func NewMarkdownHistoryExporter() sessionout.HistoryExporter {
	return MarkdownHistoryExporter{}
}

func (MarkdownHistoryExporter) Export(_ context.Context, path string, history []domain.Record, exportedAt time.Time) error {
	doc, err := markdown.Render(exportMeta{
		SchemaVersion: exportSchemaVersion,
		ExportedAt:    exportedAt.Format(time.RFC3339),
		Sessions:      len(history),
	}, historyBody(history))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write history export: %w", err)
	}
	return nil
}

func historyBody(history []domain.Record) string {
	var sb strings.Builder
	sb.WriteString("# Past Sessions\n\n")
	if len(history) == 0 {
		sb.WriteString("No history yet.\n")
		return sb.String()
	}
	sb.WriteString("| Date | Worship | Bible Story |\n")
	sb.WriteString("| --- | --- | --- |\n")
	for _, r := range history {
		fmt.Fprintf(&sb, "| %s | %s | %s (#%d) |\n", cell(r.Date), cell(r.Worship), cell(r.Story), r.StoryNumber)
	}
	return sb.String()
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
