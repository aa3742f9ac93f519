package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"familyalter/internal/modules/dataset/domain"
	datasetout "familyalter/internal/modules/dataset/port/out"
)

type DatasetService struct {
	source datasetout.TableSource
	writer datasetout.BundleWriter
	logger *zap.Logger
}

func NewDatasetService(source datasetout.TableSource, writer datasetout.BundleWriter, logger *zap.Logger) *DatasetService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DatasetService{source: source, writer: writer, logger: logger}
}

// Convert reads src, parses it with the policy for table and writes dst.
// Nothing is written unless the read succeeded.
func (s *DatasetService) Convert(ctx context.Context, table domain.Table, src, dst string) (int, error) {
	content, err := s.source.Read(ctx, src)
	if err != nil {
		return 0, err
	}
	var (
		records any
		count   int
	)
	switch table {
	case domain.TableWorship:
		tracks := domain.ParseWorshipTable(content)
		records, count = tracks, len(tracks)
	case domain.TableStories:
		stories := domain.ParseStoryTable(content)
		records, count = stories, len(stories)
	default:
		return 0, fmt.Errorf("unknown table %q", table)
	}
	if err := s.writer.Write(ctx, dst, records); err != nil {
		return 0, err
	}
	s.logger.Debug("table converted",
		zap.String("table", string(table)),
		zap.String("source", src),
		zap.String("destination", dst),
		zap.Int("records", count))
	return count, nil
}
