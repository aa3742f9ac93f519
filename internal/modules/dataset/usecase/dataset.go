package usecase

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"familyalter/internal/modules/dataset/domain"
	datasetdto "familyalter/internal/modules/dataset/dto"
	datasetin "familyalter/internal/modules/dataset/port/in"
	"familyalter/internal/modules/dataset/service"
	apperrors "familyalter/internal/platform/errors"
)

type Interactor struct {
	svc    *service.DatasetService
	logger *zap.Logger
}

func NewInteractor(svc *service.DatasetService, logger *zap.Logger) datasetin.Usecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{svc: svc, logger: logger}
}

// Convert runs both tables side by side. A failing table is logged and
// reported in its own result; it never stops the other one.
func (i *Interactor) Convert(ctx context.Context, input datasetdto.ConvertInput) (datasetdto.ConvertOutput, error) {
	if input.RawDir == "" || input.OutDir == "" {
		return datasetdto.ConvertOutput{}, apperrors.ErrInvalidInput
	}
	jobs := []datasetdto.TableResult{
		{
			Table:       string(domain.TableWorship),
			Source:      filepath.Join(input.RawDir, domain.WorshipSourceFile),
			Destination: filepath.Join(input.OutDir, domain.WorshipBundleFile),
		},
		{
			Table:       string(domain.TableStories),
			Source:      filepath.Join(input.RawDir, domain.StoriesSourceFile),
			Destination: filepath.Join(input.OutDir, domain.StoriesBundleFile),
		},
	}

	var g errgroup.Group
	for idx := range jobs {
		job := &jobs[idx]
		g.Go(func() error {
			count, err := i.svc.Convert(ctx, domain.Table(job.Table), job.Source, job.Destination)
			job.Records, job.Err = count, err
			if err != nil {
				i.logger.Error("table conversion failed",
					zap.String("table", job.Table),
					zap.String("source", job.Source),
					zap.Error(err))
				return nil
			}
			i.logger.Info("converted",
				zap.String("source", filepath.Base(job.Source)),
				zap.String("destination", filepath.Base(job.Destination)),
				zap.Int("records", count))
			return nil
		})
	}
	_ = g.Wait()
	return datasetdto.ConvertOutput{Results: jobs}, nil
}
