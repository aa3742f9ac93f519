package in

import (
	"context"

	"familyalter/internal/modules/session/dto"
)

type Usecase interface {
	Init(ctx context.Context) (dto.SessionView, error)
	NewSession(ctx context.Context) (dto.NewSessionOutput, error)
	Current(ctx context.Context) (dto.SessionView, error)
	History(ctx context.Context) ([]dto.RecordOutput, error)
	ExportHistory(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
	Reset(ctx context.Context) error
}
