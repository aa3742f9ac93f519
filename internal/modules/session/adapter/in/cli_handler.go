package in

import (
	"context"

	sessiondto "familyalter/internal/modules/session/dto"
	sessionin "familyalter/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Init(ctx context.Context) (sessiondto.SessionView, error) {
	return h.usecase.Init(ctx)
}

func (h CLIHandler) NewSession(ctx context.Context) (sessiondto.NewSessionOutput, error) {
	return h.usecase.NewSession(ctx)
}

func (h CLIHandler) Current(ctx context.Context) (sessiondto.SessionView, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) History(ctx context.Context) ([]sessiondto.RecordOutput, error) {
	return h.usecase.History(ctx)
}

func (h CLIHandler) Export(ctx context.Context, path string) (sessiondto.ExportOutput, error) {
	return h.usecase.ExportHistory(ctx, sessiondto.ExportInput{Path: path})
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}
