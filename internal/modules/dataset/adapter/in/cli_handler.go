package in

import (
	"context"

	datasetdto "familyalter/internal/modules/dataset/dto"
	datasetin "familyalter/internal/modules/dataset/port/in"
)

type CLIHandler struct {
	usecase datasetin.Usecase
}

func NewCLIHandler(usecase datasetin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Convert(ctx context.Context, rawDir, outDir string) (datasetdto.ConvertOutput, error) {
	return h.usecase.Convert(ctx, datasetdto.ConvertInput{RawDir: rawDir, OutDir: outDir})
}
