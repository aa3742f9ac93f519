package in

import (
	"context"

	"familyalter/internal/modules/dataset/dto"
)

type Usecase interface {
	Convert(ctx context.Context, input dto.ConvertInput) (dto.ConvertOutput, error)
}
