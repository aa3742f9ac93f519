package out

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	datasetout "familyalter/internal/modules/dataset/port/out"
	apperrors "familyalter/internal/platform/errors"
)

type FileTableSource struct{}

func NewFileTableSource() datasetout.TableSource {
	return FileTableSource{}
}

func (FileTableSource) Read(_ context.Context, path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("read %s: %w", path, apperrors.ErrNotFound)
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("read %s: not valid UTF-8: %w", path, apperrors.ErrInvalidInput)
	}
	return strings.TrimPrefix(string(b), "\ufeff"), nil
}
