package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"familyalter/internal/modules/session/domain"
	sessionout "familyalter/internal/modules/session/port/out"
	apperrors "familyalter/internal/platform/errors"
)

const (
	worshipBundle = "worship_music.json"
	storiesBundle = "bible_stories.json"
)

// JSONCatalog reads the converter's bundles from fsys, either the embedded
// assets or a directory on disk.
type JSONCatalog struct {
	fsys fs.FS
}

func NewJSONCatalog(fsys fs.FS) sessionout.Catalog {
	return &JSONCatalog{fsys: fsys}
}

func (c *JSONCatalog) Tracks(_ context.Context) ([]domain.WorshipTrack, error) {
	tracks := []domain.WorshipTrack{}
	if err := c.decode(worshipBundle, &tracks); err != nil {
		return nil, err
	}
	return tracks, nil
}

// Stories drops entries the converter would have excluded, so hand-edited
// bundles cannot put story 0 or an untitled story into the rotation.
func (c *JSONCatalog) Stories(_ context.Context) ([]domain.BibleStory, error) {
	var all []domain.BibleStory
	if err := c.decode(storiesBundle, &all); err != nil {
		return nil, err
	}
	stories := make([]domain.BibleStory, 0, len(all))
	for _, s := range all {
		if s.Listable() {
			stories = append(stories, s)
		}
	}
	return stories, nil
}

func (c *JSONCatalog) decode(name string, v any) error {
	b, err := fs.ReadFile(c.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("catalog %s: %w", name, apperrors.ErrNotFound)
		}
		return fmt.Errorf("read catalog %s: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode catalog %s: %w", name, err)
	}
	return nil
}
