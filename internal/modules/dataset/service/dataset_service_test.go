package service_test

import (
	"context"
	"errors"
	"testing"

	"familyalter/internal/modules/dataset/domain"
	"familyalter/internal/modules/dataset/service"
)

type fakeSource struct {
	content map[string]string
}

func (f fakeSource) Read(_ context.Context, path string) (string, error) {
	c, ok := f.content[path]
	if !ok {
		return "", errors.New("missing")
	}
	return c, nil
}

type fakeWriter struct {
	written map[string]any
	err     error
}

func (f *fakeWriter) Write(_ context.Context, path string, records any) error {
	if f.err != nil {
		return f.err
	}
	f.written[path] = records
	return nil
}

func TestConvertDispatchesByTable(t *testing.T) {
	t.Parallel()
	src := fakeSource{content: map[string]string{
		"w.csv": "Name,Music URL,Order\nA,u,1\n",
		"s.csv": "Number,Title\n1,One\n0,Zero\n",
	}}
	w := &fakeWriter{written: map[string]any{}}
	svc := service.NewDatasetService(src, w, nil)

	n, err := svc.Convert(context.Background(), domain.TableWorship, "w.csv", "w.json")
	if err != nil || n != 1 {
		t.Fatalf("worship convert: n=%d err=%v", n, err)
	}
	if _, ok := w.written["w.json"].([]domain.WorshipTrack); !ok {
		t.Fatalf("worship bundle should hold tracks, got %T", w.written["w.json"])
	}
	n, err = svc.Convert(context.Background(), domain.TableStories, "s.csv", "s.json")
	if err != nil || n != 1 {
		t.Fatalf("stories convert: n=%d err=%v", n, err)
	}
	if _, err := svc.Convert(context.Background(), domain.Table("hymns"), "s.csv", "h.json"); err == nil {
		t.Fatalf("unknown table should fail")
	}
}

func TestConvertDoesNotWriteOnReadFailure(t *testing.T) {
	t.Parallel()
	w := &fakeWriter{written: map[string]any{}}
	svc := service.NewDatasetService(fakeSource{}, w, nil)
	if _, err := svc.Convert(context.Background(), domain.TableWorship, "missing.csv", "w.json"); err == nil {
		t.Fatalf("expected read failure")
	}
	if len(w.written) != 0 {
		t.Fatalf("nothing should be written, got %v", w.written)
	}
}

func TestConvertSurfacesWriteFailure(t *testing.T) {
	t.Parallel()
	src := fakeSource{content: map[string]string{"s.csv": "Number,Title\n1,One\n"}}
	svc := service.NewDatasetService(src, &fakeWriter{err: errors.New("disk full")}, nil)
	if _, err := svc.Convert(context.Background(), domain.TableStories, "s.csv", "s.json"); err == nil {
		t.Fatalf("expected write failure")
	}
}
