package out

import "context"

// TableSource reads the raw text of a source table.
type TableSource interface {
	Read(ctx context.Context, path string) (string, error)
}

// BundleWriter persists a converted table; records must marshal to a JSON array.
type BundleWriter interface {
	Write(ctx context.Context, path string, records any) error
}
