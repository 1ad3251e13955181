package tempworker

import "context"

type EntryRepository interface {
	Create(ctx context.Context, e Entry) (Entry, error)
	GetByID(ctx context.Context, id string) (Entry, error)
	List(ctx context.Context, filter EntryFilter) ([]Entry, int64, error)
	Delete(ctx context.Context, id string) error
}
