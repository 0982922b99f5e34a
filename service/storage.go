package service

import (
	"context"

	"github.com/altlab/munge"
)

type EntryStorage interface {
	FindEntry(ctx context.Context, slug string) (*munge.Entry, error)
	ListEntries(ctx context.Context) ([]munge.Entry, error)
	SearchEntries(ctx context.Context, head string) ([]munge.Entry, error)
	SaveEntries(ctx context.Context, entries []munge.Entry) error
}
