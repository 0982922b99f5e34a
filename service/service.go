package service

import (
	"context"

	"github.com/altlab/munge"
)

// Service fronts a converted dictionary for the web API.
type Service struct {
	Storage  EntryStorage
	ReadOnly bool
}

func (s *Service) FindEntry(ctx context.Context, slug string) (*munge.Entry, error) {
	return s.Storage.FindEntry(ctx, slug)
}

// SearchEntries returns every entry whose head matches, homographs included.
func (s *Service) SearchEntries(ctx context.Context, head string) ([]munge.Entry, error) {
	return s.Storage.SearchEntries(ctx, head)
}

func (s *Service) ImportEntries(ctx context.Context, entries []munge.Entry) error {
	if s.ReadOnly {
		return munge.ErrReadOnly
	}

	return s.Storage.SaveEntries(ctx, entries)
}

type StorageStats struct {
	Total int `json:"total"`
	OK    int `json:"ok"`
	NotOK int `json:"notOk"`
}

func (s *Service) Stats(ctx context.Context) (StorageStats, error) {
	entries, err := s.Storage.ListEntries(ctx)
	if err != nil {
		return StorageStats{}, err
	}

	stats := StorageStats{Total: len(entries)}
	for i := range entries {
		if entries[i].OK {
			stats.OK++
		} else {
			stats.NotOK++
		}
	}

	return stats, nil
}
