package ports

import (
	"context"

	"github.com/bnema/nextlevel-elevator/internal/domain"
)

// HistoryPublisher receives history entries after their transaction committed.
type HistoryPublisher interface {
	Publish(ctx context.Context, entry domain.HistoryEntry) error
}

type NopHistoryPublisher struct{}

func (NopHistoryPublisher) Publish(context.Context, domain.HistoryEntry) error {
	return nil
}
