package application

import (
	"context"
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/bnema/nextlevel-elevator/internal/domain"
	"github.com/bnema/nextlevel-elevator/internal/ports"
)

// ExportHistory returns every history entry in insertion order. The sequence
// is lazy and may be ranged over more than once.
func (s *Service) ExportHistory(ctx context.Context) iter.Seq2[domain.HistoryEntry, error] {
	return s.store.History(ctx)
}

// Dataset resolves the encoder registered for format. Formats match exactly.
func (s *Service) Dataset(format string) (ports.DatasetEncoder, error) {
	encoder, ok := s.encoders[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}

	return encoder, nil
}

func (s *Service) DatasetFormats() []string {
	formats := make([]string, 0, len(s.encoders))
	for format := range s.encoders {
		formats = append(formats, format)
	}
	slices.Sort(formats)

	return formats
}

// WriteDataset encodes the history log to w. An unknown format fails before
// anything is written.
func (s *Service) WriteDataset(ctx context.Context, w io.Writer, format string) error {
	encoder, err := s.Dataset(format)
	if err != nil {
		return err
	}

	if err := encoder.Encode(w, s.ExportHistory(ctx)); err != nil {
		return fmt.Errorf("encode %s dataset: %w", format, err)
	}

	return nil
}
