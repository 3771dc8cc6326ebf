package ports

import (
	"io"
	"iter"

	"github.com/bnema/nextlevel-elevator/internal/domain"
)

// DatasetEncoder writes the history log in one tabular format.
type DatasetEncoder interface {
	ContentType() string
	Encode(w io.Writer, entries iter.Seq2[domain.HistoryEntry, error]) error
}
