package ports

import (
	"context"
	"io"

	"github.com/SscSPs/simcard_ledger/internal/core/domain"
)

// ContractRenderer turns a flat contract record into a document.
type ContractRenderer interface {
	// Render produces the document bytes. payments holds the table rows in
	// description, bank, amount, method, notes order.
	Render(ctx context.Context, kind domain.ContractKind, fields map[string]string, payments [][5]string) ([]byte, error)

	// Extension is the file extension of rendered documents, including the dot.
	Extension() string
}

// ArchiveStore keeps generated documents and the manifest describing them.
type ArchiveStore interface {
	// SaveDocument writes a document under a bare filename.
	SaveDocument(ctx context.Context, filename string, content []byte) error

	// AppendEntry adds a record to the manifest.
	AppendEntry(ctx context.Context, entry domain.ArchiveEntry) error

	// ListEntries returns manifest records in insertion order. A missing manifest is empty.
	ListEntries(ctx context.Context) ([]domain.ArchiveEntry, error)

	// OpenDocument opens an archived document for reading.
	OpenDocument(ctx context.Context, filename string) (io.ReadCloser, error)
}
