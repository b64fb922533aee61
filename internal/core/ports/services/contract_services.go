package services

import (
	"context"
	"io"

	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	"github.com/SscSPs/simcard_ledger/internal/dto"
)

// ContractSvcFacade defines contract generation and archive access
type ContractSvcFacade interface {
	// GenerateContract renders, archives and records a contract. When only the
	// ledger step fails the result is returned together with the error.
	GenerateContract(ctx context.Context, req dto.GenerateContractRequest) (*domain.GeneratedContract, error)

	// ListArchive returns archived contracts, newest first.
	ListArchive(ctx context.Context) ([]domain.ArchiveEntry, error)

	// OpenDocument opens an archived document by bare filename.
	OpenDocument(ctx context.Context, filename string) (io.ReadCloser, error)
}
