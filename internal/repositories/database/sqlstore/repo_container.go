package sqlstore

import (
	"database/sql"

	portsrepo "github.com/SscSPs/simcard_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/simcard_ledger/pkg/database"
)

// NewRepositoryProvider wires every repository onto one pooled handle.
func NewRepositoryProvider(db *sql.DB, dialect database.Dialect) portsrepo.RepositoryProvider {
	base := BaseRepository{DB: db, Dialect: dialect}

	return portsrepo.RepositoryProvider{
		PartyRepo:       newPartyRepository(base),
		SimCardRepo:     newSimCardRepository(base),
		BankRepo:        newBankRepository(base),
		CheckRepo:       newCheckRepository(base),
		TransactionRepo: newTransactionRepository(base),
		ReportingRepo:   newReportingRepository(base),
	}
}
