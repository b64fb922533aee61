package services

import (
	"github.com/SscSPs/simcard_ledger/internal/core/ports"
	portsrepo "github.com/SscSPs/simcard_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/simcard_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	repos portsrepo.RepositoryProvider,
	renderer ports.ContractRenderer,
	archive ports.ArchiveStore,
	options ...ServiceOption,
) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Party:       NewPartyService(repos.PartyRepo, options...),
		SimCard:     NewSimCardService(repos.SimCardRepo, repos.PartyRepo, options...),
		Bank:        NewBankService(repos.BankRepo, options...),
		Check:       NewCheckService(repos.CheckRepo, repos.BankRepo, options...),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.PartyRepo, repos.SimCardRepo, options...),
		Reporting:   NewReportingService(repos.ReportingRepo, options...),
		Contract:    NewContractService(renderer, archive, repos, options...),
	}
}
