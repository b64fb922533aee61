package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/SscSPs/simcard_ledger/internal/apperrors"
	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	"github.com/SscSPs/simcard_ledger/internal/core/ports"
	portsrepo "github.com/SscSPs/simcard_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/simcard_ledger/internal/core/ports/services"
	"github.com/SscSPs/simcard_ledger/internal/dto"
	"github.com/SscSPs/simcard_ledger/internal/utils"
	"github.com/SscSPs/simcard_ledger/internal/utils/accounting"
	"github.com/google/uuid"
)

// Ledger labels of contract transactions. Both carry a prefix the direction
// inference understands.
const (
	saleContractLabel     = "receipt sale"
	purchaseContractLabel = "payment purchase"
)

// contractService implements the ContractSvcFacade interface
type contractService struct {
	BaseService
	renderer  ports.ContractRenderer
	archive   ports.ArchiveStore
	txRepo    portsrepo.TransactionRepositoryFacade
	partyRepo portsrepo.PartyReader
	simRepo   portsrepo.SimCardReader
}

// NewContractService creates the contract service on top of a renderer, an archive and the ledger.
func NewContractService(
	renderer ports.ContractRenderer,
	archive ports.ArchiveStore,
	repos portsrepo.RepositoryProvider,
	options ...ServiceOption,
) portssvc.ContractSvcFacade {
	return &contractService{
		BaseService: newBaseService(options),
		renderer:    renderer,
		archive:     archive,
		txRepo:      repos.TransactionRepo,
		partyRepo:   repos.PartyRepo,
		simRepo:     repos.SimCardRepo,
	}
}

var _ portssvc.ContractSvcFacade = (*contractService)(nil)

func validateContract(c domain.ContractData) error {
	if !c.Kind.Valid() {
		return apperrors.Validationf("invalid contract kind %q", c.Kind)
	}
	sides := []struct {
		role string
		who  domain.PartyIdentity
	}{{"seller", c.Seller}, {"buyer", c.Buyer}}
	for _, side := range sides {
		if strings.TrimSpace(side.who.Name) == "" {
			return apperrors.Validationf("%s name is required", side.role)
		}
		if !domain.ValidNationalID(side.who.NationalID) {
			return apperrors.Validationf("invalid %s national id %q", side.role, side.who.NationalID)
		}
	}
	if !domain.ValidSimNumber(c.SimNumber) {
		return apperrors.Validationf("invalid sim number %q", c.SimNumber)
	}
	if c.SaleAmount <= 0 {
		return apperrors.Validationf("sale amount must be positive")
	}
	if len(c.Payments) > domain.MaxContractPayments {
		return apperrors.Validationf("a contract holds at most %d payment rows, got %d", domain.MaxContractPayments, len(c.Payments))
	}
	return nil
}

// contractFilename names a document after its kind and generation time. The
// random suffix keeps two contracts generated in the same second apart.
func (s *contractService) contractFilename(kind domain.ContractKind) string {
	stamp := s.clock().In(s.location).Format("2006-01-02_150405")
	return fmt.Sprintf("contract_%s_%s_%s%s", kind, stamp, uuid.NewString()[:8], s.renderer.Extension())
}

// GenerateContract renders and archives the contract, then records it in the
// ledger. If only the ledger step fails the archived result is returned along
// with the error.
func (s *contractService) GenerateContract(ctx context.Context, req dto.GenerateContractRequest) (*domain.GeneratedContract, error) {
	data := req.ToContractData()
	if err := validateContract(data); err != nil {
		return nil, err
	}
	if data.SaleAmountToman == "" {
		data.SaleAmountToman = utils.RialToToman(data.SaleAmount)
	}

	content, err := s.renderer.Render(ctx, data.Kind, data.Fields(), data.PaymentTable())
	if err != nil {
		s.LogError(ctx, err, "Failed to render contract", slog.String("kind", string(data.Kind)))
		return nil, fmt.Errorf("failed to render contract: %w", err)
	}

	filename := s.contractFilename(data.Kind)
	if err := s.archive.SaveDocument(ctx, filename, content); err != nil {
		s.LogError(ctx, err, "Failed to store contract document", slog.String("filename", filename))
		return nil, fmt.Errorf("failed to store contract: %w", err)
	}

	entry := domain.ArchiveEntry{
		DocumentType: data.Kind,
		Filename:     filename,
		GeneratedAt:  s.Timestamp(),
	}
	if err := s.archive.AppendEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to update archive manifest", slog.String("filename", filename))
		return nil, fmt.Errorf("failed to update archive manifest: %w", err)
	}
	s.LogInfo(ctx, "Contract archived", slog.String("filename", filename), slog.String("kind", string(data.Kind)))

	result := &domain.GeneratedContract{Entry: entry}
	txID, err := s.recordContract(ctx, data, entry)
	if err != nil {
		s.LogError(ctx, err, "Contract archived but not recorded in the ledger", slog.String("filename", filename))
		return result, fmt.Errorf("contract %s archived but not recorded: %w", filename, err)
	}
	result.TransactionID = &txID
	return result, nil
}

// recordContract writes the ledger transaction of an archived contract, linked
// to the SIM card and the counterparty when they are registered.
func (s *contractService) recordContract(ctx context.Context, data domain.ContractData, entry domain.ArchiveEntry) (int64, error) {
	txn := domain.Transaction{
		Amount:       data.SaleAmount,
		OccurredAt:   entry.GeneratedAt,
		Description:  fmt.Sprintf("%s contract for SIM %s", data.Kind, data.SimNumber),
		ContractFile: entry.Filename,
	}
	if data.Kind == domain.ContractPurchase {
		txn.Type, txn.Direction = purchaseContractLabel, domain.Outflow
	} else {
		txn.Type, txn.Direction = saleContractLabel, domain.Inflow
	}
	if len(data.Payments) > 0 {
		txn.PaymentMethod = data.Payments[0].Method
		txn.BankAccount = data.Payments[0].Bank
	}

	sim, err := s.simRepo.FindSimCardByNumber(ctx, data.SimNumber)
	switch {
	case err == nil:
		txn.SimCardID = &sim.ID
	case !errors.Is(err, apperrors.ErrNotFound):
		return 0, err
	}

	party, err := s.partyRepo.FindPartyByNationalID(ctx, data.CounterpartyNationalID())
	switch {
	case err == nil:
		txn.PartyID = &party.ID
	case !errors.Is(err, apperrors.ErrNotFound):
		return 0, err
	}

	id, err := s.txRepo.SaveTransaction(ctx, txn, contractPayments(data))
	if err != nil {
		return 0, err
	}
	s.LogInfo(ctx, "Contract recorded in ledger", slog.Int64("transaction_id", id), slog.String("filename", entry.Filename))
	return id, nil
}

// contractPayments turns the payment table into split payments when every
// non-blank row carries an amount and the rows add up to the sale amount.
// Otherwise the table stays descriptive and nil is returned.
func contractPayments(data domain.ContractData) []domain.Payment {
	var payments []domain.Payment
	for _, row := range data.Payments {
		if row.IsBlank() {
			continue
		}
		amount, err := utils.ParseAmount(row.Amount)
		if err != nil || amount <= 0 {
			return nil
		}
		payments = append(payments, domain.Payment{
			PaymentMethod: row.Method,
			Amount:        amount,
			BankAccount:   row.Bank,
			Notes:         strings.TrimSpace(row.Description + " " + row.Notes),
		})
	}
	if accounting.ValidatePaymentsTotal(data.SaleAmount, payments) != nil {
		return nil
	}
	return payments
}

// ListArchive returns archived contracts, newest first.
func (s *contractService) ListArchive(ctx context.Context) ([]domain.ArchiveEntry, error) {
	entries, err := s.archive.ListEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read archive manifest")
		return nil, fmt.Errorf("failed to read archive: %w", err)
	}
	out := make([]domain.ArchiveEntry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out, nil
}

func (s *contractService) OpenDocument(ctx context.Context, filename string) (io.ReadCloser, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return nil, apperrors.Validationf("invalid document name %q", filename)
	}
	return s.archive.OpenDocument(ctx, filename)
}
