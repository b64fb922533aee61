package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/simcard_ledger/internal/apperrors"
	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/simcard_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/simcard_ledger/internal/core/ports/services"
	"github.com/SscSPs/simcard_ledger/internal/dto"
	"github.com/SscSPs/simcard_ledger/internal/utils/accounting"
	"github.com/SscSPs/simcard_ledger/internal/utils/pagination"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txRepo    portsrepo.TransactionRepositoryFacade
	partyRepo portsrepo.PartyReader
	simRepo   portsrepo.SimCardReader
}

// NewTransactionService creates a new transaction service. Party and SIM card
// links are checked against the given readers before anything is written.
func NewTransactionService(
	repo portsrepo.TransactionRepositoryFacade,
	partyRepo portsrepo.PartyReader,
	simRepo portsrepo.SimCardReader,
	options ...ServiceOption,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService: newBaseService(options),
		txRepo:      repo,
		partyRepo:   partyRepo,
		simRepo:     simRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// resolveDirection prefers an explicit direction and otherwise infers it from the label.
func resolveDirection(explicit domain.Direction, label string) (domain.Direction, error) {
	if explicit != "" {
		if !explicit.Valid() {
			return "", apperrors.Validationf("invalid direction %q", explicit)
		}
		return explicit, nil
	}
	if dir, ok := domain.DirectionFromLabel(label); ok {
		return dir, nil
	}
	return "", apperrors.Validationf("cannot infer direction from type %q, set it explicitly", label)
}

func (s *transactionService) checkLinks(ctx context.Context, partyID, simID *int64) error {
	if partyID != nil {
		if _, err := s.partyRepo.FindPartyByID(ctx, *partyID); err != nil {
			return fmt.Errorf("invalid party: %w", err)
		}
	}
	if simID != nil {
		if _, err := s.simRepo.FindSimCardByID(ctx, *simID); err != nil {
			return fmt.Errorf("invalid sim card: %w", err)
		}
	}
	return nil
}

// CreateTransaction stamps, validates and stores a transaction with its split payments.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	label := strings.TrimSpace(req.Type)
	if label == "" {
		return nil, apperrors.Validationf("transaction type is required")
	}
	if req.Amount <= 0 {
		return nil, apperrors.Validationf("transaction amount must be positive")
	}
	direction, err := resolveDirection(req.Direction, label)
	if err != nil {
		return nil, err
	}

	payments := make([]domain.Payment, len(req.Payments))
	for i, p := range req.Payments {
		payments[i] = p.ToDomain(0)
	}
	if err := accounting.ValidatePaymentsTotal(req.Amount, payments); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if err := s.checkLinks(ctx, req.PartyID, req.SimCardID); err != nil {
		s.LogError(ctx, err, "Transaction references a missing record")
		return nil, err
	}

	txn := domain.Transaction{
		Type:            label,
		Direction:       direction,
		Amount:          req.Amount,
		OccurredAt:      s.Timestamp(),
		Description:     req.Description,
		ContractFile:    req.ContractFile,
		PartyID:         req.PartyID,
		SimCardID:       req.SimCardID,
		PaymentMethod:   req.PaymentMethod,
		BankAccount:     req.BankAccount,
		ReferenceNumber: req.ReferenceNumber,
	}

	id, err := s.txRepo.SaveTransaction(ctx, txn, payments)
	if err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("type", txn.Type),
			slog.Int("payment_count", len(payments)))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.Int64("transaction_id", id),
		slog.String("direction", string(direction)),
		slog.Int64("amount", txn.Amount))
	return s.txRepo.FindTransactionByID(ctx, id)
}

func (s *transactionService) GetTransactionByID(ctx context.Context, txID int64) (*domain.Transaction, error) {
	return s.txRepo.FindTransactionByID(ctx, txID)
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	var after *domain.TransactionCursor
	if params.NextToken != "" {
		cursor, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, apperrors.Validationf("invalid nextToken: %v", err)
		}
		after = &cursor
	}

	// one extra row tells whether another page follows
	fetch := 0
	if params.Limit > 0 {
		fetch = params.Limit + 1
	}
	txns, err := s.txRepo.ListTransactions(ctx, fetch, after)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	var nextToken *string
	if params.Limit > 0 && len(txns) > params.Limit {
		txns = txns[:params.Limit]
		last := txns[len(txns)-1]
		token := pagination.EncodeToken(domain.TransactionCursor{OccurredAt: last.OccurredAt, ID: last.ID})
		nextToken = &token
	}
	return dto.ToListTransactionsResponse(txns, nextToken), nil
}

// UpdateTransaction rewrites label, amount and description. A new label with a
// recognised prefix also moves the direction; otherwise the direction is kept.
func (s *transactionService) UpdateTransaction(ctx context.Context, txID int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	label := strings.TrimSpace(req.Type)
	if label == "" {
		return nil, apperrors.Validationf("transaction type is required")
	}
	if req.Amount <= 0 {
		return nil, apperrors.Validationf("transaction amount must be positive")
	}

	txn, err := s.txRepo.FindTransactionByID(ctx, txID)
	if err != nil {
		return nil, err
	}

	payments, err := s.txRepo.ListPayments(ctx, txID)
	if err != nil {
		return nil, err
	}
	if _, err := accounting.PaymentsWithin(req.Amount, payments); err != nil {
		return nil, apperrors.Validationf("amount %d is below the recorded split payments: %v", req.Amount, err)
	}

	txn.Type = label
	txn.Amount = req.Amount
	txn.Description = req.Description
	if dir, ok := domain.DirectionFromLabel(label); ok {
		txn.Direction = dir
	}

	if err := s.txRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.Int64("transaction_id", txID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.Int64("transaction_id", txID))
	return s.txRepo.FindTransactionByID(ctx, txID)
}

func (s *transactionService) DeleteTransaction(ctx context.Context, txID int64) error {
	if err := s.txRepo.DeleteTransaction(ctx, txID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.Int64("transaction_id", txID))
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.Int64("transaction_id", txID))
	return nil
}

// AddPayment appends a split payment. The splits may never add up to more
// than the transaction amount.
func (s *transactionService) AddPayment(ctx context.Context, txID int64, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	if req.Amount <= 0 {
		return nil, apperrors.Validationf("payment amount must be positive")
	}

	txn, err := s.txRepo.FindTransactionByID(ctx, txID)
	if err != nil {
		return nil, err
	}
	existing, err := s.txRepo.ListPayments(ctx, txID)
	if err != nil {
		return nil, err
	}
	payment := req.ToDomain(txID)
	if _, err := accounting.PaymentsWithin(txn.Amount, append(existing, payment)); err != nil {
		return nil, apperrors.Validationf("%v", err)
	}

	id, err := s.txRepo.SavePayment(ctx, payment)
	if err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.Int64("transaction_id", txID))
		return nil, err
	}
	payment.ID = id

	s.LogInfo(ctx, "Payment added", slog.Int64("transaction_id", txID), slog.Int64("payment_id", id))
	return &payment, nil
}

func (s *transactionService) ListPayments(ctx context.Context, txID int64) ([]domain.Payment, error) {
	if _, err := s.txRepo.FindTransactionByID(ctx, txID); err != nil {
		return nil, err
	}
	payments, err := s.txRepo.ListPayments(ctx, txID)
	if err != nil {
		return nil, err
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}

func (s *transactionService) DeletePayment(ctx context.Context, paymentID int64) error {
	if err := s.txRepo.DeletePayment(ctx, paymentID); err != nil {
		s.LogError(ctx, err, "Failed to delete payment", slog.Int64("payment_id", paymentID))
		return err
	}
	return nil
}
