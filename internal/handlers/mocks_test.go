package handlers_test

import (
	"context"
	"io"

	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/simcard_ledger/internal/core/ports/services"
	"github.com/SscSPs/simcard_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock PartyService ---
type MockPartyService struct {
	mock.Mock
}

func (m *MockPartyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest) (*domain.Party, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}
func (m *MockPartyService) GetPartyByID(ctx context.Context, partyID int64) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}
func (m *MockPartyService) ListParties(ctx context.Context) ([]domain.Party, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}
func (m *MockPartyService) DeleteParty(ctx context.Context, partyID int64) error {
	return m.Called(ctx, partyID).Error(0)
}

var _ portssvc.PartySvcFacade = (*MockPartyService)(nil)

// --- Mock SimCardService ---
type MockSimCardService struct {
	mock.Mock
}

func (m *MockSimCardService) GetSimCardByID(ctx context.Context, simID int64) (*domain.SimCard, error) {
	args := m.Called(ctx, simID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SimCard), args.Error(1)
}
func (m *MockSimCardService) ListSimCards(ctx context.Context) ([]domain.SimCard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SimCard), args.Error(1)
}
func (m *MockSimCardService) CreateSimCard(ctx context.Context, req dto.CreateSimCardRequest) (*domain.SimCard, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SimCard), args.Error(1)
}
func (m *MockSimCardService) TransferOwnership(ctx context.Context, simID int64, req dto.TransferSimCardRequest) (*domain.SimCard, error) {
	args := m.Called(ctx, simID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SimCard), args.Error(1)
}
func (m *MockSimCardService) SetStatus(ctx context.Context, simID int64, status domain.SimStatus) (*domain.SimCard, error) {
	args := m.Called(ctx, simID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SimCard), args.Error(1)
}

var _ portssvc.SimCardSvcFacade = (*MockSimCardService)(nil)

// --- Mock BankService ---
type MockBankService struct {
	mock.Mock
}

func (m *MockBankService) CreateBank(ctx context.Context, req dto.CreateBankRequest) (*domain.Bank, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}
func (m *MockBankService) GetBankByID(ctx context.Context, bankID int64) (*domain.Bank, error) {
	args := m.Called(ctx, bankID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}
func (m *MockBankService) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bank), args.Error(1)
}

var _ portssvc.BankSvcFacade = (*MockBankService)(nil)

// --- Mock CheckService ---
type MockCheckService struct {
	mock.Mock
}

func (m *MockCheckService) ListChecks(ctx context.Context) ([]domain.Check, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Check), args.Error(1)
}
func (m *MockCheckService) CreateCheck(ctx context.Context, req dto.CreateCheckRequest) (*domain.Check, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Check), args.Error(1)
}
func (m *MockCheckService) UpdateCheck(ctx context.Context, checkID int64, req dto.UpdateCheckRequest) (*domain.Check, error) {
	args := m.Called(ctx, checkID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Check), args.Error(1)
}
func (m *MockCheckService) DeleteCheck(ctx context.Context, checkID int64) error {
	return m.Called(ctx, checkID).Error(0)
}

var _ portssvc.CheckSvcFacade = (*MockCheckService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, txID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, txID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}
func (m *MockTransactionService) ListPayments(ctx context.Context, txID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, txID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) UpdateTransaction(ctx context.Context, txID int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, txID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, txID int64) error {
	return m.Called(ctx, txID).Error(0)
}
func (m *MockTransactionService) AddPayment(ctx context.Context, txID int64, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, txID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockTransactionService) DeletePayment(ctx context.Context, paymentID int64) error {
	return m.Called(ctx, paymentID).Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) FinanceSummary(ctx context.Context) (*domain.FinanceSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinanceSummary), args.Error(1)
}
func (m *MockReportingService) MonthlyReport(ctx context.Context, params dto.ReportPeriodParams) ([]domain.MonthlyRow, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyRow), args.Error(1)
}
func (m *MockReportingService) ByOperatorReport(ctx context.Context, params dto.ReportPeriodParams) ([]domain.OperatorRow, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OperatorRow), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock ContractService ---
type MockContractService struct {
	mock.Mock
}

func (m *MockContractService) GenerateContract(ctx context.Context, req dto.GenerateContractRequest) (*domain.GeneratedContract, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneratedContract), args.Error(1)
}
func (m *MockContractService) ListArchive(ctx context.Context) ([]domain.ArchiveEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArchiveEntry), args.Error(1)
}
func (m *MockContractService) OpenDocument(ctx context.Context, filename string) (io.ReadCloser, error) {
	args := m.Called(ctx, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

var _ portssvc.ContractSvcFacade = (*MockContractService)(nil)
