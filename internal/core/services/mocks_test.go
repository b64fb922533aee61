package services_test

import (
	"context"
	"io"

	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	"github.com/SscSPs/simcard_ledger/internal/core/ports"
	portsrepo "github.com/SscSPs/simcard_ledger/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock PartyRepository ---
type MockPartyRepository struct {
	mock.Mock
}

var _ portsrepo.PartyRepositoryFacade = (*MockPartyRepository)(nil)

func (m *MockPartyRepository) FindPartyByID(ctx context.Context, partyID int64) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) FindPartyByNationalID(ctx context.Context, nationalID string) (*domain.Party, error) {
	args := m.Called(ctx, nationalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) ListParties(ctx context.Context) ([]domain.Party, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyRepository) CountPartyReferences(ctx context.Context, partyID int64) (int64, error) {
	args := m.Called(ctx, partyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPartyRepository) SaveParty(ctx context.Context, party domain.Party) (int64, error) {
	args := m.Called(ctx, party)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPartyRepository) DeleteParty(ctx context.Context, partyID int64) error {
	args := m.Called(ctx, partyID)
	return args.Error(0)
}

// --- Mock SimCardRepository ---
type MockSimCardRepository struct {
	mock.Mock
}

var _ portsrepo.SimCardRepositoryFacade = (*MockSimCardRepository)(nil)

func (m *MockSimCardRepository) FindSimCardByID(ctx context.Context, simID int64) (*domain.SimCard, error) {
	args := m.Called(ctx, simID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SimCard), args.Error(1)
}

func (m *MockSimCardRepository) FindSimCardByNumber(ctx context.Context, number string) (*domain.SimCard, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SimCard), args.Error(1)
}

func (m *MockSimCardRepository) ListSimCards(ctx context.Context) ([]domain.SimCard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SimCard), args.Error(1)
}

func (m *MockSimCardRepository) SaveSimCard(ctx context.Context, sim domain.SimCard) (int64, error) {
	args := m.Called(ctx, sim)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSimCardRepository) TransferSimCard(ctx context.Context, simID int64, ownerID int64, salePrice *int64, saleDate string) error {
	args := m.Called(ctx, simID, ownerID, salePrice, saleDate)
	return args.Error(0)
}

func (m *MockSimCardRepository) UpdateSimCardStatus(ctx context.Context, simID int64, status domain.SimStatus) error {
	args := m.Called(ctx, simID, status)
	return args.Error(0)
}

// --- Mock BankRepository ---
type MockBankRepository struct {
	mock.Mock
}

var _ portsrepo.BankRepositoryFacade = (*MockBankRepository)(nil)

func (m *MockBankRepository) FindBankByID(ctx context.Context, bankID int64) (*domain.Bank, error) {
	args := m.Called(ctx, bankID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}

func (m *MockBankRepository) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bank), args.Error(1)
}

func (m *MockBankRepository) SaveBank(ctx context.Context, bank domain.Bank) (int64, error) {
	args := m.Called(ctx, bank)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock CheckRepository ---
type MockCheckRepository struct {
	mock.Mock
}

var _ portsrepo.CheckRepositoryFacade = (*MockCheckRepository)(nil)

func (m *MockCheckRepository) FindCheckByID(ctx context.Context, checkID int64) (*domain.Check, error) {
	args := m.Called(ctx, checkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Check), args.Error(1)
}

func (m *MockCheckRepository) ListChecks(ctx context.Context) ([]domain.Check, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Check), args.Error(1)
}

func (m *MockCheckRepository) SaveCheck(ctx context.Context, check domain.Check) (int64, error) {
	args := m.Called(ctx, check)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCheckRepository) UpdateCheck(ctx context.Context, checkID int64, update domain.CheckUpdate) error {
	args := m.Called(ctx, checkID, update)
	return args.Error(0)
}

func (m *MockCheckRepository) DeleteCheck(ctx context.Context, checkID int64) error {
	args := m.Called(ctx, checkID)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, txID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, txID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, limit int, after *domain.TransactionCursor) ([]domain.Transaction, error) {
	args := m.Called(ctx, limit, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListPayments(ctx context.Context, txID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, txID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, payments []domain.Payment) (int64, error) {
	args := m.Called(ctx, txn, payments)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, txID int64) error {
	args := m.Called(ctx, txID)
	return args.Error(0)
}

func (m *MockTransactionRepository) SavePayment(ctx context.Context, payment domain.Payment) (int64, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetFinanceSummary(ctx context.Context) (domain.FinanceSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.FinanceSummary), args.Error(1)
}

func (m *MockReportingRepository) GetMonthlyReport(ctx context.Context, period domain.ReportPeriod) ([]domain.MonthlyRow, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyRow), args.Error(1)
}

func (m *MockReportingRepository) GetOperatorReport(ctx context.Context, period domain.ReportPeriod) ([]domain.OperatorRow, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OperatorRow), args.Error(1)
}

// --- Mock document boundary ---
type MockRenderer struct {
	mock.Mock
}

var _ ports.ContractRenderer = (*MockRenderer)(nil)

func (m *MockRenderer) Render(ctx context.Context, kind domain.ContractKind, fields map[string]string, payments [][5]string) ([]byte, error) {
	args := m.Called(ctx, kind, fields, payments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRenderer) Extension() string {
	return ".docx"
}

type MockArchive struct {
	mock.Mock
}

var _ ports.ArchiveStore = (*MockArchive)(nil)

func (m *MockArchive) SaveDocument(ctx context.Context, filename string, content []byte) error {
	args := m.Called(ctx, filename, content)
	return args.Error(0)
}

func (m *MockArchive) AppendEntry(ctx context.Context, entry domain.ArchiveEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockArchive) ListEntries(ctx context.Context) ([]domain.ArchiveEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArchiveEntry), args.Error(1)
}

func (m *MockArchive) OpenDocument(ctx context.Context, filename string) (io.ReadCloser, error) {
	args := m.Called(ctx, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func int64Ptr(v int64) *int64 { return &v }
