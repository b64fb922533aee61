package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/simcard_ledger/internal/apperrors"
	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/simcard_ledger/internal/core/ports/services"
	"github.com/SscSPs/simcard_ledger/internal/dto"
	"github.com/SscSPs/simcard_ledger/internal/handlers"
	"github.com/SscSPs/simcard_ledger/internal/middleware"
	"github.com/SscSPs/simcard_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	router *gin.Engine

	party       *MockPartyService
	simCard     *MockSimCardService
	bank        *MockBankService
	check       *MockCheckService
	transaction *MockTransactionService
	reporting   *MockReportingService
	contract    *MockContractService
}

func (suite *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.party = new(MockPartyService)
	suite.simCard = new(MockSimCardService)
	suite.bank = new(MockBankService)
	suite.check = new(MockCheckService)
	suite.transaction = new(MockTransactionService)
	suite.reporting = new(MockReportingService)
	suite.contract = new(MockContractService)

	container := &portssvc.ServiceContainer{
		Party:       suite.party,
		SimCard:     suite.simCard,
		Bank:        suite.bank,
		Check:       suite.check,
		Transaction: suite.transaction,
		Reporting:   suite.reporting,
		Contract:    suite.contract,
	}

	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(registry)

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))), metrics.Handler())
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, container, registry)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.party.AssertExpectations(suite.T())
	suite.simCard.AssertExpectations(suite.T())
	suite.bank.AssertExpectations(suite.T())
	suite.check.AssertExpectations(suite.T())
	suite.transaction.AssertExpectations(suite.T())
	suite.reporting.AssertExpectations(suite.T())
	suite.contract.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func int64Ptr(v int64) *int64 { return &v }

// --- Ambient routes ---

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestMetricsExposeRequestCounter() {
	suite.do(http.MethodGet, "/health", nil)

	w := suite.do(http.MethodGet, "/metrics", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "simledger_http_requests_total")
}

func (suite *HandlerTestSuite) TestSwaggerDisabledInProduction() {
	w := suite.do(http.MethodGet, "/swagger/index.html", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Parties ---

func (suite *HandlerTestSuite) TestCreateParty_Success() {
	suite.party.On("CreateParty", mock.Anything, mock.MatchedBy(func(r dto.CreatePartyRequest) bool {
		return r.Name == "Ali" && r.NationalID == "0012345678" && r.Type == domain.PartyCustomer
	})).Return(&domain.Party{ID: 7, Name: "Ali", NationalID: "0012345678", Type: domain.PartyCustomer}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/parties", map[string]any{
		"name": "Ali", "nationalId": "0012345678", "type": "customer",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var party domain.Party
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &party))
	suite.Equal(int64(7), party.ID)
	suite.NotEmpty(w.Header().Get(middleware.RequestIDHeader))
}

func (suite *HandlerTestSuite) TestCreateParty_InvalidNationalID() {
	w := suite.do(http.MethodPost, "/api/v1/parties", map[string]any{
		"name": "Ali", "nationalId": "12-34", "type": "customer",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorBody(w), "nationalid")
	suite.party.AssertNotCalled(suite.T(), "CreateParty")
}

func (suite *HandlerTestSuite) TestGetParty_InvalidID() {
	w := suite.do(http.MethodGet, "/api/v1/parties/abc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetParty_NotFound() {
	suite.party.On("GetPartyByID", mock.Anything, int64(9)).Return(nil, apperrors.NotFoundf("party 9")).Once()

	w := suite.do(http.MethodGet, "/api/v1/parties/9", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteParty_Referenced() {
	suite.party.On("DeleteParty", mock.Anything, int64(3)).
		Return(errors.Join(apperrors.ErrReferenced, errors.New("party 3 has 2 references"))).Once()

	w := suite.do(http.MethodDelete, "/api/v1/parties/3", nil)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestListParties_InternalErrorIsHidden() {
	suite.party.On("ListParties", mock.Anything).Return(nil, errors.New("disk I/O error")).Once()

	w := suite.do(http.MethodGet, "/api/v1/parties", nil)
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to list parties", suite.errorBody(w))
}

// --- SIM cards ---

func (suite *HandlerTestSuite) TestCreateSimCard_Duplicate() {
	suite.simCard.On("CreateSimCard", mock.Anything, mock.AnythingOfType("dto.CreateSimCardRequest")).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.do(http.MethodPost, "/api/v1/sim-cards", map[string]any{
		"number": "09121234567", "operator": "irancell",
	})
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestCreateSimCard_BadNumber() {
	w := suite.do(http.MethodPost, "/api/v1/sim-cards", map[string]any{
		"number": "12345", "operator": "irancell",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestTransferSimCard() {
	saleDate := "2024-03-05"
	suite.simCard.On("TransferOwnership", mock.Anything, int64(4), dto.TransferSimCardRequest{NewOwnerID: 2, SalePrice: int64Ptr(500)}).
		Return(&domain.SimCard{ID: 4, CurrentOwnerID: int64Ptr(2), SalePrice: int64Ptr(500), SaleDate: &saleDate}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/sim-cards/4/transfer", map[string]any{"newOwnerId": 2, "salePrice": 500})

	suite.Equal(http.StatusOK, w.Code)
	var sim domain.SimCard
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &sim))
	suite.Equal("2024-03-05", *sim.SaleDate)
}

func (suite *HandlerTestSuite) TestUpdateSimStatus_InvalidStatus() {
	w := suite.do(http.MethodPatch, "/api/v1/sim-cards/4/status", map[string]any{"status": "lost"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Banks and checks ---

func (suite *HandlerTestSuite) TestUpdateCheck() {
	status := domain.CheckCleared
	suite.check.On("UpdateCheck", mock.Anything, int64(5), dto.UpdateCheckRequest{Status: &status}).
		Return(&domain.Check{ID: 5, Status: domain.CheckCleared}, nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/checks/5", map[string]any{"status": "cleared"})
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteCheck() {
	suite.check.On("DeleteCheck", mock.Anything, int64(5)).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/checks/5", nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestCreateCheck_UnknownBank() {
	suite.check.On("CreateCheck", mock.Anything, mock.AnythingOfType("dto.CreateCheckRequest")).
		Return(nil, apperrors.NotFoundf("bank 99")).Once()

	w := suite.do(http.MethodPost, "/api/v1/checks", map[string]any{
		"checkNumber": "CH-1", "type": "received", "bankId": 99, "amount": 1000, "dueDate": "2024-04-01",
	})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListBanks() {
	suite.bank.On("ListBanks", mock.Anything).Return([]domain.Bank{{ID: 1, Name: "Mellat"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/banks", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListBanksResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Banks, 1)
}

// --- Transactions ---

func (suite *HandlerTestSuite) TestCreateTransaction_SignedAmount() {
	suite.transaction.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(r dto.CreateTransactionRequest) bool {
		return r.Type == "payment purchase" && r.Amount == 400 && len(r.Payments) == 2
	})).Return(&domain.Transaction{ID: 11, Type: "payment purchase", Direction: domain.Outflow, Amount: 400}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", map[string]any{
		"type": "payment purchase", "amount": 400,
		"payments": []map[string]any{
			{"paymentMethod": "cash", "amount": 100},
			{"paymentMethod": "card", "amount": 300},
		},
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.SignedAmount)
	suite.Equal(int64(-400), *resp.SignedAmount)
	suite.Equal(domain.Outflow, resp.Direction)
}

func (suite *HandlerTestSuite) TestCreateTransaction_InvalidPayment() {
	w := suite.do(http.MethodPost, "/api/v1/transactions", map[string]any{
		"type": "receipt", "amount": 400,
		"payments": []map[string]any{{"paymentMethod": "cash", "amount": 0}},
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateTransaction_ValidationFromService() {
	suite.transaction.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, apperrors.Validationf("direction is required for label %q", "misc")).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", map[string]any{"type": "misc", "amount": 10})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorBody(w), "direction")
}

func (suite *HandlerTestSuite) TestListTransactions_Paging() {
	token := "next"
	suite.transaction.On("ListTransactions", mock.Anything, dto.ListTransactionsParams{Limit: 1}).
		Return(&dto.ListTransactionsResponse{Transactions: []dto.TransactionResponse{{}}, NextToken: &token}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions?limit=1", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("next", *resp.NextToken)

	w = suite.do(http.MethodGet, "/api/v1/transactions?limit=1000", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListPayments() {
	suite.transaction.On("ListPayments", mock.Anything, int64(11)).
		Return([]domain.Payment{{ID: 1, TransactionID: 11, Amount: 100}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions/11/payments", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListPaymentsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Payments, 1)
}

func (suite *HandlerTestSuite) TestDeletePayment_NotFound() {
	suite.transaction.On("DeletePayment", mock.Anything, int64(8)).Return(apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodDelete, "/api/v1/payments/8", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Reports ---

func (suite *HandlerTestSuite) TestMonthlyReport_PassesPeriod() {
	params := dto.ReportPeriodParams{From: "2024-01-01", To: "2024-02-29"}
	suite.reporting.On("MonthlyReport", mock.Anything, params).
		Return([]domain.MonthlyRow{{Month: "2024-01", Income: 1000, Expense: 400, Balance: 600}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/monthly?from=2024-01-01&to=2024-02-29", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MonthlyReportResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2024-01-01", resp.From)
	suite.Len(resp.Rows, 1)
}

func (suite *HandlerTestSuite) TestOperatorReport_InvalidPeriod() {
	params := dto.ReportPeriodParams{From: "2024-03-01", To: "2024-01-01"}
	suite.reporting.On("ByOperatorReport", mock.Anything, params).
		Return(nil, apperrors.Validationf("from is after to")).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/by-operator?from=2024-03-01&to=2024-01-01", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestSummary() {
	suite.reporting.On("FinanceSummary", mock.Anything).
		Return(&domain.FinanceSummary{TotalIncome: 1000, TotalOutcome: 400, Balance: 600}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/summary", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"totalIncome":1000,"totalOutcome":400,"balance":600}`, w.Body.String())
}

// --- Contracts ---

func contractBody() map[string]any {
	party := func(name, id string) map[string]any {
		return map[string]any{"name": name, "nationalId": id, "phone": "09120000000"}
	}
	return map[string]any{
		"kind":       "sale",
		"seller":     party("Ali", "0012345678"),
		"buyer":      party("Sara", "0087654321"),
		"simNumber":  "09121234567",
		"saleAmount": 15000000,
	}
}

func (suite *HandlerTestSuite) TestGenerateContract_Success() {
	entry := domain.ArchiveEntry{DocumentType: domain.ContractSale, Filename: "contract_sale_x.docx", GeneratedAt: "2024-03-05 10:30:15"}
	suite.contract.On("GenerateContract", mock.Anything, mock.AnythingOfType("dto.GenerateContractRequest")).
		Return(&domain.GeneratedContract{Entry: entry, TransactionID: int64Ptr(21)}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/contracts", contractBody())

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.GenerateContractResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(entry, resp.Entry)
	suite.Equal(int64(21), *resp.TransactionID)
	suite.Empty(resp.LedgerError)
}

func (suite *HandlerTestSuite) TestGenerateContract_LedgerFailureStillCreated() {
	entry := domain.ArchiveEntry{DocumentType: domain.ContractSale, Filename: "contract_sale_x.docx"}
	suite.contract.On("GenerateContract", mock.Anything, mock.Anything).
		Return(&domain.GeneratedContract{Entry: entry}, errors.New("database is locked")).Once()

	w := suite.do(http.MethodPost, "/api/v1/contracts", contractBody())

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.GenerateContractResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Nil(resp.TransactionID)
	suite.Equal("database is locked", resp.LedgerError)
}

func (suite *HandlerTestSuite) TestGenerateContract_RenderFailure() {
	suite.contract.On("GenerateContract", mock.Anything, mock.Anything).
		Return(nil, errors.New("render failed")).Once()

	w := suite.do(http.MethodPost, "/api/v1/contracts", contractBody())
	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *HandlerTestSuite) TestGenerateContract_TooManyPayments() {
	body := contractBody()
	body["payments"] = []map[string]any{{}, {}, {}, {}}

	w := suite.do(http.MethodPost, "/api/v1/contracts", body)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestDownloadContract() {
	suite.contract.On("OpenDocument", mock.Anything, "contract_sale_x.docx").
		Return(io.NopCloser(strings.NewReader("PK-docx-bytes")), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/contracts/contract_sale_x.docx", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("PK-docx-bytes", w.Body.String())
	suite.Contains(w.Header().Get("Content-Disposition"), "contract_sale_x.docx")
	suite.Contains(w.Header().Get("Content-Type"), "wordprocessingml")
}

func (suite *HandlerTestSuite) TestDownloadContract_NotFound() {
	suite.contract.On("OpenDocument", mock.Anything, "missing.docx").Return(nil, apperrors.NotFoundf("missing.docx")).Once()

	w := suite.do(http.MethodGet, "/api/v1/contracts/missing.docx", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListArchive() {
	suite.contract.On("ListArchive", mock.Anything).Return([]domain.ArchiveEntry{{Filename: "b.docx"}, {Filename: "a.docx"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/contracts", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListArchiveResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("b.docx", resp.Entries[0].Filename)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
