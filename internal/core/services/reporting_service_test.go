package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/simcard_ledger/internal/apperrors"
	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/simcard_ledger/internal/core/ports/services"
	"github.com/SscSPs/simcard_ledger/internal/core/services"
	"github.com/SscSPs/simcard_ledger/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

func strPtr(s string) *string { return &s }

func (suite *ReportingServiceTestSuite) TestFinanceSummary() {
	ctx := context.Background()
	want := domain.FinanceSummary{TotalIncome: 1000, TotalOutcome: 400, Balance: 600}
	suite.mockRepo.On("GetFinanceSummary", ctx).Return(want, nil).Once()

	got, err := suite.service.FinanceSummary(ctx)

	suite.Require().NoError(err)
	suite.Equal(want, *got)
}

func (suite *ReportingServiceTestSuite) TestFinanceSummary_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("GetFinanceSummary", ctx).Return(domain.FinanceSummary{}, assert.AnError).Once()

	got, err := suite.service.FinanceSummary(ctx)

	suite.Nil(got)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_WidensDateUpperBound() {
	ctx := context.Background()
	period := domain.ReportPeriod{From: strPtr("2024-01-01"), To: strPtr("2024-01-31 23:59:59")}
	rows := []domain.MonthlyRow{{Month: "2024-01", Income: 10, Balance: 10}}
	suite.mockRepo.On("GetMonthlyReport", ctx, period).Return(rows, nil).Once()

	got, err := suite.service.MonthlyReport(ctx, dto.ReportPeriodParams{From: "2024-01-01", To: "2024-01-31"})

	suite.Require().NoError(err)
	suite.Equal(rows, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_OpenBounds() {
	ctx := context.Background()
	suite.mockRepo.On("GetMonthlyReport", ctx, domain.ReportPeriod{To: strPtr("2024-02-10 08:00:00")}).Return([]domain.MonthlyRow{}, nil).Once()

	_, err := suite.service.MonthlyReport(ctx, dto.ReportPeriodParams{To: "2024-02-10 08:00:00"})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_InvalidBounds() {
	ctx := context.Background()

	_, err := suite.service.MonthlyReport(ctx, dto.ReportPeriodParams{From: "1403/01/01"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.MonthlyReport(ctx, dto.ReportPeriodParams{From: "2024-03-01", To: "2024-01-01"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestByOperatorReport() {
	ctx := context.Background()
	rows := []domain.OperatorRow{{Operator: domain.OperatorIrancell, TransactionCount: 2, TotalAmount: 70}}
	suite.mockRepo.On("GetOperatorReport", ctx, domain.ReportPeriod{}).Return(rows, nil).Once()

	got, err := suite.service.ByOperatorReport(ctx, dto.ReportPeriodParams{})

	suite.Require().NoError(err)
	suite.Equal(rows, got)
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
