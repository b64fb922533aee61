package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/simcard_ledger/internal/core/ports/services"
	"github.com/SscSPs/simcard_ledger/internal/dto"
	"github.com/SscSPs/simcard_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles ledger transactions and their split payments.
type transactionHandler struct {
	txService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{txService: ts}
}

func registerTransactionRoutes(rg *gin.RouterGroup, txService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(txService)

	txns := rg.Group("/transactions")
	{
		txns.POST("", h.createTransaction)
		txns.GET("", h.listTransactions)
		txns.GET("/:txID", h.getTransaction)
		txns.PUT("/:txID", h.updateTransaction)
		txns.DELETE("/:txID", h.deleteTransaction)
		txns.POST("/:txID/payments", h.addPayment)
		txns.GET("/:txID/payments", h.listPayments)
	}

	rg.DELETE("/payments/:paymentID", h.deletePayment)
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Records a transaction and its split payments in one unit of work.
// @Description Direction may be omitted for receipt or payment labels.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Party or SIM card not found"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if !bindJSON(c, &req) {
		return
	}

	txn, err := h.txService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Transaction recorded",
		slog.Int64("transaction_id", txn.ID), slog.String("direction", string(txn.Direction)), slog.Int64("amount", txn.Amount))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions newest first with party and SIM details
// @Tags transactions
// @Produce  json
// @Param limit query int false "Page size (1-500), all transactions when omitted"
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid paging parameters"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.txService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce  json
// @Param   txID path int true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{txID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	txID, ok := parseIDParam(c, "txID")
	if !ok {
		return
	}

	txn, err := h.txService.GetTransactionByID(c.Request.Context(), txID)
	if err != nil {
		respondError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   txID path int true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "New values"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{txID} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	txID, ok := parseIDParam(c, "txID")
	if !ok {
		return
	}
	var req dto.UpdateTransactionRequest
	if !bindJSON(c, &req) {
		return
	}

	txn, err := h.txService.UpdateTransaction(c.Request.Context(), txID, req)
	if err != nil {
		respondError(c, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes the transaction together with its payments
// @Tags transactions
// @Param   txID path int true "Transaction ID"
// @Success 204
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{txID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	txID, ok := parseIDParam(c, "txID")
	if !ok {
		return
	}

	if err := h.txService.DeleteTransaction(c.Request.Context(), txID); err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}

// addPayment godoc
// @Summary Add a split payment
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   txID path int true "Transaction ID"
// @Param   payment body dto.CreatePaymentRequest true "Payment"
// @Success 201 {object} domain.Payment
// @Failure 400 {object} map[string]string "Payments would exceed the transaction amount"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{txID}/payments [post]
func (h *transactionHandler) addPayment(c *gin.Context) {
	txID, ok := parseIDParam(c, "txID")
	if !ok {
		return
	}
	var req dto.CreatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.txService.AddPayment(c.Request.Context(), txID, req)
	if err != nil {
		respondError(c, err, "Failed to add payment")
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// listPayments godoc
// @Summary List split payments
// @Tags transactions
// @Produce  json
// @Param   txID path int true "Transaction ID"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{txID}/payments [get]
func (h *transactionHandler) listPayments(c *gin.Context) {
	txID, ok := parseIDParam(c, "txID")
	if !ok {
		return
	}

	payments, err := h.txService.ListPayments(c.Request.Context(), txID)
	if err != nil {
		respondError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ListPaymentsResponse{Payments: payments})
}

// deletePayment godoc
// @Summary Delete a split payment
// @Tags transactions
// @Param   paymentID path int true "Payment ID"
// @Success 204
// @Failure 404 {object} map[string]string "Payment not found"
// @Router /payments/{paymentID} [delete]
func (h *transactionHandler) deletePayment(c *gin.Context) {
	paymentID, ok := parseIDParam(c, "paymentID")
	if !ok {
		return
	}

	if err := h.txService.DeletePayment(c.Request.Context(), paymentID); err != nil {
		respondError(c, err, "Failed to delete payment")
		return
	}
	c.Status(http.StatusNoContent)
}
