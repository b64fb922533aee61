package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/simcard_ledger/internal/core/ports/services"
	"github.com/SscSPs/simcard_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// bankHandler serves bank accounts and the checks drawn on them.
type bankHandler struct {
	bankService  portssvc.BankSvcFacade
	checkService portssvc.CheckSvcFacade
}

func newBankHandler(bs portssvc.BankSvcFacade, cs portssvc.CheckSvcFacade) *bankHandler {
	return &bankHandler{bankService: bs, checkService: cs}
}

func registerBankRoutes(rg *gin.RouterGroup, bankService portssvc.BankSvcFacade, checkService portssvc.CheckSvcFacade) {
	h := newBankHandler(bankService, checkService)

	banks := rg.Group("/banks")
	{
		banks.POST("", h.createBank)
		banks.GET("", h.listBanks)
		banks.GET("/:bankID", h.getBank)
	}

	checks := rg.Group("/checks")
	{
		checks.POST("", h.createCheck)
		checks.GET("", h.listChecks)
		checks.PATCH("/:checkID", h.updateCheck)
		checks.DELETE("/:checkID", h.deleteCheck)
	}
}

// createBank godoc
// @Summary Register a bank account
// @Tags banks
// @Accept  json
// @Produce  json
// @Param   bank body dto.CreateBankRequest true "Bank account"
// @Success 201 {object} domain.Bank
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /banks [post]
func (h *bankHandler) createBank(c *gin.Context) {
	var req dto.CreateBankRequest
	if !bindJSON(c, &req) {
		return
	}

	bank, err := h.bankService.CreateBank(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create bank")
		return
	}
	c.JSON(http.StatusCreated, bank)
}

// listBanks godoc
// @Summary List bank accounts
// @Tags banks
// @Produce  json
// @Success 200 {object} dto.ListBanksResponse
// @Router /banks [get]
func (h *bankHandler) listBanks(c *gin.Context) {
	banks, err := h.bankService.ListBanks(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list banks")
		return
	}
	c.JSON(http.StatusOK, dto.ListBanksResponse{Banks: banks})
}

// getBank godoc
// @Summary Get a bank account
// @Tags banks
// @Produce  json
// @Param   bankID path int true "Bank ID"
// @Success 200 {object} domain.Bank
// @Failure 404 {object} map[string]string "Bank not found"
// @Router /banks/{bankID} [get]
func (h *bankHandler) getBank(c *gin.Context) {
	bankID, ok := parseIDParam(c, "bankID")
	if !ok {
		return
	}

	bank, err := h.bankService.GetBankByID(c.Request.Context(), bankID)
	if err != nil {
		respondError(c, err, "Failed to retrieve bank")
		return
	}
	c.JSON(http.StatusOK, bank)
}

// createCheck godoc
// @Summary Record a check
// @Tags checks
// @Accept  json
// @Produce  json
// @Param   check body dto.CreateCheckRequest true "Check details"
// @Success 201 {object} domain.Check
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Bank not found"
// @Router /checks [post]
func (h *bankHandler) createCheck(c *gin.Context) {
	var req dto.CreateCheckRequest
	if !bindJSON(c, &req) {
		return
	}

	check, err := h.checkService.CreateCheck(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create check")
		return
	}
	c.JSON(http.StatusCreated, check)
}

// listChecks godoc
// @Summary List checks
// @Description Lists checks by due date with their bank names
// @Tags checks
// @Produce  json
// @Success 200 {object} dto.ListChecksResponse
// @Router /checks [get]
func (h *bankHandler) listChecks(c *gin.Context) {
	checks, err := h.checkService.ListChecks(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list checks")
		return
	}
	c.JSON(http.StatusOK, dto.ListChecksResponse{Checks: checks})
}

// updateCheck godoc
// @Summary Update a check
// @Description Changes only the supplied fields
// @Tags checks
// @Accept  json
// @Produce  json
// @Param   checkID path int true "Check ID"
// @Param   check body dto.UpdateCheckRequest true "Fields to change"
// @Success 200 {object} domain.Check
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Check not found"
// @Router /checks/{checkID} [patch]
func (h *bankHandler) updateCheck(c *gin.Context) {
	checkID, ok := parseIDParam(c, "checkID")
	if !ok {
		return
	}
	var req dto.UpdateCheckRequest
	if !bindJSON(c, &req) {
		return
	}

	check, err := h.checkService.UpdateCheck(c.Request.Context(), checkID, req)
	if err != nil {
		respondError(c, err, "Failed to update check")
		return
	}
	c.JSON(http.StatusOK, check)
}

// deleteCheck godoc
// @Summary Delete a check
// @Tags checks
// @Param   checkID path int true "Check ID"
// @Success 204
// @Failure 404 {object} map[string]string "Check not found"
// @Router /checks/{checkID} [delete]
func (h *bankHandler) deleteCheck(c *gin.Context) {
	checkID, ok := parseIDParam(c, "checkID")
	if !ok {
		return
	}

	if err := h.checkService.DeleteCheck(c.Request.Context(), checkID); err != nil {
		respondError(c, err, "Failed to delete check")
		return
	}
	c.Status(http.StatusNoContent)
}
