package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/simcard_ledger/internal/core/ports/services"
	"github.com/SscSPs/simcard_ledger/internal/dto"
	"github.com/SscSPs/simcard_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// partyHandler handles HTTP requests related to counterparties.
type partyHandler struct {
	partyService portssvc.PartySvcFacade
}

func newPartyHandler(ps portssvc.PartySvcFacade) *partyHandler {
	return &partyHandler{partyService: ps}
}

// registerPartyRoutes registers routes related to parties.
func registerPartyRoutes(rg *gin.RouterGroup, partyService portssvc.PartySvcFacade) {
	h := newPartyHandler(partyService)

	parties := rg.Group("/parties")
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
		parties.GET("/:partyID", h.getParty)
		parties.DELETE("/:partyID", h.deleteParty)
	}
}

// createParty godoc
// @Summary Register a party
// @Description Adds a customer, partner or other counterparty
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   party body dto.CreatePartyRequest true "Party details"
// @Success 201 {object} domain.Party
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create party"
// @Router /parties [post]
func (h *partyHandler) createParty(c *gin.Context) {
	var req dto.CreatePartyRequest
	if !bindJSON(c, &req) {
		return
	}

	party, err := h.partyService.CreateParty(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create party")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Party created", slog.Int64("party_id", party.ID))
	c.JSON(http.StatusCreated, party)
}

// listParties godoc
// @Summary List parties
// @Description Lists all parties ordered by name
// @Tags parties
// @Produce  json
// @Success 200 {object} dto.ListPartiesResponse
// @Failure 500 {object} map[string]string "Failed to list parties"
// @Router /parties [get]
func (h *partyHandler) listParties(c *gin.Context) {
	parties, err := h.partyService.ListParties(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list parties")
		return
	}
	c.JSON(http.StatusOK, dto.ListPartiesResponse{Parties: parties})
}

// getParty godoc
// @Summary Get a party
// @Tags parties
// @Produce  json
// @Param   partyID path int true "Party ID"
// @Success 200 {object} domain.Party
// @Failure 400 {object} map[string]string "Invalid party ID"
// @Failure 404 {object} map[string]string "Party not found"
// @Router /parties/{partyID} [get]
func (h *partyHandler) getParty(c *gin.Context) {
	partyID, ok := parseIDParam(c, "partyID")
	if !ok {
		return
	}

	party, err := h.partyService.GetPartyByID(c.Request.Context(), partyID)
	if err != nil {
		respondError(c, err, "Failed to retrieve party")
		return
	}
	c.JSON(http.StatusOK, party)
}

// deleteParty godoc
// @Summary Delete a party
// @Description Removes a party that no SIM card or transaction refers to
// @Tags parties
// @Param   partyID path int true "Party ID"
// @Success 204
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 409 {object} map[string]string "Party is still referenced"
// @Router /parties/{partyID} [delete]
func (h *partyHandler) deleteParty(c *gin.Context) {
	partyID, ok := parseIDParam(c, "partyID")
	if !ok {
		return
	}

	if err := h.partyService.DeleteParty(c.Request.Context(), partyID); err != nil {
		respondError(c, err, "Failed to delete party")
		return
	}
	c.Status(http.StatusNoContent)
}
