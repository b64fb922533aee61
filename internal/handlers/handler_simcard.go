package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/simcard_ledger/internal/core/ports/services"
	"github.com/SscSPs/simcard_ledger/internal/dto"
	"github.com/SscSPs/simcard_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// simCardHandler handles HTTP requests related to SIM cards.
type simCardHandler struct {
	simCardService portssvc.SimCardSvcFacade
}

func newSimCardHandler(ss portssvc.SimCardSvcFacade) *simCardHandler {
	return &simCardHandler{simCardService: ss}
}

func registerSimCardRoutes(rg *gin.RouterGroup, simCardService portssvc.SimCardSvcFacade) {
	h := newSimCardHandler(simCardService)

	sims := rg.Group("/sim-cards")
	{
		sims.POST("", h.createSimCard)
		sims.GET("", h.listSimCards)
		sims.GET("/:simID", h.getSimCard)
		sims.POST("/:simID/transfer", h.transferSimCard)
		sims.PATCH("/:simID/status", h.updateStatus)
	}
}

// createSimCard godoc
// @Summary Register a SIM card
// @Tags sim-cards
// @Accept  json
// @Produce  json
// @Param   simCard body dto.CreateSimCardRequest true "SIM card details"
// @Success 201 {object} domain.SimCard
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Owner not found"
// @Failure 409 {object} map[string]string "Number already registered"
// @Router /sim-cards [post]
func (h *simCardHandler) createSimCard(c *gin.Context) {
	var req dto.CreateSimCardRequest
	if !bindJSON(c, &req) {
		return
	}

	sim, err := h.simCardService.CreateSimCard(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create SIM card")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("SIM card created", slog.Int64("sim_id", sim.ID), slog.String("number", sim.Number))
	c.JSON(http.StatusCreated, sim)
}

// listSimCards godoc
// @Summary List SIM cards
// @Description Lists SIM cards with their owner names
// @Tags sim-cards
// @Produce  json
// @Success 200 {object} dto.ListSimCardsResponse
// @Router /sim-cards [get]
func (h *simCardHandler) listSimCards(c *gin.Context) {
	sims, err := h.simCardService.ListSimCards(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list SIM cards")
		return
	}
	c.JSON(http.StatusOK, dto.ListSimCardsResponse{SimCards: sims})
}

// getSimCard godoc
// @Summary Get a SIM card
// @Tags sim-cards
// @Produce  json
// @Param   simID path int true "SIM card ID"
// @Success 200 {object} domain.SimCard
// @Failure 404 {object} map[string]string "SIM card not found"
// @Router /sim-cards/{simID} [get]
func (h *simCardHandler) getSimCard(c *gin.Context) {
	simID, ok := parseIDParam(c, "simID")
	if !ok {
		return
	}

	sim, err := h.simCardService.GetSimCardByID(c.Request.Context(), simID)
	if err != nil {
		respondError(c, err, "Failed to retrieve SIM card")
		return
	}
	c.JSON(http.StatusOK, sim)
}

// transferSimCard godoc
// @Summary Transfer a SIM card
// @Description Sells the card to a new owner, setting owner, sale price and sale date together
// @Tags sim-cards
// @Accept  json
// @Produce  json
// @Param   simID path int true "SIM card ID"
// @Param   transfer body dto.TransferSimCardRequest true "New owner"
// @Success 200 {object} domain.SimCard
// @Failure 404 {object} map[string]string "SIM card or owner not found"
// @Router /sim-cards/{simID}/transfer [post]
func (h *simCardHandler) transferSimCard(c *gin.Context) {
	simID, ok := parseIDParam(c, "simID")
	if !ok {
		return
	}
	var req dto.TransferSimCardRequest
	if !bindJSON(c, &req) {
		return
	}

	sim, err := h.simCardService.TransferOwnership(c.Request.Context(), simID, req)
	if err != nil {
		respondError(c, err, "Failed to transfer SIM card")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("SIM card transferred", slog.Int64("sim_id", simID), slog.Int64("new_owner_id", req.NewOwnerID))
	c.JSON(http.StatusOK, sim)
}

// updateStatus godoc
// @Summary Change SIM card status
// @Tags sim-cards
// @Accept  json
// @Produce  json
// @Param   simID path int true "SIM card ID"
// @Param   status body dto.UpdateSimStatusRequest true "New status"
// @Success 200 {object} domain.SimCard
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 404 {object} map[string]string "SIM card not found"
// @Router /sim-cards/{simID}/status [patch]
func (h *simCardHandler) updateStatus(c *gin.Context) {
	simID, ok := parseIDParam(c, "simID")
	if !ok {
		return
	}
	var req dto.UpdateSimStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	sim, err := h.simCardService.SetStatus(c.Request.Context(), simID, req.Status)
	if err != nil {
		respondError(c, err, "Failed to update SIM card status")
		return
	}
	c.JSON(http.StatusOK, sim)
}
