package handlers

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"

	portssvc "github.com/SscSPs/simcard_ledger/internal/core/ports/services"
	"github.com/SscSPs/simcard_ledger/internal/dto"
	"github.com/SscSPs/simcard_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// contractHandler generates contracts and serves the archive.
type contractHandler struct {
	contractService portssvc.ContractSvcFacade
}

func newContractHandler(cs portssvc.ContractSvcFacade) *contractHandler {
	return &contractHandler{contractService: cs}
}

func registerContractRoutes(rg *gin.RouterGroup, contractService portssvc.ContractSvcFacade) {
	h := newContractHandler(contractService)

	contracts := rg.Group("/contracts")
	{
		contracts.POST("", h.generateContract)
		contracts.GET("", h.listArchive)
		contracts.GET("/:filename", h.downloadContract)
	}
}

// generateContract godoc
// @Summary Generate a contract
// @Description Renders and archives a sale or purchase contract and records the matching ledger transaction.
// @Description When only the ledger step fails the contract is still archived and ledgerError is set.
// @Tags contracts
// @Accept  json
// @Produce  json
// @Param   contract body dto.GenerateContractRequest true "Contract details"
// @Success 201 {object} dto.GenerateContractResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate contract"
// @Router /contracts [post]
func (h *contractHandler) generateContract(c *gin.Context) {
	var req dto.GenerateContractRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.contractService.GenerateContract(c.Request.Context(), req)
	if result == nil {
		respondError(c, err, "Failed to generate contract")
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("filename", result.Entry.Filename))
	resp := dto.GenerateContractResponse{Entry: result.Entry, TransactionID: result.TransactionID}
	if err != nil {
		logger.Error("Contract archived but not recorded in the ledger", slog.String("error", err.Error()))
		resp.LedgerError = err.Error()
	} else {
		logger.Info("Contract generated")
	}
	c.JSON(http.StatusCreated, resp)
}

// listArchive godoc
// @Summary List archived contracts
// @Description Lists archived contracts, newest first
// @Tags contracts
// @Produce  json
// @Success 200 {object} dto.ListArchiveResponse
// @Router /contracts [get]
func (h *contractHandler) listArchive(c *gin.Context) {
	entries, err := h.contractService.ListArchive(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to read contract archive")
		return
	}
	c.JSON(http.StatusOK, dto.ListArchiveResponse{Entries: entries})
}

// downloadContract godoc
// @Summary Download an archived contract
// @Tags contracts
// @Produce application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param   filename path string true "Archived file name"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid file name"
// @Failure 404 {object} map[string]string "Contract not found"
// @Router /contracts/{filename} [get]
func (h *contractHandler) downloadContract(c *gin.Context) {
	filename := c.Param("filename")

	doc, err := h.contractService.OpenDocument(c.Request.Context(), filename)
	if err != nil {
		respondError(c, err, "Failed to open contract")
		return
	}
	defer doc.Close()

	contentType := docxContentType
	if ext := filepath.Ext(filename); ext != ".docx" {
		if t := mime.TypeByExtension(ext); t != "" {
			contentType = t
		} else {
			contentType = "application/octet-stream"
		}
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, doc); err != nil && !errors.Is(err, c.Request.Context().Err()) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to stream contract", slog.String("error", err.Error()))
	}
}
