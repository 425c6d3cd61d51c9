package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bizledger/backoffice/internal/core/ports/services"
	"github.com/bizledger/backoffice/internal/dto"
	"github.com/bizledger/backoffice/internal/middleware"
)

// ledgerHandler handles HTTP requests related to journal entries.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvc
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvc) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// registerLedgerRoutes registers routes related to journal entries.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc) {
	h := newLedgerHandler(ledgerService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID/lines", h.listEntryLines)
	}
}

// createEntry godoc
// @Summary Record a journal entry
// @Description Records a balanced double-entry journal entry; the header and all lines are persisted atomically
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateEntryRequest true "Journal entry"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} dto.ValidationErrorResponse "One or more preconditions violated"
// @Failure 404 {object} map[string]string "A line references a non-existent account"
// @Failure 504 {object} map[string]string "Operation timed out"
// @Failure 500 {object} map[string]string "Failed to record entry"
// @Router /entries [post]
func (h *ledgerHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.ledgerService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Lists entry headers, most recent first
// @Tags entries
// @Produce json
// @Param limit query int false "Maximum entries to return (default 20, max 100)"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Router /entries [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	entries, err := h.ledgerService.ListEntries(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToListEntriesResponse(entries))
}

// listEntryLines godoc
// @Summary List the lines of an entry
// @Description Lists all lines of one journal entry in insertion order, each carrying its account's code and name
// @Tags entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.ListEntryLinesResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to list entry lines"
// @Router /entries/{entryID}/lines [get]
func (h *ledgerHandler) listEntryLines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	lines, err := h.ledgerService.ListEntryLines(c.Request.Context(), entryID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list entry lines")
		return
	}

	c.JSON(http.StatusOK, dto.ListEntryLinesResponse{Lines: dto.ToEntryLineResponses(lines)})
}
