package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/orcafacil/orcafacil/internal/domain/models"
	"github.com/orcafacil/orcafacil/internal/repository/mongodb"
	"github.com/orcafacil/orcafacil/internal/service/quotes"
)

// QuoteHandler exposes quote building and CRUD over HTTP.
type QuoteHandler struct {
	svc    *quotes.Service
	logger *zap.Logger
}

// NewQuoteHandler constructs the HTTP handler adapter.
func NewQuoteHandler(svc *quotes.Service, logger *zap.Logger) *QuoteHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteHandler{svc: svc, logger: logger}
}

// List returns all persisted quotes with their recomputed grand totals.
func (h *QuoteHandler) List(c *gin.Context) {
	all, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing quotes", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to list quotes"})
		return
	}

	out := make([]gin.H, 0, len(all))
	for _, q := range all {
		out = append(out, gin.H{"quote": q, "total": quotes.GrandTotal(q.Itens)})
	}
	c.JSON(http.StatusOK, gin.H{"quotes": out})
}

// Create persists a new quote as a single document.
func (h *QuoteHandler) Create(c *gin.Context) {
	var quote models.Quote
	if err := c.ShouldBindJSON(&quote); err != nil {
		h.logger.Warn("invalid quote payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	created, err := h.svc.Create(c.Request.Context(), quote)
	if err != nil {
		h.fail(c, err, "failed to create quote")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"quote": created, "total": quotes.GrandTotal(created.Itens)})
}

// Update overwrites the full quote record identified by the path id.
func (h *QuoteHandler) Update(c *gin.Context) {
	var quote models.Quote
	if err := c.ShouldBindJSON(&quote); err != nil {
		h.logger.Warn("invalid quote payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	quote.ID = id

	updated, err := h.svc.Update(c.Request.Context(), quote)
	if err != nil {
		h.fail(c, err, "failed to update quote")
		return
	}

	c.JSON(http.StatusOK, gin.H{"quote": updated, "total": quotes.GrandTotal(updated.Itens)})
}

// Delete removes a quote.
func (h *QuoteHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "failed to delete quote")
		return
	}

	c.Status(http.StatusNoContent)
}

// Preview validates a draft item sequence and returns the computed line and
// grand totals without persisting anything.
func (h *QuoteHandler) Preview(c *gin.Context) {
	var draft struct {
		Itens []models.QuoteItem `json:"itens"`
	}
	if err := c.ShouldBindJSON(&draft); err != nil {
		h.logger.Warn("invalid preview payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	items, total, err := quotes.Preview(draft.Itens)
	if err != nil {
		h.fail(c, err, "failed to preview quote")
		return
	}

	c.JSON(http.StatusOK, gin.H{"itens": items, "total": total})
}

// Autofill resolves the catalog unit price for ?produto= by case-insensitive
// exact name match.
func (h *QuoteHandler) Autofill(c *gin.Context) {
	produto := c.Query("produto")
	if produto == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "produto is required"})
		return
	}

	price, found, err := h.svc.AutofillPrice(c.Request.Context(), produto)
	if err != nil {
		h.logger.Error("failed resolving catalog price", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to resolve price"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"precoUnitario": price, "found": found})
}

func (h *QuoteHandler) fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, quotes.ErrInvalidQuote), errors.Is(err, quotes.ErrInvalidItem):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, mongodb.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "quote not found"})
	default:
		h.logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": msg})
	}
}
