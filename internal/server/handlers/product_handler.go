package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/orcafacil/orcafacil/internal/domain/models"
	"github.com/orcafacil/orcafacil/internal/repository/mongodb"
	"github.com/orcafacil/orcafacil/internal/service/catalog"
)

// ProductHandler exposes the catalog listing and CRUD over HTTP.
type ProductHandler struct {
	svc    *catalog.Service
	logger *zap.Logger
}

// NewProductHandler constructs the HTTP handler adapter.
func NewProductHandler(svc *catalog.Service, logger *zap.Logger) *ProductHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductHandler{svc: svc, logger: logger}
}

// List returns the loaded catalog window, optionally filtered by ?search= and
// grouped by category with ?grouped=true.
func (h *ProductHandler) List(c *gin.Context) {
	window := h.svc.Window(c.Query("search"))

	if c.Query("grouped") == "true" {
		c.JSON(http.StatusOK, gin.H{
			"groups":  catalog.GroupByCategory(window),
			"hasMore": h.svc.HasMore(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": window,
		"hasMore":  h.svc.HasMore(),
	})
}

// Suggestions returns the input aids of the product form: the fixed unit
// options and the category strings seen so far.
func (h *ProductHandler) Suggestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"units":      models.SuggestedUnits,
		"categories": h.svc.Categories(),
	})
}

// LoadMore requests the next catalog page. Safe to call redundantly: when a
// fetch is in flight or the catalog is exhausted it simply reports the
// current window.
func (h *ProductHandler) LoadMore(c *gin.Context) {
	if err := h.svc.LoadMore(c.Request.Context()); err != nil {
		h.logger.Error("failed loading product page", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(h.svc.Window("")),
		"hasMore": h.svc.HasMore(),
	})
}

// Create registers a new product.
func (h *ProductHandler) Create(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		h.logger.Warn("invalid product payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	created, err := h.svc.Create(c.Request.Context(), product)
	if err != nil {
		h.fail(c, err, "failed to create product")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update overwrites the full product record identified by the path id.
func (h *ProductHandler) Update(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		h.logger.Warn("invalid product payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	product.ID = id

	if err := h.svc.Update(c.Request.Context(), product); err != nil {
		h.fail(c, err, "failed to update product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// Delete removes a product. Existing quotes keep their denormalized copies.
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "failed to delete product")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, catalog.ErrInvalidProduct):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, mongodb.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	default:
		h.logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": msg})
	}
}
