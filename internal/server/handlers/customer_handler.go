package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/orcafacil/orcafacil/internal/domain/models"
	"github.com/orcafacil/orcafacil/internal/repository/mongodb"
	"github.com/orcafacil/orcafacil/internal/service/customers"
)

// CustomerHandler exposes customer registration and CRUD over HTTP.
type CustomerHandler struct {
	svc    *customers.Service
	logger *zap.Logger
}

// NewCustomerHandler constructs the HTTP handler adapter.
func NewCustomerHandler(svc *customers.Service, logger *zap.Logger) *CustomerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerHandler{svc: svc, logger: logger}
}

// List returns all registered customers.
func (h *CustomerHandler) List(c *gin.Context) {
	all, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing customers", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to list customers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customers": all})
}

// Create registers a new customer.
func (h *CustomerHandler) Create(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		h.logger.Warn("invalid customer payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	created, err := h.svc.Create(c.Request.Context(), customer)
	if err != nil {
		h.fail(c, err, "failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update overwrites the full customer record identified by the path id.
func (h *CustomerHandler) Update(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		h.logger.Warn("invalid customer payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	customer.ID = id

	if err := h.svc.Update(c.Request.Context(), customer); err != nil {
		h.fail(c, err, "failed to update customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// Delete removes a customer. Their quotes are left untouched.
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "failed to delete customer")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, customers.ErrInvalidCustomer):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, mongodb.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
	default:
		h.logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": msg})
	}
}
