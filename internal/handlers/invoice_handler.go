package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"invoice-admin-backend/internal/services/invoicing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InvoiceHandler struct {
	service *invoicing.InvoiceService
}

func NewInvoiceHandler(s *invoicing.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: s}
}

// List serves the invoices listing from the listing cache.
func (h *InvoiceHandler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "list invoices failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load invoices"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": rows})
}

// Show returns one invoice for the edit form.
func (h *InvoiceHandler) Show(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}
	inv, err := h.service.Get(c.Request.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "get invoice failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load invoice"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": inv})
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var form invoicing.FormInput
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form submission"})
		return
	}
	respond(c, h.service.Create(c.Request.Context(), form))
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}
	var form invoicing.FormInput
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form submission"})
		return
	}
	respond(c, h.service.Update(c.Request.Context(), id, form))
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}
	respond(c, h.service.Delete(c.Request.Context(), id))
}

func invoiceID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return "", false
	}
	return id, true
}

// respond turns an action outcome into the HTTP answer: 500 for store
// failures, 422 for rejected input, 303 for redirects, 204 otherwise.
func respond(c *gin.Context, out invoicing.Outcome) {
	switch {
	case out.State != nil && out.Err != nil:
		c.JSON(http.StatusInternalServerError, out.State)
	case out.State != nil:
		c.JSON(http.StatusUnprocessableEntity, out.State)
	case out.Redirect != "":
		c.Redirect(http.StatusSeeOther, out.Redirect)
	default:
		c.Status(http.StatusNoContent)
	}
}
