package handlers

import (
	"net/http"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	portssvc "github.com/frigosaas/frigo-backend/internal/core/ports/services"
	"github.com/frigosaas/frigo-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func registerInvoiceRoutes(rg *gin.RouterGroup, svc portssvc.InvoiceSvcFacade) {
	h := &invoiceHandler{invoiceService: svc}

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:invoice_id", h.getInvoice)
		invoices.PUT("/:invoice_id/status", h.updateStatus)
	}
}

// createInvoice godoc
// @Summary Issue an invoice
// @Description Creates a DRAFT invoice numbered FAC-YYYY-NNNN from the
// @Description tenant's atomic yearly counter.
// @Tags invoices
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), c.Param("tenant_id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create invoice")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// listInvoices godoc
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param status query string false "Filter by status" Enums(DRAFT, SENT, PAID, OVERDUE)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.InvoiceResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), c.Param("tenant_id"), domain.InvoiceStatus(params.Status), params.Limit, params.Offset, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInvoicesResponse(invoices))
}

// getInvoice godoc
// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/invoices/{invoice_id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), c.Param("tenant_id"), c.Param("invoice_id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to get invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// updateStatus godoc
// @Summary Transition an invoice
// @Tags invoices
// @Accept json
// @Param tenant_id path string true "Tenant ID"
// @Param invoice_id path string true "Invoice ID"
// @Param status body dto.UpdateInvoiceStatusRequest true "Target status"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/invoices/{invoice_id}/status [put]
func (h *invoiceHandler) updateStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	err := h.invoiceService.UpdateStatus(c.Request.Context(), c.Param("tenant_id"), c.Param("invoice_id"), domain.InvoiceStatus(req.Status), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update invoice status")
		return
	}
	c.Status(http.StatusNoContent)
}
