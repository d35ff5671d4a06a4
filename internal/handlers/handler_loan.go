package handlers

import (
	"net/http"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	portssvc "github.com/frigosaas/frigo-backend/internal/core/ports/services"
	"github.com/frigosaas/frigo-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

func registerLoanRoutes(rg *gin.RouterGroup, svc portssvc.LoanSvcFacade) {
	h := &loanHandler{loanService: svc}

	loans := rg.Group("/loans")
	{
		loans.POST("", h.createLoan)
		loans.GET("", h.listLoans)
		loans.GET("/:loan_id", h.getLoan)
		loans.POST("/:loan_id/payments", h.recordPayment)
		loans.POST("/:loan_id/return", h.returnLoan)
	}
}

// createLoan godoc
// @Summary Issue an empty-crate loan ticket
// @Description Lends empty crates against a caution deposit of crateCount x
// @Description the tenant's caution rate. The ticket number comes from the
// @Description tenant's yearly counter.
// @Tags loans
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param loan body dto.CreateLoanRequest true "Loan details"
// @Success 201 {object} dto.LoanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/loans [post]
func (h *loanHandler) createLoan(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	loan, err := h.loanService.CreateLoan(c.Request.Context(), c.Param("tenant_id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create loan")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLoanResponse(loan))
}

// listLoans godoc
// @Summary List crate loans
// @Tags loans
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param status query string false "Filter by status" Enums(OPEN, RETURNED)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.LoanResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/loans [get]
func (h *loanHandler) listLoans(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.ListLoansParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	loans, err := h.loanService.ListLoans(c.Request.Context(), c.Param("tenant_id"), domain.LoanStatus(params.Status), params.Limit, params.Offset, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list loans")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLoansResponse(loans))
}

// getLoan godoc
// @Summary Get a crate loan
// @Tags loans
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param loan_id path string true "Loan ID"
// @Success 200 {object} dto.LoanResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/loans/{loan_id} [get]
func (h *loanHandler) getLoan(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	loan, err := h.loanService.GetLoanByID(c.Request.Context(), c.Param("tenant_id"), c.Param("loan_id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to get loan")
		return
	}
	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// recordPayment godoc
// @Summary Record a loan caution payment
// @Tags loans
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param loan_id path string true "Loan ID"
// @Param payment body dto.RecordPaymentRequest true "Payment"
// @Success 200 {object} dto.LoanResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/loans/{loan_id}/payments [post]
func (h *loanHandler) recordPayment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	loan, err := h.loanService.RecordDepositPayment(c.Request.Context(), c.Param("tenant_id"), c.Param("loan_id"), req.Amount, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to record loan payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// returnLoan godoc
// @Summary Mark a loan's crates as returned
// @Description Closes an OPEN loan. Rejected with 409 while any caution
// @Description deposit remains unpaid.
// @Tags loans
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param loan_id path string true "Loan ID"
// @Success 200 {object} dto.LoanResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Caution deposit not fully paid"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/loans/{loan_id}/return [post]
func (h *loanHandler) returnLoan(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	loan, err := h.loanService.ReturnLoan(c.Request.Context(), c.Param("tenant_id"), c.Param("loan_id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to return loan")
		return
	}
	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}
