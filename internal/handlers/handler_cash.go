package handlers

import (
	"net/http"
	"time"

	portsrepo "github.com/frigosaas/frigo-backend/internal/core/ports/repositories"
	portssvc "github.com/frigosaas/frigo-backend/internal/core/ports/services"
	"github.com/frigosaas/frigo-backend/internal/dto"
	"github.com/frigosaas/frigo-backend/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

const businessDateFormat = "2006-01-02"

type cashHandler struct {
	cashService    portssvc.CashSvcFacade
	receiptStorage portssvc.ReceiptStorageSvc
}

func registerCashRoutes(rg *gin.RouterGroup, svc portssvc.CashSvcFacade, receiptStorage portssvc.ReceiptStorageSvc) {
	h := &cashHandler{cashService: svc, receiptStorage: receiptStorage}

	cash := rg.Group("/cash")
	{
		cash.POST("/movements", h.recordMovement)
		cash.GET("/movements", h.listMovements)
		cash.GET("/overview", h.getOverview)
		cash.POST("/closures", h.closeDay)
		cash.GET("/closures", h.listClosures)
		cash.POST("/receipts", h.uploadReceipt)
	}
}

// recordMovement godoc
// @Summary Record a cash movement
// @Description Appends a movement to the open business day. Rejected with 409
// @Description once the day is closed.
// @Tags cash
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param movement body dto.CreateMovementRequest true "Movement"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Day already closed"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/cash/movements [post]
func (h *cashHandler) recordMovement(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	movement, err := h.cashService.RecordMovement(c.Request.Context(), c.Param("tenant_id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to record movement")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

// listMovements godoc
// @Summary List a business day's cash movements
// @Description Lists movements newest first with keyset pagination. date
// @Description defaults to today; pass nextToken as before to fetch the next
// @Description page.
// @Tags cash
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param date query string false "Business date (YYYY-MM-DD)"
// @Param before query string false "Pagination cursor from a previous page"
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} dto.ListMovementsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/cash/movements [get]
func (h *cashHandler) listMovements(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.ListMovementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	businessDate := time.Now().UTC()
	if params.Date != "" {
		parsed, err := time.ParseInLocation(businessDateFormat, params.Date, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
			return
		}
		businessDate = parsed
	}

	var before *portsrepo.MovementCursor
	if params.Before != "" {
		cursorTime, cursorID, err := pagination.DecodeKeysetToken(params.Before)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination token"})
			return
		}
		before = &portsrepo.MovementCursor{CreatedAt: cursorTime, MovementID: cursorID}
	}

	movements, err := h.cashService.ListMovements(c.Request.Context(), c.Param("tenant_id"), businessDate, before, params.Limit, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list movements")
		return
	}

	resp := dto.ListMovementsResponse{Movements: make([]dto.MovementResponse, len(movements))}
	for i := range movements {
		resp.Movements[i] = dto.ToMovementResponse(&movements[i])
	}
	if len(movements) == params.Limit && params.Limit > 0 {
		last := movements[len(movements)-1]
		resp.NextToken = pagination.EncodeKeysetToken(last.CreatedAt, last.MovementID)
	}
	c.JSON(http.StatusOK, resp)
}

// getOverview godoc
// @Summary Get the register day overview
// @Description Returns opening cash, day totals and the live balance for a
// @Description business day. date defaults to today.
// @Tags cash
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param date query string false "Business date (YYYY-MM-DD)"
// @Success 200 {object} dto.OverviewResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/cash/overview [get]
func (h *cashHandler) getOverview(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	businessDate := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation(businessDateFormat, raw, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
			return
		}
		businessDate = parsed
	}
	overview, err := h.cashService.GetDayOverview(c.Request.Context(), c.Param("tenant_id"), businessDate, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to get day overview")
		return
	}
	c.JSON(http.StatusOK, dto.ToOverviewResponse(overview))
}

// closeDay godoc
// @Summary Close a business day
// @Description Reconciles counted cash against the expected balance and locks
// @Description the day's movements in one transaction (ADMIN only). Closing an
// @Description already closed day fails with 409.
// @Tags cash
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param closure body dto.CloseDayRequest true "Counted cash"
// @Success 201 {object} dto.ClosureResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Day already closed"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/cash/closures [post]
func (h *cashHandler) closeDay(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CloseDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	closure, err := h.cashService.CloseDay(c.Request.Context(), c.Param("tenant_id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to close day")
		return
	}
	c.JSON(http.StatusCreated, dto.ToClosureResponse(closure))
}

// listClosures godoc
// @Summary List day closures
// @Tags cash
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.ClosureResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/cash/closures [get]
func (h *cashHandler) listClosures(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.ListClosuresParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	closures, err := h.cashService.ListClosures(c.Request.Context(), c.Param("tenant_id"), params.Limit, params.Offset, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list closures")
		return
	}
	c.JSON(http.StatusOK, dto.ToListClosuresResponse(closures))
}

// uploadReceipt godoc
// @Summary Upload a receipt image
// @Description Stores the uploaded file in the receipts bucket and returns its
// @Description URL, to be recorded on a cash movement.
// @Tags cash
// @Accept multipart/form-data
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param receipt formData file true "Receipt image"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Receipt storage not configured"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/cash/receipts [post]
func (h *cashHandler) uploadReceipt(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	if h.receiptStorage == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Receipt storage is not configured"})
		return
	}
	fileHeader, err := c.FormFile("receipt")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing receipt file"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Could not read receipt file"})
		return
	}
	defer file.Close()

	url, err := h.receiptStorage.UploadReceipt(
		c.Request.Context(),
		c.Param("tenant_id"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		respondServiceError(c, err, "Failed to upload receipt")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"receiptURL": url})
}
