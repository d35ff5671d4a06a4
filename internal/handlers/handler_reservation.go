package handlers

import (
	"net/http"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	portssvc "github.com/frigosaas/frigo-backend/internal/core/ports/services"
	"github.com/frigosaas/frigo-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type reservationHandler struct {
	reservationService portssvc.ReservationSvcFacade
}

func registerReservationRoutes(rg *gin.RouterGroup, svc portssvc.ReservationSvcFacade) {
	h := &reservationHandler{reservationService: svc}

	reservations := rg.Group("/reservations")
	{
		reservations.POST("", h.createReservation)
		reservations.GET("", h.listReservations)
		reservations.GET("/:reservation_id", h.getReservation)
		reservations.PUT("/:reservation_id/status", h.updateStatus)
		reservations.POST("/:reservation_id/payments", h.recordPayment)
	}
}

// createReservation godoc
// @Summary Request a crate reservation
// @Description Creates a reservation in REQUESTED state. The caution deposit
// @Description is crateCount x the tenant's caution rate and the due date is
// @Description derived from the season of the creation date.
// @Tags reservations
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param reservation body dto.CreateReservationRequest true "Reservation details"
// @Success 201 {object} dto.ReservationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reservations [post]
func (h *reservationHandler) createReservation(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	reservation, err := h.reservationService.CreateReservation(c.Request.Context(), c.Param("tenant_id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create reservation")
		return
	}
	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

// listReservations godoc
// @Summary List reservations
// @Tags reservations
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param status query string false "Filter by status" Enums(REQUESTED, APPROVED, REJECTED, CANCELLED, CONVERTED)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.ReservationResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reservations [get]
func (h *reservationHandler) listReservations(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.ListReservationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	reservations, err := h.reservationService.ListReservations(
		c.Request.Context(), c.Param("tenant_id"), domain.ReservationStatus(params.Status), params.Limit, params.Offset, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list reservations")
		return
	}
	c.JSON(http.StatusOK, dto.ToListReservationsResponse(reservations))
}

// getReservation godoc
// @Summary Get a reservation
// @Tags reservations
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param reservation_id path string true "Reservation ID"
// @Success 200 {object} dto.ReservationResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reservations/{reservation_id} [get]
func (h *reservationHandler) getReservation(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	reservation, err := h.reservationService.GetReservationByID(c.Request.Context(), c.Param("tenant_id"), c.Param("reservation_id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to get reservation")
		return
	}
	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// updateStatus godoc
// @Summary Transition a reservation
// @Description Allowed transitions: REQUESTED to APPROVED/REJECTED/CANCELLED,
// @Description APPROVED to CONVERTED/CANCELLED.
// @Tags reservations
// @Accept json
// @Param tenant_id path string true "Tenant ID"
// @Param reservation_id path string true "Reservation ID"
// @Param status body dto.UpdateReservationStatusRequest true "Target status"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid transition"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reservations/{reservation_id}/status [put]
func (h *reservationHandler) updateStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	err := h.reservationService.UpdateStatus(c.Request.Context(), c.Param("tenant_id"), c.Param("reservation_id"), domain.ReservationStatus(req.Status), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update reservation status")
		return
	}
	c.Status(http.StatusNoContent)
}

// recordPayment godoc
// @Summary Record a caution deposit payment
// @Description Applies a partial or full payment; the payment status moves to
// @Description PARTIAL or PAID atomically with the new paid total.
// @Tags reservations
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param reservation_id path string true "Reservation ID"
// @Param payment body dto.RecordPaymentRequest true "Payment"
// @Success 200 {object} dto.ReservationResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reservations/{reservation_id}/payments [post]
func (h *reservationHandler) recordPayment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	reservation, err := h.reservationService.RecordDepositPayment(c.Request.Context(), c.Param("tenant_id"), c.Param("reservation_id"), req.Amount, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}
