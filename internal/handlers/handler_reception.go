package handlers

import (
	"net/http"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	portssvc "github.com/frigosaas/frigo-backend/internal/core/ports/services"
	"github.com/frigosaas/frigo-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type receptionHandler struct {
	receptionService portssvc.ReceptionSvcFacade
}

func registerReceptionRoutes(rg *gin.RouterGroup, svc portssvc.ReceptionSvcFacade) {
	h := &receptionHandler{receptionService: svc}

	receptions := rg.Group("/receptions")
	{
		receptions.POST("", h.createReception)
		receptions.GET("", h.listReceptions)
		receptions.GET("/:reception_id", h.getReception)
		receptions.PUT("/:reception_id/status", h.updateStatus)
		receptions.PUT("/:reception_id/room", h.assignRoom)
	}

	rooms := rg.Group("/rooms")
	{
		rooms.POST("", h.createRoom)
		rooms.GET("", h.listRooms)
	}
}

// createReception godoc
// @Summary Register a truck arrival
// @Description Registers an intake with a yearly serial number. arrivedAt
// @Description defaults to now when omitted.
// @Tags receptions
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param reception body dto.CreateReceptionRequest true "Reception details"
// @Success 201 {object} dto.ReceptionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/receptions [post]
func (h *receptionHandler) createReception(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateReceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	reception, err := h.receptionService.CreateReception(c.Request.Context(), c.Param("tenant_id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create reception")
		return
	}
	c.JSON(http.StatusCreated, dto.ToReceptionResponse(reception))
}

// listReceptions godoc
// @Summary List receptions
// @Tags receptions
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param status query string false "Filter by status" Enums(PENDING, UNLOADING, STORED, CANCELLED)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.ReceptionResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/receptions [get]
func (h *receptionHandler) listReceptions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.ListReceptionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	receptions, err := h.receptionService.ListReceptions(c.Request.Context(), c.Param("tenant_id"), domain.ReceptionStatus(params.Status), params.Limit, params.Offset, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list receptions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListReceptionsResponse(receptions))
}

// getReception godoc
// @Summary Get a reception
// @Tags receptions
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param reception_id path string true "Reception ID"
// @Success 200 {object} dto.ReceptionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/receptions/{reception_id} [get]
func (h *receptionHandler) getReception(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	reception, err := h.receptionService.GetReceptionByID(c.Request.Context(), c.Param("tenant_id"), c.Param("reception_id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to get reception")
		return
	}
	c.JSON(http.StatusOK, dto.ToReceptionResponse(reception))
}

// updateStatus godoc
// @Summary Transition a reception
// @Tags receptions
// @Accept json
// @Param tenant_id path string true "Tenant ID"
// @Param reception_id path string true "Reception ID"
// @Param status body dto.UpdateReceptionStatusRequest true "Target status"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/receptions/{reception_id}/status [put]
func (h *receptionHandler) updateStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateReceptionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	err := h.receptionService.UpdateStatus(c.Request.Context(), c.Param("tenant_id"), c.Param("reception_id"), domain.ReceptionStatus(req.Status), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update reception status")
		return
	}
	c.Status(http.StatusNoContent)
}

// assignRoom godoc
// @Summary Assign a storage room to a reception
// @Tags receptions
// @Accept json
// @Param tenant_id path string true "Tenant ID"
// @Param reception_id path string true "Reception ID"
// @Param room body dto.AssignRoomRequest true "Room"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Unknown room"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/receptions/{reception_id}/room [put]
func (h *receptionHandler) assignRoom(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.AssignRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	err := h.receptionService.AssignRoom(c.Request.Context(), c.Param("tenant_id"), c.Param("reception_id"), req.RoomID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to assign room")
		return
	}
	c.Status(http.StatusNoContent)
}

// createRoom godoc
// @Summary Add a storage room
// @Tags rooms
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param room body dto.CreateRoomRequest true "Room details"
// @Success 201 {object} dto.RoomResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/rooms [post]
func (h *receptionHandler) createRoom(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	room, err := h.receptionService.CreateRoom(c.Request.Context(), c.Param("tenant_id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create room")
		return
	}
	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

// listRooms godoc
// @Summary List storage rooms
// @Tags rooms
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {array} dto.RoomResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/rooms [get]
func (h *receptionHandler) listRooms(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	rooms, err := h.receptionService.ListRooms(c.Request.Context(), c.Param("tenant_id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list rooms")
		return
	}
	out := make([]dto.RoomResponse, len(rooms))
	for i := range rooms {
		out[i] = dto.ToRoomResponse(&rooms[i])
	}
	c.JSON(http.StatusOK, out)
}
