package handlers

import (
	"net/http"

	portssvc "github.com/frigosaas/frigo-backend/internal/core/ports/services"
	"github.com/frigosaas/frigo-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

func registerClientRoutes(rg *gin.RouterGroup, svc portssvc.ClientSvcFacade) {
	h := &clientHandler{clientService: svc}

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/:client_id", h.getClient)
		clients.PUT("/:client_id", h.updateClient)
		clients.DELETE("/:client_id", h.deleteClient)
	}
}

// createClient godoc
// @Summary Create a client
// @Tags clients
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	client, err := h.clientService.CreateClient(c.Request.Context(), c.Param("tenant_id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create client")
		return
	}
	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// listClients godoc
// @Summary List clients
// @Tags clients
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.ClientResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.ListClientsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	clients, err := h.clientService.ListClients(c.Request.Context(), c.Param("tenant_id"), params.Limit, params.Offset, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, dto.ToListClientsResponse(clients))
}

// getClient godoc
// @Summary Get a client
// @Tags clients
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param client_id path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/clients/{client_id} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	client, err := h.clientService.GetClientByID(c.Request.Context(), c.Param("tenant_id"), c.Param("client_id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to get client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// updateClient godoc
// @Summary Update a client
// @Tags clients
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param client_id path string true "Client ID"
// @Param client body dto.UpdateClientRequest true "Fields to update"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/clients/{client_id} [put]
func (h *clientHandler) updateClient(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	client, err := h.clientService.UpdateClient(c.Request.Context(), c.Param("tenant_id"), c.Param("client_id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// deleteClient godoc
// @Summary Delete a client
// @Description Soft deletes a client. Reservations, loans and invoices keep
// @Description their client name snapshots.
// @Tags clients
// @Param tenant_id path string true "Tenant ID"
// @Param client_id path string true "Client ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/clients/{client_id} [delete]
func (h *clientHandler) deleteClient(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.clientService.DeleteClient(c.Request.Context(), c.Param("tenant_id"), c.Param("client_id"), userID); err != nil {
		respondServiceError(c, err, "Failed to delete client")
		return
	}
	c.Status(http.StatusNoContent)
}
