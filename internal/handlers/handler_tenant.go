package handlers

import (
	"net/http"
	"time"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	portssvc "github.com/frigosaas/frigo-backend/internal/core/ports/services"
	"github.com/frigosaas/frigo-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// tenantHandler handles HTTP requests related to tenants and memberships.
type tenantHandler struct {
	tenantService portssvc.TenantSvcFacade
}

func newTenantHandler(ts portssvc.TenantSvcFacade) *tenantHandler {
	return &tenantHandler{tenantService: ts}
}

// createTenant godoc
// @Summary Create a new tenant
// @Description Creates a warehouse tenant and assigns the creator as its first admin.
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body dto.CreateTenantRequest true "Tenant details"
// @Success 201 {object} dto.TenantResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants [post]
func (h *tenantHandler) createTenant(c *gin.Context) {
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	tenant, err := h.tenantService.CreateTenant(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create tenant")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTenantResponse(tenant))
}

// listUserTenants godoc
// @Summary List tenants for the current user
// @Tags tenants
// @Produce json
// @Success 200 {array} dto.TenantResponse
// @Security BearerAuth
// @Router /tenants [get]
func (h *tenantHandler) listUserTenants(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	tenants, err := h.tenantService.ListUserTenants(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list tenants")
		return
	}
	out := make([]dto.TenantResponse, len(tenants))
	for i := range tenants {
		out[i] = dto.ToTenantResponse(&tenants[i])
	}
	c.JSON(http.StatusOK, out)
}

// getTenant godoc
// @Summary Get a tenant
// @Tags tenants
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {object} dto.TenantResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id} [get]
func (h *tenantHandler) getTenant(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	tenant, err := h.tenantService.GetTenantByID(c.Request.Context(), c.Param("tenant_id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to get tenant")
		return
	}
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

// updateTenant godoc
// @Summary Update tenant settings
// @Description Updates tenant settings such as the caution rate and opening cash (ADMIN only).
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param tenant body dto.UpdateTenantRequest true "Fields to update"
// @Success 200 {object} dto.TenantResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id} [put]
func (h *tenantHandler) updateTenant(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	tenant, err := h.tenantService.UpdateTenant(c.Request.Context(), c.Param("tenant_id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update tenant")
		return
	}
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

// listMembers godoc
// @Summary List tenant members
// @Tags tenants
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {array} dto.MemberResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/members [get]
func (h *tenantHandler) listMembers(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	members, err := h.tenantService.ListMembers(c.Request.Context(), c.Param("tenant_id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list members")
		return
	}
	out := make([]dto.MemberResponse, len(members))
	for i, m := range members {
		out[i] = dto.MemberResponse{
			UserID:   m.UserID,
			UserName: m.UserName,
			Role:     string(m.Role),
			JoinedAt: m.JoinedAt.Format(time.RFC3339),
		}
	}
	c.JSON(http.StatusOK, out)
}

// addMember godoc
// @Summary Add a member to the tenant
// @Tags tenants
// @Accept json
// @Param tenant_id path string true "Tenant ID"
// @Param member body dto.AddMemberRequest true "User and role"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already a member"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/members [post]
func (h *tenantHandler) addMember(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	err := h.tenantService.AddMember(c.Request.Context(), c.Param("tenant_id"), req.UserID, domain.UserTenantRole(req.Role), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to add member")
		return
	}
	c.Status(http.StatusNoContent)
}

// updateMemberRole godoc
// @Summary Change a member's role
// @Tags tenants
// @Accept json
// @Param tenant_id path string true "Tenant ID"
// @Param user_id path string true "User ID"
// @Param role body dto.UpdateMemberRoleRequest true "New role"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/members/{user_id} [put]
func (h *tenantHandler) updateMemberRole(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	err := h.tenantService.UpdateMemberRole(c.Request.Context(), c.Param("tenant_id"), c.Param("user_id"), domain.UserTenantRole(req.Role), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update member role")
		return
	}
	c.Status(http.StatusNoContent)
}

// removeMember godoc
// @Summary Remove a member from the tenant
// @Tags tenants
// @Param tenant_id path string true "Tenant ID"
// @Param user_id path string true "User ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/members/{user_id} [delete]
func (h *tenantHandler) removeMember(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	err := h.tenantService.RemoveMember(c.Request.Context(), c.Param("tenant_id"), c.Param("user_id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to remove member")
		return
	}
	c.Status(http.StatusNoContent)
}
