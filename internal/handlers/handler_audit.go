package handlers

import (
	"net/http"

	portssvc "github.com/frigosaas/frigo-backend/internal/core/ports/services"
	"github.com/frigosaas/frigo-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

func registerAuditRoutes(rg *gin.RouterGroup, svc portssvc.AuditSvcFacade) {
	h := &auditHandler{auditService: svc}
	rg.GET("/audit", h.listEntries)
}

// listEntries godoc
// @Summary Read the audit trail
// @Description Lists who did what, newest first (ADMIN only).
// @Tags audit
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.AuditEntryResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/audit [get]
func (h *auditHandler) listEntries(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.ListAuditParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	entries, err := h.auditService.ListEntries(c.Request.Context(), c.Param("tenant_id"), params.Limit, params.Offset, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list audit entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuditEntryResponses(entries))
}
