package dto

import (
	"time"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
)

// ListAuditParams defines query parameters for reading the audit trail.
type ListAuditParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// AuditEntryResponse is the public shape of an audit entry.
type AuditEntryResponse struct {
	EntryID    string    `json:"entryID"`
	UserID     string    `json:"userID"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityID"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToAuditEntryResponses converts a slice of domain entries.
func ToAuditEntryResponses(entries []domain.AuditEntry) []AuditEntryResponse {
	out := make([]AuditEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = AuditEntryResponse{
			EntryID:    e.EntryID,
			UserID:     e.UserID,
			Action:     e.Action,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Detail:     e.Detail,
			CreatedAt:  e.CreatedAt,
		}
	}
	return out
}
