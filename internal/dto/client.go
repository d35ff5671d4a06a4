package dto

import "github.com/frigosaas/frigo-backend/internal/core/domain"

// CreateClientRequest defines the payload for creating a client.
type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Village string `json:"village"`
	Address string `json:"address"`
}

// UpdateClientRequest defines the client fields that can change.
type UpdateClientRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Village *string `json:"village"`
	Address *string `json:"address"`
}

// ListClientsParams defines query parameters for listing clients.
type ListClientsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ClientResponse is the public shape of a client.
type ClientResponse struct {
	ClientID string `json:"clientID"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Village  string `json:"village,omitempty"`
	Address  string `json:"address,omitempty"`
}

// ToClientResponse converts a domain client.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID: c.ClientID,
		Name:     c.Name,
		Phone:    c.Phone,
		Village:  c.Village,
		Address:  c.Address,
	}
}

// ToListClientsResponse converts a slice of domain clients.
func ToListClientsResponse(clients []domain.Client) []ClientResponse {
	out := make([]ClientResponse, len(clients))
	for i := range clients {
		out[i] = ToClientResponse(&clients[i])
	}
	return out
}
