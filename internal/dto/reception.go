package dto

import (
	"time"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
)

// CreateReceptionRequest defines the payload for registering a truck intake.
type CreateReceptionRequest struct {
	ClientID   string     `json:"clientID" binding:"required"`
	TruckPlate string     `json:"truckPlate"`
	DriverName string     `json:"driverName"`
	Product    string     `json:"product" binding:"required"`
	RoomID     string     `json:"roomID"`
	CrateCount int        `json:"crateCount" binding:"required,gt=0"`
	ArrivedAt  *time.Time `json:"arrivedAt"`
}

// ListReceptionsParams defines query parameters for listing receptions.
type ListReceptionsParams struct {
	Status string `form:"status" binding:"omitempty,oneof=PENDING UNLOADING STORED CANCELLED"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// UpdateReceptionStatusRequest transitions a reception.
type UpdateReceptionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING UNLOADING STORED CANCELLED"`
}

// AssignRoomRequest sets a reception's storage room.
type AssignRoomRequest struct {
	RoomID string `json:"roomID" binding:"required"`
}

// CreateRoomRequest defines the payload for adding a storage room.
type CreateRoomRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
}

// ReceptionResponse is the public shape of a reception.
type ReceptionResponse struct {
	ReceptionID  string    `json:"receptionID"`
	SerialNumber string    `json:"serialNumber"`
	ClientID     string    `json:"clientID"`
	ClientName   string    `json:"clientName"`
	TruckPlate   string    `json:"truckPlate,omitempty"`
	DriverName   string    `json:"driverName,omitempty"`
	Product      string    `json:"product"`
	RoomID       string    `json:"roomID,omitempty"`
	CrateCount   int       `json:"crateCount"`
	ArrivedAt    time.Time `json:"arrivedAt"`
	Status       string    `json:"status"`
}

// RoomResponse is the public shape of a storage room.
type RoomResponse struct {
	RoomID   string `json:"roomID"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// ToReceptionResponse converts a domain reception.
func ToReceptionResponse(r *domain.Reception) ReceptionResponse {
	return ReceptionResponse{
		ReceptionID:  r.ReceptionID,
		SerialNumber: r.SerialNumber,
		ClientID:     r.ClientID,
		ClientName:   r.ClientName,
		TruckPlate:   r.TruckPlate,
		DriverName:   r.DriverName,
		Product:      r.Product,
		RoomID:       r.RoomID,
		CrateCount:   r.CrateCount,
		ArrivedAt:    r.ArrivedAt,
		Status:       string(r.Status),
	}
}

// ToListReceptionsResponse converts a slice of domain receptions.
func ToListReceptionsResponse(rs []domain.Reception) []ReceptionResponse {
	out := make([]ReceptionResponse, len(rs))
	for i := range rs {
		out[i] = ToReceptionResponse(&rs[i])
	}
	return out
}

// ToRoomResponse converts a domain room.
func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{RoomID: r.RoomID, Name: r.Name, Capacity: r.Capacity}
}
