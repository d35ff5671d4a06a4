package models

import "time"

// Reception represents a row in the receptions table.
type Reception struct {
	ReceptionID  string    `json:"receptionID" db:"reception_id"`
	SerialNumber string    `json:"serialNumber" db:"serial_number"`
	TenantID     string    `json:"tenantID" db:"tenant_id"`
	ClientID     string    `json:"clientID" db:"client_id"`
	ClientName   string    `json:"clientName" db:"client_name"`
	TruckPlate   string    `json:"truckPlate" db:"truck_plate"`
	DriverName   string    `json:"driverName" db:"driver_name"`
	Product      string    `json:"product" db:"product"`
	RoomID       string    `json:"roomID" db:"room_id"`
	CrateCount   int       `json:"crateCount" db:"crate_count"`
	ArrivedAt    time.Time `json:"arrivedAt" db:"arrived_at"`
	Status       string    `json:"status" db:"status"`
	AuditFields
}

// Room represents a row in the rooms table.
type Room struct {
	RoomID   string `json:"roomID" db:"room_id"`
	TenantID string `json:"tenantID" db:"tenant_id"`
	Name     string `json:"name" db:"name"`
	Capacity int    `json:"capacity" db:"capacity"`
	AuditFields
}
