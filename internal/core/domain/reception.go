package domain

import "time"

// ReceptionStatus indicates the intake state of a truck delivery.
type ReceptionStatus string

const (
	ReceptionPending   ReceptionStatus = "PENDING"
	ReceptionUnloading ReceptionStatus = "UNLOADING"
	ReceptionStored    ReceptionStatus = "STORED"
	ReceptionCancelled ReceptionStatus = "CANCELLED"
)

// Reception is the intake event of a truck delivering full crates into a
// storage room.
type Reception struct {
	ReceptionID  string          `json:"receptionID"`  // Primary Key (UUID)
	SerialNumber string          `json:"serialNumber"` // e.g. REC-2025-0001, per-tenant sequence
	TenantID     string          `json:"tenantID"`
	ClientID     string          `json:"clientID"`
	ClientName   string          `json:"clientName"` // Denormalized snapshot
	TruckPlate   string          `json:"truckPlate"`
	DriverName   string          `json:"driverName"`
	Product      string          `json:"product"`
	RoomID       string          `json:"roomID"`
	CrateCount   int             `json:"crateCount"`
	ArrivedAt    time.Time       `json:"arrivedAt"`
	Status       ReceptionStatus `json:"status"`
	AuditFields
}

// Room is a cold-storage chamber crates are assigned to.
type Room struct {
	RoomID   string `json:"roomID"` // Primary Key (UUID)
	TenantID string `json:"tenantID"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"` // In crates
	AuditFields
}
