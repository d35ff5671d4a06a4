package models

import "github.com/shopspring/decimal"

// Tenant represents a row in the tenants table.
type Tenant struct {
	TenantID     string          `json:"tenantID" db:"tenant_id"`
	Name         string          `json:"name" db:"name"`
	City         string          `json:"city" db:"city"`
	CurrencyCode string          `json:"currencyCode" db:"currency_code"`
	CautionRate  decimal.Decimal `json:"cautionRate" db:"caution_rate"`
	OpeningCash  decimal.Decimal `json:"openingCash" db:"opening_cash"`
	IsActive     bool            `json:"isActive" db:"is_active"`
	AuditFields
}
