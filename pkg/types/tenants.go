package types

import (
	"fmt"
)

// TenantActivityStatus is the activity state of a tenant.
type TenantActivityStatus string

const (
	TenantActivityStatusActive    TenantActivityStatus = "ACTIVE"
	TenantActivityStatusInactive  TenantActivityStatus = "INACTIVE"
	TenantActivityStatusOffloaded TenantActivityStatus = "OFFLOADED"

	// Legacy aliases accepted on input and normalized to the current names.
	TenantActivityStatusHot    TenantActivityStatus = "HOT"
	TenantActivityStatusCold   TenantActivityStatus = "COLD"
	TenantActivityStatusFrozen TenantActivityStatus = "FROZEN"

	// Transitional statuses are read-only: the server reports them while an
	// offload or onload is in flight, and they may not be supplied on
	// create/update.
	TenantActivityStatusOffloading TenantActivityStatus = "OFFLOADING"
	TenantActivityStatusOnloading  TenantActivityStatus = "ONLOADING"
)

// Tenant is a logical partition within a multi-tenant collection.
type Tenant struct {
	Name           string               `json:"name"`
	ActivityStatus TenantActivityStatus `json:"activityStatus,omitempty"`
}

// Normalize maps legacy aliases to their current names. An empty status
// normalizes to ACTIVE.
func (s TenantActivityStatus) Normalize() TenantActivityStatus {
	switch s {
	case "":
		return TenantActivityStatusActive
	case TenantActivityStatusHot:
		return TenantActivityStatusActive
	case TenantActivityStatusCold:
		return TenantActivityStatusInactive
	case TenantActivityStatusFrozen:
		return TenantActivityStatusOffloaded
	default:
		return s
	}
}

// ValidateWritable rejects statuses that may not be supplied on
// create/update.
func (s TenantActivityStatus) ValidateWritable() error {
	switch s.Normalize() {
	case TenantActivityStatusActive, TenantActivityStatusInactive, TenantActivityStatusOffloaded:
		return nil
	default:
		return fmt.Errorf("activity status %q is read-only and cannot be set by the client", s)
	}
}
