package domain

import "time"

// ExecutiveTenantSlug is the reserved slug of the secretariat's own tenant.
// Superadmin accounts belong to it and may act on every other tenant.
const ExecutiveTenantSlug = "executive"

// Tenant is a company scope; most records are partitioned by tenant ID.
type Tenant struct {
	ID        int64
	Name      string
	Slug      string
	Registrar string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsExecutive reports whether this is the secretariat's own tenant.
func (t *Tenant) IsExecutive() bool {
	return t.Slug == ExecutiveTenantSlug
}
