package domain

import "time"

// Catalog entities are the flat reference registers behind the back-office
// screens. They share tenant scoping and registration metadata.

// Department groups job roles and cost centers.
type Department struct {
	ID           int64
	TenantID     int64
	Tenant       string
	Name         string
	Description  string
	Registrar    string
	RegisteredAt time.Time
}

// JobRole (função) belongs to a department.
type JobRole struct {
	ID           int64
	TenantID     int64
	Tenant       string
	Name         string
	Description  string
	Department   string
	Registrar    string
	RegisteredAt time.Time
}

// Collaborator is a staff member filling a job role.
type Collaborator struct {
	ID           int64
	TenantID     int64
	Tenant       string
	Name         string
	Description  string
	JobRole      string
	Registrar    string
	RegisteredAt time.Time
}

// Asset is a physical asset tracked per company.
type Asset struct {
	ID           int64
	TenantID     int64
	Tenant       string
	Name         string
	InternalCode string
	Plate        string
	City         string
	State        string
	CostCenter   string
	Owner        string
	Responsible  string
	AssignedTo   string
	Company      string
}

// CostCenter is an accounting cost center.
type CostCenter struct {
	ID           int64
	TenantID     int64
	Tenant       string
	InternalCode string
	Class        string
	Name         string
	City         string
	State        string
	Company      string
	Department   string
	Responsible  string
}
