package domain

// Executive is a person the secretariat works for.
type Executive struct {
	ID       int64
	TenantID int64
	Tenant   string
	Name     string
	JobTitle string
	Profile  string
	Company  string
}
