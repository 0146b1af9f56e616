package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/execsec/backoffice/internal/domain"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	User      *UserResponse `json:"user"`
	Tenant    string        `json:"tenant"`
}

// PayableResponse represents a payable in API responses, using the wire
// names of the legacy API.
type PayableResponse struct {
	ID                int64            `json:"IdContasPagar"`
	Description       string           `json:"Descricao"`
	BillingType       string           `json:"TipoCobranca"`
	BillingID         string           `json:"IdCobranca"`
	BillingTag        string           `json:"TagCobranca"`
	Creditor          string           `json:"Credor"`
	CreditorType      string           `json:"TipoCredor"`
	OriginalAmount    *decimal.Decimal `json:"ValorOriginal"`
	PaymentType       string           `json:"TipoPagamento"`
	Installments      int              `json:"Parcelas"`
	Discount          *decimal.Decimal `json:"Desconto"`
	Surcharge         *decimal.Decimal `json:"Acrescimo"`
	FinalAmount       *decimal.Decimal `json:"ValorFinal"`
	DebtorExecutiveID *int64           `json:"DevedorIdExecutivo"`
	Debtor            string           `json:"Devedor"`
	PaymentStatus     string           `json:"StatusPagamento"`
	BillingStatus     string           `json:"StatusCobranca"`
	DueDate           *string          `json:"Vencimento"`
	DocumentPath      string           `json:"DocumentoPath,omitempty"`
	BillingURL        string           `json:"URLCobranca"`
	Company           string           `json:"Empresa"`
	TenantID          int64            `json:"TenantId"`
}

// PayableFromDomain converts a domain payable to a response.
func PayableFromDomain(p *domain.Payable) *PayableResponse {
	return &PayableResponse{
		ID:                p.ID,
		Description:       p.Description,
		BillingType:       p.BillingType,
		BillingID:         p.BillingID,
		BillingTag:        p.BillingTag,
		Creditor:          p.Creditor,
		CreditorType:      p.CreditorType,
		OriginalAmount:    p.OriginalAmount,
		PaymentType:       string(p.PaymentType),
		Installments:      p.Installments,
		Discount:          p.Discount,
		Surcharge:         p.Surcharge,
		FinalAmount:       p.FinalAmount,
		DebtorExecutiveID: p.DebtorExecutiveID,
		Debtor:            p.Debtor,
		PaymentStatus:     p.PaymentStatus,
		BillingStatus:     p.BillingStatus,
		DueDate:           formatDate(p.DueDate),
		DocumentPath:      p.DocumentPath,
		BillingURL:        p.BillingURL,
		Company:           p.Company,
		TenantID:          p.TenantID,
	}
}

// PayablesFromDomain converts domain payables to responses.
func PayablesFromDomain(payables []*domain.Payable) []*PayableResponse {
	result := make([]*PayableResponse, len(payables))
	for i, p := range payables {
		result[i] = PayableFromDomain(p)
	}
	return result
}

// SummaryTotalsResponse mirrors the dashboard totals block.
type SummaryTotalsResponse struct {
	OpenAmount        decimal.Decimal `json:"abertoValor"`
	OpenCount         int             `json:"abertoQtd"`
	OverdueAmount     decimal.Decimal `json:"vencidasValor"`
	OverdueCount      int             `json:"vencidasQtd"`
	InstallmentAmount decimal.Decimal `json:"parceladasValor"`
	InstallmentCount  int             `json:"parceladasQtd"`
	PaidAmount        decimal.Decimal `json:"pagoValor"`
	PaidCount         int             `json:"pagoQtd"`
	TotalAmount       decimal.Decimal `json:"totalValor"`
	TotalCount        int             `json:"totalQtd"`
}

// CategoryTotalResponse is one grouped slice of the summary.
type CategoryTotalResponse struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// ExecutiveSeriesResponse is one stacked series of the per-executive chart.
type ExecutiveSeriesResponse struct {
	Name   string            `json:"name"`
	Values []decimal.Decimal `json:"values"`
}

// ExecutiveChartResponse carries the per-executive stacked chart data.
type ExecutiveChartResponse struct {
	Categories []string                  `json:"categories"`
	Series     []ExecutiveSeriesResponse `json:"series"`
}

// SummaryResponse is the financial dashboard payload.
type SummaryResponse struct {
	Totals         SummaryTotalsResponse   `json:"totals"`
	ByPaymentType  []CategoryTotalResponse `json:"byTipoPagamento"`
	ByBillingType  []CategoryTotalResponse `json:"byTipoCobranca"`
	Executives     ExecutiveChartResponse  `json:"seriesExecutivos"`
	TimelineLabels []string                `json:"timelineLabels"`
	TimelineValues []decimal.Decimal       `json:"timelineValues"`
}

// SummaryFromDomain converts a domain summary to a response.
func SummaryFromDomain(s *domain.Summary) *SummaryResponse {
	resp := &SummaryResponse{
		Totals: SummaryTotalsResponse{
			OpenAmount:        s.Totals.OpenAmount,
			OpenCount:         s.Totals.OpenCount,
			OverdueAmount:     s.Totals.OverdueAmount,
			OverdueCount:      s.Totals.OverdueCount,
			InstallmentAmount: s.Totals.InstallmentAmount,
			InstallmentCount:  s.Totals.InstallmentCount,
			PaidAmount:        s.Totals.PaidAmount,
			PaidCount:         s.Totals.PaidCount,
			TotalAmount:       s.Totals.TotalAmount,
			TotalCount:        s.Totals.TotalCount,
		},
		ByPaymentType:  make([]CategoryTotalResponse, 0, len(s.ByPaymentType)),
		ByBillingType:  make([]CategoryTotalResponse, 0, len(s.ByBillingType)),
		Executives:     executiveChart(s.Executives),
		TimelineLabels: make([]string, 0, len(s.Timeline)),
		TimelineValues: make([]decimal.Decimal, 0, len(s.Timeline)),
	}
	for _, c := range s.ByPaymentType {
		resp.ByPaymentType = append(resp.ByPaymentType, CategoryTotalResponse{Name: c.Name, Value: c.Amount})
	}
	for _, c := range s.ByBillingType {
		resp.ByBillingType = append(resp.ByBillingType, CategoryTotalResponse{Name: c.Name, Value: c.Amount})
	}
	for _, p := range s.Timeline {
		resp.TimelineLabels = append(resp.TimelineLabels, p.Label)
		resp.TimelineValues = append(resp.TimelineValues, p.Amount)
	}
	return resp
}

func executiveChart(rows []domain.ExecutiveBreakdown) ExecutiveChartResponse {
	chart := ExecutiveChartResponse{
		Categories: make([]string, 0, len(rows)),
		Series: []ExecutiveSeriesResponse{
			{Name: "Aberto", Values: make([]decimal.Decimal, 0, len(rows))},
			{Name: "Vencido", Values: make([]decimal.Decimal, 0, len(rows))},
			{Name: "Em Andamento", Values: make([]decimal.Decimal, 0, len(rows))},
			{Name: "Pago", Values: make([]decimal.Decimal, 0, len(rows))},
		},
	}
	for _, row := range rows {
		chart.Categories = append(chart.Categories, row.Name)
		chart.Series[0].Values = append(chart.Series[0].Values, row.Open)
		chart.Series[1].Values = append(chart.Series[1].Values, row.Overdue)
		chart.Series[2].Values = append(chart.Series[2].Values, row.Partial)
		chart.Series[3].Values = append(chart.Series[3].Values, row.Paid)
	}
	return chart
}

// TenantResponse represents a tenant in API responses.
type TenantResponse struct {
	ID        int64     `json:"IdTenant"`
	Name      string    `json:"Tenant"`
	Slug      string    `json:"Slug"`
	Registrar string    `json:"Cadastrante"`
	CreatedAt time.Time `json:"DataCriacao"`
	UpdatedAt time.Time `json:"DataUpdate"`
}

// TenantFromDomain converts a domain tenant to a response.
func TenantFromDomain(t *domain.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Slug:      t.Slug,
		Registrar: t.Registrar,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// TenantsFromDomain converts domain tenants to responses.
func TenantsFromDomain(tenants []*domain.Tenant) []*TenantResponse {
	result := make([]*TenantResponse, len(tenants))
	for i, t := range tenants {
		result[i] = TenantFromDomain(t)
	}
	return result
}

// UserResponse represents a user in API responses. The password hash never
// leaves the server.
type UserResponse struct {
	ID         int64  `json:"IdUsuario"`
	Username   string `json:"Usuario"`
	TenantID   int64  `json:"TenantId"`
	Role       string `json:"Role"`
	Name       string `json:"Nome"`
	JobTitle   string `json:"Funcao"`
	Profile    string `json:"Perfil"`
	Permission string `json:"Permissao"`
	Phone      string `json:"Celular"`
	Email      string `json:"Email"`
	Active     bool   `json:"Ativo"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		TenantID:   u.TenantID,
		Role:       string(u.Role),
		Name:       u.Name,
		JobTitle:   u.JobTitle,
		Profile:    u.Profile,
		Permission: u.Permission,
		Phone:      u.Phone,
		Email:      u.Email,
		Active:     u.Active,
	}
}

// UsersFromDomain converts domain users to responses.
func UsersFromDomain(users []*domain.User) []*UserResponse {
	result := make([]*UserResponse, len(users))
	for i, u := range users {
		result[i] = UserFromDomain(u)
	}
	return result
}

// ExecutiveResponse represents an executive in API responses.
type ExecutiveResponse struct {
	ID       int64  `json:"IdExecutivo"`
	Name     string `json:"Executivo"`
	JobTitle string `json:"Funcao"`
	Profile  string `json:"Perfil"`
	Company  string `json:"Empresa"`
	TenantID int64  `json:"TenantId"`
}

// ExecutiveFromDomain converts a domain executive to a response.
func ExecutiveFromDomain(e *domain.Executive) *ExecutiveResponse {
	return &ExecutiveResponse{
		ID:       e.ID,
		Name:     e.Name,
		JobTitle: e.JobTitle,
		Profile:  e.Profile,
		Company:  e.Company,
		TenantID: e.TenantID,
	}
}

// ExecutivesFromDomain converts domain executives to responses.
func ExecutivesFromDomain(executives []*domain.Executive) []*ExecutiveResponse {
	result := make([]*ExecutiveResponse, len(executives))
	for i, e := range executives {
		result[i] = ExecutiveFromDomain(e)
	}
	return result
}

// PersonResponse represents a PF/PJ record in API responses.
type PersonResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"tipo"`
	Name      string    `json:"Nome"`
	Document  string    `json:"Documento"`
	Email     string    `json:"Email"`
	Phone     string    `json:"Celular"`
	City      string    `json:"Cidade"`
	State     string    `json:"UF"`
	CreatedAt time.Time `json:"DataCriacao"`
	UpdatedAt time.Time `json:"DataUpdate"`
}

// PersonFromDomain converts a domain person to a response.
func PersonFromDomain(p *domain.Person) *PersonResponse {
	return &PersonResponse{
		ID:        p.ID,
		Kind:      string(p.Kind),
		Name:      p.Name,
		Document:  p.Document,
		Email:     p.Email,
		Phone:     p.Phone,
		City:      p.City,
		State:     p.State,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PersonsFromDomain converts domain persons to responses.
func PersonsFromDomain(persons []*domain.Person) []*PersonResponse {
	result := make([]*PersonResponse, len(persons))
	for i, p := range persons {
		result[i] = PersonFromDomain(p)
	}
	return result
}

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID             int64            `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Status         string           `json:"status"`
	Priority       string           `json:"priority"`
	DueDate        *string          `json:"due_date"`
	EstimatedHours *decimal.Decimal `json:"estimated_hours"`
	ActualHours    *decimal.Decimal `json:"actual_hours"`
	AssigneeID     *int64           `json:"assignee_id"`
	CreatedByID    int64            `json:"created_by_id"`
	MeetingID      *int64           `json:"meeting_id"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// TaskFromDomain converts a domain task to a response.
func TaskFromDomain(t *domain.Task) *TaskResponse {
	return &TaskResponse{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Status:         string(t.Status),
		Priority:       string(t.Priority),
		DueDate:        formatDate(t.DueDate),
		EstimatedHours: t.EstimatedHours,
		ActualHours:    t.ActualHours,
		AssigneeID:     t.AssigneeID,
		CreatedByID:    t.CreatedByID,
		MeetingID:      t.MeetingID,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// TasksFromDomain converts domain tasks to responses.
func TasksFromDomain(tasks []*domain.Task) []*TaskResponse {
	result := make([]*TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = TaskFromDomain(t)
	}
	return result
}

// MeetingResponse represents a meeting in API responses.
type MeetingResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Location    string    `json:"location"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	ExecutiveID *int64    `json:"executive_id"`
	OrganizerID int64     `json:"organizer_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MeetingFromDomain converts a domain meeting to a response.
func MeetingFromDomain(m *domain.Meeting) *MeetingResponse {
	return &MeetingResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		Location:    m.Location,
		Priority:    string(m.Priority),
		Status:      string(m.Status),
		ExecutiveID: m.ExecutiveID,
		OrganizerID: m.OrganizerID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// MeetingsFromDomain converts domain meetings to responses.
func MeetingsFromDomain(meetings []*domain.Meeting) []*MeetingResponse {
	result := make([]*MeetingResponse, len(meetings))
	for i, m := range meetings {
		result[i] = MeetingFromDomain(m)
	}
	return result
}

// NotificationResponse represents a notification in API responses.
type NotificationResponse struct {
	ID        string     `json:"id"`
	Channel   string     `json:"channel"`
	Recipient string     `json:"destinatario"`
	Subject   string     `json:"assunto"`
	Status    string     `json:"status"`
	Error     string     `json:"error,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
}

// NotificationFromDomain converts a domain notification to a response.
func NotificationFromDomain(n *domain.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		Channel:   string(n.Channel),
		Recipient: n.Recipient,
		Subject:   n.Subject,
		Status:    string(n.Status),
		Error:     n.Error,
		CreatedAt: n.CreatedAt,
		SentAt:    n.SentAt,
	}
}

// NotificationsFromDomain converts domain notifications to responses.
func NotificationsFromDomain(notifications []*domain.Notification) []*NotificationResponse {
	result := make([]*NotificationResponse, len(notifications))
	for i, n := range notifications {
		result[i] = NotificationFromDomain(n)
	}
	return result
}

// ExportResponse represents an export job in API responses.
type ExportResponse struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Filters   map[string]any `json:"filters,omitempty"`
	Progress  float64        `json:"progress"`
	FileURL   *string        `json:"file_url,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// ExportFromDomain converts a domain export to a response.
func ExportFromDomain(e *domain.Export) *ExportResponse {
	return &ExportResponse{
		ID:        e.ID,
		Type:      e.Type,
		Filters:   e.Filters,
		Progress:  e.Progress,
		FileURL:   e.FileURL,
		CreatedAt: e.CreatedAt,
	}
}

// ExportsFromDomain converts domain exports to responses.
func ExportsFromDomain(exports []*domain.Export) []*ExportResponse {
	result := make([]*ExportResponse, len(exports))
	for i, e := range exports {
		result[i] = ExportFromDomain(e)
	}
	return result
}

// DepartmentResponse represents a department in API responses.
type DepartmentResponse struct {
	ID           int64     `json:"IdDepartamento"`
	Tenant       string    `json:"Tenant"`
	Name         string    `json:"Departamento"`
	Description  string    `json:"Descricao"`
	Registrar    string    `json:"Cadastrante"`
	RegisteredAt time.Time `json:"DataCadastro"`
}

// DepartmentFromDomain converts a domain department to a response.
func DepartmentFromDomain(d *domain.Department) *DepartmentResponse {
	return &DepartmentResponse{
		ID:           d.ID,
		Tenant:       d.Tenant,
		Name:         d.Name,
		Description:  d.Description,
		Registrar:    d.Registrar,
		RegisteredAt: d.RegisteredAt,
	}
}

// DepartmentsFromDomain converts domain departments to responses.
func DepartmentsFromDomain(departments []*domain.Department) []*DepartmentResponse {
	result := make([]*DepartmentResponse, len(departments))
	for i, d := range departments {
		result[i] = DepartmentFromDomain(d)
	}
	return result
}

// JobRoleResponse represents a job role in API responses.
type JobRoleResponse struct {
	ID           int64     `json:"IdFuncao"`
	Tenant       string    `json:"Tenant"`
	Name         string    `json:"Funcao"`
	Description  string    `json:"Descricao"`
	Department   string    `json:"Departamento"`
	Registrar    string    `json:"Cadastrante"`
	RegisteredAt time.Time `json:"DataCadastro"`
}

// JobRoleFromDomain converts a domain job role to a response.
func JobRoleFromDomain(j *domain.JobRole) *JobRoleResponse {
	return &JobRoleResponse{
		ID:           j.ID,
		Tenant:       j.Tenant,
		Name:         j.Name,
		Description:  j.Description,
		Department:   j.Department,
		Registrar:    j.Registrar,
		RegisteredAt: j.RegisteredAt,
	}
}

// JobRolesFromDomain converts domain job roles to responses.
func JobRolesFromDomain(roles []*domain.JobRole) []*JobRoleResponse {
	result := make([]*JobRoleResponse, len(roles))
	for i, j := range roles {
		result[i] = JobRoleFromDomain(j)
	}
	return result
}

// CollaboratorResponse represents a collaborator in API responses.
type CollaboratorResponse struct {
	ID           int64     `json:"IdColaborador"`
	Tenant       string    `json:"Tenant"`
	Name         string    `json:"Colaborador"`
	Description  string    `json:"Descricao"`
	JobRole      string    `json:"Funcao"`
	Registrar    string    `json:"Cadastrante"`
	RegisteredAt time.Time `json:"DataCadastro"`
}

// CollaboratorFromDomain converts a domain collaborator to a response.
func CollaboratorFromDomain(c *domain.Collaborator) *CollaboratorResponse {
	return &CollaboratorResponse{
		ID:           c.ID,
		Tenant:       c.Tenant,
		Name:         c.Name,
		Description:  c.Description,
		JobRole:      c.JobRole,
		Registrar:    c.Registrar,
		RegisteredAt: c.RegisteredAt,
	}
}

// CollaboratorsFromDomain converts domain collaborators to responses.
func CollaboratorsFromDomain(collaborators []*domain.Collaborator) []*CollaboratorResponse {
	result := make([]*CollaboratorResponse, len(collaborators))
	for i, c := range collaborators {
		result[i] = CollaboratorFromDomain(c)
	}
	return result
}

// AssetResponse represents an asset in API responses.
type AssetResponse struct {
	ID           int64  `json:"IdAtivo"`
	Tenant       string `json:"Tenant"`
	Name         string `json:"Ativo"`
	InternalCode string `json:"CodigoInternoAtivo"`
	Plate        string `json:"Placa"`
	City         string `json:"Cidade"`
	State        string `json:"UF"`
	CostCenter   string `json:"CentroCusto"`
	Owner        string `json:"Proprietario"`
	Responsible  string `json:"Responsavel"`
	AssignedTo   string `json:"Atribuido"`
	Company      string `json:"Empresa"`
}

// AssetFromDomain converts a domain asset to a response.
func AssetFromDomain(a *domain.Asset) *AssetResponse {
	return &AssetResponse{
		ID:           a.ID,
		Tenant:       a.Tenant,
		Name:         a.Name,
		InternalCode: a.InternalCode,
		Plate:        a.Plate,
		City:         a.City,
		State:        a.State,
		CostCenter:   a.CostCenter,
		Owner:        a.Owner,
		Responsible:  a.Responsible,
		AssignedTo:   a.AssignedTo,
		Company:      a.Company,
	}
}

// AssetsFromDomain converts domain assets to responses.
func AssetsFromDomain(assets []*domain.Asset) []*AssetResponse {
	result := make([]*AssetResponse, len(assets))
	for i, a := range assets {
		result[i] = AssetFromDomain(a)
	}
	return result
}

// CostCenterResponse represents a cost center in API responses.
type CostCenterResponse struct {
	ID           int64  `json:"IdCentroCusto"`
	Tenant       string `json:"Tenant"`
	InternalCode string `json:"CodigoInterno"`
	Class        string `json:"Classe"`
	Name         string `json:"Nome"`
	City         string `json:"Cidade"`
	State        string `json:"UF"`
	Company      string `json:"Empresa"`
	Department   string `json:"Departamento"`
	Responsible  string `json:"Responsavel"`
}

// CostCenterFromDomain converts a domain cost center to a response.
func CostCenterFromDomain(c *domain.CostCenter) *CostCenterResponse {
	return &CostCenterResponse{
		ID:           c.ID,
		Tenant:       c.Tenant,
		InternalCode: c.InternalCode,
		Class:        c.Class,
		Name:         c.Name,
		City:         c.City,
		State:        c.State,
		Company:      c.Company,
		Department:   c.Department,
		Responsible:  c.Responsible,
	}
}

// CostCentersFromDomain converts domain cost centers to responses.
func CostCentersFromDomain(centers []*domain.CostCenter) []*CostCenterResponse {
	result := make([]*CostCenterResponse, len(centers))
	for i, c := range centers {
		result[i] = CostCenterFromDomain(c)
	}
	return result
}

// DocumentURLResponse carries a presigned download link.
type DocumentURLResponse struct {
	URL string `json:"url"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
