package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/execsec/backoffice/internal/domain"
	"github.com/execsec/backoffice/internal/usecase"
)

// LoginRequest represents a login request. Tenant selects the company scope
// the session will operate on.
type LoginRequest struct {
	Tenant   string `json:"tenant"`
	Username string `json:"usuario"`
	Password string `json:"senha"`
}

// ToUseCaseInput converts to use case input.
func (r *LoginRequest) ToUseCaseInput() usecase.LoginInput {
	return usecase.LoginInput{
		TenantSlug: r.Tenant,
		Username:   r.Username,
		Password:   r.Password,
	}
}

// PayableRequest carries the writable fields of a payable, using the wire
// names of the legacy API.
type PayableRequest struct {
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
	DueDate           *string          `json:"Vencimento"` // YYYY-MM-DD
	BillingURL        string           `json:"URLCobranca"`
	Company           string           `json:"Empresa"`
}

// ToUseCaseInput converts to use case input. An unparseable due date is
// carried as nil, matching the tolerant legacy behaviour.
func (r *PayableRequest) ToUseCaseInput() usecase.PayableInput {
	return usecase.PayableInput{
		Description:       r.Description,
		BillingType:       r.BillingType,
		BillingID:         r.BillingID,
		BillingTag:        r.BillingTag,
		Creditor:          r.Creditor,
		CreditorType:      r.CreditorType,
		OriginalAmount:    r.OriginalAmount,
		PaymentType:       r.PaymentType,
		Installments:      r.Installments,
		Discount:          r.Discount,
		Surcharge:         r.Surcharge,
		FinalAmount:       r.FinalAmount,
		DebtorExecutiveID: r.DebtorExecutiveID,
		Debtor:            r.Debtor,
		PaymentStatus:     r.PaymentStatus,
		BillingStatus:     r.BillingStatus,
		DueDate:           parseDate(r.DueDate),
		BillingURL:        r.BillingURL,
		Company:           r.Company,
	}
}

// ExecutiveRequest carries the writable fields of an executive.
type ExecutiveRequest struct {
	Name     string `json:"Executivo"`
	JobTitle string `json:"Funcao"`
	Profile  string `json:"Perfil"`
	Company  string `json:"Empresa"`
}

// ToUseCaseInput converts to use case input.
func (r *ExecutiveRequest) ToUseCaseInput() usecase.ExecutiveInput {
	return usecase.ExecutiveInput{
		Name:     r.Name,
		JobTitle: r.JobTitle,
		Profile:  r.Profile,
		Company:  r.Company,
	}
}

// CreateTenantRequest represents a request to create a tenant.
type CreateTenantRequest struct {
	Name      string `json:"Tenant"`
	Slug      string `json:"Slug"`
	Registrar string `json:"Cadastrante"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTenantRequest) ToUseCaseInput() usecase.CreateTenantInput {
	return usecase.CreateTenantInput{
		Name:      r.Name,
		Slug:      r.Slug,
		Registrar: r.Registrar,
	}
}

// UpdateTenantRequest renames a tenant; the slug is immutable.
type UpdateTenantRequest struct {
	Name string `json:"Tenant"`
}

// CreateUserRequest represents a request to create a user.
type CreateUserRequest struct {
	Username   string `json:"Usuario"`
	Password   string `json:"Senha"`
	Role       string `json:"Role"`
	Name       string `json:"Nome"`
	JobTitle   string `json:"Funcao"`
	Profile    string `json:"Perfil"`
	Permission string `json:"Permissao"`
	Phone      string `json:"Celular"`
	Email      string `json:"Email"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateUserRequest) ToUseCaseInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Username:   r.Username,
		Password:   r.Password,
		Role:       r.Role,
		Name:       r.Name,
		JobTitle:   r.JobTitle,
		Profile:    r.Profile,
		Permission: r.Permission,
		Phone:      r.Phone,
		Email:      r.Email,
	}
}

// UpdateUserRequest represents a partial user update; nil fields are left
// untouched.
type UpdateUserRequest struct {
	Name       *string `json:"Nome"`
	JobTitle   *string `json:"Funcao"`
	Profile    *string `json:"Perfil"`
	Permission *string `json:"Permissao"`
	Phone      *string `json:"Celular"`
	Email      *string `json:"Email"`
	Role       *string `json:"Role"`
	Active     *bool   `json:"Ativo"`
	Password   *string `json:"Senha"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateUserRequest) ToUseCaseInput() usecase.UpdateUserInput {
	return usecase.UpdateUserInput{
		Name:       r.Name,
		JobTitle:   r.JobTitle,
		Profile:    r.Profile,
		Permission: r.Permission,
		Phone:      r.Phone,
		Email:      r.Email,
		Role:       r.Role,
		Active:     r.Active,
		Password:   r.Password,
	}
}

// PersonRequest carries the writable fields of a PF/PJ record.
type PersonRequest struct {
	Name     string `json:"Nome"`
	Document string `json:"Documento"`
	Email    string `json:"Email"`
	Phone    string `json:"Celular"`
	City     string `json:"Cidade"`
	State    string `json:"UF"`
}

// ToUseCaseInput converts to use case input for the given kind (pf or pj).
func (r *PersonRequest) ToUseCaseInput(kind string) usecase.PersonInput {
	return usecase.PersonInput{
		Kind:     kind,
		Name:     r.Name,
		Document: r.Document,
		Email:    r.Email,
		Phone:    r.Phone,
		City:     r.City,
		State:    r.State,
	}
}

// TaskRequest carries the writable fields of a task.
type TaskRequest struct {
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Status         string           `json:"status"`
	Priority       string           `json:"priority"`
	DueDate        *string          `json:"due_date"` // YYYY-MM-DD
	EstimatedHours *decimal.Decimal `json:"estimated_hours"`
	ActualHours    *decimal.Decimal `json:"actual_hours"`
	AssigneeID     *int64           `json:"assignee_id"`
	MeetingID      *int64           `json:"meeting_id"`
}

// ToUseCaseInput converts to use case input.
func (r *TaskRequest) ToUseCaseInput() usecase.TaskInput {
	return usecase.TaskInput{
		Title:          r.Title,
		Description:    r.Description,
		Status:         r.Status,
		Priority:       r.Priority,
		DueDate:        parseDate(r.DueDate),
		EstimatedHours: r.EstimatedHours,
		ActualHours:    r.ActualHours,
		AssigneeID:     r.AssigneeID,
		MeetingID:      r.MeetingID,
	}
}

// MeetingRequest carries the writable fields of a meeting.
type MeetingRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Location    string    `json:"location"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	ExecutiveID *int64    `json:"executive_id"`
}

// ToUseCaseInput converts to use case input.
func (r *MeetingRequest) ToUseCaseInput() usecase.MeetingInput {
	return usecase.MeetingInput{
		Title:       r.Title,
		Description: r.Description,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Location:    r.Location,
		Priority:    r.Priority,
		Status:      r.Status,
		ExecutiveID: r.ExecutiveID,
	}
}

// DepartmentRequest carries the writable fields of a department.
type DepartmentRequest struct {
	Name        string `json:"Departamento"`
	Description string `json:"Descricao"`
	Registrar   string `json:"Cadastrante"`
}

// JobRoleRequest carries the writable fields of a job role.
type JobRoleRequest struct {
	Name        string `json:"Funcao"`
	Description string `json:"Descricao"`
	Department  string `json:"Departamento"`
	Registrar   string `json:"Cadastrante"`
}

// CollaboratorRequest carries the writable fields of a collaborator.
type CollaboratorRequest struct {
	Name        string `json:"Colaborador"`
	Description string `json:"Descricao"`
	JobRole     string `json:"Funcao"`
	Registrar   string `json:"Cadastrante"`
}

// AssetRequest carries the writable fields of an asset.
type AssetRequest struct {
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

// CostCenterRequest carries the writable fields of a cost center.
type CostCenterRequest struct {
	InternalCode string `json:"CodigoInterno"`
	Class        string `json:"Classe"`
	Name         string `json:"Nome"`
	City         string `json:"Cidade"`
	State        string `json:"UF"`
	Company      string `json:"Empresa"`
	Department   string `json:"Departamento"`
	Responsible  string `json:"Responsavel"`
}

// SendNotificationRequest represents an outbound email request.
type SendNotificationRequest struct {
	Recipient string `json:"destinatario"`
	Subject   string `json:"assunto"`
	Body      string `json:"mensagem"`
}

// ToUseCaseInput converts to use case input.
func (r *SendNotificationRequest) ToUseCaseInput() usecase.SendInput {
	return usecase.SendInput{
		Recipient: r.Recipient,
		Subject:   r.Subject,
		Body:      r.Body,
	}
}

// StartExportRequest selects the columns and filters of an export job.
type StartExportRequest struct {
	Fields       []string `json:"fields"`
	Debtor       string   `json:"devedor"`
	Status       string   `json:"status"`
	BillingType  string   `json:"tipo_cobranca"`
	Creditor     string   `json:"credor"`
	CreditorType string   `json:"tipo_credor"`
	From         *string  `json:"de"`  // YYYY-MM-DD
	To           *string  `json:"ate"` // YYYY-MM-DD
}

// ToFilter converts the export request's filter fields.
func (r *StartExportRequest) ToFilter() domain.PayableFilter {
	return domain.PayableFilter{
		Debtor:       r.Debtor,
		Status:       r.Status,
		BillingType:  r.BillingType,
		Creditor:     r.Creditor,
		CreditorType: r.CreditorType,
		From:         parseDate(r.From),
		To:           parseDate(r.To),
	}
}

func parseDate(value *string) *time.Time {
	if value == nil {
		return nil
	}
	t, ok := domain.ParseDueDate(*value)
	if !ok {
		return nil
	}
	return &t
}
