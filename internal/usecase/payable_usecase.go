package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/execsec/backoffice/internal/domain"
)

// PayableUseCase handles accounts-payable business logic, including the
// dashboard summary rollup.
type PayableUseCase struct {
	payableRepo   PayableRepository
	executiveRepo ExecutiveRepository
	objectStore   ObjectStore
	cache         Cache
	now           func() time.Time
}

// NewPayableUseCase creates a new PayableUseCase.
func NewPayableUseCase(payableRepo PayableRepository, executiveRepo ExecutiveRepository, objectStore ObjectStore, cache Cache) *PayableUseCase {
	return &PayableUseCase{
		payableRepo:   payableRepo,
		executiveRepo: executiveRepo,
		objectStore:   objectStore,
		cache:         cache,
		now:           time.Now,
	}
}

// PayableInput carries the writable fields of a payable.
type PayableInput struct {
	Description       string
	BillingType       string
	BillingID         string
	BillingTag        string
	Creditor          string
	CreditorType      string
	OriginalAmount    *decimal.Decimal
	PaymentType       string
	Installments      int
	Discount          *decimal.Decimal
	Surcharge         *decimal.Decimal
	FinalAmount       *decimal.Decimal
	DebtorExecutiveID *int64
	Debtor            string
	PaymentStatus     string
	BillingStatus     string
	DueDate           *time.Time
	BillingURL        string
	Company           string
}

// CreatePayable records a new payable. When no settlement amount is supplied
// it is derived from the original amount, discount and surcharge; when the
// debtor field is blank and an executive is linked, the executive's name
// fills it in.
func (uc *PayableUseCase) CreatePayable(ctx context.Context, tenantID int64, input PayableInput) (*domain.Payable, error) {
	payable, err := uc.buildPayable(ctx, tenantID, input)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	payable.CreatedAt = now
	payable.UpdatedAt = now

	if err := uc.payableRepo.Create(ctx, payable); err != nil {
		return nil, err
	}
	uc.invalidateSummary(ctx, tenantID)
	return payable, nil
}

// GetPayable retrieves a payable by ID within a tenant.
func (uc *PayableUseCase) GetPayable(ctx context.Context, tenantID, id int64) (*domain.Payable, error) {
	return uc.payableRepo.GetByID(ctx, tenantID, id)
}

// ListPayables lists payables matching the filter with pagination.
func (uc *PayableUseCase) ListPayables(ctx context.Context, tenantID int64, filter domain.PayableFilter, limit, offset int) ([]*domain.Payable, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.payableRepo.List(ctx, tenantID, filter, limit, offset)
}

// UpdatePayable replaces the writable fields of a payable and re-derives the
// settlement amount.
func (uc *PayableUseCase) UpdatePayable(ctx context.Context, tenantID, id int64, input PayableInput) (*domain.Payable, error) {
	existing, err := uc.payableRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	payable, err := uc.buildPayable(ctx, tenantID, input)
	if err != nil {
		return nil, err
	}
	payable.ID = existing.ID
	payable.Tenant = existing.Tenant
	payable.DocumentPath = existing.DocumentPath
	payable.CreatedAt = existing.CreatedAt
	payable.UpdatedAt = uc.now().UTC()

	if err := uc.payableRepo.Update(ctx, payable); err != nil {
		return nil, err
	}
	uc.invalidateSummary(ctx, tenantID)
	return payable, nil
}

// DeletePayable removes a payable and its stored document, if any.
func (uc *PayableUseCase) DeletePayable(ctx context.Context, tenantID, id int64) error {
	existing, err := uc.payableRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if err := uc.payableRepo.Delete(ctx, tenantID, id); err != nil {
		return err
	}
	if existing.DocumentPath != "" && uc.objectStore != nil {
		// Orphaned blobs are harmless; deletion failures are not fatal.
		_ = uc.objectStore.Delete(ctx, existing.DocumentPath)
	}
	uc.invalidateSummary(ctx, tenantID)
	return nil
}

// Summary computes the dashboard rollup for a tenant. Unfiltered summaries
// are served from cache when available.
func (uc *PayableUseCase) Summary(ctx context.Context, tenantID int64, filter domain.PayableFilter) (*domain.Summary, error) {
	key := summaryCacheKey(tenantID)
	if filter.IsZero() && uc.cache != nil {
		if data, err := uc.cache.Get(ctx, key); err == nil && data != nil {
			var cached domain.Summary
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	rows, err := uc.payableRepo.ListAll(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	summary := domain.BuildSummary(filter.Apply(rows), uc.now())

	if filter.IsZero() && uc.cache != nil {
		if data, err := json.Marshal(summary); err == nil {
			_ = uc.cache.Set(ctx, key, data, SummaryCacheTTL)
		}
	}
	return summary, nil
}

// AttachDocument stores an uploaded document blob and links it to the payable.
func (uc *PayableUseCase) AttachDocument(ctx context.Context, tenantID, id int64, filename, contentType string, r io.Reader, size int64) (*domain.Payable, error) {
	payable, err := uc.payableRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("documents/%d/%d/%s", tenantID, id, sanitizeFilename(filename))
	if err := uc.objectStore.Upload(ctx, key, r, size, contentType); err != nil {
		return nil, fmt.Errorf("upload document: %w", err)
	}

	payable.DocumentPath = key
	payable.UpdatedAt = uc.now().UTC()
	if err := uc.payableRepo.Update(ctx, payable); err != nil {
		return nil, err
	}
	return payable, nil
}

// DocumentURL returns a short-lived download link for the payable's document.
func (uc *PayableUseCase) DocumentURL(ctx context.Context, tenantID, id int64) (string, error) {
	payable, err := uc.payableRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return "", err
	}
	if payable.DocumentPath == "" {
		return "", domain.ErrDocumentNotFound
	}
	return uc.objectStore.PresignedURL(ctx, payable.DocumentPath, DocumentURLExpiry)
}

func (uc *PayableUseCase) buildPayable(ctx context.Context, tenantID int64, input PayableInput) (*domain.Payable, error) {
	if err := domain.ValidateAmount(input.OriginalAmount); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.Discount); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.Surcharge); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.FinalAmount); err != nil {
		return nil, err
	}

	paymentType := domain.NormalizePaymentType(input.PaymentType)
	installments := input.Installments
	if paymentType != domain.PaymentInstallment {
		installments = 1
	}
	if installments < 1 {
		installments = 1
	}

	// A client-supplied final amount wins; it is derived only when absent.
	finalAmount := input.FinalAmount
	if finalAmount == nil {
		finalAmount = domain.ComputeFinalAmount(input.OriginalAmount, input.Discount, input.Surcharge, installments)
	}

	debtor := strings.TrimSpace(input.Debtor)
	if debtor == "" && input.DebtorExecutiveID != nil {
		executive, err := uc.executiveRepo.GetByID(ctx, tenantID, *input.DebtorExecutiveID)
		if err != nil {
			return nil, err
		}
		debtor = executive.Name
	}

	return &domain.Payable{
		TenantID:          tenantID,
		Description:       strings.TrimSpace(input.Description),
		BillingType:       strings.TrimSpace(input.BillingType),
		BillingID:         strings.TrimSpace(input.BillingID),
		BillingTag:        strings.TrimSpace(input.BillingTag),
		Creditor:          strings.TrimSpace(input.Creditor),
		CreditorType:      strings.TrimSpace(input.CreditorType),
		OriginalAmount:    input.OriginalAmount,
		PaymentType:       paymentType,
		Installments:      installments,
		Discount:          input.Discount,
		Surcharge:         input.Surcharge,
		FinalAmount:       finalAmount,
		DebtorExecutiveID: input.DebtorExecutiveID,
		Debtor:            debtor,
		PaymentStatus:     domain.NormalizePaymentStatus(input.PaymentStatus),
		BillingStatus:     strings.TrimSpace(input.BillingStatus),
		DueDate:           input.DueDate,
		BillingURL:        strings.TrimSpace(input.BillingURL),
		Company:           strings.TrimSpace(input.Company),
	}, nil
}

func (uc *PayableUseCase) invalidateSummary(ctx context.Context, tenantID int64) {
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, summaryCacheKey(tenantID))
	}
}

func summaryCacheKey(tenantID int64) string {
	return fmt.Sprintf("summary:%d", tenantID)
}

func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "document"
	}
	return name
}
