package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/execsec/backoffice/internal/domain"
	"github.com/execsec/backoffice/internal/usecase"
)

type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PayableRepository implements usecase.PayableRepository.
type PayableRepository struct {
	pool pgxQuerier
}

// NewPayableRepository creates a new PayableRepository.
func NewPayableRepository(pool *pgxpool.Pool) *PayableRepository {
	return newPayableRepositoryWithPool(pool)
}

func newPayableRepositoryWithPool(pool pgxQuerier) *PayableRepository {
	return &PayableRepository{pool: pool}
}

const payableColumns = `
	p.id, p.tenant_id, t.name, p.description, p.billing_type, p.billing_id, p.billing_tag,
	p.creditor, p.creditor_type, p.original_amount, p.payment_type, p.installments,
	p.discount, p.surcharge, p.final_amount, p.debtor_executive_id, p.debtor,
	p.payment_status, p.billing_status, p.due_date, p.document_path, p.billing_url,
	p.company, p.created_at, p.updated_at
`

// Create inserts a payable.
func (r *PayableRepository) Create(ctx context.Context, payable *domain.Payable) error {
	query := `
		INSERT INTO payables (
			tenant_id, description, billing_type, billing_id, billing_tag,
			creditor, creditor_type, original_amount, payment_type, installments,
			discount, surcharge, final_amount, debtor_executive_id, debtor,
			payment_status, billing_status, due_date, document_path, billing_url,
			company, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		          $16, $17, $18, $19, $20, $21, $22, $23)
		RETURNING id
	`

	return r.pool.QueryRow(ctx, query,
		payable.TenantID,
		payable.Description,
		payable.BillingType,
		payable.BillingID,
		payable.BillingTag,
		payable.Creditor,
		payable.CreditorType,
		decimalPtrToNumeric(payable.OriginalAmount),
		payable.PaymentType,
		payable.Installments,
		decimalPtrToNumeric(payable.Discount),
		decimalPtrToNumeric(payable.Surcharge),
		decimalPtrToNumeric(payable.FinalAmount),
		payable.DebtorExecutiveID,
		payable.Debtor,
		payable.PaymentStatus,
		payable.BillingStatus,
		timePtrToDate(payable.DueDate),
		payable.DocumentPath,
		payable.BillingURL,
		payable.Company,
		payable.CreatedAt,
		payable.UpdatedAt,
	).Scan(&payable.ID)
}

// GetByID retrieves a payable by ID within a tenant.
func (r *PayableRepository) GetByID(ctx context.Context, tenantID, id int64) (*domain.Payable, error) {
	query := `
		SELECT ` + payableColumns + `
		FROM payables p
		JOIN tenants t ON t.id = p.tenant_id
		WHERE p.tenant_id = $1 AND p.id = $2
	`

	payable, err := scanPayable(r.pool.QueryRow(ctx, query, tenantID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPayableNotFound
	}
	return payable, err
}

// List retrieves payables matching the filter with pagination.
func (r *PayableRepository) List(ctx context.Context, tenantID int64, filter domain.PayableFilter, limit, offset int) ([]*domain.Payable, error) {
	query := `
		SELECT ` + payableColumns + `
		FROM payables p
		JOIN tenants t ON t.id = p.tenant_id
		WHERE p.tenant_id = $1
	`
	args := []any{tenantID}

	if filter.Debtor != "" {
		args = append(args, filter.Debtor)
		query += fmt.Sprintf(" AND btrim(p.debtor) = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, domain.NormalizePaymentStatus(filter.Status))
		query += fmt.Sprintf(" AND upper(btrim(p.payment_status)) = $%d", len(args))
	}
	if filter.BillingType != "" {
		args = append(args, filter.BillingType)
		query += fmt.Sprintf(" AND btrim(p.billing_type) = $%d", len(args))
	}
	if filter.Creditor != "" {
		args = append(args, filter.Creditor)
		query += fmt.Sprintf(" AND btrim(p.creditor) = $%d", len(args))
	}
	if filter.CreditorType != "" {
		args = append(args, filter.CreditorType)
		query += fmt.Sprintf(" AND btrim(p.creditor_type) = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND p.due_date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND p.due_date <= $%d", len(args))
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayables(rows)
}

// ListAll retrieves every payable of a tenant, ordered by insertion.
func (r *PayableRepository) ListAll(ctx context.Context, tenantID int64) ([]*domain.Payable, error) {
	query := `
		SELECT ` + payableColumns + `
		FROM payables p
		JOIN tenants t ON t.id = p.tenant_id
		WHERE p.tenant_id = $1
		ORDER BY p.id
	`

	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayables(rows)
}

// Update replaces a payable's writable fields.
func (r *PayableRepository) Update(ctx context.Context, payable *domain.Payable) error {
	query := `
		UPDATE payables SET
			description = $3, billing_type = $4, billing_id = $5, billing_tag = $6,
			creditor = $7, creditor_type = $8, original_amount = $9, payment_type = $10,
			installments = $11, discount = $12, surcharge = $13, final_amount = $14,
			debtor_executive_id = $15, debtor = $16, payment_status = $17,
			billing_status = $18, due_date = $19, document_path = $20,
			billing_url = $21, company = $22, updated_at = $23
		WHERE tenant_id = $1 AND id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		payable.TenantID,
		payable.ID,
		payable.Description,
		payable.BillingType,
		payable.BillingID,
		payable.BillingTag,
		payable.Creditor,
		payable.CreditorType,
		decimalPtrToNumeric(payable.OriginalAmount),
		payable.PaymentType,
		payable.Installments,
		decimalPtrToNumeric(payable.Discount),
		decimalPtrToNumeric(payable.Surcharge),
		decimalPtrToNumeric(payable.FinalAmount),
		payable.DebtorExecutiveID,
		payable.Debtor,
		payable.PaymentStatus,
		payable.BillingStatus,
		timePtrToDate(payable.DueDate),
		payable.DocumentPath,
		payable.BillingURL,
		payable.Company,
		payable.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPayableNotFound
	}
	return nil
}

// Delete removes a payable.
func (r *PayableRepository) Delete(ctx context.Context, tenantID, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM payables WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPayableNotFound
	}
	return nil
}

// DeleteByTenant removes every payable of a tenant inside a transaction.
func (r *PayableRepository) DeleteByTenant(ctx context.Context, tx usecase.Transaction, tenantID int64) error {
	pgxTx := tx.(*Tx).PgxTx()
	_, err := pgxTx.Exec(ctx, `DELETE FROM payables WHERE tenant_id = $1`, tenantID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPayable(row rowScanner) (*domain.Payable, error) {
	var (
		p                                    domain.Payable
		original, discount, surcharge, final pgtype.Numeric
		dueDate                              pgtype.Date
	)
	err := row.Scan(
		&p.ID,
		&p.TenantID,
		&p.Tenant,
		&p.Description,
		&p.BillingType,
		&p.BillingID,
		&p.BillingTag,
		&p.Creditor,
		&p.CreditorType,
		&original,
		&p.PaymentType,
		&p.Installments,
		&discount,
		&surcharge,
		&final,
		&p.DebtorExecutiveID,
		&p.Debtor,
		&p.PaymentStatus,
		&p.BillingStatus,
		&dueDate,
		&p.DocumentPath,
		&p.BillingURL,
		&p.Company,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.OriginalAmount = numericToDecimalPtr(original)
	p.Discount = numericToDecimalPtr(discount)
	p.Surcharge = numericToDecimalPtr(surcharge)
	p.FinalAmount = numericToDecimalPtr(final)
	if dueDate.Valid {
		// pgtype.Date carries UTC midnight; the rollup compares against
		// local midnight, so the calendar day is re-anchored locally.
		y, m, d := dueDate.Time.Date()
		due := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
		p.DueDate = &due
	}
	return &p, nil
}

func scanPayables(rows pgx.Rows) ([]*domain.Payable, error) {
	var payables []*domain.Payable
	for rows.Next() {
		p, err := scanPayable(rows)
		if err != nil {
			return nil, err
		}
		payables = append(payables, p)
	}
	return payables, rows.Err()
}

// Type conversion helpers.
func decimalPtrToNumeric(d *decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric
	if d == nil {
		return n
	}
	_ = n.Scan(d.String())
	return n
}

func numericToDecimalPtr(n pgtype.Numeric) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}
	return &d
}

func timePtrToDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}
