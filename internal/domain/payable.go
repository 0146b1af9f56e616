package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType classifies how a payable is settled.
type PaymentType string

const (
	PaymentSingle      PaymentType = "COTA_UNICA"
	PaymentInstallment PaymentType = "PARCELAS"
)

// Payment status values carried on the wire. Anything that is not PAGO and
// does not contain PARCIAL is treated as open for categorization.
const (
	StatusOpen    = "ABERTO"
	StatusPaid    = "PAGO"
	StatusPartial = "PARCIAL"
)

// Payable is an accounts-payable record (conta a pagar).
type Payable struct {
	ID                int64
	TenantID          int64
	Tenant            string
	Description       string
	BillingType       string
	BillingID         string
	BillingTag        string
	Creditor          string
	CreditorType      string
	OriginalAmount    *decimal.Decimal
	PaymentType       PaymentType
	Installments      int
	Discount          *decimal.Decimal
	Surcharge         *decimal.Decimal
	FinalAmount       *decimal.Decimal
	DebtorExecutiveID *int64
	Debtor            string
	PaymentStatus     string
	BillingStatus     string
	DueDate           *time.Time
	DocumentPath      string
	BillingURL        string
	Company           string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NormalizePaymentStatus uppercases and trims a raw status value.
func NormalizePaymentStatus(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// NormalizePaymentType maps the spelling variants accepted on input to the
// two canonical payment types. Unknown values pass through trimmed.
func NormalizePaymentType(value string) PaymentType {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "COTA UNICA", "COTA_UNICA", "COTAÚNICA", "COTA ÚNICA":
		return PaymentSingle
	case "PARCELAS", "PARCELA":
		return PaymentInstallment
	}
	return PaymentType(strings.TrimSpace(value))
}

// Amount resolves the row's amount: FinalAmount, else OriginalAmount, else 0.
func (p *Payable) Amount() decimal.Decimal {
	if p.FinalAmount != nil {
		return *p.FinalAmount
	}
	if p.OriginalAmount != nil {
		return *p.OriginalAmount
	}
	return decimal.Zero
}

// InstallmentCount returns Installments clamped to at least 1.
func (p *Payable) InstallmentCount() int {
	if p.Installments < 1 {
		return 1
	}
	return p.Installments
}

// IsPaid reports whether the payable is fully paid.
func (p *Payable) IsPaid() bool {
	return NormalizePaymentStatus(p.PaymentStatus) == StatusPaid
}

// IsOpen reports whether the payable status is exactly ABERTO.
func (p *Payable) IsOpen() bool {
	return NormalizePaymentStatus(p.PaymentStatus) == StatusOpen
}

// IsPartial reports whether the payable is partially paid.
func (p *Payable) IsPartial() bool {
	return strings.Contains(NormalizePaymentStatus(p.PaymentStatus), StatusPartial)
}

// IsOverdue reports whether the due date is strictly before today and the
// payable is not fully paid. Rows without a due date are never overdue.
func (p *Payable) IsOverdue(today time.Time) bool {
	if p.DueDate == nil || p.IsPaid() {
		return false
	}
	return p.DueDate.Before(today)
}

// FutureInstallments projects how many of the payable's installments are not
// yet due as of today. Installment i falls due i calendar months after the
// recorded due date, day-of-month clamped to the target month. The scan
// short-circuits at the first installment that is not yet due; installment
// dates are monotonically increasing. A payable with no due date counts all
// installments as future.
func (p *Payable) FutureInstallments(today time.Time) int {
	n := p.InstallmentCount()
	if p.DueDate == nil {
		return n
	}
	due := 0
	for i := 0; i < n; i++ {
		if AddMonthsClamped(*p.DueDate, i).Before(today) {
			due++
		} else {
			break
		}
	}
	if future := n - due; future > 0 {
		return future
	}
	return 0
}

// ComputeFinalAmount derives the settlement amount from the original amount,
// discount and surcharge: max(0, original - discount + surcharge), divided by
// the installment count when paying in more than one installment (the stored
// final amount is a per-installment value). Returns nil when the original
// amount is unknown.
func ComputeFinalAmount(original, discount, surcharge *decimal.Decimal, installments int) *decimal.Decimal {
	if original == nil {
		return nil
	}
	if installments < 1 {
		installments = 1
	}
	total := *original
	if discount != nil {
		total = total.Sub(*discount)
	}
	if surcharge != nil {
		total = total.Add(*surcharge)
	}
	if total.IsNegative() {
		total = decimal.Zero
	}
	if installments > 1 {
		total = total.Div(decimal.NewFromInt(int64(installments))).Round(2)
	}
	return &total
}
