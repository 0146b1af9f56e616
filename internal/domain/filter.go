package domain

import (
	"strings"
	"time"
)

// PayableFilter narrows a payable set for list and summary views. Zero
// values mean "no constraint". String matches mirror the dashboard filters:
// debtor, creditor and billing type compare trimmed values, status compares
// normalized values.
type PayableFilter struct {
	Debtor       string
	Status       string
	BillingType  string
	Creditor     string
	CreditorType string
	From         *time.Time
	To           *time.Time
}

// IsZero reports whether the filter constrains anything.
func (f PayableFilter) IsZero() bool {
	return f.Debtor == "" && f.Status == "" && f.BillingType == "" &&
		f.Creditor == "" && f.CreditorType == "" && f.From == nil && f.To == nil
}

// Match reports whether a payable satisfies every set constraint. Rows
// without a due date are excluded when a date range is set.
func (f PayableFilter) Match(p *Payable) bool {
	if f.Debtor != "" && strings.TrimSpace(p.Debtor) != f.Debtor {
		return false
	}
	if f.Status != "" && NormalizePaymentStatus(p.PaymentStatus) != NormalizePaymentStatus(f.Status) {
		return false
	}
	if f.BillingType != "" && strings.TrimSpace(p.BillingType) != f.BillingType {
		return false
	}
	if f.Creditor != "" && strings.TrimSpace(p.Creditor) != f.Creditor {
		return false
	}
	if f.CreditorType != "" && strings.TrimSpace(p.CreditorType) != f.CreditorType {
		return false
	}
	if f.From != nil || f.To != nil {
		if p.DueDate == nil {
			return false
		}
		if f.From != nil && p.DueDate.Before(Midnight(*f.From)) {
			return false
		}
		if f.To != nil && !p.DueDate.Before(Midnight(*f.To).AddDate(0, 0, 1)) {
			return false
		}
	}
	return true
}

// Apply returns the rows matching the filter, preserving order.
func (f PayableFilter) Apply(rows []*Payable) []*Payable {
	if f.IsZero() {
		return rows
	}
	out := make([]*Payable, 0, len(rows))
	for _, r := range rows {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
