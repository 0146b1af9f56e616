package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// UnspecifiedLabel is the bucket label for rows missing a grouping field.
// It is excluded from grouped outputs.
const UnspecifiedLabel = "NÃO INFORMADO"

// timelineLimit caps the due-date series at the most recent distinct dates.
const timelineLimit = 14

// executiveLimit caps the per-executive breakdown.
const executiveLimit = 10

// SummaryTotals aggregates payable amounts and counts by category.
type SummaryTotals struct {
	OpenAmount        decimal.Decimal
	OpenCount         int
	OverdueAmount     decimal.Decimal
	OverdueCount      int
	InstallmentAmount decimal.Decimal
	InstallmentCount  int
	PaidAmount        decimal.Decimal
	PaidCount         int
	TotalAmount       decimal.Decimal
	TotalCount        int
}

// CategoryTotal is a grouped amount keyed by a normalized label.
type CategoryTotal struct {
	Name   string
	Amount decimal.Decimal
}

// ExecutiveBreakdown stacks one debtor's amounts by payment state.
type ExecutiveBreakdown struct {
	Name    string
	Open    decimal.Decimal
	Overdue decimal.Decimal
	Partial decimal.Decimal
	Paid    decimal.Decimal
	Total   decimal.Decimal
}

// TimelinePoint is the summed amount for one due date.
type TimelinePoint struct {
	Label  string // DD/MM/YYYY
	Amount decimal.Decimal
	date   time.Time
}

// Summary is the dashboard rollup over a set of payables.
type Summary struct {
	Totals        SummaryTotals
	ByPaymentType []CategoryTotal
	ByBillingType []CategoryTotal
	Executives    []ExecutiveBreakdown
	Timeline      []TimelinePoint
}

// BuildSummary computes the financial rollup over rows as of the given
// reference time (truncated to local midnight). The function is pure: it
// performs no I/O, mutates nothing, and the same input always yields the
// same output. Missing or malformed fields degrade to zero or blank rather
// than failing.
func BuildSummary(rows []*Payable, now time.Time) *Summary {
	today := Midnight(now)

	totals := SummaryTotals{
		OpenAmount:        decimal.Zero,
		OverdueAmount:     decimal.Zero,
		InstallmentAmount: decimal.Zero,
		PaidAmount:        decimal.Zero,
		TotalAmount:       decimal.Zero,
	}

	for _, r := range rows {
		amount := r.Amount()
		totals.TotalAmount = totals.TotalAmount.Add(amount)
		totals.TotalCount++

		switch {
		case r.IsPaid():
			totals.PaidAmount = totals.PaidAmount.Add(amount)
			totals.PaidCount++
		case r.IsOpen():
			totals.OpenAmount = totals.OpenAmount.Add(amount)
			totals.OpenCount++
		}

		if r.IsOverdue(today) {
			totals.OverdueAmount = totals.OverdueAmount.Add(amount)
			totals.OverdueCount++
		}

		// Installment projection applies to unpaid multi-installment rows.
		if !r.IsPaid() && r.InstallmentCount() > 1 {
			future := r.FutureInstallments(today)
			totals.InstallmentCount += future
			totals.InstallmentAmount = totals.InstallmentAmount.Add(
				amount.Mul(decimal.NewFromInt(int64(future))))
		}
	}

	return &Summary{
		Totals:        totals,
		ByPaymentType: groupAmounts(rows, func(r *Payable) string { return categoryLabel(string(r.PaymentType)) }),
		ByBillingType: groupAmounts(rows, func(r *Payable) string { return categoryLabel(r.BillingType) }),
		Executives:    executiveBreakdown(rows, today),
		Timeline:      timeline(rows),
	}
}

func categoryLabel(raw string) string {
	label := strings.ToUpper(strings.TrimSpace(raw))
	if label == "" {
		return UnspecifiedLabel
	}
	return label
}

func groupAmounts(rows []*Payable, key func(*Payable) string) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	for _, r := range rows {
		k := key(r)
		if _, seen := sums[k]; !seen {
			order = append(order, k)
		}
		sums[k] = sums[k].Add(r.Amount())
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		if name == UnspecifiedLabel {
			continue
		}
		out = append(out, CategoryTotal{Name: name, Amount: sums[name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	return out
}

func executiveBreakdown(rows []*Payable, today time.Time) []ExecutiveBreakdown {
	byName := make(map[string]*ExecutiveBreakdown)
	order := make([]string, 0)

	for _, r := range rows {
		name := strings.TrimSpace(r.Debtor)
		if name == "" {
			name = UnspecifiedLabel
		}
		b, ok := byName[name]
		if !ok {
			b = &ExecutiveBreakdown{
				Name:    name,
				Open:    decimal.Zero,
				Overdue: decimal.Zero,
				Partial: decimal.Zero,
				Paid:    decimal.Zero,
			}
			byName[name] = b
			order = append(order, name)
		}

		amount := r.Amount()
		switch {
		case r.IsPaid():
			b.Paid = b.Paid.Add(amount)
		case r.IsPartial():
			b.Partial = b.Partial.Add(amount)
		case r.IsOverdue(today):
			b.Overdue = b.Overdue.Add(amount)
		default:
			b.Open = b.Open.Add(amount)
		}
	}

	out := make([]ExecutiveBreakdown, 0, len(order))
	for _, name := range order {
		if name == UnspecifiedLabel {
			continue
		}
		b := byName[name]
		b.Total = b.Open.Add(b.Overdue).Add(b.Partial).Add(b.Paid)
		out = append(out, *b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	if len(out) > executiveLimit {
		out = out[:executiveLimit]
	}
	return out
}

func timeline(rows []*Payable) []TimelinePoint {
	byDay := make(map[string]*TimelinePoint)
	for _, r := range rows {
		if r.DueDate == nil {
			continue
		}
		day := Midnight(*r.DueDate)
		label := day.Format("02/01/2006")
		p, ok := byDay[label]
		if !ok {
			p = &TimelinePoint{Label: label, Amount: decimal.Zero, date: day}
			byDay[label] = p
		}
		p.Amount = p.Amount.Add(r.Amount())
	}

	out := make([]TimelinePoint, 0, len(byDay))
	for _, p := range byDay {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].date.Before(out[j].date) })
	if len(out) > timelineLimit {
		out = out[len(out)-timelineLimit:]
	}
	return out
}
