package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	return &t
}

func amount(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func TestBuildSummary_Totals(t *testing.T) {
	today := time.Date(2025, 2, 1, 10, 30, 0, 0, time.Local)

	rows := []*Payable{
		{FinalAmount: amount(100), PaymentStatus: "ABERTO", DueDate: date(2025, 1, 1)},
		{FinalAmount: amount(200), PaymentStatus: "PAGO", DueDate: date(2024, 12, 1)},
	}

	s := BuildSummary(rows, today)

	if got := s.Totals.OverdueAmount; !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("overdue amount = %s, want 100", got)
	}
	if s.Totals.OverdueCount != 1 {
		t.Errorf("overdue count = %d, want 1", s.Totals.OverdueCount)
	}
	if got := s.Totals.PaidAmount; !got.Equal(decimal.NewFromInt(200)) {
		t.Errorf("paid amount = %s, want 200", got)
	}
	// The open row is past due: it still counts as open by status but the
	// overdue bucket is what the dashboard highlights.
	if got := s.Totals.OpenAmount; !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("open amount = %s, want 100", got)
	}
	if got := s.Totals.TotalAmount; !got.Equal(decimal.NewFromInt(300)) {
		t.Errorf("total amount = %s, want 300", got)
	}
	if s.Totals.TotalCount != 2 {
		t.Errorf("total count = %d, want 2", s.Totals.TotalCount)
	}
}

func TestBuildSummary_PaidOnlyInPaidBucket(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	rows := []*Payable{
		{FinalAmount: amount(50), PaymentStatus: " pago ", DueDate: date(2024, 1, 1)},
	}

	s := BuildSummary(rows, today)

	if s.Totals.PaidCount != 1 || !s.Totals.PaidAmount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("paid bucket = (%d, %s), want (1, 50)", s.Totals.PaidCount, s.Totals.PaidAmount)
	}
	if s.Totals.OpenCount != 0 || s.Totals.OverdueCount != 0 || s.Totals.InstallmentCount != 0 {
		t.Errorf("paid row leaked into other buckets: %+v", s.Totals)
	}
}

func TestBuildSummary_OpenNotYetDue(t *testing.T) {
	today := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
	rows := []*Payable{
		{FinalAmount: amount(75), PaymentStatus: "ABERTO", DueDate: date(2025, 1, 1)},
		{FinalAmount: amount(25), PaymentStatus: "ABERTO", DueDate: date(2025, 3, 10)},
	}

	s := BuildSummary(rows, today)

	// Due today is not overdue: the comparison is strict.
	if s.Totals.OverdueCount != 0 {
		t.Errorf("overdue count = %d, want 0", s.Totals.OverdueCount)
	}
	if !s.Totals.OpenAmount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("open amount = %s, want 100", s.Totals.OpenAmount)
	}
}

func TestBuildSummary_InstallmentProjection(t *testing.T) {
	now := time.Date(2025, 3, 16, 12, 0, 0, 0, time.Local)
	// First installment 45 days ago, monthly spacing, 3 installments:
	// 2025-01-30 and 2025-02-28 are past, 2025-03-30 is future.
	rows := []*Payable{
		{
			FinalAmount:   amount(100),
			PaymentStatus: "ABERTO",
			PaymentType:   PaymentInstallment,
			Installments:  3,
			DueDate:       date(2025, 1, 30),
		},
	}

	s := BuildSummary(rows, now)

	if s.Totals.InstallmentCount != 1 {
		t.Errorf("future installments = %d, want 1", s.Totals.InstallmentCount)
	}
	if !s.Totals.InstallmentAmount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("future installment amount = %s, want 100", s.Totals.InstallmentAmount)
	}
}

func TestBuildSummary_InstallmentsWithoutDueDate(t *testing.T) {
	now := time.Date(2025, 3, 16, 0, 0, 0, 0, time.Local)
	rows := []*Payable{
		{FinalAmount: amount(40), PaymentStatus: "ABERTO", Installments: 4},
	}

	s := BuildSummary(rows, now)

	// No due date: every installment is presumed future.
	if s.Totals.InstallmentCount != 4 {
		t.Errorf("future installments = %d, want 4", s.Totals.InstallmentCount)
	}
	if !s.Totals.InstallmentAmount.Equal(decimal.NewFromInt(160)) {
		t.Errorf("future installment amount = %s, want 160", s.Totals.InstallmentAmount)
	}
}

func TestBuildSummary_ExecutiveBreakdown(t *testing.T) {
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local)
	rows := []*Payable{
		{FinalAmount: amount(100), PaymentStatus: "ABERTO", Debtor: "Ana", DueDate: date(2025, 1, 1)},
		{FinalAmount: amount(300), PaymentStatus: "PAGO", Debtor: "Ana", DueDate: date(2024, 12, 1)},
		{FinalAmount: amount(50), PaymentStatus: "PARCIALMENTE PAGO", Debtor: "Bruno", DueDate: date(2025, 1, 10)},
		{FinalAmount: amount(10), PaymentStatus: "ABERTO", Debtor: "  ", DueDate: date(2025, 3, 1)},
	}

	s := BuildSummary(rows, now)

	if len(s.Executives) != 2 {
		t.Fatalf("executives = %d, want 2 (blank debtor excluded)", len(s.Executives))
	}
	ana := s.Executives[0]
	if ana.Name != "Ana" {
		t.Fatalf("first executive = %q, want Ana (sorted by total desc)", ana.Name)
	}
	if !ana.Overdue.Equal(decimal.NewFromInt(100)) || !ana.Paid.Equal(decimal.NewFromInt(300)) {
		t.Errorf("Ana buckets = overdue %s paid %s, want 100/300", ana.Overdue, ana.Paid)
	}
	if !ana.Total.Equal(ana.Open.Add(ana.Overdue).Add(ana.Partial).Add(ana.Paid)) {
		t.Errorf("Ana total %s does not equal sum of buckets", ana.Total)
	}
	bruno := s.Executives[1]
	if !bruno.Partial.Equal(decimal.NewFromInt(50)) {
		t.Errorf("Bruno partial = %s, want 50 (partial takes priority over overdue)", bruno.Partial)
	}
}

func TestBuildSummary_ExecutiveBreakdownCap(t *testing.T) {
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local)

	rows := make([]*Payable, 0, 12)
	for i := 0; i < 12; i++ {
		rows = append(rows, &Payable{
			FinalAmount:   amount(float64(i + 1)),
			PaymentStatus: "ABERTO",
			Debtor:        string(rune('A' + i)),
			DueDate:       date(2025, 6, 1),
		})
	}

	s := BuildSummary(rows, now)

	if len(s.Executives) != 10 {
		t.Fatalf("executives = %d, want cap of 10", len(s.Executives))
	}
	for i := 1; i < len(s.Executives); i++ {
		if s.Executives[i].Total.GreaterThan(s.Executives[i-1].Total) {
			t.Errorf("executives not sorted descending at index %d", i)
		}
	}
}

func TestBuildSummary_CategoryGrouping(t *testing.T) {
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local)
	rows := []*Payable{
		{FinalAmount: amount(10), PaymentType: " parcelas "},
		{FinalAmount: amount(30), PaymentType: "PARCELAS"},
		{FinalAmount: amount(20), PaymentType: "COTA_UNICA"},
		{FinalAmount: amount(99)}, // blank type lands in the excluded bucket
	}

	s := BuildSummary(rows, now)

	if len(s.ByPaymentType) != 2 {
		t.Fatalf("payment type groups = %d, want 2", len(s.ByPaymentType))
	}
	if s.ByPaymentType[0].Name != "PARCELAS" || !s.ByPaymentType[0].Amount.Equal(decimal.NewFromInt(40)) {
		t.Errorf("top group = %s %s, want PARCELAS 40", s.ByPaymentType[0].Name, s.ByPaymentType[0].Amount)
	}
	for _, g := range s.ByPaymentType {
		if g.Name == UnspecifiedLabel {
			t.Errorf("unspecified bucket must be excluded from output")
		}
	}
}

func TestBuildSummary_Timeline(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)

	rows := make([]*Payable, 0, 20)
	for i := 0; i < 20; i++ {
		rows = append(rows, &Payable{
			FinalAmount:   amount(10),
			PaymentStatus: "ABERTO",
			DueDate:       date(2025, 1, i+1),
		})
	}
	// Two rows on the same day sum into one point.
	rows = append(rows, &Payable{FinalAmount: amount(5), DueDate: date(2025, 1, 20)})
	// Rows without due dates are excluded from the series.
	rows = append(rows, &Payable{FinalAmount: amount(7)})

	s := BuildSummary(rows, now)

	if len(s.Timeline) != 14 {
		t.Fatalf("timeline points = %d, want 14", len(s.Timeline))
	}
	if s.Timeline[0].Label != "07/01/2025" {
		t.Errorf("first point = %s, want 07/01/2025 (only the most recent 14 dates survive)", s.Timeline[0].Label)
	}
	last := s.Timeline[len(s.Timeline)-1]
	if last.Label != "20/01/2025" {
		t.Errorf("last point = %s, want 20/01/2025", last.Label)
	}
	if !last.Amount.Equal(decimal.NewFromInt(15)) {
		t.Errorf("same-day amounts not summed: %s, want 15", last.Amount)
	}
}

func TestBuildSummary_Idempotent(t *testing.T) {
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local)
	rows := []*Payable{
		{FinalAmount: amount(100), PaymentStatus: "ABERTO", Debtor: "Ana", DueDate: date(2025, 1, 1), Installments: 3},
		{OriginalAmount: amount(80), PaymentStatus: "pago", Debtor: "Bruno", DueDate: date(2024, 11, 5)},
		{PaymentStatus: "???", BillingType: "boleto"},
	}

	first := BuildSummary(rows, now)
	second := BuildSummary(rows, now)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	require.Equal(t, string(a), string(b))
}

func TestBuildSummary_EndToEndExample(t *testing.T) {
	// The dashboard's reference scenario: one overdue open bill, one paid.
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local)
	rows := []*Payable{
		{FinalAmount: amount(100), PaymentStatus: "ABERTO", DueDate: date(2025, 1, 1)},
		{FinalAmount: amount(200), PaymentStatus: "PAGO", DueDate: date(2024, 12, 1)},
	}

	s := BuildSummary(rows, now)

	require.True(t, s.Totals.OverdueAmount.Equal(decimal.NewFromInt(100)), "vencidas = %s", s.Totals.OverdueAmount)
	require.True(t, s.Totals.PaidAmount.Equal(decimal.NewFromInt(200)), "pago = %s", s.Totals.PaidAmount)
	// An overdue bill keeps its ABERTO status, so it counts in both the
	// open and the overdue buckets, matching the legacy dashboard.
	require.True(t, s.Totals.OpenAmount.Equal(decimal.NewFromInt(100)), "aberto = %s", s.Totals.OpenAmount)
	require.Equal(t, 1, s.Totals.OpenCount)
}

func TestBuildSummary_MalformedRowsDegrade(t *testing.T) {
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local)
	rows := []*Payable{
		{},                             // everything missing
		{PaymentStatus: "  "},          // blank status treated as open
		{Installments: -5},             // clamped to one installment
		{OriginalAmount: amount(12.5)}, // falls back to original amount
	}

	s := BuildSummary(rows, now)

	if !s.Totals.TotalAmount.Equal(decimal.NewFromFloat(12.5)) {
		t.Errorf("total = %s, want 12.5", s.Totals.TotalAmount)
	}
	if s.Totals.TotalCount != 4 {
		t.Errorf("count = %d, want 4", s.Totals.TotalCount)
	}
}
