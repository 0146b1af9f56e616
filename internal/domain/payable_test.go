package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestComputeFinalAmount(t *testing.T) {
	tests := []struct {
		name         string
		original     *decimal.Decimal
		discount     *decimal.Decimal
		surcharge    *decimal.Decimal
		installments int
		want         string
	}{
		{name: "plain total", original: amount(100), installments: 1, want: "100"},
		{name: "discount applied", original: amount(100), discount: amount(20), installments: 1, want: "80"},
		{name: "surcharge applied", original: amount(100), surcharge: amount(5), installments: 1, want: "105"},
		{name: "never below zero", original: amount(50), discount: amount(80), installments: 1, want: "0"},
		{name: "split across installments", original: amount(300), installments: 3, want: "100"},
		{name: "installments clamp to one", original: amount(300), installments: 0, want: "300"},
		{name: "rounded to cents", original: amount(100), installments: 3, want: "33.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeFinalAmount(tt.original, tt.discount, tt.surcharge, tt.installments)
			if got == nil {
				t.Fatal("expected a value, got nil")
			}
			want, _ := decimal.NewFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("got %s, want %s", got, want)
			}
		})
	}

	t.Run("nil original yields nil", func(t *testing.T) {
		if got := ComputeFinalAmount(nil, amount(10), nil, 2); got != nil {
			t.Errorf("got %s, want nil", got)
		}
	})
}

func TestNormalizePaymentType(t *testing.T) {
	tests := []struct {
		in   string
		want PaymentType
	}{
		{"COTA UNICA", PaymentSingle},
		{"cota única", PaymentSingle},
		{"COTA_UNICA", PaymentSingle},
		{"parcelas", PaymentInstallment},
		{"PARCELA", PaymentInstallment},
		{" Boleto ", PaymentType("Boleto")},
	}
	for _, tt := range tests {
		if got := NormalizePaymentType(tt.in); got != tt.want {
			t.Errorf("NormalizePaymentType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPayable_Amount(t *testing.T) {
	if got := (&Payable{FinalAmount: amount(10), OriginalAmount: amount(99)}).Amount(); !got.Equal(decimal.NewFromInt(10)) {
		t.Errorf("final amount preferred: got %s", got)
	}
	if got := (&Payable{OriginalAmount: amount(99)}).Amount(); !got.Equal(decimal.NewFromInt(99)) {
		t.Errorf("original amount fallback: got %s", got)
	}
	if got := (&Payable{}).Amount(); !got.Equal(decimal.Zero) {
		t.Errorf("missing amounts default to zero: got %s", got)
	}
}

func TestPayable_IsOverdue(t *testing.T) {
	today := time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local)

	p := &Payable{PaymentStatus: "ABERTO", DueDate: date(2025, 1, 31)}
	if !p.IsOverdue(today) {
		t.Error("past-due open row must be overdue")
	}

	p = &Payable{PaymentStatus: "PAGO", DueDate: date(2025, 1, 31)}
	if p.IsOverdue(today) {
		t.Error("paid row is never overdue")
	}

	p = &Payable{PaymentStatus: "ABERTO"}
	if p.IsOverdue(today) {
		t.Error("row without due date is never overdue")
	}

	p = &Payable{PaymentStatus: "ABERTO", DueDate: date(2025, 2, 1)}
	if p.IsOverdue(today) {
		t.Error("due today is not overdue, comparison is strict")
	}
}

func TestPayable_FutureInstallments(t *testing.T) {
	today := time.Date(2025, 3, 16, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		p    Payable
		want int
	}{
		{
			name: "two past one future",
			p:    Payable{Installments: 3, DueDate: date(2025, 1, 30)},
			want: 1,
		},
		{
			name: "all future",
			p:    Payable{Installments: 4, DueDate: date(2025, 4, 1)},
			want: 4,
		},
		{
			name: "all past clamps to zero",
			p:    Payable{Installments: 2, DueDate: date(2024, 1, 1)},
			want: 0,
		},
		{
			name: "no due date counts all as future",
			p:    Payable{Installments: 5},
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.FutureInstallments(today); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
