package domain

import (
	"testing"
	"time"
)

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		name   string
		base   time.Time
		months int
		want   string
	}{
		{
			name:   "leap february clamps to 29",
			base:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local),
			months: 1,
			want:   "2024-02-29",
		},
		{
			name:   "non-leap february clamps to 28",
			base:   time.Date(2023, 1, 31, 0, 0, 0, 0, time.Local),
			months: 1,
			want:   "2023-02-28",
		},
		{
			name:   "thirty day month clamps to 30",
			base:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.Local),
			months: 1,
			want:   "2024-04-30",
		},
		{
			name:   "no clamp needed",
			base:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local),
			months: 2,
			want:   "2024-03-15",
		},
		{
			name:   "year rollover",
			base:   time.Date(2024, 11, 30, 0, 0, 0, 0, time.Local),
			months: 3,
			want:   "2025-02-28",
		},
		{
			name:   "zero months is identity",
			base:   time.Date(2024, 5, 31, 0, 0, 0, 0, time.Local),
			months: 0,
			want:   "2024-05-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddMonthsClamped(tt.base, tt.months).Format("2006-01-02")
			if got != tt.want {
				t.Errorf("AddMonthsClamped(%s, %d) = %s, want %s",
					tt.base.Format("2006-01-02"), tt.months, got, tt.want)
			}
		})
	}
}

func TestParseDueDate(t *testing.T) {
	t.Run("plain ISO date at local midnight", func(t *testing.T) {
		got, ok := ParseDueDate("2025-01-31")
		if !ok {
			t.Fatal("expected date to parse")
		}
		want := time.Date(2025, 1, 31, 0, 0, 0, 0, time.Local)
		if !got.Equal(want) {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("rfc3339 accepted", func(t *testing.T) {
		got, ok := ParseDueDate("2025-01-31T15:04:05Z")
		if !ok {
			t.Fatal("expected timestamp to parse")
		}
		if got.UTC().Hour() != 15 {
			t.Errorf("time component lost: %s", got)
		}
	})

	t.Run("blank and garbage rejected", func(t *testing.T) {
		for _, v := range []string{"", "   ", "not-a-date", "31/01/2025"} {
			if _, ok := ParseDueDate(v); ok {
				t.Errorf("ParseDueDate(%q) parsed, want rejection", v)
			}
		}
	})
}

func TestMidnight(t *testing.T) {
	in := time.Date(2025, 7, 9, 23, 59, 58, 123, time.Local)
	got := Midnight(in)
	want := time.Date(2025, 7, 9, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("Midnight(%s) = %s, want %s", in, got, want)
	}
}
