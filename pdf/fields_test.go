package pdf_test

import (
	"testing"
	"time"

	"zadachnik/pdf"
)

func TestDeriveComputesTotals(t *testing.T) {
	row := map[string]string{
		"name":  "Стол",
		"price": "1 000,50",
		"qty":   "3",
	}
	now := time.Date(2025, 3, 14, 9, 26, 0, 0, time.UTC)

	got := pdf.Derive(row, 2, 5, now)

	checks := map[string]string{
		"name":             "Стол",
		"record_number":    "2",
		"total_records":    "5",
		"generation_date":  "14.03.2025 09:26",
		"price_numeric":    "1000.5",
		"qty_numeric":      "3",
		"subtotal_numeric": "3001.5",
		"vat_numeric":      "600.3",
		"total_numeric":    "3601.8",
		"subtotal":         "3 001,50",
		"vat":              "600,30",
		"total":            "3 601,80",
	}
	for key, want := range checks {
		if got[key] != want {
			t.Errorf("Derive()[%q] = %q, want %q", key, got[key], want)
		}
	}
}

func TestDeriveUnparseableNumbers(t *testing.T) {
	got := pdf.Derive(map[string]string{"price": "договорная", "qty": "many"}, 1, 1, time.Now())
	if got["subtotal_numeric"] != "0" || got["total"] != "0,00" {
		t.Errorf("unparseable inputs: subtotal_numeric = %q, total = %q", got["subtotal_numeric"], got["total"])
	}
}

func TestDeriveDoesNotMutateRow(t *testing.T) {
	row := map[string]string{"price": "10", "qty": "1"}
	pdf.Derive(row, 1, 1, time.Now())
	if len(row) != 2 {
		t.Errorf("input row mutated: %v", row)
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0,00"},
		{3601.8, "3 601,80"},
		{1234567.89, "1 234 567,89"},
		{999.999, "1 000,00"},
		{-42.5, "-42,50"},
	}
	for _, tt := range tests {
		if got := pdf.FormatCurrency(tt.in); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
