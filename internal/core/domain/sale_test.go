package domain

import "testing"

func TestNewSaleLine(t *testing.T) {
	line := NewSaleLine(3, 4, NewAmountFromCents(250))

	if line.ProductID != 3 {
		t.Fatalf("expected ProductID 3, got %d", line.ProductID)
	}
	if line.Quantity != 4 {
		t.Fatalf("expected Quantity 4, got %d", line.Quantity)
	}
	if line.Subtotal != 1000 {
		t.Fatalf("expected Subtotal 1000, got %d", line.Subtotal)
	}
	if line.ID != 0 || line.SaleID != 0 {
		t.Fatalf("expected zero ids before persistence, got id=%d sale_id=%d", line.ID, line.SaleID)
	}
}

func TestCalculateTotal(t *testing.T) {
	tests := []struct {
		name     string
		lines    []SaleLine
		expected Amount
	}{
		{"no lines", nil, 0},
		{"single line", []SaleLine{{Subtotal: 3000}}, 3000},
		{"multiple lines", []SaleLine{{Subtotal: 3000}, {Subtotal: 550}, {Subtotal: 1}}, 3551},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateTotal(tt.lines); got != tt.expected {
				t.Errorf("CalculateTotal() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestNewSale(t *testing.T) {
	lines := []SaleLine{
		*NewSaleLine(1, 3, NewAmountFromCents(1000)),
		*NewSaleLine(2, 1, NewAmountFromCents(550)),
	}

	sale := NewSale(lines)

	if sale.Total != 3550 {
		t.Fatalf("expected total 3550, got %d", sale.Total)
	}
	if len(sale.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(sale.Lines))
	}
	if sale.ID != 0 {
		t.Fatalf("expected zero ID before persistence, got %d", sale.ID)
	}
}
