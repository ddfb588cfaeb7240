package domain

import "testing"

func TestValidateID(t *testing.T) {
	tests := []struct {
		id    ID
		valid bool
	}{
		{1, true},
		{42, true},
		{0, false},
		{-3, false},
	}
	for _, tt := range tests {
		if got := ValidateID(tt.id); got != tt.valid {
			t.Errorf("ValidateID(%d) = %v, want %v", tt.id, got, tt.valid)
		}
	}
}

func TestNewAmountFromFloat(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected Amount
	}{
		{"whole value", 10, 1000},
		{"two decimals", 10.55, 1055},
		{"zero", 0, 0},
		{"rounds up", 0.005, 1},
		{"binary float noise", 19.99, 1999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewAmountFromFloat(tt.value); got != tt.expected {
				t.Errorf("NewAmountFromFloat(%v) = %d, want %d", tt.value, got, tt.expected)
			}
		})
	}
}

func TestAmount_Arithmetic(t *testing.T) {
	a := NewAmountFromCents(1500)

	if got := a.Add(NewAmountFromCents(250)); got != 1750 {
		t.Fatalf("Add: got %d, want 1750", got)
	}
	if got := a.Multiply(3); got != 4500 {
		t.Fatalf("Multiply: got %d, want 4500", got)
	}
	if got := a.Float64(); got != 15.0 {
		t.Fatalf("Float64: got %v, want 15.0", got)
	}
	if a.IsNegative() {
		t.Fatal("IsNegative: 1500 cents reported negative")
	}
	if !NewAmountFromCents(-1).IsNegative() {
		t.Fatal("IsNegative: -1 cents not reported negative")
	}
}
