package serviceerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsOfKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind ErrorKind
		want bool
	}{
		{"not found matches", NewNotFoundError("missing"), KindNotFound, true},
		{"kind mismatch", NewNotFoundError("missing"), KindConflict, false},
		{"wrapped service error", fmt.Errorf("outer: %w", NewInvalidRequestError("bad")), KindInvalidRequest, true},
		{"plain error", errors.New("boom"), KindNotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOfKind(tt.err, tt.kind); got != tt.want {
				t.Errorf("IsOfKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInsufficientStockError(t *testing.T) {
	err := &InsufficientStockError{ProductID: 1, Available: 2, Requested: 5}

	if !IsOfKind(err, KindUnprocessableEntity) {
		t.Fatal("expected InsufficientStockError to unwrap to KindUnprocessableEntity")
	}

	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatal("expected errors.As to recover *InsufficientStockError")
	}
	if stockErr.Available != 2 || stockErr.Requested != 5 {
		t.Fatalf("expected available=2 requested=5, got %d/%d", stockErr.Available, stockErr.Requested)
	}
}

func TestProductNotFoundError(t *testing.T) {
	err := &ProductNotFoundError{ProductID: 9}

	if !IsOfKind(err, KindNotFound) {
		t.Fatal("expected ProductNotFoundError to unwrap to KindNotFound")
	}

	var nfErr *ProductNotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatal("expected errors.As to recover *ProductNotFoundError")
	}
	if nfErr.ProductID != 9 {
		t.Fatalf("expected product id 9, got %d", nfErr.ProductID)
	}
}
