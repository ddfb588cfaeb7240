package domain

import "time"

// CartLine is one entry of the batch submitted for a sale registration:
// which product and how many units.
type CartLine struct {
	ProductID ID
	Quantity  int
}

type Sale struct {
	ID        ID
	Timestamp time.Time
	Total     Amount
	Lines     []SaleLine
}

// SaleLine belongs to exactly one Sale. Subtotal is captured from the
// product price at registration time; later price edits never rewrite it.
type SaleLine struct {
	ID        ID
	SaleID    ID
	ProductID ID
	Quantity  int
	Subtotal  Amount
}

func NewSaleLine(productID ID, quantity int, unitPrice Amount) *SaleLine {
	return &SaleLine{
		ProductID: productID,
		Quantity:  quantity,
		Subtotal:  unitPrice.Multiply(quantity),
	}
}

func CalculateTotal(lines []SaleLine) Amount {
	total := Amount(0)
	for _, line := range lines {
		total = total.Add(line.Subtotal)
	}
	return total
}

func NewSale(lines []SaleLine) *Sale {
	return &Sale{
		Lines: lines,
		Total: CalculateTotal(lines),
	}
}

// ReportRow is one line of the per-product sales report: every product
// that has sold at least once, with its lifetime quantity and revenue.
type ReportRow struct {
	ProductName  string
	QuantitySold int
	Revenue      Amount
}
