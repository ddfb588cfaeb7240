package dto

import "github.com/elpotrillo/pos/internal/core/domain"

type SaleItem struct {
	ProductID domain.ID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type RegisterSaleRequest struct {
	Items []SaleItem `json:"items"`
}
