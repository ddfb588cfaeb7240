package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elpotrillo/pos/internal/adapters/http/handlers"
	"github.com/elpotrillo/pos/internal/core/domain"
	"github.com/elpotrillo/pos/internal/core/dto"
	"github.com/elpotrillo/pos/internal/core/service"
	"github.com/elpotrillo/pos/internal/core/serviceerrors"
)

type SaleController struct {
	saleService *service.SaleService
}

type SaleLineResponse struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

type SaleResponse struct {
	ID        int64              `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Total     float64            `json:"total"`
	Lines     []SaleLineResponse `json:"lines"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ReportRowResponse struct {
	Product      string  `json:"product"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

func NewSaleResponse(sale *domain.Sale) SaleResponse {
	lines := make([]SaleLineResponse, len(sale.Lines))
	for i, line := range sale.Lines {
		lines[i] = SaleLineResponse{
			ID:        int64(line.ID),
			ProductID: int64(line.ProductID),
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal.Float64(),
		}
	}
	return SaleResponse{
		ID:        int64(sale.ID),
		Timestamp: sale.Timestamp,
		Total:     sale.Total.Float64(),
		Lines:     lines,
	}
}

func NewSaleController(saleService *service.SaleService) *SaleController {
	return &SaleController{saleService: saleService}
}

// RegisterSale godoc
// @Summary     Register a sale
// @Description Validates the cart against current stock and records the sale atomically
// @Tags        sales
// @Accept      json
// @Produce     json
// @Param       request body     dto.RegisterSaleRequest true "Cart lines"
// @Success     201     {object} SaleResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     422     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/sales [post]
func (sc *SaleController) RegisterSale(c *gin.Context) {
	var request dto.RegisterSaleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	lines := make([]domain.CartLine, len(request.Items))
	for i, item := range request.Items {
		lines[i] = domain.CartLine{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	sale, err := sc.saleService.RegisterSale(c.Request.Context(), lines)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewSaleResponse(sale))
}

// GetProductReport godoc
// @Summary     Per-product sales report
// @Description Lifetime quantity sold and revenue for every product with at least one sale
// @Tags        reports
// @Produce     json
// @Success     200 {array} ReportRowResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/reports/products [get]
func (sc *SaleController) GetProductReport(c *gin.Context) {
	report, err := sc.saleService.GetProductReport(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	response := make([]ReportRowResponse, len(report))
	for i, row := range report {
		response[i] = ReportRowResponse{
			Product:      row.ProductName,
			QuantitySold: row.QuantitySold,
			Revenue:      row.Revenue.Float64(),
		}
	}
	c.JSON(http.StatusOK, response)
}
