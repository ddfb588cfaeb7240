package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elpotrillo/pos/internal/adapters/http/handlers"
	"github.com/elpotrillo/pos/internal/core/domain"
	"github.com/elpotrillo/pos/internal/core/dto"
	"github.com/elpotrillo/pos/internal/core/service"
	"github.com/elpotrillo/pos/internal/core/serviceerrors"
)

type ProductController struct {
	catalogService *service.CatalogService
}

type ProductResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

func NewProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:    int64(product.ID),
		Name:  product.Name,
		Price: product.Price.Float64(),
		Stock: product.Stock,
	}
}

func NewProductController(catalogService *service.CatalogService) *ProductController {
	return &ProductController{catalogService: catalogService}
}

func productIDParam(c *gin.Context) (domain.ID, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || !domain.ValidateID(domain.ID(id)) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return 0, false
	}
	return domain.ID(id), true
}

// CreateProduct godoc
// @Summary     Create a product
// @Description Adds a new product to the catalog
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateProductRequest true "Product data"
// @Success     201     {object} ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/products [post]
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var request dto.CreateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	product, err := pc.catalogService.CreateProduct(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewProductResponse(product))
}

// GetAll godoc
// @Summary     List all products
// @Description Returns the full catalog in id order
// @Tags        products
// @Produce     json
// @Success     200 {array} ProductResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products [get]
func (pc *ProductController) GetAll(c *gin.Context) {
	products, err := pc.catalogService.GetAll(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	response := make([]ProductResponse, len(products))
	for i, product := range products {
		response[i] = NewProductResponse(product)
	}

	c.JSON(http.StatusOK, response)
}

// GetByID godoc
// @Summary     Get a product
// @Description Returns one product by id
// @Tags        products
// @Produce     json
// @Param       id  path     int true "Product ID"
// @Success     200 {object} ProductResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [get]
func (pc *ProductController) GetByID(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}
	product, err := pc.catalogService.GetByID(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product))
}

// UpdatePrice godoc
// @Summary     Update a product's price
// @Description Overwrites the unit price; already registered sales keep their subtotals
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id      path     int                    true "Product ID"
// @Param       request body     dto.UpdatePriceRequest true "New price"
// @Success     200     {object} MessageResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id}/price [patch]
func (pc *ProductController) UpdatePrice(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}
	var request dto.UpdatePriceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	if err := pc.catalogService.SetPrice(c.Request.Context(), id, domain.NewAmountFromFloat(request.Price)); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Price updated successfully"})
}

// UpdateStock godoc
// @Summary     Overwrite a product's stock
// @Description Sets the stock counter to an absolute value
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id      path     int                    true "Product ID"
// @Param       request body     dto.UpdateStockRequest true "New stock"
// @Success     200     {object} MessageResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id}/stock [patch]
func (pc *ProductController) UpdateStock(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}
	var request dto.UpdateStockRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	if err := pc.catalogService.SetStock(c.Request.Context(), id, request.Stock); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Stock updated successfully"})
}

// Replenish godoc
// @Summary     Replenish stock
// @Description Adds units on top of the current stock
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id      path     int                       true "Product ID"
// @Param       request body     dto.ReplenishStockRequest true "Units to add"
// @Success     200     {object} ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id}/replenish [post]
func (pc *ProductController) Replenish(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}
	var request dto.ReplenishStockRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	product, err := pc.catalogService.ReplenishStock(c.Request.Context(), id, request.Quantity)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product))
}
