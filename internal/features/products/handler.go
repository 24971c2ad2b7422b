package products

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/skincare/internal/pkg/logger"
	"github.com/xyz-asif/skincare/internal/pkg/pagination"
	"github.com/xyz-asif/skincare/internal/pkg/response"
	"github.com/xyz-asif/skincare/internal/pkg/validator"
	apperrors "github.com/xyz-asif/skincare/pkg/errors"
)

// Store is the catalog persistence used by the handler
type Store interface {
	List(ctx context.Context, page *pagination.Request) ([]Product, int64, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Product, error)
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (UpdateOutcome, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) storeError(c *gin.Context, err error, action string) {
	if errors.Is(err, apperrors.ErrNotFound) {
		response.NotFound(c, "Product not found", "PRODUCT_NOT_FOUND")
		return
	}
	logger.Error("%s: %v", action, err)
	response.DatabaseError(c, "Failed to "+action)
}

// List godoc
// @Summary List products
// @Description Returns the catalog in insertion order. Pagination is applied only when page or limit is given.
// @Tags products
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {array} Product
// @Header 200 {integer} X-Total-Count "Total number of products"
// @Failure 500 {object} response.ErrorResponse
// @Router /products [get]
func (h *Handler) List(c *gin.Context) {
	page := pagination.FromQuery(c.Query("page"), c.Query("limit"))

	items, total, err := h.store.List(c.Request.Context(), page)
	if err != nil {
		h.storeError(c, err, "list products")
		return
	}

	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	if page != nil {
		meta := pagination.New(page.Page, page.Limit, total)
		c.Header("X-Page", strconv.Itoa(meta.Page))
		c.Header("X-Total-Pages", strconv.Itoa(meta.Pages))
	}

	response.OK(c, items)
}

// Get godoc
// @Summary Get a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} Product
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /products/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := validator.ParseObjectID(c.Param("id"))
	if !ok {
		response.InvalidID(c)
		return
	}

	product, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		h.storeError(c, err, "get product")
		return
	}

	response.OK(c, product)
}

// Create godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProductRequest true "Product data"
// @Success 200 {object} Product
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /products [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreateProduct(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	product := &Product{
		Name:     req.Name,
		Brand:    req.Brand,
		Category: req.Category,
		Price:    req.Price,
	}
	if err := h.store.Create(c.Request.Context(), product); err != nil {
		h.storeError(c, err, "create product")
		return
	}

	response.OK(c, product)
}

// Update godoc
// @Summary Update a product
// @Description Partial update. Null and absent fields are ignored; an empty update on an existing product reports no changes.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body UpdateProductRequest true "Fields to change"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /products/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateUpdateProduct(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	id, ok := validator.ParseObjectID(c.Param("id"))
	if !ok {
		response.InvalidID(c)
		return
	}

	outcome, err := h.store.Update(c.Request.Context(), id, req.Fields())
	if err != nil {
		h.storeError(c, err, "update product")
		return
	}

	response.Message(c, outcome.Message())
}

// Delete godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /products/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := validator.ParseObjectID(c.Param("id"))
	if !ok {
		response.InvalidID(c)
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		h.storeError(c, err, "delete product")
		return
	}

	response.Message(c, "Product deleted successfully")
}
