package handlers

import (
	"errors"
	"net/http"

	request "sales_engine/internal/adapter/http/dto/request"
	response "sales_engine/internal/adapter/http/dto/response"
	"sales_engine/internal/usecase"
	"sales_engine/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidMerchantPayload = pkg.NewDomainErrorSimple("INVALID_MERCHANT_INPUT", "Invalid merchant payload", http.StatusBadRequest)
	errInvalidItemPayload     = pkg.NewDomainErrorSimple("INVALID_ITEM_INPUT", "Invalid item payload", http.StatusBadRequest)
	errInvalidUnitPrice       = pkg.NewDomainError("INVALID_UNIT_PRICE", "unit_price must be non-negative with at most two decimal places", request.ErrInvalidUnitPrice, http.StatusBadRequest)
)

// CatalogHandler maintains merchants and items. Every change is visible to
// the analytics endpoints as soon as the request returns.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// SearchMerchants lists merchants whose name contains ?name=.
func (h *CatalogHandler) SearchMerchants(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromMerchants(h.usecase.SearchMerchants(c.Query("name"))))
}

func (h *CatalogHandler) GetMerchant(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	m, err := h.usecase.GetMerchant(id)
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMerchant(m))
}

func (h *CatalogHandler) CreateMerchant(c *gin.Context) {
	var payload request.CreateMerchantRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidMerchantPayload)
		return
	}
	m, err := h.usecase.CreateMerchant(payload.ToRow())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromMerchant(m))
}

func (h *CatalogHandler) UpdateMerchant(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload request.UpdateMerchantRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidMerchantPayload)
		return
	}
	m, err := h.usecase.UpdateMerchant(id, payload.ToRow())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMerchant(m))
}

func (h *CatalogHandler) DeleteMerchant(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteMerchant(id); err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SearchItems lists items whose description contains ?description=.
func (h *CatalogHandler) SearchItems(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromItems(h.usecase.SearchItems(c.Query("description"))))
}

func (h *CatalogHandler) GetItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	it, err := h.usecase.GetItem(id)
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromItem(it))
}

func (h *CatalogHandler) CreateItem(c *gin.Context) {
	var payload request.CreateItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidItemPayload)
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(c, errInvalidUnitPrice)
		return
	}
	it, err := h.usecase.CreateItem(payload.ToRow())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromItem(it))
}

func (h *CatalogHandler) UpdateItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload request.UpdateItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidItemPayload)
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(c, errInvalidUnitPrice)
		return
	}
	it, err := h.usecase.UpdateItem(id, payload.ToRow())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromItem(it))
}

func (h *CatalogHandler) DeleteItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteItem(id); err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID):
		return errInvalidID
	case errors.Is(err, usecase.ErrInvalidAttributes):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMerchantNotFound):
		return pkg.NewDomainErrorSimple("MERCHANT_NOT_FOUND", "Merchant not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
