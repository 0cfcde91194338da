package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	itemhttpmapper "github.com/storegate/backoffice/internal/domains/catalog/adapters/http/mapper"
	catalogapp "github.com/storegate/backoffice/internal/domains/catalog/application"
	catalogports "github.com/storegate/backoffice/internal/domains/catalog/ports"
)

// ItemAPI wires HTTP transport with the catalog service.
type ItemAPI struct {
	service catalogports.Service
}

// NewItemAPI creates an ItemAPI backed by the provided service.
func NewItemAPI(service catalogports.Service) ItemAPI {
	return ItemAPI{service: service}
}

type updateItemRequest struct {
	Name          string `json:"name" binding:"required"`
	Price         int64  `json:"price"`
	StockQuantity int64  `json:"stockQuantity"`
}

// Post /items
// Add a catalog item
func (api *ItemAPI) AddItem(c *gin.Context) {
	var payload itemhttpmapper.Item
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	item, err := itemhttpmapper.ToDomainItem(payload)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	saved, err := api.service.AddItem(c.Request.Context(), item)
	if err != nil {
		respondItemServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, itemhttpmapper.FromDomainItem(saved))
}

// Get /items
// List catalog items
func (api *ItemAPI) ListItems(c *gin.Context) {
	items, err := api.service.List(c.Request.Context())
	if err != nil {
		respondItemServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, itemhttpmapper.FromDomainItems(items))
}

// Get /items/:itemId
// Find item by ID
func (api *ItemAPI) GetItemByID(c *gin.Context) {
	id, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}
	item, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondItemServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, itemhttpmapper.FromDomainItem(item))
}

// Put /items/:itemId
// Update name, price, and stock of an item
func (api *ItemAPI) UpdateItem(c *gin.Context) {
	id, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}
	var payload updateItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	item, err := api.service.UpdateItem(c.Request.Context(), id, catalogports.ItemUpdate{
		Name:          payload.Name,
		Price:         payload.Price,
		StockQuantity: payload.StockQuantity,
	})
	if err != nil {
		respondItemServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, itemhttpmapper.FromDomainItem(item))
}

func respondItemServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalogports.ErrNotFound):
		respondError(c, http.StatusNotFound, err)
	case errors.Is(err, catalogapp.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}
