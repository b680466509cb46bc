package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homepantry/backend/internal/domain"
	"github.com/homepantry/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	service *usecase.IngredientService
}

// NewHandler creates a new HTTP handler
func NewHandler(service *usecase.IngredientService) *Handler {
	return &Handler{service: service}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "homepantry-backend",
		"version": "1.0.0",
	})
}

// reviewRequest is the body of POST /receipts/review.
type reviewRequest struct {
	Lines []string `json:"lines" binding:"required"`
}

// ReviewReceipt normalizes a batch of raw lines, matches them against the
// inventory, and reports duplicates and substitution suggestions.
func (h *Handler) ReviewReceipt(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lines field is required"})
		return
	}

	review, err := h.service.ReviewReceipt(c.Request.Context(), req.Lines)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// syncRequest is the body of POST /shopping-list/sync.
type syncRequest struct {
	Sources []domain.RecipeSource `json:"sources" binding:"required"`
}

// SyncShoppingList reconciles the derived shopping list against the given
// recipe sources.
func (h *Handler) SyncShoppingList(c *gin.Context) {
	var req syncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sources field is required"})
		return
	}

	result, err := h.service.SyncShoppingList(c.Request.Context(), req.Sources)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListShoppingList returns every shopping-list row, dismissed ones included.
func (h *Handler) ListShoppingList(c *gin.Context) {
	items, err := h.service.ListShoppingList(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// addItemRequest is the body of POST /shopping-list/items.
type addItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity"`
}

// AddShoppingListItem creates a manual shopping-list row.
func (h *Handler) AddShoppingListItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name field is required"})
		return
	}

	item, err := h.service.AddManualItem(c.Request.Context(), req.Name, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// DismissShoppingListItem soft-hides a derived row or deletes a manual one.
func (h *Handler) DismissShoppingListItem(c *gin.Context) {
	if err := h.service.DismissItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// checkItemRequest is the body of POST /shopping-list/items/:id/check.
type checkItemRequest struct {
	Checked *bool `json:"checked" binding:"required"`
}

// CheckShoppingListItem marks a row as acquired or not.
func (h *Handler) CheckShoppingListItem(c *gin.Context) {
	var req checkItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checked field is required"})
		return
	}

	if err := h.service.CheckItem(c.Request.Context(), c.Param("id"), *req.Checked); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// substitutesRequest is the body of POST /substitutions.
type substitutesRequest struct {
	Name string `json:"name" binding:"required"`
}

// SuggestSubstitutes ranks inventory items as substitutes for a missing
// ingredient.
func (h *Handler) SuggestSubstitutes(c *gin.Context) {
	var req substitutesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name field is required"})
		return
	}

	suggestions, err := h.service.SuggestSubstitutes(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"substitutes": suggestions})
}

// ListInventory returns the pantry snapshot.
func (h *Handler) ListInventory(c *gin.Context) {
	items, err := h.service.ListInventory(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// SaveInventoryItem creates or replaces a pantry record.
func (h *Handler) SaveInventoryItem(c *gin.Context) {
	var item domain.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid inventory item"})
		return
	}

	saved, err := h.service.SaveInventoryItem(c.Request.Context(), item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteInventoryItem removes a pantry record.
func (h *Handler) DeleteInventoryItem(c *gin.Context) {
	if err := h.service.DeleteInventoryItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// respondError maps domain errors to HTTP status codes.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrItemNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateItem), errors.Is(err, domain.ErrStaleSnapshot):
		status = http.StatusConflict
	}
	c.Error(err)
	c.JSON(status, gin.H{"error": err.Error()})
}
