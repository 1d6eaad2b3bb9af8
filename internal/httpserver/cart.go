package httpserver

import (
	"net/http"
	"strconv"

	"developerhorizon/internal/domain"
	"github.com/gin-gonic/gin"
)

func (h *handlers) getCart(c *gin.Context) {
	store := h.deps.Carts.Store(c.Request.Context(), sessionID(c))
	c.JSON(http.StatusOK, newCartView(store.Items()))
}

func (h *handlers) addCartItem(c *gin.Context) {
	var item domain.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart item"})
		return
	}
	if item.ProductID == "" || item.VariantID == 0 || item.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart item"})
		return
	}

	store := h.deps.Carts.Store(c.Request.Context(), sessionID(c))
	if err := store.Add(c.Request.Context(), item); err != nil {
		h.logger.Printf("cart add failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to update cart"})
		return
	}
	c.JSON(http.StatusOK, newCartView(store.Items()))
}

func (h *handlers) removeCartItem(c *gin.Context) {
	productID := c.Query("productId")
	variantID, err := strconv.Atoi(c.Query("variantId"))
	if productID == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId and variantId are required"})
		return
	}

	store := h.deps.Carts.Store(c.Request.Context(), sessionID(c))
	if err := store.Remove(c.Request.Context(), productID, variantID); err != nil {
		h.logger.Printf("cart remove failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to update cart"})
		return
	}
	c.JSON(http.StatusOK, newCartView(store.Items()))
}

func (h *handlers) updateCartItemQuantity(c *gin.Context) {
	variantID, err := strconv.Atoi(c.Param("variantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid variant id"})
		return
	}
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be at least 1"})
		return
	}

	store := h.deps.Carts.Store(c.Request.Context(), sessionID(c))
	if err := store.UpdateQuantity(c.Request.Context(), variantID, body.Quantity); err != nil {
		h.logger.Printf("cart quantity update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to update cart"})
		return
	}
	c.JSON(http.StatusOK, newCartView(store.Items()))
}

func (h *handlers) clearCart(c *gin.Context) {
	store := h.deps.Carts.Store(c.Request.Context(), sessionID(c))
	if err := store.Clear(c.Request.Context()); err != nil {
		h.logger.Printf("cart clear failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to update cart"})
		return
	}
	c.JSON(http.StatusOK, newCartView(store.Items()))
}
