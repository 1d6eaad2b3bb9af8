package httpserver

import (
	"errors"
	"net/http"

	"developerhorizon/internal/domain"
	"developerhorizon/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

// emptyCartRedirect is the signal an empty-cart checkout sends back so the
// client navigates away instead of rendering a dead form.
func emptyCartRedirect(c *gin.Context) {
	c.JSON(http.StatusConflict, gin.H{"redirectTo": "/cart"})
}

func (h *handlers) getCheckout(c *gin.Context) {
	ctx := c.Request.Context()
	store := h.deps.Carts.Store(ctx, sessionID(c))
	if store.Empty() {
		emptyCartRedirect(c)
		return
	}
	chk := h.deps.Checkouts.Checkout(ctx, sessionID(c))
	c.JSON(http.StatusOK, newCheckoutView(chk.View()))
}

func (h *handlers) updateCheckoutDraft(c *gin.Context) {
	var draft checkout.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkout details"})
		return
	}

	ctx := c.Request.Context()
	chk := h.deps.Checkouts.Checkout(ctx, sessionID(c))
	view, err := chk.UpdateDraft(ctx, draft)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			emptyCartRedirect(c)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newCheckoutView(view))
}

func (h *handlers) selectShipping(c *gin.Context) {
	var body struct {
		ID int `json:"id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shipping option id is required"})
		return
	}

	ctx := c.Request.Context()
	chk := h.deps.Checkouts.Checkout(ctx, sessionID(c))
	view, err := chk.SelectShipping(ctx, body.ID)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			emptyCartRedirect(c)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newCheckoutView(view))
}
