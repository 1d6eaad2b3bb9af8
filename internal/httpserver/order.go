package httpserver

import (
	"errors"
	"net/http"

	"developerhorizon/internal/domain"
	"developerhorizon/internal/service/order"
	"github.com/gin-gonic/gin"
)

func (h *handlers) submitOrder(c *gin.Context) {
	var conf order.Confirmation
	if err := c.ShouldBindJSON(&conf); err != nil || conf.PaymentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payment confirmation is required"})
		return
	}

	result, err := h.deps.Orders.Submit(c.Request.Context(), sessionID(c), conf)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			emptyCartRedirect(c)
			return
		}
		if errors.Is(err, order.ErrRecordingFailed) {
			c.JSON(http.StatusBadGateway, gin.H{"error": order.ErrRecordingFailed.Error()})
			return
		}
		h.logger.Printf("order submit failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to submit order"})
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *handlers) orderStatus(c *gin.Context) {
	var body struct {
		OrderID string `json:"orderId"`
		Email   string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, err := h.deps.Orders.Lookup(c.Request.Context(), sessionID(c), body.OrderID, body.Email)
	if err != nil {
		h.writeLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// orderSuccess serves the post-payment confirmation page lookup. The order id
// may come from the query; the email always comes from the session's stored
// handoff.
func (h *handlers) orderSuccess(c *gin.Context) {
	view, err := h.deps.Orders.LookupSuccess(c.Request.Context(), sessionID(c), c.Query("orderId"))
	if err != nil {
		h.writeLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *handlers) writeLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, order.ErrMissingLookup):
		c.JSON(http.StatusBadRequest, gin.H{"error": order.ErrMissingLookup.Error()})
	case errors.Is(err, order.ErrNoDetails):
		c.JSON(http.StatusNotFound, gin.H{"error": order.ErrNoDetails.Error()})
	case errors.Is(err, order.ErrStatusUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": order.ErrStatusUnavailable.Error()})
	default:
		h.logger.Printf("order lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to retrieve order details"})
	}
}
