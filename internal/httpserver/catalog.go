package httpserver

import (
	"net/http"

	"developerhorizon/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

// listProducts triggers a catalog fetch when one is needed and returns the
// current list along with the fetch state.
func (h *handlers) listProducts(c *gin.Context) {
	h.deps.Catalog.Fetch(c.Request.Context())

	status := h.deps.Catalog.Status()
	if status == catalog.StatusFailed {
		c.JSON(http.StatusBadGateway, gin.H{
			"status": status,
			"error":  h.deps.Catalog.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"data":   h.deps.Catalog.Products(),
	})
}

func (h *handlers) getProduct(c *gin.Context) {
	h.deps.Catalog.Fetch(c.Request.Context())

	p := h.deps.Catalog.ProductByID(c.Param("productId"))
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": p})
}
