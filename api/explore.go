package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sadmanCR7/aeropulse/internal/service/explore"
)

type ExploreHandler struct {
	service explore.ExploreUseCase
}

func NewExploreHandler(service explore.ExploreUseCase) *ExploreHandler {
	return &ExploreHandler{service: service}
}

func (h *ExploreHandler) Register(router *gin.RouterGroup) {
	router.GET("/price-map", h.priceMap)
	router.GET("/flights", h.explore)
}

func (h *ExploreHandler) priceMap(c *gin.Context) {
	origin := c.Query("origin")
	if origin == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin airport code is required"})
		return
	}

	prices, err := h.service.PriceMap(c.Request.Context(), origin)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prices)
}

func (h *ExploreHandler) explore(c *gin.Context) {
	origin := c.Query("origin")
	budget, err := strconv.ParseInt(c.Query("budget_cents"), 10, 64)
	if origin == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin and budget_cents are required"})
		return
	}

	result, err := h.service.Explore(c.Request.Context(), explore.ExploreInput{
		Origin:      origin,
		BudgetCents: budget,
		FareClass:   c.Query("fare_class"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
