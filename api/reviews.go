package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sadmanCR7/aeropulse/internal/service/reviews"
)

type ReviewHandler struct {
	service reviews.ReviewUseCase
}

type addReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func NewReviewHandler(service reviews.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) Register(router *gin.RouterGroup) {
	router.GET("/:id/reviews", h.list)
	router.POST("/:id/reviews", h.add)
}

func (h *ReviewHandler) list(c *gin.Context) {
	flightID, ok := flightIDParam(c)
	if !ok {
		return
	}

	result, err := h.service.ListByFlight(c.Request.Context(), flightID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ReviewHandler) add(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	flightID, ok := flightIDParam(c)
	if !ok {
		return
	}

	var req addReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.service.AddReview(c.Request.Context(), reviews.AddReviewInput{
		UserID:   userID,
		FlightID: flightID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func flightIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
