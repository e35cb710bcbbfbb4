package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sadmanCR7/aeropulse/internal/service/accounts"
)

type AccountHandler struct {
	service accounts.AccountUseCase
}

type registrationStepResponse struct {
	Token string `json:"token"`
}

type contactStepRequest struct {
	Token string `json:"token"`
	accounts.ContactInput
}

type completeStepRequest struct {
	Token string `json:"token"`
	accounts.CredentialsInput
}

func NewAccountHandler(service accounts.AccountUseCase) *AccountHandler {
	return &AccountHandler{service: service}
}

func (h *AccountHandler) Register(router *gin.RouterGroup) {
	router.POST("/register", h.begin)
	router.POST("/register/contact", h.contact)
	router.POST("/register/complete", h.complete)
	router.GET("/profile", h.profile)
	router.PUT("/profile", h.updateProfile)
}

func (h *AccountHandler) begin(c *gin.Context) {
	var req accounts.NamesInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.service.BeginRegistration(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, registrationStepResponse{Token: token})
}

func (h *AccountHandler) contact(c *gin.Context) {
	var req contactStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.service.SubmitContact(c.Request.Context(), req.Token, req.ContactInput)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, registrationStepResponse{Token: token})
}

func (h *AccountHandler) complete(c *gin.Context) {
	var req completeStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.CompleteRegistration(c.Request.Context(), req.Token, req.CredentialsInput)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"email":      user.Email,
	})
}

func (h *AccountHandler) profile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"username":     user.Username,
		"first_name":   user.FirstName,
		"last_name":    user.LastName,
		"email":        user.Email,
		"phone_number": profile.PhoneNumber,
		"address":      profile.Address,
		"gender":       profile.Gender,
	})
}

func (h *AccountHandler) updateProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req accounts.ContactInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
