package handler

import (
	"errors"
	"net/http"

	"clubhub-backend/internal/auth"
	"clubhub-backend/internal/models"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{auth: svc}
}

type signupRequest struct {
	Username    string  `json:"username" binding:"required"`
	Email       string  `json:"email" binding:"required"`
	Password    string  `json:"password" binding:"required"`
	PhoneNumber *string `json:"phoneNumber"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var body signupRequest
	if !bindJSON(c, &body) {
		return
	}

	user, err := h.auth.Signup(c.Request.Context(), auth.SignupInput{
		CreateUserInput: models.CreateUserInput{
			Username:    body.Username,
			Email:       body.Email,
			PhoneNumber: body.PhoneNumber,
			FirstName:   body.FirstName,
			LastName:    body.LastName,
		},
		Password: body.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Signup successful",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var body loginRequest
	if !bindJSON(c, &body) {
		return
	}

	token, err := h.auth.Login(c.Request.Context(), body.Email, body.Password)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		jsonError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	case errors.Is(err, auth.ErrNoSigningKey):
		jsonError(c, http.StatusServiceUnavailable, "login is not enabled")
		return
	case err != nil:
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
