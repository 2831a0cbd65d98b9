package handler

import (
	"net/http"

	"clubhub-backend/internal/models"
	"clubhub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type followRequest struct {
	ClubID string `json:"clubId" binding:"required"`
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Create adds a profile without credentials; accounts that log in are made
// through /signup.
func (h *UserHandler) Create(c *gin.Context) {
	var body models.CreateUserInput
	if !bindJSON(c, &body) {
		return
	}
	user, err := h.users.Create(c.Request.Context(), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	var body models.UpdateUserInput
	if !bindJSON(c, &body) {
		return
	}
	user, err := h.users.Update(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) Following(c *gin.Context) {
	clubs, err := h.users.Following(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, clubs)
}

func (h *UserHandler) Organizing(c *gin.Context) {
	clubs, err := h.users.Organizing(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, clubs)
}

func (h *UserHandler) IsOrganizing(c *gin.Context) {
	ok, err := h.users.IsOrganizing(c.Request.Context(), c.Param("id"), c.Param("clubId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"organizing": ok})
}

func (h *UserHandler) Follow(c *gin.Context) {
	var body followRequest
	if !bindJSON(c, &body) {
		return
	}
	club, err := h.users.Follow(c.Request.Context(), c.Param("id"), body.ClubID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, club)
}

func (h *UserHandler) Unfollow(c *gin.Context) {
	club, err := h.users.Unfollow(c.Request.Context(), c.Param("id"), c.Param("clubId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, club)
}
