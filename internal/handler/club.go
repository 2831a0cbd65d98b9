package handler

import (
	"errors"
	"net/http"
	"strings"

	"clubhub-backend/internal/apperr"
	"clubhub-backend/internal/middleware"
	"clubhub-backend/internal/models"
	"clubhub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type ClubHandler struct {
	clubs *service.ClubService
}

func NewClubHandler(clubs *service.ClubService) *ClubHandler {
	return &ClubHandler{clubs: clubs}
}

type createClubRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	// Defaults to the caller, which only resolves for tokens issued by /login.
	// Identity-provider subjects are not user ids and must pass it explicitly.
	OrganizerID string `json:"organizerId"`
	Registered  bool   `json:"registered"`
}

type reassignOrganizerRequest struct {
	OrganizerID string `json:"organizerId" binding:"required"`
}

type addCategoryRequest struct {
	CategoryID string `json:"categoryId" binding:"required"`
}

type replaceCategoriesRequest struct {
	CategoryIDs []string `json:"categoryIds" binding:"required"`
}

func (h *ClubHandler) List(c *gin.Context) {
	clubs, err := h.clubs.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, clubs)
}

func (h *ClubHandler) Get(c *gin.Context) {
	club, err := h.clubs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, club)
}

func (h *ClubHandler) Create(c *gin.Context) {
	var body createClubRequest
	if !bindJSON(c, &body) {
		return
	}
	defaulted := body.OrganizerID == ""
	if defaulted {
		body.OrganizerID = middleware.UserID(c)
	}

	club, err := h.clubs.Create(c.Request.Context(), models.CreateClubInput{
		Name:        body.Name,
		Description: body.Description,
		OrganizerID: body.OrganizerID,
		Registered:  body.Registered,
	})
	// With a non-blank name the only validation failure left is the organizer.
	if defaulted && errors.Is(err, apperr.ErrValidation) && strings.TrimSpace(body.Name) != "" {
		jsonError(c, http.StatusBadRequest, "organizerId is required: the caller is not a registered user")
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, club)
}

func (h *ClubHandler) Update(c *gin.Context) {
	var body models.UpdateClubInput
	if !bindJSON(c, &body) {
		return
	}
	club, err := h.clubs.Update(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, club)
}

func (h *ClubHandler) Delete(c *gin.Context) {
	if err := h.clubs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ClubHandler) Organizer(c *gin.Context) {
	user, err := h.clubs.Organizer(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *ClubHandler) ReassignOrganizer(c *gin.Context) {
	var body reassignOrganizerRequest
	if !bindJSON(c, &body) {
		return
	}
	user, err := h.clubs.ReassignOrganizer(c.Request.Context(), c.Param("id"), body.OrganizerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *ClubHandler) Followers(c *gin.Context) {
	users, err := h.clubs.Followers(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *ClubHandler) Registered(c *gin.Context) {
	registered, err := h.clubs.Registered(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"registered": registered})
}

func (h *ClubHandler) Events(c *gin.Context) {
	events, err := h.clubs.Events(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *ClubHandler) Categories(c *gin.Context) {
	categories, err := h.clubs.Categories(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *ClubHandler) AddCategory(c *gin.Context) {
	var body addCategoryRequest
	if !bindJSON(c, &body) {
		return
	}
	club, err := h.clubs.AddCategory(c.Request.Context(), c.Param("id"), body.CategoryID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, club)
}

func (h *ClubHandler) ReplaceCategories(c *gin.Context) {
	var body replaceCategoriesRequest
	if !bindJSON(c, &body) {
		return
	}
	categories, err := h.clubs.ReplaceCategories(c.Request.Context(), c.Param("id"), body.CategoryIDs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *ClubHandler) RemoveCategory(c *gin.Context) {
	club, err := h.clubs.RemoveCategory(c.Request.Context(), c.Param("id"), c.Param("categoryId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, club)
}
