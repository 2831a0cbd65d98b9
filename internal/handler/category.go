package handler

import (
	"net/http"

	"clubhub-backend/internal/models"
	"clubhub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categories *service.CategoryService
}

func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

type createCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var body createCategoryRequest
	if !bindJSON(c, &body) {
		return
	}
	category, err := h.categories.Create(c.Request.Context(), models.CreateCategoryInput{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Clubs(c *gin.Context) {
	clubs, err := h.categories.Clubs(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, clubs)
}
