package handlers

import (
	"net/http"

	response "ecotech/internal/adapter/http/dto/response"
	"ecotech/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the device categories and treatment methods.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCategories(h.usecase.ListCategories()))
}

func (h *CatalogHandler) ListTreatments(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromTreatments(h.usecase.ListTreatments()))
}
