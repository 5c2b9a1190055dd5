package handlers

import (
	"net/http"

	request "ecotech/internal/adapter/http/dto/request"
	response "ecotech/internal/adapter/http/dto/response"
	"ecotech/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PointHandler struct {
	usecase usecase.ICollectionPointUseCase
}

func NewPointHandler(uc usecase.ICollectionPointUseCase) *PointHandler {
	return &PointHandler{usecase: uc}
}

func (h *PointHandler) CreatePoint(c *gin.Context) {
	var payload request.CreatePointRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	point, err := h.usecase.CreatePoint(c.Request.Context(), payload.ToParams())
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPoint(point))
}

func (h *PointHandler) FindPoint(c *gin.Context) {
	point, err := h.usecase.FindPoint(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPoint(point))
}

func (h *PointHandler) ListPoints(c *gin.Context) {
	points, err := h.usecase.ListPoints(c.Request.Context())
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPoints(points))
}

func (h *PointHandler) SetActive(c *gin.Context) {
	var payload request.SetActiveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	point, err := h.usecase.SetActive(c.Request.Context(), c.Param("id"), *payload.Active)
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPoint(point))
}
