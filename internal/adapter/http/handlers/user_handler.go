package handlers

import (
	"net/http"

	request "ecotech/internal/adapter/http/dto/request"
	response "ecotech/internal/adapter/http/dto/response"
	"ecotech/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var payload request.CreateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	user, err := h.usecase.CreateUser(c.Request.Context(), payload.Kind, payload.ToParams())
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(user))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.usecase.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.usecase.ListUsers(c.Request.Context())
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}

func (h *UserHandler) SetActive(c *gin.Context) {
	var payload request.SetActiveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	user, err := h.usecase.SetActive(c.Request.Context(), c.Param("id"), *payload.Active)
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

// ResetMonthlyQuota clears the monthly weight of a company.
func (h *UserHandler) ResetMonthlyQuota(c *gin.Context) {
	user, err := h.usecase.ResetMonthlyQuota(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *UserHandler) Notifications(c *gin.Context) {
	id := c.Param("id")
	notes, err := h.usecase.Notifications(c.Request.Context(), id)
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.NotificationsResponse{UserID: id, Notifications: notes})
}
