package handlers

import (
	"net/http"

	request "ecotech/internal/adapter/http/dto/request"
	response "ecotech/internal/adapter/http/dto/response"
	"ecotech/internal/domain/entities"
	"ecotech/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DisposalRequestHandler drives the disposal request lifecycle. Devices are
// built through the catalog before being added to a request.
type DisposalRequestHandler struct {
	usecase usecase.IDisposalRequestUseCase
	catalog usecase.ICatalogUseCase
}

func NewDisposalRequestHandler(uc usecase.IDisposalRequestUseCase, catalog usecase.ICatalogUseCase) *DisposalRequestHandler {
	return &DisposalRequestHandler{usecase: uc, catalog: catalog}
}

func (h *DisposalRequestHandler) CreateRequest(c *gin.Context) {
	var payload request.CreateDisposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	req, err := h.usecase.CreateRequest(c.Request.Context(), payload.UserID, payload.PointID)
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromDisposalRequest(req))
}

func (h *DisposalRequestHandler) GetRequest(c *gin.Context) {
	req, err := h.usecase.GetRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDisposalRequest(req))
}

// ListRequests returns every request, optionally filtered by ?status=.
func (h *DisposalRequestHandler) ListRequests(c *gin.Context) {
	var filter entities.Status
	if raw := c.Query("status"); raw != "" {
		st, err := entities.ParseStatus(raw)
		if err != nil {
			abortWith(c, mapDomainError(err))
			return
		}
		filter = st
	}

	reqs, err := h.usecase.ListRequests(c.Request.Context())
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}
	if filter != "" {
		kept := reqs[:0]
		for _, r := range reqs {
			if r.Status() == filter {
				kept = append(kept, r)
			}
		}
		reqs = kept
	}
	c.JSON(http.StatusOK, response.FromDisposalRequests(reqs))
}

func (h *DisposalRequestHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	device, err := h.catalog.CreateDevice(payload.Device.Category, payload.Device.ToParams())
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}
	item, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"), device, payload.ResolveQuantity(), payload.Notes)
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromLineItem(item))
}

func (h *DisposalRequestHandler) RemoveItem(c *gin.Context) {
	if err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("item_id")); err != nil {
		abortWith(c, mapDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DisposalRequestHandler) SetItemQuantity(c *gin.Context) {
	var payload request.SetQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	item, err := h.usecase.SetItemQuantity(c.Request.Context(), c.Param("id"), c.Param("item_id"), payload.Quantity)
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLineItem(item))
}

func (h *DisposalRequestHandler) AssignPoint(c *gin.Context) {
	var payload request.AssignPointRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	h.respond(c, func() (*entities.DisposalRequest, error) {
		return h.usecase.AssignPoint(c.Request.Context(), c.Param("id"), payload.PointID)
	})
}

func (h *DisposalRequestHandler) AssignTreatment(c *gin.Context) {
	var payload request.AssignTreatmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	h.respond(c, func() (*entities.DisposalRequest, error) {
		return h.usecase.AssignTreatment(c.Request.Context(), c.Param("id"), payload.Treatment)
	})
}

func (h *DisposalRequestHandler) SchedulePickup(c *gin.Context) {
	var payload request.ScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	h.respond(c, func() (*entities.DisposalRequest, error) {
		return h.usecase.SchedulePickup(c.Request.Context(), c.Param("id"), payload.At)
	})
}

func (h *DisposalRequestHandler) Advance(c *gin.Context) {
	h.respond(c, func() (*entities.DisposalRequest, error) {
		return h.usecase.Advance(c.Request.Context(), c.Param("id"))
	})
}

// Cancel accepts an optional {"reason": "..."} body.
func (h *DisposalRequestHandler) Cancel(c *gin.Context) {
	var payload request.CancelRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			abortWith(c, errInvalidPayload)
			return
		}
	}
	h.respond(c, func() (*entities.DisposalRequest, error) {
		return h.usecase.Cancel(c.Request.Context(), c.Param("id"), payload.Reason)
	})
}

func (h *DisposalRequestHandler) TreatmentCost(c *gin.Context) {
	cost, err := h.usecase.TreatmentCost(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequestCost(cost))
}

func (h *DisposalRequestHandler) respond(c *gin.Context, call func() (*entities.DisposalRequest, error)) {
	req, err := call()
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDisposalRequest(req))
}
