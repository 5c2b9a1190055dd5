package handlers

import (
	"net/http"

	request "ecotech/internal/adapter/http/dto/request"
	response "ecotech/internal/adapter/http/dto/response"
	"ecotech/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) BuildReport(c *gin.Context) {
	var payload request.BuildReportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	report, err := h.usecase.BuildReport(c.Request.Context(), payload.Title, payload.RequestIDs)
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromReport(report))
}

func (h *ReportHandler) GetReport(c *gin.Context) {
	report, err := h.usecase.GetReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromReport(report))
}

func (h *ReportHandler) ListReports(c *gin.Context) {
	reports, err := h.usecase.ListReports(c.Request.Context())
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromReports(reports))
}
