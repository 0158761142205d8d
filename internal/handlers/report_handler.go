package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IBilba/pet-a-vet/internal/reports"
)

type ReportHandler struct {
	service *reports.Service
}

func NewReportHandler(service *reports.Service) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) Get(c *gin.Context) {
	report, err := h.service.Build(
		c.Request.Context(),
		c.Query("type"),
		c.Query("dateRange"),
		c.Query("species"),
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
