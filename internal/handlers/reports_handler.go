package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"clientapi/internal/config"
	"clientapi/internal/dto"
	"clientapi/internal/models"
	"clientapi/internal/pdf"
	"clientapi/internal/services"
)

type ReportHandler struct {
	Service   *services.ClientService
	Generator pdf.Generator
	Paging    config.PaginationConfig
	now       func() time.Time
}

func NewReportHandler(service *services.ClientService, gen pdf.Generator, paging config.PaginationConfig) *ReportHandler {
	return &ReportHandler{Service: service, Generator: gen, Paging: paging, now: time.Now}
}

// ClientsPDF godoc
// @Summary      Client listing as PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        income        query  number  false  "Minimum income"
// @Param        page          query  int     false  "Page index (0-based)"
// @Param        linesPerPage  query  int     false  "Page size"
// @Param        orderBy       query  string  false  "Sort field"
// @Param        direction     query  string  false  "ASC or DESC"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.StandardError
// @Router       /reports/clients [get]
func (h *ReportHandler) ClientsPDF(c *gin.Context) {
	req, err := pageRequestFromQuery(c, h.Paging)
	if err != nil {
		respondError(c, err)
		return
	}

	var (
		page   models.Page[dto.ClientDTO]
		filter string
	)
	if _, ok := c.GetQuery("income"); ok {
		income, err := parseIncome(c)
		if err != nil {
			respondError(c, err)
			return
		}
		filter = fmt.Sprintf("income >= %.2f", income)
		page, err = h.Service.FindByIncome(c.Request.Context(), req, income)
		if err != nil {
			respondError(c, err)
			return
		}
	} else {
		page, err = h.Service.FindAllPaged(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
	}

	var buf bytes.Buffer
	if err := h.Generator.WriteClientReport(&buf, pdf.ClientReportData{
		Page:        page,
		Filter:      filter,
		GeneratedAt: h.now(),
	}); err != nil {
		respondError(c, fmt.Errorf("render client report: %w", err))
		return
	}

	c.Header("Content-Disposition", `inline; filename="clients.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
