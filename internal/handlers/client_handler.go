package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"clientapi/internal/config"
	"clientapi/internal/dto"
	"clientapi/internal/services"
)

type ClientHandler struct {
	Service *services.ClientService
	Paging  config.PaginationConfig
}

func NewClientHandler(service *services.ClientService, paging config.PaginationConfig) *ClientHandler {
	return &ClientHandler{Service: service, Paging: paging}
}

// List godoc
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Param        page          query  int     false  "Page index (0-based)"
// @Param        linesPerPage  query  int     false  "Page size"
// @Param        orderBy       query  string  false  "Sort field"
// @Param        direction     query  string  false  "ASC or DESC"
// @Success      200  {object}  ClientPageResponse
// @Failure      400  {object}  dto.StandardError
// @Router       /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	req, err := pageRequestFromQuery(c, h.Paging)
	if err != nil {
		respondError(c, err)
		return
	}
	page, err := h.Service.FindAllPaged(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListByIncome godoc
// @Summary      List clients with income at or above a threshold
// @Tags         clients
// @Produce      json
// @Param        income        query  number  false  "Minimum income"
// @Param        page          query  int     false  "Page index (0-based)"
// @Param        linesPerPage  query  int     false  "Page size"
// @Param        orderBy       query  string  false  "Sort field"
// @Param        direction     query  string  false  "ASC or DESC"
// @Success      200  {object}  ClientPageResponse
// @Failure      400  {object}  dto.StandardError
// @Router       /clients/income [get]
func (h *ClientHandler) ListByIncome(c *gin.Context) {
	income, err := parseIncome(c)
	if err != nil {
		respondError(c, err)
		return
	}
	req, err := pageRequestFromQuery(c, h.Paging)
	if err != nil {
		respondError(c, err)
		return
	}
	page, err := h.Service.FindByIncome(c.Request.Context(), req, income)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetByID godoc
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Param        id   path  int  true  "Client id"
// @Success      200  {object}  dto.ClientDTO
// @Failure      404  {object}  dto.StandardError
// @Router       /clients/{id} [get]
func (h *ClientHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	client, err := h.Service.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// Create godoc
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        client  body  dto.ClientDTO  true  "Client"
// @Success      201  {object}  dto.ClientDTO
// @Failure      400  {object}  dto.StandardError
// @Failure      422  {object}  dto.StandardError
// @Router       /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.ClientDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}
	created, err := h.Service.Insert(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/clients/%d", created.ID))
	c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary      Replace a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id      path  int            true  "Client id"
// @Param        client  body  dto.ClientDTO  true  "Client"
// @Success      200  {object}  dto.ClientDTO
// @Failure      404  {object}  dto.StandardError
// @Failure      422  {object}  dto.StandardError
// @Router       /clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req dto.ClientDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}
	updated, err := h.Service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary      Delete a client
// @Tags         clients
// @Param        id   path  int  true  "Client id"
// @Success      204
// @Failure      404  {object}  dto.StandardError
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ClientPageResponse documents the page envelope returned by list endpoints.
type ClientPageResponse struct {
	Content       []dto.ClientDTO `json:"content"`
	Page          int             `json:"page"`
	Size          int             `json:"size"`
	TotalElements int64           `json:"total_elements"`
	TotalPages    int             `json:"total_pages"`
}
