package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"clientapi/internal/config"
	"clientapi/internal/dto"
	"clientapi/internal/models"
	"clientapi/internal/repositories"
	"clientapi/internal/services"
)

var errBadRequest = errors.New("bad request")

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

func writeError(c *gin.Context, status int, title, message string) {
	c.AbortWithStatusJSON(status, dto.NewStandardError(status, title, message, c.Request.URL.Path))
}

// respondError maps service and repository errors to HTTP responses.
func respondError(c *gin.Context, err error) {
	var (
		notFound   *services.ResourceNotFoundError
		validation validator.ValidationErrors
	)
	switch {
	case errors.As(err, &notFound):
		writeError(c, http.StatusNotFound, "Resource not found", notFound.Error())
	case errors.As(err, &validation):
		writeError(c, http.StatusUnprocessableEntity, "Validation error", validation.Error())
	case errors.Is(err, errBadRequest), errors.Is(err, repositories.ErrInvalidSort):
		writeError(c, http.StatusBadRequest, "Bad request", err.Error())
	default:
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, "Internal server error", "unexpected error")
	}
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, badRequest("invalid id %q", c.Param("id"))
	}
	return id, nil
}

// pageRequestFromQuery reads page, linesPerPage (or size), orderBy and direction.
func pageRequestFromQuery(c *gin.Context, paging config.PaginationConfig) (models.PageRequest, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		return models.PageRequest{}, badRequest("invalid page %q", c.Query("page"))
	}

	size := paging.DefaultSize
	raw := c.Query("linesPerPage")
	if raw == "" {
		raw = c.Query("size")
	}
	if raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil || size < 1 {
			return models.PageRequest{}, badRequest("invalid page size %q", raw)
		}
	}
	if size > paging.MaxSize {
		size = paging.MaxSize
	}

	orderBy := c.DefaultQuery("orderBy", paging.DefaultOrder)
	if !repositories.IsSortable(orderBy) {
		return models.PageRequest{}, badRequest("cannot order by %q", orderBy)
	}

	dir := strings.TrimSpace(c.DefaultQuery("direction", string(models.Asc)))
	if !strings.EqualFold(dir, string(models.Asc)) && !strings.EqualFold(dir, string(models.Desc)) {
		return models.PageRequest{}, badRequest("invalid direction %q", dir)
	}

	return models.NewPageRequest(page, size).WithSort(orderBy, models.ParseDirection(dir)), nil
}

func parseIncome(c *gin.Context) (float64, error) {
	raw := c.DefaultQuery("income", "0")
	income, err := strconv.ParseFloat(raw, 64)
	if err != nil || income < 0 {
		return 0, badRequest("invalid income %q", raw)
	}
	return income, nil
}

// bindError keeps validator failures intact and reports everything else as a malformed body.
func bindError(err error) error {
	var validation validator.ValidationErrors
	if errors.As(err, &validation) {
		return err
	}
	return badRequest("malformed body: %v", err)
}
