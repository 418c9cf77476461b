package dto

import (
	"time"

	"clientapi/internal/models"
)

// ClientDTO is the view of a client exchanged at the service boundary.
type ClientDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" binding:"required"`
	CPF       string    `json:"cpf"`
	Income    float64   `json:"income" binding:"gte=0"`
	BirthDate time.Time `json:"birth_date"`
	Status    int       `json:"status" binding:"gte=0"`
}

func NewClientDTO(c *models.Client) ClientDTO {
	return ClientDTO{
		ID:        c.ID,
		Name:      c.Name,
		CPF:       c.CPF,
		Income:    c.Income,
		BirthDate: c.BirthDate,
		Status:    c.Status,
	}
}

func (d ClientDTO) ToEntity() *models.Client {
	return &models.Client{
		ID:        d.ID,
		Name:      d.Name,
		CPF:       d.CPF,
		Income:    d.Income,
		BirthDate: d.BirthDate,
		Status:    d.Status,
	}
}

// ClientPage maps a page of records to a page of transfer objects.
func ClientPage(p models.Page[models.Client]) models.Page[ClientDTO] {
	return models.MapPage(p, func(c models.Client) ClientDTO {
		return NewClientDTO(&c)
	})
}
