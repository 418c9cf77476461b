package models

import "time"

// Client is a registered customer of the service.
type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf"`
	Income    float64   `json:"income"`
	BirthDate time.Time `json:"birth_date"`
	Status    int       `json:"status"`
}
