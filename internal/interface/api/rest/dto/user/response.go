package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	// User never carries the password hash or the security answers.
	User struct {
		UUID            uuid.UUID `json:"uuid"`
		Email           string    `json:"email"`
		Type            string    `json:"user_type"`
		Name            string    `json:"name"`
		Phone           string    `json:"phone,omitempty"`
		Location        string    `json:"location,omitempty"`
		CPF             string    `json:"cpf,omitempty"`
		CNPJ            string    `json:"cnpj,omitempty"`
		CRMV            string    `json:"crmv,omitempty"`
		ResponsibleName string    `json:"responsible_name,omitempty"`
		StoreType       string    `json:"store_type,omitempty"`
		OperatingHours  string    `json:"operating_hours,omitempty"`
		Active          bool      `json:"active"`
		CreatedAt       time.Time `json:"created_at"`
		UpdatedAt       time.Time `json:"updated_at"`
	}
	Users        []User
	ResponseData struct {
		Data Users `json:"data"`
	}
)
