package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		UUID           uuid.UUID
		Email          string
		PasswordHash   string
		Role           string
		Name           string
		Phone          string
		Location       string
		CPF            string
		CNPJ           string
		CRMV           string
		Responsible    string
		StoreType      string
		OperatingHours string
		AnswerPet      string
		AnswerCar      string
		AnswerFriend   string
		Active         bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
