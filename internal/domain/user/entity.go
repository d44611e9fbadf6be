package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	UUID = uuid.UUID
	Role string
	User struct {
		UUID         UUID
		Email        string
		PasswordHash string
		Role         Role
		Name         string
		Phone        string
		Location     string

		// national ids, unique only when non-empty
		CPF  string
		CNPJ string
		CRMV string

		ResponsibleName string
		StoreType       string
		OperatingHours  string

		SecurityAnswers SecurityAnswers

		Active    bool
		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User

	SecurityAnswers struct {
		Pet    string
		Car    string
		Friend string
	}
)

const (
	RoleTutor         Role = "TUTOR"
	RoleVeterinario   Role = "VETERINARIO"
	RoleLojista       Role = "LOJISTA"
	RoleAdministrador Role = "ADMINISTRADOR"
)

var Roles = []Role{RoleTutor, RoleVeterinario, RoleLojista, RoleAdministrador}

// SecurityQuestions are asked in this order; the first one is the recovery question.
var SecurityQuestions = []string{
	"Name of your first pet",
	"Name of your first car",
	"Name of your best friend",
}

func ParseRole(s string) (Role, bool) {
	for _, r := range Roles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

func (r Role) String() string { return string(r) }

func (u *User) IsAdmin() bool { return u.Role == RoleAdministrador }

// RecoveryAnswer is the answer checked by the forgot-password flow.
func (u *User) RecoveryAnswer() string { return u.SecurityAnswers.Pet }
