package user

import (
	domain "petconnect-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	return &domain.User{
		UUID:            model.UUID,
		Email:           model.Email,
		PasswordHash:    model.PasswordHash,
		Role:            domain.Role(model.Role),
		Name:            model.Name,
		Phone:           model.Phone,
		Location:        model.Location,
		CPF:             model.CPF,
		CNPJ:            model.CNPJ,
		CRMV:            model.CRMV,
		ResponsibleName: model.Responsible,
		StoreType:       model.StoreType,
		OperatingHours:  model.OperatingHours,
		SecurityAnswers: domain.SecurityAnswers{
			Pet:    model.AnswerPet,
			Car:    model.AnswerCar,
			Friend: model.AnswerFriend,
		},
		Active: model.Active,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func fromDBModels(models Users) domain.Users {
	us := make(domain.Users, len(models))
	for idx, u := range models {
		us[idx] = fromDBModel(u)
	}

	return us
}

// writeArgs is the column order shared by InsertUser and UpdateUserByUUID.
func writeArgs(u domain.User) []any {
	return []any{
		u.Email,
		u.PasswordHash,
		u.Role.String(),
		u.Name,
		u.Phone,
		u.Location,
		u.CPF,
		u.CNPJ,
		u.CRMV,
		u.ResponsibleName,
		u.StoreType,
		u.OperatingHours,
		u.SecurityAnswers.Pet,
		u.SecurityAnswers.Car,
		u.SecurityAnswers.Friend,
	}
}

// constraintFields maps unique constraints and indexes to the field they guard.
var constraintFields = map[string]domain.Field{
	"users_email_key": domain.FieldEmail,
	"users_cpf_key":   domain.FieldCPF,
	"users_cnpj_key":  domain.FieldCNPJ,
	"users_crmv_key":  domain.FieldCRMV,
}
