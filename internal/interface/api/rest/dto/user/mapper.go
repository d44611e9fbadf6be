package user

import (
	"petconnect-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	return User{
		UUID:            uDomain.UUID,
		Email:           uDomain.Email,
		Type:            uDomain.Role.String(),
		Name:            uDomain.Name,
		Phone:           uDomain.Phone,
		Location:        uDomain.Location,
		CPF:             uDomain.CPF,
		CNPJ:            uDomain.CNPJ,
		CRMV:            uDomain.CRMV,
		ResponsibleName: uDomain.ResponsibleName,
		StoreType:       uDomain.StoreType,
		OperatingHours:  uDomain.OperatingHours,
		Active:          uDomain.Active,
		CreatedAt:       uDomain.CreatedAt,
		UpdatedAt:       uDomain.UpdatedAt,
	}
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

func ToDomainUser(p Profile) user.User {
	return user.User{
		Email:           p.Email,
		Name:            p.Name,
		Phone:           p.Phone,
		Location:        p.Location,
		CPF:             p.CPF,
		CNPJ:            p.CNPJ,
		CRMV:            p.CRMV,
		ResponsibleName: p.ResponsibleName,
		StoreType:       p.StoreType,
		OperatingHours:  p.OperatingHours,
		SecurityAnswers: user.SecurityAnswers{
			Pet:    p.SecurityAnswers.Pet,
			Car:    p.SecurityAnswers.Car,
			Friend: p.SecurityAnswers.Friend,
		},
	}
}
