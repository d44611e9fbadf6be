package auth

import (
	"petconnect-api/internal/domain/user"
	userDTO "petconnect-api/internal/interface/api/rest/dto/user"
)

type (
	RegisterRequest struct {
		userDTO.Profile
		Type     string `json:"user_type" validate:"required,role"`
		Password string `json:"password" validate:"required,min=6,max=72"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	ForgotPasswordRequest struct {
		Email  string `json:"email" validate:"required,email"`
		Answer string `json:"answer" validate:"required"`
	}

	ResetPasswordRequest struct {
		Email       string `json:"email" validate:"required,email"`
		Answer      string `json:"answer" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=6,max=72"`
	}
)

func ToDomainCandidate(r RegisterRequest) user.User {
	u := userDTO.ToDomainUser(r.Profile)
	u.Role = user.Role(r.Type)
	return u
}
