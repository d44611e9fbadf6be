package user

type (
	SecurityAnswers struct {
		Pet    string `json:"pet" validate:"required"`
		Car    string `json:"car" validate:"required"`
		Friend string `json:"friend" validate:"required"`
	}

	// Profile is the editable part of an account, shared by register and update.
	Profile struct {
		Email           string          `json:"email" validate:"required,email"`
		Name            string          `json:"name" validate:"required,max=120"`
		Phone           string          `json:"phone" validate:"omitempty,max=32"`
		Location        string          `json:"location" validate:"omitempty,max=255"`
		CPF             string          `json:"cpf" validate:"omitempty,max=14"`
		CNPJ            string          `json:"cnpj" validate:"omitempty,max=18"`
		CRMV            string          `json:"crmv" validate:"omitempty,max=20"`
		ResponsibleName string          `json:"responsible_name" validate:"omitempty,max=120"`
		StoreType       string          `json:"store_type" validate:"omitempty,max=64"`
		OperatingHours  string          `json:"operating_hours" validate:"omitempty,max=120"`
		SecurityAnswers SecurityAnswers `json:"security_answers"`
	}

	// UpdateRequest replaces the profile; an empty password keeps the current one.
	UpdateRequest struct {
		Profile
		Password string `json:"password" validate:"omitempty,min=6,max=72"`
	}
)
