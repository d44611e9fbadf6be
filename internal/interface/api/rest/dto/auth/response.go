package auth

import (
	userDTO "petconnect-api/internal/interface/api/rest/dto/user"
)

const TokenType = "Bearer"

type (
	TokenResponse struct {
		AccessToken string       `json:"access_token"`
		TokenType   string       `json:"token_type"`
		User        userDTO.User `json:"user"`
	}

	QuestionsResponse struct {
		Questions []string `json:"questions"`
	}

	QuestionResponse struct {
		Question string `json:"question"`
	}

	MessageResponse struct {
		Message string `json:"message"`
	}
)
