package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"petconnect-api/internal/application/ports"
	domain "petconnect-api/internal/domain/user"
	"petconnect-api/internal/interface/api/rest/dto/auth"
	"petconnect-api/internal/interface/api/rest/dto/user"
	"petconnect-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger   *zap.Logger
	identity ports.IdentityDirectory
	sessions ports.SessionIssuer
}

// NewAuthController registers the auth routes. limit guards the credential
// checking routes.
func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	identity ports.IdentityDirectory,
	sessions ports.SessionIssuer,
	limit gin.HandlerFunc,
) *AuthController {
	ac := &AuthController{
		logger:   logger,
		identity: identity,
		sessions: sessions,
	}

	r.POST(RouteRegister, ac.RegisterHandler)
	r.POST(RouteLogin, limit, ac.LoginHandler)
	r.GET(RouteSecurityQuestions, ac.SecurityQuestionsHandler)
	r.GET(RouteRecoveryQuestion, ac.RecoveryQuestionHandler)
	r.POST(RouteForgotPassword, limit, ac.ForgotPasswordHandler)
	r.POST(RouteResetPassword, limit, ac.ResetPasswordHandler)

	return ac
}

func (ac *AuthController) RegisterHandler(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidJSON(c)
		return
	}
	if details := validator.Validate(req); details != nil {
		badRequest(c, details)
		return
	}

	u, err := ac.identity.Register(c.Request.Context(), auth.ToDomainCandidate(req), req.Password)
	if err != nil {
		writeError(c, ac.logger, "Register()", err)
		return
	}

	ac.respondWithToken(c, http.StatusCreated, u)
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidJSON(c)
		return
	}
	if details := validator.Validate(req); details != nil {
		badRequest(c, details)
		return
	}

	u, err := ac.identity.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, ac.logger, "Authenticate()", err)
		return
	}

	ac.respondWithToken(c, http.StatusOK, u)
}

func (ac *AuthController) respondWithToken(c *gin.Context, status int, u *domain.User) {
	token, err := ac.sessions.Issue(u)
	if err != nil {
		ac.logger.Error("Issue() error", zap.Error(err), zap.Stringer("user_uuid", u.UUID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
		return
	}

	c.JSON(status, auth.TokenResponse{
		AccessToken: token,
		TokenType:   auth.TokenType,
		User:        user.ToResponseUser(*u),
	})
}

func (ac *AuthController) SecurityQuestionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, auth.QuestionsResponse{Questions: domain.SecurityQuestions})
}

// RecoveryQuestionHandler answers the same way for every email.
func (ac *AuthController) RecoveryQuestionHandler(c *gin.Context) {
	if c.Query("email") == "" {
		badRequest(c, map[string]string{"email": "email is required"})
		return
	}
	c.JSON(http.StatusOK, auth.QuestionResponse{Question: domain.SecurityQuestions[0]})
}

func (ac *AuthController) ForgotPasswordHandler(c *gin.Context) {
	var req auth.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidJSON(c)
		return
	}
	if details := validator.Validate(req); details != nil {
		badRequest(c, details)
		return
	}

	if err := ac.identity.CheckSecurityAnswer(c.Request.Context(), req.Email, req.Answer); err != nil {
		writeRecoveryError(c, ac.logger, "CheckSecurityAnswer()", err)
		return
	}

	c.JSON(http.StatusOK, auth.MessageResponse{Message: "security answer verified"})
}

func (ac *AuthController) ResetPasswordHandler(c *gin.Context) {
	var req auth.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidJSON(c)
		return
	}
	if details := validator.Validate(req); details != nil {
		badRequest(c, details)
		return
	}

	if err := ac.identity.ResetPassword(c.Request.Context(), req.Email, req.Answer, req.NewPassword); err != nil {
		writeRecoveryError(c, ac.logger, "ResetPassword()", err)
		return
	}

	c.JSON(http.StatusOK, auth.MessageResponse{Message: "password updated"})
}
