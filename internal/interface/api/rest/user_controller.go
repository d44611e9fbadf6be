package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"petconnect-api/internal/application/guard"
	"petconnect-api/internal/application/ports"
	domain "petconnect-api/internal/domain/user"
	"petconnect-api/internal/interface/api/rest/dto/user"
	"petconnect-api/internal/interface/api/rest/middleware"
	"petconnect-api/internal/interface/api/rest/validator"
)

type UserController struct {
	identity ports.IdentityDirectory
	logger   *zap.Logger
}

// NewUserController registers the user routes; all of them need a session.
func NewUserController(
	r *gin.Engine,
	identity ports.IdentityDirectory,
	logger *zap.Logger,
	authMW gin.HandlerFunc,
) *UserController {
	uc := &UserController{
		identity: identity,
		logger:   logger,
	}

	g := r.Group(RouteUsers, authMW)
	g.GET("", uc.GetUsersHandler)
	g.GET("/profile", uc.GetProfileHandler)
	g.PUT("/profile", uc.UpdateProfileHandler)
	g.DELETE("/profile", uc.DeleteProfileHandler)
	g.GET("/type/:user_type", uc.GetUsersByTypeHandler)
	g.GET("/:user_id", uc.GetUserHandler)
	g.PUT("/:user_id", uc.UpdateUserHandler)
	g.DELETE("/:user_id", uc.DeactivateUserHandler)
	g.POST("/:user_id/activate", uc.ActivateUserHandler)

	return uc
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	uc.listUsers(c, "")
}

func (uc *UserController) GetUsersByTypeHandler(c *gin.Context) {
	role, ok := domain.ParseRole(strings.ToUpper(strings.TrimSpace(c.Param("user_type"))))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown user type"})
		return
	}
	uc.listUsers(c, role)
}

func (uc *UserController) listUsers(c *gin.Context, role domain.Role) {
	users, err := uc.identity.ListActive(c.Request.Context(), role)
	if err != nil {
		writeError(c, uc.logger, "ListActive()", err)
		return
	}

	c.JSON(http.StatusOK, user.ResponseData{
		Data: user.ToResponseUsers(users),
	})
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	uc.respondUser(c, id)
}

func (uc *UserController) GetProfileHandler(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	uc.respondUser(c, actor.ID)
}

func (uc *UserController) respondUser(c *gin.Context, id domain.UUID) {
	u, err := uc.identity.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, uc.logger, "GetByID()", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) UpdateProfileHandler(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	uc.editUser(c, actor, actor.ID)
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	uc.editUser(c, actor, id)
}

func (uc *UserController) editUser(c *gin.Context, actor guard.Actor, target domain.UUID) {
	var req user.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidJSON(c)
		return
	}
	if details := validator.Validate(req); details != nil {
		badRequest(c, details)
		return
	}

	u, err := uc.identity.EditUser(c.Request.Context(), actor, target, user.ToDomainUser(req.Profile), req.Password)
	if err != nil {
		writeError(c, uc.logger, "EditUser()", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) DeleteProfileHandler(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	if err := uc.identity.DeactivateSelf(c.Request.Context(), actor.ID); err != nil {
		writeError(c, uc.logger, "DeactivateSelf()", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (uc *UserController) DeactivateUserHandler(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	if _, err := uc.identity.DeactivateUser(c.Request.Context(), actor, id); err != nil {
		writeError(c, uc.logger, "DeactivateUser()", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (uc *UserController) ActivateUserHandler(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	u, err := uc.identity.ActivateUser(c.Request.Context(), actor, id)
	if err != nil {
		writeError(c, uc.logger, "ActivateUser()", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func userIDParam(c *gin.Context) (domain.UUID, bool) {
	ok, id := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return domain.UUID{}, false
	}
	return id, true
}

func actorOrAbort(c *gin.Context) (guard.Actor, bool) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return guard.Actor{}, false
	}
	return actor, true
}
