package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"petconnect-api/internal/domain/errs"
)

const msgInternal = "internal error"

// statusFor maps an error kind to a status. Failed credential checks are 400
// so login and recovery do not tell a wrong secret from an unknown account.
func statusFor(err error) int {
	switch errs.Kind(err) {
	case errs.ErrForbidden:
		return http.StatusForbidden
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrConflict, errs.ErrInvalidArgument, errs.ErrUnauthorized:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, logger *zap.Logger, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(op+" error", zap.Error(err))
		c.JSON(status, gin.H{"error": msgInternal})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// writeRecoveryError folds NotFound into 400 so the recovery routes answer an
// unknown email exactly like a wrong answer.
func writeRecoveryError(c *gin.Context, logger *zap.Logger, op string, err error) {
	if errs.Kind(err) == errs.ErrNotFound {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	writeError(c, logger, op, err)
}

func badRequest(c *gin.Context, details map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "invalid request body",
		"details": details,
	})
}

func invalidJSON(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
}
