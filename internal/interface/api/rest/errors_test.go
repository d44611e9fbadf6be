package rest

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"petconnect-api/internal/domain/errs"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errs.Forbidden("no"), http.StatusForbidden},
		{errs.NotFound("gone"), http.StatusNotFound},
		{errs.Conflict("email already registered"), http.StatusBadRequest},
		{errs.InvalidArgument("stock cannot be negative"), http.StatusBadRequest},
		{errs.Unauthorized("invalid email or password"), http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", errs.Forbidden("no")), http.StatusForbidden},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
