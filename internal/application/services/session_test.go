package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petconnect-api/internal/domain/errs"
	"petconnect-api/internal/domain/user"
	"petconnect-api/internal/infrastructure/jwt"
)

func TestSessionService(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	sessions := NewSessionService(jwt.New("secret"), env.identity, time.Hour)

	ana := env.register(t, "ana@example.com", user.RoleTutor)
	token, err := sessions.Issue(ana)
	require.NoError(t, err)

	got, err := sessions.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, ana.UUID, got.UUID)
	assert.Equal(t, user.RoleTutor, got.Role)

	ghost, err := sessions.Issue(&user.User{UUID: uuid.New(), Role: user.RoleTutor})
	require.NoError(t, err)
	expired, err := NewSessionService(jwt.New("secret"), env.identity, -time.Minute).Issue(ana)
	require.NoError(t, err)
	forged, err := NewSessionService(jwt.New("other"), env.identity, time.Hour).Issue(ana)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "garbage"},
		{name: "unknown user", token: ghost},
		{name: "expired", token: expired},
		{name: "foreign signature", token: forged},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			u, err := sessions.Verify(ctx, tt.token)
			assert.Nil(t, u)
			assert.ErrorIs(t, err, errs.ErrUnauthorized)
		})
	}

	t.Run("deactivated user", func(t *testing.T) {
		_, err := env.identity.SetActive(ctx, ana.UUID, false)
		require.NoError(t, err)

		_, err = sessions.Verify(ctx, token)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}
