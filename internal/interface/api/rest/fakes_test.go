package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"petconnect-api/internal/application/guard"
	domain "petconnect-api/internal/domain/user"
)

var errNotUsed = errors.New("not used")

type FakeIdentityDirectory struct {
	RegisterFunc            func(ctx context.Context, candidate domain.User, password string) (*domain.User, error)
	AuthenticateFunc        func(ctx context.Context, email, password string) (*domain.User, error)
	CheckSecurityAnswerFunc func(ctx context.Context, email, answer string) error
	ResetPasswordFunc       func(ctx context.Context, email, answer, newPassword string) error
	EditUserFunc            func(ctx context.Context, actor guard.Actor, targetID domain.UUID, changes domain.User, newPassword string) (*domain.User, error)
	DeactivateUserFunc      func(ctx context.Context, actor guard.Actor, targetID domain.UUID) (*domain.User, error)
	ActivateUserFunc        func(ctx context.Context, actor guard.Actor, targetID domain.UUID) (*domain.User, error)
	DeactivateSelfFunc      func(ctx context.Context, actorID domain.UUID) error
	GetByIDFunc             func(ctx context.Context, id domain.UUID) (*domain.User, error)
	ListActiveFunc          func(ctx context.Context, role domain.Role) (domain.Users, error)
}

func (f *FakeIdentityDirectory) Register(ctx context.Context, candidate domain.User, password string) (*domain.User, error) {
	if f.RegisterFunc == nil {
		return nil, errNotUsed
	}
	return f.RegisterFunc(ctx, candidate, password)
}

func (f *FakeIdentityDirectory) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if f.AuthenticateFunc == nil {
		return nil, errNotUsed
	}
	return f.AuthenticateFunc(ctx, email, password)
}

func (f *FakeIdentityDirectory) UpdateProfile(context.Context, domain.UUID, domain.User, string) (*domain.User, error) {
	return nil, errNotUsed
}

func (f *FakeIdentityDirectory) SetActive(context.Context, domain.UUID, bool) (*domain.User, error) {
	return nil, errNotUsed
}

func (f *FakeIdentityDirectory) CheckSecurityAnswer(ctx context.Context, email, answer string) error {
	if f.CheckSecurityAnswerFunc == nil {
		return errNotUsed
	}
	return f.CheckSecurityAnswerFunc(ctx, email, answer)
}

func (f *FakeIdentityDirectory) ResetPassword(ctx context.Context, email, answer, newPassword string) error {
	if f.ResetPasswordFunc == nil {
		return errNotUsed
	}
	return f.ResetPasswordFunc(ctx, email, answer, newPassword)
}

func (f *FakeIdentityDirectory) EditUser(ctx context.Context, actor guard.Actor, targetID domain.UUID, changes domain.User, newPassword string) (*domain.User, error) {
	if f.EditUserFunc == nil {
		return nil, errNotUsed
	}
	return f.EditUserFunc(ctx, actor, targetID, changes, newPassword)
}

func (f *FakeIdentityDirectory) DeactivateUser(ctx context.Context, actor guard.Actor, targetID domain.UUID) (*domain.User, error) {
	if f.DeactivateUserFunc == nil {
		return nil, errNotUsed
	}
	return f.DeactivateUserFunc(ctx, actor, targetID)
}

func (f *FakeIdentityDirectory) ActivateUser(ctx context.Context, actor guard.Actor, targetID domain.UUID) (*domain.User, error) {
	if f.ActivateUserFunc == nil {
		return nil, errNotUsed
	}
	return f.ActivateUserFunc(ctx, actor, targetID)
}

func (f *FakeIdentityDirectory) DeactivateSelf(ctx context.Context, actorID domain.UUID) error {
	if f.DeactivateSelfFunc == nil {
		return errNotUsed
	}
	return f.DeactivateSelfFunc(ctx, actorID)
}

func (f *FakeIdentityDirectory) GetByID(ctx context.Context, id domain.UUID) (*domain.User, error) {
	if f.GetByIDFunc == nil {
		return nil, errNotUsed
	}
	return f.GetByIDFunc(ctx, id)
}

func (f *FakeIdentityDirectory) ListActive(ctx context.Context, role domain.Role) (domain.Users, error) {
	if f.ListActiveFunc == nil {
		return nil, errNotUsed
	}
	return f.ListActiveFunc(ctx, role)
}

type FakeSessions struct {
	IssueFunc  func(u *domain.User) (string, error)
	VerifyFunc func(ctx context.Context, token string) (*domain.User, error)
}

func (f *FakeSessions) Issue(u *domain.User) (string, error) {
	if f.IssueFunc == nil {
		return "", errNotUsed
	}
	return f.IssueFunc(u)
}

func (f *FakeSessions) Verify(ctx context.Context, token string) (*domain.User, error) {
	if f.VerifyFunc == nil {
		return nil, errNotUsed
	}
	return f.VerifyFunc(ctx, token)
}

// noLimit stands in for the rate limiter.
func noLimit(c *gin.Context) { c.Next() }

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}
