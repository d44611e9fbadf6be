package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"petconnect-api/internal/application/guard"
	"petconnect-api/internal/application/ports"
	"petconnect-api/internal/domain/errs"
	domain "petconnect-api/internal/domain/user"
)

const (
	msgInvalidCredentials = "invalid email or password"
	msgInvalidAnswer      = "invalid email or security answer"
	msgUserNotFound       = "user not found"

	dummyPassword = "petconnect-timing-dummy"
)

type IdentityService struct {
	observer

	users     domain.Repository
	hasher    ports.PasswordHasher
	answers   ports.AnswerVerifier
	dummyHash string
}

func NewIdentityService(
	users domain.Repository,
	hasher ports.PasswordHasher,
	answers ports.AnswerVerifier,
	events ports.EventPublisher,
	mCounter *prometheus.CounterVec,
) (*IdentityService, error) {
	dummy, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}

	return &IdentityService{
		observer:  observer{events: events, mCounter: mCounter},
		users:     users,
		hasher:    hasher,
		answers:   answers,
		dummyHash: dummy,
	}, nil
}

func (s *IdentityService) Register(ctx context.Context, candidate domain.User, password string) (_ *domain.User, err error) {
	ctx, span := startSpan(ctx, "identity.register")
	defer func() { endSpan(span, err) }()

	candidate.Email = strings.TrimSpace(candidate.Email)
	if err = validateCandidate(candidate, password); err != nil {
		return nil, err
	}

	candidate.UUID = uuid.Nil
	if err = s.checkUnique(ctx, &candidate); err != nil {
		return nil, err
	}

	candidate.PasswordHash, err = s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if candidate.SecurityAnswers, err = s.sealAnswers(candidate.SecurityAnswers); err != nil {
		return nil, err
	}
	candidate.Active = true

	u, err := s.users.CreateUser(ctx, candidate)
	if err != nil {
		return nil, err
	}

	s.count("user_registered_total")
	s.emit(ctx, "user", "registered", u.UUID.String(), u.UUID.String())

	return u, nil
}

// Authenticate never tells an unknown email from a wrong password.
func (s *IdentityService) Authenticate(ctx context.Context, email, password string) (_ *domain.User, err error) {
	ctx, span := startSpan(ctx, "identity.authenticate")
	defer func() { endSpan(span, err) }()

	u, err := s.users.FetchActiveUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if u == nil {
		_ = s.hasher.Compare(s.dummyHash, password)
		s.count("login_failed_total")
		return nil, errs.Unauthorized(msgInvalidCredentials)
	}
	if s.hasher.Compare(u.PasswordHash, password) != nil {
		s.count("login_failed_total")
		return nil, errs.Unauthorized(msgInvalidCredentials)
	}

	s.count("login_succeeded_total")

	return u, nil
}

// UpdateProfile overwrites every mutable field of the target with changes.
// Role and active flag are not mutable here; the password only changes when
// newPassword is not empty.
func (s *IdentityService) UpdateProfile(
	ctx context.Context,
	targetID domain.UUID,
	changes domain.User,
	newPassword string,
) (*domain.User, error) {
	return s.updateProfile(ctx, "", targetID, changes, newPassword)
}

// updateProfile records actorID on the audit event; empty means unknown.
func (s *IdentityService) updateProfile(
	ctx context.Context,
	actorID string,
	targetID domain.UUID,
	changes domain.User,
	newPassword string,
) (_ *domain.User, err error) {
	ctx, span := startSpan(ctx, "identity.update_profile")
	defer func() { endSpan(span, err) }()

	cur, err := s.users.FetchUserByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, errs.NotFound(msgUserNotFound)
	}

	next := *cur
	next.Email = strings.TrimSpace(changes.Email)
	next.Name = changes.Name
	next.Phone = changes.Phone
	next.Location = changes.Location
	next.CPF = changes.CPF
	next.CNPJ = changes.CNPJ
	next.CRMV = changes.CRMV
	next.ResponsibleName = changes.ResponsibleName
	next.StoreType = changes.StoreType
	next.OperatingHours = changes.OperatingHours

	if next.Email == "" {
		return nil, errs.InvalidArgument("email is required")
	}
	if err = s.checkUnique(ctx, &next); err != nil {
		return nil, err
	}

	if next.SecurityAnswers, err = s.sealAnswers(changes.SecurityAnswers); err != nil {
		return nil, err
	}
	if newPassword != "" {
		if next.PasswordHash, err = s.hasher.Hash(newPassword); err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
	}

	u, err := s.users.UpdateUser(ctx, next)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errs.NotFound(msgUserNotFound)
	}

	s.count("user_updated_total")
	s.emit(ctx, "user", "updated", u.UUID.String(), actorID)

	return u, nil
}

func (s *IdentityService) SetActive(ctx context.Context, targetID domain.UUID, active bool) (*domain.User, error) {
	return s.setActive(ctx, "", targetID, active)
}

func (s *IdentityService) setActive(ctx context.Context, actorID string, targetID domain.UUID, active bool) (_ *domain.User, err error) {
	ctx, span := startSpan(ctx, "identity.set_active")
	defer func() { endSpan(span, err) }()

	u, err := s.users.SetActive(ctx, targetID, active)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errs.NotFound(msgUserNotFound)
	}

	action := "deactivated"
	if active {
		action = "activated"
	}
	s.count("user_" + action + "_total")
	s.emit(ctx, "user", action, u.UUID.String(), actorID)

	return u, nil
}

// CheckSecurityAnswer returns nil when answer matches the recovery answer of
// the active user registered with email. A wrong answer is ErrUnauthorized and
// an unknown email ErrNotFound; both carry the same message.
func (s *IdentityService) CheckSecurityAnswer(ctx context.Context, email, answer string) (err error) {
	ctx, span := startSpan(ctx, "identity.check_security_answer")
	defer func() { endSpan(span, err) }()

	_, err = s.recoverable(ctx, email, answer)
	return err
}

// ResetPassword re-checks the recovery answer before storing newPassword.
func (s *IdentityService) ResetPassword(ctx context.Context, email, answer, newPassword string) (err error) {
	ctx, span := startSpan(ctx, "identity.reset_password")
	defer func() { endSpan(span, err) }()

	if newPassword == "" {
		return errs.InvalidArgument("new password is required")
	}

	u, err := s.recoverable(ctx, email, answer)
	if err != nil {
		return err
	}

	if u.PasswordHash, err = s.hasher.Hash(newPassword); err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	updated, err := s.users.UpdateUser(ctx, *u)
	if err != nil {
		return err
	}
	if updated == nil {
		return errs.NotFound(msgInvalidAnswer)
	}

	s.count("password_reset_total")
	s.emit(ctx, "user", "password_reset", u.UUID.String(), u.UUID.String())

	return nil
}

func (s *IdentityService) recoverable(ctx context.Context, email, answer string) (*domain.User, error) {
	u, err := s.users.FetchActiveUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if u == nil {
		s.count("recovery_failed_total")
		return nil, errs.NotFound(msgInvalidAnswer)
	}
	if !s.answers.Verify(u.RecoveryAnswer(), answer) {
		s.count("recovery_failed_total")
		return nil, errs.Unauthorized(msgInvalidAnswer)
	}
	return u, nil
}

func (s *IdentityService) EditUser(
	ctx context.Context,
	actor guard.Actor,
	targetID domain.UUID,
	changes domain.User,
	newPassword string,
) (*domain.User, error) {
	if err := guard.Authorize(actor, guard.ActionEditUser, targetID); err != nil {
		s.countDenied(err)
		return nil, err
	}
	return s.updateProfile(ctx, actor.ID.String(), targetID, changes, newPassword)
}

func (s *IdentityService) DeactivateUser(ctx context.Context, actor guard.Actor, targetID domain.UUID) (*domain.User, error) {
	if err := guard.Authorize(actor, guard.ActionDeactivateUser, targetID); err != nil {
		s.countDenied(err)
		return nil, err
	}
	return s.setActive(ctx, actor.ID.String(), targetID, false)
}

func (s *IdentityService) ActivateUser(ctx context.Context, actor guard.Actor, targetID domain.UUID) (*domain.User, error) {
	if err := guard.Authorize(actor, guard.ActionReactivateUser, targetID); err != nil {
		s.countDenied(err)
		return nil, err
	}
	return s.setActive(ctx, actor.ID.String(), targetID, true)
}

// DeactivateSelf is the self-service account deletion.
func (s *IdentityService) DeactivateSelf(ctx context.Context, actorID domain.UUID) error {
	_, err := s.setActive(ctx, actorID.String(), actorID, false)
	return err
}

// GetByID returns inactive users too.
func (s *IdentityService) GetByID(ctx context.Context, id domain.UUID) (*domain.User, error) {
	u, err := s.users.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errs.NotFound(msgUserNotFound)
	}
	return u, nil
}

// ListActive lists active users, optionally of a single role.
func (s *IdentityService) ListActive(ctx context.Context, role domain.Role) (domain.Users, error) {
	return s.users.FetchActiveUsers(ctx, role)
}

// checkUnique only produces friendlier messages; the store enforces the same
// constraints on write.
func (s *IdentityService) checkUnique(ctx context.Context, u *domain.User) error {
	for _, f := range domain.UniqueFields {
		v := u.Value(f)
		if v == "" {
			continue
		}
		taken, err := s.users.ExistsBy(ctx, f, v, u.UUID)
		if err != nil {
			return err
		}
		if taken {
			return domain.DuplicateError(f)
		}
	}
	return nil
}

func (s *IdentityService) sealAnswers(a domain.SecurityAnswers) (domain.SecurityAnswers, error) {
	var (
		out domain.SecurityAnswers
		err error
	)
	if out.Pet, err = s.answers.Seal(a.Pet); err != nil {
		return out, fmt.Errorf("seal security answer: %w", err)
	}
	if out.Car, err = s.answers.Seal(a.Car); err != nil {
		return out, fmt.Errorf("seal security answer: %w", err)
	}
	if out.Friend, err = s.answers.Seal(a.Friend); err != nil {
		return out, fmt.Errorf("seal security answer: %w", err)
	}
	return out, nil
}

func validateCandidate(u domain.User, password string) error {
	switch {
	case u.Email == "":
		return errs.InvalidArgument("email is required")
	case password == "":
		return errs.InvalidArgument("password is required")
	case u.Name == "":
		return errs.InvalidArgument("name is required")
	}
	// Any role may self-register, ADMINISTRADOR included.
	if _, ok := domain.ParseRole(string(u.Role)); !ok {
		return errs.InvalidArgument("unknown user type")
	}
	return nil
}
