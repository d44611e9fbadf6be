// Package guard decides whether an acting user may perform an action on a
// target. Every decision is a pure function of the actor, the action and the
// target's owner; a denial is always an errs.ErrForbidden.
package guard

import (
	"github.com/google/uuid"

	"petconnect-api/internal/domain/errs"
	"petconnect-api/internal/domain/resource"
	"petconnect-api/internal/domain/user"
)

type Actor struct {
	ID   user.UUID
	Role user.Role
}

func ActorOf(u *user.User) Actor {
	return Actor{ID: u.UUID, Role: u.Role}
}

type Action string

const (
	ActionCreatePet        Action = "pet.create"
	ActionCreateProduct    Action = "product.create"
	ActionCreateVetService Action = "service.create"
	ActionUpdateResource   Action = "resource.update"
	ActionDeleteResource   Action = "resource.delete"
	ActionUpdateStock      Action = "product.update_stock"
	ActionEditUser         Action = "user.edit"
	ActionDeactivateUser   Action = "user.deactivate"
	ActionReactivateUser   Action = "user.reactivate"
)

type Rule int

const (
	RuleOwnerOnly Rule = iota + 1
	RuleCreatorRole
	RuleAdminOnly
	RuleAdminOrSelf
)

type policy struct {
	rule Rule
	role user.Role
	deny string
}

// Owned resources have no administrator override.
var policies = map[Action]policy{
	ActionCreatePet:        {rule: RuleCreatorRole, role: user.RoleTutor, deny: "only tutors can register pets"},
	ActionCreateProduct:    {rule: RuleCreatorRole, role: user.RoleLojista, deny: "only shop owners can create products"},
	ActionCreateVetService: {rule: RuleCreatorRole, role: user.RoleVeterinario, deny: "only veterinarians can create services"},
	ActionUpdateResource:   {rule: RuleOwnerOnly, deny: "you are not allowed to edit this resource"},
	ActionDeleteResource:   {rule: RuleOwnerOnly, deny: "you are not allowed to delete this resource"},
	ActionUpdateStock:      {rule: RuleOwnerOnly, deny: "you are not allowed to update this product"},
	ActionEditUser:         {rule: RuleAdminOrSelf, deny: "you are not allowed to edit this user"},
	ActionDeactivateUser:   {rule: RuleAdminOnly, deny: "you are not allowed to deactivate users"},
	ActionReactivateUser:   {rule: RuleAdminOnly, deny: "you are not allowed to activate users"},
}

var createActions = map[resource.Kind]Action{
	resource.KindPet:        ActionCreatePet,
	resource.KindProduct:    ActionCreateProduct,
	resource.KindVetService: ActionCreateVetService,
}

// CreateAction returns the creation action for kind.
func CreateAction(kind resource.Kind) Action { return createActions[kind] }

// RequiredRole returns the role a user needs to create a resource of kind.
func RequiredRole(kind resource.Kind) user.Role {
	return policies[createActions[kind]].role
}

// RuleOf exposes the policy table, mostly for tests and docs.
func RuleOf(action Action) (Rule, bool) {
	p, ok := policies[action]
	return p.rule, ok
}

// Authorize evaluates action for actor. target is the owner of the resource
// acted upon, or the user being edited; it is ignored by creation and
// admin-only rules. Unknown actions are denied.
func Authorize(actor Actor, action Action, target user.UUID) error {
	p, ok := policies[action]
	if !ok {
		return errs.Forbidden("action not permitted")
	}

	var allowed bool
	switch p.rule {
	case RuleOwnerOnly:
		allowed = CanMutateOwnedResource(actor.ID, target)
	case RuleCreatorRole:
		allowed = CanCreateAs(actor.Role, p.role)
	case RuleAdminOnly:
		allowed = CanAdministerUser(actor.Role)
	case RuleAdminOrSelf:
		allowed = CanEditUserProfile(actor, target)
	}
	if !allowed {
		return errs.Forbidden(p.deny)
	}

	return nil
}

func CanMutateOwnedResource(actorID, ownerID user.UUID) bool {
	return actorID != uuid.Nil && actorID == ownerID
}

func CanCreateAs(actorRole, requiredRole user.Role) bool {
	return actorRole != "" && actorRole == requiredRole
}

func CanAdministerUser(actorRole user.Role) bool {
	return actorRole == user.RoleAdministrador
}

func CanEditUserProfile(actor Actor, targetID user.UUID) bool {
	return CanAdministerUser(actor.Role) || CanMutateOwnedResource(actor.ID, targetID)
}
