package usecase

import "net/http"

// Role describes the caller's privilege level resolved per request.
type Role int

const (
	RoleAnonymous Role = iota
	RoleUser
	RoleAdmin
)

// Action is a generic operation on a resource family.
type Action int

const (
	ActionList Action = iota
	ActionRead
	ActionCreate
	ActionUpdate
	ActionDelete
	ActionProcess
)

// Resource identifies an endpoint family with a uniform access rule set.
type Resource int

const (
	ResourceProduct Resource = iota
	ResourcePrivateProduct
	ResourceReview
	ResourceOrder
	ResourceOrderAdmin
	ResourceOrderItem
	ResourceOrderItemAdmin
	ResourceProfile
	ResourceProcessOrder
)

type rule struct {
	minRole Role
	scoped  bool
}

// policy is the single source of truth for who may do what. An action
// missing from a resource's row is answered with 405 for every role,
// including admins: the admin endpoint families are separate resources.
var policy = map[Resource]map[Action]rule{
	ResourceProduct: {
		ActionList: {minRole: RoleAnonymous},
		ActionRead: {minRole: RoleAnonymous},
	},
	ResourcePrivateProduct: {
		ActionList:   {minRole: RoleUser, scoped: true},
		ActionRead:   {minRole: RoleUser, scoped: true},
		ActionCreate: {minRole: RoleUser, scoped: true},
		ActionUpdate: {minRole: RoleUser, scoped: true},
		ActionDelete: {minRole: RoleUser, scoped: true},
	},
	ResourceReview: {
		ActionList:   {minRole: RoleUser},
		ActionRead:   {minRole: RoleUser},
		ActionCreate: {minRole: RoleUser},
		ActionUpdate: {minRole: RoleUser},
		ActionDelete: {minRole: RoleUser},
	},
	ResourceOrder: {
		ActionList:   {minRole: RoleUser, scoped: true},
		ActionRead:   {minRole: RoleUser, scoped: true},
		ActionCreate: {minRole: RoleUser, scoped: true},
	},
	ResourceOrderAdmin: {
		ActionList:   {minRole: RoleAdmin},
		ActionRead:   {minRole: RoleAdmin},
		ActionUpdate: {minRole: RoleAdmin},
		ActionDelete: {minRole: RoleAdmin},
	},
	ResourceOrderItem: {
		ActionList:   {minRole: RoleUser, scoped: true},
		ActionRead:   {minRole: RoleUser, scoped: true},
		ActionCreate: {minRole: RoleUser, scoped: true},
	},
	ResourceOrderItemAdmin: {
		ActionList:   {minRole: RoleAdmin},
		ActionRead:   {minRole: RoleAdmin},
		ActionUpdate: {minRole: RoleAdmin},
		ActionDelete: {minRole: RoleAdmin},
	},
	ResourceProfile: {
		ActionRead:   {minRole: RoleUser, scoped: true},
		ActionUpdate: {minRole: RoleUser, scoped: true},
	},
	ResourceProcessOrder: {
		ActionProcess: {minRole: RoleUser},
	},
}

// Verdict is the outcome of a policy lookup.
type Verdict struct {
	Allowed    bool
	Scoped     bool
	DenyStatus int
}

// Evaluate resolves the visibility rule for a resource/action against the
// caller role.
func Evaluate(res Resource, act Action, role Role) Verdict {
	r, ok := policy[res][act]
	if !ok {
		return Verdict{DenyStatus: http.StatusMethodNotAllowed}
	}
	if role < r.minRole {
		status := http.StatusForbidden
		if role == RoleAnonymous {
			status = http.StatusUnauthorized
		}
		return Verdict{DenyStatus: status}
	}
	return Verdict{Allowed: true, Scoped: r.scoped}
}
