package auth

import "errors"

// Roles carried in JWT claims.
const (
	RoleMember     = "member"
	RoleMaintainer = "maintainer"
	RoleStaff      = "staff"
	RoleAdmin      = "admin"
)

// Actions the policy knows about.
type Action string

const (
	ActionCreatePayment  Action = "payment:create"
	ActionViewPayment    Action = "payment:view"
	ActionManageOng      Action = "ong:manage"
	ActionManageProjects Action = "project:manage"
	ActionViewCards      Action = "card:view"
	ActionViewLogs       Action = "webhook:logs"
)

var ErrNotAllowed = errors.New("action not allowed for role")

// Policy is a capability table keyed by (role, action). It replaces
// per-endpoint string comparisons so every authorization decision goes
// through a single Authorize call.
type Policy struct {
	allowed map[string]map[Action]bool
}

func NewPolicy() *Policy {
	return &Policy{
		allowed: map[string]map[Action]bool{
			RoleMaintainer: {
				ActionCreatePayment: true,
				ActionViewPayment:   true,
				ActionViewCards:     true,
			},
			RoleStaff: {
				ActionManageOng:      true,
				ActionManageProjects: true,
			},
			RoleAdmin: {
				ActionCreatePayment:  true,
				ActionViewPayment:    true,
				ActionViewCards:      true,
				ActionManageOng:      true,
				ActionManageProjects: true,
				ActionViewLogs:       true,
			},
		},
	}
}

func (p *Policy) Authorize(role string, action Action) error {
	if p.allowed[role][action] {
		return nil
	}
	return ErrNotAllowed
}

func (p *Policy) Can(role string, action Action) bool {
	return p.allowed[role][action]
}
