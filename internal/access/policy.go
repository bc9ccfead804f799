// Package access holds the static role policy. It is a pure lookup with no
// transport dependency: handlers and middleware ask Allowed, nothing here
// knows about requests or sessions.
package access

import "defect-tracker.com/defect-tracker/internal/constants"

type Resource string

const (
	ResourceTasks    Resource = "tasks"
	ResourceProjects Resource = "projects"
	ResourceDefects  Resource = "defects"
	ResourceUsers    Resource = "users"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

var managerial = []constants.Role{constants.RoleManager, constants.RoleDirector}
var adminOnly = []constants.Role{constants.RoleAdmin}

// policy maps (resource, action) to the roles permitted to perform it.
// Absence means deny.
var policy = map[Resource]map[Action][]constants.Role{
	ResourceTasks: {
		ActionRead:   managerial,
		ActionCreate: managerial,
		ActionUpdate: managerial,
	},
	ResourceProjects: {
		ActionRead:   managerial,
		ActionCreate: managerial,
		ActionUpdate: managerial,
		ActionDelete: managerial,
	},
	ResourceDefects: {
		ActionRead:   managerial,
		ActionCreate: managerial,
		ActionUpdate: managerial,
		ActionDelete: managerial,
	},
	ResourceUsers: {
		ActionRead:   adminOnly,
		ActionCreate: adminOnly,
		ActionUpdate: adminOnly,
		ActionDelete: adminOnly,
	},
}

func Allowed(resource Resource, action Action, role constants.Role) bool {
	actions, ok := policy[resource]
	if !ok {
		return false
	}
	for _, allowed := range actions[action] {
		if role == allowed {
			return true
		}
	}
	return false
}
