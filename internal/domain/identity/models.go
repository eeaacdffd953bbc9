package identity

import "time"

// User is the login/profile document the administration console manages.
// Session mechanics live outside this service; users here are profile and
// authorization records only.
type User struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	Email      string    `bson:"email" json:"email"`
	Role       string    `bson:"role" json:"role"`
	EmployeeID string    `bson:"employeeId,omitempty" json:"employeeId,omitempty"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

type Role struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Permissions []string  `bson:"permissions" json:"permissions"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// User statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"
)

// Known permission keys, mirrored into role documents on seed.
const (
	PermEmployeeRead  = "employee.read"
	PermEmployeeWrite = "employee.write"
	PermLeaveRead     = "leave.read"
	PermLeaveWrite    = "leave.write"
	PermLeaveApprove  = "leave.approve"
	PermUserAdmin     = "user.admin"
	PermDocumentRead  = "document.read"
	PermDocumentWrite = "document.write"
)

// DefaultRoles returns the roles provisioned for a fresh database.
func DefaultRoles() []Role {
	return []Role{
		{Name: "HR", Description: "Full HR administration", Permissions: []string{
			PermEmployeeRead, PermEmployeeWrite, PermLeaveRead, PermLeaveWrite,
			PermLeaveApprove, PermUserAdmin, PermDocumentRead, PermDocumentWrite,
		}},
		{Name: "Manager", Description: "Team management", Permissions: []string{
			PermEmployeeRead, PermLeaveRead, PermLeaveApprove, PermDocumentRead,
		}},
		{Name: "Employee", Description: "Self service", Permissions: []string{
			PermLeaveRead, PermLeaveWrite, PermDocumentRead,
		}},
	}
}

type UserFilter struct {
	Role   string
	Status string
	Search string
	Limit  int
	Offset int
}
