package leave

import "time"

type LeaveType struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Code        string    `bson:"code" json:"code"`
	IsPaid      bool      `bson:"isPaid" json:"isPaid"`
	RequiresDoc bool      `bson:"requiresDoc" json:"requiresDoc"`
	MaxDays     float64   `bson:"maxDays,omitempty" json:"maxDays,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

type LeaveRequest struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	EmployeeID  string    `bson:"employeeId" json:"employeeId"`
	LeaveTypeID string    `bson:"leaveTypeId" json:"leaveTypeId"`
	StartDate   time.Time `bson:"startDate" json:"startDate"`
	EndDate     time.Time `bson:"endDate" json:"endDate"`
	StartHalf   bool      `bson:"startHalf" json:"startHalf"`
	EndHalf     bool      `bson:"endHalf" json:"endHalf"`
	Days        float64   `bson:"days" json:"days"`
	Reason      string    `bson:"reason,omitempty" json:"reason"`
	Status      string    `bson:"status" json:"status"`
	DecidedBy   string    `bson:"decidedBy,omitempty" json:"decidedBy,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Leave request statuses.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

type RequestFilter struct {
	EmployeeID string
	Status     string
	Limit      int
	Offset     int
}
