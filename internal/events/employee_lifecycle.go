package events

import "time"

const EmployeeLifecycleTopic = "hr.employee.lifecycle.v1"

const (
	TypeEmployeeCreated = "employee_created"
	TypeEmployeeDeleted = "employee_deleted"
)

// EmployeeLifecycleEvent is the payload written to the outbox whenever an
// employee row is added or removed. Downstream payroll tooling consumes it.
type EmployeeLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmpID      string    `json:"emp_id"`
	ManagerID  string    `json:"manager_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
