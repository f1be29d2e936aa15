package leave

import "emp-portal/internal/shared/request"

// Messages the legacy frontend string-matches on. Each names the full
// required roster regardless of which field was missing.
const (
	submitRequiredMessage       = "EmpId, LeaveType, StartDate, and EndDate are required."
	updateStatusRequiredMessage = "ManagerId, RequestId, and Status are required."
)

type SubmitLeaveRequest struct {
	EmpID     string `form:"EmpId" json:"EmpId" binding:"required"`
	LeaveType string `form:"LeaveType" json:"LeaveType" binding:"required"`
	StartDate string `form:"StartDate" json:"StartDate" binding:"required"`
	EndDate   string `form:"EndDate" json:"EndDate" binding:"required"`
}

// UpdateLeaveStatusRequest carries Status verbatim; the service applies it
// without an enum check, which is what the current consumers expect.
// RequestId binds from either a JSON number or a string: the listing
// serializes it as a number and clients round-trip it as-is.
type UpdateLeaveStatusRequest struct {
	ManagerID string             `form:"ManagerId" json:"ManagerId" binding:"required"`
	RequestID request.FlexString `form:"RequestId" json:"RequestId" binding:"required"`
	Status    string             `form:"Status" json:"Status" binding:"required"`
}
