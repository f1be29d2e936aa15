package leave

const StatusPending = "Pending"

// LeaveRequest maps the legacy `leaverequest` table. RequestId is
// generated by the store; dates travel as opaque strings exactly as
// submitted.
type LeaveRequest struct {
	RequestID int64  `gorm:"column:RequestId;primaryKey;autoIncrement" json:"RequestId"`
	EmpID     string `gorm:"column:EmpId" json:"EmpId"`
	LeaveType string `gorm:"column:LeaveType" json:"LeaveType"`
	StartDate string `gorm:"column:StartDate" json:"StartDate"`
	EndDate   string `gorm:"column:EndDate" json:"EndDate"`
	Status    string `gorm:"column:Status" json:"Status"`
}

func (LeaveRequest) TableName() string {
	return "leaverequest"
}

// LeaveRequestDetail is a listing row: the request joined with the
// employee's name.
type LeaveRequestDetail struct {
	LeaveRequest
	Name string `gorm:"column:Name" json:"Name"`
}
