package employee

import "emp-portal/internal/shared/request"

// The legacy frontend posts urlencoded forms; the API also accepts JSON.
// Field names keep the wire casing of the original endpoints.

// deleteRequiredMessage names the full roster regardless of which field was
// missing; the frontend string-matches on it.
const deleteRequiredMessage = "EmpId and ManagerId are required"

// Salary binds from either a JSON string or a number: the column is a
// string, but clients that treat it as an amount send it unquoted.
type AddEmployeeRequest struct {
	EmpID       string             `form:"EmpId" json:"EmpId" binding:"required"`
	Name        string             `form:"Name" json:"Name" binding:"required"`
	JobRole     string             `form:"JobRole" json:"JobRole" binding:"required"`
	Salary      request.FlexString `form:"Salary" json:"Salary" binding:"required"`
	ContactInfo string             `form:"ContactInfo" json:"ContactInfo" binding:"required"`
	HireDate    string             `form:"HireDate" json:"HireDate" binding:"required"`
	ManagerID   string             `form:"ManagerId" json:"ManagerId" binding:"required"`
	Password    string             `form:"Password" json:"Password" binding:"required"`
}

type DeleteEmployeeRequest struct {
	EmpID     string `form:"EmpId" json:"EmpId" binding:"required"`
	ManagerID string `form:"ManagerId" json:"ManagerId" binding:"required"`
}
