package employee

// Employee maps the legacy `employee` table. Salary and HireDate stay
// strings end to end: the service stores and returns whatever the client
// submitted, exactly as the table does.
//
// Password is part of the directory payload because the legacy frontend
// reads it from there. Known weakness, documented in DESIGN.md.
type Employee struct {
	EmpID       string `gorm:"column:EmpId;primaryKey" json:"EmpId"`
	Name        string `gorm:"column:Name" json:"Name"`
	JobRole     string `gorm:"column:JobRole" json:"JobRole"`
	Salary      string `gorm:"column:Salary" json:"Salary"`
	ContactInfo string `gorm:"column:ContactInfo" json:"ContactInfo"`
	HireDate    string `gorm:"column:HireDate" json:"HireDate"`
	ManagerID   string `gorm:"column:ManagerId" json:"ManagerId"`
	Password    string `gorm:"column:Password" json:"Password"`
}

func (Employee) TableName() string {
	return "employee"
}
