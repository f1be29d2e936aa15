package manager

// Manager maps the legacy `manager` table. Column names keep the PascalCase
// casing of the existing schema.
type Manager struct {
	ManagerID string `gorm:"column:ManagerId;primaryKey" json:"ManagerId"`
	Password  string `gorm:"column:Password" json:"-"`
}

func (Manager) TableName() string {
	return "manager"
}
