package payscale

// Payscale maps the legacy `payscale` table, keyed by EmpId. The table is
// maintained by the payroll tooling; this service only reads it, and
// returns the row's fields unmodified.
type Payscale struct {
	EmpID      string `gorm:"column:EmpId;primaryKey" json:"EmpId"`
	BasicPay   string `gorm:"column:BasicPay" json:"BasicPay"`
	HRA        string `gorm:"column:HRA" json:"HRA"`
	Allowances string `gorm:"column:Allowances" json:"Allowances"`
	Deductions string `gorm:"column:Deductions" json:"Deductions"`
	NetPay     string `gorm:"column:NetPay" json:"NetPay"`
}

func (Payscale) TableName() string {
	return "payscale"
}
