package leave

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, lr *LeaveRequest) error
	// FindAllWithEmployee returns every leave request system-wide joined
	// with the employee's name. Requests whose EmpId no longer matches an
	// employee row drop out of the join.
	FindAllWithEmployee(ctx context.Context) ([]LeaveRequestDetail, error)
	// UpdateStatus reports the number of rows changed so the service can
	// answer "not found" on an unknown RequestId.
	UpdateStatus(ctx context.Context, requestID, status string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, lr *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(lr).Error
}

func (r *repository) FindAllWithEmployee(ctx context.Context) ([]LeaveRequestDetail, error) {
	query := `
SELECT
	lr.*,
	e.Name
FROM leaverequest lr
JOIN employee e ON lr.EmpId = e.EmpId
`

	var details []LeaveRequestDetail
	err := r.db.WithContext(ctx).Raw(query).Scan(&details).Error
	return details, err
}

func (r *repository) UpdateStatus(ctx context.Context, requestID, status string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("RequestId = ?", requestID).
		Update("Status", status)
	return res.RowsAffected, res.Error
}
