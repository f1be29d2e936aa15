package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, empID string) (*Employee, error)
	Exists(ctx context.Context, empID string) (bool, error)
	// Delete reports the number of rows removed so the service can tell a
	// missing employee apart from a successful delete.
	Delete(ctx context.Context, empID string) (int64, error)
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, empID string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "EmpId = ?", empID).Error
	return &empl, err
}

func (r *repository) Exists(ctx context.Context, empID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("EmpId = ?", empID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Delete(ctx context.Context, empID string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Employee{}, "EmpId = ?", empID)
	return res.RowsAffected, res.Error
}
