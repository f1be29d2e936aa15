package payscale

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// FindByEmpID returns the first payscale row for the employee; if the
	// schema ever allowed more than one, which row wins is undefined.
	FindByEmpID(ctx context.Context, empID string) (*Payscale, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByEmpID(ctx context.Context, empID string) (*Payscale, error) {
	var p Payscale
	err := r.db.WithContext(ctx).First(&p, "EmpId = ?", empID).Error
	return &p, err
}
